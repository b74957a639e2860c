package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/team-echo-club/echo-api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
	mediaController *controllers.MediaController,
	teamController *controllers.TeamController,
	clubController *controllers.ClubController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Activity routes
	activities := v1.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.GET("/upcoming", activityController.GetUpcomingActivities)
		activities.GET("/:id", activityController.GetActivityByID)
	}

	// Gallery routes
	media := v1.Group("/media")
	{
		media.GET("", mediaController.ListMedia)
		media.GET("/platforms", mediaController.ListPlatforms)
	}

	// Team routes
	members := v1.Group("/members")
	{
		members.GET("", teamController.ListMembers)
		members.GET("/skills", teamController.ListSkills)
		members.GET("/categories", teamController.ListCategories)
		members.GET("/:id", teamController.GetMemberByID)
	}

	// Club profile and join routes
	club := v1.Group("/club")
	{
		club.GET("", clubController.GetClubInfo)
		club.GET("/join", clubController.GetJoinLinks)
		club.GET("/join/qr", clubController.GetJoinQRCode)
	}

	// Health endpoint
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	v1.GET("/health", health)
	router.GET("/health", health)
}
