package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/app/services"
	"github.com/team-echo-club/echo-api/internal/middleware"
)

// ClubController handles club profile and join operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{
		clubService: clubService,
	}
}

// GetClubInfo retrieves the club profile
// @Summary Get club profile
// @Description Retrieves the club description, features, benefits, highlights and live counters
// @Tags club
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club profile retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club [get]
func (c *ClubController) GetClubInfo(ctx *gin.Context) {
	info, err := c.clubService.GetClubInfo(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      info,
		Timestamp: time.Now(),
	})
}

// GetJoinLinks retrieves the join contact links
// @Summary Get join links
// @Description Retrieves the WhatsApp and email links carrying the prefilled join message
// @Tags club
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.JoinLinksResponse} "Join links retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club/join [get]
func (c *ClubController) GetJoinLinks(ctx *gin.Context) {
	links, err := c.clubService.JoinLinks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      links,
		Timestamp: time.Now(),
	})
}

// GetJoinQRCode renders a join link as a QR code
// @Summary Get join QR code
// @Description Renders the join link of the requested channel as a PNG QR code
// @Tags club
// @Produce png
// @Param channel query string false "Join channel" Enums(whatsapp, email) default(whatsapp)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} dto.ErrorResponse "Unknown channel"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /club/join/qr [get]
func (c *ClubController) GetJoinQRCode(ctx *gin.Context) {
	channel := ctx.DefaultQuery("channel", services.JoinChannelWhatsApp)

	png, err := c.clubService.JoinQRCode(ctx, channel)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
