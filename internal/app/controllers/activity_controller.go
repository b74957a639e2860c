package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/app/services"
	"github.com/team-echo-club/echo-api/internal/middleware"
	"github.com/team-echo-club/echo-api/internal/pkg/helpers"
)

// ActivityController handles activity listing operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListActivities handles the filtered, sorted activity listing
// @Summary List activities
// @Description Retrieves activities filtered by search term, type, status and fee, upcoming first
// @Tags activities
// @Accept json
// @Produce json
// @Param search query string false "Free-text search over title, description and tags"
// @Param type query string false "Activity type" Enums(all, event, workshop, hackathon)
// @Param status query string false "Derived status" Enums(all, active, completed)
// @Param fee query string false "Fee filter" Enums(all, free)
// @Param view query string false "View mode" Enums(grid, list)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityListResponse} "Activities retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	var req dto.ActivityFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.Page, req.PageSize = helpers.ParsePaginationParams(ctx)

	listing, err := c.activityService.ListActivities(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      listing,
		Timestamp: time.Now(),
	})
}

// GetActivityByID retrieves an activity by ID
// @Summary Get activity details
// @Description Retrieves detailed information about a specific activity by its ID
// @Tags activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid activity ID format"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivityByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid activity ID").
			WithField("id").
			WithDetailsf("Activity ID must be a valid number, got %q", idStr)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity, err := c.activityService.GetActivityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      activity,
		Timestamp: time.Now(),
	})
}

// GetUpcomingActivities retrieves the upcoming activities preview
// @Summary Get upcoming activities
// @Description Retrieves the next few upcoming activities, soonest first
// @Tags activities
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ActivityResponse} "Upcoming activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities/upcoming [get]
func (c *ActivityController) GetUpcomingActivities(ctx *gin.Context) {
	upcoming, err := c.activityService.UpcomingActivities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      upcoming,
		Timestamp: time.Now(),
	})
}
