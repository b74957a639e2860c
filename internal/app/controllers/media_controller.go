package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/app/services"
	"github.com/team-echo-club/echo-api/internal/middleware"
	"github.com/team-echo-club/echo-api/internal/pkg/helpers"
)

// MediaController handles gallery operations
type MediaController struct {
	mediaService services.MediaService
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService services.MediaService) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// ListMedia handles the filtered, sorted gallery listing
// @Summary List gallery items
// @Description Retrieves gallery items across platforms, filtered by search term and platform
// @Tags media
// @Accept json
// @Produce json
// @Param search query string false "Free-text search over title, description and tags"
// @Param platform query string false "Platform filter" Enums(all, youtube, instagram, linkedin)
// @Param sort query string false "Sort mode" Enums(latest, popular)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.MediaListResponse} "Gallery items retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /media [get]
func (c *MediaController) ListMedia(ctx *gin.Context) {
	var req dto.MediaFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.Page, req.PageSize = helpers.ParsePaginationParams(ctx)

	listing, err := c.mediaService.ListMedia(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      listing,
		Timestamp: time.Now(),
	})
}

// ListPlatforms retrieves the gallery platforms
// @Summary List gallery platforms
// @Description Retrieves the platforms the gallery aggregates, with item counts
// @Tags media
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PlatformInfo} "Platforms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /media/platforms [get]
func (c *MediaController) ListPlatforms(ctx *gin.Context) {
	platforms, err := c.mediaService.ListPlatforms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      platforms,
		Timestamp: time.Now(),
	})
}
