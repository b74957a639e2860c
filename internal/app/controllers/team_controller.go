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

// TeamController handles team roster operations
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{
		teamService: teamService,
	}
}

// ListMembers handles the filtered member listing
// @Summary List team members
// @Description Retrieves members filtered by search term, skill, core-team category and membership class
// @Tags team
// @Accept json
// @Produce json
// @Param search query string false "Free-text search over name and USN"
// @Param skill query string false "Skill filter"
// @Param category query string false "Core-team category filter"
// @Param filter query string false "Membership class" Enums(all, core, general)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.MemberListResponse} "Members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members [get]
func (c *TeamController) ListMembers(ctx *gin.Context) {
	var req dto.MemberFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	req.Page, req.PageSize = helpers.ParsePaginationParams(ctx)

	listing, err := c.teamService.ListMembers(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      listing,
		Timestamp: time.Now(),
	})
}

// GetMemberByID retrieves a member by ID
// @Summary Get member details
// @Description Retrieves detailed information about a specific member by their ID
// @Tags team
// @Accept json
// @Produce json
// @Param id path int true "Member ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID format"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (c *TeamController) GetMemberByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member ID").
			WithField("id").
			WithDetailsf("Member ID must be a valid number, got %q", idStr)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.teamService.GetMemberByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      member,
		Timestamp: time.Now(),
	})
}

// ListSkills retrieves the distinct member skills
// @Summary List skills
// @Description Retrieves the sorted set of skills across all members
// @Tags team
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Skills retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/skills [get]
func (c *TeamController) ListSkills(ctx *gin.Context) {
	skills, err := c.teamService.ListSkills(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      skills,
		Timestamp: time.Now(),
	})
}

// ListCategories retrieves the distinct core-team categories
// @Summary List core-team categories
// @Description Retrieves the sorted set of core-team categories
// @Tags team
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Categories retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/categories [get]
func (c *TeamController) ListCategories(ctx *gin.Context) {
	categories, err := c.teamService.ListCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      categories,
		Timestamp: time.Now(),
	})
}
