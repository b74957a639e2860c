package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/team-echo-club/echo-api/internal/app/models"
	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/app/query"
	"github.com/team-echo-club/echo-api/internal/config"
	"github.com/team-echo-club/echo-api/internal/dataset"
	"github.com/team-echo-club/echo-api/internal/pkg/apperrors"
	"github.com/team-echo-club/echo-api/internal/pkg/helpers"
)

// TeamService defines the interface for team roster operations
type TeamService interface {
	ListMembers(ctx context.Context, req *dto.MemberFilterRequest) (*dto.MemberListResponse, error)
	GetMemberByID(ctx context.Context, id int64) (*dto.MemberResponse, error)
	ListSkills(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// teamServiceImpl implements the TeamService interface
type teamServiceImpl struct {
	data   *dataset.Provider
	cfg    *config.Config
	logger zerolog.Logger
}

// NewTeamService creates a new team service instance
func NewTeamService(data *dataset.Provider, cfg *config.Config, logger zerolog.Logger) TeamService {
	return &teamServiceImpl{
		data:   data,
		cfg:    cfg,
		logger: logger,
	}
}

// teamListing is the output of one query pass over the member roster
type teamListing struct {
	items []models.Member
	stats query.TeamStats
}

// validateFilterRequest rejects values outside the known filter vocabulary.
// Skill and category are free-form: an unknown value simply matches nobody.
func (s *teamServiceImpl) validateFilterRequest(req *dto.MemberFilterRequest) error {
	if req == nil {
		return apperrors.NewValidationError("filter request is nil")
	}

	switch req.Filter {
	case "", query.FilterAll, query.MembershipCore, query.MembershipGeneral:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown membership filter %q", req.Filter))
	}

	return nil
}

// memberResponse builds the wire representation of one member, attaching the
// core-team profile when the member's name appears on the core roster and
// resolving the profile picture fallback.
func (s *teamServiceImpl) memberResponse(m models.Member, coreTeam map[string]models.CoreTeamMember) dto.MemberResponse {
	resp := dto.MemberResponse{
		Member:     m,
		ProfilePic: helpers.ResolveProfilePic(m.ProfilePic, s.cfg.Club.AvatarBaseURL, m.Name),
	}
	if info, ok := coreTeam[m.Name]; ok {
		resp.Core = &dto.CoreInfo{
			Role:     info.Role,
			FunFact:  info.FunFact,
			Category: info.Category,
		}
		if m.ProfilePic == "" && info.ProfilePic != "" {
			resp.ProfilePic = info.ProfilePic
		}
	}
	return resp
}

// ListMembers runs one filter and stats pass over the member roster. A fresh
// view-state controller is built per request; every query parameter is
// applied as a single-dimension transition on top of the default state.
func (s *teamServiceImpl) ListMembers(ctx context.Context, req *dto.MemberFilterRequest) (*dto.MemberListResponse, error) {
	if err := s.validateFilterRequest(req); err != nil {
		return nil, err
	}

	src := s.data.Members()
	coreTeam := s.data.CoreTeamByName()
	ctrl := query.NewController(func(state query.State, now time.Time) teamListing {
		filtered := query.FilterMembers(src, coreTeam, query.MemberFilter{
			Search:     state.Search,
			Skill:      state.Skill,
			Category:   state.Category,
			Membership: state.Membership,
		})
		return teamListing{
			items: filtered,
			stats: query.ComputeTeamStats(src, s.data.CoreTeam()),
		}
	})

	if req.Search != "" {
		ctrl.SetSearch(req.Search)
	}
	if req.Skill != "" {
		ctrl.SetSkill(req.Skill)
	}
	if req.Category != "" {
		ctrl.SetCategory(req.Category)
	}
	if req.Filter != "" {
		ctrl.SetMembership(req.Filter)
	}

	listing := ctrl.Results(time.Now())

	page, size := req.Page, req.PageSize
	if page < 1 {
		page = helpers.DefaultPage
	}
	if size <= 0 || size > s.cfg.Listing.MaxPageSize {
		size = s.cfg.Listing.DefaultPageSize
	}
	start, end := helpers.CalculateSliceIndices(page, size, len(listing.items))

	items := make([]dto.MemberResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, s.memberResponse(listing.items[i], coreTeam))
	}

	pagination := helpers.NewPaginationInfo(len(listing.items), page, size)
	return &dto.MemberListResponse{
		Items:         items,
		Stats:         listing.stats,
		ActiveFilters: ctrl.ActiveFilters(),
		Pagination:    &pagination,
	}, nil
}

// GetMemberByID retrieves a single member. Duplicate IDs are tolerated in the
// dataset; the first record wins.
func (s *teamServiceImpl) GetMemberByID(ctx context.Context, id int64) (*dto.MemberResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("member ID must be positive")
	}

	coreTeam := s.data.CoreTeamByName()
	for _, m := range s.data.Members() {
		if m.ID == id {
			resp := s.memberResponse(m, coreTeam)
			return &resp, nil
		}
	}
	return nil, apperrors.NewCustomError(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", id)).
		WithDetails(map[string]interface{}{"id": id})
}

// ListSkills returns the sorted set of skills across all members
func (s *teamServiceImpl) ListSkills(ctx context.Context) ([]string, error) {
	return query.DistinctSkills(s.data.Members()), nil
}

// ListCategories returns the sorted set of core-team categories
func (s *teamServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	return query.DistinctCategories(s.data.CoreTeam()), nil
}
