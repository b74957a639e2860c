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

// ActivityService defines the interface for activity listing operations
type ActivityService interface {
	ListActivities(ctx context.Context, req *dto.ActivityFilterRequest) (*dto.ActivityListResponse, error)
	GetActivityByID(ctx context.Context, id int64) (*dto.ActivityResponse, error)
	UpcomingActivities(ctx context.Context) ([]dto.ActivityResponse, error)
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	data   *dataset.Provider
	cfg    *config.Config
	logger zerolog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(data *dataset.Provider, cfg *config.Config, logger zerolog.Logger) ActivityService {
	return &activityServiceImpl{
		data:   data,
		cfg:    cfg,
		logger: logger,
	}
}

// activityListing is the output of one query pass over the activity dataset
type activityListing struct {
	items []models.Activity
	stats query.ActivityStats
}

// validateFilterRequest rejects values outside the known filter vocabulary
func (s *activityServiceImpl) validateFilterRequest(req *dto.ActivityFilterRequest) error {
	if req == nil {
		return apperrors.NewValidationError("filter request is nil")
	}

	switch req.Type {
	case "", query.FilterAll,
		string(models.ActivityTypeEvent), string(models.ActivityTypeWorkshop), string(models.ActivityTypeHackathon):
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown activity type %q", req.Type))
	}

	switch req.Status {
	case "", query.FilterAll, query.StatusActive, query.StatusCompleted:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown status %q", req.Status))
	}

	switch req.Fee {
	case "", query.FilterAll, query.FeeFree:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown fee filter %q", req.Fee))
	}

	// Activities have a single canonical order (upcoming first); only the
	// default sort name is accepted over the wire.
	switch req.Sort {
	case "", query.SortLatest:
	default:
		return apperrors.NewCustomError(apperrors.ErrUnknownSort, fmt.Sprintf("unknown sort order %q", req.Sort))
	}

	switch req.View {
	case "", query.ViewGrid, query.ViewList:
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown view %q", req.View))
	}

	return nil
}

// ListActivities runs one filter, sort and stats pass over the activity
// dataset. A fresh view-state controller is built per request, mirroring the
// per-page-view lifecycle of the listing: every query parameter is applied as
// a single-dimension transition on top of the default state.
func (s *activityServiceImpl) ListActivities(ctx context.Context, req *dto.ActivityFilterRequest) (*dto.ActivityListResponse, error) {
	if err := s.validateFilterRequest(req); err != nil {
		return nil, err
	}

	src := s.data.Activities()
	ctrl := query.NewController(func(state query.State, now time.Time) activityListing {
		filtered := query.FilterActivities(src, query.ActivityFilter{
			Search: state.Search,
			Type:   state.Type,
			Status: state.Status,
			Fee:    state.Fee,
		}, now)
		query.SortActivities(filtered, now)
		return activityListing{
			items: filtered,
			stats: query.ComputeActivityStats(src, now),
		}
	})

	if req.Search != "" {
		ctrl.SetSearch(req.Search)
	}
	if req.Type != "" {
		ctrl.SetType(req.Type)
	}
	if req.Status != "" {
		ctrl.SetStatus(req.Status)
	}
	if req.Fee != "" {
		ctrl.SetFee(req.Fee)
	}
	if req.Sort != "" {
		ctrl.SetSort(req.Sort)
	}
	if req.View != "" {
		ctrl.SetView(req.View)
	}

	now := time.Now()
	listing := ctrl.Results(now)

	page, size := req.Page, req.PageSize
	if page < 1 {
		page = helpers.DefaultPage
	}
	if size <= 0 || size > s.cfg.Listing.MaxPageSize {
		size = s.cfg.Listing.DefaultPageSize
	}
	start, end := helpers.CalculateSliceIndices(page, size, len(listing.items))

	items := make([]dto.ActivityResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, dto.ActivityResponse{
			Activity: listing.items[i],
			Upcoming: query.IsUpcoming(listing.items[i].Date, now),
		})
	}

	matchedUpcoming := query.CountUpcoming(listing.items, now)
	pagination := helpers.NewPaginationInfo(len(listing.items), page, size)
	return &dto.ActivityListResponse{
		Items: items,
		Stats: listing.stats,
		Counts: dto.ResultCounts{
			Matched:   len(listing.items),
			Upcoming:  matchedUpcoming,
			Completed: len(listing.items) - matchedUpcoming,
		},
		ActiveFilters: ctrl.ActiveFilters(),
		View:          ctrl.State().View,
		Pagination:    &pagination,
	}, nil
}

// GetActivityByID retrieves a single activity. Duplicate IDs are tolerated in
// the dataset; the first record wins.
func (s *activityServiceImpl) GetActivityByID(ctx context.Context, id int64) (*dto.ActivityResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("activity ID must be positive")
	}

	now := time.Now()
	for _, a := range s.data.Activities() {
		if a.ID == id {
			return &dto.ActivityResponse{
				Activity: a,
				Upcoming: query.IsUpcoming(a.Date, now),
			}, nil
		}
	}
	return nil, apperrors.NewCustomError(apperrors.ErrActivityNotFound, fmt.Sprintf("activity %d not found", id)).
		WithDetails(map[string]interface{}{"id": id})
}

// UpcomingActivities returns the next few upcoming activities, soonest first,
// for the landing page preview.
func (s *activityServiceImpl) UpcomingActivities(ctx context.Context) ([]dto.ActivityResponse, error) {
	now := time.Now()
	upcoming := query.UpcomingActivities(s.data.Activities(), now, s.cfg.Listing.UpcomingPreview)

	items := make([]dto.ActivityResponse, 0, len(upcoming))
	for _, a := range upcoming {
		items = append(items, dto.ActivityResponse{Activity: a, Upcoming: true})
	}
	return items, nil
}
