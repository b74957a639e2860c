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

// MediaService defines the interface for gallery operations
type MediaService interface {
	ListMedia(ctx context.Context, req *dto.MediaFilterRequest) (*dto.MediaListResponse, error)
	ListPlatforms(ctx context.Context) ([]dto.PlatformInfo, error)
}

// mediaServiceImpl implements the MediaService interface
type mediaServiceImpl struct {
	data   *dataset.Provider
	cfg    *config.Config
	logger zerolog.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(data *dataset.Provider, cfg *config.Config, logger zerolog.Logger) MediaService {
	return &mediaServiceImpl{
		data:   data,
		cfg:    cfg,
		logger: logger,
	}
}

// mediaListing is the output of one query pass over the gallery dataset
type mediaListing struct {
	items []models.MediaItem
	stats query.MediaStats
}

// validateFilterRequest rejects values outside the known filter vocabulary
func (s *mediaServiceImpl) validateFilterRequest(req *dto.MediaFilterRequest) error {
	if req == nil {
		return apperrors.NewValidationError("filter request is nil")
	}

	switch req.Platform {
	case "", query.FilterAll,
		string(models.MediaSourceYouTube), string(models.MediaSourceInstagram), string(models.MediaSourceLinkedIn):
	default:
		return apperrors.NewCustomError(apperrors.ErrUnknownPlatform, fmt.Sprintf("unknown media platform %q", req.Platform))
	}

	switch req.Sort {
	case "", query.SortLatest, query.SortPopular:
	default:
		return apperrors.NewCustomError(apperrors.ErrUnknownSort, fmt.Sprintf("unknown sort order %q", req.Sort))
	}

	return nil
}

// ListMedia runs one filter, sort and stats pass over the unified gallery.
// A fresh view-state controller is built per request; every query parameter
// is applied as a single-dimension transition on top of the default state.
func (s *mediaServiceImpl) ListMedia(ctx context.Context, req *dto.MediaFilterRequest) (*dto.MediaListResponse, error) {
	if err := s.validateFilterRequest(req); err != nil {
		return nil, err
	}

	src := s.data.Media()
	ctrl := query.NewController(func(state query.State, now time.Time) mediaListing {
		filtered := query.FilterMedia(src, query.MediaFilter{
			Search:   state.Search,
			Platform: state.Platform,
		})
		query.SortMedia(filtered, state.Sort)
		return mediaListing{
			items: filtered,
			stats: query.ComputeMediaStats(src),
		}
	})

	if req.Search != "" {
		ctrl.SetSearch(req.Search)
	}
	if req.Platform != "" {
		ctrl.SetPlatform(req.Platform)
	}
	if req.Sort != "" {
		ctrl.SetSort(req.Sort)
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

	pagination := helpers.NewPaginationInfo(len(listing.items), page, size)
	return &dto.MediaListResponse{
		Items:         listing.items[start:end],
		Stats:         listing.stats,
		ActiveFilters: ctrl.ActiveFilters(),
		Pagination:    &pagination,
	}, nil
}

// ListPlatforms returns the gallery platforms with their item counts, in the
// fixed ingestion order.
func (s *mediaServiceImpl) ListPlatforms(ctx context.Context) ([]dto.PlatformInfo, error) {
	stats := query.ComputeMediaStats(s.data.Media())
	return []dto.PlatformInfo{
		{Name: string(models.MediaSourceYouTube), Count: stats.YouTube},
		{Name: string(models.MediaSourceInstagram), Count: stats.Instagram},
		{Name: string(models.MediaSourceLinkedIn), Count: stats.LinkedIn},
	}, nil
}
