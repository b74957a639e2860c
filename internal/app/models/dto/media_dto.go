package dto

import (
	"github.com/team-echo-club/echo-api/internal/app/models"
	"github.com/team-echo-club/echo-api/internal/app/query"
)

// MediaFilterRequest defines the query parameters accepted by the
// gallery listing endpoint.
type MediaFilterRequest struct {
	Search   string `form:"search,omitempty"`
	Platform string `form:"platform,omitempty"`
	Sort     string `form:"sort,omitempty"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

// MediaListResponse carries a filtered, sorted page of gallery items
// together with collection-wide statistics.
type MediaListResponse struct {
	Items         []models.MediaItem   `json:"items"`
	Stats         query.MediaStats     `json:"stats"`
	ActiveFilters []query.ActiveFilter `json:"activeFilters"`
	Pagination    *PaginationInfo      `json:"pagination,omitempty"`
}

// PlatformInfo describes one gallery platform and how many items it
// currently holds.
type PlatformInfo struct {
	Name  string `json:"name" example:"youtube"`
	Count int    `json:"count" example:"2"`
}
