package dto

import (
	"github.com/team-echo-club/echo-api/internal/app/models"
	"github.com/team-echo-club/echo-api/internal/app/query"
)

// ActivityFilterRequest defines the query parameters accepted by the
// activity listing endpoint. Zero values mean "no restriction".
type ActivityFilterRequest struct {
	Search   string `form:"search,omitempty"`
	Type     string `form:"type,omitempty"`
	Status   string `form:"status,omitempty"`
	Fee      string `form:"fee,omitempty"`
	Sort     string `form:"sort,omitempty"`
	View     string `form:"view,omitempty"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

// ActivityResponse is the wire representation of a single activity,
// annotated with its derived status.
type ActivityResponse struct {
	models.Activity
	Upcoming bool `json:"upcoming"`
}

// ResultCounts describes the filtered result set, as opposed to Stats which
// always cover the whole collection.
type ResultCounts struct {
	Matched   int `json:"matched"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
}

// ActivityListResponse carries a filtered, sorted page of activities
// together with collection-wide statistics and the filters that
// produced the page.
type ActivityListResponse struct {
	Items         []ActivityResponse   `json:"items"`
	Stats         query.ActivityStats  `json:"stats"`
	Counts        ResultCounts         `json:"counts"`
	ActiveFilters []query.ActiveFilter `json:"activeFilters"`
	View          string               `json:"view"`
	Pagination    *PaginationInfo      `json:"pagination,omitempty"`
}
