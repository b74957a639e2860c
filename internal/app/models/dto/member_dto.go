package dto

import (
	"github.com/team-echo-club/echo-api/internal/app/models"
	"github.com/team-echo-club/echo-api/internal/app/query"
)

// MemberFilterRequest defines the query parameters accepted by the
// team listing endpoint.
type MemberFilterRequest struct {
	Search   string `form:"search,omitempty"`
	Skill    string `form:"skill,omitempty"`
	Category string `form:"category,omitempty"`
	Filter   string `form:"filter,omitempty"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

// CoreInfo is the core-team profile attached to a member when their
// name appears on the core roster.
type CoreInfo struct {
	Role     string `json:"role" example:"President"`
	FunFact  string `json:"funFact,omitempty"`
	Category string `json:"category" example:"Leadership"`
}

// MemberResponse is the wire representation of a team member. The
// profile picture is always populated, falling back to a generated
// avatar when the member has not supplied one.
type MemberResponse struct {
	models.Member
	ProfilePic string    `json:"profilePic"`
	Core       *CoreInfo `json:"core,omitempty"`
}

// MemberListResponse carries a filtered page of members together with
// roster-wide statistics.
type MemberListResponse struct {
	Items         []MemberResponse     `json:"items"`
	Stats         query.TeamStats      `json:"stats"`
	ActiveFilters []query.ActiveFilter `json:"activeFilters"`
	Pagination    *PaginationInfo      `json:"pagination,omitempty"`
}
