package query

import (
	"sort"
	"time"

	"github.com/team-echo-club/echo-api/internal/app/models"
)

// Sentinel filter values. A dimension holding its sentinel does not constrain
// the result.
const (
	FilterAll = "all"

	StatusActive    = "active"
	StatusCompleted = "completed"

	FeeFree = "free"
)

// ActivityFilter is the filter state of the activities listing
type ActivityFilter struct {
	Search string
	Type   string // all | event | workshop | hackathon
	Status string // all | active | completed (derived from date, never the stored field)
	Fee    string // all | free
}

// Matches evaluates the conjunction of all active predicates for one record
func (f ActivityFilter) Matches(a *models.Activity, now time.Time) bool {
	if !matchesSearch(f.Search, a.SearchableFields()) {
		return false
	}
	if f.Type != "" && f.Type != FilterAll && string(a.Type) != f.Type {
		return false
	}
	if f.Status != "" && f.Status != FilterAll {
		upcoming := IsUpcoming(a.Date, now)
		if f.Status == StatusActive && !upcoming {
			return false
		}
		if f.Status == StatusCompleted && upcoming {
			return false
		}
	}
	if f.Fee != "" && f.Fee != FilterAll && f.Fee == FeeFree && !IsFree(a.Fee) {
		return false
	}
	return true
}

// FilterActivities returns the records passing every active predicate, in
// source order.
func FilterActivities(src []models.Activity, f ActivityFilter, now time.Time) []models.Activity {
	out := make([]models.Activity, 0, len(src))
	for i := range src {
		if f.Matches(&src[i], now) {
			out = append(out, src[i])
		}
	}
	return out
}

// SortActivities orders activities in place: upcoming before completed,
// upcoming ascending by date (soonest first), completed descending by date
// (most recent first). The sort is stable, so records with equal
// classification and date keep their source order. The same now snapshot must
// be used as for filtering.
func SortActivities(items []models.Activity, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		aDate, _ := ParseDate(a.Date)
		bDate, _ := ParseDate(b.Date)
		aUpcoming := aDate.After(now)
		bUpcoming := bDate.After(now)

		if aUpcoming != bUpcoming {
			return aUpcoming
		}
		if aUpcoming {
			return aDate.Before(bDate)
		}
		return bDate.Before(aDate)
	})
}

// ActivityStats are headline counters computed over the full source
// collection, independent of any active filters. Filtering changes only the
// displayed subset, never these totals.
type ActivityStats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Free      int `json:"free"`
}

// ComputeActivityStats computes the aggregate counters for the whole dataset
func ComputeActivityStats(src []models.Activity, now time.Time) ActivityStats {
	stats := ActivityStats{Total: len(src)}
	for i := range src {
		if IsUpcoming(src[i].Date, now) {
			stats.Upcoming++
		} else {
			stats.Completed++
		}
		if IsFree(src[i].Fee) {
			stats.Free++
		}
	}
	return stats
}

// UpcomingActivities returns up to limit upcoming activities, soonest first
func UpcomingActivities(src []models.Activity, now time.Time, limit int) []models.Activity {
	upcoming := FilterActivities(src, ActivityFilter{Status: StatusActive}, now)
	SortActivities(upcoming, now)
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// CountUpcoming counts the upcoming records within an already filtered result
func CountUpcoming(items []models.Activity, now time.Time) int {
	n := 0
	for i := range items {
		if IsUpcoming(items[i].Date, now) {
			n++
		}
	}
	return n
}
