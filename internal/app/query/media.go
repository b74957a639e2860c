package query

import (
	"sort"

	"github.com/team-echo-club/echo-api/internal/app/models"
)

// Media sort modes
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// MediaFilter is the filter state of the gallery listing. Ordering is not a
// predicate; SortMedia takes the sort mode separately.
type MediaFilter struct {
	Search   string
	Platform string // all | youtube | instagram | linkedin
}

// Matches evaluates the conjunction of all active predicates for one item
func (f MediaFilter) Matches(m *models.MediaItem) bool {
	fields := append([]string{m.Title, m.Description}, m.Tags...)
	if !matchesSearch(f.Search, fields) {
		return false
	}
	if f.Platform != "" && f.Platform != FilterAll && string(m.Source) != f.Platform {
		return false
	}
	return true
}

// FilterMedia returns the items passing every active predicate, in source order
func FilterMedia(src []models.MediaItem, f MediaFilter) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(src))
	for i := range src {
		if f.Matches(&src[i]) {
			out = append(out, src[i])
		}
	}
	return out
}

// popularity scores an item for the "popular" sort: views, falling back to
// likes when views are absent or zero.
func popularity(m *models.MediaItem) int {
	if m.Views > 0 {
		return m.Views
	}
	return m.Likes
}

// SortMedia orders items in place per the selected mode. "latest" sorts
// descending by date with undated items last; "popular" sorts descending by
// popularity. Both sorts are stable, so ties keep their ingestion order. An
// unknown mode leaves the order untouched.
func SortMedia(items []models.MediaItem, mode string) {
	switch mode {
	case SortLatest:
		sort.SliceStable(items, func(i, j int) bool {
			aDate, aOK := ParseDate(items[i].Date)
			bDate, bOK := ParseDate(items[j].Date)
			if aOK != bOK {
				return aOK
			}
			return bDate.Before(aDate)
		})
	case SortPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return popularity(&items[j]) < popularity(&items[i])
		})
	}
}

// MediaStats are headline counters computed over the full unified collection,
// independent of any active filters.
type MediaStats struct {
	Total           int `json:"total"`
	YouTube         int `json:"youtube"`
	Instagram       int `json:"instagram"`
	LinkedIn        int `json:"linkedin"`
	TotalViews      int `json:"totalViews"`
	TotalLikes      int `json:"totalLikes"`
	TotalEngagement int `json:"totalEngagement"`
}

// ComputeMediaStats computes the aggregate counters for the whole dataset
func ComputeMediaStats(src []models.MediaItem) MediaStats {
	stats := MediaStats{Total: len(src)}
	for i := range src {
		switch src[i].Source {
		case models.MediaSourceYouTube:
			stats.YouTube++
		case models.MediaSourceInstagram:
			stats.Instagram++
		case models.MediaSourceLinkedIn:
			stats.LinkedIn++
		}
		stats.TotalViews += src[i].Views
		stats.TotalLikes += src[i].Likes
		stats.TotalEngagement += src[i].Engagement
	}
	return stats
}
