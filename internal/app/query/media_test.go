package query

import (
	"reflect"
	"testing"

	"github.com/team-echo-club/echo-api/internal/app/models"
)

func testMedia() []models.MediaItem {
	return []models.MediaItem{
		{ID: 1, Title: "Tech Fest Recap", Source: models.MediaSourceYouTube, Date: "2025-08-01", Views: 1200, Likes: 90},
		{ID: 2, Title: "Workshop Highlights", Source: models.MediaSourceYouTube, Date: "2025-09-05", Views: 400, Likes: 35},
		{ID: 3, Title: "Club Reel", Source: models.MediaSourceInstagram, Date: "2025-09-12", Likes: 310},
		{ID: 4, Title: "Poster Drop", Source: models.MediaSourceInstagram, Likes: 150},
		{ID: 5, Title: "Milestone Post", Source: models.MediaSourceLinkedIn, Date: "2025-07-20", Likes: 80},
	}
}

func mediaIDs(items []models.MediaItem) []int64 {
	ids := make([]int64, len(items))
	for i, m := range items {
		ids[i] = m.ID
	}
	return ids
}

func TestSortMediaLatest(t *testing.T) {
	items := testMedia()
	SortMedia(items, SortLatest)

	// Descending by date, undated items last in ingestion order
	want := []int64{3, 2, 1, 5, 4}
	if got := mediaIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("latest order = %v, want %v", got, want)
	}
}

func TestSortMediaPopularFallsBackToLikes(t *testing.T) {
	items := testMedia()
	SortMedia(items, SortPopular)

	// Views when present (1200, 400), otherwise likes (310, 150, 80)
	want := []int64{1, 2, 3, 4, 5}
	if got := mediaIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("popular order = %v, want %v", got, want)
	}
}

func TestSortMediaPopularStableOnTies(t *testing.T) {
	items := []models.MediaItem{
		{ID: 1, Likes: 100},
		{ID: 2, Likes: 100},
		{ID: 3, Views: 100},
	}
	SortMedia(items, SortPopular)

	want := []int64{1, 2, 3}
	if got := mediaIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("tied popularity should keep ingestion order, got %v", got)
	}
}

func TestSortMediaUnknownModeLeavesOrder(t *testing.T) {
	items := testMedia()
	SortMedia(items, "trending")
	if got := mediaIDs(items); !reflect.DeepEqual(got, mediaIDs(testMedia())) {
		t.Errorf("unknown sort mode should not reorder, got %v", got)
	}
}

func TestFilterMediaByPlatform(t *testing.T) {
	src := testMedia()

	out := FilterMedia(src, MediaFilter{Platform: string(models.MediaSourceYouTube)})
	if got := mediaIDs(out); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("platform=youtube = %v, want [1 2]", got)
	}

	out = FilterMedia(src, MediaFilter{Platform: FilterAll})
	if len(out) != len(src) {
		t.Errorf("platform=all should return everything, got %d items", len(out))
	}
}

func TestFilterMediaSearch(t *testing.T) {
	src := testMedia()
	out := FilterMedia(src, MediaFilter{Search: "workshop"})
	if len(out) != 1 || out[0].ID != 2 {
		t.Errorf("search=workshop = %v, want [2]", mediaIDs(out))
	}
}

func TestComputeMediaStats(t *testing.T) {
	stats := ComputeMediaStats(testMedia())

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.YouTube != 2 || stats.Instagram != 2 || stats.LinkedIn != 1 {
		t.Errorf("platform counts = %d/%d/%d, want 2/2/1", stats.YouTube, stats.Instagram, stats.LinkedIn)
	}
	if stats.TotalViews != 1600 {
		t.Errorf("TotalViews = %d, want 1600", stats.TotalViews)
	}
	if stats.TotalLikes != 665 {
		t.Errorf("TotalLikes = %d, want 665", stats.TotalLikes)
	}
}
