package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/team-echo-club/echo-api/internal/app/models"
)

var activityNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func testActivities() []models.Activity {
	return []models.Activity{
		{ID: 4, Title: "Tech Fest", Description: "Annual tech festival", Date: "2025-11-22", Fee: "Free", Type: models.ActivityTypeEvent, Tags: []string{"festival"}},
		{ID: 3, Title: "AI Workshop", Description: "Hands-on AI & Machine Learning", Date: "2025-10-10", Fee: "250", Type: models.ActivityTypeWorkshop, Tags: []string{"AI"}},
		{ID: 2, Title: "Hack Night", Description: "Overnight hackathon", Date: "2025-12-02", Fee: "Free", Type: models.ActivityTypeHackathon, Tags: []string{"coding"}},
		{ID: 1, Title: "Orientation", Description: "Welcome session", Date: "2025-09-10", Fee: "Free", Type: models.ActivityTypeEvent, Tags: []string{"intro"}},
	}
}

func activityIDs(items []models.Activity) []int64 {
	ids := make([]int64, len(items))
	for i, a := range items {
		ids[i] = a.ID
	}
	return ids
}

func TestSortActivitiesUpcomingFirst(t *testing.T) {
	items := testActivities()
	SortActivities(items, activityNow)

	// Upcoming ascending by date (3: Oct 10, 4: Nov 22, 2: Dec 2), then
	// completed descending by date (1: Sep 10).
	want := []int64{3, 4, 2, 1}
	if got := activityIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}
}

func TestSortActivitiesFarFutureStaysLast(t *testing.T) {
	items := []models.Activity{
		{ID: 1, Date: "2099-01-01"},
		{ID: 2, Date: "2025-10-10"},
		{ID: 3, Date: "2025-01-01"},
	}
	SortActivities(items, activityNow)

	want := []int64{2, 1, 3}
	if got := activityIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}
}

func TestSortActivitiesStableOnEqualDates(t *testing.T) {
	items := []models.Activity{
		{ID: 10, Date: "2025-11-22"},
		{ID: 20, Date: "2025-11-22"},
		{ID: 30, Date: "2025-11-22"},
	}
	SortActivities(items, activityNow)

	want := []int64{10, 20, 30}
	if got := activityIDs(items); !reflect.DeepEqual(got, want) {
		t.Errorf("equal dates should keep source order, got %v", got)
	}
}

func TestSortActivitiesMalformedDateSortsCompleted(t *testing.T) {
	items := []models.Activity{
		{ID: 1, Date: "TBD"},
		{ID: 2, Date: "2025-11-22"},
	}
	SortActivities(items, activityNow)

	if items[0].ID != 2 {
		t.Errorf("dated upcoming record should sort before the undated one, got %v", activityIDs(items))
	}
}

func TestFilterActivitiesDefaultsAreIdentity(t *testing.T) {
	src := testActivities()
	out := FilterActivities(src, ActivityFilter{Type: FilterAll, Status: FilterAll, Fee: FilterAll}, activityNow)
	if !reflect.DeepEqual(activityIDs(out), activityIDs(src)) {
		t.Errorf("all-defaults filter should return the source in order, got %v", activityIDs(out))
	}
}

func TestFilterActivitiesConjunction(t *testing.T) {
	src := testActivities()
	out := FilterActivities(src, ActivityFilter{Status: StatusActive, Fee: FeeFree}, activityNow)

	// Upcoming and free: Tech Fest and Hack Night
	want := []int64{4, 2}
	if got := activityIDs(out); !reflect.DeepEqual(got, want) {
		t.Errorf("active+free = %v, want %v", got, want)
	}
}

func TestFilterActivitiesByType(t *testing.T) {
	src := testActivities()
	out := FilterActivities(src, ActivityFilter{Type: string(models.ActivityTypeWorkshop)}, activityNow)
	if len(out) != 1 || out[0].ID != 3 {
		t.Errorf("type=workshop = %v, want [3]", activityIDs(out))
	}
}

func TestFilterActivitiesByStatusCompleted(t *testing.T) {
	src := testActivities()
	out := FilterActivities(src, ActivityFilter{Status: StatusCompleted}, activityNow)
	if len(out) != 1 || out[0].ID != 1 {
		t.Errorf("status=completed = %v, want [1]", activityIDs(out))
	}
}

func TestFilterActivitiesSearchMatchesTagsAndDescription(t *testing.T) {
	src := testActivities()

	out := FilterActivities(src, ActivityFilter{Search: "ai"}, activityNow)
	if len(out) != 1 || out[0].ID != 3 {
		t.Errorf("search=ai = %v, want [3]", activityIDs(out))
	}

	out = FilterActivities(src, ActivityFilter{Search: "machine learning"}, activityNow)
	if len(out) != 1 || out[0].ID != 3 {
		t.Errorf("search over description = %v, want [3]", activityIDs(out))
	}

	out = FilterActivities(src, ActivityFilter{Search: "quantum"}, activityNow)
	if len(out) != 0 {
		t.Errorf("unmatched search should yield nothing, got %v", activityIDs(out))
	}
}

func TestFilterActivitiesIdempotent(t *testing.T) {
	src := testActivities()
	f := ActivityFilter{Status: StatusActive}
	once := FilterActivities(src, f, activityNow)
	twice := FilterActivities(once, f, activityNow)
	if !reflect.DeepEqual(activityIDs(once), activityIDs(twice)) {
		t.Errorf("re-filtering a filtered result changed it: %v vs %v", activityIDs(once), activityIDs(twice))
	}
}

func TestComputeActivityStatsIgnoresFilters(t *testing.T) {
	src := testActivities()
	stats := ComputeActivityStats(src, activityNow)

	want := ActivityStats{Total: 4, Upcoming: 3, Completed: 1, Free: 3}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}

	// Filtering the displayed subset must not change the totals
	filtered := FilterActivities(src, ActivityFilter{Fee: FeeFree}, activityNow)
	if len(filtered) == len(src) {
		t.Fatal("fixture should have at least one paid activity")
	}
	if again := ComputeActivityStats(src, activityNow); again != want {
		t.Errorf("stats changed after filtering: %+v", again)
	}
}

func TestUpcomingActivitiesLimit(t *testing.T) {
	src := testActivities()
	out := UpcomingActivities(src, activityNow, 2)

	want := []int64{3, 4}
	if got := activityIDs(out); !reflect.DeepEqual(got, want) {
		t.Errorf("upcoming preview = %v, want %v", got, want)
	}
}

func TestCountUpcoming(t *testing.T) {
	if n := CountUpcoming(testActivities(), activityNow); n != 3 {
		t.Errorf("CountUpcoming = %d, want 3", n)
	}
}
