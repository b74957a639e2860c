package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/team-echo-club/echo-api/internal/app/controllers"
	"github.com/team-echo-club/echo-api/internal/app/routes"
	"github.com/team-echo-club/echo-api/internal/app/services"
	"github.com/team-echo-club/echo-api/internal/config"
	"github.com/team-echo-club/echo-api/internal/dataset"
)

// envelope mirrors dto.APIResponse with the payload kept raw so each test can
// decode the part it cares about.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Field   string      `json:"field"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Club.Name = "ECHO"
	cfg.Club.WhatsAppNumber = "919110687983"
	cfg.Club.ContactEmail = "prajwalganiga06@gmail.com"
	cfg.Club.JoinMessage = "Hi! I would like to join the ECHO club."
	cfg.Club.AvatarBaseURL = "https://ui-avatars.com/api/"
	cfg.Listing.UpcomingPreview = 3
	cfg.Listing.DefaultPageSize = 20
	cfg.Listing.MaxPageSize = 100

	datasets, err := dataset.Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("dataset.Load: %v", err)
	}

	lgr := zerolog.Nop()
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewActivityController(services.NewActivityService(datasets, cfg, lgr)),
		controllers.NewMediaController(services.NewMediaService(datasets, cfg, lgr)),
		controllers.NewTeamController(services.NewTeamService(datasets, cfg, lgr)),
		controllers.NewClubController(services.NewClubService(datasets, cfg, lgr)),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decoding %s response: %v", path, err)
		}
	}
	return rec, env
}

func TestListActivities(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/activities")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var listing struct {
		Items []json.RawMessage `json:"items"`
		Stats struct {
			Total int `json:"total"`
		} `json:"stats"`
		View string `json:"view"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(listing.Items) == 0 {
		t.Error("expected activities in the default listing")
	}
	if listing.Stats.Total != len(listing.Items) {
		t.Errorf("unfiltered listing should show every activity: %d items, total %d", len(listing.Items), listing.Stats.Total)
	}
	if listing.View != "grid" {
		t.Errorf("default view = %q, want grid", listing.View)
	}
}

func TestListActivitiesFeeFilter(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/activities?fee=free")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var listing struct {
		Items []struct {
			Fee string `json:"fee"`
		} `json:"items"`
		ActiveFilters []struct {
			Dimension string `json:"dimension"`
			Value     string `json:"value"`
		} `json:"activeFilters"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	for _, item := range listing.Items {
		if !strings.EqualFold(item.Fee, "free") {
			t.Errorf("fee=free listing contains paid item with fee %q", item.Fee)
		}
	}
	if len(listing.ActiveFilters) != 1 || listing.ActiveFilters[0].Dimension != "fee" {
		t.Errorf("active filters = %v, want the fee dimension only", listing.ActiveFilters)
	}
}

func TestListActivitiesRejectsUnknownType(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/activities?type=concert")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil {
		t.Fatal("expected an error payload")
	}
}

func TestGetActivityByID(t *testing.T) {
	router := testRouter(t)

	rec, _ := doRequest(t, router, "/api/v1/activities/1")
	if rec.Code != http.StatusOK {
		t.Errorf("existing activity: status = %d, want 200", rec.Code)
	}

	rec, env := doRequest(t, router, "/api/v1/activities/9999")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing activity: status = %d, want 404", rec.Code)
	}
	if env.Error == nil {
		t.Fatal("missing activity: expected an error payload")
	}
	if details, ok := env.Error.Details.(map[string]interface{}); !ok || details["id"] != float64(9999) {
		t.Errorf("missing activity: error details should carry the requested id, got %v", env.Error.Details)
	}

	rec, env = doRequest(t, router, "/api/v1/activities/abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Field != "id" {
		t.Errorf("malformed id: error should name the id field, got %+v", env.Error)
	}
}

func TestListActivitiesPagination(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/activities?size=2&page=2")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var listing struct {
		Items      []json.RawMessage `json:"items"`
		Pagination struct {
			CurrentPage int `json:"currentPage"`
			TotalPages  int `json:"totalPages"`
			PageSize    int `json:"pageSize"`
			TotalItems  int `json:"totalItems"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if listing.Pagination.CurrentPage != 2 || listing.Pagination.PageSize != 2 {
		t.Errorf("pagination = %+v, want page 2 of size 2", listing.Pagination)
	}
	wantItems := listing.Pagination.TotalItems - 2
	if wantItems > 2 {
		wantItems = 2
	}
	if len(listing.Items) != wantItems {
		t.Errorf("second page carries %d items, want %d", len(listing.Items), wantItems)
	}
}

func TestListActivitiesPaginationDefaults(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/activities?page=abc&size=-5")

	if rec.Code != http.StatusOK {
		t.Fatalf("malformed paging params should fall back to defaults, got status %d", rec.Code)
	}

	var listing struct {
		Pagination struct {
			CurrentPage int `json:"currentPage"`
			PageSize    int `json:"pageSize"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if listing.Pagination.CurrentPage != 1 || listing.Pagination.PageSize != 20 {
		t.Errorf("pagination = %+v, want the defaults", listing.Pagination)
	}
}

func TestListMediaPlatformFilter(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/media?platform=youtube")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var listing struct {
		Items []struct {
			Source string `json:"source"`
		} `json:"items"`
		Stats struct {
			Total int `json:"total"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(listing.Items) == 0 {
		t.Fatal("expected youtube items")
	}
	for _, item := range listing.Items {
		if item.Source != "youtube" {
			t.Errorf("platform=youtube listing contains %q item", item.Source)
		}
	}
	if listing.Stats.Total <= len(listing.Items) {
		t.Errorf("stats should cover the whole collection, total %d with %d filtered items", listing.Stats.Total, len(listing.Items))
	}
}

func TestListMediaRejectsUnknownPlatform(t *testing.T) {
	router := testRouter(t)
	rec, _ := doRequest(t, router, "/api/v1/media?platform=tiktok")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListPlatforms(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/media/platforms")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var platforms []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &platforms); err != nil {
		t.Fatalf("decoding platforms: %v", err)
	}
	if len(platforms) != 3 {
		t.Fatalf("got %d platforms, want 3", len(platforms))
	}
	want := []string{"youtube", "instagram", "linkedin"}
	for i, p := range platforms {
		if p.Name != want[i] {
			t.Errorf("platform[%d] = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestListMembersMembershipFilter(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/members?filter=core")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var listing struct {
		Items []struct {
			Name       string `json:"name"`
			ProfilePic string `json:"profilePic"`
			Core       *struct {
				Role string `json:"role"`
			} `json:"core"`
		} `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decoding listing: %v", err)
	}
	if len(listing.Items) == 0 {
		t.Fatal("expected core members")
	}
	for _, item := range listing.Items {
		if item.Core == nil || item.Core.Role == "" {
			t.Errorf("core member %q missing core-team info", item.Name)
		}
		if item.ProfilePic == "" {
			t.Errorf("member %q has no resolved profile picture", item.Name)
		}
	}

	rec, _ = doRequest(t, router, "/api/v1/members?filter=alumni")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown membership filter: status = %d, want 400", rec.Code)
	}
}

func TestListSkillsSorted(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/members/skills")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var skills []string
	if err := json.Unmarshal(env.Data, &skills); err != nil {
		t.Fatalf("decoding skills: %v", err)
	}
	if len(skills) == 0 {
		t.Fatal("expected skills")
	}
	for i := 1; i < len(skills); i++ {
		if skills[i-1] > skills[i] {
			t.Errorf("skills not sorted: %q before %q", skills[i-1], skills[i])
		}
	}
}

func TestGetClubInfo(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/club")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var club struct {
		Name     string `json:"name"`
		Counters struct {
			Activities int `json:"activities"`
			Members    int `json:"members"`
		} `json:"counters"`
	}
	if err := json.Unmarshal(env.Data, &club); err != nil {
		t.Fatalf("decoding club: %v", err)
	}
	if club.Name == "" {
		t.Error("club name missing")
	}
	if club.Counters.Activities == 0 || club.Counters.Members == 0 {
		t.Errorf("live counters not populated: %+v", club.Counters)
	}
}

func TestGetJoinLinks(t *testing.T) {
	router := testRouter(t)
	rec, env := doRequest(t, router, "/api/v1/club/join")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var links struct {
		WhatsApp string `json:"whatsapp"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &links); err != nil {
		t.Fatalf("decoding links: %v", err)
	}
	if !strings.HasPrefix(links.WhatsApp, "https://wa.me/919110687983?text=") {
		t.Errorf("whatsapp link = %q", links.WhatsApp)
	}
	if !strings.HasPrefix(links.Email, "mailto:prajwalganiga06@gmail.com?") {
		t.Errorf("email link = %q", links.Email)
	}
}

func TestGetJoinQRCode(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/club/join/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
		t.Error("response body is not a PNG image")
	}

	rec2, _ := doRequest(t, router, "/api/v1/club/join/qr?channel=carrier-pigeon")
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("unknown channel: status = %d, want 400", rec2.Code)
	}
}

func TestHealth(t *testing.T) {
	router := testRouter(t)
	for _, path := range []string{"/health", "/api/v1/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
		}
	}
}
