package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amiyamandal-dev/podgrid/internal/directory"
	"github.com/amiyamandal-dev/podgrid/internal/favorites"
	"github.com/amiyamandal-dev/podgrid/internal/render"
	"github.com/amiyamandal-dev/podgrid/internal/search"
	"github.com/amiyamandal-dev/podgrid/internal/service"
	"github.com/amiyamandal-dev/podgrid/internal/storage/memory"
	"github.com/amiyamandal-dev/podgrid/internal/validator"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

const (
	trendingJSON = `{"feeds":[{"id":7,"title":"Hard Fork","author":"NYT","description":"<p>Tech news</p>","image":"https://img.example.com/7.jpg","episodeCount":120}],"count":1}`
	episodesJSON = `{"items":[{"id":1,"title":"Ep One","feedTitle":"Hard Fork","duration":3725,"datePublished":1700000000,"enclosureUrl":"https://cdn.example.com/1.mp3"},{"id":2,"title":"Ep Two","feedTitle":"Hard Fork"}],"count":2}`
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Nop()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/trending":
			w.Write([]byte(trendingJSON))
		case r.URL.Path == "/api/podcast/9/episodes":
			w.Write([]byte(episodesJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	t.Cleanup(api.Close)

	idx, err := search.NewBleveIndex(log)
	if err != nil {
		t.Fatalf("Failed to create index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	store := favorites.NewStore(memory.New(), idx, log)
	store.Load(context.Background())

	v := validator.New()
	browser := service.NewBrowser(store, directory.NewClient(api.URL, 5*time.Second, log), idx, render.NewRenderer(time.UTC, ""), v, log)
	h := NewWebHandler(browser, v, log)

	r := gin.New()
	r.GET("/", h.HomePage)
	r.GET("/search", h.SearchPage)
	r.GET("/trending", h.TrendingPage)
	r.GET("/favorites", h.FavoritesPage)
	r.GET("/podcast/:id/episodes", h.EpisodesModal)
	r.POST("/favorites/:id/toggle", h.ToggleFavorite)
	r.GET("/static/service-worker.js", h.ServiceWorker)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

type toggleResponse struct {
	Success bool          `json:"success"`
	Data    togglePayload `json:"data"`
	Error   string        `json:"error"`
}

func toggle(t *testing.T, r http.Handler, id, view string) toggleResponse {
	t.Helper()
	form := url.Values{"title": {"Hard Fork"}, "image": {"https://img.example.com/7.jpg"}, "author": {"NYT"}, "view": {view}}
	req := httptest.NewRequest(http.MethodPost, "/favorites/"+id+"/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res toggleResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("Failed to decode toggle response %q: %v", w.Body.String(), err)
	}
	return res
}

func TestHomePageShowsTrending(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{service.TitleTrending, "1 podcasts found", "Hard Fork", "Tech news", "☆ Favorite", "📅 120 episodes"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if strings.Contains(body, "<p>Tech news") {
		t.Error("Expected description markup stripped")
	}
}

func TestSearchPageEmptyQuery(t *testing.T) {
	r := setupRouter(t)

	body := get(r, "/search?q=+").Body.String()
	if !strings.Contains(body, service.MsgEmptyQuery) {
		t.Errorf("Expected %q in page", service.MsgEmptyQuery)
	}
	if strings.Contains(body, `id="errorMessage" class="error-message" style="display:none"`) {
		t.Error("Expected error banner visible")
	}
}

func TestSearchPageAPIError(t *testing.T) {
	r := setupRouter(t)

	body := get(r, "/search?q=nothing").Body.String()
	if !strings.Contains(body, "not found") {
		t.Errorf("Expected API error message in page, got %s", body)
	}
}

func TestToggleOutsideFavoritesView(t *testing.T) {
	r := setupRouter(t)
	get(r, "/trending")

	res := toggle(t, r, "7", "trending")
	if !res.Success || !res.Data.Favorited || res.Data.Label != "⭐ Favorited" || res.Data.Class != "favorited" {
		t.Fatalf("Unexpected toggle response %+v", res)
	}
	if res.Data.Rerender || res.Data.HTML != "" {
		t.Error("Expected no rerender outside the favorites view")
	}

	res = toggle(t, r, "7", "trending")
	if res.Data.Favorited || res.Data.Label != "☆ Favorite" || res.Data.Class != "" {
		t.Errorf("Expected unfavorited control, got %+v", res.Data)
	}
}

func TestToggleOnFavoritesViewRerenders(t *testing.T) {
	r := setupRouter(t)
	toggle(t, r, "7", "")

	body := get(r, "/favorites").Body.String()
	if !strings.Contains(body, service.TitleFavorites) || !strings.Contains(body, "⭐ Favorited") {
		t.Fatalf("Expected favorite listed, got %s", body)
	}

	if !strings.Contains(body, `data-view="favorites"`) {
		t.Error("Expected the page to record its view for the toggle script")
	}

	res := toggle(t, r, "7", "favorites")
	if !res.Data.Rerender {
		t.Fatal("Expected rerender on the favorites view")
	}
	if !strings.Contains(res.Data.HTML, service.MsgNoFavorites) {
		t.Errorf("Expected empty favorites message in %q", res.Data.HTML)
	}
}

func TestToggleRejectsBadID(t *testing.T) {
	r := setupRouter(t)

	for _, id := range []string{"abc", "0"} {
		res := toggle(t, r, id, "")
		if res.Success || res.Error == "" {
			t.Errorf("Expected rejection for id %q, got %+v", id, res)
		}
	}

	if res := toggle(t, r, "7", "podcasts"); res.Success {
		t.Errorf("Expected unknown view rejected, got %+v", res)
	}
}

func TestToggleRerendersFavoritesPageAfterAnotherPageLoad(t *testing.T) {
	r := setupRouter(t)
	toggle(t, r, "7", "trending")
	get(r, "/favorites")

	// a second tab loads trending before the favorites tab clicks again
	get(r, "/trending")

	res := toggle(t, r, "7", "favorites")
	if !res.Success || res.Data.Favorited {
		t.Fatalf("Expected podcast removed, got %+v", res)
	}
	if !res.Data.Rerender || !strings.Contains(res.Data.HTML, service.MsgNoFavorites) {
		t.Errorf("Expected the favorites page re-rendered empty, got rerender=%v html=%q", res.Data.Rerender, res.Data.HTML)
	}

	if body := get(r, "/").Body.String(); !strings.Contains(body, service.TitleTrending) {
		t.Error("Expected other pages unaffected")
	}
}

func TestEpisodesModal(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/podcast/9/episodes")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"<h2>Hard Fork</h2>", "2 episodes", "Ep One", "1h 2m", "11/14/2023", "▶️ Listen"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected modal to contain %q", want)
		}
	}
}

func TestEpisodesModalAPIError(t *testing.T) {
	r := setupRouter(t)

	body := get(r, "/podcast/5/episodes").Body.String()
	if !strings.Contains(body, "Error: not found") {
		t.Errorf("Expected API error in modal, got %s", body)
	}
}

func TestEpisodesModalRejectsBadID(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/podcast/abc/episodes", "/podcast/0/episodes"} {
		w := get(r, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestServiceWorker(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/static/service-worker.js")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/javascript") {
		t.Errorf("Unexpected response %d %q", w.Code, w.Header().Get("Content-Type"))
	}
}
