package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
	"github.com/amiyamandal-dev/podgrid/internal/render"
	"github.com/amiyamandal-dev/podgrid/internal/service"
	"github.com/amiyamandal-dev/podgrid/internal/validator"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
	"github.com/amiyamandal-dev/podgrid/pkg/response"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/service-worker.js
var serviceWorker []byte

// WebHandler serves the podcast browser pages
type WebHandler struct {
	browser   *service.Browser
	validator *validator.Validator
	logger    *logger.Logger
	templates *template.Template
}

// pageData is what the page templates render
type pageData struct {
	service.Display
	IsFavorites     bool
	LoadingEpisodes string
	EpisodesFailed  string
}

// togglePayload is the data of a favorite toggle response
type togglePayload struct {
	render.FavoriteControl
	Rerender bool   `json:"rerender"`
	HTML     string `json:"html,omitempty"`
}

// NewWebHandler creates a new web handler
func NewWebHandler(browser *service.Browser, v *validator.Validator, log *logger.Logger) *WebHandler {
	return &WebHandler{
		browser:   browser,
		validator: v,
		logger:    log.WithComponent("web-handler"),
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func newPageData(d service.Display) pageData {
	return pageData{
		Display:         d,
		IsFavorites:     d.View == domain.ViewFavorites,
		LoadingEpisodes: service.MsgEpisodesLoading,
		EpisodesFailed:  service.MsgEpisodesFailed,
	}
}

func (h *WebHandler) renderPage(c *gin.Context) {
	h.execute(c, http.StatusOK, "page", newPageData(h.browser.Snapshot()))
}

func (h *WebHandler) execute(c *gin.Context, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Template error", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// HomePage shows trending podcasts, as on first load
func (h *WebHandler) HomePage(c *gin.Context) {
	h.browser.LoadTrending(c.Request.Context())
	h.renderPage(c)
}

// SearchPage runs a podcast search for ?q=
func (h *WebHandler) SearchPage(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Debug("Ignoring malformed search query", "error", err)
	}
	h.browser.PerformSearch(c.Request.Context(), req.Query)
	h.renderPage(c)
}

// TrendingPage shows trending podcasts
func (h *WebHandler) TrendingPage(c *gin.Context) {
	h.browser.LoadTrending(c.Request.Context())
	h.renderPage(c)
}

// RecentPage shows recently published episodes
func (h *WebHandler) RecentPage(c *gin.Context) {
	h.browser.LoadRecent(c.Request.Context())
	h.renderPage(c)
}

// FavoritesPage shows the stored favorites, filtered by ?q= when given
func (h *WebHandler) FavoritesPage(c *gin.Context) {
	h.browser.ShowFavorites(c.Request.Context(), c.Query("q"))
	h.renderPage(c)
}

// EpisodesModal renders the episodes dialog body for one podcast
func (h *WebHandler) EpisodesModal(c *gin.Context) {
	var req domain.EpisodesRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.execute(c, http.StatusBadRequest, "modal", render.ModalMessage(service.MsgEpisodesFailed, true))
		return
	}

	modal, err := h.browser.ViewEpisodes(c.Request.Context(), req.PodcastID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPodcastID) {
			h.execute(c, http.StatusBadRequest, "modal", render.ModalMessage(service.MsgEpisodesFailed, true))
			return
		}
		h.logger.Error("Failed to build episodes modal", "podcast_id", req.PodcastID, "error", err)
		h.execute(c, http.StatusInternalServerError, "modal", render.ModalMessage(service.MsgEpisodesFailed, true))
		return
	}
	h.execute(c, http.StatusOK, "modal", modal)
}

// ToggleFavorite flips a podcast's favorite state and reports the new
// button state. On the favorites view it also returns the rebuilt results.
func (h *WebHandler) ToggleFavorite(c *gin.Context) {
	var req domain.ToggleFavoriteRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "Invalid podcast id")
		return
	}
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid favorite data")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.browser.ToggleFavorite(c.Request.Context(), req.Entry(), domain.ParseView(req.View), req.Filter)
	if err != nil {
		h.logger.Error("Failed to toggle favorite", "podcast_id", req.ID, "error", err)
		response.InternalServerError(c, "Failed to update favorites")
		return
	}

	payload := togglePayload{FavoriteControl: result.Control, Rerender: result.Rerendered}
	if result.Rerendered {
		var buf bytes.Buffer
		if err := h.templates.ExecuteTemplate(&buf, "results", newPageData(result.Display)); err != nil {
			h.logger.Error("Template error", "template", "results", "error", err)
			response.InternalServerError(c, "Template error")
			return
		}
		payload.HTML = buf.String()
	}
	response.Success(c, payload)
}

// ServiceWorker serves the offline worker script
func (h *WebHandler) ServiceWorker(c *gin.Context) {
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", serviceWorker)
}
