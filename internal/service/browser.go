package service

import (
	"context"
	"strings"
	"sync"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
	"github.com/amiyamandal-dev/podgrid/internal/favorites"
	"github.com/amiyamandal-dev/podgrid/internal/render"
	"github.com/amiyamandal-dev/podgrid/internal/validator"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

// User-visible headers and messages
const (
	TitleTrending  = "🔥 Trending Podcasts"
	TitleRecent    = "🆕 Recent Episodes"
	TitleFavorites = "⭐ Your Favorite Podcasts"

	MsgEmptyQuery      = "Please enter a search term"
	MsgNoPodcasts      = "No podcasts found. Try a different search term."
	MsgSearchFailed    = "Failed to search podcasts. Please try again."
	MsgNoTrending      = "No trending podcasts available."
	MsgTrendingFailed  = "Failed to load trending podcasts."
	MsgNoRecent        = "No recent episodes available."
	MsgRecentFailed    = "Failed to load recent episodes."
	MsgNoFavorites     = "No favorite podcasts yet. Add some by clicking the Favorite button!"
	MsgEpisodesFailed  = "Failed to load episodes"
	MsgEpisodesLoading = "Loading episodes..."
)

// SearchTitle is the results header of a search
func SearchTitle(q string) string {
	return `Search Results for "` + q + `"`
}

// Directory is the subset of the directory API the browser needs
type Directory interface {
	Search(ctx context.Context, q string) (*domain.PodcastListResponse, error)
	Trending(ctx context.Context) (*domain.PodcastListResponse, error)
	Recent(ctx context.Context) (*domain.EpisodeListResponse, error)
	Episodes(ctx context.Context, podcastID int64) (*domain.EpisodeListResponse, error)
}

// FavoritesFilter narrows the favorites view by free text
type FavoritesFilter interface {
	Search(ctx context.Context, q string) (map[int64]bool, error)
}

// Display is everything the page shows outside the episodes modal
type Display struct {
	View           domain.View
	Results        render.Results
	ResultsVisible bool
	Error          string
	Loading        bool
	Filter         string
	Query          string
}

// ErrorVisible reports whether the error banner is shown
func (d Display) ErrorVisible() bool {
	return d.Error != ""
}

// ToggleResult tells the caller how to update the page after a toggle
type ToggleResult struct {
	Favorited  bool
	Control    render.FavoriteControl
	Rerendered bool
	Display    Display
}

// Browser owns the page state: the current view, what is displayed and
// which load request is the newest. Responses to superseded requests are
// dropped so a slow earlier request cannot overwrite a later one.
type Browser struct {
	mu        sync.Mutex
	display   Display
	seq       uint64
	favorites *favorites.Store
	directory Directory
	filter    FavoritesFilter
	renderer  *render.Renderer
	validator *validator.Validator
	logger    *logger.Logger
}

// NewBrowser creates the page state. filter may be nil.
func NewBrowser(
	store *favorites.Store,
	directory Directory,
	filter FavoritesFilter,
	renderer *render.Renderer,
	v *validator.Validator,
	log *logger.Logger,
) *Browser {
	return &Browser{
		favorites: store,
		directory: directory,
		filter:    filter,
		renderer:  renderer,
		validator: v,
		logger:    log.WithComponent("browser"),
	}
}

// Snapshot returns a copy of the current display
func (b *Browser) Snapshot() Display {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.display
}

// begin registers a new load action and shows the loading indicator.
// The returned token identifies it.
func (b *Browser) begin(view domain.View) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.display.View = view
	b.display.Loading = true
	b.display.ResultsVisible = false
	b.display.Error = ""
	b.display.Filter = ""
	return b.seq
}

// finish hides the loading indicator unless a newer action owns it
func (b *Browser) finish(token uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if token == b.seq {
		b.display.Loading = false
	}
}

// commit applies fn to the display only if token is still the newest
func (b *Browser) commit(token uint64, fn func(d *Display)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if token != b.seq {
		b.logger.Info("Discarding stale response", "token", token, "latest", b.seq, "view", b.display.View.String())
		return false
	}
	fn(&b.display)
	return true
}

func showError(d *Display, msg string) {
	d.Error = msg
	d.ResultsVisible = false
}

// PerformSearch searches the directory for q
func (b *Browser) PerformSearch(ctx context.Context, q string) {
	q = strings.TrimSpace(q)
	if err := b.validator.Validate(domain.SearchRequest{Query: q}); err != nil {
		b.logger.Debug("Rejected search", "error", domain.NewValidationError("q", err.Error(), domain.ErrEmptyQuery))
		b.mu.Lock()
		b.seq++
		b.display.View = domain.ViewSearch
		b.display.Loading = false
		b.display.Query = q
		showError(&b.display, MsgEmptyQuery)
		b.mu.Unlock()
		return
	}

	token := b.begin(domain.ViewSearch)
	defer b.finish(token)

	res, err := b.directory.Search(ctx, q)
	b.commit(token, func(d *Display) {
		d.Query = q
		b.applyPodcasts(d, res, err, SearchTitle(q), MsgNoPodcasts, MsgSearchFailed)
	})
}

// LoadTrending shows the trending podcasts
func (b *Browser) LoadTrending(ctx context.Context) {
	token := b.begin(domain.ViewTrending)
	defer b.finish(token)

	res, err := b.directory.Trending(ctx)
	b.commit(token, func(d *Display) {
		b.applyPodcasts(d, res, err, TitleTrending, MsgNoTrending, MsgTrendingFailed)
	})
}

// LoadRecent shows recently published episodes
func (b *Browser) LoadRecent(ctx context.Context) {
	token := b.begin(domain.ViewRecent)
	defer b.finish(token)

	res, err := b.directory.Recent(ctx)
	b.commit(token, func(d *Display) {
		if msg, failed := b.failureMessage(err, MsgRecentFailed); failed {
			showError(d, msg)
			return
		}
		if len(res.Items) == 0 {
			showError(d, MsgNoRecent)
			return
		}
		d.Results = b.renderer.EpisodeResults(res.Items, TitleRecent)
		d.ResultsVisible = true
	})
}

func (b *Browser) applyPodcasts(d *Display, res *domain.PodcastListResponse, err error, title, emptyMsg, failMsg string) {
	if msg, failed := b.failureMessage(err, failMsg); failed {
		showError(d, msg)
		return
	}
	if len(res.Feeds) == 0 {
		showError(d, emptyMsg)
		return
	}
	d.Results = b.renderer.PodcastResults(res.Feeds, title, res.Count, b.favorites.IsFavorite)
	d.ResultsVisible = true
}

// failureMessage maps a directory error to the banner text. API errors
// are shown verbatim; anything else gets the generic message.
func (b *Browser) failureMessage(err error, generic string) (string, bool) {
	if err == nil {
		return "", false
	}
	if apiErr, ok := domain.IsAPIError(err); ok {
		b.logger.Warn("Directory API reported an error", "error", apiErr.Message)
		return apiErr.Message, true
	}
	b.logger.Error("Directory request failed", "error", err)
	return generic, true
}

// ShowFavorites shows the favorites, optionally narrowed by filter
func (b *Browser) ShowFavorites(ctx context.Context, filter string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.display.View = domain.ViewFavorites
	b.display.Loading = false
	b.display.Filter = strings.TrimSpace(filter)
	b.renderFavorites(ctx, &b.display)
}

// renderFavorites fills d with the favorites matching d.Filter
func (b *Browser) renderFavorites(ctx context.Context, d *Display) {
	entries := b.favorites.All()
	if len(entries) == 0 {
		showError(d, MsgNoFavorites)
		return
	}

	if d.Filter != "" && b.filter != nil {
		hits, err := b.filter.Search(ctx, d.Filter)
		if err != nil {
			b.logger.Warn("Favorites filter failed, showing all", "filter", d.Filter, "error", err)
		} else {
			kept := entries[:0]
			for _, e := range entries {
				if hits[e.ID] {
					kept = append(kept, e)
				}
			}
			entries = kept
		}
		if len(entries) == 0 {
			showError(d, `No favorites match "`+d.Filter+`".`)
			return
		}
	}

	d.Error = ""
	d.Results = b.renderer.PodcastResults(render.FavoritesAsPodcasts(entries), TitleFavorites, len(entries), b.favorites.IsFavorite)
	d.ResultsVisible = true
}

// ToggleFavorite flips the favorite state of entry.ID. shown and filter
// describe the page the click came from, which may be older than the
// server's display. A favorites page is rebuilt; any other page only gets
// the new control state.
func (b *Browser) ToggleFavorite(ctx context.Context, entry domain.FavoriteEntry, shown domain.View, filter string) (ToggleResult, error) {
	favorited, err := b.favorites.Toggle(ctx, entry)
	if err != nil {
		return ToggleResult{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	result := ToggleResult{Favorited: favorited, Control: render.ControlFor(favorited)}
	b.syncDisplayLocked(ctx, entry.ID, result.Control)

	if shown == domain.ViewFavorites {
		page := Display{View: domain.ViewFavorites, Filter: strings.TrimSpace(filter)}
		b.renderFavorites(ctx, &page)
		result.Rerendered = true
		result.Display = page
		return result, nil
	}

	result.Display = b.display
	return result, nil
}

// syncDisplayLocked brings the stored display in line with a toggle of id,
// whichever page the toggle came from.
func (b *Browser) syncDisplayLocked(ctx context.Context, id int64, control render.FavoriteControl) {
	if b.display.View == domain.ViewFavorites {
		b.renderFavorites(ctx, &b.display)
		return
	}

	cards := b.display.Results.Podcasts
	updated := make([]render.PodcastCard, len(cards))
	copy(updated, cards)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Favorite = control
		}
	}
	b.display.Results.Podcasts = updated
}

// ViewEpisodes builds the episodes modal for a podcast. It leaves the
// results grid alone.
func (b *Browser) ViewEpisodes(ctx context.Context, podcastID int64) (render.Modal, error) {
	if err := b.validator.Validate(domain.EpisodesRequest{PodcastID: podcastID}); err != nil {
		return render.Modal{}, domain.NewValidationError("id", err.Error(), domain.ErrInvalidPodcastID)
	}

	res, err := b.directory.Episodes(ctx, podcastID)
	if err != nil {
		if apiErr, ok := domain.IsAPIError(err); ok {
			return render.ModalMessage("Error: "+apiErr.Message, true), nil
		}
		b.logger.Error("Failed to load episodes", "podcast_id", podcastID, "error", err)
		return render.ModalMessage(MsgEpisodesFailed, true), nil
	}
	return b.renderer.EpisodeModal(res.Items), nil
}
