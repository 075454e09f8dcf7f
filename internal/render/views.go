package render

import (
	"fmt"
	"time"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
)

const (
	placeholderImage = "https://via.placeholder.com/150"
	podcastFallback  = placeholderImage + "?text=Podcast"
	episodeFallback  = placeholderImage + "?text=Episode"

	cardDescriptionLength  = 150
	modalDescriptionLength = 200

	// DefaultDateLayout matches en-US toLocaleDateString
	DefaultDateLayout = "1/2/2006"
)

// FavoriteControl is the label and CSS class of a favorite toggle button.
type FavoriteControl struct {
	Favorited bool   `json:"favorited"`
	Label     string `json:"label"`
	Class     string `json:"class"`
}

// ControlFor returns the favorite button state for favorited.
func ControlFor(favorited bool) FavoriteControl {
	if favorited {
		return FavoriteControl{Favorited: true, Label: "⭐ Favorited", Class: "favorited"}
	}
	return FavoriteControl{Label: "☆ Favorite"}
}

// PodcastCard is one podcast tile in the results grid.
type PodcastCard struct {
	ID            int64
	Image         string
	FallbackImage string
	Title         string
	Author        string
	Description   string
	EpisodeCount  int
	Favorite      FavoriteControl

	// Entry is what gets stored when the card's favorite button is toggled
	Entry domain.FavoriteEntry
}

// EpisodeCard is one episode tile in the results grid.
type EpisodeCard struct {
	Image         string
	FallbackImage string
	Title         string
	PodcastTitle  string
	Description   string
	Date          string
	Duration      string
	ListenURL     string
}

// EpisodeItem is one row in the episodes modal.
type EpisodeItem struct {
	Title       string
	Date        string
	Duration    string
	Description string
	ListenURL   string
}

// Results is the header and contents of the results section.
type Results struct {
	Title     string
	CountText string
	Podcasts  []PodcastCard
	Episodes  []EpisodeCard
}

// Modal is the episodes dialog. Message replaces the list when set.
type Modal struct {
	Heading   string
	CountText string
	Message   string
	IsError   bool
	Items     []EpisodeItem
}

// Renderer holds the locale settings used for dates.
type Renderer struct {
	loc        *time.Location
	dateLayout string
}

// NewRenderer creates a renderer. A nil loc means UTC and an empty layout
// means DefaultDateLayout.
func NewRenderer(loc *time.Location, dateLayout string) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return &Renderer{loc: loc, dateLayout: dateLayout}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// PodcastResults builds one card per podcast. isFavorite decides the
// initial state of each favorite button.
func (r *Renderer) PodcastResults(podcasts []domain.PodcastSummary, title string, count int, isFavorite func(int64) bool) Results {
	res := Results{Title: title, Podcasts: make([]PodcastCard, 0, len(podcasts))}
	if count != 0 {
		res.CountText = fmt.Sprintf("%d podcasts found", count)
	}
	for _, p := range podcasts {
		res.Podcasts = append(res.Podcasts, r.podcastCard(p, isFavorite(p.ID)))
	}
	return res
}

func (r *Renderer) podcastCard(p domain.PodcastSummary, favorited bool) PodcastCard {
	return PodcastCard{
		ID:            p.ID,
		Image:         firstNonEmpty(p.Image, p.Artwork, placeholderImage),
		FallbackImage: podcastFallback,
		Title:         firstNonEmpty(p.Title, "Untitled Podcast"),
		Author:        firstNonEmpty(p.Author, "Unknown Author"),
		Description:   Truncate(firstNonEmpty(p.Description, "No description available"), cardDescriptionLength),
		EpisodeCount:  p.EpisodeCount,
		Favorite:      ControlFor(favorited),
		Entry:         domain.FavoriteFromPodcast(p),
	}
}

// FavoritesAsPodcasts adapts favorites for PodcastResults.
func FavoritesAsPodcasts(entries []domain.FavoriteEntry) []domain.PodcastSummary {
	out := make([]domain.PodcastSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.AsPodcast())
	}
	return out
}

// EpisodeResults builds one card per episode.
func (r *Renderer) EpisodeResults(episodes []domain.EpisodeSummary, title string) Results {
	res := Results{
		Title:     title,
		CountText: fmt.Sprintf("%d episodes", len(episodes)),
		Episodes:  make([]EpisodeCard, 0, len(episodes)),
	}
	for _, ep := range episodes {
		res.Episodes = append(res.Episodes, EpisodeCard{
			Image:         firstNonEmpty(ep.FeedImage, ep.Image, placeholderImage),
			FallbackImage: episodeFallback,
			Title:         firstNonEmpty(ep.Title, "Untitled Episode"),
			PodcastTitle:  firstNonEmpty(ep.FeedTitle, "Unknown Podcast"),
			Description:   Truncate(firstNonEmpty(ep.Description, "No description available"), cardDescriptionLength),
			Date:          r.date(ep.DatePublished),
			Duration:      duration(ep.Duration),
			ListenURL:     ep.EnclosureURL,
		})
	}
	return res
}

// EpisodeModal builds the modal list. The heading is the parent podcast
// title of the first episode.
func (r *Renderer) EpisodeModal(episodes []domain.EpisodeSummary) Modal {
	if len(episodes) == 0 {
		return ModalMessage("No episodes found", false)
	}
	m := Modal{
		Heading:   firstNonEmpty(episodes[0].FeedTitle, "Episodes"),
		CountText: fmt.Sprintf("%d episodes", len(episodes)),
		Items:     make([]EpisodeItem, 0, len(episodes)),
	}
	for _, ep := range episodes {
		m.Items = append(m.Items, EpisodeItem{
			Title:       firstNonEmpty(ep.Title, "Untitled Episode"),
			Date:        r.date(ep.DatePublished),
			Duration:    duration(ep.Duration),
			Description: Truncate(ep.Description, modalDescriptionLength),
			ListenURL:   ep.EnclosureURL,
		})
	}
	return m
}

// ModalMessage is a modal showing only a status line.
func ModalMessage(msg string, isError bool) Modal {
	return Modal{Message: msg, IsError: isError}
}

func (r *Renderer) date(unix int64) string {
	if unix == 0 {
		return ""
	}
	return FormatDate(unix, r.loc, r.dateLayout)
}

func duration(seconds int64) string {
	if seconds == 0 {
		return ""
	}
	return FormatDuration(seconds)
}
