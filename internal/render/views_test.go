package render

import (
	"strings"
	"testing"
	"time"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
)

func noFavorites(int64) bool { return false }

func TestPodcastResultsFallbacks(t *testing.T) {
	r := NewRenderer(time.UTC, "")
	res := r.PodcastResults([]domain.PodcastSummary{{ID: 3}}, "🔥 Trending Podcasts", 0, noFavorites)

	if res.CountText != "" {
		t.Errorf("Expected empty count text for zero count, got %q", res.CountText)
	}
	if len(res.Podcasts) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(res.Podcasts))
	}
	card := res.Podcasts[0]
	if card.Title != "Untitled Podcast" || card.Author != "Unknown Author" {
		t.Errorf("Unexpected fallbacks: %q / %q", card.Title, card.Author)
	}
	if card.Description != "No description available" {
		t.Errorf("Unexpected description %q", card.Description)
	}
	if card.Image != placeholderImage || card.FallbackImage != podcastFallback {
		t.Errorf("Unexpected images %q / %q", card.Image, card.FallbackImage)
	}
	if card.Favorite.Label != "☆ Favorite" || card.Favorite.Class != "" {
		t.Errorf("Unexpected control %+v", card.Favorite)
	}
}

func TestPodcastResultsFavoriteStateAndImage(t *testing.T) {
	r := NewRenderer(time.UTC, "")
	podcasts := []domain.PodcastSummary{
		{ID: 1, Title: "A", Artwork: "art.jpg", Description: strings.Repeat("x", 200)},
		{ID: 2, Title: "B", Image: "img.jpg", Artwork: "art.jpg"},
	}
	res := r.PodcastResults(podcasts, "t", 2, func(id int64) bool { return id == 2 })

	if res.CountText != "2 podcasts found" {
		t.Errorf("Unexpected count text %q", res.CountText)
	}
	if res.Podcasts[0].Image != "art.jpg" || res.Podcasts[1].Image != "img.jpg" {
		t.Errorf("Unexpected image selection: %q, %q", res.Podcasts[0].Image, res.Podcasts[1].Image)
	}
	if len([]rune(res.Podcasts[0].Description)) != 153 {
		t.Errorf("Expected 150 chars plus ellipsis, got %d", len([]rune(res.Podcasts[0].Description)))
	}
	if res.Podcasts[0].Favorite.Favorited || !res.Podcasts[1].Favorite.Favorited {
		t.Error("Favorite state not taken from lookup")
	}
	if res.Podcasts[1].Favorite.Label != "⭐ Favorited" || res.Podcasts[1].Favorite.Class != "favorited" {
		t.Errorf("Unexpected control %+v", res.Podcasts[1].Favorite)
	}
	if res.Podcasts[1].Entry != (domain.FavoriteEntry{ID: 2, Title: "B", Image: "img.jpg"}) {
		t.Errorf("Unexpected toggle entry %+v", res.Podcasts[1].Entry)
	}
}

func TestEpisodeResults(t *testing.T) {
	r := NewRenderer(time.UTC, "")
	res := r.EpisodeResults([]domain.EpisodeSummary{
		{Title: "Ep", FeedTitle: "Show", FeedImage: "feed.jpg", Image: "ep.jpg", Duration: 3661, DatePublished: 1700000000, EnclosureURL: "https://cdn/ep.mp3"},
		{},
	}, "🆕 Recent Episodes")

	if res.CountText != "2 episodes" {
		t.Errorf("Unexpected count text %q", res.CountText)
	}
	full := res.Episodes[0]
	if full.Image != "feed.jpg" || full.Duration != "1h 1m" || full.Date != "11/14/2023" || full.ListenURL == "" {
		t.Errorf("Unexpected card %+v", full)
	}
	empty := res.Episodes[1]
	if empty.Title != "Untitled Episode" || empty.PodcastTitle != "Unknown Podcast" {
		t.Errorf("Unexpected fallbacks %+v", empty)
	}
	if empty.Date != "" || empty.Duration != "" || empty.ListenURL != "" {
		t.Errorf("Expected absent meta to be omitted, got %+v", empty)
	}
	if empty.FallbackImage != episodeFallback {
		t.Errorf("Unexpected fallback %q", empty.FallbackImage)
	}
}

func TestEpisodeModal(t *testing.T) {
	r := NewRenderer(time.UTC, "")
	m := r.EpisodeModal([]domain.EpisodeSummary{
		{Title: "One", FeedTitle: "Serial", Description: strings.Repeat("y", 250)},
		{Title: "Two", Description: "<p>short</p>", EnclosureURL: "https://cdn/2.mp3"},
	})

	if m.Heading != "Serial" || m.CountText != "2 episodes" {
		t.Errorf("Unexpected header %q / %q", m.Heading, m.CountText)
	}
	if len([]rune(m.Items[0].Description)) != 203 {
		t.Errorf("Expected 200 chars plus ellipsis, got %d", len([]rune(m.Items[0].Description)))
	}
	if m.Items[1].Description != "short" || m.Items[1].ListenURL != "https://cdn/2.mp3" {
		t.Errorf("Unexpected item %+v", m.Items[1])
	}
}

func TestEpisodeModalHeadingFallbackAndEmpty(t *testing.T) {
	r := NewRenderer(nil, "")
	m := r.EpisodeModal([]domain.EpisodeSummary{{Title: "x"}})
	if m.Heading != "Episodes" {
		t.Errorf("Expected fallback heading, got %q", m.Heading)
	}

	empty := r.EpisodeModal(nil)
	if empty.Message != "No episodes found" || empty.IsError {
		t.Errorf("Unexpected empty modal %+v", empty)
	}
}
