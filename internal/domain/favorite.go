package domain

// FavoriteEntry is a podcast the user has marked as a favorite.
// The favorites collection holds at most one entry per ID.
type FavoriteEntry struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Image  string `json:"image"`
	Author string `json:"author"`
}

// AsPodcast converts the entry back into a summary so it can be shown
// with the same card as search results.
func (f FavoriteEntry) AsPodcast() PodcastSummary {
	return PodcastSummary{
		ID:     f.ID,
		Title:  f.Title,
		Author: f.Author,
		Image:  f.Image,
	}
}

// FavoriteFromPodcast builds the entry stored when a podcast card is toggled.
func FavoriteFromPodcast(p PodcastSummary) FavoriteEntry {
	return FavoriteEntry{
		ID:     p.ID,
		Title:  p.Title,
		Image:  p.Image,
		Author: p.Author,
	}
}
