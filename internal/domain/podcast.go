package domain

// PodcastSummary is a podcast as returned by the directory API.
type PodcastSummary struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Artwork      string `json:"artwork"`
	EpisodeCount int    `json:"episodeCount"`
	FeedURL      string `json:"feedUrl,omitempty"`
}

// EpisodeSummary is a single episode as returned by the directory API.
type EpisodeSummary struct {
	ID            int64  `json:"id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	FeedTitle     string `json:"feedTitle"`
	FeedImage     string `json:"feedImage"`
	Image         string `json:"image"`
	Duration      int64  `json:"duration"`      // seconds
	DatePublished int64  `json:"datePublished"` // unix seconds
	EnclosureURL  string `json:"enclosureUrl"`
}

// PodcastListResponse is the body of /api/search and /api/trending
type PodcastListResponse struct {
	Feeds []PodcastSummary `json:"feeds"`
	Count int              `json:"count"`
	Error string           `json:"error,omitempty"`
}

// EpisodeListResponse is the body of /api/recent and /api/podcast/{id}/episodes
type EpisodeListResponse struct {
	Items []EpisodeSummary `json:"items"`
	Count int              `json:"count"`
	Error string           `json:"error,omitempty"`
}
