package domain

// SearchRequest is a free-text podcast search
type SearchRequest struct {
	Query string `form:"q" validate:"required"`
}

// EpisodesRequest selects the podcast whose episodes are listed
type EpisodesRequest struct {
	PodcastID int64 `uri:"id" validate:"gt=0"`
}

// ToggleFavoriteRequest flips the favorite state of one podcast. The
// descriptive fields are what gets stored when it becomes a favorite.
// View and Filter describe the page the button was clicked on.
type ToggleFavoriteRequest struct {
	ID     int64  `uri:"id" validate:"gt=0"`
	Title  string `form:"title" validate:"max=500"`
	Image  string `form:"image" validate:"max=2048"`
	Author string `form:"author" validate:"max=500"`
	View   string `form:"view" validate:"omitempty,oneof=none search trending recent favorites"`
	Filter string `form:"filter" validate:"max=200"`
}

// Entry converts the request to the stored favorite
func (r ToggleFavoriteRequest) Entry() FavoriteEntry {
	return FavoriteEntry{ID: r.ID, Title: r.Title, Image: r.Image, Author: r.Author}
}
