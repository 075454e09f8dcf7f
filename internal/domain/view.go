package domain

// View identifies which result set is currently on screen.
type View int

const (
	ViewNone View = iota
	ViewSearch
	ViewTrending
	ViewRecent
	ViewFavorites
)

func (v View) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewTrending:
		return "trending"
	case ViewRecent:
		return "recent"
	case ViewFavorites:
		return "favorites"
	default:
		return "none"
	}
}

// ParseView maps a String() value back to its View. Unknown names give
// ViewNone.
func ParseView(name string) View {
	for _, v := range []View{ViewSearch, ViewTrending, ViewRecent, ViewFavorites} {
		if v.String() == name {
			return v
		}
	}
	return ViewNone
}
