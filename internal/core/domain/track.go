package domain

// Track is a catalog resolution result. Only the fields the gateway needs to
// overwrite the provider's raw suggestion are carried.
type Track struct {
	ID       string
	Name     string
	Artist   string
	CoverURL string
}

// Artist is one artist search result. Image is nil when the catalog has no
// photo for the artist.
type Artist struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
	ID    string  `json:"id"`
}

// TasteTrack is one entry of a user's top tracks, used to render a taste
// profile sentence.
type TasteTrack struct {
	Name   string
	Artist string
}
