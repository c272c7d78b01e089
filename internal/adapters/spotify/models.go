package spotify

import "github.com/moodtune-labs/moodtune/backend/internal/core/domain"

// spotifyImage is one entry of an image list. Spotify orders images widest
// first.
type spotifyImage struct {
	URL string `json:"url"`
}

// spotifyArtist represents an artist object from the Spotify API. The Images
// list is only populated on full artist objects (search results), not on the
// simplified artists embedded in tracks.
type spotifyArtist struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []spotifyImage `json:"images"`
}

// spotifyTrack represents a track object from the Spotify API.
type spotifyTrack struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Artists []spotifyArtist `json:"artists"`
	Album   struct {
		Name   string         `json:"name"`
		Images []spotifyImage `json:"images"`
	} `json:"album"`
}

// mapTrackToDomain flattens a raw Spotify track into the domain shape the
// gateway overwrites its record with: primary artist name and the largest
// album cover.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	artist := ""
	if len(st.Artists) > 0 {
		artist = st.Artists[0].Name
	}

	coverURL := ""
	if len(st.Album.Images) > 0 {
		coverURL = st.Album.Images[0].URL
	}

	return domain.Track{
		ID:       st.ID,
		Name:     st.Name,
		Artist:   artist,
		CoverURL: coverURL,
	}
}

// mapArtistToDomain converts a full artist object. Image stays nil when the
// artist has no photo, so the JSON field serializes as null.
func mapArtistToDomain(sa spotifyArtist) domain.Artist {
	var image *string
	if len(sa.Images) > 0 && sa.Images[0].URL != "" {
		url := sa.Images[0].URL
		image = &url
	}

	return domain.Artist{
		Name:  sa.Name,
		Image: image,
		ID:    sa.ID,
	}
}
