package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

// ErrNoMatch indicates search results did not meet the confidence threshold.
var ErrNoMatch = errors.New("no confident match")

// NoMatchError provides context for a failed track resolution.
type NoMatchError struct {
	Title  string
	Artist string
}

func (e NoMatchError) Error() string {
	if e.Title == "" && e.Artist == "" {
		return ErrNoMatch.Error()
	}
	return fmt.Sprintf("no confident match found for title %q artist %q", e.Title, e.Artist)
}

func (e NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

type MusicCatalog interface {
	// FindTrack resolves a title/artist pair to the catalog's canonical track.
	// Returns an error wrapping ErrNoMatch when nothing scores high enough.
	FindTrack(ctx context.Context, title, artist string) (domain.Track, error)

	// SearchArtists performs a live artist search, returning at most limit
	// results in catalog ranking order.
	SearchArtists(ctx context.Context, query string, limit int) ([]domain.Artist, error)
}
