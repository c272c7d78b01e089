package ports

import (
	"context"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

// TasteSource exposes a user's listening history behind their own bearer
// credential, as opposed to the app-level MusicCatalog access.
type TasteSource interface {
	TopArtists(ctx context.Context, accessToken string, limit int) ([]string, error)
	TopTracks(ctx context.Context, accessToken string, limit int) ([]domain.TasteTrack, error)
}
