package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

// tasteTimeRange is the ranking window for the user's top items.
const tasteTimeRange = "medium_term"

// TopArtists returns the names of the user's top artists. The access token
// belongs to the user, so the request bypasses the app-credential transport.
func (c *Client) TopArtists(ctx context.Context, accessToken string, limit int) ([]string, error) {
	var body struct {
		Items []spotifyArtist `json:"items"`
	}
	if err := c.getTopItems(ctx, "artists", accessToken, limit, &body); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(body.Items))
	for _, item := range body.Items {
		names = append(names, item.Name)
	}
	return names, nil
}

// TopTracks returns the user's top tracks as name/artist pairs.
func (c *Client) TopTracks(ctx context.Context, accessToken string, limit int) ([]domain.TasteTrack, error) {
	var body struct {
		Items []spotifyTrack `json:"items"`
	}
	if err := c.getTopItems(ctx, "tracks", accessToken, limit, &body); err != nil {
		return nil, err
	}

	tracks := make([]domain.TasteTrack, 0, len(body.Items))
	for _, item := range body.Items {
		artist := ""
		if len(item.Artists) > 0 {
			artist = item.Artists[0].Name
		}
		tracks = append(tracks, domain.TasteTrack{Name: item.Name, Artist: artist})
	}
	return tracks, nil
}

func (c *Client) getTopItems(ctx context.Context, kind, accessToken string, limit int, out any) error {
	if accessToken == "" {
		return fmt.Errorf("spotify adapter: access token is required")
	}
	if limit < 1 {
		limit = 20
	}

	topURL, err := url.Parse(c.baseURL + "/me/top/" + kind)
	if err != nil {
		return fmt.Errorf("spotify adapter: invalid top %s url: %w", kind, err)
	}
	q := topURL.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("time_range", tasteTimeRange)
	topURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, topURL.String(), nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: build top %s request: %w", kind, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.userClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: top %s request failed: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify adapter: top %s status %d", kind, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: top %s decode error: %w", kind, err)
	}
	return nil
}
