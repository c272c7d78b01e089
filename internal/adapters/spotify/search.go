package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

const trackSearchLimit = 5

// FindTrack resolves a title/artist pair to the catalog's canonical track.
// The top candidates are confidence-scored; when none clears the threshold a
// NoMatchError is returned so the caller keeps its raw values.
func (c *Client) FindTrack(ctx context.Context, title, artist string) (domain.Track, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	query := searchURL.Query()
	query.Set("q", fmt.Sprintf("track:%s artist:%s", title, artist))
	query.Set("type", "track")
	query.Set("limit", strconv.Itoa(trackSearchLimit))
	searchURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Track{}, fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	var searchBody struct {
		Tracks struct {
			Items []spotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchBody); err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: search decode error: %w", err)
	}

	if len(searchBody.Tracks.Items) == 0 {
		return domain.Track{}, fmt.Errorf("spotify adapter: %w", &ports.NoMatchError{Title: title, Artist: artist})
	}

	bestScore := 0.0
	bestIndex := -1
	for i, candidate := range searchBody.Tracks.Items {
		score, ok := trackMatchScore(title, artist, candidate)
		log.Printf("DEBUG spotify adapter: candidate %s - %s (score %.2f)", joinArtistNames(candidate), candidate.Name, score)
		if ok && score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex == -1 {
		return domain.Track{}, fmt.Errorf("spotify adapter: %w", &ports.NoMatchError{Title: title, Artist: artist})
	}

	return mapTrackToDomain(searchBody.Tracks.Items[bestIndex]), nil
}

// SearchArtists performs a live artist search and maps up to limit results.
func (c *Client) SearchArtists(ctx context.Context, query string, limit int) ([]domain.Artist, error) {
	if limit < 1 {
		limit = 1
	}

	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "artist")
	q.Set("limit", strconv.Itoa(limit))
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: artist search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: artist search status %d", resp.StatusCode)
	}

	var searchBody struct {
		Artists struct {
			Items []spotifyArtist `json:"items"`
		} `json:"artists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchBody); err != nil {
		return nil, fmt.Errorf("spotify adapter: artist search decode error: %w", err)
	}

	artists := make([]domain.Artist, 0, len(searchBody.Artists.Items))
	for _, item := range searchBody.Artists.Items {
		artists = append(artists, mapArtistToDomain(item))
	}

	return artists, nil
}
