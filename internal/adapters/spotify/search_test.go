package spotify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodtune-labs/moodtune/backend/internal/adapters/spotify"
	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

func TestFindTrack(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		artist      string
		statusCode  int
		response    string
		expected    domain.Track
		expectErr   bool
		wantNoMatch bool
	}{
		{
			name:       "confident match returns canonical values",
			title:      "Holocene",
			artist:     "Bon Iver",
			statusCode: http.StatusOK,
			response: `{
				"tracks": {
					"items": [
						{
							"id": "t1",
							"name": "Holocene",
							"artists": [ { "id": "a1", "name": "Bon Iver" } ],
							"album": {
								"name": "Bon Iver, Bon Iver",
								"images": [ { "url": "http://img.example/holocene.jpg" } ]
							}
						}
					]
				}
			}`,
			expected: domain.Track{
				ID:       "t1",
				Name:     "Holocene",
				Artist:   "Bon Iver",
				CoverURL: "http://img.example/holocene.jpg",
			},
		},
		{
			name:        "empty result set is a no-match",
			title:       "Ghost Song",
			artist:      "Nobody",
			statusCode:  http.StatusOK,
			response:    `{ "tracks": { "items": [] } }`,
			expectErr:   true,
			wantNoMatch: true,
		},
		{
			name:       "unrelated candidate below threshold is a no-match",
			title:      "Holocene",
			artist:     "Bon Iver",
			statusCode: http.StatusOK,
			response: `{
				"tracks": {
					"items": [
						{
							"id": "t9",
							"name": "Uptown Funk",
							"artists": [ { "id": "a9", "name": "Mark Ronson" } ],
							"album": { "name": "Uptown Special", "images": [] }
						}
					]
				}
			}`,
			expectErr:   true,
			wantNoMatch: true,
		},
		{
			name:       "upstream failure",
			title:      "Holocene",
			artist:     "Bon Iver",
			statusCode: http.StatusInternalServerError,
			response:   `{"error":"boom"}`,
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("expected path /search, got %s", r.URL.Path)
				}
				gotQuery = r.URL.Query().Get("q")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer ts.Close()

			client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
			track, err := client.FindTrack(context.Background(), tt.title, tt.artist)

			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got: %v", tt.expectErr, err)
			}
			if tt.wantNoMatch && !errors.Is(err, ports.ErrNoMatch) {
				t.Fatalf("expected ErrNoMatch, got %v", err)
			}
			if tt.expectErr {
				return
			}

			wantQuery := "track:" + tt.title + " artist:" + tt.artist
			if gotQuery != wantQuery {
				t.Errorf("query: got %q, want %q", gotQuery, wantQuery)
			}
			if track != tt.expected {
				t.Errorf("track: got %+v, want %+v", track, tt.expected)
			}
		})
	}
}

func TestSearchArtists(t *testing.T) {
	t.Run("maps results with nullable image", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("type"); got != "artist" {
				t.Errorf("type param: got %q, want artist", got)
			}
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit param: got %q, want 5", got)
			}
			_, _ = w.Write([]byte(`{
				"artists": {
					"items": [
						{ "id": "a1", "name": "Dua Lipa", "images": [ { "url": "http://img.example/dua.jpg" } ] },
						{ "id": "a2", "name": "Dua Saleh", "images": [] }
					]
				}
			}`))
		}))
		defer ts.Close()

		client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
		artists, err := client.SearchArtists(context.Background(), "Dua", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(artists) != 2 {
			t.Fatalf("expected 2 artists, got %d", len(artists))
		}
		if artists[0].ID != "a1" || artists[0].Image == nil || *artists[0].Image != "http://img.example/dua.jpg" {
			t.Errorf("first artist mapped wrong: %+v", artists[0])
		}
		if artists[1].Image != nil {
			t.Errorf("artist without photo should have nil image, got %v", *artists[1].Image)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer ts.Close()

		client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
		if _, err := client.SearchArtists(context.Background(), "Dua", 5); err == nil {
			t.Fatal("expected error")
		}
	})
}
