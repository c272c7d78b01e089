package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodtune-labs/moodtune/backend/internal/adapters/spotify"
)

func TestTopArtists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/top/artists" {
			t.Errorf("expected path /me/top/artists, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer user-token" {
			t.Errorf("Authorization: got %q", got)
		}
		if got := r.URL.Query().Get("time_range"); got != "medium_term" {
			t.Errorf("time_range: got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit: got %q", got)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"a1","name":"Bon Iver"},{"id":"a2","name":"Sufjan Stevens"}]}`))
	}))
	defer ts.Close()

	client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
	names, err := client.TopArtists(context.Background(), "user-token", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "Bon Iver" || names[1] != "Sufjan Stevens" {
		t.Errorf("names: got %v", names)
	}
}

func TestTopTracks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/top/tracks" {
			t.Errorf("expected path /me/top/tracks, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"t1","name":"Holocene","artists":[{"id":"a1","name":"Bon Iver"}]}]}`))
	}))
	defer ts.Close()

	client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
	tracks, err := client.TopTracks(context.Background(), "user-token", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Holocene" || tracks[0].Artist != "Bon Iver" {
		t.Errorf("tracks: got %+v", tracks)
	}
}

func TestTopItems_Failures(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		client := spotify.NewClientWithBaseURL(http.DefaultClient, ts.URL)
		if _, err := client.TopArtists(context.Background(), "stale", 20); err == nil {
			t.Fatal("expected error for 401")
		}
	})

	t.Run("missing token fails before the request", func(t *testing.T) {
		client := spotify.NewClientWithBaseURL(http.DefaultClient, "http://127.0.0.1:0")
		if _, err := client.TopTracks(context.Background(), "", 20); err == nil {
			t.Fatal("expected error for empty token")
		}
	})
}
