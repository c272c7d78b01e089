// Package spotify adapts the Spotify Web API to the gateway's MusicCatalog
// and TasteSource ports. App-level calls (search) ride a client-credentials
// transport that refreshes its own token; user-level calls (/me/top/*) carry
// the caller's bearer token instead.
package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	tokenURL       = "https://accounts.spotify.com/api/token"
)

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient *http.Client // client-credentials transport for app calls
	userClient *http.Client // bare transport for user bearer-token calls
	baseURL    string
}

// compile-time interface assertions
var (
	_ ports.MusicCatalog = (*Client)(nil)
	_ ports.TasteSource  = (*Client)(nil)
)

// NewClient constructs a Spotify client using the client-credentials flow.
// The oauth2 transport caches and refreshes the app token and is safe to
// share across concurrent requests.
func NewClient(clientID, clientSecret string) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	appClient := conf.Client(context.Background())
	appClient.Timeout = 15 * time.Second

	return &Client{
		httpClient: appClient,
		userClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL constructs a client against an arbitrary endpoint with
// no token exchange. Used by tests to point at a fake server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		userClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
