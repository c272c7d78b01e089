package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_CurrentConditions(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		want         string
		wantErr      bool
	}{
		{
			name:         "success",
			status:       http.StatusOK,
			responseBody: `{"weather":[{"id":500,"main":"Rain","description":"light rain"}],"main":{"temp":17.2}}`,
			want:         "light rain",
		},
		{
			name:         "missing weather block",
			status:       http.StatusOK,
			responseBody: `{"main":{"temp":17.2}}`,
			wantErr:      true,
		},
		{
			name:         "bad api key",
			status:       http.StatusUnauthorized,
			responseBody: `{"cod":401,"message":"Invalid API key"}`,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/weather" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if got := r.URL.Query().Get("appid"); got != "test-key" {
					t.Errorf("appid: got %q", got)
				}
				if got := r.URL.Query().Get("units"); got != "metric" {
					t.Errorf("units: got %q", got)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient("test-key", srv.URL)
			desc, err := client.CurrentConditions(context.Background(), 40.7, -74.0)

			if (err != nil) != tt.wantErr {
				t.Fatalf("expected err=%v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && desc != tt.want {
				t.Errorf("description: got %q, want %q", desc, tt.want)
			}
		})
	}
}
