package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moodtune-labs/moodtune/backend/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc  *services.Gateway // Dependency on the Core Service
	echo *echo.Echo
}

// NewHandler initializes the HTTP adapter: middleware stack and routes.
func NewHandler(svc *services.Gateway) *Handler {
	e := echo.New()
	e.HideBanner = true

	e.Use(
		middleware.Logger(),
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		// The client app is served from arbitrary origins and sends
		// credentials, so the policy is deliberately wide open.
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:                             []string{"*"},
			AllowMethods:                             []string{"*"},
			AllowHeaders:                             []string{"*"},
			AllowCredentials:                         true,
			UnsafeWildcardOriginWithAllowCredentials: true,
		}),
	)

	h := &Handler{
		svc:  svc,
		echo: e,
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface by delegating to echo.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.echo.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.echo.GET("/health", h.HealthCheck)
	h.echo.POST("/analyze", h.AnalyzeEntry)
	h.echo.POST("/analyze-mood-music", h.AnalyzeWeek)
	h.echo.POST("/sync-spotify-data", h.SyncSpotifyData)
	h.echo.GET("/search-artists", h.SearchArtists)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
