package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

type searchArtistsResponse struct {
	Artists []domain.Artist `json:"artists"`
}

// SearchArtists handles GET /search-artists. An empty query serves the
// curated popular list; failures come back as an empty list, never an error.
func (h *Handler) SearchArtists(c echo.Context) error {
	artists := h.svc.SearchArtists(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, searchArtistsResponse{Artists: artists})
}
