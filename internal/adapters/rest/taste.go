package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type syncTasteRequest struct {
	Token string `json:"token"`
}

type syncTasteResponse struct {
	MusicProfile string `json:"music_profile"`
}

// SyncSpotifyData handles POST /sync-spotify-data. An invalid or expired
// token degrades to the generic profile; this endpoint never reports an
// upstream failure.
func (h *Handler) SyncSpotifyData(c echo.Context) error {
	var req syncTasteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	profile := h.svc.SyncTasteProfile(c.Request().Context(), req.Token)
	return c.JSON(http.StatusOK, syncTasteResponse{MusicProfile: profile})
}
