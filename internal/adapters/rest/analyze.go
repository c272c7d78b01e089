package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

type analyzeRequest struct {
	Text         string  `json:"text"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	LocalTime    string  `json:"local_time"`
	MusicProfile string  `json:"music_profile"`
}

// AnalyzeEntry handles POST /analyze. Provider failures never surface here:
// the gateway always produces a fully populated record, so this endpoint
// answers 200 for any decodable body.
func (h *Handler) AnalyzeEntry(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	entry := domain.JournalEntry{
		Text:         req.Text,
		Lat:          req.Lat,
		Lon:          req.Lon,
		LocalTime:    req.LocalTime,
		MusicProfile: req.MusicProfile,
	}

	result := h.svc.AnalyzeEntry(c.Request().Context(), entry)
	return c.JSON(http.StatusOK, result)
}
