package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

type weeklyRequest struct {
	UserID       string            `json:"user_id"`
	MusicProfile string            `json:"music_profile"`
	Logs         []domain.DailyLog `json:"logs"`
}

// AnalyzeWeek handles POST /analyze-mood-music. The user_id is opaque and
// unused by the analysis; logs are forwarded in the order received.
func (h *Handler) AnalyzeWeek(c echo.Context) error {
	var req weeklyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	report := h.svc.AnalyzeWeek(c.Request().Context(), req.MusicProfile, req.Logs)
	return c.JSON(http.StatusOK, report)
}
