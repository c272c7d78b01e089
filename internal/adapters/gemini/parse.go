package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

var digitsRe = regexp.MustCompile(`\d+`)

// parseEntryObservation reads a model reply into a partial observation.
//
// The structured-JSON path decodes each expected key independently: keys that
// are absent or do not decode stay unset, and values are passed through with
// no range checking. Only the legacy pipe format (Mood|Artist|Reason|Score)
// extracts digits and clamps the score to [1,10]; the two paths intentionally
// disagree on validation.
func parseEntryObservation(raw string) (domain.EntryObservation, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return domain.EntryObservation{}, fmt.Errorf("gemini: blank reply: %w", ports.ErrUnparsable)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err == nil {
		return overlayFromJSON(fields), nil
	}

	if strings.Contains(text, "|") {
		return parseLegacyPipe(text), nil
	}

	return domain.EntryObservation{}, fmt.Errorf("gemini: reply is neither JSON nor pipe-delimited: %w", ports.ErrUnparsable)
}

func overlayFromJSON(fields map[string]json.RawMessage) domain.EntryObservation {
	var obs domain.EntryObservation
	obs.Mood = stringField(fields, "mood")
	obs.Artist = stringField(fields, "artist")
	obs.TrackName = stringField(fields, "track_name")
	obs.Reason = stringField(fields, "reason")

	if raw, ok := fields["score"]; ok {
		var score int
		if err := json.Unmarshal(raw, &score); err == nil {
			obs.Score = &score
		}
	}

	return obs
}

func stringField(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// parseLegacyPipe handles the single-field format older prompt revisions
// produced: "Mood|Artist|Reason|Score". This is the one path that clamps.
func parseLegacyPipe(text string) domain.EntryObservation {
	var obs domain.EntryObservation

	parts := strings.Split(text, "|")
	if len(parts) >= 3 {
		mood := strings.TrimSpace(parts[0])
		artist := strings.TrimSpace(parts[1])
		reason := strings.TrimSpace(parts[2])
		obs.Mood = &mood
		obs.Artist = &artist
		obs.Reason = &reason
	}
	if len(parts) >= 4 {
		if digits := digitsRe.FindString(parts[3]); digits != "" {
			if score, err := strconv.Atoi(digits); err == nil {
				if score < 1 {
					score = 1
				}
				if score > 10 {
					score = 10
				}
				obs.Score = &score
			}
		}
	}

	return obs
}

// parseWeeklyReport decodes the weekly shape verbatim. There is no merge with
// defaults here: an unreadable reply is an error and the caller substitutes
// the whole fallback record.
func parseWeeklyReport(raw string) (domain.WeeklyReport, error) {
	text := stripCodeFence(raw)

	var report domain.WeeklyReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return domain.WeeklyReport{}, fmt.Errorf("gemini: decode weekly report: %w", ports.ErrUnparsable)
	}
	if report.SuggestedTracks == nil {
		report.SuggestedTracks = []string{}
	}
	return report, nil
}

// stripCodeFence removes a surrounding markdown fence, which the model emits
// when the JSON response mode is not honored.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
