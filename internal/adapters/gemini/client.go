// Package gemini adapts the Google Gemini API to the gateway's MoodAnalyzer
// port. Replies are requested as structured JSON and parsed best-effort; a
// reply that cannot be read reports ports.ErrUnparsable so the caller can keep
// its defaults without treating the provider as down.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

const defaultModel = "gemini-2.0-flash"

type Client struct {
	genai *genai.Client
	model string
}

// compile-time interface assertion
var _ ports.MoodAnalyzer = (*Client)(nil)

// NewClient constructs a Gemini-backed analyzer.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}

	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	return &Client{genai: genClient, model: defaultModel}, nil
}

// AnalyzeEntry sends one journal entry for analysis and returns the fields
// the model actually supplied.
func (c *Client) AnalyzeEntry(ctx context.Context, entry domain.JournalEntry, weather string) (domain.EntryObservation, error) {
	res, err := c.genai.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(buildEntryPrompt(entry, weather)),
		entryConfig(),
	)
	if err != nil {
		return domain.EntryObservation{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	text, err := replyText(res)
	if err != nil {
		return domain.EntryObservation{}, err
	}

	return parseEntryObservation(text)
}

// AnalyzeWeek sends the whole log sequence in one call and returns the
// provider's report verbatim.
func (c *Client) AnalyzeWeek(ctx context.Context, musicProfile string, logs []domain.DailyLog) (domain.WeeklyReport, error) {
	res, err := c.genai.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(buildWeeklyPrompt(musicProfile, logs)),
		weeklyConfig(),
	)
	if err != nil {
		return domain.WeeklyReport{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	text, err := replyText(res)
	if err != nil {
		return domain.WeeklyReport{}, err
	}

	return parseWeeklyReport(text)
}

func entryConfig() *genai.GenerateContentConfig {
	var minScore float64 = 1
	var maxScore float64 = 10

	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"mood":       {Type: genai.TypeString},
				"artist":     {Type: genai.TypeString},
				"track_name": {Type: genai.TypeString},
				"reason":     {Type: genai.TypeString},
				"score": {
					Type:    genai.TypeInteger,
					Minimum: &minScore,
					Maximum: &maxScore,
				},
			},
			PropertyOrdering: []string{"mood", "artist", "track_name", "reason", "score"},
		},
	}
}

func weeklyConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"mood_summary":    {Type: genai.TypeString},
				"pattern_insight": {Type: genai.TypeString},
				"playlist_title":  {Type: genai.TypeString},
				"suggested_tracks": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
				"advice": {Type: genai.TypeString},
			},
			PropertyOrdering: []string{"mood_summary", "pattern_insight", "playlist_title", "suggested_tracks", "advice"},
		},
	}
}

// replyText extracts the first candidate's text. Safety-filtered or empty
// responses come back with no candidates.
func replyText(res *genai.GenerateContentResponse) (string, error) {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty reply: %w", ports.ErrUnparsable)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
