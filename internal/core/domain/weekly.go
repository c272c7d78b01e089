package domain

// DailyLog is one day of caller-supplied mood history. Read-only input to the
// weekly analysis; order is preserved as given.
type DailyLog struct {
	Date           string `json:"date"`
	MoodScore      int    `json:"mood_score"`
	Intention      string `json:"intention"`
	Weather        string `json:"weather"`
	JournalContent string `json:"journal_content"`
}

// WeeklyReport is the weekly analysis payload. Unlike the daily path there is
// no field-level merge: the provider's object is returned verbatim, or the
// whole fallback record is substituted.
type WeeklyReport struct {
	MoodSummary     string   `json:"mood_summary"`
	PatternInsight  string   `json:"pattern_insight"`
	PlaylistTitle   string   `json:"playlist_title"`
	SuggestedTracks []string `json:"suggested_tracks"`
	Advice          string   `json:"advice"`
}

// FallbackWeeklyReport returns the fixed record substituted wholesale when the
// weekly analysis fails for any reason. SuggestedTracks is non-nil so it
// serializes as an empty array, never null.
func FallbackWeeklyReport() WeeklyReport {
	return WeeklyReport{
		MoodSummary:     "Neutral",
		PatternInsight:  "Keep writing...",
		PlaylistTitle:   "Daily Mix",
		SuggestedTracks: []string{},
		Advice:          "Take it one day at a time.",
	}
}
