package domain

// DefaultMusicProfile is the sentinel taste profile used whenever a real one
// is missing or cannot be derived.
const DefaultMusicProfile = "General Pop"

// defaultCoverURL is the placeholder artwork returned until the catalog
// resolves a real album cover.
const defaultCoverURL = "https://i.scdn.co/image/ab67616d0000b2735755e164993798e0c9ef7d7a"

// JournalEntry is one free-text journal submission. It lives for a single
// request and is never persisted.
type JournalEntry struct {
	Text         string
	Lat          float64
	Lon          float64
	LocalTime    string
	MusicProfile string
}

// AnalysisResult is the daily analysis payload. Every field is always
// populated: fields the inference provider does not supply keep the values
// from DefaultAnalysis.
type AnalysisResult struct {
	Mood      string `json:"mood"`
	Artist    string `json:"artist"`
	TrackName string `json:"track_name"`
	Reason    string `json:"reason"`
	Score     int    `json:"score"`
	ImageURL  string `json:"image_url"`
}

// DefaultAnalysis returns the fixed record the daily path falls back to.
func DefaultAnalysis() AnalysisResult {
	return AnalysisResult{
		Mood:      "Calm",
		Artist:    "Lofi Girl",
		TrackName: "lofi hip hop radio",
		Reason:    "Just breathing.",
		Score:     5,
		ImageURL:  defaultCoverURL,
	}
}

// EntryObservation is the provider's partial view of an analysis. Nil fields
// were absent (or undecodable) in the provider reply and must not disturb the
// defaults.
type EntryObservation struct {
	Mood      *string
	Artist    *string
	TrackName *string
	Reason    *string
	Score     *int
}

// Apply overlays the observation's present fields onto the result. This is a
// shallow merge, not validation: provider-supplied values replace defaults
// unmodified.
func (r *AnalysisResult) Apply(obs EntryObservation) {
	if obs.Mood != nil {
		r.Mood = *obs.Mood
	}
	if obs.Artist != nil {
		r.Artist = *obs.Artist
	}
	if obs.TrackName != nil {
		r.TrackName = *obs.TrackName
	}
	if obs.Reason != nil {
		r.Reason = *obs.Reason
	}
	if obs.Score != nil {
		r.Score = *obs.Score
	}
}
