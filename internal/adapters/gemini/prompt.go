package gemini

import (
	"fmt"
	"strings"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

// buildEntryPrompt embeds the journal text with its context into a single
// instruction. The JSON shape is restated in the prompt even though the
// request also carries a response schema; older model revisions ignored the
// schema and answered in the legacy pipe format instead.
func buildEntryPrompt(entry domain.JournalEntry, weather string) string {
	localTime := entry.LocalTime
	if localTime == "" {
		localTime = "12:00 PM"
	}
	profile := entry.MusicProfile
	if profile == "" {
		profile = domain.DefaultMusicProfile
	}

	var b strings.Builder
	b.WriteString("Analyze this journal entry.\n")
	fmt.Fprintf(&b, "User Text: %q (Context: %s, %s)\n", entry.Text, weather, localTime)
	fmt.Fprintf(&b, "Listener taste: %s\n\n", profile)
	b.WriteString("TASK:\n")
	b.WriteString("1. mood: the user's mood in one word.\n")
	b.WriteString("2. artist: a specific music artist fitting the mood and the listener taste.\n")
	b.WriteString("3. track_name: one song by that artist.\n")
	b.WriteString("4. reason: a short reason for the pick.\n")
	b.WriteString("5. score: valence as an integer 1-10 (1-3 distress, 4-6 neutral, 7-10 positive).\n\n")
	b.WriteString("Return ONLY a JSON object with keys mood, artist, track_name, reason, score.")

	return b.String()
}

// buildWeeklyPrompt concatenates the log sequence, one line per day in input
// order, and asks for the weekly report shape in a single call.
func buildWeeklyPrompt(musicProfile string, logs []domain.DailyLog) string {
	var b strings.Builder
	b.WriteString("You are reviewing one week of mood journal logs.\n\nLogs (in order):\n")
	if len(logs) == 0 {
		b.WriteString("(no logs were recorded this week)\n")
	}
	for _, l := range logs {
		fmt.Fprintf(&b, "%s | mood %d/10 | intention: %s | journal: %s\n",
			l.Date, l.MoodScore, l.Intention, l.JournalContent)
	}

	b.WriteString("\nTASK:\n")
	b.WriteString("1. mood_summary: the week's overall mood in a word or two.\n")
	b.WriteString("2. pattern_insight: name one behavioral pattern across the week.\n")
	if musicProfile == domain.DefaultMusicProfile {
		b.WriteString("3. suggested_tracks: a playlist of exactly 5 entries formatted \"Song - Artist\"; pick freely across popular music.\n")
	} else {
		fmt.Fprintf(&b, "3. suggested_tracks: a playlist of exactly 5 entries formatted \"Song - Artist\"; honor this taste literally: %s.\n", musicProfile)
	}
	b.WriteString("4. playlist_title: a short title for that playlist.\n")
	b.WriteString("5. advice: one sentence of advice for next week.\n\n")
	b.WriteString("Return ONLY a JSON object with keys mood_summary, pattern_insight, playlist_title, suggested_tracks, advice.")

	return b.String()
}
