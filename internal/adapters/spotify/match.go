package spotify

import (
	"strings"
	"unicode"
)

const (
	minTitleSimilarity   = 0.65
	minArtistSimilarity  = 0.55
	minOverallSimilarity = 0.70
)

// noiseTokens are suffix words that vary between catalog editions of the same
// recording and should not count against a match.
var noiseTokens = map[string]struct{}{
	"clean":      {},
	"deluxe":     {},
	"edition":    {},
	"edit":       {},
	"explicit":   {},
	"feat":       {},
	"featuring":  {},
	"ft":         {},
	"live":       {},
	"mix":        {},
	"mono":       {},
	"radio":      {},
	"remaster":   {},
	"remastered": {},
	"stereo":     {},
	"version":    {},
}

// trackMatchScore compares a requested title/artist pair against a search
// candidate. The boolean reports whether the candidate clears all three
// confidence thresholds.
func trackMatchScore(requestTitle, requestArtist string, candidate spotifyTrack) (float64, bool) {
	wantTitle := normalizeQueryText(requestTitle)
	wantArtist := normalizeQueryText(requestArtist)
	gotTitle := normalizeQueryText(candidate.Name)
	gotArtist := normalizeQueryText(joinArtistNames(candidate))

	if wantTitle == "" || wantArtist == "" || gotTitle == "" || gotArtist == "" {
		return 0, false
	}

	titleSim := similarity(wantTitle, gotTitle)
	artistSim := similarity(wantArtist, gotArtist)
	score := 0.7*titleSim + 0.3*artistSim

	ok := titleSim >= minTitleSimilarity &&
		artistSim >= minArtistSimilarity &&
		score >= minOverallSimilarity
	return score, ok
}

// normalizeQueryText lowercases, drops bracketed segments and noise tokens,
// and collapses separators, so "Song (Live) [Remastered]" and "song" compare
// equal.
func normalizeQueryText(input string) string {
	if input == "" {
		return ""
	}

	lower := strings.ToLower(input)
	filtered := stripBracketedSegments(lower)
	tokens := strings.Fields(collapseSeparators(filtered))

	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, drop := noiseTokens[token]; drop {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

func stripBracketedSegments(input string) string {
	var out strings.Builder
	depth := 0
	for _, r := range input {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				out.WriteRune(r)
			}
		}
	}
	return out.String()
}

func collapseSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}
	return out.String()
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(editDistance(a, b))/float64(maxLen)
}

func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		copy(prev, curr)
	}

	return prev[len(rb)]
}

func joinArtistNames(track spotifyTrack) string {
	if len(track.Artists) == 0 {
		return ""
	}
	parts := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		parts = append(parts, artist.Name)
	}
	return strings.Join(parts, " ")
}
