package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

// curatedArtists is the fixed list served for an empty artist search. Each
// name still gets resolved against the catalog so the client receives real
// IDs and images.
var curatedArtists = []string{
	"Taylor Swift",
	"The Weeknd",
	"Drake",
	"Billie Eilish",
	"Bad Bunny",
	"BTS",
	"Dua Lipa",
	"Ed Sheeran",
	"Ariana Grande",
}

// Gateway coordinates the inference, catalog, and weather providers behind
// the mood analysis endpoints. Every operation degrades to a documented
// default instead of returning an error: the caller never sees a failure.
type Gateway struct {
	analyzer ports.MoodAnalyzer
	catalog  ports.MusicCatalog
	taste    ports.TasteSource
	weather  ports.WeatherProvider
}

// NewGateway constructs a Gateway. Any dependency may be nil; the affected
// operations then serve their fallback records, so a missing credential at
// boot never turns into a request-time crash.
func NewGateway(analyzer ports.MoodAnalyzer, catalog ports.MusicCatalog, taste ports.TasteSource, weather ports.WeatherProvider) *Gateway {
	return &Gateway{
		analyzer: analyzer,
		catalog:  catalog,
		taste:    taste,
		weather:  weather,
	}
}

// AnalyzeEntry runs the daily pipeline: defaults, weather context, one
// inference call, field-level overlay, one catalog lookup. Failures are
// absorbed at the step where they occur and the record is returned as it
// stands at that point.
func (g *Gateway) AnalyzeEntry(ctx context.Context, entry domain.JournalEntry) domain.AnalysisResult {
	result := domain.DefaultAnalysis()

	// 1. Weather context (best effort, lat 0 means "not provided")
	weather := "Unknown"
	if g.weather != nil && entry.Lat != 0 {
		desc, err := g.weather.CurrentConditions(ctx, entry.Lat, entry.Lon)
		if err != nil {
			log.Printf("WARN gateway: weather lookup failed: %v", err)
		} else {
			weather = desc
		}
	}

	// 2. Inference
	if g.analyzer == nil {
		return result
	}
	obs, err := g.analyzer.AnalyzeEntry(ctx, entry, weather)
	if err != nil {
		if !errors.Is(err, ports.ErrUnparsable) {
			// Provider unreachable: stop at the point of failure.
			log.Printf("WARN gateway: mood analysis failed: %v", err)
			return result
		}
		// Provider answered garbage: keep defaults, keep going.
		log.Printf("WARN gateway: unparsable analysis reply: %v", err)
	} else {
		result.Apply(obs)
	}

	// 3. Catalog resolution of whatever the record now holds
	if g.catalog != nil && result.TrackName != "" && result.Artist != "" {
		track, err := g.catalog.FindTrack(ctx, result.TrackName, result.Artist)
		if err != nil {
			log.Printf("DEBUG gateway: keeping raw track suggestion: %v", err)
			return result
		}
		result.TrackName = track.Name
		result.Artist = track.Artist
		if track.CoverURL != "" {
			result.ImageURL = track.CoverURL
		}
	}

	return result
}

// AnalyzeWeek runs the weekly pipeline. One inference call is always issued,
// even for an empty log sequence. The provider's report is returned verbatim
// on success; any failure substitutes the complete fallback record. There is
// deliberately no field-level merge on this path.
func (g *Gateway) AnalyzeWeek(ctx context.Context, musicProfile string, logs []domain.DailyLog) domain.WeeklyReport {
	if musicProfile == "" {
		musicProfile = domain.DefaultMusicProfile
	}
	if g.analyzer == nil {
		return domain.FallbackWeeklyReport()
	}

	report, err := g.analyzer.AnalyzeWeek(ctx, musicProfile, logs)
	if err != nil {
		log.Printf("WARN gateway: weekly analysis failed: %v", err)
		return domain.FallbackWeeklyReport()
	}
	if report.SuggestedTracks == nil {
		report.SuggestedTracks = []string{}
	}
	return report
}

// SyncTasteProfile renders the user's top artists and tracks into one
// descriptive sentence. Any failure, including an invalid token, yields the
// generic profile; this operation never surfaces an error.
func (g *Gateway) SyncTasteProfile(ctx context.Context, accessToken string) string {
	if g.taste == nil || accessToken == "" {
		return domain.DefaultMusicProfile
	}

	artists, err := g.taste.TopArtists(ctx, accessToken, 20)
	if err != nil {
		log.Printf("WARN gateway: top artists fetch failed: %v", err)
		return domain.DefaultMusicProfile
	}
	tracks, err := g.taste.TopTracks(ctx, accessToken, 20)
	if err != nil {
		log.Printf("WARN gateway: top tracks fetch failed: %v", err)
		return domain.DefaultMusicProfile
	}
	if len(artists) == 0 && len(tracks) == 0 {
		return domain.DefaultMusicProfile
	}

	songs := make([]string, 0, len(tracks))
	for _, t := range tracks {
		songs = append(songs, fmt.Sprintf("%s by %s", t.Name, t.Artist))
	}

	return fmt.Sprintf("User loves artists: %s. Loves songs: %s.",
		strings.Join(artists, ", "), strings.Join(songs, ", "))
}

// SearchArtists serves either the curated popular list (empty query) or a
// live search. Failures collapse to an empty list, never an error.
func (g *Gateway) SearchArtists(ctx context.Context, query string) []domain.Artist {
	if g.catalog == nil {
		return []domain.Artist{}
	}

	if strings.TrimSpace(query) == "" {
		resolved := make([]domain.Artist, 0, len(curatedArtists))
		for _, name := range curatedArtists {
			matches, err := g.catalog.SearchArtists(ctx, name, 1)
			if err != nil {
				log.Printf("WARN gateway: curated artist lookup failed: %v", err)
				return []domain.Artist{}
			}
			if len(matches) > 0 {
				resolved = append(resolved, matches[0])
			}
		}
		return resolved
	}

	matches, err := g.catalog.SearchArtists(ctx, query, 5)
	if err != nil {
		log.Printf("WARN gateway: artist search failed: %v", err)
		return []domain.Artist{}
	}
	if matches == nil {
		matches = []domain.Artist{}
	}
	return matches
}
