package ports

import (
	"context"
	"errors"

	"github.com/moodtune-labs/moodtune/backend/internal/core/domain"
)

// ErrUnparsable indicates the inference provider answered, but its reply could
// not be read into the expected shape. The gateway treats this differently
// from an unreachable provider: defaults are kept and the request continues.
var ErrUnparsable = errors.New("unparsable provider reply")

type MoodAnalyzer interface {
	// AnalyzeEntry asks the provider for a structured reading of one journal
	// entry. The returned observation only carries the fields the provider
	// actually supplied.
	AnalyzeEntry(ctx context.Context, entry domain.JournalEntry, weather string) (domain.EntryObservation, error)

	// AnalyzeWeek asks the provider for a full weekly report. The report is
	// returned verbatim; callers substitute the fallback record on error.
	AnalyzeWeek(ctx context.Context, musicProfile string, logs []domain.DailyLog) (domain.WeeklyReport, error)
}
