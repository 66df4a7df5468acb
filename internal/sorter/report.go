package sorter

import (
	"github.com/hestonhamilton/media-sort/internal/dedupe"
	"github.com/hestonhamilton/media-sort/internal/history"
)

// Recorder receives run events. *history.Store satisfies it; a nil
// Recorder disables durable history with no other behavior change.
type Recorder interface {
	Add(e *history.Event) error
}

// Record is one event accumulated during a run.
type Record struct {
	Kind       string
	SourcePath string
	DestPath   string
	Category   string
	Detail     string
}

// Report is the per-run result value returned by Run and Dupecheck.
// It replaces any global duplicate-list state: each run owns its own
// accumulator and discards it when the caller is done.
type Report struct {
	RunID string

	Copied     int
	Duplicates int
	Moved      int
	Deleted    int
	Skipped    int
	Errors     int

	Records []Record

	// NearMatches holds name-gate near misses when requested; report
	// only, never fed back into the duplicate policy.
	NearMatches []dedupe.NearMatch
}

// add appends a record and bumps the matching counter.
func (r *Report) add(rec Record) {
	r.Records = append(r.Records, rec)
	switch rec.Kind {
	case history.KindCopied:
		r.Copied++
	case history.KindDuplicateFound:
		r.Duplicates++
	case history.KindDuplicateMoved:
		r.Moved++
	case history.KindDuplicateDeleted:
		r.Deleted++
	case history.KindError:
		r.Errors++
	}
}
