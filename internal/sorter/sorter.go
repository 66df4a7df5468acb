// Package sorter walks a source tree, buckets each file by category and
// date, and resolves duplicates against everything placed earlier in the
// run. It is deliberately single-threaded: every filesystem operation
// runs to completion before the next file is considered.
package sorter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hestonhamilton/media-sort/internal/classify"
	"github.com/hestonhamilton/media-sort/internal/dedupe"
	"github.com/hestonhamilton/media-sort/internal/history"
	"github.com/hestonhamilton/media-sort/internal/relocate"
	"github.com/hestonhamilton/media-sort/internal/timestamp"
)

// Options configure one sorter instance.
type Options struct {
	Source      string
	Destination string
	ByDate      bool // false buckets by category only
	Policy      relocate.Policy
	VerifyBytes bool
}

// Sorter drives one run against one source/destination pair.
type Sorter struct {
	opts   Options
	engine *dedupe.Engine
	reloc  *relocate.Relocator
	log    *slog.Logger
	rec    Recorder
}

// New creates a sorter. rec may be nil to disable durable history.
func New(opts Options, log *slog.Logger, rec Recorder) *Sorter {
	return &Sorter{
		opts:   opts,
		engine: dedupe.NewEngine(log, opts.VerifyBytes),
		reloc:  relocate.New(opts.Destination, log),
		log:    log,
		rec:    rec,
	}
}

func newRunID() string {
	return time.Now().Format("20060102-150405.000000")
}

// Run sorts the source tree into the destination tree and returns the
// per-run report. No single file's failure aborts the run; failures are
// recorded and processing continues with the next file.
func (s *Sorter) Run() (*Report, error) {
	rep := &Report{RunID: newRunID()}
	s.log.Info("sorting files", "source", s.opts.Source, "destination", s.opts.Destination)
	s.record(rep, Record{Kind: history.KindRunStarted, SourcePath: s.opts.Source, DestPath: s.opts.Destination})

	files, err := Scan(s.opts.Source)
	if err != nil {
		s.log.Error("directory access failed", "path", s.opts.Source, "error", err)
		s.record(rep, Record{Kind: history.KindError, SourcePath: s.opts.Source, Detail: err.Error()})
		return rep, nil
	}

	// Destination paths already written this run; the "already seen"
	// set for duplicate comparison. First-seen wins its natural spot.
	var placed []string

	for _, path := range files {
		s.processFile(rep, path, &placed)
	}
	return rep, nil
}

// processFile classifies and buckets one file, compares it against the
// placed set, and either applies the duplicate policy or copies it.
func (s *Sorter) processFile(rep *Report, path string, placed *[]string) {
	category := classify.Categorize(path)

	bucketDir, err := s.bucketDir(path, category)
	if err != nil {
		s.fileError(rep, path, category, err)
		return
	}
	if err := os.MkdirAll(bucketDir, 0755); err != nil {
		s.fileError(rep, path, category, fmt.Errorf("create bucket: %w", err))
		return
	}

	if dup := s.findDuplicate(path, *placed); dup != "" {
		s.handleDuplicate(rep, path, category, dup)
		return
	}

	dest := relocate.AvailablePath(filepath.Join(bucketDir, filepath.Base(path)))
	size, err := relocate.CopyFile(path, dest)
	if err != nil {
		s.fileError(rep, path, category, err)
		return
	}

	s.log.Info("file copied", "src", path, "dest", dest, "size_bytes", size)
	s.record(rep, Record{Kind: history.KindCopied, SourcePath: path, DestPath: dest, Category: category.String()})
	*placed = append(*placed, dest)
}

// bucketDir builds the destination directory for a file:
// <dest>/<category>[/<year>/<month>].
func (s *Sorter) bucketDir(path string, category classify.Category) (string, error) {
	if !s.opts.ByDate {
		return filepath.Join(s.opts.Destination, category.String()), nil
	}
	ts, err := timestamp.OldestTime(path, s.log)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.opts.Destination, category.String(), timestamp.Bucket(ts)), nil
}

// findDuplicate returns the first earlier-placed file path judges
// identical, or "".
func (s *Sorter) findDuplicate(path string, placed []string) string {
	for _, prev := range placed {
		if s.engine.Identical(path, prev) {
			return prev
		}
	}
	return ""
}

// handleDuplicate records the finding and applies the configured policy.
func (s *Sorter) handleDuplicate(rep *Report, path string, category classify.Category, dup string) {
	s.log.Info("duplicate found", "path", path, "duplicate_of", dup)
	s.record(rep, Record{
		Kind:       history.KindDuplicateFound,
		SourcePath: path,
		Category:   category.String(),
		Detail:     "duplicate of " + dup,
	})

	out, err := s.reloc.Relocate(path, s.opts.Policy)
	if err != nil {
		s.fileError(rep, path, category, err)
		return
	}

	switch out.Policy {
	case relocate.PolicyQuarantine:
		s.record(rep, Record{Kind: history.KindDuplicateMoved, SourcePath: path, DestPath: out.DestPath, Category: category.String()})
	case relocate.PolicyDelete:
		s.record(rep, Record{Kind: history.KindDuplicateDeleted, SourcePath: path, Category: category.String()})
	default:
		rep.Skipped++
	}
}

func (s *Sorter) fileError(rep *Report, path string, category classify.Category, err error) {
	s.log.Warn("file skipped", "path", path, "error", err)
	s.record(rep, Record{Kind: history.KindError, SourcePath: path, Category: category.String(), Detail: err.Error()})
}

// record accumulates into the report and forwards to the history store
// when one is configured. History failures never interrupt processing.
func (s *Sorter) record(rep *Report, rec Record) {
	rep.add(rec)
	if s.rec == nil {
		return
	}
	err := s.rec.Add(&history.Event{
		RunID:      rep.RunID,
		Kind:       rec.Kind,
		SourcePath: rec.SourcePath,
		DestPath:   rec.DestPath,
		Category:   rec.Category,
		Detail:     rec.Detail,
	})
	if err != nil {
		s.log.Warn("history write failed", "error", err)
	}
}
