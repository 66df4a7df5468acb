package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hestonhamilton/media-sort/internal/config"
	"github.com/hestonhamilton/media-sort/internal/history"
	"github.com/hestonhamilton/media-sort/internal/relocate"
	"github.com/hestonhamilton/media-sort/internal/sorter"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openLogger opens the append-only run log. When the file cannot be
// opened the logger falls back to stderr so a run is never silent.
func openLogger(cfg *config.Config) (*slog.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediasort: cannot open log file %s: %v (logging to stderr)\n", cfg.Log.Path, err)
	} else {
		w = f
		closeFn = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	})
	return slog.New(handler), closeFn
}

// openHistory opens the sqlite history store when one is configured.
// Failure to open is not fatal: the run proceeds with the log file only.
func openHistory(cfg *config.Config, log *slog.Logger) *history.Store {
	if cfg.Database.Path == "" {
		return nil
	}
	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		log.Warn("history store disabled", "path", cfg.Database.Path, "error", err)
		return nil
	}
	return store
}

// newSorter wires a sorter from resolved configuration. The typed-nil
// check matters: a nil *history.Store must become a nil Recorder.
func newSorter(opts sorter.Options, log *slog.Logger, store *history.Store) *sorter.Sorter {
	var rec sorter.Recorder
	if store != nil {
		rec = store
	}
	return sorter.New(opts, log, rec)
}

func policyFromAction(action string) relocate.Policy {
	switch action {
	case "move":
		return relocate.PolicyQuarantine
	case "delete":
		return relocate.PolicyDelete
	default:
		return relocate.PolicySkip
	}
}

// resolveAction applies the policy flags over the configured action.
func resolveAction(cfg *config.Config, moveDupes, deleteDupes bool) string {
	switch {
	case moveDupes:
		return "move"
	case deleteDupes:
		return "delete"
	default:
		return cfg.Duplicates.Action
	}
}

func printSummary(rep *sorter.Report) {
	fmt.Printf("run %s: %d copied, %d duplicates (%d moved, %d deleted, %d skipped), %d errors\n",
		rep.RunID, rep.Copied, rep.Duplicates, rep.Moved, rep.Deleted, rep.Skipped, rep.Errors)
}
