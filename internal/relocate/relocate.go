// Package relocate decides where a file judged duplicate goes and
// performs the move, delete, or skip.
package relocate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hestonhamilton/media-sort/internal/classify"
	"github.com/hestonhamilton/media-sort/internal/timestamp"
)

// Policy selects what happens to a duplicate file.
type Policy int

const (
	// PolicySkip leaves the duplicate in place and only logs it.
	PolicySkip Policy = iota
	// PolicyQuarantine moves the duplicate into the quarantine subtree
	// under the destination root, keyed by category and year/month.
	PolicyQuarantine
	// PolicyDelete permanently removes the duplicate.
	PolicyDelete
)

func (p Policy) String() string {
	switch p {
	case PolicyQuarantine:
		return "quarantine"
	case PolicyDelete:
		return "delete"
	default:
		return "skip"
	}
}

// QuarantineDir is the subtree under the destination root that holds
// quarantined duplicates, mirroring the category/date structure.
const QuarantineDir = "duplicates"

// LocalDupeDir is the sibling directory duplicates move into during
// directory-scan mode, where no destination root exists. Scans skip it
// so a second pass never re-examines already-flagged files.
const LocalDupeDir = "dupe"

// Outcome reports what Relocate did with a file.
type Outcome struct {
	Policy   Policy
	DestPath string // destination path for quarantine moves, else empty
}

// Relocator applies duplicate policies against a destination root.
type Relocator struct {
	destRoot string
	log      *slog.Logger
}

// New returns a relocator quarantining under destRoot.
func New(destRoot string, log *slog.Logger) *Relocator {
	return &Relocator{destRoot: destRoot, log: log}
}

// Relocate applies policy to the duplicate at path. Filesystem errors
// are returned for the caller to record; they never abort a run.
func (r *Relocator) Relocate(path string, policy Policy) (Outcome, error) {
	switch policy {
	case PolicyQuarantine:
		return r.quarantine(path)
	case PolicyDelete:
		// Logged before the attempt so the log reflects intent even if
		// the delete fails.
		r.log.Info("duplicate found, deleting", "path", path)
		if err := os.Remove(path); err != nil {
			return Outcome{Policy: PolicyDelete}, fmt.Errorf("delete duplicate %s: %w", path, err)
		}
		return Outcome{Policy: PolicyDelete}, nil
	default:
		r.log.Info("duplicate found, not copying", "path", path)
		return Outcome{Policy: PolicySkip}, nil
	}
}

// quarantine moves path under <destRoot>/duplicates/<category>/<year>/<month>/,
// renaming on collision. The bucket derives from the file's own category
// and timestamps, read at relocation time.
func (r *Relocator) quarantine(path string) (Outcome, error) {
	out := Outcome{Policy: PolicyQuarantine}

	category := classify.Categorize(path)
	ts, err := timestamp.OldestTime(path, r.log)
	if err != nil {
		return out, fmt.Errorf("quarantine %s: %w", path, err)
	}

	dir := filepath.Join(r.destRoot, QuarantineDir, category.String(), timestamp.Bucket(ts))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return out, fmt.Errorf("quarantine %s: create %s: %w", path, dir, err)
	}

	dest := AvailablePath(filepath.Join(dir, filepath.Base(path)))
	if err := MoveFile(path, dest); err != nil {
		return out, fmt.Errorf("quarantine %s: %w", path, err)
	}

	out.DestPath = dest
	r.log.Info("moved duplicate", "src", path, "dest", dest)
	return out, nil
}

// QuarantineLocal moves path into a "dupe" directory next to it,
// renaming on collision. Used by directory-scan mode, which has no
// destination root to build a quarantine subtree under.
func QuarantineLocal(path string) (string, error) {
	dir := filepath.Join(filepath.Dir(path), LocalDupeDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("quarantine %s: create %s: %w", path, dir, err)
	}
	dest := AvailablePath(filepath.Join(dir, filepath.Base(path)))
	if err := MoveFile(path, dest); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", path, err)
	}
	return dest, nil
}
