package dedupe

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/hestonhamilton/media-sort/internal/classify"
	"github.com/hestonhamilton/media-sort/internal/exifdata"
)

// Verdict is the outcome of comparing one file pair. A fresh Verdict is
// produced per comparison; nothing is cached across pairs.
type Verdict int

const (
	// VerdictDistinct means the pair is not a duplicate.
	VerdictDistinct Verdict = iota
	// VerdictDuplicate means the second file duplicates the first.
	VerdictDuplicate
	// VerdictIndeterminate means an internal error prevented a decision.
	// Callers treat it as distinct; the error has already been logged.
	VerdictIndeterminate
)

func (v Verdict) String() string {
	switch v {
	case VerdictDuplicate:
		return "duplicate"
	case VerdictIndeterminate:
		return "indeterminate"
	default:
		return "distinct"
	}
}

// Engine compares file pairs for equivalence.
type Engine struct {
	log         *slog.Logger
	verifyBytes bool

	// readTags is replaceable so tests can supply metadata without
	// crafting EXIF payloads.
	readTags func(path string) (exifdata.Tags, error)
}

// NewEngine returns an engine logging its degraded comparisons to log.
// When verifyBytes is set, size-equal non-image pairs are additionally
// confirmed byte for byte.
func NewEngine(log *slog.Logger, verifyBytes bool) *Engine {
	return &Engine{
		log:         log,
		verifyBytes: verifyBytes,
		readTags:    exifdata.Read,
	}
}

// Identical reports whether a and b are duplicates. It never fails:
// internal errors degrade to false and are logged.
func (e *Engine) Identical(a, b string) bool {
	return e.Compare(a, b) == VerdictDuplicate
}

// Compare runs the full decision sequence for the pair:
// existence gate, name-similarity gate, then the category-appropriate
// content check.
func (e *Engine) Compare(a, b string) Verdict {
	// Either file may have been moved out from under us by an earlier
	// relocation in the same run.
	if _, err := os.Stat(a); err != nil {
		return VerdictDistinct
	}
	if _, err := os.Stat(b); err != nil {
		return VerdictDistinct
	}

	if Key(a) != Key(b) {
		return VerdictDistinct
	}

	if classify.IsImage(a) && classify.IsImage(b) {
		if v, decided := e.compareTags(a, b); decided {
			return v
		}
		// No usable metadata on one side or no tags in common:
		// fall through to the byte-level path.
	}

	return e.compareContent(a, b)
}

// compareTags compares the fixed EXIF tag sets of an image pair.
// Only tags present in both files are compared, which keeps the result
// symmetric when metadata availability differs. decided is false when
// the pair cannot be judged on metadata at all.
func (e *Engine) compareTags(a, b string) (v Verdict, decided bool) {
	tagsA, errA := e.readTags(a)
	if errA != nil {
		e.log.Debug("no usable metadata", "path", a, "error", errA)
		return 0, false
	}
	tagsB, errB := e.readTags(b)
	if errB != nil {
		e.log.Debug("no usable metadata", "path", b, "error", errB)
		return 0, false
	}

	common := 0
	for name, va := range tagsA {
		vb, ok := tagsB[name]
		if !ok {
			continue
		}
		common++
		if va != vb {
			return VerdictDistinct, true
		}
	}
	if common == 0 {
		return 0, false
	}
	return VerdictDuplicate, true
}

// compareContent compares by exact byte size, optionally confirmed by a
// full byte-for-byte read.
func (e *Engine) compareContent(a, b string) Verdict {
	infoA, err := os.Stat(a)
	if err != nil {
		e.log.Warn("comparison failed", "path", a, "error", err)
		return VerdictIndeterminate
	}
	infoB, err := os.Stat(b)
	if err != nil {
		e.log.Warn("comparison failed", "path", b, "error", err)
		return VerdictIndeterminate
	}

	if infoA.Size() != infoB.Size() {
		return VerdictDistinct
	}
	if !e.verifyBytes {
		return VerdictDuplicate
	}

	same, err := sameBytes(a, b)
	if err != nil {
		e.log.Warn("content comparison failed", "path_a", a, "path_b", b, "error", err)
		return VerdictIndeterminate
	}
	if same {
		return VerdictDuplicate
	}
	return VerdictDistinct
}

const compareChunk = 64 * 1024

// sameBytes reports whether two files have identical content.
func sameBytes(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer func() { _ = fa.Close() }()

	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer func() { _ = fb.Close() }()

	bufA := make([]byte, compareChunk)
	bufB := make([]byte, compareChunk)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}

		doneA := errA == io.EOF || errA == io.ErrUnexpectedEOF
		doneB := errB == io.EOF || errB == io.ErrUnexpectedEOF
		if errA != nil && !doneA {
			return false, errA
		}
		if errB != nil && !doneB {
			return false, errB
		}
		if doneA || doneB {
			return doneA && doneB, nil
		}
	}
}
