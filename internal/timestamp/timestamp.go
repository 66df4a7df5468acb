// Package timestamp derives the oldest known time for a file, preferring
// embedded capture metadata and falling back to filesystem timestamps.
package timestamp

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hestonhamilton/media-sort/internal/classify"
	"github.com/hestonhamilton/media-sort/internal/exifdata"
)

// captureTime is replaceable so tests can inject metadata without
// crafting real EXIF payloads.
var captureTime = exifdata.CaptureTime

// OldestTime returns the oldest known timestamp for path.
//
// Images with a parseable capture time use it as authoritative. Everything
// else uses min(change time, mod time): copies and moves bump the mod time
// while the change time may be inherited, so the minimum biases toward the
// true original date.
func OldestTime(path string, log *slog.Logger) (time.Time, error) {
	if classify.IsImage(path) {
		if t, err := captureTime(path); err == nil {
			return t, nil
		} else if log != nil {
			log.Debug("no embedded capture time", "path", path, "error", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}

	oldest := info.ModTime()
	if ct, ok := changeTime(info); ok && ct.Before(oldest) {
		oldest = ct
	}
	return oldest, nil
}

// Bucket formats t as the year/month path segment used for date bucketing.
func Bucket(t time.Time) string {
	return t.Format("2006/01")
}
