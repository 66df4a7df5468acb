//go:build !linux && !darwin

package timestamp

import (
	"os"
	"time"
)

// changeTime is unavailable on platforms without a known Stat_t layout;
// OldestTime degrades to the modification time alone.
func changeTime(os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
