//go:build linux

package timestamp

import (
	"os"
	"syscall"
	"time"
)

// changeTime extracts the inode change time, the closest analogue to a
// creation time that Linux exposes through stat.
func changeTime(info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec), true
}
