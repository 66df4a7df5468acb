package sorter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hestonhamilton/media-sort/internal/relocate"
)

// Scan enumerates the candidate files under path in stable order.
// A single file returns itself. Directories named "dupe" (quarantine
// output of earlier directory-scan runs) are excluded entirely.
//
// Enumeration is deliberately separate from applying duplicate policy
// and copying, so the two can be tested independently.
func Scan(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	if !info.IsDir() {
		if filepath.Base(filepath.Dir(path)) == relocate.LocalDupeDir {
			return nil, nil
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if d.Name() == relocate.LocalDupeDir {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	// Stable order regardless of platform walk quirks; duplicate
	// detection is relative to everything earlier in this order.
	sort.Strings(files)
	return files, nil
}
