package sorter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hestonhamilton/media-sort/internal/relocate"
)

// Cleanup migrates the legacy quarantine layout: directories named
// "dupe" nested as <category>/<year>/<month>/dupe/ move their contents
// to <category>/duplicates/<year>/<month>/, and the emptied dupe
// directory is removed. Leftover non-empty directories are logged, not
// fatal.
func Cleanup(target string, log *slog.Logger) error {
	var dupeDirs []string

	err := filepath.WalkDir(target, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() && d.Name() == relocate.LocalDupeDir {
			dupeDirs = append(dupeDirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup %s: %w", target, err)
	}

	for _, dupeDir := range dupeDirs {
		migrateDupeDir(dupeDir, log)
	}
	return nil
}

// migrateDupeDir moves one dupe directory's contents into the
// duplicates subtree two levels up: the dupe directory sits in a month
// directory, whose parent is the year, whose parent is the category.
func migrateDupeDir(dupeDir string, log *slog.Logger) {
	monthDir := filepath.Dir(dupeDir)
	month := filepath.Base(monthDir)
	year := filepath.Base(filepath.Dir(monthDir))
	categoryDir := filepath.Dir(filepath.Dir(monthDir))

	destDir := filepath.Join(categoryDir, relocate.QuarantineDir, year, month)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		log.Warn("cleanup: create destination failed", "dir", destDir, "error", err)
		return
	}

	entries, err := os.ReadDir(dupeDir)
	if err != nil {
		log.Warn("cleanup: read dupe directory failed", "dir", dupeDir, "error", err)
		return
	}

	for _, entry := range entries {
		src := filepath.Join(dupeDir, entry.Name())
		dest := relocate.AvailablePath(filepath.Join(destDir, entry.Name()))
		if err := relocate.MoveFile(src, dest); err != nil {
			log.Warn("cleanup: move failed", "src", src, "error", err)
			continue
		}
		log.Info("cleanup: moved", "src", src, "dest", dest)
	}

	if err := os.Remove(dupeDir); err != nil {
		log.Warn("cleanup: directory not empty", "dir", dupeDir, "error", err)
	}
}
