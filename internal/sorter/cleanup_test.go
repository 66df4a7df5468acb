package sorter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCleanup_MigratesLegacyDupeDirs(t *testing.T) {
	root := t.TempDir()
	writeAt(t, root, "images/2019/04/dupe/a.jpg", []byte("x"), time.Time{})
	writeAt(t, root, "images/2019/04/keep.jpg", []byte("y"), time.Time{})
	writeAt(t, root, "documents/2020/11/dupe/r.pdf", []byte("z"), time.Time{})

	if err := Cleanup(root, discardLog()); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	for _, want := range []string{
		filepath.Join("images", "duplicates", "2019", "04", "a.jpg"),
		filepath.Join("documents", "duplicates", "2020", "11", "r.pdf"),
	} {
		if _, err := os.Stat(filepath.Join(root, want)); err != nil {
			t.Errorf("expected migrated file at %s: %v", want, err)
		}
	}

	for _, gone := range []string{
		filepath.Join("images", "2019", "04", "dupe"),
		filepath.Join("documents", "2020", "11", "dupe"),
	} {
		if _, err := os.Stat(filepath.Join(root, gone)); !os.IsNotExist(err) {
			t.Errorf("legacy dupe dir %s should be removed", gone)
		}
	}

	// Untouched sibling
	if _, err := os.Stat(filepath.Join(root, "images", "2019", "04", "keep.jpg")); err != nil {
		t.Errorf("non-dupe file was disturbed: %v", err)
	}
}

func TestCleanup_CollisionInDestination(t *testing.T) {
	root := t.TempDir()
	writeAt(t, root, "images/2019/04/dupe/a.jpg", []byte("new"), time.Time{})
	writeAt(t, root, "images/duplicates/2019/04/a.jpg", []byte("old"), time.Time{})

	if err := Cleanup(root, discardLog()); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	destDir := filepath.Join(root, "images", "duplicates", "2019", "04")
	entries, err := os.ReadDir(destDir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("destination holds %d files, want 2 (no overwrite)", len(entries))
	}

	got, _ := os.ReadFile(filepath.Join(destDir, "a.jpg"))
	if string(got) != "old" {
		t.Error("existing file was overwritten during cleanup")
	}
}

func TestCleanup_MissingTarget(t *testing.T) {
	if err := Cleanup("/nonexistent/tree", discardLog()); err == nil {
		t.Error("expected error for missing target")
	}
}
