package sorter

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func mkFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestScan_Directory(t *testing.T) {
	dir := t.TempDir()
	mkFiles(t, dir, "b.jpg", "a.jpg", "sub/c.mp4")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("Scan returned %d files, want 3", len(files))
	}
	if !sort.StringsAreSorted(files) {
		t.Error("Scan output must be in stable sorted order")
	}
}

func TestScan_ExcludesDupeDirs(t *testing.T) {
	dir := t.TempDir()
	mkFiles(t, dir, "keep.jpg", "dupe/flagged.jpg", "sub/dupe/flagged2.jpg", "sub/ok.png")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, f := range files {
		if filepath.Base(filepath.Dir(f)) == "dupe" {
			t.Errorf("Scan returned file under dupe dir: %s", f)
		}
	}
	if len(files) != 2 {
		t.Errorf("Scan returned %d files, want 2", len(files))
	}
}

func TestScan_SingleFile(t *testing.T) {
	dir := t.TempDir()
	mkFiles(t, dir, "one.pdf")

	files, err := Scan(filepath.Join(dir, "one.pdf"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "one.pdf") {
		t.Errorf("Scan = %v, want the single file", files)
	}
}

func TestScan_SingleFileInDupeDir(t *testing.T) {
	dir := t.TempDir()
	mkFiles(t, dir, "dupe/flagged.jpg")

	files, err := Scan(filepath.Join(dir, "dupe", "flagged.jpg"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files inside dupe dirs must be excluded, got %v", files)
	}
}

func TestScan_MissingPath(t *testing.T) {
	if _, err := Scan("/nonexistent/tree"); err == nil {
		t.Error("expected error for missing path")
	}
}
