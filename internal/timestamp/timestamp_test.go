package timestamp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOldestTime_FilesystemFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := OldestTime(path, nil)
	if err != nil {
		t.Fatalf("OldestTime: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got.After(info.ModTime()) {
		t.Errorf("OldestTime = %v, after mod time %v", got, info.ModTime())
	}
}

func TestOldestTime_ImageWithoutEXIFFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("jpeg without metadata"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Backdate the mod time so the fallback result is recognizable
	old := time.Date(2015, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err := OldestTime(path, nil)
	if err != nil {
		t.Fatalf("OldestTime: %v", err)
	}
	if got.After(old) {
		t.Errorf("OldestTime = %v, want ≤ %v", got, old)
	}
}

func TestOldestTime_CaptureTimeAuthoritative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("jpeg"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	want := time.Date(2009, 3, 14, 9, 26, 53, 0, time.UTC)
	orig := captureTime
	captureTime = func(string) (time.Time, error) { return want, nil }
	defer func() { captureTime = orig }()

	got, err := OldestTime(path, nil)
	if err != nil {
		t.Fatalf("OldestTime: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("OldestTime = %v, want capture time %v", got, want)
	}
}

func TestOldestTime_CaptureParseFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("jpeg"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	orig := captureTime
	captureTime = func(string) (time.Time, error) {
		return time.Time{}, errors.New("corrupt tag")
	}
	defer func() { captureTime = orig }()

	if _, err := OldestTime(path, nil); err != nil {
		t.Errorf("OldestTime should fall back on parse failure, got %v", err)
	}
}

func TestOldestTime_MissingFile(t *testing.T) {
	if _, err := OldestTime("/nonexistent/file.txt", nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBucket(t *testing.T) {
	ts := time.Date(2021, 9, 5, 0, 0, 0, 0, time.UTC)
	if got := Bucket(ts); got != "2021/09" {
		t.Errorf("Bucket = %q, want %q", got, "2021/09")
	}
}
