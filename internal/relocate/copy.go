package relocate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AvailablePath returns dest if nothing occupies it, otherwise the first
// free "name_N.ext" variant. Shared by the plain-copy path and quarantine
// moves so neither ever overwrites an existing file.
func AvailablePath(dest string) string {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)

	candidate := dest
	for counter := 1; ; counter++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}
}

// CopyFile copies a file from src to dst, creating the destination
// directory if needed. Returns ErrDestinationExists rather than
// overwriting; a partial destination is removed on copy failure.
func CopyFile(src, dst string) (int64, error) {
	if _, err := os.Stat(dst); err == nil {
		return 0, ErrDestinationExists
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, fmt.Errorf("%w: create directory: %v", ErrCopyFailed, err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	size, err := io.Copy(dstFile, srcFile)
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}

	return size, nil
}

// MoveFile moves src to dst, falling back to copy+remove when rename
// fails (typically a cross-device move). Never overwrites dst.
func MoveFile(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return ErrDestinationExists
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrMoveFailed, err)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if _, err := CopyFile(src, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("%w: remove source: %v", ErrMoveFailed, err)
	}
	return nil
}
