package relocate

import "errors"

var (
	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrDestinationExists indicates the destination file already exists.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrMoveFailed indicates the file move operation failed.
	ErrMoveFailed = errors.New("failed to move file")
)
