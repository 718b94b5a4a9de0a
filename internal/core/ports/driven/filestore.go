package driven

import (
	"io"
	"io/fs"
)

// FileStore is the filesystem as seen by the normaliser.
type FileStore interface {
	// Stat returns file information for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// Rename moves from onto to, replacing to if it exists.
	// The move is all-or-nothing.
	Rename(from, to string) error

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)

	// Create opens path for writing, creating or truncating it.
	Create(path string) (io.WriteCloser, error)
}
