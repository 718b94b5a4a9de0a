// Package filesystem implements driven.FileStore on an afero filesystem.
// Production uses the operating system; tests use an in-memory filesystem.
package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
)

// Ensure FileStore implements the interface.
var _ driven.FileStore = (*FileStore)(nil)

// FileStore reads and writes files through an afero.Fs.
type FileStore struct {
	fs   afero.Fs
	perm fs.FileMode
}

// New creates a file store on fsys. Created files get mode 0644 before umask.
func New(fsys afero.Fs) *FileStore {
	return &FileStore{fs: fsys, perm: 0644}
}

// NewOS creates a file store on the operating system's filesystem.
func NewOS() *FileStore {
	return New(afero.NewOsFs())
}

// NewMemory creates a file store on an empty in-memory filesystem.
func NewMemory() *FileStore {
	return New(afero.NewMemMapFs())
}

// Fs returns the underlying filesystem.
func (s *FileStore) Fs() afero.Fs {
	return s.fs
}

// Stat returns file information for path.
func (s *FileStore) Stat(path string) (fs.FileInfo, error) {
	return s.fs.Stat(path)
}

// Rename moves from onto to, replacing to if it exists.
func (s *FileStore) Rename(from, to string) error {
	return s.fs.Rename(from, to)
}

// Open opens path for reading.
func (s *FileStore) Open(path string) (io.ReadCloser, error) {
	return s.fs.Open(path)
}

// Create opens path for writing, creating or truncating it.
func (s *FileStore) Create(path string) (io.WriteCloser, error) {
	return s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.perm)
}
