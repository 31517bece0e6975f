package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/curate"
)

// Ensure FileStore implements curate.RecordStore at compile time.
var _ curate.RecordStore = (*FileStore)(nil)

// FileStore implements curate.RecordStore with atomic update semantics.
// Records are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	format  string
}

// NewFileStore creates a new FileStore writing records in format.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name, format string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		format:  format,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, record *curate.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URIToPath(record.URI, s.format)
	if err != nil {
		return err
	}

	data, err := MarshalRecord(record, s.format)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

func (s *FileStore) Commit() error {
	// A batch without records still produces an empty output directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
