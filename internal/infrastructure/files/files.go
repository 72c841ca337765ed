// Package files reads theme documents from disk with a hard size bound and
// writes exports atomically.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// ErrTooLarge is returned by ReadContent when the content exceeds the requested limit.
var ErrTooLarge = ports.ErrContentTooLarge

// LocalFile is an import candidate on the local filesystem.
type LocalFile struct {
	path        string
	contentType string
	size        int64
}

// Open stats path and returns it as an import candidate. contentType is the
// declared media type, or "" to let the importer route by extension.
func Open(path, contentType string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &LocalFile{path: path, contentType: contentType, size: info.Size()}, nil
}

// Name implements ports.ImportFile.
func (f *LocalFile) Name() string { return filepath.Base(f.path) }

// ContentType implements ports.ImportFile.
func (f *LocalFile) ContentType() string { return f.contentType }

// Size implements ports.ImportFile.
func (f *LocalFile) Size() int64 { return f.size }

// Path returns the location the file was opened from.
func (f *LocalFile) Path() string { return f.path }

// ReadContent implements ports.ImportFile. It never reads more than limit+1 bytes.
func (f *LocalFile) ReadContent(ctx context.Context, limit int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return readBounded(fh, limit)
}

// MemoryFile is an import candidate held in memory, such as clipboard text or an upload.
type MemoryFile struct {
	name        string
	contentType string
	data        []byte
}

// NewMemoryFile wraps data as an import candidate.
func NewMemoryFile(name, contentType string, data []byte) *MemoryFile {
	return &MemoryFile{name: name, contentType: contentType, data: data}
}

// Name implements ports.ImportFile.
func (f *MemoryFile) Name() string { return f.name }

// ContentType implements ports.ImportFile.
func (f *MemoryFile) ContentType() string { return f.contentType }

// Size implements ports.ImportFile.
func (f *MemoryFile) Size() int64 { return int64(len(f.data)) }

// ReadContent implements ports.ImportFile.
func (f *MemoryFile) ReadContent(ctx context.Context, limit int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if int64(len(f.data)) > limit {
		return nil, ErrTooLarge
	}
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

func readBounded(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

// WriteAtomic writes data to a temporary file next to path and renames it into place,
// so readers never observe a partially written export.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

var (
	_ ports.ImportFile = (*LocalFile)(nil)
	_ ports.ImportFile = (*MemoryFile)(nil)
)
