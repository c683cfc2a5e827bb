package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File keeps a single record in a JSON file.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

// Records returns the file content as the only record, or nothing if the
// file does not exist yet.
func (f *File) Records(ctx context.Context) ([]Record, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, NewError("read", fmt.Sprintf("could not read %q", f.path), err)
	}
	return []Record{{Key: DefaultKey, Data: data}}, nil
}

// Put replaces the file content, whatever the key.
func (f *File) Put(ctx context.Context, key string, data []byte) error {
	return WriteFileAtomic(f.path, data)
}

// Delete does nothing: a file never holds more than one record.
func (f *File) Delete(ctx context.Context, keys ...string) error { return nil }

func (f *File) Close() error { return nil }

func (f *File) String() string { return "file:" + f.path }

// WriteFileAtomic writes data to a temporary file next to path, then renames
// it over path, so readers see either the old or the new content. Missing
// directories are created.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewError("write", fmt.Sprintf("could not create directory %q", dir), err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return NewError("write", "could not create temporary file", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return NewError("write", fmt.Sprintf("could not write %q", tmp.Name()), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return NewError("write", fmt.Sprintf("could not sync %q", tmp.Name()), err)
	}
	if err := tmp.Close(); err != nil {
		return NewError("write", fmt.Sprintf("could not close %q", tmp.Name()), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewError("write", fmt.Sprintf("could not replace %q", path), err)
	}
	return nil
}
