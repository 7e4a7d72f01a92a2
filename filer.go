package filer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Sentinel errors for programmatic error handling. Every failure returned by
// this package wraps one of these (or the underlying filesystem error) and
// carries the path or input that caused it.
var (
	ErrNotFound        = errors.New("file not found")
	ErrParse           = errors.New("malformed content")
	ErrSchema          = errors.New("schema violation")
	ErrSerialize       = errors.New("value not serializable")
	ErrDeserialize     = errors.New("value not deserializable")
	ErrRender          = errors.New("document render failed")
	ErrUnknownFileType = errors.New("unknown file type")
)

// FileType identifies an on-disk file format handled by this package.
type FileType string

const (
	CSV  FileType = "csv"
	XLSX FileType = "xlsx"
	JSON FileType = "json"
	YAML FileType = "yaml"
	Blob FileType = "blob"
	PDF  FileType = "pdf"
)

var fileTypes = []FileType{CSV, XLSX, JSON, YAML, Blob, PDF}

// String returns the file type name.
func (t FileType) String() string { return string(t) }

// Ext returns the canonical dotted extension for the file type.
func (t FileType) Ext() string { return "." + string(t) }

// Types returns all supported file types.
func Types() []FileType {
	out := make([]FileType, len(fileTypes))
	copy(out, fileTypes)
	return out
}

// ParseFileType parses a file type string.
func ParseFileType(s string) (FileType, error) {
	for _, t := range fileTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFileType, s)
}

// Resolve returns the full path for a file of type t named name under dir.
// Resolution is pure and deterministic: the same inputs always produce the
// same path string. No filesystem access occurs.
func Resolve(dir, name string, t FileType) string {
	return filepath.Join(dir, name+t.Ext())
}

// writeFile creates intermediate directories, then writes through fn into a
// temporary file in the target directory and renames it over path. A save
// that fails part-way never leaves a complete-looking file behind.
func writeFile(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if err := fn(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readFile reads path in full, mapping a missing file to ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// openFile opens path for reading, mapping a missing file to ErrNotFound.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return f, nil
}
