package filer

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"
)

// SaveBlob serializes v to a gzip-compressed MessagePack blob at
// dir/name.blob and returns the resolved path. Any value the codec can
// encode is accepted; no structural constraints are imposed here. Values
// the codec rejects return ErrSerialize.
func SaveBlob(v any, dir, name string) (string, error) {
	path := Resolve(dir, name, Blob)
	err := writeFile(path, func(w io.Writer) error {
		zw := gzip.NewWriter(w)
		if err := msgpack.NewEncoder(zw).Encode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		return zw.Close()
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// LoadBlob deserializes the blob at path into out, which must be a
// non-nil pointer. Round trips are guaranteed for values composed of
// primitives, sequences, and mappings, and for structs decoded back into
// their own type; beyond that equivalence depends on the codec. Returns
// ErrNotFound if the path does not exist and ErrDeserialize on corrupt or
// truncated blobs.
func LoadBlob(path string, out any) error {
	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDeserialize, path, err)
	}
	defer zr.Close()
	if err := msgpack.NewDecoder(zr).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDeserialize, path, err)
	}
	return nil
}
