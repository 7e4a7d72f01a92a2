package filer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SaveYAML encodes v as YAML at dir/name.yaml and returns the resolved
// path. The same fallback conversions as [SaveJSON] apply, so JSON and
// YAML saves of the same value agree on what they represent.
func SaveYAML(v any, dir, name string) (string, error) {
	safe, err := jsonSafe(v)
	if err != nil {
		return "", err
	}
	path := Resolve(dir, name, YAML)
	err = writeFile(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(safe); err != nil {
			return fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		return enc.Close()
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// LoadYAML decodes YAML text back into the structured value model. Returns
// ErrNotFound if the path does not exist and ErrParse on malformed text.
func LoadYAML(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return v, nil
}
