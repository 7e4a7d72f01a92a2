package filer

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"
)

// SaveJSON encodes v as two-space indented UTF-8 JSON at dir/name.json and
// returns the resolved path. Before encoding, a documented fallback
// conversion is applied: time.Time values become RFC 3339 text, and map
// keys of any scalar type become their string form. Values the encoder
// still cannot represent (channels, funcs, cyclic references, NaN) return
// ErrSerialize.
func SaveJSON(v any, dir, name string) (string, error) {
	safe, err := jsonSafe(v)
	if err != nil {
		return "", err
	}
	path := Resolve(dir, name, JSON)
	err = writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(safe); err != nil {
			return fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// LoadJSON decodes dir-resolved JSON text back into the structured value
// model: nil, bool, float64, string, []any, and map[string]any. Returns
// ErrNotFound if the path does not exist and ErrParse on malformed text.
func LoadJSON(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return v, nil
}

// jsonSafe walks v and converts common non-native values into their
// documented JSON forms: time.Time to RFC 3339 text and scalar map keys to
// strings. Containers are rebuilt recursively; everything else passes
// through for the encoder to accept or reject.
func jsonSafe(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			safe, err := jsonSafe(e)
			if err != nil {
				return nil, err
			}
			out[k] = safe
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			safe, err := jsonSafe(e)
			if err != nil {
				return nil, err
			}
			out[i] = safe
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, err := jsonKey(iter.Key())
			if err != nil {
				return nil, err
			}
			safe, err := jsonSafe(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[key] = safe
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil // []byte keeps the encoder's base64 form
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			safe, err := jsonSafe(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = safe
		}
		return out, nil
	case reflect.Chan, reflect.Func:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrSerialize, v)
	}
	return v, nil
}

// jsonKey renders a map key as JSON object key text. Scalar keys use their
// natural string form; anything else is not representable.
func jsonKey(k reflect.Value) (string, error) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return fmt.Sprintf("%v", k.Interface()), nil
	}
	return "", fmt.Errorf("%w: map key type %s", ErrSerialize, k.Type())
}
