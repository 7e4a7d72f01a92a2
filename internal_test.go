package filer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestInferCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  any
	}{
		"empty":    {input: "", want: nil},
		"int":      {input: "42", want: int64(42)},
		"negative": {input: "-7", want: int64(-7)},
		"float":    {input: "2.5", want: float64(2.5)},
		"exponent": {input: "1e3", want: float64(1000)},
		"true":     {input: "true", want: true},
		"false":    {input: "false", want: false},
		// Spreadsheet readers render boolean cells in upper case.
		"upper true":  {input: "TRUE", want: true},
		"upper false": {input: "FALSE", want: false},
		"title true":  {input: "True", want: true},
		"shouty text": {input: "TRUER", want: "TRUER"},
		"text":        {input: "hello", want: "hello"},
		"mixed":       {input: "7th", want: "7th"},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, inferCell(tc.input))
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  string
	}{
		"nil":    {input: nil, want: ""},
		"string": {input: "x", want: "x"},
		"int":    {input: int64(7), want: "7"},
		"float":  {input: float64(2.5), want: "2.5"},
		"whole":  {input: float64(3), want: "3"},
		"bool":   {input: true, want: "true"},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, formatCell(tc.input))
		})
	}
}

func TestInferCellInvertsFormatCell(t *testing.T) {
	t.Parallel()
	for _, v := range []any{nil, "x", int64(7), float64(2.5), true, false} {
		assert.Equal(t, v, inferCell(formatCell(v)))
	}
}

func TestJSONSafeTime(t *testing.T) {
	t.Parallel()
	when := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	got, err := jsonSafe(when)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T12:30:00Z", got)
}

func TestJSONSafeNestedContainers(t *testing.T) {
	t.Parallel()
	when := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	got, err := jsonSafe(map[string]any{
		"times": []any{when},
		"byKey": map[int]any{3: when},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"times": []any{"2024-01-02T00:00:00Z"},
		"byKey": map[string]any{"3": "2024-01-02T00:00:00Z"},
	}, got)
}

func TestJSONSafeTypedSlice(t *testing.T) {
	t.Parallel()
	got, err := jsonSafe([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)
}

func TestJSONSafeRejectsChan(t *testing.T) {
	t.Parallel()
	_, err := jsonSafe(make(chan int))
	assert.ErrorIs(t, err, ErrSerialize)
}

func TestJSONSafeRejectsStructKeys(t *testing.T) {
	t.Parallel()
	type key struct{ A int }
	_, err := jsonSafe(map[key]string{{A: 1}: "x"})
	assert.ErrorIs(t, err, ErrSerialize)
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	err := writeFile(path, func(io.Writer) error { return errInternalWrite })
	assert.ErrorIs(t, err, errInternalWrite)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file should be cleaned up")
}

func TestWriteFileDirIsFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := writeFile(filepath.Join(blocker, "sub", "out.csv"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	for _, content := range []string{"first", "second"} {
		err := writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, content)
			return err
		})
		require.NoError(t, err)
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
