package filer_test

import (
	"testing"

	"github.com/bjaus/filer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) *filer.Dataset {
	t.Helper()
	ds, err := filer.NewDataset(map[string][]any{
		"name":  {"ada", "grace", "edsger"},
		"score": {float64(92.5), float64(88.75), float64(71.25)},
		"rank":  {int64(1), int64(2), int64(3)},
	})
	require.NoError(t, err)
	return ds
}

func TestNewDataset(t *testing.T) {
	t.Parallel()
	ds := sampleDataset(t)
	assert.Equal(t, []string{"name", "rank", "score"}, ds.Columns())
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []any{"ada", int64(1), float64(92.5)}, ds.Row(0))

	scores, ok := ds.Column("score")
	require.True(t, ok)
	assert.Equal(t, []any{float64(92.5), float64(88.75), float64(71.25)}, scores)

	_, ok = ds.Column("missing")
	assert.False(t, ok)
}

func TestNewDatasetRagged(t *testing.T) {
	t.Parallel()
	_, err := filer.NewDataset(map[string][]any{
		"a": {int64(1), int64(2)},
		"b": {int64(1)},
	})
	assert.ErrorIs(t, err, filer.ErrSchema)
}

func TestNewDatasetEmpty(t *testing.T) {
	t.Parallel()
	ds, err := filer.NewDataset(map[string][]any{})
	require.NoError(t, err)
	assert.Zero(t, ds.Len())
	assert.Empty(t, ds.Columns())
}
