package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

func TestStoreWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "structured_data.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	require.NoError(t, store.Write([]byte(`{"professors":{}}`)))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, `{"professors":{}}`, string(got))

	// Overwrite replaces the content wholesale.
	require.NoError(t, store.Write([]byte(`{"courses":{}}`)))
	got, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, `{"courses":{}}`, string(got))
}

func TestStoreReadMissing(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = store.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSnapshotNotFound)
}

func TestStoreWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "snap.json"))
	require.NoError(t, err)

	require.NoError(t, store.Write([]byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snap.json", entries[0].Name())
}
