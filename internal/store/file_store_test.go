package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordvault/internal/domain"
	"wordvault/internal/store"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "collections.json"))

	got, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{}, got)
}

func TestFileStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := store.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{}, got)
}

func TestFileStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "collections.json")
	fs := store.NewFileStore(path)

	want := domain.Collections{
		"Movies":  {"Inception", "Titanic"},
		"Science": {"Gravity", "Atom"},
	}
	require.NoError(t, fs.Save(ctx, want))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The write is a rename; no temp files remain.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "collections.json"))

	require.NoError(t, fs.Save(ctx, domain.Collections{
		"Movies":  {"Inception"},
		"Science": {"Atom"},
	}))
	require.NoError(t, fs.Save(ctx, domain.Collections{
		"Movies": {"Inception"},
	}))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{"Movies": {"Inception"}}, got)
}

func TestFileStore_LoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := store.NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptData)
}

func TestFileStore_LoadRejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Movies": "not a list"}`), 0o600))

	_, err := store.NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptData)
}

func TestFileStore_LoadRepairsNullWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Movies": null}`), 0o600))

	got, err := store.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{"Movies": {}}, got)
}
