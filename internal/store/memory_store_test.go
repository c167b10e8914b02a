package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordvault/internal/domain"
)

func TestMemoryStore_LoadEmpty(t *testing.T) {
	got, err := NewMemoryStore().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{}, got)
}

func TestMemoryStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	want := domain.Collections{
		"Movies":  {"Inception", "Titanic"},
		"Science": {"Gravity"},
	}
	require.NoError(t, ms.Save(ctx, want))

	got, err := ms.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStore_SaveDeletesStaleCollections(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	require.NoError(t, ms.Save(ctx, domain.Collections{
		"Movies":  {"Inception"},
		"Science": {"Atom"},
	}))
	require.NoError(t, ms.Save(ctx, domain.Collections{
		"Science": {"Atom"},
	}))

	got, err := ms.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{"Science": {"Atom"}}, got)
}

func TestMemoryStore_LoadedSnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	require.NoError(t, ms.Save(ctx, domain.Collections{"Movies": {"Inception"}}))

	first, err := ms.Load(ctx)
	require.NoError(t, err)
	first["Movies"] = append(first["Movies"], "Titanic")

	second, err := ms.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Collections{"Movies": {"Inception"}}, second)
}
