package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStoreReadMissing(t *testing.T) {
	store := NewFilesystemStore(afero.NewMemMapFs(), "/data")

	data, ok, err := store.Read(context.Background(), "nope.txt")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFilesystemStoreWriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFilesystemStore(afero.NewMemMapFs(), "/data")

	require.NoError(t, store.Write(ctx, "blob.txt", []byte("hello")))

	data, ok, err := store.Read(ctx, "blob.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", string(data))

	// Writes replace, never append
	require.NoError(t, store.Write(ctx, "blob.txt", []byte("replaced")))
	data, _, err = store.Read(ctx, "blob.txt")
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))
}

func TestFilesystemStoreRemove(t *testing.T) {
	ctx := context.Background()
	store := NewFilesystemStore(afero.NewMemMapFs(), "/data")

	require.NoError(t, store.Write(ctx, "blob.txt", []byte("x")))
	require.NoError(t, store.Remove(ctx, "blob.txt"))

	_, ok, err := store.Read(ctx, "blob.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing file is not an error
	assert.NoError(t, store.Remove(ctx, "blob.txt"))
}

func TestFilesystemStoreCleansNames(t *testing.T) {
	ctx := context.Background()
	store := NewFilesystemStore(afero.NewMemMapFs(), "/data")

	require.NoError(t, store.Write(ctx, "./blob.txt", []byte("x")))

	data, ok, err := store.Read(ctx, "blob.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", string(data))
}
