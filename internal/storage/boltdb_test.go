package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStorage(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_bolt_*.db")
	require.NoError(t, err)
	tmpfile.Close()
	defer os.Remove(tmpfile.Name())

	storage, err := NewBoltStorage(StorageConfig{DBPath: tmpfile.Name()})
	require.NoError(t, err)
	defer storage.Close()

	t.Run("GetAbsentKey", func(t *testing.T) {
		value, found, err := storage.Get("missing")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		err := storage.Set("items", `[{"id":"1","text":"foo"}]`)
		assert.NoError(t, err)

		value, found, err := storage.Get("items")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"id":"1","text":"foo"}]`, value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, storage.Set("items", "first"))
		require.NoError(t, storage.Set("items", "second"))

		value, found, err := storage.Get("items")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "second", value)
	})
}

func TestBoltStorageReopen(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_bolt_*.db")
	require.NoError(t, err)
	tmpfile.Close()
	defer os.Remove(tmpfile.Name())

	storage, err := NewBoltStorage(StorageConfig{DBPath: tmpfile.Name()})
	require.NoError(t, err)
	require.NoError(t, storage.Set("items", "persisted"))
	require.NoError(t, storage.Close())

	reopened, err := NewBoltStorage(StorageConfig{DBPath: tmpfile.Name()})
	require.NoError(t, err)
	defer reopened.Close()

	value, found, err := reopened.Get("items")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}
