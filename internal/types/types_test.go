package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	items := []ClipItem{
		{ID: "1", Text: "foo"},
		{ID: "2", Text: "bar\nbaz"},
		{ID: "3", Text: ""},
	}

	blob, err := EncodeItems(items)
	require.NoError(t, err)

	decoded, err := DecodeItems(blob)
	require.NoError(t, err)
	assert.Equal(t, items, decoded)
}

func TestDecodeItems(t *testing.T) {
	t.Run("MalformedBlob", func(t *testing.T) {
		_, err := DecodeItems("not-json")
		assert.Error(t, err)
	})

	t.Run("MissingTextDefaultsToEmpty", func(t *testing.T) {
		items, err := DecodeItems(`[{"id":"1"}]`)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, ClipItem{ID: "1", Text: ""}, items[0])
	})

	t.Run("EmptyArray", func(t *testing.T) {
		items, err := DecodeItems(`[]`)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestValidateItems(t *testing.T) {
	assert.True(t, ValidateItems(nil))
	assert.True(t, ValidateItems([]ClipItem{{ID: "1"}, {ID: "2"}}))
	assert.False(t, ValidateItems([]ClipItem{{ID: "1"}, {ID: "1"}}))
	assert.False(t, ValidateItems([]ClipItem{{ID: ""}}))
}

func TestEqual(t *testing.T) {
	a := &ClipItem{ID: "1", Text: "foo"}
	b := &ClipItem{ID: "1", Text: "foo"}
	c := &ClipItem{ID: "1", Text: "bar"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var nilItem *ClipItem
	assert.True(t, nilItem.Equal(nil))
}
