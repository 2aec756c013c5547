package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertIsIdempotent(t *testing.T) {
	registry := NewRegistry()

	registry.Upsert(Entry{ID: "save-image-as-png", Title: "Save image as PNG", Contexts: []string{"image"}})
	registry.Upsert(Entry{ID: "save-image-as-png", Title: "Save as PNG", Contexts: []string{"image"}})

	assert.Equal(t, 1, registry.Len())

	entry, ok := registry.Get("save-image-as-png")
	require.True(t, ok)
	assert.Equal(t, "Save as PNG", entry.Title)
}

func TestMatches(t *testing.T) {
	registry := NewRegistry()
	registry.Upsert(Entry{ID: "save-image-as-png", Title: "Save image as PNG"})

	assert.True(t, registry.Matches("save-image-as-png"))
	assert.False(t, registry.Matches("some-other-entry"))
	assert.False(t, registry.Matches(""))
}
