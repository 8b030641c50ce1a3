package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"promptcraft-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cache := New(filepath.Join(t.TempDir(), "nope.json"))

	records, err := cache.Load()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "saved_prompts.json")
	cache := New(path)

	records := []models.PromptRecord{
		{ID: "a", Title: "first", FullPrompt: "You are acting as a tester.", RawInput: "test", UserID: models.SharedOwnerID},
		{ID: "b", Title: "second", FullPrompt: "You are acting as a writer.", RawInput: "write", UserID: models.SharedOwnerID, Favorite: true},
	}

	assert.NoError(t, cache.Save(records))

	loaded, err := cache.Load()
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "a", loaded[0].ID)
	assert.True(t, loaded[1].Favorite)

	// Loaded records are tagged local so callers cannot mistake them for
	// durably saved ones.
	for _, r := range loaded {
		assert.Equal(t, models.PromptSourceLocal, r.Source)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_prompts.json")
	cache := New(path)

	assert.NoError(t, cache.Save([]models.PromptRecord{{ID: "a"}, {ID: "b"}}))
	assert.NoError(t, cache.Save([]models.PromptRecord{{ID: "c"}}))

	loaded, err := cache.Load()
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].ID)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_prompts.json")
	cache := New(path)

	assert.NoError(t, cache.Save(nil))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
