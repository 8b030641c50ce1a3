// Package fallback stores prompt records in a local JSON file when the
// remote store is unreachable. The file holds a single serialized array and
// is overwritten wholesale on every mutation; entries are never merged back
// into the remote store.
package fallback

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"promptcraft-backend/internal/models"
)

type Cache struct {
	path string
}

func New(path string) *Cache {
	return &Cache{path: path}
}

// Load reads the cached records. A missing file is an empty cache, not an
// error.
func (c *Cache) Load() ([]models.PromptRecord, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.PromptRecord{}, nil
		}
		return nil, err
	}

	var records []models.PromptRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	for i := range records {
		records[i].Source = models.PromptSourceLocal
	}
	return records, nil
}

// Save replaces the cache contents with the given records.
func (c *Cache) Save(records []models.PromptRecord) error {
	if records == nil {
		records = []models.PromptRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(c.path, data, 0o644)
}
