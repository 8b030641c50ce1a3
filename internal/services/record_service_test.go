package services

import (
	"testing"
	"time"

	"promptcraft-backend/internal/database"
	"promptcraft-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.Migrator().DropTable(&models.PromptRecord{})
	if err := db.AutoMigrate(&models.PromptRecord{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	database.DB = db
}

func TestCreatePromptRecordAssignsIDAndTimestamp(t *testing.T) {
	setupTestDB(t)

	record := &models.PromptRecord{
		FullPrompt: "You are acting as a tester.",
		RawInput:   "test something",
	}

	id, err := CreatePromptRecord(record)
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, models.PromptSourceRemote, record.Source)
	assert.Equal(t, models.SharedOwnerID, record.UserID)
	assert.Equal(t, "test something", record.Title)
}

func TestCreateThenListNewestFirst(t *testing.T) {
	setupTestDB(t)

	first := &models.PromptRecord{FullPrompt: "p1", RawInput: "older"}
	_, err := CreatePromptRecord(first)
	assert.NoError(t, err)

	// Push the first record into the past so ordering is deterministic.
	database.DB.Model(&models.PromptRecord{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour))

	second := &models.PromptRecord{FullPrompt: "p2", RawInput: "newer"}
	_, err = CreatePromptRecord(second)
	assert.NoError(t, err)

	records, err := ListPromptsByOwner(models.SharedOwnerID)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestListOrdersMissingTimestampAsNow(t *testing.T) {
	setupTestDB(t)

	old := &models.PromptRecord{FullPrompt: "p1", RawInput: "older"}
	_, err := CreatePromptRecord(old)
	assert.NoError(t, err)
	database.DB.Model(&models.PromptRecord{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-time.Hour))

	pending := &models.PromptRecord{FullPrompt: "p2", RawInput: "pending"}
	_, err = CreatePromptRecord(pending)
	assert.NoError(t, err)
	database.DB.Model(&models.PromptRecord{}).Where("id = ?", pending.ID).
		Update("created_at", time.Time{})

	records, err := ListPromptsByOwner(models.SharedOwnerID)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	// The untimestamped record sorts as "now", ahead of the old one.
	assert.Equal(t, pending.ID, records[0].ID)
}

func TestGetPromptRecordNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetPromptRecord("missing-id")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestSetPromptFavorite(t *testing.T) {
	setupTestDB(t)

	record := &models.PromptRecord{FullPrompt: "p", RawInput: "r"}
	id, err := CreatePromptRecord(record)
	assert.NoError(t, err)

	assert.NoError(t, SetPromptFavorite(id, true))

	got, err := GetPromptRecord(id)
	assert.NoError(t, err)
	assert.True(t, got.Favorite)

	assert.NoError(t, SetPromptFavorite(id, false))
	got, err = GetPromptRecord(id)
	assert.NoError(t, err)
	assert.False(t, got.Favorite)
}

func TestSetPromptFavoriteNotFound(t *testing.T) {
	setupTestDB(t)

	err := SetPromptFavorite("missing-id", true)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestDeletePromptRecordIdempotent(t *testing.T) {
	setupTestDB(t)

	record := &models.PromptRecord{FullPrompt: "p", RawInput: "r"}
	id, err := CreatePromptRecord(record)
	assert.NoError(t, err)

	assert.NoError(t, DeletePromptRecord(id))
	// Deleting again must not fail the caller.
	assert.NoError(t, DeletePromptRecord(id))

	_, err = GetPromptRecord(id)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestStoreUnavailable(t *testing.T) {
	database.DB = nil

	_, err := CreatePromptRecord(&models.PromptRecord{FullPrompt: "p", RawInput: "r"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = ListPromptsByOwner(models.SharedOwnerID)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, DeletePromptRecord("x"), ErrStoreUnavailable)
}
