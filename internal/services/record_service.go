package services

import (
	"errors"
	"sort"
	"time"

	"promptcraft-backend/internal/database"
	"promptcraft-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPromptNotFound   = errors.New("prompt record not found")
	ErrStoreUnavailable = errors.New("prompt record store is unavailable")
)

// CreatePromptRecord inserts a record and returns its assigned identifier.
// The store assigns the id and the creation timestamp.
func CreatePromptRecord(record *models.PromptRecord) (string, error) {
	if !database.Available() {
		return "", ErrStoreUnavailable
	}

	record.Normalize(models.SharedOwnerID)
	record.ID = ""
	record.CreatedAt = time.Time{}

	if err := database.DB.Create(record).Error; err != nil {
		return "", err
	}

	record.Source = models.PromptSourceRemote
	return record.ID, nil
}

// ListPromptsByOwner returns all records for the owner, newest first. Every
// field is defaulted through Normalize so callers never see a partially
// populated record. Records the store has not finished timestamping sort as
// "now"; the stored value is left untouched.
func ListPromptsByOwner(owner string) ([]models.PromptRecord, error) {
	if !database.Available() {
		return nil, ErrStoreUnavailable
	}

	var records []models.PromptRecord
	if err := database.DB.Where("user_id = ?", owner).Order("created_at desc").Find(&records).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	orderKey := func(r models.PromptRecord) time.Time {
		if r.CreatedAt.IsZero() {
			return now
		}
		return r.CreatedAt
	}
	sort.SliceStable(records, func(i, j int) bool {
		return orderKey(records[i]).After(orderKey(records[j]))
	})

	for i := range records {
		records[i].Normalize(owner)
	}
	return records, nil
}

// GetPromptRecord fetches a single record by id.
func GetPromptRecord(id string) (*models.PromptRecord, error) {
	if !database.Available() {
		return nil, ErrStoreUnavailable
	}

	var record models.PromptRecord
	if err := database.DB.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	record.Normalize(models.SharedOwnerID)
	return &record, nil
}

// UpdatePromptRecord merges the given fields into an existing record.
func UpdatePromptRecord(id string, fields map[string]interface{}) error {
	if !database.Available() {
		return ErrStoreUnavailable
	}

	result := database.DB.Model(&models.PromptRecord{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPromptNotFound
	}
	return nil
}

// SetPromptFavorite toggles the favorite flag on a record.
func SetPromptFavorite(id string, favorite bool) error {
	return UpdatePromptRecord(id, map[string]interface{}{"favorite": favorite})
}

// DeletePromptRecord removes a record permanently. Deleting an id that does
// not exist is success; repeated deletes must not fail the caller.
func DeletePromptRecord(id string) error {
	if !database.Available() {
		return ErrStoreUnavailable
	}

	return database.DB.Where("id = ?", id).Delete(&models.PromptRecord{}).Error
}
