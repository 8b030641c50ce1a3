package services

import (
	"sync"
	"time"

	"promptcraft-backend/internal/database"
	"promptcraft-backend/internal/fallback"
	"promptcraft-backend/internal/models"
	"promptcraft-backend/internal/templates"
	"promptcraft-backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListService owns the working set of prompt records for the deployment's
// single logical owner. It reconciles three sources: the remote store, the
// local fallback cache, and optimistic just-created records. Mutations take
// the remote path first; only when that path fails is the equivalent
// mutation applied to the fallback cache. Successful remote mutations are
// mirrored into the working set before any reload completes, and delete and
// favorite-toggle are followed by one full reload as a consistency repair.
//
// The mutex replaces the browser's single-threaded event loop: the service
// is shared across request goroutines, and the last write observed wins.
type ListService struct {
	mu    sync.Mutex
	owner string
	cache *fallback.Cache

	// remote is decided once per session: when the backend reports itself
	// unavailable at startup, no remote call is ever attempted again.
	remote  bool
	working []models.PromptRecord
}

func NewListService(owner string, cache *fallback.Cache) *ListService {
	s := &ListService{
		owner:  owner,
		cache:  cache,
		remote: database.Available(),
	}

	if !s.remote {
		s.loadFallbackLocked()
		logger.Log.Warn("prompt store unavailable, serving from local fallback cache",
			zap.Int("cached_records", len(s.working)))
		return s
	}

	if err := s.reloadLocked(); err != nil {
		logger.Log.Error("initial prompt load failed, falling back to local cache", zap.Error(err))
		s.loadFallbackLocked()
	}
	return s
}

// List returns the visible subset after an optional industry filter
// (matching the stored template id or display name) intersected with an
// optional favorites-only filter. The filters are pure predicates over the
// in-memory list. On the remote path the working set is refreshed first so
// reads reflect the durable copy.
func (s *ListService) List(industryID string, favoritesOnly bool) []models.PromptRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remote {
		if err := s.reloadLocked(); err != nil {
			logger.Log.Error("prompt reload failed, serving last known state", zap.Error(err))
		}
	}

	var industryName string
	if industryID != "" {
		if t, ok := templates.ByID(industryID); ok {
			industryName = t.Name
		}
	}

	visible := make([]models.PromptRecord, 0, len(s.working))
	for _, record := range s.working {
		if record.ID == "" {
			continue
		}
		if industryID != "" {
			name := record.TemplateName()
			if name != industryID && (industryName == "" || name != industryName) {
				continue
			}
		}
		if favoritesOnly && !record.Favorite {
			continue
		}
		visible = append(visible, record)
	}
	return visible
}

// Get returns a record from the working set.
func (s *ListService) Get(id string) (*models.PromptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		record := s.working[i]
		return &record, nil
	}

	if s.remote {
		return GetPromptRecord(id)
	}
	return nil, ErrPromptNotFound
}

// Create persists a record remotely when possible, otherwise into the
// fallback cache, and prepends it to the working set either way. The
// returned record's Source tells callers whether it is durably saved.
func (s *ListService) Create(record *models.PromptRecord) (*models.PromptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Normalize(s.owner)

	if s.remote {
		if _, err := CreatePromptRecord(record); err == nil {
			if record.CreatedAt.IsZero() {
				record.CreatedAt = time.Now()
			}
			s.working = append([]models.PromptRecord{*record}, s.working...)
			return record, nil
		} else {
			logger.Log.Error("remote save failed, writing to fallback cache", zap.Error(err))
		}
	}

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.Source = models.PromptSourceLocal

	s.working = append([]models.PromptRecord{*record}, s.working...)
	s.saveFallbackLocked()
	return record, nil
}

// Delete removes a record. Deleting an id absent from the working list is a
// no-op.
func (s *ListService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) < 0 {
		return nil
	}

	if s.remote {
		if err := DeletePromptRecord(id); err == nil {
			s.removeLocked(id)
			if err := s.reloadLocked(); err != nil {
				logger.Log.Error("reload after delete failed", zap.Error(err))
			}
			return nil
		} else {
			logger.Log.Error("remote delete failed, removing from fallback cache", zap.Error(err))
		}
	}

	s.removeLocked(id)
	s.saveFallbackLocked()
	return nil
}

// SetFavorite sets the favorite flag on a record. Applying the same toggle
// twice returns the record to its original state.
func (s *ListService) SetFavorite(id string, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.remote {
		if err := SetPromptFavorite(id, favorite); err == nil {
			s.mirrorFavoriteLocked(id, favorite)
			if err := s.reloadLocked(); err != nil {
				logger.Log.Error("reload after favorite toggle failed", zap.Error(err))
			}
			return nil
		} else {
			logger.Log.Error("remote favorite update failed, updating fallback cache", zap.Error(err))
		}
	}

	s.mirrorFavoriteLocked(id, favorite)
	s.saveFallbackLocked()
	return nil
}

// FallbackMode reports whether the service is serving from the local cache.
func (s *ListService) FallbackMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.remote
}

func (s *ListService) reloadLocked() error {
	records, err := ListPromptsByOwner(s.owner)
	if err != nil {
		return err
	}
	s.working = records
	return nil
}

func (s *ListService) loadFallbackLocked() {
	records, err := s.cache.Load()
	if err != nil {
		logger.Log.Error("failed to read fallback cache", zap.Error(err))
		records = []models.PromptRecord{}
	}
	s.working = records
}

func (s *ListService) saveFallbackLocked() {
	if err := s.cache.Save(s.working); err != nil {
		logger.Log.Error("failed to write fallback cache", zap.Error(err))
	}
}

func (s *ListService) indexLocked(id string) int {
	for i, record := range s.working {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func (s *ListService) removeLocked(id string) {
	if i := s.indexLocked(id); i >= 0 {
		s.working = append(s.working[:i], s.working[i+1:]...)
	}
}

func (s *ListService) mirrorFavoriteLocked(id string, favorite bool) {
	if i := s.indexLocked(id); i >= 0 {
		s.working[i].Favorite = favorite
	}
}
