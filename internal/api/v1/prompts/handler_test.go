package prompts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"promptcraft-backend/internal/database"
	"promptcraft-backend/internal/fallback"
	"promptcraft-backend/internal/models"
	"promptcraft-backend/internal/services"
	"promptcraft-backend/internal/utils"
	"promptcraft-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.Migrator().DropTable(&models.PromptRecord{})
	if err := db.AutoMigrate(&models.PromptRecord{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	cache := fallback.New(filepath.Join(t.TempDir(), "saved_prompts.json"))
	list := services.NewListService(models.SharedOwnerID, cache)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), list)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeRecord(t *testing.T, w *httptest.ResponseRecorder) models.PromptRecord {
	t.Helper()

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, err := json.Marshal(resp.Data)
	assert.NoError(t, err)

	var record models.PromptRecord
	assert.NoError(t, json.Unmarshal(data, &record))
	return record
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) PromptListResponse {
	t.Helper()

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, err := json.Marshal(resp.Data)
	assert.NoError(t, err)

	var list PromptListResponse
	assert.NoError(t, json.Unmarshal(data, &list))
	return list
}

func TestCreatePrompt(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/prompts", `{
		"full_prompt": "You are acting as a test reviewer.",
		"raw_input": "review my tests",
		"generation_meta": {"model": "gpt-4-turbo", "latency_ms": 900}
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	record := decodeRecord(t, w)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "review my tests", record.Title)
	assert.Equal(t, models.SharedOwnerID, record.UserID)
	assert.Equal(t, models.PromptSourceRemote, record.Source)
	assert.NotEmpty(t, record.GenerationMeta)
}

func TestCreatePromptValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"raw_input": "missing full prompt"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPromptsNewestFirst(t *testing.T) {
	r := setupRouter(t)

	first := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p1", "raw_input": "first"}`)
	assert.Equal(t, http.StatusCreated, first.Code)
	second := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p2", "raw_input": "second"}`)
	assert.Equal(t, http.StatusCreated, second.Code)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts", "")
	assert.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	assert.Equal(t, 2, list.Total)
	assert.False(t, list.FallbackMode)
	assert.Equal(t, "second", list.Prompts[0].RawInput)
}

func TestListPromptsFilters(t *testing.T) {
	r := setupRouter(t)

	doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p1", "raw_input": "coding one", "template_used": "Coding / Software Development"}`)
	created := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p2", "raw_input": "design one", "template_used": "Design"}`)
	record := decodeRecord(t, created)

	fav := doJSON(r, http.MethodPatch, "/api/v1/prompts/"+record.ID+"/favorite", `{"favorite": true}`)
	assert.Equal(t, http.StatusOK, fav.Code)

	list := decodeList(t, doJSON(r, http.MethodGet, "/api/v1/prompts?industry=coding", ""))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "coding one", list.Prompts[0].RawInput)

	list = decodeList(t, doJSON(r, http.MethodGet, "/api/v1/prompts?favorites=true", ""))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, record.ID, list.Prompts[0].ID)

	list = decodeList(t, doJSON(r, http.MethodGet, "/api/v1/prompts?industry=education", ""))
	assert.Equal(t, 0, list.Total)
}

func TestGetPromptNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	r := setupRouter(t)

	created := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p", "raw_input": "r"}`)
	record := decodeRecord(t, created)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodPatch, "/api/v1/prompts/"+record.ID+"/favorite", `{"favorite": true}`).Code)
	got := decodeRecord(t, doJSON(r, http.MethodGet, "/api/v1/prompts/"+record.ID, ""))
	assert.True(t, got.Favorite)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodPatch, "/api/v1/prompts/"+record.ID+"/favorite", `{"favorite": false}`).Code)
	got = decodeRecord(t, doJSON(r, http.MethodGet, "/api/v1/prompts/"+record.ID, ""))
	assert.False(t, got.Favorite)
}

func TestFavoriteValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/v1/prompts/some-id/favorite", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePrompt(t *testing.T) {
	r := setupRouter(t)

	created := doJSON(r, http.MethodPost, "/api/v1/prompts", `{"full_prompt": "p", "raw_input": "r"}`)
	record := decodeRecord(t, created)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/v1/prompts/"+record.ID, "").Code)

	list := decodeList(t, doJSON(r, http.MethodGet, "/api/v1/prompts", ""))
	assert.Equal(t, 0, list.Total)

	// Repeat delete stays a success.
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/v1/prompts/"+record.ID, "").Code)
}
