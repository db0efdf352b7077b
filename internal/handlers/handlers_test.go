package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profil_backend/internal/app"
	"profil_backend/internal/config"
	"profil_backend/internal/docstore"
	"profil_backend/internal/logger"
	"profil_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	os.Exit(m.Run())
}

// newTestRouter поднимает полный роутер на in-memory хранилище
// и временном каталоге для файлов.
func newTestRouter(t *testing.T) (*gin.Engine, *docstore.MemoryStore, string) {
	t.Helper()

	uploadDir := t.TempDir()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Storage.BasePath = uploadDir
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedExtensions = []string{"mp4", "mov", "webm", "mkv", "avi"}

	store := docstore.NewMemoryStore()
	router := app.SetupRouter(cfg, store)

	return router, store, uploadDir
}

func sendJSON(t *testing.T, router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ============================================
// HEALTH
// ============================================

func TestRoot_ReturnsLivenessPayload(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API beží", body["message"])
	assert.Equal(t, "Ivan Noskovič", body["name"])
}

func TestTest_AlwaysReturns200(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	// in-memory режим: БД доступна, но не инициализирована
	assert.Contains(t, body["database"], "Available but not initialized")
	assert.Equal(t, "❌ Not Set", body["database_url"])
}

// ============================================
// REFORMS
// ============================================

func TestSportWages_ReturnsStaticTable(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodGet, "/api/sport-wages", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 5)
	assert.Contains(t, rows[0], "liga")
	assert.Contains(t, rows[0], "min_mzda")
	assert.Contains(t, rows[0], "max_mzda")
}

func TestPensionReform_ReturnsOrderedSteps(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodGet, "/api/pension-reform", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var steps []struct {
		Point       int    `json:"bod"`
		Description string `json:"opis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &steps))
	require.Len(t, steps, 13)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Point)
		assert.NotEmpty(t, step.Description)
	}
}

// ============================================
// CONTACT
// ============================================

func TestContact_Submit(t *testing.T) {
	router, store, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Peter Novák",
		"email":   "peter@example.com",
		"message": "Dobrý deň, mám otázku k reforme.",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["id"])

	// Запись действительно сохранена
	records, err := store.Find(context.Background(), models.CollectionContactMessages, docstore.Record{}, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "peter@example.com", records[0]["email"])
}

func TestContact_ValidationRejectsBeforePersist(t *testing.T) {
	router, store, _ := newTestRouter(t)

	// email невалидный, message слишком короткое
	rec := sendJSON(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "P",
		"email":   "not-an-email",
		"message": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")

	// Ничего не сохранено
	records, err := store.Find(context.Background(), models.CollectionContactMessages, docstore.Record{}, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ============================================
// CHAT
// ============================================

func TestChat_PostAndList(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, content := range []string{"prvá", "druhá", "tretia"} {
		rec := sendJSON(t, router, http.MethodPost, "/api/chat", map[string]string{
			"name":    "Jana",
			"content": content,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// limit=2: две последние, новые первыми
	rec := sendJSON(t, router, http.MethodGet, "/api/chat?limit=2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, "tretia", messages[0].Content)
	assert.Equal(t, "druhá", messages[1].Content)
}

func TestChat_ListNormalizesMissingName(t *testing.T) {
	router, store, _ := newTestRouter(t)

	// Запись без имени (старые данные)
	_, err := store.Create(context.Background(), models.CollectionChatMessages, docstore.Record{
		"content": "bez mena",
	})
	require.NoError(t, err)

	rec := sendJSON(t, router, http.MethodGet, "/api/chat", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Anonym", messages[0].Name)
	assert.Equal(t, "bez mena", messages[0].Content)
}

func TestChat_PostRejectsEmptyContent(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodPost, "/api/chat", map[string]string{
		"name":    "Jana",
		"content": "",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ============================================
// VIDEOS
// ============================================

func TestVideos_CreateWithExternalURL(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendJSON(t, router, http.MethodPost, "/api/videos", map[string]interface{}{
		"title": "Rozhovor o reforme",
		"url":   "https://video.example.com/v/abc",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["id"])

	list := sendJSON(t, router, http.MethodGet, "/api/videos", nil)
	assert.Equal(t, http.StatusOK, list.Code)

	var items []models.VideoItem
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Rozhovor o reforme", items[0].Title)
	assert.Nil(t, items[0].Thumbnail)
	require.NotNil(t, items[0].CreatedAt)
	assert.NotEmpty(t, *items[0].CreatedAt)
}

func sendUpload(t *testing.T, router *gin.Engine, title, filename string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", title))

	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/videos/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVideoUpload_Success(t *testing.T) {
	router, store, uploadDir := newTestRouter(t)

	// Расширение в верхнем регистре должно нормализоваться
	rec := sendUpload(t, router, "Tlačovka", "zaznam.MP4", []byte("fake video bytes"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string           `json:"status"`
		ID     string           `json:"id"`
		Item   models.VideoItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "Tlačovka", body.Item.Title)
	assert.True(t, strings.HasPrefix(body.Item.URL, "/uploads/videos/"))
	assert.True(t, strings.HasSuffix(body.Item.URL, ".mp4"), "расширение приводится к нижнему регистру: %s", body.Item.URL)
	assert.NotContains(t, body.Item.URL, "zaznam", "имя клиента не должно попадать в URL")
	assert.Nil(t, body.Item.Thumbnail)

	// Файл лежит на диске с тем содержимым, что прислали
	entries, err := os.ReadDir(filepath.Join(uploadDir, "videos"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(filepath.Join(uploadDir, "videos", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake video bytes"), content)

	// Метаданные сохранены
	records, err := store.Find(context.Background(), models.CollectionVideoItems, docstore.Record{}, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, body.Item.URL, records[0]["url"])
}

func TestVideoUpload_RejectsUnsupportedExtension(t *testing.T) {
	router, store, uploadDir := newTestRouter(t)

	rec := sendUpload(t, router, "Dokument", "subor.pdf", []byte("%PDF-"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UNSUPPORTED_FORMAT", body.Error.Code)
	// Сообщение перечисляет допустимые форматы
	assert.Contains(t, body.Error.Message, "mp4")
	assert.Contains(t, body.Error.Message, "avi")

	// Ни файла, ни записи
	_, err := os.ReadDir(filepath.Join(uploadDir, "videos"))
	assert.True(t, os.IsNotExist(err))

	records, err := store.Find(context.Background(), models.CollectionVideoItems, docstore.Record{}, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestVideoUpload_RequiresFile(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendUpload(t, router, "Bez súboru", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no file provided")
}

func TestVideoUpload_SameClientNameGetsDistinctFiles(t *testing.T) {
	router, _, uploadDir := newTestRouter(t)

	first := sendUpload(t, router, "Prvé", "video.mp4", []byte("one"))
	second := sendUpload(t, router, "Druhé", "video.mp4", []byte("two"))

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	entries, err := os.ReadDir(filepath.Join(uploadDir, "videos"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestVideoUpload_RejectsMissingTitle(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := sendUpload(t, router, "", "video.mp4", []byte("one"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
