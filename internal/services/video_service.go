package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"profil_backend/internal/docstore"
	"profil_backend/internal/logger"
	"profil_backend/internal/models"
	"profil_backend/internal/storage"
	"profil_backend/pkg/apperrors"
)

// Подкаталог для загруженных видео внутри storage
const videoSubdir = "videos"

// ============================================
// VIDEO SERVICE
// ============================================

type VideoService interface {
	// List возвращает не более limit элементов галереи, новые первыми.
	List(ctx context.Context, limit int) ([]models.VideoItem, error)

	// Create сохраняет метаданные видео с внешним URL.
	Create(ctx context.Context, item *models.VideoItem) (string, error)

	// Upload принимает multipart-файл, кладет его на диск и
	// сохраняет запись галереи со сгенерированным URL.
	Upload(ctx context.Context, req *UploadVideoRequest) (string, *models.VideoItem, error)
}

// UploadVideoRequest - параметры загрузки видео файлом.
type UploadVideoRequest struct {
	Title       string
	Description string
	File        *multipart.FileHeader
}

type videoService struct {
	store      docstore.Store
	storage    storage.Storage
	allowedExt map[string]bool // ".mp4" -> true
	allowedMsg string          // список форматов для сообщения об ошибке
}

func NewVideoService(store docstore.Store, fileStorage storage.Storage, allowedExtensions []string) VideoService {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed["."+strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &videoService{
		store:      store,
		storage:    fileStorage,
		allowedExt: allowed,
		allowedMsg: strings.Join(allowedExtensions, ", "),
	}
}

func (s *videoService) List(ctx context.Context, limit int) ([]models.VideoItem, error) {
	records, err := s.store.Find(ctx, models.CollectionVideoItems, docstore.Record{}, clampLimit(limit, DefaultVideoLimit))
	if err != nil {
		return nil, apperrors.DocstoreError(err)
	}

	items := make([]models.VideoItem, 0, len(records))
	for _, rec := range records {
		items = append(items, models.VideoItem{
			Title:       stringField(rec, "title", ""),
			URL:         stringField(rec, "url", ""),
			Thumbnail:   optionalString(rec, "thumbnail"),
			Description: optionalString(rec, "description"),
			CreatedAt:   isoTimestamp(rec["created_at"]),
		})
	}

	return items, nil
}

func (s *videoService) Create(ctx context.Context, item *models.VideoItem) (string, error) {
	// created_at клиента не сохраняем: хранилище проставляет собственную
	// метку времени, и чтение всегда возвращает ее
	record := docstore.Record{
		"title":       item.Title,
		"url":         item.URL,
		"thumbnail":   item.Thumbnail,
		"description": item.Description,
	}

	id, err := s.store.Create(ctx, models.CollectionVideoItems, record)
	if err != nil {
		return "", apperrors.DocstoreError(err)
	}

	return id, nil
}

func (s *videoService) Upload(ctx context.Context, req *UploadVideoRequest) (string, *models.VideoItem, error) {
	// 1. Расширение проверяем без учета регистра, имя клиента не используем
	ext := strings.ToLower(filepath.Ext(req.File.Filename))
	if !s.allowedExt[ext] {
		return "", nil, apperrors.UnsupportedFormat("Podporované formáty: " + s.allowedMsg)
	}

	// 2. Случайное имя файла: hex + исходное расширение
	name, err := randomName(ext)
	if err != nil {
		return "", nil, apperrors.StorageError(err)
	}

	// 3. Полная запись файла на диск
	src, err := req.File.Open()
	if err != nil {
		return "", nil, apperrors.StorageError(err)
	}
	defer src.Close()

	relPath := path.Join(videoSubdir, name)
	if err := s.storage.Save(ctx, relPath, src); err != nil {
		return "", nil, apperrors.StorageError(err)
	}

	// 4. Публичный URL относительно бэкенда
	url := s.storage.GetURL(relPath)

	// 5. Запись метаданных; thumbnail для загруженных видео всегда null
	item := &models.VideoItem{
		Title:       req.Title,
		URL:         url,
		Thumbnail:   nil,
		Description: &req.Description,
	}

	record := docstore.Record{
		"title":       item.Title,
		"url":         item.URL,
		"thumbnail":   nil,
		"description": req.Description,
	}

	id, err := s.store.Create(ctx, models.CollectionVideoItems, record)
	if err != nil {
		// Компенсирующая очистка: файл без записи на диске не оставляем
		if delErr := s.storage.Delete(ctx, relPath); delErr != nil {
			logger.CtxWarn(ctx, "failed to clean up orphaned upload", "path", relPath, "error", delErr.Error())
		}
		return "", nil, apperrors.DocstoreError(err)
	}

	return id, item, nil
}

// randomName генерирует имя файла, устойчивое к коллизиям.
func randomName(ext string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}

// optionalString достает опциональное строковое поле записи.
func optionalString(rec docstore.Record, key string) *string {
	if value, ok := rec[key].(string); ok && value != "" {
		return &value
	}
	return nil
}

// isoTimestamp нормализует поле created_at: time.Time приводится к
// ISO-8601, строка передается как есть, отсутствие значения - null.
func isoTimestamp(value interface{}) *string {
	switch v := value.(type) {
	case time.Time:
		s := v.Format(time.RFC3339)
		return &s
	case string:
		if v == "" {
			return nil
		}
		return &v
	case nil:
		return nil
	default:
		s := fmt.Sprintf("%v", v)
		return &s
	}
}
