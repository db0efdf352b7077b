package services

import (
	"context"

	"profil_backend/internal/docstore"
	"profil_backend/internal/models"
	"profil_backend/pkg/apperrors"
)

// Лимиты списков. Клиентский limit без верхней границы не принимаем.
const (
	DefaultChatLimit  = 30
	DefaultVideoLimit = 50
	MaxListLimit      = 200
)

// clampLimit нормализует клиентский limit: невалидные значения
// заменяются дефолтом, слишком большие - верхней границей.
func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ============================================
// CHAT SERVICE
// ============================================

type ChatService interface {
	// List возвращает не более limit сообщений, новые первыми.
	List(ctx context.Context, limit int) ([]models.ChatMessage, error)

	// Post сохраняет сообщение и возвращает id записи.
	Post(ctx context.Context, msg *models.ChatMessage) (string, error)
}

type chatService struct {
	store docstore.Store
}

func NewChatService(store docstore.Store) ChatService {
	return &chatService{store: store}
}

func (s *chatService) List(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	records, err := s.store.Find(ctx, models.CollectionChatMessages, docstore.Record{}, clampLimit(limit, DefaultChatLimit))
	if err != nil {
		return nil, apperrors.DocstoreError(err)
	}

	messages := make([]models.ChatMessage, 0, len(records))
	for _, rec := range records {
		messages = append(messages, models.ChatMessage{
			Name:    stringField(rec, "name", "Anonym"),
			Content: stringField(rec, "content", ""),
		})
	}

	return messages, nil
}

func (s *chatService) Post(ctx context.Context, msg *models.ChatMessage) (string, error) {
	record := docstore.Record{
		"name":    msg.Name,
		"content": msg.Content,
	}

	id, err := s.store.Create(ctx, models.CollectionChatMessages, record)
	if err != nil {
		return "", apperrors.DocstoreError(err)
	}

	return id, nil
}

// stringField достает строковое поле записи, подставляя fallback
// для отсутствующих или нестроковых значений.
func stringField(rec docstore.Record, key, fallback string) string {
	if value, ok := rec[key].(string); ok {
		return value
	}
	return fallback
}
