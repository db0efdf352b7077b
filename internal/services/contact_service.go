package services

import (
	"context"
	"fmt"

	"profil_backend/internal/docstore"
	"profil_backend/internal/email"
	"profil_backend/internal/logger"
	"profil_backend/internal/models"
	"profil_backend/pkg/apperrors"
)

// ============================================
// CONTACT SERVICE
// ============================================

type ContactService interface {
	// Submit сохраняет сообщение контактной формы и возвращает id записи.
	Submit(ctx context.Context, msg *models.ContactMessage) (string, error)
}

type contactService struct {
	store    docstore.Store
	notifier email.Provider // nil, когда уведомления выключены
	notifyTo string
}

func NewContactService(store docstore.Store, notifier email.Provider, notifyTo string) ContactService {
	return &contactService{
		store:    store,
		notifier: notifier,
		notifyTo: notifyTo,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *models.ContactMessage) (string, error) {
	record := docstore.Record{
		"name":    msg.Name,
		"email":   msg.Email,
		"message": msg.Message,
	}

	id, err := s.store.Create(ctx, models.CollectionContactMessages, record)
	if err != nil {
		return "", apperrors.DocstoreError(err)
	}

	// Уведомление - best effort: ошибка почты не валит запрос
	s.notify(ctx, msg)

	return id, nil
}

func (s *contactService) notify(ctx context.Context, msg *models.ContactMessage) {
	if s.notifier == nil || s.notifyTo == "" {
		return
	}

	err := s.notifier.Send(&email.Email{
		To:      []string{s.notifyTo},
		Subject: "Nová správa z kontaktného formulára",
		Body:    fmt.Sprintf("Od: %s <%s>\r\n\r\n%s", msg.Name, msg.Email, msg.Message),
	})
	if err != nil {
		logger.CtxWarn(ctx, "contact notification email failed", "error", err.Error())
	}
}
