// Package docstore реализует документное хранилище: именованные
// коллекции независимых записей. Ядро приложения не зависит от
// внутренней модели консистентности хранилища - только от этого
// интерфейса.
package docstore

import "context"

// Record - произвольная запись коллекции.
type Record map[string]interface{}

// Store - интерфейс документного хранилища.
type Store interface {
	// Create сохраняет запись и возвращает сгенерированный идентификатор.
	Create(ctx context.Context, collection string, record Record) (string, error)

	// Find возвращает записи коллекции, удовлетворяющие фильтру
	// (равенство по полям), не более limit штук, новые первыми.
	Find(ctx context.Context, collection string, filter Record, limit int) ([]Record, error)

	// Collections возвращает имена существующих коллекций (для диагностики).
	Collections(ctx context.Context) ([]string, error)

	// Ping проверяет доступность хранилища.
	Ping(ctx context.Context) error

	// Name возвращает тип бэкенда ("postgres", "memory").
	Name() string
}
