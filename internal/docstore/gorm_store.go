package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// documentRow - строка таблицы documents: одна запись одной коллекции.
// Схема-гибкость достигается за счет JSONB-колонки data.
type documentRow struct {
	ID         string         `gorm:"primaryKey;size:36"`
	Collection string         `gorm:"size:64;index"`
	Data       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"index"`
}

func (documentRow) TableName() string { return "documents" }

// GormStore - реализация Store поверх GORM/Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore создает хранилище и выполняет миграцию таблицы documents.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("docstore: migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Create(ctx context.Context, collection string, record Record) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("docstore: marshal record: %w", err)
	}

	row := documentRow{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       datatypes.JSON(payload),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("docstore: create in %s: %w", collection, err)
	}

	return row.ID, nil
}

func (s *GormStore) Find(ctx context.Context, collection string, filter Record, limit int) ([]Record, error) {
	q := s.db.WithContext(ctx).Where("collection = ?", collection)

	for key, value := range filter {
		q = q.Where(datatypes.JSONQuery("data").Equals(value, key))
	}

	// Явная сортировка: новые записи первыми
	q = q.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []documentRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("docstore: find in %s: %w", collection, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{}
		if err := json.Unmarshal(row.Data, &rec); err != nil {
			return nil, fmt.Errorf("docstore: unmarshal record %s: %w", row.ID, err)
		}
		rec["id"] = row.ID
		rec["created_at"] = row.CreatedAt
		records = append(records, rec)
	}

	return records, nil
}

func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("docstore: list collections: %w", err)
	}
	return names, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("docstore: get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Name() string { return "postgres" }
