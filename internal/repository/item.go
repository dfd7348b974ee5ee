package repository

import (
	"context"

	"github.com/osse101/itemforge/internal/domain"
)

// Item defines the interface for item record persistence
type Item interface {
	GetAllRecords(ctx context.Context) ([]domain.StoredRecord, error)
	GetRecordsByCategory(ctx context.Context, category string) ([]domain.StoredRecord, error)
	// GetRecord returns domain.ErrRecordNotFound when no record has the key
	GetRecord(ctx context.Context, category, itemID string) (*domain.StoredRecord, error)
	InsertRecord(ctx context.Context, rec *domain.StoredRecord) error
	UpdateRecord(ctx context.Context, rec *domain.StoredRecord) error
	DeleteRecord(ctx context.Context, category, itemID string) error
}
