package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/repository"
)

const (
	selectRecordColumns = `SELECT category, item_id, filename, data, content_hash, updated_at FROM item_records`

	queryAllRecords        = selectRecordColumns + ` ORDER BY category, item_id`
	queryRecordsByCategory = selectRecordColumns + ` WHERE category = $1 ORDER BY item_id`
	queryRecord            = selectRecordColumns + ` WHERE category = $1 AND item_id = $2`

	insertRecord = `INSERT INTO item_records (category, item_id, filename, data, content_hash, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING updated_at`
	updateRecord = `UPDATE item_records
		SET filename = $3, data = $4, content_hash = $5, updated_at = NOW()
		WHERE category = $1 AND item_id = $2
		RETURNING updated_at`
	deleteRecord = `DELETE FROM item_records WHERE category = $1 AND item_id = $2`
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) repository.Item {
	return &ItemRepository{pool: pool}
}

// GetAllRecords returns every stored record ordered by category and id
func (r *ItemRepository) GetAllRecords(ctx context.Context) ([]domain.StoredRecord, error) {
	return r.query(ctx, queryAllRecords)
}

// GetRecordsByCategory returns the stored records of one category
func (r *ItemRepository) GetRecordsByCategory(ctx context.Context, category string) ([]domain.StoredRecord, error) {
	return r.query(ctx, queryRecordsByCategory, category)
}

// GetRecord retrieves a record by key
func (r *ItemRepository) GetRecord(ctx context.Context, category, itemID string) (*domain.StoredRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, queryRecord, category, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrRecordNotFound, category, itemID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecord, err)
	}
	return rec, nil
}

// InsertRecord stores a new record and sets its UpdatedAt
func (r *ItemRepository) InsertRecord(ctx context.Context, rec *domain.StoredRecord) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRecord, err)
	}

	err = r.pool.QueryRow(ctx, insertRecord,
		rec.Category, rec.ItemID, rec.Filename, data, rec.ContentHash,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return fmt.Errorf("%s: %s/%s already exists: %w", ErrMsgFailedToInsertRecord, rec.Category, rec.ItemID, err)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecord, err)
	}
	return nil
}

// UpdateRecord replaces the data of an existing record and refreshes UpdatedAt
func (r *ItemRepository) UpdateRecord(ctx context.Context, rec *domain.StoredRecord) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeRecord, err)
	}

	err = r.pool.QueryRow(ctx, updateRecord,
		rec.Category, rec.ItemID, rec.Filename, data, rec.ContentHash,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s/%s", domain.ErrRecordNotFound, rec.Category, rec.ItemID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRecord, err)
	}
	return nil
}

// DeleteRecord removes a record. Deleting a missing record is not an error.
func (r *ItemRepository) DeleteRecord(ctx context.Context, category, itemID string) error {
	if _, err := r.pool.Exec(ctx, deleteRecord, category, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRecord, err)
	}
	return nil
}

func (r *ItemRepository) query(ctx context.Context, sql string, args ...any) ([]domain.StoredRecord, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecords, err)
	}
	defer rows.Close()

	var records []domain.StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRecord, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecords, err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (*domain.StoredRecord, error) {
	var (
		rec  domain.StoredRecord
		data []byte
	)
	if err := row.Scan(&rec.Category, &rec.ItemID, &rec.Filename, &data, &rec.ContentHash, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return &rec, nil
}
