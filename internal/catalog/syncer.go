package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
)

// SyncResult contains the result of syncing item records to the store
type SyncResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Syncer copies the exported form of every loadable item into an item store.
// Unchanged records are detected by content hash and left alone. Concurrent
// calls to Sync run one at a time.
type Syncer struct {
	mu     sync.Mutex
	loader *Loader
	repo   repository.Item
}

func NewSyncer(loader *Loader, repo repository.Item) *Syncer {
	return &Syncer{loader: loader, repo: repo}
}

// Sync loads every known category and upserts its items. Records the factory
// rejects are counted as failed, as is any later file reusing an item id
// already synced in the same run. A store error aborts the sync.
func (s *Syncer) Sync(ctx context.Context) (*SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	stored, err := s.repo.GetAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadExisting, err)
	}
	existing := make(map[string]*domain.StoredRecord, len(stored))
	for i := range stored {
		existing[recordKey(stored[i].Category, stored[i].ItemID)] = &stored[i]
	}

	result := &SyncResult{}
	seen := make(map[string]string)
	for _, c := range item.AllItemCategories() {
		category := c.String()
		entries, err := s.loader.LoadCategoryRecords(ctx, category)
		if err != nil {
			log.Warn(LogMsgListFailed, "category", category, "error", err)
			continue
		}
		for _, e := range entries {
			if err := s.syncOne(ctx, category, e, existing, seen, result); err != nil {
				return nil, err
			}
		}
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", result.Failed)

	return result, nil
}

// seen maps each key synced in this run to the file it came from.
func (s *Syncer) syncOne(ctx context.Context, category string, e Entry, existing map[string]*domain.StoredRecord, seen map[string]string, result *SyncResult) error {
	log := logger.FromContext(ctx)

	it := s.loader.factory.CreateItem(ctx, e.Record)
	if it == nil {
		result.Failed++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgSyncItemRejected, "category", category, "file", e.Filename)
		return nil
	}

	data, err := item.Record(it)
	if err != nil {
		result.Failed++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgSyncItemRejected, "category", category, "file", e.Filename, "error", err)
		return nil
	}

	hash, err := ContentHash(data)
	if err != nil {
		return err
	}

	itemID := it.Core().ID
	if itemID == "" {
		itemID = e.Filename
	}

	rec := &domain.StoredRecord{
		Category:    category,
		ItemID:      itemID,
		Filename:    e.Filename,
		Data:        data,
		ContentHash: hash,
	}

	key := recordKey(category, itemID)
	if first, dup := seen[key]; dup {
		result.Failed++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgSyncDuplicateID,
			"category", category,
			"item_id", itemID,
			"file", e.Filename,
			"first_file", first)
		return nil
	}
	seen[key] = e.Filename

	prev, ok := existing[key]
	switch {
	case !ok:
		if err := s.repo.InsertRecord(ctx, rec); err != nil {
			return fmt.Errorf(ErrFmtSyncFailed, "insert", category, itemID, err)
		}
		result.Inserted++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeInserted).Inc()
		log.Info(LogMsgSyncInserted, "category", category, "item_id", itemID)
	case prev.ContentHash != hash || prev.Filename != e.Filename:
		if err := s.repo.UpdateRecord(ctx, rec); err != nil {
			return fmt.Errorf(ErrFmtSyncFailed, "update", category, itemID, err)
		}
		result.Updated++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeUpdated).Inc()
		log.Info(LogMsgSyncUpdated, "category", category, "item_id", itemID)
	default:
		result.Skipped++
		metrics.SyncedRecords.WithLabelValues(metrics.OutcomeSkipped).Inc()
	}

	existing[key] = rec
	return nil
}

// ContentHash returns the hex sha256 of the canonical JSON form of rec.
// encoding/json writes map keys in sorted order, which makes the form stable.
func ContentHash(rec domain.Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func recordKey(category, itemID string) string {
	return category + "/" + itemID
}
