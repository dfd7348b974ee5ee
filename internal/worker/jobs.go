package worker

import (
	"context"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
)

// RecordSyncer copies item records into the item store.
type RecordSyncer interface {
	Sync(ctx context.Context) (*catalog.SyncResult, error)
}

// SyncJob runs one database sync.
type SyncJob struct {
	syncer RecordSyncer
}

func NewSyncJob(syncer RecordSyncer) *SyncJob {
	return &SyncJob{syncer: syncer}
}

func (j *SyncJob) Name() string { return JobNameSync }

func (j *SyncJob) Process(ctx context.Context) error {
	res, err := j.syncer.Sync(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSyncJobResult,
		"inserted", res.Inserted,
		"updated", res.Updated,
		"skipped", res.Skipped,
		"failed", res.Failed)
	return nil
}

// CategoryLoader loads the items of one category. *catalog.Cache implements it.
type CategoryLoader interface {
	Items(ctx context.Context, category string) ([]item.Item, error)
}

// WarmCacheJob loads every item category so the first requests hit the cache.
// Categories that cannot be loaded are logged and skipped.
type WarmCacheJob struct {
	cache CategoryLoader
}

func NewWarmCacheJob(cache CategoryLoader) *WarmCacheJob {
	return &WarmCacheJob{cache: cache}
}

func (j *WarmCacheJob) Name() string { return JobNameWarmCache }

func (j *WarmCacheJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	warmed, total := 0, 0
	for _, c := range item.AllItemCategories() {
		if err := ctx.Err(); err != nil {
			return err
		}
		items, err := j.cache.Items(ctx, c.String())
		if err != nil {
			log.Warn(LogMsgWarmSkipped, "category", c, "error", err)
			continue
		}
		warmed++
		total += len(items)
	}
	log.Info(LogMsgCacheWarmed, "categories", warmed, "items", total)
	return nil
}
