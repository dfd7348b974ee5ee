package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
)

// Cache keeps the records of recently used categories. Items are rebuilt
// from the cached records on every call, so callers never share an item.
// Cached records are read-only.
type Cache struct {
	loader *Loader
	lru    *expirable.LRU[string, []Entry]
	group  singleflight.Group
}

// NewCache caches up to size categories for ttl each.
func NewCache(loader *Loader, size int, ttl time.Duration) *Cache {
	return &Cache{
		loader: loader,
		lru:    expirable.NewLRU[string, []Entry](size, nil, ttl),
	}
}

// Records returns the records of a category, loading it on a miss.
// Concurrent misses for the same category share one load.
func (c *Cache) Records(ctx context.Context, category string) ([]Entry, error) {
	if entries, ok := c.lru.Get(category); ok {
		metrics.CacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return entries, nil
	}
	metrics.CacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	// The shared load must not be cut short when the first caller goes away.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(category, func() (any, error) {
		entries, err := c.loader.LoadCategoryRecords(loadCtx, category)
		if err != nil {
			return nil, err
		}
		c.lru.Add(category, entries)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Entry), nil
}

// Items builds fresh items for every cached record of a category.
func (c *Cache) Items(ctx context.Context, category string) ([]item.Item, error) {
	entries, err := c.Records(ctx, category)
	if err != nil {
		return nil, err
	}
	return c.loader.build(ctx, entries), nil
}

// Listed pairs a built item with the file it was read from.
type Listed struct {
	Filename string
	Item     item.Item
}

// Listing builds fresh items for a category, keeping each item's file name.
// Records the factory rejects are left out.
func (c *Cache) Listing(ctx context.Context, category string) ([]Listed, error) {
	entries, err := c.Records(ctx, category)
	if err != nil {
		return nil, err
	}
	listed := make([]Listed, 0, len(entries))
	for _, e := range entries {
		if it := c.loader.factory.CreateItem(ctx, e.Record); it != nil {
			listed = append(listed, Listed{Filename: e.Filename, Item: it})
		}
	}
	return listed, nil
}

// Record returns a copy of one cached record.
func (c *Cache) Record(ctx context.Context, category, filename string) (domain.Record, error) {
	e, err := c.entry(ctx, category, filename)
	if err != nil {
		return nil, err
	}
	return e.Record.Clone(), nil
}

// Item builds a fresh item from one cached record.
func (c *Cache) Item(ctx context.Context, category, filename string) (item.Item, error) {
	e, err := c.entry(ctx, category, filename)
	if err != nil {
		return nil, err
	}
	it := c.loader.factory.CreateItem(ctx, e.Record)
	if it == nil {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrMalformedRecord, category, filename)
	}
	return it, nil
}

func (c *Cache) entry(ctx context.Context, category, filename string) (Entry, error) {
	entries, err := c.Records(ctx, category)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Filename == filename {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s/%s", domain.ErrItemNotFound, category, filename)
}

// Invalidate drops the given categories, or every category when none are
// given. It returns the number of categories dropped.
func (c *Cache) Invalidate(ctx context.Context, categories ...string) int {
	dropped := 0
	if len(categories) == 0 {
		dropped = c.lru.Len()
		c.lru.Purge()
	} else {
		for _, category := range categories {
			if c.lru.Remove(category) {
				dropped++
			}
		}
	}
	logger.FromContext(ctx).Info(LogMsgCacheInvalidated, "categories", categories, "dropped", dropped)
	return dropped
}

// Len returns the number of cached categories.
func (c *Cache) Len() int { return c.lru.Len() }
