package handler

import (
	"context"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/item"
)

// URL parameters shared by the item routes
const (
	ParamCategory = "category"
	ParamFile     = "file"
	ParamSortBy   = "sort_by"
)

// AssetSource serves the raw asset tree. *catalog.DirSource implements it.
type AssetSource interface {
	catalog.Source
	Scan(ctx context.Context) (*catalog.ScanResult, error)
}

// ItemCatalog is the cached item view. *catalog.Cache implements it.
type ItemCatalog interface {
	Listing(ctx context.Context, category string) ([]catalog.Listed, error)
	Item(ctx context.Context, category, filename string) (item.Item, error)
	Invalidate(ctx context.Context, categories ...string) int
}

// RecordSyncer copies item records into the item store. *catalog.Syncer implements it.
type RecordSyncer interface {
	Sync(ctx context.Context) (*catalog.SyncResult, error)
}
