package handler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/item"
)

// MockDBPool mocks the Ping part of database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockItemCatalog mocks ItemCatalog
type MockItemCatalog struct {
	mock.Mock
}

func (m *MockItemCatalog) Listing(ctx context.Context, category string) ([]catalog.Listed, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Listed), args.Error(1)
}

func (m *MockItemCatalog) Item(ctx context.Context, category, filename string) (item.Item, error) {
	args := m.Called(ctx, category, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(item.Item), args.Error(1)
}

func (m *MockItemCatalog) Invalidate(ctx context.Context, categories ...string) int {
	args := m.Called(ctx, categories)
	return args.Int(0)
}

// MockRecordSyncer mocks RecordSyncer
type MockRecordSyncer struct {
	mock.Mock
}

func (m *MockRecordSyncer) Sync(ctx context.Context) (*catalog.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SyncResult), args.Error(1)
}

// testAssets is the asset tree served by newTestRouter.
var testAssets = map[string]string{
	"weapons/iron_sword.json": `{"id": "iron_sword", "name": "Iron Sword", "level": 3, "sellPrice": 40, "damage": 10}`,
	"weapons/dagger.json":     `{"id": "dagger", "name": "Dagger", "level": 1, "sellPrice": 15, "damage": 4}`,
	"weapons/axe_of_war.yaml": "id: war_axe\nname: War Axe\nlevel: 8\nsellPrice: 120\nrarity: epic\n",
	"potions/health_potion.json": `{"id": "health_potion", "name": "Health Potion", "healAmount": 30,
		"effects": [{"type": "heal", "value": 30, "description": "Warmth spreads"}]}`,
	"quest/crypt_key.json": `{"id": "crypt_key", "name": "Crypt Key", "questId": "crypt", "questName": "The Crypt",
		"questStage": 1, "targetLocation": "Crypt"}`,
	"materials/iron_ore.json": `{"id": "iron_ore", "name": "Iron Ore", "material": "iron"}`,
}

func writeTestAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range testAssets {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// newTestRouter mounts the item routes over a real catalog built on the
// test asset tree.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	InitValidator()

	src := catalog.NewDirSource(writeTestAssets(t))
	cache := catalog.NewCache(catalog.NewLoader(src, item.NewFactory()), 8, time.Minute)
	return mountItemRoutes(src, cache)
}

func mountItemRoutes(src AssetSource, c ItemCatalog) chi.Router {
	items := NewItemHandlers(c)
	r := chi.NewRouter()
	r.Get("/api/scan-items", HandleScanItems(src))
	r.Get("/api/records/{category}/{file}", HandleGetRecord(src))
	r.Get("/api/items/categories", items.HandleGetCategories())
	r.Post("/api/items/compare", items.HandleCompare())
	r.Post("/api/items/use", items.HandleUse())
	r.Get("/api/items/{category}", items.HandleListItems())
	r.Get("/api/items/{category}/{file}", items.HandleGetItem())
	return r
}
