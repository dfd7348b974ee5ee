package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/validation"
)

const itemSchemaPath = "configs/schemas/item.schema.json"

func newTestLoader(t *testing.T, files map[string]string, opts ...LoaderOption) *Loader {
	t.Helper()
	return NewLoader(NewDirSource(writeAssets(t, files)), item.NewFactory(), opts...)
}

func TestLoader_LoadItemFromFile(t *testing.T) {
	loader := newTestLoader(t, assetFixture)
	ctx := context.Background()

	t.Run("category taken from directory", func(t *testing.T) {
		it := loader.LoadItemFromFile(ctx, "armor", "leather_cap.yaml")
		require.NotNil(t, it)
		armor, ok := it.(*item.Armor)
		require.True(t, ok)
		assert.Equal(t, "armor", armor.Category)
		assert.Equal(t, 3.0, armor.Defense)
	})

	t.Run("unreadable file", func(t *testing.T) {
		ctx, logs := captureLogs(t)
		assert.Nil(t, loader.LoadItemFromFile(ctx, "weapons", "bad.json"))
		assert.Contains(t, logs.String(), LogMsgLoadRecordFailed)
	})

	t.Run("rejected by factory", func(t *testing.T) {
		assert.Nil(t, loader.LoadItemFromFile(ctx, "potions", "broken_potion.json"))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Nil(t, loader.LoadItemFromFile(ctx, "weapons", "axe.json"))
	})
}

func TestLoader_SchemaValidation(t *testing.T) {
	files := map[string]string{
		"potions/odd.json": `{"id": "odd", "effects": [{"value": 5}]}`,
	}
	ctx := context.Background()

	plain := newTestLoader(t, files)
	assert.NotNil(t, plain.LoadItemFromFile(ctx, "potions", "odd.json"))

	strict := newTestLoader(t, files, WithSchema(validation.NewSchemaValidator(), itemSchemaPath))
	assert.Nil(t, strict.LoadItemFromFile(ctx, "potions", "odd.json"))

	_, err := strict.LoadRecord(ctx, "potions", "odd.json")
	assert.ErrorIs(t, err, validation.ErrSchemaViolation)
}

func TestLoader_LoadCategoryItems(t *testing.T) {
	loader := newTestLoader(t, assetFixture, WithSchema(validation.NewSchemaValidator(), itemSchemaPath))
	ctx := context.Background()

	weapons := loader.LoadCategoryItems(ctx, "weapons")
	require.Len(t, weapons, 1)
	assert.Equal(t, "iron_sword", weapons[0].Core().ID)

	potions := loader.LoadCategoryItems(ctx, "potions")
	require.Len(t, potions, 1)
	assert.Equal(t, item.KindPotion, potions[0].Kind())

	quest := loader.LoadCategoryItems(ctx, "quest")
	assert.NotNil(t, quest)
	assert.Empty(t, quest)
}

func TestLoader_LoadCategoryRecords(t *testing.T) {
	loader := newTestLoader(t, assetFixture)

	entries, err := loader.LoadCategoryRecords(context.Background(), "potions")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "broken_potion.json", entries[0].Filename)
	assert.Equal(t, "potions", entries[0].Record["category"])

	_, err = loader.LoadCategoryRecords(context.Background(), "quest")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.LoadCategoryRecords(cctx, "potions")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_LoadAllItems(t *testing.T) {
	loader := newTestLoader(t, assetFixture)

	all := loader.LoadAllItems(context.Background())

	assert.ElementsMatch(t, []string{"weapons", "armor", "potions", "materials", "quest"}, keys(all))
	assert.Len(t, all["weapons"], 1)
	assert.Len(t, all["armor"], 1)
	assert.Len(t, all["potions"], 1)
	assert.Len(t, all["materials"], 1)
	assert.Empty(t, all["quest"])

	ore, ok := all["materials"][0].(*item.Material)
	require.True(t, ok)
	assert.Equal(t, "ore", ore.MaterialType)
}
