package item

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
)

// captureLogs returns a context whose logger writes JSON lines into the buffer.
func captureLogs(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger.WithLogger(context.Background(), l), &buf
}

func TestCreateItem_InvalidInput(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		name string
		rec  domain.Record
	}{
		{"nil record", nil},
		{"empty record", domain.Record{}},
		{"empty category", domain.Record{"category": ""}},
		{"non-string category", domain.Record{"category": 42.0}},
		{"null category", domain.Record{"category": nil, "name": "Nameless"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, logs := captureLogs(t)
			assert.Nil(t, f.CreateItem(ctx, tt.rec))
			assert.Contains(t, logs.String(), LogMsgInvalidItemData)
		})
	}
}

func TestCreateItem_DispatchesByCategory(t *testing.T) {
	f := NewFactory()

	tests := []struct {
		raw      string
		want     Kind
		category string
	}{
		{"weapons", KindWeapon, "weapons"},
		{"WEAPONS", KindWeapon, "weapons"},
		{"Armor", KindArmor, "armor"},
		{"potions", KindPotion, "potions"},
		{"Materials", KindMaterial, "materials"},
		{"QUEST", KindQuest, "quest"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			it := f.CreateItem(context.Background(), domain.Record{
				"category": tt.raw,
				"filename": "thing.png",
			})
			require.NotNil(t, it)
			assert.Equal(t, tt.want, it.Kind())
			assert.Equal(t, tt.category, it.Core().Category)
			assert.Equal(t, "assets/items/"+tt.category+"/thing.png", it.ImagePath())
		})
	}
}

func TestCreateItem_PaddedCategoryIsUnknown(t *testing.T) {
	it := NewFactory().CreateItem(context.Background(), domain.Record{"category": " weapons "})
	require.NotNil(t, it)
	assert.Equal(t, KindUnknown, it.Kind())
}

func TestCreateItem_UnknownCategoryPassesThrough(t *testing.T) {
	ctx, logs := captureLogs(t)
	rec := domain.Record{
		"category": "Trinkets",
		"filename": "ring.png",
		"name":     "Old Ring",
		"sparkle":  true,
		"nested":   map[string]any{"a": 1.0},
	}

	it := NewFactory().CreateItem(ctx, rec)
	require.NotNil(t, it)
	assert.Contains(t, logs.String(), LogMsgUnknownCategory)

	u, ok := it.(*Unknown)
	require.True(t, ok)
	assert.Equal(t, KindUnknown, u.Kind())
	assert.Equal(t, "assets/items/Trinkets/ring.png", u.ImagePath())

	sparkle, ok := u.Attr("sparkle")
	require.True(t, ok)
	assert.Equal(t, true, sparkle)

	exported, ok := u.ToJSON().(domain.Record)
	require.True(t, ok)
	assert.Equal(t, "Trinkets", exported["category"])
	assert.Equal(t, map[string]any{"a": 1.0}, exported["nested"])
	assert.Equal(t, "assets/items/Trinkets/ring.png", exported[ImagePathKey])

	// The input record is not modified.
	_, touched := rec[ImagePathKey]
	assert.False(t, touched)

	assert.Equal(t, "Old Ring\nCategory: Trinkets\nLevel: 1\n\nNo description available.", u.TooltipText())
}

func TestCreateItem_MalformedRecordReturnsNil(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.Record
	}{
		{"weapon damage text", domain.Record{"category": "weapons", "damage": "sharp"}},
		{"armor defense object", domain.Record{"category": "armor", "defense": map[string]any{}}},
		{"potion effects scalar", domain.Record{"category": "potions", "effects": 3.0}},
		{"material usedIn objects", domain.Record{"category": "materials", "usedIn": []any{map[string]any{}}}},
		{"quest discoveredAt garbage", domain.Record{"category": "quest", "discoveredAt": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, logs := captureLogs(t)
			assert.Nil(t, NewFactory().CreateItem(ctx, tt.rec))
			assert.Contains(t, logs.String(), LogMsgCreateItemFailed)
		})
	}
}

func TestCreateItem_NumericStringsAccepted(t *testing.T) {
	it := NewFactory().CreateItem(context.Background(), domain.Record{"category": "weapons", "damage": "12"})
	require.NotNil(t, it)
	assert.Equal(t, 12.0, it.(*Weapon).Damage)
}

func TestCreateItem_WarnsOnUnregisteredKinds(t *testing.T) {
	ctx, logs := captureLogs(t)
	it := NewFactory().CreateItem(ctx, domain.Record{
		"category": "potions",
		"id":       "elixir",
		"effects":  []any{"instant_heal", map[string]any{"type": "heal", "value": 5.0}},
	})
	require.NotNil(t, it)

	out := logs.String()
	assert.Contains(t, out, LogMsgUnregisteredKind)
	assert.Contains(t, out, "instant_heal")
	assert.Contains(t, out, RegistryPotionEffects)
}

func TestCreateItem_InjectsRegistries(t *testing.T) {
	var seen []string
	potions := NewRegistry[PotionEffectFunc]("custom").
		MustRegister("glow", func(_ context.Context, _ domain.Player, e domain.Effect) {
			seen = append(seen, e.Type)
		})

	f := NewFactory(WithPotionEffects(potions))
	it := f.CreateItem(context.Background(), domain.Record{
		"category": "potions",
		"effects":  []any{map[string]any{"type": "glow", "description": "You glow"}},
	})
	require.NotNil(t, it)

	res := it.(*Potion).Use(context.Background(), &domain.Character{Level: 1, Health: 10, MaxHealth: 10})
	assert.True(t, res.Success)
	assert.Equal(t, "You glow", res.Message)
	assert.Equal(t, []string{"glow"}, seen)
}

func TestToJSON_RoundTripIsIdempotent(t *testing.T) {
	records := map[string]domain.Record{
		"weapon": {
			"id": "steel_sword", "name": "Steel Sword", "filename": "steel_sword.png",
			"category": "weapons", "type": "sword", "material": "steel",
			"damage": 14.0, "durability": 0.0, "maxDurability": 80.0,
			"effects":      []any{map[string]any{"type": "bleed", "value": 2.0, "description": "Bleeds"}},
			"enchantments": []any{"sharpness"},
			"glowEffect":   true,
		},
		"weapon defaults": {"category": "weapons"},
		"armor": {
			"id": "iron_helm", "name": "Iron Helm", "filename": "iron_helm.png",
			"category": "armor", "type": "helmet", "material": "iron",
			"fireResistance": 15.0, "armorClass": "heavy",
		},
		"potion": {
			"id": "elixir", "name": "Elixir", "filename": "elixir.png",
			"category": "potions", "healAmount": 25.0, "duration": 30.0,
			"ingredients":  []any{"herb", "water"},
			"effects":      []any{"instant_heal"},
			"currentStack": 0.0,
		},
		"material": {
			"id": "iron_ore", "name": "Iron Ore", "filename": "iron_ore.png",
			"category": "materials", "materialType": "ore", "grade": "fine",
			"purity": 80.0, "usedIn": []any{"sword"}, "currentStack": 7.0,
		},
		"quest": {
			"id": "old_key", "name": "Old Key", "filename": "old_key.png",
			"category": "quest", "questId": "q1", "targetLocation": "Crypt",
			"isKeyItem": false, "isActive": true, "isUsed": true,
			"discoveredAt": "2024-03-01T10:00:00Z",
			"triggers":     []any{map[string]any{"type": "cutscene", "cutsceneId": "intro"}},
		},
		"unknown": {"category": "trinkets", "filename": "x.png", "glint": 3.0},
		"fractional stack size": {
			"category": "potions", "stackSize": 0.5,
		},
		"negative level": {
			"category": "armor", "level": -3.0,
		},
		"negative max durability": {
			"category": "weapons", "maxDurability": -5.0,
		},
	}

	f := NewFactory()
	for name, rec := range records {
		t.Run(name, func(t *testing.T) {
			first := f.CreateItem(context.Background(), rec)
			require.NotNil(t, first)

			rt, err := Record(first)
			require.NoError(t, err)
			second := f.CreateItem(context.Background(), rt)
			require.NotNil(t, second)

			a, err := json.Marshal(first.ToJSON())
			require.NoError(t, err)
			b, err := json.Marshal(second.ToJSON())
			require.NoError(t, err)
			assert.Equal(t, string(a), string(b))
		})
	}
}

func TestToJSON_KeyOrder(t *testing.T) {
	w, err := NewWeapon(domain.Record{"id": "a", "name": "A", "filename": "a.png", "type": "sword"})
	require.NoError(t, err)

	data, err := json.Marshal(w.ToJSON())
	require.NoError(t, err)
	out := string(data)

	order := []string{`"id"`, `"name"`, `"filename"`, `"category"`, `"type"`, `"damage"`,
		`"criticalChance"`, `"durability"`, `"sellPrice"`, `"effects"`, `"enchantments"`, `"glowEffect"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.GreaterOrEqual(t, idx, 0, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
	assert.NotContains(t, out, `"ammunition"`)
	assert.NotContains(t, out, `"material"`)
}

func TestQuestExport_NullableFields(t *testing.T) {
	q, err := NewQuest(domain.Record{})
	require.NoError(t, err)

	rec, err := Record(q)
	require.NoError(t, err)
	for _, key := range []string{"questId", "targetLocation", "targetNPC", "activatesEvent", "discoveredAt"} {
		v, present := rec[key]
		assert.True(t, present, key)
		assert.Nil(t, v, key)
	}
}

func TestAllItemCategories(t *testing.T) {
	got := AllItemCategories()
	assert.Equal(t, []domain.Category{"weapons", "armor", "potions", "materials", "quest"}, got)

	got[0] = "mutated"
	assert.Equal(t, domain.CategoryWeapons, AllItemCategories()[0])
}

func TestItemStats(t *testing.T) {
	f := NewFactory()
	ctx := context.Background()

	t.Run("weapon", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "weapons", "type": "axe", "material": "iron", "damage": 12.0}))
		assert.Equal(t, "weapons", s.Category)
		assert.Equal(t, "axe", s.Type)
		assert.Equal(t, domain.RarityCommon, s.Rarity)
		assert.Equal(t, 1, s.Level)
		assert.Equal(t, 12.0, s.Damage)
		assert.Equal(t, 0.05, s.CriticalChance)
		assert.Equal(t, "iron", s.Material)
		assert.Equal(t, 10.0, s.SellPrice)
	})

	t.Run("armor", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "armor", "type": "boots"}))
		assert.Equal(t, 5.0, s.Defense)
		assert.Equal(t, domain.ArmorClassMedium, s.ArmorClass)
		assert.Equal(t, "boots", s.Slot)
	})

	t.Run("potion", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "potions"}))
		assert.Equal(t, DefaultPotionEffect, s.Effect)
		assert.Equal(t, DefaultPotionDuration, s.Duration)
		assert.Equal(t, DefaultPotionStackSize, s.StackSize)
	})

	t.Run("material", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "materials", "grade": "superior", "craftingValue": 3.0}))
		assert.Equal(t, DefaultMaterialKind, s.MaterialType)
		assert.Equal(t, "superior", s.Grade)
		assert.Equal(t, 6.0, s.CraftingValue)
	})

	t.Run("quest", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "quest", "questName": "Lost Relic"}))
		assert.Equal(t, "Lost Relic", s.QuestName)
		assert.True(t, s.IsKeyItem)
		assert.Equal(t, domain.RarityUnique, s.Rarity)
	})

	t.Run("unknown keeps the common projection", func(t *testing.T) {
		s := ItemStats(f.CreateItem(ctx, domain.Record{"category": "relics", "level": 4.0}))
		assert.Equal(t, "relics", s.Category)
		assert.Equal(t, 4, s.Level)
		assert.Zero(t, s.Damage)
	})
}

func TestFactory_CountsBelowOneTakeDefaults(t *testing.T) {
	p, err := NewPotion(domain.Record{"stackSize": 0.5, "level": -2.0})
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, p.Level)
	assert.Greater(t, p.StackSize, 0)

	w, err := NewWeapon(domain.Record{"maxDurability": -5.0, "durability": 20.0})
	require.NoError(t, err)
	assert.Equal(t, DefaultDurability, w.MaxDurability())
	assert.Equal(t, 20.0, w.Durability())
}
