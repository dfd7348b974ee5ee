package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
)

func newQuest(t *testing.T, rec domain.Record) *Quest {
	t.Helper()
	q, err := NewQuest(rec)
	require.NoError(t, err)
	return q
}

func TestQuest_Defaults(t *testing.T) {
	q := newQuest(t, nil)
	assert.Equal(t, "quest", q.Category)
	assert.Equal(t, DefaultQuestType, q.Type)
	assert.Empty(t, q.QuestID)
	assert.Equal(t, DefaultQuestName, q.QuestName)
	assert.Equal(t, DefaultQuestStage, q.QuestStage)
	assert.Zero(t, q.Weight)
	assert.Zero(t, q.SellPrice)
	assert.Zero(t, q.BuyPrice)
	assert.False(t, q.CanSell)
	assert.False(t, q.CanDrop)
	assert.Equal(t, domain.RarityUnique, q.Rarity)
	assert.Equal(t, domain.RarityUnique, q.IconFrame)
	assert.Equal(t, DefaultQuestColor, q.Color)
	assert.False(t, q.IsActive)
	assert.False(t, q.IsUsed)
	assert.Nil(t, q.DiscoveredAt)
}

func TestQuest_KeyItemAndAuraAlwaysTrue(t *testing.T) {
	q := newQuest(t, domain.Record{"isKeyItem": false, "hasAura": false})
	assert.True(t, q.IsKeyItem)
	assert.True(t, q.HasAura)
}

func TestQuest_CanUseOrder(t *testing.T) {
	rec := domain.Record{
		"questId":        "q1",
		"questStage":     2.0,
		"targetLocation": "Crypt",
		"targetNPC":      "Warden",
	}

	tests := []struct {
		name     string
		player   *domain.Character
		location string
		npc      string
		used     bool
		reason   string
	}{
		{"quest missing", &domain.Character{}, "Crypt", "Warden", false, ReasonQuestNotActive},
		{"stage too low", &domain.Character{Quests: map[string]int{"q1": 1}}, "Crypt", "Warden", false, ReasonQuestNotReady},
		{"wrong location", &domain.Character{Quests: map[string]int{"q1": 2}}, "Village", "Warden", false, "Must be used at Crypt"},
		{"wrong npc", &domain.Character{Quests: map[string]int{"q1": 2}}, "Crypt", "Bob", false, "Must be used with Warden"},
		{"already used", &domain.Character{Quests: map[string]int{"q1": 3}}, "Crypt", "Warden", true, ReasonAlreadyUsed},
		{"allowed", &domain.Character{Quests: map[string]int{"q1": 2}}, "Crypt", "Warden", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newQuest(t, rec)
			q.IsUsed = tt.used
			check := q.CanUse(tt.player, tt.location, tt.npc)
			assert.Equal(t, tt.reason == "", check.CanUse)
			assert.Equal(t, tt.reason, check.Reason)
		})
	}
}

func TestQuest_UsedStackableItemCanBeReused(t *testing.T) {
	q := newQuest(t, domain.Record{"stackSize": 3.0, "isUsed": true})
	assert.True(t, q.CanUse(&domain.Character{}, "", "").CanUse)
}

func TestQuest_Use(t *testing.T) {
	q := newQuest(t, domain.Record{
		"id":             "old_key",
		"name":           "Old Key",
		"questId":        "q1",
		"questName":      "The Crypt",
		"questStage":     1.0,
		"targetLocation": "Crypt",
		"activatesEvent": "gate_opens",
		"effects": []any{
			map[string]any{"type": "unlock_area", "areaId": "inner_crypt", "description": "A door opens"},
			map[string]any{"type": "learn_spell", "spellId": "light"},
			map[string]any{"type": "gain_title", "titleId": "keeper"},
			map[string]any{"type": "reputation", "faction": "monks", "amount": 15.0},
			map[string]any{"type": "transform", "newItemId": "broken_key", "description": "The key crumbles"},
		},
		"triggers": []any{
			map[string]any{"type": "dialogue", "npcId": "Warden", "dialogueId": "warden_thanks"},
			map[string]any{"type": "dialogue", "npcId": "Ghost", "dialogueId": "ghost_wail"},
			map[string]any{"type": "cutscene", "cutsceneId": "gate"},
			map[string]any{"type": "teleport", "location": "Crypt Depths"},
			map[string]any{"type": "spawn_enemy", "enemyId": "skeleton", "location": "Crypt Depths"},
		},
	})
	player := &domain.Character{Quests: map[string]int{"q1": 1}}

	res := q.Use(context.Background(), player, domain.UseContext{Location: "Crypt", NPC: "Warden"})

	require.True(t, res.Success)
	assert.Equal(t, `Quest "The Crypt" advanced, Event "gate_opens" triggered, A door opens, The key crumbles`, res.Message)
	assert.Equal(t, "Go to Crypt", res.NextAction)
	assert.Equal(t, []domain.Transform{{
		Type:    QuestTransformType,
		OldItem: "old_key",
		NewItem: "broken_key",
		Message: "Old Key has transformed!",
	}}, res.Transforms)

	assert.Equal(t, 2, player.QuestStage("q1"))
	assert.Equal(t, []string{"gate_opens"}, player.Events)
	assert.Equal(t, []string{"inner_crypt"}, player.Areas)
	assert.Equal(t, []string{"light"}, player.Spells)
	assert.Equal(t, []string{"keeper"}, player.Titles)
	assert.Equal(t, 15.0, player.Reputation["monks"])
	assert.Equal(t, []string{"warden_thanks"}, player.Dialogues)
	assert.Equal(t, []string{"gate"}, player.Cutscenes)
	assert.Equal(t, "Crypt Depths", player.Location)
	assert.Equal(t, []domain.Spawn{{EnemyID: "skeleton", Location: "Crypt Depths"}}, player.Spawns)
	assert.True(t, q.IsUsed)

	again := q.Use(context.Background(), player, domain.UseContext{Location: "Crypt"})
	assert.False(t, again.Success)
	assert.Equal(t, ReasonAlreadyUsed, again.Message)
}

func TestQuest_UseRefusedLeavesStateAlone(t *testing.T) {
	q := newQuest(t, domain.Record{"questId": "q9"})
	player := &domain.Character{}

	res := q.Use(context.Background(), player, domain.UseContext{})
	assert.False(t, res.Success)
	assert.Equal(t, ReasonQuestNotActive, res.Message)
	assert.False(t, q.IsUsed)
	assert.Empty(t, player.Quests)
}

func TestQuest_UnknownEffectAndTriggerIgnored(t *testing.T) {
	q := newQuest(t, domain.Record{
		"id":       "charm",
		"effects":  []any{map[string]any{"type": "summon_dragon", "description": "Nothing happens"}},
		"triggers": []any{map[string]any{"type": "fireworks"}},
	})
	ctx, logs := captureLogs(t)

	res := q.Use(ctx, &domain.Character{}, domain.UseContext{})

	assert.True(t, res.Success)
	assert.Equal(t, "Nothing happens", res.Message)
	assert.Equal(t, QuestNextActionDefault, res.NextAction)
	assert.Contains(t, logs.String(), "summon_dragon")
	assert.Contains(t, logs.String(), "fireworks")
	assert.Contains(t, logs.String(), RegistryQuestTriggers)
}

func TestQuest_NextAction(t *testing.T) {
	assert.Equal(t, "Go to Tower", newQuest(t, domain.Record{"targetLocation": "Tower", "targetNPC": "Mage"}).NextAction())
	assert.Equal(t, "Speak with Mage", newQuest(t, domain.Record{"targetNPC": "Mage"}).NextAction())
	assert.Equal(t, QuestNextActionDefault, newQuest(t, nil).NextAction())
}

func TestQuest_HintAndDiscovery(t *testing.T) {
	q := newQuest(t, domain.Record{"questId": "q1", "usageText": "Place it on the altar.", "targetLocation": "Temple", "targetNPC": "Priest"})

	_, ok := q.QuestHint()
	assert.False(t, ok)
	assert.True(t, q.IsRelevantToQuest("q1"))
	assert.False(t, q.IsRelevantToQuest("q2"))

	first := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	q.Discover(first)
	q.Discover(first.Add(time.Hour))

	hint, ok := q.QuestHint()
	assert.True(t, ok)
	assert.Equal(t, "Place it on the altar. Location: Temple NPC: Priest", hint)
	require.NotNil(t, q.DiscoveredAt)
	assert.Equal(t, first, *q.DiscoveredAt)
}

func TestQuest_TooltipText(t *testing.T) {
	q := newQuest(t, domain.Record{
		"name":      "Old Key",
		"questName": "The Crypt",
		"lore":      "Cold to the touch.",
		"canSell":   true,
	})

	want := "Old Key\nQuest: The Crypt\nType: Quest Item\nRarity: unique\nKey Item - Cannot be discarded\n" +
		"\nAn important quest item.\n\n\"Cold to the touch.\""
	assert.Equal(t, want, q.TooltipText())

	q.IsActive = true
	assert.Contains(t, q.TooltipText(), "\n\nHint: "+DefaultQuestUsageText)
}
