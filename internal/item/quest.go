package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/itemforge/internal/domain"
)

// Quest is a story item tied to a quest stage, a location or an NPC.
//
// IsKeyItem and HasAura read any unset or false value as true, so they are
// effectively always true.
type Quest struct {
	Base

	QuestID        string
	QuestName      string
	QuestStage     int
	IsKeyItem      bool
	CanSell        bool
	CanDrop        bool
	Lore           string
	UsageText      string
	TargetLocation string
	TargetNPC      string
	ActivatesEvent string
	Triggers       []domain.Effect
	HasAura        bool

	IsActive     bool
	IsUsed       bool
	DiscoveredAt *time.Time

	effects  *Registry[QuestEffectFunc]
	triggers *Registry[TriggerFunc]
}

// NewQuest builds a quest item from a raw record. Persisted isActive, isUsed
// and discoveredAt state is restored.
func NewQuest(rec domain.Record) (*Quest, error) {
	a := newAttrs(rec)
	q := &Quest{
		Base: a.base(baseDefaults{
			category:    domain.CategoryQuest,
			typ:         DefaultQuestType,
			weight:      0,
			sellPrice:   0,
			buyFactor:   0,
			stackSize:   1,
			rarity:      domain.RarityUnique,
			description: DefaultQuestDescription,
			color:       DefaultQuestColor,
			iconFrame:   domain.RarityUnique,
		}),
		QuestID:        a.nullable("questId"),
		QuestName:      a.str("questName", DefaultQuestName),
		QuestStage:     a.integer("questStage", DefaultQuestStage),
		IsKeyItem:      a.flag("isKeyItem", true),
		CanSell:        a.flag("canSell", false),
		CanDrop:        a.flag("canDrop", false),
		Lore:           a.str("lore", ""),
		UsageText:      a.str("usageText", DefaultQuestUsageText),
		TargetLocation: a.nullable("targetLocation"),
		TargetNPC:      a.nullable("targetNPC"),
		ActivatesEvent: a.nullable("activatesEvent"),
		Triggers:       a.effects("triggers"),
		HasAura:        a.flag("hasAura", true),
		IsActive:       a.stateFlag("isActive", false),
		IsUsed:         a.stateFlag("isUsed", false),
		DiscoveredAt:   a.timestamp("discoveredAt"),
		effects:        defaultQuestEffects,
		triggers:       defaultQuestTriggers,
	}
	if a.err != nil {
		return nil, a.err
	}
	return q, nil
}

func (q *Quest) Kind() Kind { return KindQuest }

// SetRegistries replaces the effect and trigger registries used by Use.
// A nil argument keeps the current registry.
func (q *Quest) SetRegistries(effects *Registry[QuestEffectFunc], triggers *Registry[TriggerFunc]) {
	if effects != nil {
		q.effects = effects
	}
	if triggers != nil {
		q.triggers = triggers
	}
}

// CanUse checks, in order, the quest state, the quest stage, the location,
// the NPC, and whether a single-use item was already used.
func (q *Quest) CanUse(player domain.QuestPlayer, location, npc string) domain.UseCheck {
	if q.QuestID != "" && !player.HasQuest(q.QuestID) {
		return domain.Refused(ReasonQuestNotActive)
	}
	if q.QuestID != "" && player.QuestStage(q.QuestID) < q.QuestStage {
		return domain.Refused(ReasonQuestNotReady)
	}
	if q.TargetLocation != "" && location != q.TargetLocation {
		return domain.Refused(fmt.Sprintf(ReasonWrongLocation, q.TargetLocation))
	}
	if q.TargetNPC != "" && npc != q.TargetNPC {
		return domain.Refused(fmt.Sprintf(ReasonWrongNPC, q.TargetNPC))
	}
	if q.IsUsed && q.StackSize == 1 {
		return domain.Refused(ReasonAlreadyUsed)
	}
	return domain.Allowed()
}

// Use advances the quest, fires the event, applies effects and triggers,
// then marks the item used.
func (q *Quest) Use(ctx context.Context, player domain.QuestPlayer, uc domain.UseContext) domain.QuestUseResult {
	check := q.CanUse(player, uc.Location, uc.NPC)
	if !check.CanUse {
		return domain.QuestUseResult{Success: false, Message: check.Reason}
	}

	var results []string
	var transforms []domain.Transform

	if q.QuestID != "" {
		player.AdvanceQuest(q.QuestID, q.QuestStage+1)
		results = append(results, fmt.Sprintf(MsgQuestAdvanced, q.QuestName))
	}

	if q.ActivatesEvent != "" {
		player.TriggerEvent(q.ActivatesEvent)
		results = append(results, fmt.Sprintf(MsgEventTriggered, q.ActivatesEvent))
	}

	for _, e := range q.Effects {
		if apply, ok := q.effects.Lookup(e.Type); ok {
			if t := apply(ctx, q, player, e); t != nil {
				transforms = append(transforms, *t)
			}
		} else {
			reportUnknownKind(ctx, q.effects.Name(), e.Type, q.ID)
		}
		if e.Description != "" {
			results = append(results, e.Description)
		}
	}

	for _, t := range q.Triggers {
		if process, ok := q.triggers.Lookup(t.Type); ok {
			process(ctx, player, t, uc)
		} else {
			reportUnknownKind(ctx, q.triggers.Name(), t.Type, q.ID)
		}
	}

	q.IsUsed = true

	return domain.QuestUseResult{
		Success:    true,
		Message:    strings.Join(results, UseMessageSeparator),
		NextAction: q.NextAction(),
		Transforms: transforms,
	}
}

// Transform describes this item turning into newItemID.
func (q *Quest) Transform(newItemID string) domain.Transform {
	return domain.Transform{
		Type:    QuestTransformType,
		OldItem: q.ID,
		NewItem: newItemID,
		Message: fmt.Sprintf(MsgItemTransformed, q.Name),
	}
}

// NextAction tells the player where to take the item next.
func (q *Quest) NextAction() string {
	if q.TargetLocation != "" {
		return fmt.Sprintf(MsgGoToLocation, q.TargetLocation)
	}
	if q.TargetNPC != "" {
		return fmt.Sprintf(MsgSpeakWith, q.TargetNPC)
	}
	return QuestNextActionDefault
}

func (q *Quest) IsRelevantToQuest(questID string) bool {
	return q.QuestID == questID
}

// QuestHint returns the usage hint. ok is false while the item is inactive.
func (q *Quest) QuestHint() (hint string, ok bool) {
	if !q.IsActive {
		return "", false
	}
	hint = q.UsageText
	if q.TargetLocation != "" {
		hint += " Location: " + q.TargetLocation
	}
	if q.TargetNPC != "" {
		hint += " NPC: " + q.TargetNPC
	}
	return hint, true
}

// Discover activates the item and records the first discovery time.
func (q *Quest) Discover(now time.Time) {
	q.IsActive = true
	if q.DiscoveredAt == nil {
		ts := now.UTC()
		q.DiscoveredAt = &ts
	}
}

func (q *Quest) TooltipText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", q.Name)
	fmt.Fprintf(&sb, "Quest: %s\n", q.QuestName)
	sb.WriteString(TooltipQuestItemLabel)
	fmt.Fprintf(&sb, "Rarity: %s\n", q.Rarity)
	if q.IsKeyItem {
		sb.WriteString(TooltipKeyItem)
	}
	if !q.CanSell {
		sb.WriteString(TooltipCannotBeSold)
	}
	fmt.Fprintf(&sb, "\n%s", q.Description)
	if q.Lore != "" {
		fmt.Fprintf(&sb, "\n\n\"%s\"", q.Lore)
	}
	if q.UsageText != "" && q.IsActive {
		fmt.Fprintf(&sb, "\n\nHint: %s", q.UsageText)
	}
	return sb.String()
}

type questExport struct {
	ID             string          `json:"id,omitempty"`
	Name           string          `json:"name,omitempty"`
	Filename       string          `json:"filename,omitempty"`
	Category       string          `json:"category"`
	Type           string          `json:"type"`
	QuestID        *string         `json:"questId"`
	QuestName      string          `json:"questName"`
	QuestStage     int             `json:"questStage"`
	IsKeyItem      bool            `json:"isKeyItem"`
	Weight         float64         `json:"weight"`
	SellPrice      float64         `json:"sellPrice"`
	BuyPrice       float64         `json:"buyPrice"`
	CanSell        bool            `json:"canSell"`
	CanDrop        bool            `json:"canDrop"`
	Level          int             `json:"level"`
	Rarity         string          `json:"rarity"`
	StackSize      int             `json:"stackSize"`
	Description    string          `json:"description"`
	Lore           string          `json:"lore"`
	UsageText      string          `json:"usageText"`
	TargetLocation *string         `json:"targetLocation"`
	TargetNPC      *string         `json:"targetNPC"`
	ActivatesEvent *string         `json:"activatesEvent"`
	Effects        []domain.Effect `json:"effects"`
	Triggers       []domain.Effect `json:"triggers"`
	Color          string          `json:"color"`
	IconFrame      string          `json:"iconFrame"`
	HasAura        bool            `json:"hasAura"`
	IsActive       bool            `json:"isActive"`
	IsUsed         bool            `json:"isUsed"`
	DiscoveredAt   *time.Time      `json:"discoveredAt"`
}

func (q *Quest) ToJSON() any {
	return questExport{
		ID:             q.ID,
		Name:           q.Name,
		Filename:       q.Filename,
		Category:       q.Category,
		Type:           q.Type,
		QuestID:        nullable(q.QuestID),
		QuestName:      q.QuestName,
		QuestStage:     q.QuestStage,
		IsKeyItem:      q.IsKeyItem,
		Weight:         q.Weight,
		SellPrice:      q.SellPrice,
		BuyPrice:       q.BuyPrice,
		CanSell:        q.CanSell,
		CanDrop:        q.CanDrop,
		Level:          q.Level,
		Rarity:         q.Rarity,
		StackSize:      q.StackSize,
		Description:    q.Description,
		Lore:           q.Lore,
		UsageText:      q.UsageText,
		TargetLocation: nullable(q.TargetLocation),
		TargetNPC:      nullable(q.TargetNPC),
		ActivatesEvent: nullable(q.ActivatesEvent),
		Effects:        exportEffects(q.Effects),
		Triggers:       exportEffects(q.Triggers),
		Color:          q.Color,
		IconFrame:      q.IconFrame,
		HasAura:        q.HasAura,
		IsActive:       q.IsActive,
		IsUsed:         q.IsUsed,
		DiscoveredAt:   q.DiscoveredAt,
	}
}
