package item

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
)

// Registry names, also used as metric label values
const (
	RegistryPotionEffects = "potion_effects"
	RegistryQuestEffects  = "quest_effects"
	RegistryQuestTriggers = "quest_triggers"
)

// Registration errors
var (
	ErrEmptyKind     = errors.New("effect kind is empty")
	ErrDuplicateKind = errors.New("effect kind already registered")
)

// PotionEffectFunc applies one potion effect to a player.
type PotionEffectFunc func(ctx context.Context, p domain.Player, e domain.Effect)

// QuestEffectFunc applies one quest effect. A non-nil Transform is reported
// back in the use result.
type QuestEffectFunc func(ctx context.Context, q *Quest, p domain.QuestPlayer, e domain.Effect) *domain.Transform

// TriggerFunc processes one quest trigger in the context the item is used in.
type TriggerFunc func(ctx context.Context, p domain.QuestPlayer, t domain.Effect, uc domain.UseContext)

// Registry maps an effect kind to its handler. Kinds are validated when they
// are registered, so an item that references an unregistered kind can be
// reported when it is built instead of being skipped silently at use time.
type Registry[H any] struct {
	name string

	mu       sync.RWMutex
	handlers map[string]H
}

// NewRegistry creates an empty registry.
func NewRegistry[H any](name string) *Registry[H] {
	return &Registry[H]{name: name, handlers: make(map[string]H)}
}

func (r *Registry[H]) Name() string { return r.name }

// Register adds a handler. The kind must be non-empty and not yet registered.
func (r *Registry[H]) Register(kind string, h H) error {
	if kind == "" {
		return fmt.Errorf("%w: %s", ErrEmptyKind, r.name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[kind]; exists {
		return fmt.Errorf(ErrFmtDuplicateKind, ErrDuplicateKind, kind, r.name)
	}
	r.handlers[kind] = h
	return nil
}

// MustRegister is Register for static wiring; it panics on a bad kind.
func (r *Registry[H]) MustRegister(kind string, h H) *Registry[H] {
	if err := r.Register(kind, h); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the handler for kind.
func (r *Registry[H]) Lookup(kind string) (H, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[kind]
	return h, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry[H]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Unregistered returns the kinds in effects that have no handler, in order of appearance.
func (r *Registry[H]) Unregistered(effects []domain.Effect) []string {
	var missing []string
	for _, e := range effects {
		if _, ok := r.Lookup(e.Type); !ok && !slices.Contains(missing, e.Type) {
			missing = append(missing, e.Type)
		}
	}
	return missing
}

// reportUnknownKind records an effect that was skipped at use time.
func reportUnknownKind(ctx context.Context, registry, kind, itemID string) {
	logger.FromContext(ctx).Warn(LogMsgUnknownEffect,
		"registry", registry,
		"type", kind,
		"item_id", itemID)
	metrics.UnknownEffects.WithLabelValues(registry).Inc()
}

// DefaultPotionEffects returns a registry with the heal, mana, buff and cure effects.
func DefaultPotionEffects() *Registry[PotionEffectFunc] {
	return NewRegistry[PotionEffectFunc](RegistryPotionEffects).
		MustRegister(domain.EffectHeal, healEffect).
		MustRegister(domain.EffectMana, manaEffect).
		MustRegister(domain.EffectBuff, buffEffect).
		MustRegister(domain.EffectCure, cureEffect)
}

// DefaultQuestEffects returns a registry with the built-in quest effects.
func DefaultQuestEffects() *Registry[QuestEffectFunc] {
	return NewRegistry[QuestEffectFunc](RegistryQuestEffects).
		MustRegister(domain.EffectUnlockArea, unlockAreaEffect).
		MustRegister(domain.EffectLearnSpell, learnSpellEffect).
		MustRegister(domain.EffectGainTitle, gainTitleEffect).
		MustRegister(domain.EffectReputation, reputationEffect).
		MustRegister(domain.EffectTransform, transformEffect)
}

// DefaultQuestTriggers returns a registry with the built-in quest triggers.
func DefaultQuestTriggers() *Registry[TriggerFunc] {
	return NewRegistry[TriggerFunc](RegistryQuestTriggers).
		MustRegister(domain.TriggerDialogue, dialogueTrigger).
		MustRegister(domain.TriggerCutscene, cutsceneTrigger).
		MustRegister(domain.TriggerTeleport, teleportTrigger).
		MustRegister(domain.TriggerSpawnEnemy, spawnEnemyTrigger)
}

// Shared by constructors called outside a Factory. Read-only after init.
var (
	defaultPotionEffects = DefaultPotionEffects()
	defaultQuestEffects  = DefaultQuestEffects()
	defaultQuestTriggers = DefaultQuestTriggers()
)

func healEffect(_ context.Context, p domain.Player, e domain.Effect) {
	cur, maxHP := p.HealthPoints()
	p.SetHealthPoints(min(maxHP, cur+e.Value))
}

func manaEffect(_ context.Context, p domain.Player, e domain.Effect) {
	cur, maxMP := p.ManaPoints()
	p.SetManaPoints(min(maxMP, cur+e.Value))
}

func buffEffect(_ context.Context, p domain.Player, e domain.Effect) {
	p.AddBuff(e.Param("buffType"), e.Value, e.Param("duration"))
}

func cureEffect(_ context.Context, p domain.Player, e domain.Effect) {
	p.RemoveDebuff(e.Param("debuffType"))
}

func unlockAreaEffect(_ context.Context, _ *Quest, p domain.QuestPlayer, e domain.Effect) *domain.Transform {
	p.UnlockArea(e.Param("areaId"))
	return nil
}

func learnSpellEffect(_ context.Context, _ *Quest, p domain.QuestPlayer, e domain.Effect) *domain.Transform {
	p.LearnSpell(e.Param("spellId"))
	return nil
}

func gainTitleEffect(_ context.Context, _ *Quest, p domain.QuestPlayer, e domain.Effect) *domain.Transform {
	p.AddTitle(e.Param("titleId"))
	return nil
}

func reputationEffect(_ context.Context, _ *Quest, p domain.QuestPlayer, e domain.Effect) *domain.Transform {
	p.AddReputation(e.Param("faction"), e.NumberParam("amount"))
	return nil
}

func transformEffect(_ context.Context, q *Quest, _ domain.QuestPlayer, e domain.Effect) *domain.Transform {
	t := q.Transform(e.Param("newItemId"))
	return &t
}

// dialogueTrigger only starts the dialogue when used with the trigger's NPC.
func dialogueTrigger(_ context.Context, p domain.QuestPlayer, t domain.Effect, uc domain.UseContext) {
	if uc.NPC == t.Param("npcId") {
		p.StartDialogue(t.Param("dialogueId"))
	}
}

func cutsceneTrigger(_ context.Context, p domain.QuestPlayer, t domain.Effect, _ domain.UseContext) {
	p.PlayCutscene(t.Param("cutsceneId"))
}

func teleportTrigger(_ context.Context, p domain.QuestPlayer, t domain.Effect, _ domain.UseContext) {
	p.TeleportTo(t.Param("location"))
}

func spawnEnemyTrigger(_ context.Context, p domain.QuestPlayer, t domain.Effect, _ domain.UseContext) {
	p.SpawnEnemy(t.Param("enemyId"), t.Param("location"))
}
