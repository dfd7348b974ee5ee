package item

import (
	"context"
	"slices"
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
)

// Factory builds items from raw records. A single bad record never fails a
// caller: CreateItem logs it and returns nil.
type Factory struct {
	potionEffects *Registry[PotionEffectFunc]
	questEffects  *Registry[QuestEffectFunc]
	questTriggers *Registry[TriggerFunc]
	now           func() time.Time
}

// Option configures a Factory.
type Option func(*Factory)

// WithPotionEffects sets the registry potions dispatch their effects through.
func WithPotionEffects(r *Registry[PotionEffectFunc]) Option {
	return func(f *Factory) {
		if r != nil {
			f.potionEffects = r
		}
	}
}

// WithQuestEffects sets the registry quest items dispatch their effects through.
func WithQuestEffects(r *Registry[QuestEffectFunc]) Option {
	return func(f *Factory) {
		if r != nil {
			f.questEffects = r
		}
	}
}

// WithQuestTriggers sets the registry quest items dispatch their triggers through.
func WithQuestTriggers(r *Registry[TriggerFunc]) Option {
	return func(f *Factory) {
		if r != nil {
			f.questTriggers = r
		}
	}
}

// WithClock sets the clock potions use for cooldowns.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFactory creates a Factory with the default registries and the wall clock.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		potionEffects: defaultPotionEffects,
		questEffects:  defaultQuestEffects,
		questTriggers: defaultQuestTriggers,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateItem builds the variant selected by rec's category, matched
// case-insensitively. It returns nil when rec has no usable category or when
// the record is malformed. Unrecognized categories yield an *Unknown.
func (f *Factory) CreateItem(ctx context.Context, rec domain.Record) (it Item) {
	log := logger.FromContext(ctx)

	raw, _ := rec[domain.KeyCategory].(string)
	if raw == "" {
		log.Error(LogMsgInvalidItemData, "category", rec[domain.KeyCategory], "filename", rec[domain.KeyFilename])
		metrics.ItemCreateFailures.WithLabelValues(metrics.ReasonMissingCategory).Inc()
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgCreateItemPanicked, "category", raw, "id", rec[domain.KeyID], "panic", r)
			metrics.ItemCreateFailures.WithLabelValues(metrics.ReasonPanic).Inc()
			it = nil
		}
	}()

	category, known := domain.ParseCategory(raw)
	if !known {
		log.Warn(LogMsgUnknownCategory, "category", raw, "filename", rec[domain.KeyFilename])
		metrics.ItemsCreated.WithLabelValues(KindUnknown.String()).Inc()
		return NewUnknown(rec)
	}

	normalized := rec.Clone()
	normalized[domain.KeyCategory] = category.String()

	built, err := f.build(category, normalized)
	if err != nil {
		log.Error(LogMsgCreateItemFailed, "category", category, "id", rec[domain.KeyID], "error", err)
		metrics.ItemCreateFailures.WithLabelValues(metrics.ReasonConstructor).Inc()
		return nil
	}

	f.warnUnregistered(ctx, built)
	metrics.ItemsCreated.WithLabelValues(category.String()).Inc()
	return built
}

func (f *Factory) build(category domain.Category, rec domain.Record) (Item, error) {
	switch category {
	case domain.CategoryWeapons:
		w, err := NewWeapon(rec)
		if err != nil {
			return nil, err
		}
		return w, nil
	case domain.CategoryArmor:
		a, err := NewArmor(rec)
		if err != nil {
			return nil, err
		}
		return a, nil
	case domain.CategoryPotions:
		p, err := NewPotion(rec)
		if err != nil {
			return nil, err
		}
		p.SetClock(f.now)
		p.SetEffects(f.potionEffects)
		return p, nil
	case domain.CategoryMaterials:
		m, err := NewMaterial(rec)
		if err != nil {
			return nil, err
		}
		return m, nil
	case domain.CategoryQuest:
		q, err := NewQuest(rec)
		if err != nil {
			return nil, err
		}
		q.SetRegistries(f.questEffects, f.questTriggers)
		return q, nil
	default:
		return NewUnknown(rec), nil
	}
}

// warnUnregistered reports effect kinds that Use would skip.
func (f *Factory) warnUnregistered(ctx context.Context, it Item) {
	report := func(registry string, kinds []string) {
		if len(kinds) == 0 {
			return
		}
		logger.FromContext(ctx).Warn(LogMsgUnregisteredKind,
			"registry", registry,
			"types", kinds,
			"item_id", it.Core().ID)
	}

	switch v := it.(type) {
	case *Potion:
		report(f.potionEffects.Name(), f.potionEffects.Unregistered(v.Effects))
	case *Quest:
		report(f.questEffects.Name(), f.questEffects.Unregistered(v.Effects))
		report(f.questTriggers.Name(), f.questTriggers.Unregistered(v.Triggers))
	}
}

// AllItemCategories returns the known categories in their fixed order.
func AllItemCategories() []domain.Category {
	return slices.Clone(domain.Categories)
}
