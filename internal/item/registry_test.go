package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
)

func noopPotionEffect(context.Context, domain.Player, domain.Effect) {}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry[PotionEffectFunc]("test")

	require.NoError(t, r.Register("glow", noopPotionEffect))

	err := r.Register("", noopPotionEffect)
	assert.ErrorIs(t, err, ErrEmptyKind)

	err = r.Register("glow", noopPotionEffect)
	assert.ErrorIs(t, err, ErrDuplicateKind)
	assert.Contains(t, err.Error(), `"glow"`)

	_, ok := r.Lookup("glow")
	assert.True(t, ok)
	_, ok = r.Lookup("dim")
	assert.False(t, ok)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry[PotionEffectFunc]("test").MustRegister("glow", noopPotionEffect)
	assert.Panics(t, func() { r.MustRegister("glow", noopPotionEffect) })
}

func TestRegistry_Kinds(t *testing.T) {
	assert.Equal(t, []string{"buff", "cure", "heal", "mana"}, DefaultPotionEffects().Kinds())
	assert.Equal(t, []string{"gain_title", "learn_spell", "reputation", "transform", "unlock_area"}, DefaultQuestEffects().Kinds())
	assert.Equal(t, []string{"cutscene", "dialogue", "spawn_enemy", "teleport"}, DefaultQuestTriggers().Kinds())
}

func TestRegistry_Unregistered(t *testing.T) {
	effects := []domain.Effect{
		{Type: "heal"},
		{Type: "fly"},
		{Type: "glow"},
		{Type: "fly"},
	}
	assert.Equal(t, []string{"fly", "glow"}, DefaultPotionEffects().Unregistered(effects))
	assert.Empty(t, DefaultPotionEffects().Unregistered(effects[:1]))
}

func TestPotionEffectHandlers(t *testing.T) {
	ctx := context.Background()
	r := DefaultPotionEffects()

	tests := []struct {
		name   string
		effect domain.Effect
		check  func(t *testing.T, c *domain.Character)
	}{
		{
			name:   "heal is capped",
			effect: domain.Effect{Type: "heal", Value: 500},
			check: func(t *testing.T, c *domain.Character) {
				assert.Equal(t, 100.0, c.Health)
			},
		},
		{
			name:   "mana is capped",
			effect: domain.Effect{Type: "mana", Value: 500},
			check: func(t *testing.T, c *domain.Character) {
				assert.Equal(t, 50.0, c.Mana)
			},
		},
		{
			name:   "buff",
			effect: domain.NewEffect("buff", 3, "", domain.Record{"buffType": "strength", "duration": "30 seconds"}),
			check: func(t *testing.T, c *domain.Character) {
				assert.Equal(t, []domain.Buff{{Type: "strength", Value: 3, Duration: "30 seconds"}}, c.Buffs)
			},
		},
		{
			name:   "cure",
			effect: domain.NewEffect("cure", 0, "", domain.Record{"debuffType": "poison"}),
			check: func(t *testing.T, c *domain.Character) {
				assert.Equal(t, []string{"slow"}, c.Debuffs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &domain.Character{Health: 10, MaxHealth: 100, Mana: 5, MaxMana: 50, Debuffs: []string{"poison", "slow"}}
			apply, ok := r.Lookup(tt.effect.Type)
			require.True(t, ok)
			apply(ctx, c, tt.effect)
			tt.check(t, c)
		})
	}
}
