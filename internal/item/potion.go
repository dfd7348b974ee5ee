package item

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/itemforge/internal/domain"
)

var durationPattern = regexp.MustCompile(`(\d+)\s*(second|minute|hour)s?`)

// Potion is a stackable consumable that restores resources and applies effects.
type Potion struct {
	Base

	Effect      string
	HealAmount  float64
	ManaAmount  float64
	Duration    string
	Potency     float64
	ConsumeTime float64
	Cooldown    float64
	Ingredients []string
	LiquidColor string

	currentStack int
	lastUsed     time.Time

	now     func() time.Time
	effects *Registry[PotionEffectFunc]
}

// NewPotion builds a potion from a raw record. A persisted currentStack is
// restored; lastUsed always starts unset.
func NewPotion(rec domain.Record) (*Potion, error) {
	a := newAttrs(rec)
	p := &Potion{
		Base: a.base(baseDefaults{
			category:    domain.CategoryPotions,
			typ:         DefaultPotionType,
			weight:      DefaultPotionWeight,
			sellPrice:   DefaultPotionSellPrice,
			buyFactor:   BuyPriceFactor,
			stackSize:   DefaultPotionStackSize,
			rarity:      domain.RarityCommon,
			description: DefaultPotionDescription,
			color:       DefaultColor,
			iconFrame:   DefaultIconFrame,
		}),
		Effect:      a.str("effect", DefaultPotionEffect),
		HealAmount:  a.num("healAmount", 0),
		ManaAmount:  a.num("manaAmount", 0),
		Duration:    a.str("duration", DefaultPotionDuration),
		Potency:     a.num("potency", DefaultPotionPotency),
		ConsumeTime: a.num("consumeTime", DefaultPotionConsumeTime),
		Cooldown:    a.num("cooldown", 0),
		Ingredients: a.strList("ingredients"),
		now:         time.Now,
		effects:     defaultPotionEffects,
	}
	p.LiquidColor = a.str("liquidColor", p.Color)
	p.currentStack = clampStack(int(a.stateNum("currentStack", DefaultStack)), p.StackSize)
	if a.err != nil {
		return nil, a.err
	}
	return p, nil
}

func (p *Potion) Kind() Kind { return KindPotion }

// SetClock replaces the wall clock used for cooldowns.
func (p *Potion) SetClock(now func() time.Time) {
	if now != nil {
		p.now = now
	}
}

// SetEffects replaces the effect registry used by Use.
func (p *Potion) SetEffects(r *Registry[PotionEffectFunc]) {
	if r != nil {
		p.effects = r
	}
}

func (p *Potion) CurrentStack() int { return p.currentStack }

// SetCurrentStack sets the stack count, clamped to [0, StackSize].
func (p *Potion) SetCurrentStack(n int) {
	p.currentStack = clampStack(n, p.StackSize)
}

// LastUsed returns when the potion was last used; the zero time means never.
func (p *Potion) LastUsed() time.Time { return p.lastUsed }

func (p *Potion) IsEmpty() bool { return p.currentStack <= 0 }

// CanUse checks, in order, the level requirement, the cooldown, and whether
// the restored resources are already full.
func (p *Potion) CanUse(player domain.Player) domain.UseCheck {
	if player.PlayerLevel() < p.Level {
		return domain.Refused(fmt.Sprintf(ReasonRequiresLevel, p.Level))
	}

	if !p.lastUsed.IsZero() && p.Cooldown > 0 {
		cooldown := time.Duration(p.Cooldown * float64(time.Second))
		if elapsed := p.now().Sub(p.lastUsed); elapsed < cooldown {
			remaining := int(math.Ceil((cooldown - elapsed).Seconds()))
			return domain.Refused(fmt.Sprintf(ReasonCooldown, remaining))
		}
	}

	if hp, maxHP := player.HealthPoints(); p.HealAmount > 0 && hp >= maxHP {
		return domain.Refused(ReasonHealthFull)
	}
	if mp, maxMP := player.ManaPoints(); p.ManaAmount > 0 && mp >= maxMP {
		return domain.Refused(ReasonManaFull)
	}

	return domain.Allowed()
}

// Use drinks one potion. A refusal leaves both player and potion untouched.
func (p *Potion) Use(ctx context.Context, player domain.Player) domain.UseResult {
	check := p.CanUse(player)
	if !check.CanUse {
		return domain.UseResult{Success: false, Message: check.Reason}
	}

	var results []string

	if p.HealAmount > 0 {
		hp, maxHP := player.HealthPoints()
		actual := min(p.HealAmount*p.Potency, maxHP-hp)
		player.SetHealthPoints(hp + actual)
		results = append(results, fmt.Sprintf(MsgRestoredHealth, domain.FormatNumber(actual)))
	}

	if p.ManaAmount > 0 {
		mp, maxMP := player.ManaPoints()
		actual := min(p.ManaAmount*p.Potency, maxMP-mp)
		player.SetManaPoints(mp + actual)
		results = append(results, fmt.Sprintf(MsgRestoredMana, domain.FormatNumber(actual)))
	}

	for _, e := range p.Effects {
		if apply, ok := p.effects.Lookup(e.Type); ok {
			apply(ctx, player, e)
		} else {
			reportUnknownKind(ctx, p.effects.Name(), e.Type, p.ID)
		}
		if e.Description != "" {
			results = append(results, e.Description)
		}
	}

	p.lastUsed = p.now()
	p.currentStack = max(0, p.currentStack-1)

	return domain.UseResult{
		Success: true,
		Message: strings.Join(results, UseMessageSeparator),
		Effects: append([]domain.Effect{}, p.Effects...),
	}
}

// CraftingCost is the ingredient count times the base cost, scaled by rarity.
func (p *Potion) CraftingCost() float64 {
	base := float64(len(p.Ingredients)) * CraftingCostPerIngredient
	return roundHalfUp(base * multiplier(CraftingRarityMultipliers, p.Rarity))
}

// CanCraft reports whether inventory holds at least one of every ingredient.
func (p *Potion) CanCraft(inventory map[string]int) bool {
	for _, ingredient := range p.Ingredients {
		if inventory[ingredient] < 1 {
			return false
		}
	}
	return true
}

// EffectDuration parses Duration ("30 seconds", "5 minutes") into seconds.
// Instant and unparseable durations are 0.
func (p *Potion) EffectDuration() int {
	if p.Duration == DefaultPotionDuration {
		return 0
	}
	m := durationPattern.FindStringSubmatch(p.Duration)
	if m == nil {
		return 0
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	switch m[2] {
	case "second":
		return value
	case "minute":
		return value * 60
	case "hour":
		return value * 3600
	}
	return 0
}

func (p *Potion) TooltipText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", p.Name)
	fmt.Fprintf(&sb, "Effect: %s\n", p.Effect)
	fmt.Fprintf(&sb, "Duration: %s\n", p.Duration)
	if p.HealAmount > 0 {
		fmt.Fprintf(&sb, "Healing: %s HP\n", domain.FormatNumber(p.HealAmount))
	}
	if p.ManaAmount > 0 {
		fmt.Fprintf(&sb, "Mana: %s MP\n", domain.FormatNumber(p.ManaAmount))
	}
	fmt.Fprintf(&sb, "Level: %d\n", p.Level)
	fmt.Fprintf(&sb, "Rarity: %s\n", p.Rarity)
	fmt.Fprintf(&sb, "Stack: %d/%d\n", p.currentStack, p.StackSize)
	if p.Cooldown > 0 {
		fmt.Fprintf(&sb, "Cooldown: %ss\n", domain.FormatNumber(p.Cooldown))
	}
	fmt.Fprintf(&sb, "\n%s", p.Description)
	writeBullets(&sb, TooltipIngredients, p.Ingredients)
	return sb.String()
}

type potionExport struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name,omitempty"`
	Filename     string          `json:"filename,omitempty"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	Effect       string          `json:"effect"`
	HealAmount   float64         `json:"healAmount"`
	ManaAmount   float64         `json:"manaAmount"`
	Duration     string          `json:"duration"`
	Potency      float64         `json:"potency"`
	Weight       float64         `json:"weight"`
	SellPrice    float64         `json:"sellPrice"`
	BuyPrice     float64         `json:"buyPrice"`
	Level        int             `json:"level"`
	Rarity       string          `json:"rarity"`
	StackSize    int             `json:"stackSize"`
	Description  string          `json:"description"`
	ConsumeTime  float64         `json:"consumeTime"`
	Cooldown     float64         `json:"cooldown"`
	Effects      []domain.Effect `json:"effects"`
	Ingredients  []string        `json:"ingredients"`
	Color        string          `json:"color"`
	IconFrame    string          `json:"iconFrame"`
	LiquidColor  string          `json:"liquidColor"`
	CurrentStack int             `json:"currentStack"`
}

func (p *Potion) ToJSON() any {
	return potionExport{
		ID:           p.ID,
		Name:         p.Name,
		Filename:     p.Filename,
		Category:     p.Category,
		Type:         p.Type,
		Effect:       p.Effect,
		HealAmount:   p.HealAmount,
		ManaAmount:   p.ManaAmount,
		Duration:     p.Duration,
		Potency:      p.Potency,
		Weight:       p.Weight,
		SellPrice:    p.SellPrice,
		BuyPrice:     p.BuyPrice,
		Level:        p.Level,
		Rarity:       p.Rarity,
		StackSize:    p.StackSize,
		Description:  p.Description,
		ConsumeTime:  p.ConsumeTime,
		Cooldown:     p.Cooldown,
		Effects:      exportEffects(p.Effects),
		Ingredients:  exportStrings(p.Ingredients),
		Color:        p.Color,
		IconFrame:    p.IconFrame,
		LiquidColor:  p.LiquidColor,
		CurrentStack: p.currentStack,
	}
}
