package item

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/osse101/itemforge/internal/domain"
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Weapon is an equippable item that deals damage.
type Weapon struct {
	Base
	durability

	Material           string
	Damage             float64
	CriticalChance     float64
	CriticalMultiplier float64
	Range              float64
	AttackSpeed        float64
	Enchantments       []any
	Ammunition         string
	GlowEffect         bool
}

// NewWeapon builds a weapon from a raw record. Missing attributes take their
// defaults; only values of the wrong type are an error.
func NewWeapon(rec domain.Record) (*Weapon, error) {
	a := newAttrs(rec)
	w := &Weapon{
		Base: a.base(baseDefaults{
			category:    domain.CategoryWeapons,
			weight:      DefaultWeaponWeight,
			sellPrice:   DefaultWeaponSellPrice,
			buyFactor:   BuyPriceFactor,
			stackSize:   1,
			rarity:      domain.RarityCommon,
			description: DefaultWeaponDescription,
			color:       DefaultColor,
			iconFrame:   DefaultIconFrame,
		}),
		Material:           a.text("material"),
		Damage:             a.num("damage", DefaultWeaponDamage),
		CriticalChance:     a.num("criticalChance", DefaultWeaponCriticalChance),
		CriticalMultiplier: a.num("criticalMultiplier", DefaultWeaponCriticalMultiplier),
		Range:              a.num("range", DefaultWeaponRange),
		AttackSpeed:        a.num("attackSpeed", DefaultWeaponAttackSpeed),
		Enchantments:       a.list("enchantments"),
		Ammunition:         a.text("ammunition"),
		GlowEffect:         a.flag("glowEffect", false),
	}
	w.durability = newDurability(
		a.stateNum("durability", DefaultDurability),
		a.num("maxDurability", DefaultDurability),
	)
	if a.err != nil {
		return nil, a.err
	}
	return w, nil
}

func (w *Weapon) Kind() Kind { return KindWeapon }

// CalculateDamage applies the material multiplier to base, or to the
// weapon's own damage when base is zero, rounding half up.
func (w *Weapon) CalculateDamage(base float64) float64 {
	if base == 0 {
		base = w.Damage
	}
	return roundHalfUp(base * multiplier(WeaponMaterialMultipliers, w.Material))
}

func (w *Weapon) CalculateCriticalDamage() float64 {
	return roundHalfUp(w.Damage * w.CriticalMultiplier)
}

// IsCriticalHit draws from rng, or from the global source when rng is nil.
func (w *Weapon) IsCriticalHit(rng RandomSource) bool {
	var draw float64
	if rng == nil {
		draw = rand.Float64()
	} else {
		draw = rng.Float64()
	}
	return draw < w.CriticalChance
}

func (w *Weapon) TooltipText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", w.Name)
	fmt.Fprintf(&sb, "Type: %s\n", w.Type)
	fmt.Fprintf(&sb, "Damage: %s\n", domain.FormatNumber(w.Damage))
	fmt.Fprintf(&sb, "Critical: %s%%\n", strconv.FormatFloat(w.CriticalChance*100, 'f', 1, 64))
	fmt.Fprintf(&sb, "Weight: %skg\n", domain.FormatNumber(w.Weight))
	fmt.Fprintf(&sb, "Level: %d\n", w.Level)
	fmt.Fprintf(&sb, "Rarity: %s\n", w.Rarity)
	fmt.Fprintf(&sb, "\n%s", w.Description)
	writeEffectLines(&sb, w.Effects)
	return sb.String()
}

type weaponExport struct {
	ID                 string          `json:"id,omitempty"`
	Name               string          `json:"name,omitempty"`
	Filename           string          `json:"filename,omitempty"`
	Category           string          `json:"category"`
	Type               string          `json:"type,omitempty"`
	Material           string          `json:"material,omitempty"`
	Damage             float64         `json:"damage"`
	CriticalChance     float64         `json:"criticalChance"`
	CriticalMultiplier float64         `json:"criticalMultiplier"`
	Range              float64         `json:"range"`
	AttackSpeed        float64         `json:"attackSpeed"`
	Weight             float64         `json:"weight"`
	Durability         float64         `json:"durability"`
	MaxDurability      float64         `json:"maxDurability"`
	SellPrice          float64         `json:"sellPrice"`
	BuyPrice           float64         `json:"buyPrice"`
	Level              int             `json:"level"`
	Rarity             string          `json:"rarity"`
	StackSize          int             `json:"stackSize"`
	Description        string          `json:"description"`
	Effects            []domain.Effect `json:"effects"`
	Enchantments       []any           `json:"enchantments"`
	Ammunition         string          `json:"ammunition,omitempty"`
	Color              string          `json:"color"`
	IconFrame          string          `json:"iconFrame"`
	GlowEffect         bool            `json:"glowEffect"`
}

func (w *Weapon) ToJSON() any {
	return weaponExport{
		ID:                 w.ID,
		Name:               w.Name,
		Filename:           w.Filename,
		Category:           w.Category,
		Type:               w.Type,
		Material:           w.Material,
		Damage:             w.Damage,
		CriticalChance:     w.CriticalChance,
		CriticalMultiplier: w.CriticalMultiplier,
		Range:              w.Range,
		AttackSpeed:        w.AttackSpeed,
		Weight:             w.Weight,
		Durability:         w.current,
		MaxDurability:      w.max,
		SellPrice:          w.SellPrice,
		BuyPrice:           w.BuyPrice,
		Level:              w.Level,
		Rarity:             w.Rarity,
		StackSize:          w.StackSize,
		Description:        w.Description,
		Effects:            exportEffects(w.Effects),
		Enchantments:       exportList(w.Enchantments),
		Ammunition:         w.Ammunition,
		Color:              w.Color,
		IconFrame:          w.IconFrame,
		GlowEffect:         w.GlowEffect,
	}
}

func writeEffectLines(sb *strings.Builder, effects []domain.Effect) {
	if len(effects) == 0 {
		return
	}
	sb.WriteString(TooltipEffectsHeader)
	for _, e := range effects {
		sb.WriteString(TooltipBullet)
		sb.WriteString(e.Description)
	}
}

func writeBullets(sb *strings.Builder, header string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString(header)
	for _, l := range lines {
		sb.WriteString(TooltipBullet)
		sb.WriteString(l)
	}
}

func exportList(v []any) []any {
	if v == nil {
		return []any{}
	}
	return v
}

func exportStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
