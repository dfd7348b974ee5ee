package item

import (
	"fmt"
	"strings"

	"github.com/osse101/itemforge/internal/domain"
)

// Armor is an equippable item that mitigates damage.
type Armor struct {
	Base
	durability

	Material            string
	Defense             float64
	MagicResistance     float64
	FireResistance      float64
	IceResistance       float64
	LightningResistance float64
	PoisonResistance    float64
	Enchantments        []any
	Slot                string
	ArmorClass          string
}

// NewArmor builds armor from a raw record. The slot defaults to the armor type.
func NewArmor(rec domain.Record) (*Armor, error) {
	a := newAttrs(rec)
	ar := &Armor{
		Base: a.base(baseDefaults{
			category:    domain.CategoryArmor,
			weight:      DefaultArmorWeight,
			sellPrice:   DefaultArmorSellPrice,
			buyFactor:   BuyPriceFactor,
			stackSize:   1,
			rarity:      domain.RarityCommon,
			description: DefaultArmorDescription,
			color:       DefaultColor,
			iconFrame:   DefaultIconFrame,
		}),
		Material:            a.text("material"),
		Defense:             a.num("defense", DefaultArmorDefense),
		MagicResistance:     a.num("magicResistance", 0),
		FireResistance:      a.num("fireResistance", 0),
		IceResistance:       a.num("iceResistance", 0),
		LightningResistance: a.num("lightningResistance", 0),
		PoisonResistance:    a.num("poisonResistance", 0),
		Enchantments:        a.list("enchantments"),
		ArmorClass:          a.str("armorClass", domain.ArmorClassMedium),
	}
	ar.Slot = a.str("slot", ar.Type)
	ar.durability = newDurability(
		a.stateNum("durability", DefaultDurability),
		a.num("maxDurability", DefaultDurability),
	)
	if a.err != nil {
		return nil, a.err
	}
	return ar, nil
}

func (ar *Armor) Kind() Kind { return KindArmor }

// CalculateDefense returns the damage that gets through this armor. Mitigation
// is capped at MaxDamageReduction of the hit and at least MinDamageTaken lands.
func (ar *Armor) CalculateDefense(baseDamage float64) float64 {
	total := ar.Defense * multiplier(ArmorMaterialMultipliers, ar.Material)
	reduction := min(baseDamage*MaxDamageReduction, total)
	return max(MinDamageTaken, baseDamage-reduction)
}

// Resistance returns the percentage resistance to a damage kind. Unknown kinds resist nothing.
func (ar *Armor) Resistance(damageKind string) float64 {
	switch strings.ToLower(damageKind) {
	case domain.DamageMagic:
		return ar.MagicResistance
	case domain.DamageFire:
		return ar.FireResistance
	case domain.DamageIce:
		return ar.IceResistance
	case domain.DamageLightning:
		return ar.LightningResistance
	case domain.DamagePoison:
		return ar.PoisonResistance
	default:
		return 0
	}
}

func (ar *Armor) CalculateElementalDefense(damage float64, damageKind string) float64 {
	reduction := ar.Resistance(damageKind) / 100 * damage
	return max(MinDamageTaken, damage-reduction)
}

// ArmorClassBonus returns a copy of the static bonus for the armor class.
func (ar *Armor) ArmorClassBonus() map[string]float64 {
	out := make(map[string]float64)
	for k, v := range ArmorClassBonuses[ar.ArmorClass] {
		out[k] = v
	}
	return out
}

func (ar *Armor) TooltipText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", ar.Name)
	fmt.Fprintf(&sb, "Type: %s\n", ar.Type)
	fmt.Fprintf(&sb, "Defense: %s\n", domain.FormatNumber(ar.Defense))
	fmt.Fprintf(&sb, "Slot: %s\n", ar.Slot)
	fmt.Fprintf(&sb, "Class: %s\n", ar.ArmorClass)

	var resistances []string
	for _, r := range []struct {
		label string
		value float64
	}{
		{"Magic", ar.MagicResistance},
		{"Fire", ar.FireResistance},
		{"Ice", ar.IceResistance},
		{"Lightning", ar.LightningResistance},
		{"Poison", ar.PoisonResistance},
	} {
		if r.value > 0 {
			resistances = append(resistances, fmt.Sprintf("%s: %s%%", r.label, domain.FormatNumber(r.value)))
		}
	}
	if len(resistances) > 0 {
		fmt.Fprintf(&sb, "\nResistances: %s", strings.Join(resistances, ", "))
	}

	fmt.Fprintf(&sb, "\nWeight: %skg\n", domain.FormatNumber(ar.Weight))
	fmt.Fprintf(&sb, "Level: %d\n", ar.Level)
	fmt.Fprintf(&sb, "Rarity: %s\n", ar.Rarity)
	fmt.Fprintf(&sb, "\n%s", ar.Description)
	writeEffectLines(&sb, ar.Effects)
	return sb.String()
}

type armorExport struct {
	ID                  string          `json:"id,omitempty"`
	Name                string          `json:"name,omitempty"`
	Filename            string          `json:"filename,omitempty"`
	Category            string          `json:"category"`
	Type                string          `json:"type,omitempty"`
	Material            string          `json:"material,omitempty"`
	Defense             float64         `json:"defense"`
	MagicResistance     float64         `json:"magicResistance"`
	FireResistance      float64         `json:"fireResistance"`
	IceResistance       float64         `json:"iceResistance"`
	LightningResistance float64         `json:"lightningResistance"`
	PoisonResistance    float64         `json:"poisonResistance"`
	Weight              float64         `json:"weight"`
	Durability          float64         `json:"durability"`
	MaxDurability       float64         `json:"maxDurability"`
	SellPrice           float64         `json:"sellPrice"`
	BuyPrice            float64         `json:"buyPrice"`
	Level               int             `json:"level"`
	Rarity              string          `json:"rarity"`
	StackSize           int             `json:"stackSize"`
	Description         string          `json:"description"`
	Effects             []domain.Effect `json:"effects"`
	Enchantments        []any           `json:"enchantments"`
	Slot                string          `json:"slot,omitempty"`
	ArmorClass          string          `json:"armorClass"`
	Color               string          `json:"color"`
	IconFrame           string          `json:"iconFrame"`
}

func (ar *Armor) ToJSON() any {
	return armorExport{
		ID:                  ar.ID,
		Name:                ar.Name,
		Filename:            ar.Filename,
		Category:            ar.Category,
		Type:                ar.Type,
		Material:            ar.Material,
		Defense:             ar.Defense,
		MagicResistance:     ar.MagicResistance,
		FireResistance:      ar.FireResistance,
		IceResistance:       ar.IceResistance,
		LightningResistance: ar.LightningResistance,
		PoisonResistance:    ar.PoisonResistance,
		Weight:              ar.Weight,
		Durability:          ar.current,
		MaxDurability:       ar.max,
		SellPrice:           ar.SellPrice,
		BuyPrice:            ar.BuyPrice,
		Level:               ar.Level,
		Rarity:              ar.Rarity,
		StackSize:           ar.StackSize,
		Description:         ar.Description,
		Effects:             exportEffects(ar.Effects),
		Enchantments:        exportList(ar.Enchantments),
		Slot:                ar.Slot,
		ArmorClass:          ar.ArmorClass,
		Color:               ar.Color,
		IconFrame:           ar.IconFrame,
	}
}
