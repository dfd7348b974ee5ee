// Package item implements the item data model: the five typed variants, the
// pass-through Unknown variant, the Factory that builds them from raw records,
// and the registries that dispatch effects and quest triggers.
package item

import (
	"math"

	"github.com/osse101/itemforge/internal/domain"
)

// Kind identifies which variant an Item is.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindWeapon
	KindArmor
	KindPotion
	KindMaterial
	KindQuest
)

func (k Kind) String() string {
	switch k {
	case KindWeapon:
		return "weapon"
	case KindArmor:
		return "armor"
	case KindPotion:
		return "potion"
	case KindMaterial:
		return "material"
	case KindQuest:
		return "quest"
	default:
		return "unknown"
	}
}

// Item is implemented by *Weapon, *Armor, *Potion, *Material, *Quest and *Unknown.
// The set is closed; switch on Kind or use a type switch to reach variant behavior.
type Item interface {
	// Core exposes the common attributes.
	Core() *Base
	Kind() Kind
	ImagePath() string
	TooltipText() string
	// ToJSON returns the canonical export. Its encoding has a fixed key order.
	ToJSON() any

	sealed()
}

// Base holds the attributes every item carries.
type Base struct {
	ID          string
	Name        string
	Filename    string
	Category    string
	Type        string
	Weight      float64
	SellPrice   float64
	BuyPrice    float64
	Level       int
	Rarity      string
	StackSize   int
	Description string
	Effects     []domain.Effect
	Color       string
	IconFrame   string

	imagePath string
}

// Core returns the base attributes.
func (b *Base) Core() *Base { return b }

// ImagePath is derived from category and filename at construction.
func (b *Base) ImagePath() string { return b.imagePath }

// CanEquip reports whether a player of the given level meets the requirement.
func (b *Base) CanEquip(playerLevel int) bool {
	return playerLevel >= b.Level
}

func (b *Base) sealed() {}

// Record converts an item's canonical export into a raw record that any
// constructor accepts again.
func Record(it Item) (domain.Record, error) {
	return domain.ToRecord(it.ToJSON())
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func multiplier(table map[string]float64, key string) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1.0
}

func exportEffects(effects []domain.Effect) []domain.Effect {
	if effects == nil {
		return []domain.Effect{}
	}
	return effects
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
