package item

// Stats is the summary projection used by list views. The common fields are
// always set; the rest depend on the variant.
type Stats struct {
	Category  string  `json:"category"`
	Type      string  `json:"type,omitempty"`
	Rarity    string  `json:"rarity"`
	Level     int     `json:"level"`
	Weight    float64 `json:"weight"`
	SellPrice float64 `json:"sellPrice"`

	// Weapons
	Damage         float64 `json:"damage,omitempty"`
	CriticalChance float64 `json:"criticalChance,omitempty"`
	Material       string  `json:"material,omitempty"`

	// Armor
	Defense    float64 `json:"defense,omitempty"`
	ArmorClass string  `json:"armorClass,omitempty"`
	Slot       string  `json:"slot,omitempty"`

	// Potions
	Effect    string `json:"effect,omitempty"`
	Duration  string `json:"duration,omitempty"`
	StackSize int    `json:"stackSize,omitempty"`

	// Materials
	MaterialType  string  `json:"materialType,omitempty"`
	Grade         string  `json:"grade,omitempty"`
	CraftingValue float64 `json:"craftingValue,omitempty"`

	// Quest items
	QuestName string `json:"questName,omitempty"`
	IsKeyItem bool   `json:"isKeyItem,omitempty"`
}

// ItemStats extracts the summary projection of it.
func ItemStats(it Item) Stats {
	b := it.Core()
	s := Stats{
		Category:  b.Category,
		Type:      b.Type,
		Rarity:    b.Rarity,
		Level:     b.Level,
		Weight:    b.Weight,
		SellPrice: b.SellPrice,
	}

	switch v := it.(type) {
	case *Weapon:
		s.Damage = v.Damage
		s.CriticalChance = v.CriticalChance
		s.Material = v.Material
	case *Armor:
		s.Defense = v.Defense
		s.ArmorClass = v.ArmorClass
		s.Slot = v.Slot
	case *Potion:
		s.Effect = v.Effect
		s.Duration = v.Duration
		s.StackSize = v.StackSize
	case *Material:
		s.MaterialType = v.MaterialType
		s.Grade = v.Grade
		s.CraftingValue = v.CraftingValue()
	case *Quest:
		s.QuestName = v.QuestName
		s.IsKeyItem = v.IsKeyItem
	case *Unknown:
	}
	return s
}
