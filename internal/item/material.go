package item

import (
	"fmt"
	"strings"

	"github.com/osse101/itemforge/internal/domain"
)

// Material is a stackable crafting component.
type Material struct {
	Base

	MaterialType     string
	Grade            string
	Purity           float64
	UsedIn           []string
	CraftValue       float64
	ProcessingTime   float64
	EnchantmentPower float64

	currentStack int
}

// ProcessingResult describes what a material turns into when processed.
type ProcessingResult struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name,omitempty"`
	Type    string  `json:"type,omitempty"`
	Grade   string  `json:"grade,omitempty"`
	Value   float64 `json:"value,omitempty"`
	Power   float64 `json:"power,omitempty"`
	Element string  `json:"element,omitempty"`
}

// NewMaterial builds a material from a raw record. A persisted currentStack is restored.
func NewMaterial(rec domain.Record) (*Material, error) {
	a := newAttrs(rec)
	m := &Material{
		Base: a.base(baseDefaults{
			category:    domain.CategoryMaterials,
			typ:         DefaultMaterialType,
			weight:      DefaultMaterialWeight,
			sellPrice:   DefaultMaterialSellPrice,
			buyFactor:   BuyPriceFactor,
			stackSize:   DefaultMaterialStackSize,
			rarity:      domain.RarityCommon,
			description: DefaultMaterialDescription,
			color:       DefaultColor,
			iconFrame:   DefaultIconFrame,
		}),
		MaterialType:     a.str("materialType", DefaultMaterialKind),
		Grade:            a.str("grade", domain.GradeBasic),
		Purity:           a.num("purity", DefaultMaterialPurity),
		UsedIn:           a.strList("usedIn"),
		CraftValue:       a.num("craftingValue", DefaultMaterialCraftingValue),
		ProcessingTime:   a.num("processingTime", DefaultMaterialProcessingTime),
		EnchantmentPower: a.num("enchantmentPower", 0),
	}
	m.currentStack = clampStack(int(a.stateNum("currentStack", DefaultStack)), m.StackSize)
	if a.err != nil {
		return nil, a.err
	}
	return m, nil
}

func (m *Material) Kind() Kind { return KindMaterial }

func (m *Material) CurrentStack() int { return m.currentStack }

// SetCurrentStack sets the stack count, clamped to [0, StackSize].
func (m *Material) SetCurrentStack(n int) {
	m.currentStack = clampStack(n, m.StackSize)
}

// CraftingValue scales the base crafting value by grade and purity.
func (m *Material) CraftingValue() float64 {
	return roundHalfUp(m.CraftValue * multiplier(GradeMultipliers, m.Grade) * (m.Purity / 100))
}

// ProcessingResult returns the product of a smelt, refine or enchant step,
// or nil when the material cannot be processed that way.
func (m *Material) ProcessingResult(process string) *ProcessingResult {
	switch process {
	case domain.ProcessSmelt:
		return m.smeltingResult()
	case domain.ProcessRefine:
		return m.refiningResult()
	case domain.ProcessEnchant:
		return m.enchantingResult()
	default:
		return nil
	}
}

func (m *Material) smeltingResult() *ProcessingResult {
	if m.MaterialType != MaterialKindOre {
		return nil
	}
	return &ProcessingResult{
		ID:    strings.Replace(m.ID, OreIDSuffix, IngotIDSuffix, 1),
		Name:  strings.Replace(m.Name, OreNameWord, IngotNameWord, 1),
		Type:  ProcessedTypeIngot,
		Value: m.CraftValue * SmeltValueFactor,
	}
}

func (m *Material) refiningResult() *ProcessingResult {
	next, ok := GradeUpgrades[m.Grade]
	if !ok {
		return nil
	}
	return &ProcessingResult{
		ID:    strings.Replace(m.ID, m.Grade, next, 1),
		Name:  strings.Replace(m.Name, m.Grade, next, 1),
		Grade: next,
		Value: m.CraftValue * RefineValueFactor,
	}
}

func (m *Material) enchantingResult() *ProcessingResult {
	if m.EnchantmentPower <= 0 {
		return nil
	}
	return &ProcessingResult{
		Type:    ProcessedTypeEssence,
		Power:   m.EnchantmentPower,
		Element: m.ElementalType(),
	}
}

// ElementalType infers an element from keywords in the material name.
func (m *Material) ElementalType() string {
	name := strings.ToLower(m.Name)
	for _, e := range elementKeywords {
		for _, kw := range e.keywords {
			if strings.Contains(name, kw) {
				return e.element
			}
		}
	}
	return ElementNeutral
}

// CanCombineWith reports whether two stacks hold the same material.
func (m *Material) CanCombineWith(other *Material) bool {
	return other != nil &&
		m.ID == other.ID &&
		m.Grade == other.Grade &&
		m.Purity == other.Purity
}

// CombineStacks merges other's count into this stack. merged is false when
// the materials differ. overflow is what did not fit; other is left unchanged.
func (m *Material) CombineStacks(other *Material) (overflow int, merged bool) {
	if !m.CanCombineWith(other) {
		return 0, false
	}
	total := m.currentStack + other.currentStack
	m.currentStack = clampStack(total, m.StackSize)
	if total > m.StackSize {
		return total - m.StackSize, true
	}
	return 0, true
}

func (m *Material) TooltipText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", m.Name)
	fmt.Fprintf(&sb, "Type: %s\n", m.MaterialType)
	fmt.Fprintf(&sb, "Grade: %s\n", m.Grade)
	fmt.Fprintf(&sb, "Purity: %s%%\n", domain.FormatNumber(m.Purity))
	fmt.Fprintf(&sb, "Crafting Value: %s\n", domain.FormatNumber(m.CraftingValue()))
	fmt.Fprintf(&sb, "Level: %d\n", m.Level)
	fmt.Fprintf(&sb, "Rarity: %s\n", m.Rarity)
	fmt.Fprintf(&sb, "Stack: %d/%d\n", m.currentStack, m.StackSize)
	fmt.Fprintf(&sb, "\n%s", m.Description)
	writeBullets(&sb, TooltipUsedIn, m.UsedIn)
	if m.EnchantmentPower > 0 {
		fmt.Fprintf(&sb, "\n\nEnchantment Power: %s", domain.FormatNumber(m.EnchantmentPower))
		fmt.Fprintf(&sb, "\nElement: %s", m.ElementalType())
	}
	return sb.String()
}

type materialExport struct {
	ID               string          `json:"id,omitempty"`
	Name             string          `json:"name,omitempty"`
	Filename         string          `json:"filename,omitempty"`
	Category         string          `json:"category"`
	Type             string          `json:"type"`
	MaterialType     string          `json:"materialType"`
	Grade            string          `json:"grade"`
	Purity           float64         `json:"purity"`
	Weight           float64         `json:"weight"`
	SellPrice        float64         `json:"sellPrice"`
	BuyPrice         float64         `json:"buyPrice"`
	Level            int             `json:"level"`
	Rarity           string          `json:"rarity"`
	StackSize        int             `json:"stackSize"`
	Description      string          `json:"description"`
	UsedIn           []string        `json:"usedIn"`
	CraftingValue    float64         `json:"craftingValue"`
	ProcessingTime   float64         `json:"processingTime"`
	Effects          []domain.Effect `json:"effects"`
	EnchantmentPower float64         `json:"enchantmentPower"`
	Color            string          `json:"color"`
	IconFrame        string          `json:"iconFrame"`
	CurrentStack     int             `json:"currentStack"`
}

func (m *Material) ToJSON() any {
	return materialExport{
		ID:               m.ID,
		Name:             m.Name,
		Filename:         m.Filename,
		Category:         m.Category,
		Type:             m.Type,
		MaterialType:     m.MaterialType,
		Grade:            m.Grade,
		Purity:           m.Purity,
		Weight:           m.Weight,
		SellPrice:        m.SellPrice,
		BuyPrice:         m.BuyPrice,
		Level:            m.Level,
		Rarity:           m.Rarity,
		StackSize:        m.StackSize,
		Description:      m.Description,
		UsedIn:           exportStrings(m.UsedIn),
		CraftingValue:    m.CraftValue,
		ProcessingTime:   m.ProcessingTime,
		Effects:          exportEffects(m.Effects),
		EnchantmentPower: m.EnchantmentPower,
		Color:            m.Color,
		IconFrame:        m.IconFrame,
		CurrentStack:     m.currentStack,
	}
}
