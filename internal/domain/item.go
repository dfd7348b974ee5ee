package domain

import "strings"

// Category is the discriminant that selects which item variant a record becomes.
type Category string

const (
	CategoryWeapons   Category = "weapons"
	CategoryArmor     Category = "armor"
	CategoryPotions   Category = "potions"
	CategoryMaterials Category = "materials"
	CategoryQuest     Category = "quest"
)

// Categories is the fixed dispatch order of the known item categories.
var Categories = []Category{
	CategoryWeapons,
	CategoryArmor,
	CategoryPotions,
	CategoryMaterials,
	CategoryQuest,
}

// ParseCategory matches a raw category tag case-insensitively. Surrounding
// whitespace is kept, so " weapons " is not a known category.
// The second return value is false for tags outside the known set.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(raw))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

func (c Category) String() string {
	return string(c)
}

// ImagePath returns the asset path of an item image for the category.
func ImagePath(category, filename string) string {
	return AssetPathPrefix + category + "/" + filename
}

// Rarity values, ordered from lowest to highest rank
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityUnique    = "unique"
)

// RarityOrder is the sort order used when comparing items by rarity.
var RarityOrder = []string{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityUnique,
}

// RarityRank returns the position of rarity in RarityOrder, or -1 when unlisted.
func RarityRank(rarity string) int {
	for i, r := range RarityOrder {
		if r == rarity {
			return i
		}
	}
	return -1
}

// Material grades
const (
	GradeBasic      = "basic"
	GradeFine       = "fine"
	GradeSuperior   = "superior"
	GradeMasterwork = "masterwork"
)

// Armor classes
const (
	ArmorClassLight  = "light"
	ArmorClassMedium = "medium"
	ArmorClassHeavy  = "heavy"
)

// Elemental damage kinds that armor can resist
const (
	DamageMagic     = "magic"
	DamageFire      = "fire"
	DamageIce       = "ice"
	DamageLightning = "lightning"
	DamagePoison    = "poison"
)
