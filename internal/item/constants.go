package item

// ==================== Default Attribute Values ====================

// Shared defaults
const (
	DefaultLevel     = 1
	DefaultColor     = "#FFFFFF"
	DefaultIconFrame = "common"
)

// Weapon defaults
const (
	DefaultWeaponDamage             = 10.0
	DefaultWeaponCriticalChance     = 0.05
	DefaultWeaponCriticalMultiplier = 2.0
	DefaultWeaponRange              = 1.0
	DefaultWeaponAttackSpeed        = 1.0
	DefaultWeaponWeight             = 1.0
	DefaultWeaponSellPrice          = 10.0
	DefaultWeaponDescription        = "A weapon."
)

// Armor defaults
const (
	DefaultArmorDefense     = 5.0
	DefaultArmorWeight      = 1.0
	DefaultArmorSellPrice   = 10.0
	DefaultArmorDescription = "A piece of armor."
)

// Durability defaults (weapons and armor)
const (
	DefaultDurability = 100.0
)

// Potion defaults
const (
	DefaultPotionType        = "consumable"
	DefaultPotionEffect      = "Unknown Effect"
	DefaultPotionDuration    = "Instant"
	DefaultPotionPotency     = 1.0
	DefaultPotionWeight      = 0.5
	DefaultPotionSellPrice   = 5.0
	DefaultPotionStackSize   = 10
	DefaultPotionDescription = "A magical potion."
	DefaultPotionConsumeTime = 2.0
)

// Material defaults
const (
	DefaultMaterialType           = "material"
	DefaultMaterialKind           = "common"
	DefaultMaterialPurity         = 100.0
	DefaultMaterialWeight         = 0.1
	DefaultMaterialSellPrice      = 1.0
	DefaultMaterialStackSize      = 50
	DefaultMaterialDescription    = "A crafting material."
	DefaultMaterialCraftingValue  = 1.0
	DefaultMaterialProcessingTime = 5.0
)

// Quest defaults
const (
	DefaultQuestType        = "quest_item"
	DefaultQuestName        = "Unknown Quest"
	DefaultQuestStage       = 1
	DefaultQuestDescription = "An important quest item."
	DefaultQuestUsageText   = "Use this item at the right location."
	DefaultQuestColor       = "#FFD700"
)

// DefaultStack is the stack count a fresh potion or material starts with.
const DefaultStack = 1

// BuyPriceFactor derives the default buy price from the sell price.
const BuyPriceFactor = 2.0

// ==================== Formula Constants ====================

const (
	// MaxDamageReduction caps armor mitigation at a share of the incoming hit
	MaxDamageReduction = 0.8
	// MinDamageTaken is the damage that always gets through armor
	MinDamageTaken = 1.0
	// CraftingCostPerIngredient is the base potion crafting cost per ingredient
	CraftingCostPerIngredient = 10.0
	// SmeltValueFactor and RefineValueFactor scale processed material value
	SmeltValueFactor  = 2.0
	RefineValueFactor = 1.5
)

// Processing output tags
const (
	ProcessedTypeIngot     = "ingot"
	ProcessedTypeEssence   = "enchantment_essence"
	MaterialKindOre        = "ore"
	OreIDSuffix            = "_ore"
	IngotIDSuffix          = "_ingot"
	OreNameWord            = "Ore"
	IngotNameWord          = "Ingot"
	ElementNeutral         = "neutral"
	QuestTransformType     = "transform"
	QuestNextActionDefault = "Continue your quest"
)

// Multiplier tables. Unmapped keys use a multiplier of 1.
var (
	WeaponMaterialMultipliers = map[string]float64{
		"wood":    0.8,
		"iron":    1.0,
		"steel":   1.3,
		"mythril": 1.8,
		"dragon":  2.5,
	}

	ArmorMaterialMultipliers = map[string]float64{
		"cloth":   0.5,
		"leather": 0.8,
		"iron":    1.0,
		"steel":   1.4,
		"mythril": 1.8,
		"dragon":  2.5,
	}

	CraftingRarityMultipliers = map[string]float64{
		"common":    1.0,
		"uncommon":  1.5,
		"rare":      2.0,
		"epic":      3.0,
		"legendary": 5.0,
	}

	GradeMultipliers = map[string]float64{
		"basic":      1.0,
		"fine":       1.5,
		"superior":   2.0,
		"masterwork": 3.0,
	}

	// GradeUpgrades maps a grade to the grade refining produces.
	GradeUpgrades = map[string]string{
		"basic":    "fine",
		"fine":     "superior",
		"superior": "masterwork",
	}

	// ArmorClassBonuses is the static stat bonus per armor class.
	ArmorClassBonuses = map[string]map[string]float64{
		"light":  {"mobility": 0.2, "stealth": 0.15},
		"medium": {"mobility": 0.1, "balance": 0.1},
		"heavy":  {"defense": 0.25, "stability": 0.2},
	}
)

// elementKeywords is checked in order against a lower-cased material name.
var elementKeywords = []struct {
	element  string
	keywords []string
}{
	{"fire", []string{"fire", "flame"}},
	{"ice", []string{"ice", "frost"}},
	{"lightning", []string{"lightning", "storm"}},
	{"earth", []string{"earth", "stone"}},
	{"wind", []string{"wind", "air"}},
	{"water", []string{"water", "sea"}},
}

// ==================== Messages ====================

// Use refusal reasons
const (
	ReasonRequiresLevel   = "Requires level %d"
	ReasonCooldown        = "Cooldown: %ds"
	ReasonHealthFull      = "Health already full"
	ReasonManaFull        = "Mana already full"
	ReasonQuestNotActive  = "Quest not active"
	ReasonQuestNotReady   = "Not ready to use this item yet"
	ReasonWrongLocation   = "Must be used at %s"
	ReasonWrongNPC        = "Must be used with %s"
	ReasonAlreadyUsed     = "Item already used"
	MsgRestoredHealth     = "Restored %s HP"
	MsgRestoredMana       = "Restored %s MP"
	MsgQuestAdvanced      = "Quest \"%s\" advanced"
	MsgEventTriggered     = "Event \"%s\" triggered"
	MsgItemTransformed    = "%s has transformed!"
	MsgGoToLocation       = "Go to %s"
	MsgSpeakWith          = "Speak with %s"
	UseMessageSeparator   = ", "
	GenericNoDescription  = "No description available."
	TooltipBullet         = "\n• "
	TooltipEffectsHeader  = "\n\nSpecial Effects:"
	TooltipIngredients    = "\n\nIngredients:"
	TooltipUsedIn         = "\n\nUsed in crafting:"
	TooltipKeyItem        = "Key Item - Cannot be discarded\n"
	TooltipCannotBeSold   = "Cannot be sold\n"
	TooltipQuestItemLabel = "Type: Quest Item\n"
)

// Error format strings
const (
	ErrFmtBadAttribute  = "%w: attribute %q must be %s, got %T"
	ErrFmtBadEffects    = "attribute %q: %w"
	ErrFmtDuplicateKind = "%w: %q already registered in %s"
)

// Log messages
const (
	LogMsgInvalidItemData    = "Invalid item data"
	LogMsgUnknownCategory    = "Unknown item category, creating pass-through item"
	LogMsgCreateItemFailed   = "Error creating item"
	LogMsgCreateItemPanicked = "Recovered panic while creating item"
	LogMsgUnknownEffect      = "Unknown effect type"
	LogMsgUnregisteredKind   = "Item references an unregistered effect type"
)
