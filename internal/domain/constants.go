package domain

// Asset layout
const (
	// AssetPathPrefix is the root of every derived item image path
	AssetPathPrefix = "assets/items/"

	// ColumnsFileStem names the per-category table layout file that lives next to item records
	ColumnsFileStem = "columns"
)

// Process kinds accepted by material processing
const (
	ProcessSmelt   = "smelt"
	ProcessRefine  = "refine"
	ProcessEnchant = "enchant"
)

// Potion effect kinds
const (
	EffectHeal = "heal"
	EffectMana = "mana"
	EffectBuff = "buff"
	EffectCure = "cure"
)

// Quest effect kinds
const (
	EffectUnlockArea = "unlock_area"
	EffectLearnSpell = "learn_spell"
	EffectGainTitle  = "gain_title"
	EffectReputation = "reputation"
	EffectTransform  = "transform"
)

// Quest trigger kinds
const (
	TriggerDialogue   = "dialogue"
	TriggerCutscene   = "cutscene"
	TriggerTeleport   = "teleport"
	TriggerSpawnEnemy = "spawn_enemy"
)

// Record keys read outside the item constructors
const (
	KeyID       = "id"
	KeyCategory = "category"
	KeyFilename = "filename"
)
