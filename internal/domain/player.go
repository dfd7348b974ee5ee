package domain

// Player is the character a consumable is used on.
type Player interface {
	PlayerLevel() int
	HealthPoints() (current, max float64)
	ManaPoints() (current, max float64)
	SetHealthPoints(v float64)
	SetManaPoints(v float64)
	AddBuff(buffType string, value float64, duration string)
	RemoveDebuff(debuffType string)
}

// QuestPlayer is the character a quest item is used by.
type QuestPlayer interface {
	HasQuest(questID string) bool
	QuestStage(questID string) int
	AdvanceQuest(questID string, stage int)
	TriggerEvent(eventID string)
	UnlockArea(areaID string)
	LearnSpell(spellID string)
	AddTitle(titleID string)
	AddReputation(faction string, amount float64)
	StartDialogue(dialogueID string)
	PlayCutscene(cutsceneID string)
	TeleportTo(location string)
	SpawnEnemy(enemyID, location string)
}

// UseCheck is the outcome of a usability gate.
type UseCheck struct {
	CanUse bool   `json:"canUse"`
	Reason string `json:"reason,omitempty"`
}

// Allowed is the passing UseCheck.
func Allowed() UseCheck {
	return UseCheck{CanUse: true}
}

// Refused builds a failing UseCheck with the given reason.
func Refused(reason string) UseCheck {
	return UseCheck{CanUse: false, Reason: reason}
}

// UseResult is returned by consumable use.
type UseResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Effects []Effect `json:"effects,omitempty"`
}

// UseContext carries where and with whom a quest item is used.
type UseContext struct {
	Location string `json:"location,omitempty"`
	NPC      string `json:"npc,omitempty"`
}

// Transform describes a quest item turning into another item.
type Transform struct {
	Type    string `json:"type"`
	OldItem string `json:"oldItem"`
	NewItem string `json:"newItem"`
	Message string `json:"message"`
}

// QuestUseResult is returned by quest item use.
type QuestUseResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	NextAction string      `json:"nextAction,omitempty"`
	Transforms []Transform `json:"transforms,omitempty"`
}
