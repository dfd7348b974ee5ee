package domain

// Buff is a timed stat modifier applied by a consumable.
type Buff struct {
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	Duration string  `json:"duration,omitempty"`
}

// Spawn records an enemy spawned by a quest trigger.
type Spawn struct {
	EnemyID  string `json:"enemyId"`
	Location string `json:"location,omitempty"`
}

// Character is a plain in-memory player used to simulate item use.
// It implements both Player and QuestPlayer.
type Character struct {
	Level     int     `json:"level" validate:"gte=1"`
	Health    float64 `json:"health" validate:"gte=0"`
	MaxHealth float64 `json:"maxHealth" validate:"gte=0"`
	Mana      float64 `json:"mana" validate:"gte=0"`
	MaxMana   float64 `json:"maxMana" validate:"gte=0"`

	Buffs    []Buff   `json:"buffs,omitempty"`
	Debuffs  []string `json:"debuffs,omitempty"`
	Location string   `json:"location,omitempty"`

	// Quests maps quest id to current stage
	Quests     map[string]int     `json:"quests,omitempty"`
	Events     []string           `json:"events,omitempty"`
	Areas      []string           `json:"areas,omitempty"`
	Spells     []string           `json:"spells,omitempty"`
	Titles     []string           `json:"titles,omitempty"`
	Reputation map[string]float64 `json:"reputation,omitempty"`
	Dialogues  []string           `json:"dialogues,omitempty"`
	Cutscenes  []string           `json:"cutscenes,omitempty"`
	Spawns     []Spawn            `json:"spawns,omitempty"`
}

var (
	_ Player      = (*Character)(nil)
	_ QuestPlayer = (*Character)(nil)
)

func (c *Character) PlayerLevel() int { return c.Level }

func (c *Character) HealthPoints() (float64, float64) { return c.Health, c.MaxHealth }

func (c *Character) ManaPoints() (float64, float64) { return c.Mana, c.MaxMana }

func (c *Character) SetHealthPoints(v float64) { c.Health = v }

func (c *Character) SetManaPoints(v float64) { c.Mana = v }

func (c *Character) AddBuff(buffType string, value float64, duration string) {
	c.Buffs = append(c.Buffs, Buff{Type: buffType, Value: value, Duration: duration})
}

// RemoveDebuff drops every debuff of the given type.
func (c *Character) RemoveDebuff(debuffType string) {
	kept := c.Debuffs[:0]
	for _, d := range c.Debuffs {
		if d != debuffType {
			kept = append(kept, d)
		}
	}
	c.Debuffs = kept
}

func (c *Character) HasQuest(questID string) bool {
	_, ok := c.Quests[questID]
	return ok
}

func (c *Character) QuestStage(questID string) int {
	return c.Quests[questID]
}

func (c *Character) AdvanceQuest(questID string, stage int) {
	if c.Quests == nil {
		c.Quests = make(map[string]int)
	}
	c.Quests[questID] = stage
}

func (c *Character) TriggerEvent(eventID string) { c.Events = append(c.Events, eventID) }

func (c *Character) UnlockArea(areaID string) { c.Areas = append(c.Areas, areaID) }

func (c *Character) LearnSpell(spellID string) { c.Spells = append(c.Spells, spellID) }

func (c *Character) AddTitle(titleID string) { c.Titles = append(c.Titles, titleID) }

func (c *Character) AddReputation(faction string, amount float64) {
	if c.Reputation == nil {
		c.Reputation = make(map[string]float64)
	}
	c.Reputation[faction] += amount
}

func (c *Character) StartDialogue(dialogueID string) { c.Dialogues = append(c.Dialogues, dialogueID) }

func (c *Character) PlayCutscene(cutsceneID string) { c.Cutscenes = append(c.Cutscenes, cutsceneID) }

func (c *Character) TeleportTo(location string) { c.Location = location }

func (c *Character) SpawnEnemy(enemyID, location string) {
	c.Spawns = append(c.Spawns, Spawn{EnemyID: enemyID, Location: location})
}
