package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw   string
		want  Category
		known bool
	}{
		{"weapons", CategoryWeapons, true},
		{"WEAPONS", CategoryWeapons, true},
		{"Armor", CategoryArmor, true},
		{" weapons ", Category(" weapons "), false},
		{"Potions", CategoryPotions, true},
		{"materials", CategoryMaterials, true},
		{"Quest", CategoryQuest, true},
		{"trinkets", Category("trinkets"), false},
		{"", Category(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseCategory(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestRarityRank(t *testing.T) {
	assert.Equal(t, 0, RarityRank(RarityCommon))
	assert.Equal(t, 5, RarityRank(RarityUnique))
	assert.Less(t, RarityRank(RarityRare), RarityRank(RarityLegendary))
	assert.Equal(t, -1, RarityRank("mythic"))
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "assets/items/weapons/sword.png", ImagePath("weapons", "sword.png"))
}

func TestCharacter_QuestProgress(t *testing.T) {
	c := &Character{}
	assert.False(t, c.HasQuest("q1"))

	c.AdvanceQuest("q1", 2)
	assert.True(t, c.HasQuest("q1"))
	assert.Equal(t, 2, c.QuestStage("q1"))

	c.AddReputation("elves", 10)
	c.AddReputation("elves", 5)
	assert.Equal(t, 15.0, c.Reputation["elves"])

	c.Debuffs = []string{"poison", "slow", "poison"}
	c.RemoveDebuff("poison")
	assert.Equal(t, []string{"slow"}, c.Debuffs)
}
