package extract_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/engine/extract"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

type ExtractTestSuite struct {
	suite.Suite
}

func TestExtractSuite(t *testing.T) {
	suite.Run(t, new(ExtractTestSuite))
}

const ambushText = `# Ambush at the Old Mill

The goblins have been watching the road for days.

### 4× Goblin (CR 1/4, 50 XP)
*Small humanoid, neutral evil*
- **Armor Class** 15

### Hobgoblin Captain (CR 3, 700 XP)
Commands the ambush from the mill loft.

## Tactics
The goblins open with arrows.
`

func (s *ExtractTestSuite) TestParseCreatures_HeadingBlocks() {
	creatures := extract.ParseCreatures(ambushText)

	s.Require().Len(creatures, 2)
	s.Equal(entities.ParsedCreature{Name: "Goblin", ChallengeRating: "1/4", XP: 50, Count: 4}, creatures[0])
	s.Equal(entities.ParsedCreature{Name: "Hobgoblin Captain", ChallengeRating: "3", XP: 700, Count: 1}, creatures[1])
}

func (s *ExtractTestSuite) TestParseCreatures_FormattingDrift() {
	testCases := []struct {
		name     string
		text     string
		expected entities.ParsedCreature
	}{
		{
			name:     "ascii multiplier with spaces",
			text:     "#### 3 x Wolf (CR 1/4, 50 XP)",
			expected: entities.ParsedCreature{Name: "Wolf", ChallengeRating: "1/4", XP: 50, Count: 3},
		},
		{
			name:     "bold line heading",
			text:     "**2x Ogre (CR 2, 450 XP)**",
			expected: entities.ParsedCreature{Name: "Ogre", ChallengeRating: "2", XP: 450, Count: 2},
		},
		{
			name:     "bold name inside heading",
			text:     "### **Young Green Dragon** (CR 8, 3,900 XP)",
			expected: entities.ParsedCreature{Name: "Young Green Dragon", ChallengeRating: "8", XP: 3900, Count: 1},
		},
		{
			name:     "lowercase cr and xp first",
			text:     "## Bandit Captain (cr 2; XP 450)",
			expected: entities.ParsedCreature{Name: "Bandit Captain", ChallengeRating: "2", XP: 450, Count: 1},
		},
		{
			name:     "missing xp falls back to table",
			text:     "### Troll (CR 5)",
			expected: entities.ParsedCreature{Name: "Troll", ChallengeRating: "5", XP: 1800, Count: 1},
		},
		{
			name:     "table overrides disagreeing claim",
			text:     "### Owlbear (CR 3, 1000 XP)",
			expected: entities.ParsedCreature{Name: "Owlbear", ChallengeRating: "3", XP: 700, Count: 1},
		},
		{
			name:     "off-table rating keeps claimed xp",
			text:     "### Demigod Avatar (CR 31, 180.000 XP)",
			expected: entities.ParsedCreature{Name: "Demigod Avatar", ChallengeRating: "31", XP: 180000, Count: 1},
		},
		{
			name:     "off-table rating without xp defaults to zero",
			text:     "### Ancient Thing (CR 42)",
			expected: entities.ParsedCreature{Name: "Ancient Thing", ChallengeRating: "42", XP: 0, Count: 1},
		},
		{
			name:     "decimal fraction rating reads as the table fraction",
			text:     "### Swarm of Rats (CR 0.25, 50 XP)",
			expected: entities.ParsedCreature{Name: "Swarm of Rats", ChallengeRating: "1/4", XP: 50, Count: 1},
		},
		{
			name:     "whole decimal rating uses the table",
			text:     "### Ogre (CR 2.0, 999 XP)",
			expected: entities.ParsedCreature{Name: "Ogre", ChallengeRating: "2", XP: 450, Count: 1},
		},
		{
			name:     "off-table decimal keeps claimed xp",
			text:     "### Veteran Sellsword (CR 1.5, 300 XP)",
			expected: entities.ParsedCreature{Name: "Veteran Sellsword", ChallengeRating: "1.5", XP: 300, Count: 1},
		},
		{
			name:     "off-table decimal without xp defaults to zero",
			text:     "### Odd Construct (CR 1.5)",
			expected: entities.ParsedCreature{Name: "Odd Construct", ChallengeRating: "1.5", XP: 0, Count: 1},
		},
		{
			name:     "huge multiplier is capped",
			text:     "### 9223372036854775807x Lich (CR 21, 33000 XP)",
			expected: entities.ParsedCreature{Name: "Lich", ChallengeRating: "21", XP: 33000, Count: extract.MaxCreatureCount},
		},
		{
			name:     "multiplier beyond int range is capped",
			text:     "### 99999999999999999999x Lich (CR 21)",
			expected: entities.ParsedCreature{Name: "Lich", ChallengeRating: "21", XP: 33000, Count: extract.MaxCreatureCount},
		},
		{
			name:     "zero multiplier treated as one",
			text:     "### 0× Skeleton (CR 1/4, 50 XP)",
			expected: entities.ParsedCreature{Name: "Skeleton", ChallengeRating: "1/4", XP: 50, Count: 1},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			creatures := extract.ParseCreatures(tc.text)
			s.Require().Len(creatures, 1)
			s.Equal(tc.expected, creatures[0])
		})
	}
}

func (s *ExtractTestSuite) TestParseCreatures_DuplicateNamesKeptSeparate() {
	text := "### 2× Goblin (CR 1/4, 50 XP)\nflavor\n### 3× Goblin (CR 1/4, 50 XP)\n"

	creatures := extract.ParseCreatures(text)

	s.Require().Len(creatures, 2)
	s.Equal(2, creatures[0].Count)
	s.Equal(3, creatures[1].Count)
}

func (s *ExtractTestSuite) TestParseCreatures_NoMatches() {
	testCases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose only", "The party hears distant drums. Nothing attacks yet."},
		{"inline mention is not a heading", "The party meets a Goblin (CR 1/4, 50 XP) on the road."},
		{"heading without rating", "### Goblin Boss\nLeads the pack."},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			creatures := extract.ParseCreatures(tc.text)
			s.NotNil(creatures)
			s.Empty(creatures)
		})
	}
}

func (s *ExtractTestSuite) TestParseCreatures_Idempotent() {
	first := extract.ParseCreatures(ambushText)
	second := extract.ParseCreatures(ambushText)

	s.Equal(first, second)
}

func (s *ExtractTestSuite) TestParseChallengeRating() {
	testCases := []struct {
		cr       string
		expected float64
	}{
		{"0", 0},
		{"1/8", 0.125},
		{"1/4", 0.25},
		{" 1 / 2 ", 0.5},
		{"9", 9},
		{"30", 30},
		{"0.25", 0.25},
		{"1.5", 1.5},
		{"", 0},
		{"abc", 0},
		{"1/0", 0},
		{"1/x", 0},
		{"-3", 0},
		{"NaN", 0},
	}

	for _, tc := range testCases {
		s.Run(tc.cr, func() {
			s.InDelta(tc.expected, extract.ParseChallengeRating(tc.cr), 1e-9)
		})
	}
}

func (s *ExtractTestSuite) TestXPForChallengeRating() {
	xp, ok := extract.XPForChallengeRating("0")
	s.True(ok)
	s.Equal(10, xp)

	xp, ok = extract.XPForChallengeRating("30")
	s.True(ok)
	s.Equal(155000, xp)

	xp, ok = extract.XPForChallengeRating("1/4")
	s.True(ok)
	s.Equal(50, xp)

	xp, ok = extract.XPForChallengeRating("0.5")
	s.True(ok)
	s.Equal(100, xp)

	_, ok = extract.XPForChallengeRating("1/3")
	s.False(ok)

	_, ok = extract.XPForChallengeRating("1.5")
	s.False(ok)
}
