package balance_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/engine/balance"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

type WeaknessTestSuite struct {
	suite.Suite
}

func TestWeaknessSuite(t *testing.T) {
	suite.Run(t, new(WeaknessTestSuite))
}

func party(classes ...string) []entities.PartyMember {
	members := make([]entities.PartyMember, len(classes))
	for i, c := range classes {
		members[i] = entities.PartyMember{ClassName: c, Level: 3}
	}
	return members
}

func (s *WeaknessTestSuite) TestAnalyzeWeaknesses() {
	testCases := []struct {
		name     string
		members  []entities.PartyMember
		expected []string
	}{
		{
			name:     "balanced party",
			members:  party("Fighter", "Wizard", "Cleric", "Rogue"),
			expected: []string{},
		},
		{
			name:     "no tank",
			members:  party("Wizard", "Cleric", "Rogue"),
			expected: []string{balance.HintNoTank},
		},
		{
			name:     "no healer",
			members:  party("Fighter", "Wizard", "Rogue"),
			expected: []string{balance.HintNoHealer},
		},
		{
			name:     "paladin covers both roles in a duo",
			members:  party("Paladin", "Rogue"),
			expected: []string{balance.HintSmallParty},
		},
		{
			name:     "lone rogue",
			members:  party("Rogue"),
			expected: []string{balance.HintNoTank, balance.HintNoHealer, balance.HintSmallParty},
		},
		{
			name:     "large party",
			members:  party("Fighter", "Cleric", "Wizard", "Rogue", "Ranger", "Monk"),
			expected: []string{balance.HintLargeParty},
		},
		{
			name:     "class names are case insensitive",
			members:  party("  BARBARIAN ", "druid", "Sorcerer"),
			expected: []string{},
		},
		{
			name:     "unknown classes count for nothing",
			members:  party("Artificer", "Blood Hunter", "Gunslinger"),
			expected: []string{balance.HintNoTank, balance.HintNoHealer},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, balance.AnalyzeWeaknesses(tc.members))
		})
	}
}

func (s *WeaknessTestSuite) TestAnalyzeWeaknesses_EmptyParty() {
	hints := balance.AnalyzeWeaknesses(nil)

	s.NotNil(hints)
	s.Contains(hints, balance.HintSmallParty)
	s.NotContains(hints, balance.HintLargeParty)
}

func (s *WeaknessTestSuite) TestComposition() {
	roles := balance.Composition(party("Bard", "Fighter"))

	s.Equal(balance.Roles{Tank: true, Healer: true, Arcane: true}, roles)
	s.Equal(balance.Roles{}, balance.Composition(nil))
}
