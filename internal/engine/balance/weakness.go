package balance

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Party hints folded into the generation prompt
const (
	HintNoTank     = "The party has no dedicated front-liner: avoid swarms that rush the back line and offer chokepoints or cover."
	HintNoHealer   = "The party has no healer: favor attrition-light fights and give them a way to retreat or recover."
	HintSmallParty = "The party is very small: prefer fewer, weaker foes over many actors with their own turns."
	HintLargeParty = "The party is large: use more creatures or area threats so every member has something to face."
)

const (
	smallPartySize = 2
	largePartySize = 6
)

var (
	tankClasses   = classSet("barbarian", "fighter", "paladin")
	healerClasses = classSet("cleric", "druid", "paladin", "bard")
	arcaneClasses = classSet("wizard", "sorcerer", "warlock", "bard")

	classFolder = cases.Fold()
)

func classSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Roles reports which role archetypes the party covers
type Roles struct {
	Tank   bool `json:"tank"`
	Healer bool `json:"healer"`
	Arcane bool `json:"arcane"`
}

// Composition inspects class names, case-insensitively, for role coverage
func Composition(members []entities.PartyMember) Roles {
	var roles Roles
	for _, m := range members {
		class := classFolder.String(strings.TrimSpace(m.ClassName))
		_, tank := tankClasses[class]
		_, healer := healerClasses[class]
		_, arcane := arcaneClasses[class]
		roles.Tank = roles.Tank || tank
		roles.Healer = roles.Healer || healer
		roles.Arcane = roles.Arcane || arcane
	}
	return roles
}

// AnalyzeWeaknesses returns advisory hints about structural gaps in the party.
// Hints are not errors.
func AnalyzeWeaknesses(members []entities.PartyMember) []string {
	roles := Composition(members)
	hints := []string{}

	if !roles.Tank {
		hints = append(hints, HintNoTank)
	}
	if !roles.Healer {
		hints = append(hints, HintNoHealer)
	}
	if len(members) <= smallPartySize {
		hints = append(hints, HintSmallParty)
	}
	if len(members) >= largePartySize {
		hints = append(hints, HintLargeParty)
	}

	return hints
}
