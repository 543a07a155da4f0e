package testutils

import (
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Sample generated encounters, written the way the providers are prompted to write them
const (
	// BalancedOgreText is a Challenging fight for LevelFiveParty: base 2000, adjusted 4000
	BalancedOgreText = `## The Ogre Toll Bridge

### 2× Ogre (CR 2, 450 XP)
Two ogres demand a toll of everything shiny.

### Ogre Chieftain (CR 4, 1,100 XP)
Watches from the far bank and joins in round two.
`

	// GoblinNuisanceText is far too weak for LevelFiveParty: base 400, adjusted 1000
	GoblinNuisanceText = `## Goblin Nuisance

### 8× Goblin (CR 1/4, 50 XP)
They throw rocks and run away.
`
)

// LevelFiveParty is a classic four-person party at level 5.
// Its thresholds are easy 1000, medium 2000, hard 3000, deadly 4400.
func LevelFiveParty() []entities.PartyMember {
	return []entities.PartyMember{
		{ClassName: "Fighter", Level: 5},
		{ClassName: "Wizard", Level: 5},
		{ClassName: "Cleric", Level: 5},
		{ClassName: "Rogue", Level: 5},
	}
}

// StarterParty is four level 1 characters; thresholds 100, 200, 300, 400
func StarterParty() []entities.PartyMember {
	return []entities.PartyMember{
		{ClassName: "Fighter", Level: 1},
		{ClassName: "Wizard", Level: 1},
		{ClassName: "Cleric", Level: 1},
		{ClassName: "Rogue", Level: 1},
	}
}
