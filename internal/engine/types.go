package engine

import (
	"github.com/KirkDiggler/rpg-forge/internal/engine/balance"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// AnalyzePartyInput contains the roster and the tier the caller is aiming for
type AnalyzePartyInput struct {
	Members    []entities.PartyMember
	Difficulty entities.DifficultyTier
}

// TierRange pairs a difficulty tier with its XP interval
type TierRange struct {
	Tier  entities.DifficultyTier `json:"tier"`
	Label string                  `json:"label"`
	Range entities.XPRange        `json:"range"`
}

// AnalyzePartyOutput summarizes the party for prompting and for display
type AnalyzePartyOutput struct {
	Thresholds   entities.PartyThresholds `json:"thresholds"`
	AverageLevel float64                  `json:"averageLevel"`
	CRCeiling    float64                  `json:"crCeiling"`
	Target       entities.XPRange         `json:"target"`
	Ranges       []TierRange              `json:"ranges"`
	Roles        balance.Roles            `json:"roles"`
	Hints        []string                 `json:"hints"`
}

// ValidateEncounterInput contains everything needed to score one attempt
type ValidateEncounterInput struct {
	Creatures  []entities.ParsedCreature
	Members    []entities.PartyMember
	Difficulty entities.DifficultyTier
}
