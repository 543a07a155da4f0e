package encounter

import (
	"github.com/KirkDiggler/rpg-forge/internal/engine"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// GenerateEncounterInput is a request for a balanced encounter
type GenerateEncounterInput struct {
	Party           []entities.PartyMember
	Difficulty      entities.DifficultyTier
	Region          string
	Theme           string
	SpecificRequest string
	Tags            []string
}

// GenerateEncounterOutput carries the generated encounter. Encounter.Text ends with the balance badge.
// Stored is false when persisting failed; the encounter cannot be fetched by ID later.
type GenerateEncounterOutput struct {
	Encounter *entities.Encounter
	Stored    bool
}

// AnalyzePartyInput asks for the party budget without generating anything.
// A zero Difficulty analyzes against Challenging.
type AnalyzePartyInput struct {
	Party      []entities.PartyMember
	Difficulty entities.DifficultyTier
}

// AnalyzePartyOutput is the party budget, role coverage and prompt hints
type AnalyzePartyOutput struct {
	Difficulty entities.DifficultyTier
	Analysis   *engine.AnalyzePartyOutput
}

// GetEncounterInput identifies a stored encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput is a stored encounter
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}

// ListEncountersInput pages through stored encounters, newest first
type ListEncountersInput struct {
	Limit int
}

// ListEncountersOutput is one page of encounters
type ListEncountersOutput struct {
	Encounters []*entities.Encounter
}

// DeleteEncounterInput identifies the encounter to remove
type DeleteEncounterInput struct {
	EncounterID string
}

// DeleteEncounterOutput is empty on success
type DeleteEncounterOutput struct{}
