// Package engine exposes the encounter balancing rules behind one injectable interface
package engine

import (
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Engine provides the deterministic encounter mechanics: budgets, extraction and validation
type Engine interface {
	// AnalyzeParty derives thresholds, target ranges, role coverage and prompt hints
	AnalyzeParty(input *AnalyzePartyInput) *AnalyzePartyOutput

	// ExtractCreatures parses creature stat headings out of generated markdown
	ExtractCreatures(text string) []entities.ParsedCreature

	// ValidateEncounter scores parsed creatures against the party and requested tier
	ValidateEncounter(input *ValidateEncounterInput) *entities.ValidationResult
}
