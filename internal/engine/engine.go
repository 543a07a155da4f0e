package engine

import (
	"github.com/KirkDiggler/rpg-forge/internal/engine/balance"
	"github.com/KirkDiggler/rpg-forge/internal/engine/extract"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

type engine struct{}

// Config holds engine dependencies. There are none today; it keeps construction uniform.
type Config struct{}

// Validate validates the configuration
func (cfg *Config) Validate() error {
	return nil
}

// New creates an Engine backed by the balance and extract packages
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) AnalyzeParty(input *AnalyzePartyInput) *AnalyzePartyOutput {
	if input == nil {
		input = &AnalyzePartyInput{}
	}

	thresholds := balance.ComputeThresholds(input.Members)
	avg := balance.AverageLevel(input.Members)

	ranges := make([]TierRange, 0, int(entities.TierDeadly))
	for tier := entities.TierEasy; tier <= entities.TierDeadly; tier++ {
		ranges = append(ranges, TierRange{
			Tier:  tier,
			Label: tier.String(),
			Range: balance.TargetRange(tier, thresholds),
		})
	}

	return &AnalyzePartyOutput{
		Thresholds:   thresholds,
		AverageLevel: avg,
		CRCeiling:    balance.CRCeiling(avg),
		Target:       balance.TargetRange(input.Difficulty, thresholds),
		Ranges:       ranges,
		Roles:        balance.Composition(input.Members),
		Hints:        balance.AnalyzeWeaknesses(input.Members),
	}
}

func (e *engine) ExtractCreatures(text string) []entities.ParsedCreature {
	return extract.ParseCreatures(text)
}

func (e *engine) ValidateEncounter(input *ValidateEncounterInput) *entities.ValidationResult {
	if input == nil {
		input = &ValidateEncounterInput{}
	}
	return balance.Validate(input.Creatures, input.Members, input.Difficulty)
}
