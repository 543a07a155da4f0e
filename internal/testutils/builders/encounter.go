// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// EncounterBuilder provides a fluent interface for building test Encounter instances
type EncounterBuilder struct {
	encounter *entities.Encounter
}

// NewEncounterBuilder creates a builder for a validated four-goblin encounter
func NewEncounterBuilder() *EncounterBuilder {
	return &EncounterBuilder{
		encounter: &entities.Encounter{
			ID:   "enc-test-123",
			Text: "### 4× Goblin (CR 1/4, 50 XP)",
			Party: []entities.PartyMember{
				{ClassName: "Fighter", Level: 3},
				{ClassName: "Wizard", Level: 3},
			},
			Difficulty: entities.TierModerate,
			Validation: &entities.ValidationResult{
				Valid:               true,
				Errors:              []entities.Issue{},
				AdjustedXP:          400,
				BaseXP:              200,
				TotalCreatureCount:  4,
				ClassificationLabel: "Moderate",
			},
			Outcome:        entities.OutcomeValidated,
			Provider:       entities.ProviderPrimary,
			Attempts:       1,
			AdjustedXP:     400,
			Classification: "Moderate",
			CreatedAt:      time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the encounter ID
func (b *EncounterBuilder) WithID(id string) *EncounterBuilder {
	b.encounter.ID = id
	return b
}

// WithText sets the stored encounter text
func (b *EncounterBuilder) WithText(text string) *EncounterBuilder {
	b.encounter.Text = text
	return b
}

// WithParty sets the roster the encounter was generated for
func (b *EncounterBuilder) WithParty(members ...entities.PartyMember) *EncounterBuilder {
	b.encounter.Party = members
	return b
}

// WithDifficulty sets the requested tier
func (b *EncounterBuilder) WithDifficulty(tier entities.DifficultyTier) *EncounterBuilder {
	b.encounter.Difficulty = tier
	return b
}

// WithRegion sets the region
func (b *EncounterBuilder) WithRegion(region string) *EncounterBuilder {
	b.encounter.Region = region
	return b
}

// WithTags sets the tags
func (b *EncounterBuilder) WithTags(tags ...string) *EncounterBuilder {
	b.encounter.Tags = tags
	return b
}

// WithCreatedAt sets the creation time
func (b *EncounterBuilder) WithCreatedAt(t time.Time) *EncounterBuilder {
	b.encounter.CreatedAt = t
	return b
}

// WithFailedValidation marks the encounter as having exhausted its attempts with the given issues
func (b *EncounterBuilder) WithFailedValidation(attempts int, issues ...entities.Issue) *EncounterBuilder {
	b.encounter.Outcome = entities.OutcomeUnvalidated
	b.encounter.Attempts = attempts
	b.encounter.Validation.Valid = false
	b.encounter.Validation.Errors = issues
	return b
}

// WithProvider sets the provider label
func (b *EncounterBuilder) WithProvider(p entities.ProviderLabel) *EncounterBuilder {
	b.encounter.Provider = p
	return b
}

// Build returns the encounter
func (b *EncounterBuilder) Build() *entities.Encounter {
	return b.encounter
}
