// Package v1alpha1 is the wire contract of the encounter service, shared by the gRPC
// and HTTP transports. Messages are plain structs encoded as JSON.
package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// PartyMember is one adventurer on the wire
type PartyMember struct {
	ClassName string `json:"className"`
	Level     int    `json:"level"`
}

// GenerateEncounterRequest asks for a balanced encounter for a party
type GenerateEncounterRequest struct {
	PartyMembers    []PartyMember `json:"partyMembers"`
	Difficulty      int           `json:"difficulty"`
	Region          string        `json:"region,omitempty"`
	Theme           string        `json:"theme,omitempty"`
	SpecificRequest string        `json:"specificRequest,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
}

// GenerateEncounterResponse is the accepted encounter. EncounterText ends with the balance badge.
type GenerateEncounterResponse struct {
	ID            string                     `json:"id"`
	EncounterText string                     `json:"encounterText"`
	Validation    *entities.ValidationResult `json:"validation"`
	Provider      string                     `json:"provider"`
	Outcome       string                     `json:"outcome"`
	Attempts      int                        `json:"attempts"`
	Stored        bool                       `json:"stored"`
}

// Encounter is a stored encounter
type Encounter struct {
	ID             string                     `json:"id"`
	EncounterText  string                     `json:"encounterText"`
	PartyMembers   []PartyMember              `json:"partyMembers"`
	Difficulty     int                        `json:"difficulty"`
	Region         string                     `json:"region,omitempty"`
	Theme          string                     `json:"theme,omitempty"`
	Tags           []string                   `json:"tags,omitempty"`
	Validation     *entities.ValidationResult `json:"validation"`
	Provider       string                     `json:"provider"`
	Outcome        string                     `json:"outcome"`
	Attempts       int                        `json:"attempts"`
	AdjustedXP     int                        `json:"adjustedXp"`
	Classification string                     `json:"classification"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// GetEncounterRequest identifies a stored encounter
type GetEncounterRequest struct {
	ID string `json:"id"`
}

// GetEncounterResponse wraps the stored encounter
type GetEncounterResponse struct {
	Encounter *Encounter `json:"encounter"`
}

// ListEncountersRequest pages stored encounters, newest first. Zero means the server default.
type ListEncountersRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ListEncountersResponse is one page of encounters
type ListEncountersResponse struct {
	Encounters []*Encounter `json:"encounters"`
}

// DeleteEncounterRequest identifies the encounter to remove
type DeleteEncounterRequest struct {
	ID string `json:"id"`
}

// DeleteEncounterResponse is empty
type DeleteEncounterResponse struct{}

// AnalyzePartyRequest asks for the XP budget of a party. Zero difficulty means Challenging.
type AnalyzePartyRequest struct {
	PartyMembers []PartyMember `json:"partyMembers"`
	Difficulty   int           `json:"difficulty,omitempty"`
}

// TierRange is the XP interval of one tier
type TierRange struct {
	Difficulty int              `json:"difficulty"`
	Label      string           `json:"label"`
	Range      entities.XPRange `json:"range"`
}

// Roles reports which party roles are covered
type Roles struct {
	Tank   bool `json:"tank"`
	Healer bool `json:"healer"`
	Arcane bool `json:"arcane"`
}

// AnalyzePartyResponse is the party budget, role coverage and composition hints
type AnalyzePartyResponse struct {
	Difficulty   int                      `json:"difficulty"`
	Thresholds   entities.PartyThresholds `json:"thresholds"`
	AverageLevel float64                  `json:"averageLevel"`
	CRCeiling    float64                  `json:"crCeiling"`
	Target       entities.XPRange         `json:"target"`
	Ranges       []TierRange              `json:"ranges"`
	Roles        Roles                    `json:"roles"`
	Hints        []string                 `json:"hints"`
}
