package v1alpha1

import (
	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/encounter"
)

func convertPartyFromProto(members []apiv1alpha1.PartyMember) []entities.PartyMember {
	if members == nil {
		return nil
	}
	party := make([]entities.PartyMember, len(members))
	for i, m := range members {
		party[i] = entities.PartyMember{ClassName: m.ClassName, Level: m.Level}
	}
	return party
}

func convertPartyToProto(members []entities.PartyMember) []apiv1alpha1.PartyMember {
	party := make([]apiv1alpha1.PartyMember, len(members))
	for i, m := range members {
		party[i] = apiv1alpha1.PartyMember{ClassName: m.ClassName, Level: m.Level}
	}
	return party
}

func convertEncounterToProto(e *entities.Encounter) *apiv1alpha1.Encounter {
	if e == nil {
		return nil
	}
	return &apiv1alpha1.Encounter{
		ID:             e.ID,
		EncounterText:  e.Text,
		PartyMembers:   convertPartyToProto(e.Party),
		Difficulty:     int(e.Difficulty),
		Region:         e.Region,
		Theme:          e.Theme,
		Tags:           e.Tags,
		Validation:     e.Validation,
		Provider:       string(e.Provider),
		Outcome:        string(e.Outcome),
		Attempts:       e.Attempts,
		AdjustedXP:     e.AdjustedXP,
		Classification: e.Classification,
		CreatedAt:      e.CreatedAt,
	}
}

func convertAnalysisToProto(output *encounter.AnalyzePartyOutput) *apiv1alpha1.AnalyzePartyResponse {
	a := output.Analysis
	ranges := make([]apiv1alpha1.TierRange, len(a.Ranges))
	for i, r := range a.Ranges {
		ranges[i] = apiv1alpha1.TierRange{Difficulty: int(r.Tier), Label: r.Label, Range: r.Range}
	}
	hints := a.Hints
	if hints == nil {
		hints = []string{}
	}

	return &apiv1alpha1.AnalyzePartyResponse{
		Difficulty:   int(output.Difficulty),
		Thresholds:   a.Thresholds,
		AverageLevel: a.AverageLevel,
		CRCeiling:    a.CRCeiling,
		Target:       a.Target,
		Ranges:       ranges,
		Roles: apiv1alpha1.Roles{
			Tank:   a.Roles.Tank,
			Healer: a.Roles.Healer,
			Arcane: a.Roles.Arcane,
		},
		Hints: hints,
	}
}
