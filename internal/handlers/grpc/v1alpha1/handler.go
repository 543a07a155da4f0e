// Package v1alpha1 serves the encounter gRPC service
package v1alpha1

import (
	"context"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/encounter"
)

// EncounterHandlerConfig holds dependencies for the encounter handler
type EncounterHandlerConfig struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *EncounterHandlerConfig) Validate() error {
	if c.EncounterService == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// EncounterHandler implements the encounter gRPC service
type EncounterHandler struct {
	apiv1alpha1.UnimplementedEncounterServiceServer
	encounterService encounter.Service
}

// NewEncounterHandler creates a new encounter handler with the given configuration
func NewEncounterHandler(cfg *EncounterHandlerConfig) (*EncounterHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &EncounterHandler{
		encounterService: cfg.EncounterService,
	}, nil
}

// GenerateEncounter runs the generate and validate loop. Unbalanced results are still
// returned; only an unavailable generation backend fails with RESOURCE_EXHAUSTED.
func (h *EncounterHandler) GenerateEncounter(
	ctx context.Context,
	req *apiv1alpha1.GenerateEncounterRequest,
) (*apiv1alpha1.GenerateEncounterResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.encounterService.GenerateEncounter(ctx, &encounter.GenerateEncounterInput{
		Party:           convertPartyFromProto(req.PartyMembers),
		Difficulty:      entities.DifficultyTier(req.Difficulty),
		Region:          req.Region,
		Theme:           req.Theme,
		SpecificRequest: req.SpecificRequest,
		Tags:            req.Tags,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	e := output.Encounter
	return &apiv1alpha1.GenerateEncounterResponse{
		ID:            e.ID,
		EncounterText: e.Text,
		Validation:    e.Validation,
		Provider:      string(e.Provider),
		Outcome:       string(e.Outcome),
		Attempts:      e.Attempts,
		Stored:        output.Stored,
	}, nil
}

// GetEncounter returns a stored encounter
func (h *EncounterHandler) GetEncounter(
	ctx context.Context,
	req *apiv1alpha1.GetEncounterRequest,
) (*apiv1alpha1.GetEncounterResponse, error) {
	if req == nil || req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	output, err := h.encounterService.GetEncounter(ctx, &encounter.GetEncounterInput{EncounterID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.GetEncounterResponse{Encounter: convertEncounterToProto(output.Encounter)}, nil
}

// ListEncounters returns stored encounters, newest first
func (h *EncounterHandler) ListEncounters(
	ctx context.Context,
	req *apiv1alpha1.ListEncountersRequest,
) (*apiv1alpha1.ListEncountersResponse, error) {
	input := &encounter.ListEncountersInput{}
	if req != nil {
		input.Limit = req.Limit
	}

	output, err := h.encounterService.ListEncounters(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	encounters := make([]*apiv1alpha1.Encounter, 0, len(output.Encounters))
	for _, e := range output.Encounters {
		encounters = append(encounters, convertEncounterToProto(e))
	}

	return &apiv1alpha1.ListEncountersResponse{Encounters: encounters}, nil
}

// DeleteEncounter removes a stored encounter
func (h *EncounterHandler) DeleteEncounter(
	ctx context.Context,
	req *apiv1alpha1.DeleteEncounterRequest,
) (*apiv1alpha1.DeleteEncounterResponse, error) {
	if req == nil || req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.encounterService.DeleteEncounter(ctx, &encounter.DeleteEncounterInput{EncounterID: req.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &apiv1alpha1.DeleteEncounterResponse{}, nil
}

// AnalyzeParty returns the XP budget and composition hints without generating anything
func (h *EncounterHandler) AnalyzeParty(
	ctx context.Context,
	req *apiv1alpha1.AnalyzePartyRequest,
) (*apiv1alpha1.AnalyzePartyResponse, error) {
	if req == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("request is required"))
	}

	output, err := h.encounterService.AnalyzeParty(ctx, &encounter.AnalyzePartyInput{
		Party:      convertPartyFromProto(req.PartyMembers),
		Difficulty: entities.DifficultyTier(req.Difficulty),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertAnalysisToProto(output), nil
}
