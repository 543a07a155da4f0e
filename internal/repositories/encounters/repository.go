// Package encounters provides persistence for generated encounters
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/rpg-forge/internal/repositories/encounters Repository

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

const (
	// DefaultListLimit is used when a list request does not set a limit
	DefaultListLimit = 20
	// MaxListLimit caps a single list request
	MaxListLimit = 100

	errInputNil       = "input is required"
	errEncounterNil   = "encounter cannot be nil"
	errEncounterIDNil = "encounter ID cannot be empty"
)

// Repository defines the storage interface for encounters
type Repository interface {
	// Upsert creates or replaces an encounter keyed by its ID
	// Returns errors.InvalidArgument for a missing encounter or ID
	Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error)

	// Get retrieves an encounter by ID
	// Returns errors.NotFound if the encounter doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns encounters newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes an encounter
	// Returns errors.NotFound if the encounter doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// UpsertInput defines the input for storing an encounter
type UpsertInput struct {
	Encounter *entities.Encounter
}

// UpsertOutput defines the output for storing an encounter
type UpsertOutput struct {
	Encounter *entities.Encounter
}

// GetInput defines the input for getting an encounter
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// ListInput defines the input for listing encounters. Limit <= 0 uses DefaultListLimit.
type ListInput struct {
	Limit int
}

// ListOutput defines the output for listing encounters
type ListOutput struct {
	Encounters []*entities.Encounter
}

// DeleteInput defines the input for deleting an encounter
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an encounter
type DeleteOutput struct{}

func validateUpsert(input *UpsertInput) error {
	if input == nil {
		return errors.InvalidArgument(errInputNil)
	}
	if input.Encounter == nil {
		return errors.InvalidArgument(errEncounterNil)
	}
	if input.Encounter.ID == "" {
		return errors.InvalidArgument(errEncounterIDNil)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.InvalidArgument(errEncounterIDNil)
	}
	return nil
}

func listLimit(input *ListInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultListLimit
	}
	return min(input.Limit, MaxListLimit)
}

func marshalEncounter(e *entities.Encounter) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal encounter")
	}
	return data, nil
}

func unmarshalEncounter(data []byte) (*entities.Encounter, error) {
	var e entities.Encounter
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter")
	}
	return &e, nil
}

// cloneEncounter deep-copies through JSON so stored records never alias caller memory
func cloneEncounter(e *entities.Encounter) (*entities.Encounter, error) {
	data, err := marshalEncounter(e)
	if err != nil {
		return nil, err
	}
	return unmarshalEncounter(data)
}
