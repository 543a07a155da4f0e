package encounters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Encounter
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Encounter),
	}
}

// Upsert stores an encounter
func (r *InMemoryRepository) Upsert(_ context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if err := validateUpsert(input); err != nil {
		return nil, err
	}

	stored, err := cloneEncounter(input.Encounter)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[stored.ID] = stored

	return &UpsertOutput{Encounter: input.Encounter}, nil
}

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	encounter, err := cloneEncounter(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Encounter: encounter}, nil
}

// List returns stored encounters newest first
func (r *InMemoryRepository) List(_ context.Context, input *ListInput) (*ListOutput, error) {
	limit := listLimit(input)

	r.mu.RLock()
	all := make([]*entities.Encounter, 0, len(r.store))
	for _, e := range r.store {
		all = append(all, e)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}

	out := make([]*entities.Encounter, 0, len(all))
	for _, e := range all {
		c, err := cloneEncounter(e)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return &ListOutput{Encounters: out}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
