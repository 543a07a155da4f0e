package encounters

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// DefaultCacheTTL is how long a read stays cached when no TTL is configured
const DefaultCacheTTL = 5 * time.Minute

// CachedConfig contains configuration for the read-through cache
type CachedConfig struct {
	Next Repository
	TTL  time.Duration
}

// Validate validates the CachedConfig.
func (cfg *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg == nil || cfg.Next == nil {
		vb.RequiredField("Next")
	}
	return vb.Build()
}

type cachedRepository struct {
	next  Repository
	cache *cache.Cache
}

// NewCached wraps a repository with an in-process cache of Get results.
// Writes and deletes go to the wrapped repository first and then invalidate.
func NewCached(cfg *CachedConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &cachedRepository{
		next:  cfg.Next,
		cache: cache.New(ttl, 2*ttl),
	}, nil
}

func (r *cachedRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	out, err := r.next.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(input.Encounter.ID)
	return out, nil
}

func (r *cachedRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	if cached, found := r.cache.Get(input.ID); found {
		if e, ok := cached.(*entities.Encounter); ok {
			c, err := cloneEncounter(e)
			if err == nil {
				return &GetOutput{Encounter: c}, nil
			}
		}
		r.cache.Delete(input.ID)
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}

	stored, err := cloneEncounter(out.Encounter)
	if err != nil {
		return nil, err
	}
	r.cache.Set(input.ID, stored, cache.DefaultExpiration)

	return out, nil
}

// List is not cached; listings change with every write
func (r *cachedRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	return r.next.List(ctx, input)
}

func (r *cachedRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	out, err := r.next.Delete(ctx, input)
	if input != nil {
		r.cache.Delete(input.ID)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
