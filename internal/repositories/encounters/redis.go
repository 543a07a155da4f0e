package encounters

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-forge/internal/redis"
)

const (
	encounterKeyPrefix = "encounter:"
	// createdIndexKey is a sorted set of encounter IDs scored by creation time
	createdIndexKey = "encounter:index:created"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis encounter repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed encounter repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if err := validateUpsert(input); err != nil {
		return nil, err
	}

	data, err := marshalEncounter(input.Encounter)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, encounterKeyPrefix+input.Encounter.ID, data, 0)
	pipe.ZAdd(ctx, createdIndexKey, redis.Z{
		Score:  float64(input.Encounter.CreatedAt.UnixMilli()),
		Member: input.Encounter.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store encounter")
	}

	return &UpsertOutput{Encounter: input.Encounter}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, encounterKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("encounter %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get encounter")
	}

	encounter, err := unmarshalEncounter(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Encounter: encounter}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	limit := listLimit(input)

	ids, err := r.client.ZRevRange(ctx, createdIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read encounter index")
	}
	if len(ids) == 0 {
		return &ListOutput{Encounters: []*entities.Encounter{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, encounterKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to load encounters")
	}

	out := make([]*entities.Encounter, 0, len(ids))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if err == redis.Nil {
			slog.Warn("encounter index references a missing record", "encounter_id", ids[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load encounter %s", ids[i])
		}
		encounter, err := unmarshalEncounter(data)
		if err != nil {
			return nil, err
		}
		out = append(out, encounter)
	}

	return &ListOutput{Encounters: out}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, encounterKeyPrefix+input.ID)
	pipe.ZRem(ctx, createdIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("encounter %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
