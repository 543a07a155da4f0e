package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-forge/internal/clients/generation"
	"github.com/KirkDiggler/rpg-forge/internal/config"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/redis"
	"github.com/KirkDiggler/rpg-forge/internal/repositories/encounters"
)

// buildRepository opens the configured store. Redis and SQLite are fronted by the
// read-through cache when a cache TTL is set.
func buildRepository(ctx context.Context, cfg *config.Config) (encounters.Repository, func(), error) {
	var (
		repo    encounters.Repository
		closeFn = func() {}
	)

	switch cfg.Storage {
	case config.StorageRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		repo, err = encounters.NewRedis(&encounters.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis repository: %w", err)
		}
		closeFn = func() { _ = client.Close() }
	case config.StorageSQLite:
		sqliteRepo, err := encounters.NewSQLite(&encounters.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite repository: %w", err)
		}
		repo = sqliteRepo
		closeFn = func() {
			if err := sqliteRepo.Close(); err != nil {
				slog.Warn("Failed to close sqlite repository", "error", err)
			}
		}
	default:
		return encounters.NewInMemory(), closeFn, nil
	}

	if cfg.CacheTTL > 0 {
		cached, err := encounters.NewCached(&encounters.CachedConfig{Next: repo, TTL: cfg.CacheTTL})
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("failed to create encounter cache: %w", err)
		}
		repo = cached
	}

	return repo, closeFn, nil
}

// buildGenerator tries Anthropic first and OpenAI second, skipping whichever has no key
func buildGenerator(cfg *config.Config) (generation.Service, error) {
	var providers []generation.Provider

	if cfg.AnthropicAPIKey != "" {
		p, err := generation.NewAnthropicProvider(&generation.AnthropicConfig{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.AnthropicModel,
			Label:  entities.ProviderPrimary,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic provider: %w", err)
		}
		providers = append(providers, p)
	}

	if cfg.OpenAIAPIKey != "" {
		p, err := generation.NewOpenAIProvider(&generation.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Label:  entities.ProviderAlternative,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai provider: %w", err)
		}
		providers = append(providers, p)
	}

	for _, p := range providers {
		slog.Info("Generation provider configured", "provider", p.Name(), "label", p.Label())
	}

	service, err := generation.NewFallbackService(&generation.FallbackConfig{
		Providers:  providers,
		MaxRetries: cfg.ProviderRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}
	return service, nil
}
