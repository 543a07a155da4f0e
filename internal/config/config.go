// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the full server configuration
type Config struct {
	GRPCPort int    `env:"RPG_FORGE_GRPC_PORT" envDefault:"50051"`
	HTTPPort int    `env:"RPG_FORGE_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"RPG_FORGE_LOG_LEVEL" envDefault:"info"`

	Storage    string        `env:"RPG_FORGE_STORAGE" envDefault:"memory"`
	RedisAddr  string        `env:"RPG_FORGE_REDIS_ADDR"`
	SQLitePath string        `env:"RPG_FORGE_SQLITE_PATH" envDefault:"rpg-forge.db"`
	CacheTTL   time.Duration `env:"RPG_FORGE_CACHE_TTL" envDefault:"5m"`

	MaxAttempts          int     `env:"RPG_FORGE_MAX_ATTEMPTS" envDefault:"3"`
	MinSubstantiveLength int     `env:"RPG_FORGE_MIN_SUBSTANTIVE_LENGTH" envDefault:"500"`
	Temperature          float64 `env:"RPG_FORGE_TEMPERATURE" envDefault:"0.8"`
	ProviderRetries      int     `env:"RPG_FORGE_PROVIDER_RETRIES" envDefault:"2"`
	RateLimitPerMinute   int     `env:"RPG_FORGE_RATE_LIMIT_PER_MINUTE" envDefault:"20"`

	OTELEndpoint string `env:"RPG_FORGE_OTEL_ENDPOINT"` // collector URL, e.g. http://localhost:4318

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"RPG_FORGE_ANTHROPIC_MODEL"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIModel     string `env:"RPG_FORGE_OPENAI_MODEL"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom reads the configuration from the given variables. It does not validate;
// callers apply flag overrides first and then call Validate.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks ranges, the storage choice and that at least one provider key is set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("RPG_FORGE_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("RPG_FORGE_HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	if c.GRPCPort == c.HTTPPort {
		vb.Field("RPG_FORGE_HTTP_PORT", "must differ from the gRPC port")
	}
	errors.ValidateEnum("RPG_FORGE_LOG_LEVEL", strings.ToLower(c.LogLevel),
		[]string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("RPG_FORGE_STORAGE", c.Storage,
		[]string{StorageMemory, StorageRedis, StorageSQLite}, vb)

	switch c.Storage {
	case StorageRedis:
		errors.ValidateRequired("RPG_FORGE_REDIS_ADDR", c.RedisAddr, vb)
	case StorageSQLite:
		errors.ValidateRequired("RPG_FORGE_SQLITE_PATH", c.SQLitePath, vb)
	}
	if c.CacheTTL < 0 {
		vb.Field("RPG_FORGE_CACHE_TTL", "must not be negative")
	}

	errors.ValidateRange("RPG_FORGE_MAX_ATTEMPTS", c.MaxAttempts, 1, 10, vb)
	if c.MinSubstantiveLength < 0 {
		vb.Field("RPG_FORGE_MIN_SUBSTANTIVE_LENGTH", "must not be negative")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		vb.Field("RPG_FORGE_TEMPERATURE", "must be between 0 and 2")
	}
	errors.ValidateRange("RPG_FORGE_PROVIDER_RETRIES", c.ProviderRetries, 0, 10, vb)
	if c.RateLimitPerMinute < 0 {
		vb.Field("RPG_FORGE_RATE_LIMIT_PER_MINUTE", "must not be negative")
	}

	if c.AnthropicAPIKey == "" && c.OpenAIAPIKey == "" {
		vb.Field("ANTHROPIC_API_KEY", "at least one of ANTHROPIC_API_KEY or OPENAI_API_KEY is required")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
