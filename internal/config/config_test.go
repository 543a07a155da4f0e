package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/config"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) load(vars map[string]string) *config.Config {
	cfg, err := config.LoadFrom(vars)
	s.Require().NoError(err)
	return cfg
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := s.load(map[string]string{"ANTHROPIC_API_KEY": "sk-test"})

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(8080, cfg.HTTPPort)
	s.Equal(config.StorageMemory, cfg.Storage)
	s.Equal(5*time.Minute, cfg.CacheTTL)
	s.Equal(3, cfg.MaxAttempts)
	s.Equal(500, cfg.MinSubstantiveLength)
	s.InDelta(0.8, cfg.Temperature, 1e-9)
	s.Equal(2, cfg.ProviderRetries)
	s.Equal(20, cfg.RateLimitPerMinute)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg := s.load(map[string]string{
		"OPENAI_API_KEY":             "sk-openai",
		"RPG_FORGE_STORAGE":          "redis",
		"RPG_FORGE_REDIS_ADDR":       "localhost:6379",
		"RPG_FORGE_CACHE_TTL":        "30s",
		"RPG_FORGE_MAX_ATTEMPTS":     "5",
		"RPG_FORGE_LOG_LEVEL":        "debug",
		"RPG_FORGE_OPENAI_MODEL":     "gpt-4o-mini",
		"RPG_FORGE_OTEL_ENDPOINT":    "http://localhost:4318",
		"RPG_FORGE_TEMPERATURE":      "1.1",
		"RPG_FORGE_GRPC_PORT":        "9090",
		"RPG_FORGE_HTTP_PORT":        "9091",
		"RPG_FORGE_PROVIDER_RETRIES": "0",
	})

	s.Equal(config.StorageRedis, cfg.Storage)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(30*time.Second, cfg.CacheTTL)
	s.Equal(5, cfg.MaxAttempts)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Equal("gpt-4o-mini", cfg.OpenAIModel)
	s.Equal(0, cfg.ProviderRetries)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestParseError() {
	_, err := config.LoadFrom(map[string]string{"RPG_FORGE_MAX_ATTEMPTS": "three"})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name  string
		vars  map[string]string
		field string
	}{
		{"no provider key", map[string]string{}, "ANTHROPIC_API_KEY"},
		{"attempts too high", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_MAX_ATTEMPTS": "11"}, "RPG_FORGE_MAX_ATTEMPTS"},
		{"attempts zero", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_MAX_ATTEMPTS": "0"}, "RPG_FORGE_MAX_ATTEMPTS"},
		{"unknown storage", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_STORAGE": "postgres"}, "RPG_FORGE_STORAGE"},
		{"redis without address", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_STORAGE": "redis"}, "RPG_FORGE_REDIS_ADDR"},
		{"bad log level", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_LOG_LEVEL": "loud"}, "RPG_FORGE_LOG_LEVEL"},
		{"same ports", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_HTTP_PORT": "50051"}, "RPG_FORGE_HTTP_PORT"},
		{"temperature", map[string]string{"ANTHROPIC_API_KEY": "k", "RPG_FORGE_TEMPERATURE": "3"}, "RPG_FORGE_TEMPERATURE"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.load(tc.vars).Validate()

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestSQLitePath() {
	s.Run("empty variable keeps the default path", func() {
		cfg := s.load(map[string]string{
			"ANTHROPIC_API_KEY":     "k",
			"RPG_FORGE_STORAGE":     "sqlite",
			"RPG_FORGE_SQLITE_PATH": "",
		})

		s.Equal("rpg-forge.db", cfg.SQLitePath)
		s.NoError(cfg.Validate())
	})

	s.Run("sqlite storage chosen by flag without a path", func() {
		cfg := s.load(map[string]string{"ANTHROPIC_API_KEY": "k"})
		cfg.Storage = config.StorageSQLite
		cfg.SQLitePath = ""

		err := cfg.Validate()

		s.Require().Error(err)
		fields := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
		s.Contains(fields, "RPG_FORGE_SQLITE_PATH")
	})
}
