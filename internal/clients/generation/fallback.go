package generation

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

const (
	// DefaultMaxRetries is how many extra tries a provider gets on retryable failures
	DefaultMaxRetries = 2

	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxInterval     = 5 * time.Second
)

// FallbackConfig holds the dependencies for the fallback service
type FallbackConfig struct {
	// Providers are tried in order
	Providers []Provider
	// MaxRetries is the number of extra tries per provider. Negative means none.
	MaxRetries int
	// NewBackOff builds the retry schedule for one provider call; nil uses an exponential schedule
	NewBackOff func() backoff.BackOff
}

// Validate ensures all required dependencies are provided
func (c *FallbackConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Providers) == 0 {
		vb.RequiredField("Providers")
	}
	for _, p := range c.Providers {
		if p == nil {
			vb.InvalidField("Providers", "must not contain nil providers")
			break
		}
	}

	return vb.Build()
}

type fallbackService struct {
	providers  []Provider
	maxRetries int
	newBackOff func() backoff.BackOff
}

// NewFallbackService creates a Service that tries each provider in order until one answers
func NewFallbackService(cfg *FallbackConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	newBackOff := cfg.NewBackOff
	if newBackOff == nil {
		newBackOff = func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = defaultInitialInterval
			b.MaxInterval = defaultMaxInterval
			return b
		}
	}

	return &fallbackService{
		providers:  cfg.Providers,
		maxRetries: max(cfg.MaxRetries, 0),
		newBackOff: newBackOff,
	}, nil
}

func (s *fallbackService) Generate(ctx context.Context, prompt *Prompt, opts *Options) (*Completion, error) {
	if prompt == nil {
		return nil, errors.InvalidArgument("prompt is required")
	}

	failures := make(map[string]string, len(s.providers))
	for _, p := range s.providers {
		text, err := s.complete(ctx, p, prompt, opts)
		if err == nil {
			return &Completion{Text: text, Provider: p.Label()}, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.FromContext(ctxErr, "generation stopped")
		}

		slog.Warn("generation provider failed",
			"provider", p.Name(),
			"label", p.Label(),
			"error", err)
		failures[p.Name()] = err.Error()
	}

	return nil, errors.GenerationUnavailable(failures)
}

func (s *fallbackService) complete(ctx context.Context, p Provider, prompt *Prompt, opts *Options) (string, error) {
	operation := func() (string, error) {
		text, err := p.Complete(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}

		var providerErr *ProviderError
		if stderrors.As(err, &providerErr) && !providerErr.Retryable() {
			return "", backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(uint(s.maxRetries+1)))
}

func errRequired(field string) error {
	return errors.NewValidationBuilder().RequiredField(field).Build()
}
