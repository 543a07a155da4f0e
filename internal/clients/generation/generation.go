// Package generation is the client side of the text-completion providers used to write encounters
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/KirkDiggler/rpg-forge/internal/clients/generation Service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Prompt is a system and user message pair
type Prompt struct {
	System string
	User   string
}

// Options tune a single completion. A nil Temperature leaves the provider default.
type Options struct {
	Temperature *float64
}

// Completion is the text returned by whichever provider answered
type Completion struct {
	Text     string
	Provider entities.ProviderLabel
}

// Service produces completions. It returns an error only when no configured provider could answer;
// that error carries errors.CodeResourceExhausted, or the context code when the caller gave up.
type Service interface {
	Generate(ctx context.Context, prompt *Prompt, opts *Options) (*Completion, error)
}

// Provider is one backing completion API
type Provider interface {
	Name() string
	Label() entities.ProviderLabel
	Complete(ctx context.Context, prompt *Prompt, opts *Options) (string, error)
}

// ProviderError is a failed provider call. StatusCode is 0 for transport failures.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same provider may succeed on another try
func (e *ProviderError) Retryable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusRequestTimeout,
		e.StatusCode == http.StatusConflict,
		e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= http.StatusInternalServerError
	}
}

// ErrEmptyCompletion is returned by providers that answered without any text
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// Float returns a pointer to f, for Options.Temperature
func Float(f float64) *float64 {
	return &f
}
