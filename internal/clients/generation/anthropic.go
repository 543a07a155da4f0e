package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

const (
	// DefaultAnthropicModel is used when no model is configured
	DefaultAnthropicModel = string(anthropic.ModelClaude3_5SonnetLatest)

	anthropicMaxTokens = 4096
)

// AnthropicConfig configures the Anthropic messages provider
type AnthropicConfig struct {
	APIKey  string
	Model   string
	Label   entities.ProviderLabel
	BaseURL string
}

// AnthropicProvider completes prompts with the Anthropic messages API
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
	label  entities.ProviderLabel
}

// NewAnthropicProvider creates a provider. SDK retries are disabled; the fallback service owns retrying.
func NewAnthropicProvider(cfg *AnthropicConfig) (*AnthropicProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errRequired("APIKey")
	}

	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(cfg.APIKey),
		anthropicoption.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, anthropicoption.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	label := cfg.Label
	if label == "" {
		label = entities.ProviderPrimary
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
		label:  label,
	}, nil
}

// Name returns the provider name used in logs and error metadata
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Label returns the label reported to callers
func (p *AnthropicProvider) Label() entities.ProviderLabel {
	return p.label
}

// Complete sends one messages request
func (p *AnthropicProvider) Complete(ctx context.Context, prompt *Prompt, opts *Options) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(p.model)),
		MaxTokens: anthropic.F(int64(anthropicMaxTokens)),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(prompt.System),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		}),
	}
	if opts != nil && opts.Temperature != nil {
		params.Temperature = anthropic.F(*opts.Temperature)
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Provider: p.Name(), StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}

	var text strings.Builder
	for _, block := range message.Content {
		text.WriteString(block.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &ProviderError{Provider: p.Name(), Err: ErrEmptyCompletion}
	}

	return text.String(), nil
}
