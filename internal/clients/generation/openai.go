package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = string(openai.ChatModelGPT4o)

// OpenAIConfig configures the OpenAI chat completions provider
type OpenAIConfig struct {
	APIKey  string
	Model   string
	Label   entities.ProviderLabel
	BaseURL string
}

// OpenAIProvider completes prompts with the OpenAI chat completions API
type OpenAIProvider struct {
	client openai.Client
	model  string
	label  entities.ProviderLabel
}

// NewOpenAIProvider creates a provider. SDK retries are disabled; the fallback service owns retrying.
func NewOpenAIProvider(cfg *OpenAIConfig) (*OpenAIProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errRequired("APIKey")
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openaioption.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	label := cfg.Label
	if label == "" {
		label = entities.ProviderAlternative
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
		label:  label,
	}, nil
}

// Name returns the provider name used in logs and error metadata
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Label returns the label reported to callers
func (p *OpenAIProvider) Label() entities.ProviderLabel {
	return p.label
}

// Complete sends one chat completion request
func (p *OpenAIProvider) Complete(ctx context.Context, prompt *Prompt, opts *Options) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
	if opts != nil && opts.Temperature != nil {
		params.Temperature = openai.Float(*opts.Temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Provider: p.Name(), StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &ProviderError{Provider: p.Name(), Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", &ProviderError{Provider: p.Name(), Err: ErrEmptyCompletion}
	}

	return resp.Choices[0].Message.Content, nil
}
