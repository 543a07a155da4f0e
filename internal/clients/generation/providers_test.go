package generation_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-forge/internal/clients/generation"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

type ProvidersTestSuite struct {
	suite.Suite
	ctx     context.Context
	status  int
	body    string
	request map[string]interface{}
	path    string
	server  *httptest.Server
}

func TestProvidersSuite(t *testing.T) {
	suite.Run(t, new(ProvidersTestSuite))
}

func (s *ProvidersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.status = http.StatusOK
	s.request = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &s.request)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = io.WriteString(w, s.body)
	}))
}

func (s *ProvidersTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ProvidersTestSuite) prompt() *generation.Prompt {
	return &generation.Prompt{System: "You are a dungeon master.", User: "Write an ambush."}
}

func (s *ProvidersTestSuite) TestAnthropic_Complete() {
	s.body = `{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",` +
		`"content":[{"type":"text","text":"### Goblin (CR 1/4, 50 XP)"}],` +
		`"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":20}}`

	p, err := generation.NewAnthropicProvider(&generation.AnthropicConfig{
		APIKey:  "test-key",
		Model:   "claude-test",
		BaseURL: s.server.URL + "/",
	})
	s.Require().NoError(err)

	text, err := p.Complete(s.ctx, s.prompt(), &generation.Options{Temperature: generation.Float(0.8)})

	s.Require().NoError(err)
	s.Equal("### Goblin (CR 1/4, 50 XP)", text)
	s.True(strings.HasSuffix(s.path, "/messages"))
	s.Equal("claude-test", s.request["model"])
	s.InDelta(0.8, s.request["temperature"], 1e-9)
	s.Equal(entities.ProviderPrimary, p.Label())
}

func (s *ProvidersTestSuite) TestAnthropic_StatusError() {
	s.status = http.StatusUnauthorized
	s.body = `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`

	p, err := generation.NewAnthropicProvider(&generation.AnthropicConfig{APIKey: "bad", BaseURL: s.server.URL + "/"})
	s.Require().NoError(err)

	_, err = p.Complete(s.ctx, s.prompt(), nil)

	var providerErr *generation.ProviderError
	s.Require().True(stderrors.As(err, &providerErr))
	s.Equal(http.StatusUnauthorized, providerErr.StatusCode)
	s.False(providerErr.Retryable())
}

func (s *ProvidersTestSuite) TestOpenAI_Complete() {
	s.body = `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-test",` +
		`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"### Wolf (CR 1/4)"}}]}`

	p, err := generation.NewOpenAIProvider(&generation.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-test",
		BaseURL: s.server.URL + "/",
	})
	s.Require().NoError(err)

	text, err := p.Complete(s.ctx, s.prompt(), nil)

	s.Require().NoError(err)
	s.Equal("### Wolf (CR 1/4)", text)
	s.True(strings.HasSuffix(s.path, "/chat/completions"))
	s.Equal("gpt-test", s.request["model"])
	s.NotContains(s.request, "temperature")
	s.Equal(entities.ProviderAlternative, p.Label())
}

func (s *ProvidersTestSuite) TestOpenAI_EmptyChoicesIsRetryable() {
	s.body = `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-test","choices":[]}`

	p, err := generation.NewOpenAIProvider(&generation.OpenAIConfig{APIKey: "k", BaseURL: s.server.URL + "/"})
	s.Require().NoError(err)

	_, err = p.Complete(s.ctx, s.prompt(), nil)

	s.Require().ErrorIs(err, generation.ErrEmptyCompletion)
	var providerErr *generation.ProviderError
	s.Require().True(stderrors.As(err, &providerErr))
	s.True(providerErr.Retryable())
}

func (s *ProvidersTestSuite) TestNewProviders_RequireAPIKey() {
	_, err := generation.NewAnthropicProvider(&generation.AnthropicConfig{})
	s.Error(err)

	_, err = generation.NewOpenAIProvider(nil)
	s.Error(err)
}
