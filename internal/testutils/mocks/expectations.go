// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-forge/internal/clients/generation"
	generationmock "github.com/KirkDiggler/rpg-forge/internal/clients/generation/mock"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// ExpectCompletions sets up one Generate call per text, answered in order by the primary provider.
// The context is not matched because callers wrap it in tracing spans.
func ExpectCompletions(mockGen *generationmock.MockService, texts ...string) {
	calls := make([]any, 0, len(texts))
	for _, text := range texts {
		calls = append(calls, mockGen.EXPECT().
			Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&generation.Completion{Text: text, Provider: entities.ProviderPrimary}, nil))
	}
	gomock.InOrder(calls...)
}

// ExpectPrompts records every prompt sent and answers each with the same text
func ExpectPrompts(
	mockGen *generationmock.MockService,
	times int, text string, sink *[]*generation.Prompt,
) {
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt *generation.Prompt, _ *generation.Options) (*generation.Completion, error) {
			*sink = append(*sink, prompt)
			return &generation.Completion{Text: text, Provider: entities.ProviderPrimary}, nil
		}).
		Times(times)
}
