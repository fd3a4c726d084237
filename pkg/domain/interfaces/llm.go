package interfaces

//go:generate moq -out ../mock/llm_mock.go -pkg mock . CompletionProvider CompletionGateway

import "context"

// GenerateInput is a single prompt/response exchange request. Model and
// MaxTokens fall back to gateway defaults when zero-valued.
type GenerateInput struct {
	Prompt       string
	SystemPrompt string
	Model        string
	Temperature  float64
	MaxTokens    int64
}

// CompletionProvider is one concrete text-completion backend.
type CompletionProvider interface {
	Generate(ctx context.Context, input *GenerateInput) (string, error)
	IsAvailable() bool
}

// CompletionGateway resolves a configured provider and issues prompt/response
// exchanges. Generate fails with types.ErrNoProvider when no provider is
// available and with a wrapped types.ErrModelCall when the call itself fails.
type CompletionGateway interface {
	Generate(ctx context.Context, input *GenerateInput) (string, error)
	Available() bool
	DefaultProvider() string
	DefaultModel() string
}
