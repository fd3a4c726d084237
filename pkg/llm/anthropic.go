package llm

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

// AnthropicProvider implements the completion capability on the Anthropic
// Messages API.
type AnthropicProvider struct {
	api    *anthropic.Client
	apiKey types.LLMAPIKey
}

var _ interfaces.CompletionProvider = &AnthropicProvider{}

func NewAnthropic(apiKey types.LLMAPIKey) *AnthropicProvider {
	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(string(apiKey)))
	}
	client := anthropic.NewClient(opts...)

	return &AnthropicProvider{
		api:    &client,
		apiKey: apiKey,
	}
}

func (x *AnthropicProvider) IsAvailable() bool {
	return x.apiKey != ""
}

func (x *AnthropicProvider) Generate(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(input.Model),
		MaxTokens:   input.MaxTokens,
		Temperature: anthropic.Float(input.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input.Prompt)),
		},
	}
	if input.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: input.SystemPrompt},
		}
	}

	msg, err := x.api.Messages.New(ctx, params)
	if err != nil {
		return "", goerr.Wrap(err, "anthropic API call failed", goerr.V("model", input.Model))
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", goerr.New("no text content in anthropic response", goerr.V("model", input.Model))
}
