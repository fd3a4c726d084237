package llm

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider implements the completion capability on the OpenAI chat
// completions API.
type OpenAIProvider struct {
	client  *resty.Client
	apiKey  types.LLMAPIKey
	baseURL string
}

var _ interfaces.CompletionProvider = &OpenAIProvider{}

func NewOpenAI(apiKey types.LLMAPIKey, baseURL string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	return &OpenAIProvider{
		client:  resty.New(),
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (x *OpenAIProvider) IsAvailable() bool {
	return x.apiKey != ""
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int64           `json:"max_tokens"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func (x *OpenAIProvider) Generate(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
	messages := []openAIMessage{}
	if input.SystemPrompt != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: input.SystemPrompt})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: input.Prompt})

	var result openAIChatResponse
	resp, err := x.client.R().
		SetContext(ctx).
		SetAuthToken(string(x.apiKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(&openAIChatRequest{
			Model:       input.Model,
			Messages:    messages,
			Temperature: input.Temperature,
			MaxTokens:   input.MaxTokens,
		}).
		SetResult(&result).
		Post(x.baseURL + "/chat/completions")
	if err != nil {
		return "", goerr.Wrap(err, "openai API call failed", goerr.V("model", input.Model))
	}
	if !resp.IsSuccess() {
		return "", goerr.New("openai API returned error status",
			goerr.V("status", resp.StatusCode()),
			goerr.V("body", resp.String()),
			goerr.V("model", input.Model),
		)
	}

	if len(result.Choices) == 0 {
		return "", goerr.New("no choices in openai response", goerr.V("model", input.Model))
	}

	return result.Choices[0].Message.Content, nil
}
