package llm_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/llm"
	"github.com/remedyhq/remedy/pkg/utils/testutil"
)

func TestProviderAvailability(t *testing.T) {
	t.Run("anthropic without key is unavailable", func(t *testing.T) {
		gt.False(t, llm.NewAnthropic("").IsAvailable())
	})

	t.Run("anthropic with key is available", func(t *testing.T) {
		gt.True(t, llm.NewAnthropic("sk-test").IsAvailable())
	})

	t.Run("openai without key is unavailable", func(t *testing.T) {
		gt.False(t, llm.NewOpenAI("", "").IsAvailable())
	})

	t.Run("openai with key is available", func(t *testing.T) {
		gt.True(t, llm.NewOpenAI("sk-test", "").IsAvailable())
	})
}

func TestAnthropicLive(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_ANTHROPIC_API_KEY")
	model := testutil.GetEnvOrSkip(t, "TEST_ANTHROPIC_MODEL")

	provider := llm.NewAnthropic(types.LLMAPIKey(apiKey))
	resp := gt.R1(provider.Generate(context.Background(), &interfaces.GenerateInput{
		Prompt:      "Reply with the single word: pong",
		Model:       model,
		MaxTokens:   16,
		Temperature: 0,
	})).NoError(t)
	gt.True(t, resp != "")
}

func TestOpenAILive(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_OPENAI_API_KEY")
	model := testutil.GetEnvOrSkip(t, "TEST_OPENAI_MODEL")

	provider := llm.NewOpenAI(types.LLMAPIKey(apiKey), "")
	resp := gt.R1(provider.Generate(context.Background(), &interfaces.GenerateInput{
		Prompt:      "Reply with the single word: pong",
		Model:       model,
		MaxTokens:   16,
		Temperature: 0,
	})).NoError(t)
	gt.True(t, resp != "")
}
