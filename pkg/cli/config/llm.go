package config

import (
	"log/slog"

	"github.com/remedyhq/remedy/pkg/domain/types"
	"github.com/remedyhq/remedy/pkg/llm"
	"github.com/urfave/cli/v3"
)

type LLM struct {
	provider string
	model    string

	anthropicAPIKey types.LLMAPIKey `masq:"secret"`
	openAIAPIKey    types.LLMAPIKey `masq:"secret"`
	openAIBaseURL   string
}

func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Default completion provider [openai|anthropic]",
			Category:    "LLM",
			Value:       "openai",
			Sources:     cli.EnvVars("REMEDY_LLM_PROVIDER"),
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Default completion model",
			Category:    "LLM",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("REMEDY_LLM_MODEL"),
			Destination: &x.model,
		},
		&cli.StringFlag{
			Name:        "anthropic-api-key",
			Usage:       "Anthropic API key",
			Category:    "LLM",
			Sources:     cli.EnvVars("REMEDY_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"),
			Destination: (*string)(&x.anthropicAPIKey),
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "LLM",
			Sources:     cli.EnvVars("REMEDY_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: (*string)(&x.openAIAPIKey),
		},
		&cli.StringFlag{
			Name:        "openai-base-url",
			Usage:       "OpenAI API base URL (for compatible gateways)",
			Category:    "LLM",
			Sources:     cli.EnvVars("REMEDY_OPENAI_BASE_URL"),
			Destination: &x.openAIBaseURL,
		},
	}
}

// NewGateway wires every configured provider into a completion gateway. A
// gateway without any available provider is still valid; calls through it
// fail with a configuration error.
func (x *LLM) NewGateway() *llm.Gateway {
	return llm.New(x.provider, x.model,
		llm.WithProvider("openai", llm.NewOpenAI(x.openAIAPIKey, x.openAIBaseURL)),
		llm.WithProvider("anthropic", llm.NewAnthropic(x.anthropicAPIKey)),
	)
}

func (x *LLM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("provider", x.provider),
		slog.Any("model", x.model),
		slog.Int("anthropicAPIKey.len", len(x.anthropicAPIKey)),
		slog.Int("openAIAPIKey.len", len(x.openAIAPIKey)),
		slog.Any("openAIBaseURL", x.openAIBaseURL),
	)
}
