package types

import "log/slog"

// LLMAPIKey is an API key for a completion provider. It masks itself in logs.
type LLMAPIKey string

func (x LLMAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x LLMAPIKey) String() string {
	return "***********"
}
