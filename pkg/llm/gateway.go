// Package llm provides the completion gateway and its provider backends.
package llm

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/domain/types"
)

const (
	defaultMaxTokens = 2000
)

// Gateway routes prompt/response exchanges to a configured provider. It is
// constructed once by the composition root and injected into each component;
// there is no hidden global instance.
type Gateway struct {
	providers       map[string]interfaces.CompletionProvider
	defaultProvider string
	defaultModel    string
}

var _ interfaces.CompletionGateway = &Gateway{}

type Option func(*Gateway)

func WithProvider(name string, provider interfaces.CompletionProvider) Option {
	return func(x *Gateway) {
		x.providers[name] = provider
	}
}

func New(defaultProvider, defaultModel string, options ...Option) *Gateway {
	gw := &Gateway{
		providers:       map[string]interfaces.CompletionProvider{},
		defaultProvider: defaultProvider,
		defaultModel:    defaultModel,
	}
	for _, opt := range options {
		opt(gw)
	}
	return gw
}

// resolve returns the default provider if it is configured and available,
// otherwise it falls back to the first available provider in name order so
// selection stays deterministic.
func (x *Gateway) resolve() (interfaces.CompletionProvider, error) {
	if p, ok := x.providers[x.defaultProvider]; ok && p.IsAvailable() {
		return p, nil
	}

	names := make([]string, 0, len(x.providers))
	for name := range x.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := x.providers[name]; p.IsAvailable() {
			return p, nil
		}
	}

	return nil, goerr.Wrap(types.ErrNoProvider, "no configured provider is available",
		goerr.V("requested", x.defaultProvider),
		goerr.V("configured", names),
	)
}

func (x *Gateway) Generate(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
	provider, err := x.resolve()
	if err != nil {
		return "", err
	}

	req := *input
	if req.Model == "" {
		req.Model = x.defaultModel
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}

	resp, err := provider.Generate(ctx, &req)
	if err != nil {
		return "", goerr.Wrap(types.ErrModelCall, "completion request failed",
			goerr.V("model", req.Model),
			goerr.V("cause", err.Error()),
		)
	}

	return resp, nil
}

func (x *Gateway) Available() bool {
	_, err := x.resolve()
	return err == nil
}

func (x *Gateway) DefaultProvider() string {
	return x.defaultProvider
}

func (x *Gateway) DefaultModel() string {
	return x.defaultModel
}
