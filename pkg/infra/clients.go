package infra

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/repository/memory"
)

type Clients struct {
	httpClient     *resty.Client
	gateway        interfaces.CompletionGateway
	scanRepository interfaces.ScanRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient:     resty.New().SetTimeout(30 * time.Second),
		scanRepository: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HTTPClient() *resty.Client {
	return x.httpClient
}
func (x *Clients) Gateway() interfaces.CompletionGateway {
	return x.gateway
}
func (x *Clients) ScanRepository() interfaces.ScanRepository {
	return x.scanRepository
}

func WithHTTPClient(client *resty.Client) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithGateway(gateway interfaces.CompletionGateway) Option {
	return func(x *Clients) {
		x.gateway = gateway
	}
}

func WithScanRepository(repo interfaces.ScanRepository) Option {
	return func(x *Clients) {
		x.scanRepository = repo
	}
}
