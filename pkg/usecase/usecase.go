package usecase

import (
	"github.com/remedyhq/remedy/pkg/domain/interfaces"
	"github.com/remedyhq/remedy/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = &UseCase{}

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
