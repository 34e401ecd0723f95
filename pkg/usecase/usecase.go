package usecase

import (
	"github.com/secmon-lab/leanport/pkg/domain/interfaces"
	"github.com/secmon-lab/leanport/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}
