package interfaces

import (
	"context"

	"github.com/secmon-lab/leanport/pkg/domain/model"
)

type UseCase interface {
	Export(ctx context.Context, req *model.ExportRequest) (*model.ExportResult, error)
	ExportMessages(ctx context.Context, req *model.MessagesRequest) (*model.MessagesResult, error)
}
