package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/schema"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
)

// ExportMessages fetches the vendor's message catalog and loads it into
// the date partition of the messages table, replacing the partition's
// previous content.
func (x *UseCase) ExportMessages(ctx context.Context, req *model.MessagesRequest) (*model.MessagesResult, error) {
	runID, ctx := logging.CtxRunID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With("runID", runID))
	logger := logging.From(ctx)

	logger.Info("starting message export",
		"appID", req.AppID,
		"date", req.Date,
		"dataset", req.Dataset,
		"table", req.TableID(),
	)

	messages, err := x.clients.Vendor().FetchMessages(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch message catalog", goerr.V("stage", types.StageFetch), goerr.V("date", req.Date))
	}

	logger.Info("retrieved messages", "count", len(messages))

	tableSchema, err := schema.Get(types.TableMessages)
	if err != nil {
		return nil, err
	}

	rows := make([]any, 0, len(messages))
	for _, msg := range messages {
		rows = append(rows, msg.Row(req.Date))
	}

	if err := x.clients.BigQuery().LoadRows(ctx, req.TableID(), req.Date, tableSchema, rows); err != nil {
		return nil, goerr.Wrap(err, "failed to load message rows", goerr.V("stage", types.StagePublish), goerr.V("date", req.Date))
	}

	logger.Info("message export done", "table", req.TableID(), "rows", len(rows))

	return &model.MessagesResult{
		Table: req.TableID(),
		Rows:  len(rows),
	}, nil
}
