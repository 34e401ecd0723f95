package usecase

import (
	"context"
	"os"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/schema"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/utils/logging"
	"github.com/secmon-lab/leanport/pkg/utils/safe"
)

// Export runs one export for a date: fetch the vendor's files, stage them
// in object storage under the deterministic date prefix, and register an
// external table per logical table. The first fatal error aborts the run
// with the failing stage attached. Zero exported files short-circuits to a
// no-data result without touching storage or the warehouse.
func (x *UseCase) Export(ctx context.Context, req *model.ExportRequest) (*model.ExportResult, error) {
	runID, ctx := logging.CtxRunID(ctx)
	ctx = logging.With(ctx, logging.From(ctx).With("runID", runID))
	logger := logging.From(ctx)

	logger.Info("starting export",
		"appID", req.AppID,
		"date", req.Date,
		"bucket", req.Bucket,
		"datePrefix", req.DatePrefix(),
		"dataset", req.Dataset,
	)

	dir, err := os.MkdirTemp("", "leanport-export-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp directory", goerr.V("stage", types.StageFetch))
	}
	defer safe.RemoveAll(dir)

	files, err := x.clients.Vendor().FetchExport(ctx, req.Date, dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch export files", goerr.V("stage", types.StageFetch), goerr.V("date", req.Date))
	}

	if len(files) == 0 {
		logger.Warn("vendor produced no files for date", "date", req.Date)
		return &model.ExportResult{Outcome: model.OutcomeNoData}, nil
	}

	logger.Info("fetched export files", "count", len(files))

	staged, err := x.stageFiles(ctx, req, files)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stage export files", goerr.V("stage", types.StageStage), goerr.V("date", req.Date))
	}

	logger.Info("staged export files", "count", len(staged))

	tables, err := x.publishTables(ctx, req, staged)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to publish tables", goerr.V("stage", types.StagePublish), goerr.V("date", req.Date))
	}

	logger.Info("export done", "tables", tables)

	return &model.ExportResult{
		Outcome: model.OutcomeDone,
		Staged:  staged,
		Tables:  tables,
	}, nil
}

// stageFiles clears the date prefix and uploads every fetched file to its
// deterministic object name. The clear plus deterministic names make a
// retry after a partial upload converge to the same final object set.
func (x *UseCase) stageFiles(ctx context.Context, req *model.ExportRequest, files []*model.ExportFile) ([]model.StagedObject, error) {
	storage := x.clients.Storage()

	stale, err := storage.List(ctx, req.DatePrefix())
	if err != nil {
		return nil, err
	}
	for _, name := range stale {
		if err := storage.Delete(ctx, name); err != nil {
			return nil, err
		}
	}
	if len(stale) > 0 {
		logging.From(ctx).Info("cleared staged objects of previous run", "prefix", req.DatePrefix(), "count", len(stale))
	}

	staged := make([]model.StagedObject, 0, len(files))
	for _, file := range files {
		fd, err := os.Open(file.LocalPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open export file", goerr.V("path", file.LocalPath))
		}

		name := req.ObjectName(file.Table, file.Seq)
		if err := storage.Put(ctx, name, fd); err != nil {
			safe.Close(fd)
			return nil, err
		}
		safe.Close(fd)

		staged = append(staged, model.StagedObject{
			Bucket: req.Bucket,
			Name:   name,
			Table:  file.Table,
		})
	}

	return staged, nil
}

// publishTables ensures the dataset exists and declares one external table
// per staged logical table, in the stable logical table order.
func (x *UseCase) publishTables(ctx context.Context, req *model.ExportRequest, staged []model.StagedObject) ([]types.BQTableID, error) {
	bqClient := x.clients.BigQuery()

	if err := bqClient.EnsureDataset(ctx); err != nil {
		return nil, err
	}

	present := map[types.LogicalTable]bool{}
	for _, obj := range staged {
		present[obj.Table] = true
	}

	var tables []types.BQTableID
	for _, logical := range types.LogicalTables() {
		if !present[logical] {
			continue
		}

		tableID := req.TableID(logical)
		if err := x.ensureExternalTable(ctx, req, logical, tableID); err != nil {
			return nil, err
		}
		tables = append(tables, tableID)
	}

	return tables, nil
}

// ensureExternalTable declares the external table for one logical table.
// Create if absent; no-op when the existing definition is equivalent;
// replace when only the source URIs differ (a new date); anything else is
// a schema conflict that needs an operator.
func (x *UseCase) ensureExternalTable(ctx context.Context, req *model.ExportRequest, logical types.LogicalTable, tableID types.BQTableID) error {
	bqClient := x.clients.BigQuery()

	tableSchema, err := schema.Get(logical)
	if err != nil {
		return err
	}

	md := &bigquery.TableMetadata{
		Name: tableID.String(),
		ExternalDataConfig: &bigquery.ExternalDataConfig{
			SourceFormat: bigquery.CSV,
			SourceURIs:   []string{req.SourceURI(logical)},
			Schema:       tableSchema,
			// rare corrupted values should be ignored instead of failing
			MaxBadRecords: 100,
			Options: &bigquery.CSVOptions{
				SkipLeadingRows:     1,
				AllowQuotedNewlines: true,
			},
		},
	}

	existing, err := bqClient.GetTableMetadata(ctx, tableID)
	if err != nil {
		return err
	}

	if existing == nil {
		logging.From(ctx).Info("creating external table", "table", tableID, "sourceURI", req.SourceURI(logical))
		return bqClient.CreateTable(ctx, tableID, md)
	}

	if existing.Type != bigquery.ExternalTable || existing.ExternalDataConfig == nil {
		return goerr.Wrap(types.ErrSchemaConflict, "existing table is not an external table", goerr.V("table", tableID))
	}
	if !bqs.Equal(existing.Schema, tableSchema) {
		return goerr.Wrap(types.ErrSchemaConflict, "existing table schema differs", goerr.V("table", tableID))
	}

	if sameSourceURIs(existing.ExternalDataConfig.SourceURIs, md.ExternalDataConfig.SourceURIs) {
		logging.From(ctx).Info("external table is up to date", "table", tableID)
		return nil
	}

	logging.From(ctx).Info("replacing external table for new date", "table", tableID, "sourceURI", req.SourceURI(logical))
	if err := bqClient.DeleteTable(ctx, tableID); err != nil {
		return err
	}
	return bqClient.CreateTable(ctx, tableID, md)
}

func sameSourceURIs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
