package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID string
	datasetID string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID (detected from credentials if not set)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("LEANPORT_BQ_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "bq-dataset",
			Usage:       "BigQuery dataset for external tables",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("LEANPORT_BQ_DATASET"),
			Destination: &x.datasetID,
		},
	}
}

func (x *BigQuery) Dataset() string { return x.datasetID }

func (x *BigQuery) Validate() error {
	if x.datasetID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "bq-dataset is required")
	}
	return nil
}

func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return bq.New(ctx, types.GoogleProjectID(x.projectID), types.BQDatasetID(x.datasetID))
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
	)
}
