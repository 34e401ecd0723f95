package bq

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/interfaces"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client is a BigQuery client bound to one dataset.
type Client struct {
	bqClient *bigquery.Client
	dataset  types.BQDatasetID
}

var _ interfaces.BigQuery = (*Client)(nil)

// New creates a dataset-bound client. When projectID is empty the project
// is detected from the ambient credentials.
func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, options ...option.ClientOption) (*Client, error) {
	project := projectID.String()
	if project == "" {
		project = bigquery.DetectProjectID
	}

	bqClient, err := bigquery.NewClient(ctx, project, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
	}, nil
}

// EnsureDataset implements interfaces.BigQuery. An already existing
// dataset is not an error.
func (x *Client) EnsureDataset(ctx context.Context) error {
	err := x.bqClient.Dataset(x.dataset.String()).Create(ctx, &bigquery.DatasetMetadata{})
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == http.StatusConflict {
			return nil
		}
		return goerr.Wrap(err, "failed to create dataset", goerr.V("dataset", x.dataset))
	}

	return nil
}

// GetTableMetadata implements interfaces.BigQuery. If the table does not
// exist, it returns nil.
func (x *Client) GetTableMetadata(ctx context.Context, table types.BQTableID) (*bigquery.TableMetadata, error) {
	md, err := x.bqClient.Dataset(x.dataset.String()).Table(table.String()).Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", table))
	}

	return md, nil
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, table types.BQTableID, md *bigquery.TableMetadata) error {
	if err := x.bqClient.Dataset(x.dataset.String()).Table(table.String()).Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", table))
	}
	return nil
}

// DeleteTable implements interfaces.BigQuery. Deleting a missing table is
// not an error.
func (x *Client) DeleteTable(ctx context.Context, table types.BQTableID) error {
	err := x.bqClient.Dataset(x.dataset.String()).Table(table.String()).Delete(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == http.StatusNotFound {
			return nil
		}
		return goerr.Wrap(err, "failed to delete table", goerr.V("dataset", x.dataset), goerr.V("table", table))
	}

	return nil
}

// LoadRows implements interfaces.BigQuery. Rows are serialized as
// newline-delimited JSON and loaded into the table's date partition with
// truncate semantics, so re-running a date replaces the partition.
func (x *Client) LoadRows(ctx context.Context, table types.BQTableID, partition types.ExportDate, schema bigquery.Schema, rows []any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return goerr.Wrap(err, "failed to encode row", goerr.V("table", table))
		}
	}

	src := bigquery.NewReaderSource(&buf)
	src.SourceFormat = bigquery.JSON
	src.Schema = schema

	dest := table.String() + "$" + partition.String()
	loader := x.bqClient.Dataset(x.dataset.String()).Table(dest).LoaderFrom(src)
	loader.WriteDisposition = bigquery.WriteTruncate
	loader.CreateDisposition = bigquery.CreateIfNeeded
	loader.SchemaUpdateOptions = []string{"ALLOW_FIELD_ADDITION"}
	loader.TimePartitioning = &bigquery.TimePartitioning{
		Field:                  "load_date",
		RequirePartitionFilter: true,
	}

	job, err := loader.Run(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to start load job", goerr.V("dataset", x.dataset), goerr.V("table", dest))
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to wait load job", goerr.V("dataset", x.dataset), goerr.V("table", dest))
	}
	if err := status.Err(); err != nil {
		return goerr.Wrap(err, "load job failed", goerr.V("dataset", x.dataset), goerr.V("table", dest))
	}

	return nil
}

func (x *Client) Close() error {
	return x.bqClient.Close()
}
