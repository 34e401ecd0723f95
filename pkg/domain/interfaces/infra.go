package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Vendor ObjectStorage BigQuery

import (
	"context"
	"io"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

// Vendor is the mobile analytics vendor's export API. FetchExport runs the
// whole start-poll-download flow and writes the resulting files into dir.
type Vendor interface {
	FetchExport(ctx context.Context, date types.ExportDate, dir string) ([]*model.ExportFile, error)
	FetchMessages(ctx context.Context) ([]model.Message, error)
}

// ObjectStorage is a bucket-bound object store client.
type ObjectStorage interface {
	Put(ctx context.Context, name string, r io.Reader) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

// BigQuery is a dataset-bound warehouse client.
type BigQuery interface {
	EnsureDataset(ctx context.Context) error
	GetTableMetadata(ctx context.Context, table types.BQTableID) (*bigquery.TableMetadata, error)
	CreateTable(ctx context.Context, table types.BQTableID, md *bigquery.TableMetadata) error
	DeleteTable(ctx context.Context, table types.BQTableID) error

	// LoadRows loads JSON rows into the table's date partition with
	// truncate semantics, creating the table if needed.
	LoadRows(ctx context.Context, table types.BQTableID, partition types.ExportDate, schema bigquery.Schema, rows []any) error
}
