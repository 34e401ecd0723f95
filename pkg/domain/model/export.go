package model

import (
	"fmt"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

// ExportRequest is the immutable input of one export run. Build it with
// NewExportRequest so that every derived object path and table name is a
// pure function of validated fields.
type ExportRequest struct {
	AppID       types.AppID
	ClientKey   types.ClientKey
	Date        types.ExportDate
	Bucket      types.BucketName
	TablePrefix string
	Dataset     types.BQDatasetID
	EnvPrefix   string
}

func NewExportRequest(appID, clientKey, date, bucket, tablePrefix, dataset, envPrefix string) (*ExportRequest, error) {
	if appID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "app ID is empty")
	}
	if clientKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "client key is empty")
	}
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}
	if dataset == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery dataset is empty")
	}

	day, err := types.ParseExportDate(date)
	if err != nil {
		return nil, err
	}

	return &ExportRequest{
		AppID:       types.AppID(appID),
		ClientKey:   types.ClientKey(clientKey),
		Date:        day,
		Bucket:      types.BucketName(bucket),
		TablePrefix: tablePrefix,
		Dataset:     types.BQDatasetID(dataset),
		EnvPrefix:   envPrefix,
	}, nil
}

// DatePrefix is the object name prefix holding every staged file of this
// run: {envPrefix}/{tablePrefix}/{date}/. The trailing slash keeps prefix
// listing from matching sibling dates such as 201901011.
func (x *ExportRequest) DatePrefix() string {
	return path.Join(x.EnvPrefix, x.TablePrefix, x.Date.String()) + "/"
}

// ObjectName is the staged object name for one exported file.
func (x *ExportRequest) ObjectName(table types.LogicalTable, seq int) string {
	return path.Join(x.DatePrefix(), table.String(), fmt.Sprintf("%s-%05d.csv", table, seq))
}

// SourceURI is the wildcard GCS URI an external table reads one logical
// table from.
func (x *ExportRequest) SourceURI(table types.LogicalTable) string {
	return fmt.Sprintf("gs://%s/%s", x.Bucket, path.Join(x.DatePrefix(), table.String(), "*"))
}

// TableID names the external table for a logical table. The table prefix
// is omitted when empty.
func (x *ExportRequest) TableID(table types.LogicalTable) types.BQTableID {
	if x.TablePrefix == "" {
		return types.BQTableID(table.String())
	}
	return types.BQTableID(x.TablePrefix + "_" + table.String())
}

// ExportFile is one downloaded vendor file. It lives in a transient
// directory that is discarded when the run ends.
type ExportFile struct {
	Table     types.LogicalTable
	Seq       int
	LocalPath string
	Size      int64
}

// StagedObject is a staged file in object storage.
type StagedObject struct {
	Bucket types.BucketName
	Name   string
	Table  types.LogicalTable
}

// ExportOutcome distinguishes a completed run from a run that found no
// data for the date.
type ExportOutcome string

const (
	OutcomeDone   ExportOutcome = "done"
	OutcomeNoData ExportOutcome = "no-data"
)

// ExportResult summarizes a finished run.
type ExportResult struct {
	Outcome ExportOutcome
	Staged  []StagedObject
	Tables  []types.BQTableID
}
