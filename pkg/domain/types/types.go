package types

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	AppID           string
	ClientKey       string
	ExportJobID     string
	BucketName      string
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	RunID           string
)

func (x AppID) String() string           { return string(x) }
func (x ExportJobID) String() string     { return string(x) }
func (x BucketName) String() string      { return string(x) }
func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

// ClientKey is a vendor API credential and must never appear in logs or
// error output.
func (x ClientKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ClientKey) String() string {
	return "***********"
}

// Secret returns the raw credential for building API requests.
func (x ClientKey) Secret() string {
	return string(x)
}

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string { return string(x) }

// ExportDate is a target day in YYYYMMDD form.
type ExportDate string

const exportDateLayout = "20060102"

// ParseExportDate validates that the given string is a real calendar date
// in YYYYMMDD form.
func ParseExportDate(s string) (ExportDate, error) {
	if _, err := time.Parse(exportDateLayout, s); err != nil {
		return "", goerr.Wrap(ErrInvalidOption, "date must be a valid YYYYMMDD date", goerr.V("date", s))
	}
	return ExportDate(s), nil
}

func (x ExportDate) String() string { return string(x) }

// Time returns the date as a UTC midnight timestamp. The date must have been
// built via ParseExportDate.
func (x ExportDate) Time() time.Time {
	t, _ := time.Parse(exportDateLayout, string(x))
	return t
}

// ISO returns the date in YYYY-MM-DD form for DATE typed columns.
func (x ExportDate) ISO() string {
	return x.Time().Format("2006-01-02")
}

// Stage identifies the pipeline stage a failure happened in.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageStage   Stage = "stage"
	StagePublish Stage = "publish"
)

func (x Stage) String() string { return string(x) }
