package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/types"
)

func newTestRequest(t *testing.T) *model.ExportRequest {
	t.Helper()
	req, err := model.NewExportRequest(
		"myAppId", "myClientKey", "20190101",
		"gcs-leanplum-export", "leanplum", "dev_external", "dev",
	)
	gt.NoError(t, err)
	return req
}

func TestExportRequestPaths(t *testing.T) {
	req := newTestRequest(t)

	t.Run("date prefix", func(t *testing.T) {
		gt.V(t, req.DatePrefix()).Equal("dev/leanplum/20190101/")
	})

	t.Run("object name", func(t *testing.T) {
		gt.V(t, req.ObjectName(types.TableSessions, 0)).Equal("dev/leanplum/20190101/sessions/sessions-00000.csv")
		gt.V(t, req.ObjectName(types.TableEvents, 12)).Equal("dev/leanplum/20190101/events/events-00012.csv")
	})

	t.Run("source URI", func(t *testing.T) {
		gt.V(t, req.SourceURI(types.TableSessions)).Equal("gs://gcs-leanplum-export/dev/leanplum/20190101/sessions/*")
	})

	t.Run("table name", func(t *testing.T) {
		gt.V(t, req.TableID(types.TableSessions)).Equal(types.BQTableID("leanplum_sessions"))
	})

	t.Run("paths are deterministic", func(t *testing.T) {
		other := newTestRequest(t)
		for _, tbl := range types.LogicalTables() {
			gt.V(t, other.ObjectName(tbl, 3)).Equal(req.ObjectName(tbl, 3))
			gt.V(t, other.SourceURI(tbl)).Equal(req.SourceURI(tbl))
		}
	})
}

func TestExportRequestWithoutPrefixes(t *testing.T) {
	req, err := model.NewExportRequest(
		"myAppId", "myClientKey", "20190101",
		"gcs-leanplum-export", "", "dev_external", "",
	)
	gt.NoError(t, err)

	gt.V(t, req.DatePrefix()).Equal("20190101/")
	gt.V(t, req.TableID(types.TableSessions)).Equal(types.BQTableID("sessions"))
	gt.V(t, req.SourceURI(types.TableEvents)).Equal("gs://gcs-leanplum-export/20190101/events/*")
}

func TestNewExportRequestValidation(t *testing.T) {
	testCases := map[string]struct {
		appID     string
		clientKey string
		date      string
		bucket    string
		dataset   string
	}{
		"empty app ID":      {"", "key", "20190101", "bucket", "ds"},
		"empty client key":  {"app", "", "20190101", "bucket", "ds"},
		"empty bucket":      {"app", "key", "20190101", "", "ds"},
		"empty dataset":     {"app", "key", "20190101", "bucket", ""},
		"empty date":        {"app", "key", "", "bucket", "ds"},
		"dashed date":       {"app", "key", "2019-01-01", "bucket", "ds"},
		"not a date":        {"app", "key", "2019010x", "bucket", "ds"},
		"impossible date":   {"app", "key", "20190231", "bucket", "ds"},
		"month out of range": {"app", "key", "20191301", "bucket", "ds"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := model.NewExportRequest(tc.appID, tc.clientKey, tc.date, tc.bucket, "leanplum", tc.dataset, "dev")
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestMessagesRequest(t *testing.T) {
	req, err := model.NewMessagesRequest("myAppId", "myClientKey", "20190101", "leanplum", "dev_external")
	gt.NoError(t, err)
	gt.V(t, req.TableID()).Equal(types.BQTableID("leanplum_messages"))

	t.Run("row carries partition date", func(t *testing.T) {
		msg := model.Message{ID: 42, Name: "welcome", Active: true, MessageType: "Push Notification", Created: 1546300800.25}
		row := msg.Row(req.Date)
		gt.V(t, row.LoadDate).Equal("2019-01-01")
		gt.V(t, row.ID).Equal(int64(42))
		gt.V(t, row.Created).Equal(1546300800.25)
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		_, err := model.NewMessagesRequest("myAppId", "myClientKey", "20190231", "leanplum", "dev_external")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
