package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/mock"
	"github.com/secmon-lab/leanport/pkg/domain/model"
	"github.com/secmon-lab/leanport/pkg/domain/types"
	"github.com/secmon-lab/leanport/pkg/infra"
	"github.com/secmon-lab/leanport/pkg/usecase"
)

func newMessagesRequest(t *testing.T) *model.MessagesRequest {
	t.Helper()
	req, err := model.NewMessagesRequest("myAppId", "myClientKey", "20190101", "leanplum", "dev_external")
	gt.NoError(t, err)
	return req
}

func TestExportMessages(t *testing.T) {
	vendor := &mock.VendorMock{
		FetchMessagesFunc: func(ctx context.Context) ([]model.Message, error) {
			return []model.Message{
				{ID: 1, Name: "welcome", Active: true, MessageType: "Push Notification", Created: 1546300800.5},
				{ID: 2, Name: "upsell", Active: false, MessageType: "In-App", Created: 1546387200},
			}, nil
		},
	}
	bq := &mock.BigQueryMock{
		LoadRowsFunc: func(ctx context.Context, table types.BQTableID, partition types.ExportDate, schema bigquery.Schema, rows []any) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithVendor(vendor),
		infra.WithBigQuery(bq),
	))

	result := gt.R1(uc.ExportMessages(context.Background(), newMessagesRequest(t))).NoError(t)
	gt.V(t, result.Table).Equal(types.BQTableID("leanplum_messages"))
	gt.V(t, result.Rows).Equal(2)

	calls := bq.LoadRowsCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Table).Equal(types.BQTableID("leanplum_messages"))
	gt.V(t, calls[0].Partition).Equal(types.ExportDate("20190101"))
	gt.V(t, len(calls[0].Rows)).Equal(2)

	row := calls[0].Rows[0].(model.MessageRow)
	gt.V(t, row.LoadDate).Equal("2019-01-01")
	gt.V(t, row.ID).Equal(int64(1))
	gt.V(t, row.Name).Equal("welcome")
}

func TestExportMessagesEmptyCatalog(t *testing.T) {
	vendor := &mock.VendorMock{
		FetchMessagesFunc: func(ctx context.Context) ([]model.Message, error) {
			return nil, nil
		},
	}
	bq := &mock.BigQueryMock{
		LoadRowsFunc: func(ctx context.Context, table types.BQTableID, partition types.ExportDate, schema bigquery.Schema, rows []any) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithVendor(vendor),
		infra.WithBigQuery(bq),
	))

	result := gt.R1(uc.ExportMessages(context.Background(), newMessagesRequest(t))).NoError(t)
	gt.V(t, result.Rows).Equal(0)

	// Truncating the partition with zero rows still clears stale content
	gt.V(t, len(bq.LoadRowsCalls())).Equal(1)
}

func TestExportMessagesFetchError(t *testing.T) {
	vendor := &mock.VendorMock{
		FetchMessagesFunc: func(ctx context.Context) ([]model.Message, error) {
			return nil, types.ErrVendorAuth
		},
	}
	bq := &mock.BigQueryMock{}

	uc := usecase.New(infra.New(
		infra.WithVendor(vendor),
		infra.WithBigQuery(bq),
	))

	_, err := uc.ExportMessages(context.Background(), newMessagesRequest(t))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrVendorAuth))
	gt.V(t, len(bq.LoadRowsCalls())).Equal(0)
}
