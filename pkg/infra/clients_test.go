package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leanport/pkg/domain/mock"
	"github.com/secmon-lab/leanport/pkg/infra"
)

func TestNewClients(t *testing.T) {
	t.Run("empty container has no clients", func(t *testing.T) {
		clients := infra.New()
		gt.True(t, clients.Vendor() == nil)
		gt.True(t, clients.Storage() == nil)
		gt.True(t, clients.BigQuery() == nil)
	})

	t.Run("options wire clients through", func(t *testing.T) {
		vendor := &mock.VendorMock{}
		storage := &mock.ObjectStorageMock{}
		bq := &mock.BigQueryMock{}

		clients := infra.New(
			infra.WithVendor(vendor),
			infra.WithStorage(storage),
			infra.WithBigQuery(bq),
		)

		gt.V(t, clients.Vendor()).Equal(vendor)
		gt.V(t, clients.Storage()).Equal(storage)
		gt.V(t, clients.BigQuery()).Equal(bq)
	})
}
