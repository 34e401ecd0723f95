package infra

import (
	"github.com/secmon-lab/leanport/pkg/domain/interfaces"
)

type Clients struct {
	vendorClient  interfaces.Vendor
	storageClient interfaces.ObjectStorage
	bqClient      interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Vendor() interfaces.Vendor {
	return x.vendorClient
}
func (x *Clients) Storage() interfaces.ObjectStorage {
	return x.storageClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithVendor(client interfaces.Vendor) Option {
	return func(x *Clients) {
		x.vendorClient = client
	}
}

func WithStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.storageClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
