package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned for bad or missing arguments. It is
	// raised before any network client is constructed.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrVendorAuth means the vendor rejected the app ID / client key pair.
	// Not retryable.
	ErrVendorAuth = goerr.New("vendor authentication failed")

	// ErrExportNotReady means the vendor has not finished its own export
	// for the requested date. The invoking scheduler may re-run later.
	ErrExportNotReady = goerr.New("vendor export is not ready")

	// ErrVendorTransport is a network level failure talking to the vendor.
	ErrVendorTransport = goerr.New("vendor transport error")

	// ErrSchemaConflict means an existing table does not match the expected
	// external table definition. Requires operator intervention.
	ErrSchemaConflict = goerr.New("table schema conflict")

	// ErrNoData means the vendor produced zero files for the date.
	ErrNoData = goerr.New("no exported data for date")
)
