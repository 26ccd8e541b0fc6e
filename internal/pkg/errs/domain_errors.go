package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrListingNotFound = errors.New("listing not found")
	ErrUnknownRoomType = errors.New("unknown room type")

	// Reservation errors
	ErrValidationFailed   = errors.New("reservation validation failed")
	ErrDatesUnavailable   = errors.New("dates unavailable")
	ErrGatewayUnavailable = errors.New("booking gateway unavailable")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("reservation snapshot not found")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
