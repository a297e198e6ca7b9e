package batch

import "errors"

var (
	// ErrBatchFinalized is returned when a recording operation or a second
	// Finalize is attempted on a collector that has already been finalized
	ErrBatchFinalized = errors.New("batch already finalized")

	// ErrInvalidTimeRange is returned when a batch end time precedes its start time
	ErrInvalidTimeRange = errors.New("batch end time precedes start time")
)
