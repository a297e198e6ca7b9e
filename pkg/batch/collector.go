package batch

import (
	"time"

	"batchreport/pkg/models"
)

// Collector accumulates per-item outcomes while a batch runs. It is owned by
// a single logical task and is not safe for concurrent use; callers that
// report from multiple goroutines must serialize access themselves.
//
// A collector is live until Finalize is called, after which every recording
// operation returns ErrBatchFinalized.
type Collector struct {
	name          string
	metadata      map[string]interface{}
	startTime     time.Time
	successItems  []*models.Item
	failedItems   []*models.Item
	partialItems  []*models.Item
	errorMessages []string
	finalized     bool
}

// NewCollector creates a collector for the named batch, fixing the start time
// to the creation instant. Metadata is optional caller context carried into
// the final report verbatim.
func NewCollector(name string, metadata map[string]interface{}) *Collector {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Collector{
		name:      name,
		metadata:  metadata,
		startTime: time.Now(),
	}
}

// NewCollectorAt creates a collector with an explicit start time, for callers
// replaying a batch that was recorded earlier.
func NewCollectorAt(name string, metadata map[string]interface{}, start time.Time) *Collector {
	c := NewCollector(name, metadata)
	c.startTime = start
	return c
}

// Name returns the batch name
func (c *Collector) Name() string {
	return c.name
}

// StartTime returns the instant the collector was created
func (c *Collector) StartTime() time.Time {
	return c.startTime
}

// Counts returns the number of recorded success, failed and partial items
func (c *Collector) Counts() (success, failed, partial int) {
	return len(c.successItems), len(c.failedItems), len(c.partialItems)
}

// RecordSuccess records an item that was processed successfully. The item's
// shape is never validated.
func (c *Collector) RecordSuccess(item *models.Item) error {
	if c.finalized {
		return ErrBatchFinalized
	}
	c.successItems = append(c.successItems, item)
	return nil
}

// RecordFailed records an item that failed outright. A non-empty reason is
// stamped into the item under "error" and collected into the batch error
// messages.
func (c *Collector) RecordFailed(item *models.Item, reason string) error {
	if c.finalized {
		return ErrBatchFinalized
	}
	if item != nil && reason != "" {
		item.Set("error", reason)
	}
	c.failedItems = append(c.failedItems, item)
	if reason != "" {
		c.errorMessages = append(c.errorMessages, reason)
	}
	return nil
}

// RecordPartial records an item that was only partially processed. A
// non-empty reason is stamped into the item under "partial_reason" and
// collected into the batch error messages.
func (c *Collector) RecordPartial(item *models.Item, reason string) error {
	if c.finalized {
		return ErrBatchFinalized
	}
	if item != nil && reason != "" {
		item.Set("partial_reason", reason)
	}
	c.partialItems = append(c.partialItems, item)
	if reason != "" {
		c.errorMessages = append(c.errorMessages, reason)
	}
	return nil
}
