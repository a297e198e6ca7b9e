package batch

import (
	"fmt"
	"time"

	"batchreport/pkg/models"
)

// BuildResult constructs an immutable Result directly from full outcome
// lists, bypassing the Collector for callers that already hold them. The
// status and statistics are derived from the list lengths; the lists and
// metadata are copied so later caller mutations don't leak into the result.
func BuildResult(name string, start, end time.Time, successItems, failedItems, partialItems []*models.Item, metadata map[string]interface{}, errorMessages []string) (*models.Result, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidTimeRange,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	stats := ComputeStatistics(len(successItems), len(failedItems), len(partialItems))

	return &models.Result{
		Name:          name,
		Status:        Classify(stats.SuccessCount, stats.FailedCount, stats.PartialCount),
		StartTime:     start,
		EndTime:       end,
		Duration:      end.Sub(start),
		Statistics:    stats,
		SuccessItems:  copyItems(successItems),
		FailedItems:   copyItems(failedItems),
		PartialItems:  copyItems(partialItems),
		Metadata:      copyMetadata(metadata),
		ErrorMessages: copyStrings(errorMessages),
	}, nil
}

func copyItems(items []*models.Item) []*models.Item {
	copied := make([]*models.Item, len(items))
	copy(copied, items)
	return copied
}

func copyStrings(values []string) []string {
	copied := make([]string, len(values))
	copy(copied, values)
	return copied
}

func copyMetadata(metadata map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(metadata))
	for key, value := range metadata {
		copied[key] = value
	}
	return copied
}
