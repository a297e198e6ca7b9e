package batch

import (
	"batchreport/pkg/models"
)

// Classify reduces category counts into the overall batch status. Only counts
// matter, never item content. An empty batch classifies as success: nothing
// was attempted, so nothing failed.
func Classify(successCount, failedCount, partialCount int) models.Status {
	total := successCount + failedCount + partialCount

	switch {
	case total == 0:
		return models.StatusSuccess
	case failedCount == 0 && partialCount == 0:
		return models.StatusSuccess
	case successCount == 0 && partialCount == 0:
		return models.StatusFailed
	default:
		return models.StatusPartial
	}
}

// ComputeStatistics derives the counters and success rate from the category
// counts. The rate is a percentage in [0, 100], kept at full precision; an
// empty batch reports 0.0 to avoid dividing by zero.
func ComputeStatistics(successCount, failedCount, partialCount int) models.Statistics {
	total := successCount + failedCount + partialCount

	rate := 0.0
	if total > 0 {
		rate = float64(successCount) / float64(total) * 100
	}

	return models.Statistics{
		TotalCount:   total,
		SuccessCount: successCount,
		FailedCount:  failedCount,
		PartialCount: partialCount,
		SuccessRate:  rate,
	}
}
