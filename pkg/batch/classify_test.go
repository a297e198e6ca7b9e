package batch

import (
	"testing"

	"batchreport/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		success  int
		failed   int
		partial  int
		expected models.Status
	}{
		{"empty batch is success", 0, 0, 0, models.StatusSuccess},
		{"all success", 5, 0, 0, models.StatusSuccess},
		{"all failed", 0, 4, 0, models.StatusFailed},
		{"mix of success and failed", 3, 1, 0, models.StatusPartial},
		{"only partial", 0, 0, 2, models.StatusPartial},
		{"failed and partial", 0, 2, 1, models.StatusPartial},
		{"success and partial", 4, 0, 1, models.StatusPartial},
		{"all three categories", 3, 1, 1, models.StatusPartial},
		{"single success", 1, 0, 0, models.StatusSuccess},
		{"single failure", 0, 1, 0, models.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.success, tt.failed, tt.partial))
		})
	}
}

func TestComputeStatistics(t *testing.T) {
	t.Run("should compute counts and rate", func(t *testing.T) {
		stats := ComputeStatistics(85, 10, 5)

		assert.Equal(t, 100, stats.TotalCount)
		assert.Equal(t, 85, stats.SuccessCount)
		assert.Equal(t, 10, stats.FailedCount)
		assert.Equal(t, 5, stats.PartialCount)
		assert.Equal(t, 85.0, stats.SuccessRate)
	})

	t.Run("should report zero rate for empty batch", func(t *testing.T) {
		stats := ComputeStatistics(0, 0, 0)

		assert.Equal(t, 0, stats.TotalCount)
		assert.Equal(t, 0.0, stats.SuccessRate)
	})

	t.Run("should keep full precision", func(t *testing.T) {
		stats := ComputeStatistics(1, 2, 0)

		assert.InDelta(t, 33.333333, stats.SuccessRate, 0.0001)
	})

	t.Run("should keep counts consistent", func(t *testing.T) {
		cases := [][3]int{{0, 0, 0}, {5, 0, 0}, {3, 1, 1}, {0, 4, 0}, {7, 2, 9}}
		for _, c := range cases {
			stats := ComputeStatistics(c[0], c[1], c[2])
			assert.Equal(t, stats.TotalCount, stats.SuccessCount+stats.FailedCount+stats.PartialCount)
			assert.GreaterOrEqual(t, stats.SuccessRate, 0.0)
			assert.LessOrEqual(t, stats.SuccessRate, 100.0)
		}
	})
}
