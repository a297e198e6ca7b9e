package batch

import (
	"testing"
	"time"

	"batchreport/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	t.Run("should fix start time at creation", func(t *testing.T) {
		before := time.Now()
		collector := NewCollector("import", nil)
		after := time.Now()

		assert.Equal(t, "import", collector.Name())
		assert.False(t, collector.StartTime().Before(before))
		assert.False(t, collector.StartTime().After(after))
	})

	t.Run("should accept nil metadata", func(t *testing.T) {
		collector := NewCollector("import", nil)

		result, err := collector.Finalize(nil)
		require.NoError(t, err)
		assert.NotNil(t, result.Metadata)
		assert.Empty(t, result.Metadata)
	})
}

func TestCollector_Record(t *testing.T) {
	t.Run("should preserve insertion order per category", func(t *testing.T) {
		collector := NewCollector("import", nil)

		require.NoError(t, collector.RecordSuccess(models.NewItem().Set("file", "a.csv")))
		require.NoError(t, collector.RecordFailed(models.NewItem().Set("file", "b.csv"), "broken header"))
		require.NoError(t, collector.RecordSuccess(models.NewItem().Set("file", "c.csv")))
		require.NoError(t, collector.RecordPartial(models.NewItem().Set("file", "d.csv"), "rows skipped"))

		result, err := collector.Finalize(nil)
		require.NoError(t, err)

		require.Len(t, result.SuccessItems, 2)
		assert.Equal(t, "a.csv", result.SuccessItems[0].DisplayName())
		assert.Equal(t, "c.csv", result.SuccessItems[1].DisplayName())
		require.Len(t, result.FailedItems, 1)
		require.Len(t, result.PartialItems, 1)
	})

	t.Run("should collect error messages from failed and partial items", func(t *testing.T) {
		collector := NewCollector("import", nil)

		require.NoError(t, collector.RecordFailed(models.NewItem().Set("file", "b.csv"), "broken header"))
		require.NoError(t, collector.RecordPartial(models.NewItem().Set("file", "d.csv"), "rows skipped"))

		result, err := collector.Finalize(nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"broken header", "rows skipped"}, result.ErrorMessages)
	})

	t.Run("should stamp reasons into the items", func(t *testing.T) {
		collector := NewCollector("import", nil)
		failed := models.NewItem().Set("file", "b.csv")
		partial := models.NewItem().Set("file", "d.csv")

		require.NoError(t, collector.RecordFailed(failed, "broken header"))
		require.NoError(t, collector.RecordPartial(partial, "rows skipped"))

		assert.Equal(t, "broken header", failed.Detail())
		assert.Equal(t, "rows skipped", partial.Detail())
	})

	t.Run("should not collect empty reasons", func(t *testing.T) {
		collector := NewCollector("import", nil)

		require.NoError(t, collector.RecordFailed(models.NewItem().Set("file", "b.csv"), ""))

		result, err := collector.Finalize(nil)
		require.NoError(t, err)
		assert.Empty(t, result.ErrorMessages)
	})

	t.Run("should report counts while live", func(t *testing.T) {
		collector := NewCollector("import", nil)

		require.NoError(t, collector.RecordSuccess(models.NewItem()))
		require.NoError(t, collector.RecordSuccess(models.NewItem()))
		require.NoError(t, collector.RecordFailed(models.NewItem(), "boom"))

		success, failed, partial := collector.Counts()
		assert.Equal(t, 2, success)
		assert.Equal(t, 1, failed)
		assert.Equal(t, 0, partial)
	})
}

func TestCollector_FinalizeIsTerminal(t *testing.T) {
	t.Run("should reject recording after finalize", func(t *testing.T) {
		collector := NewCollector("import", nil)

		_, err := collector.Finalize(nil)
		require.NoError(t, err)

		assert.ErrorIs(t, collector.RecordSuccess(models.NewItem()), ErrBatchFinalized)
		assert.ErrorIs(t, collector.RecordFailed(models.NewItem(), "boom"), ErrBatchFinalized)
		assert.ErrorIs(t, collector.RecordPartial(models.NewItem(), "meh"), ErrBatchFinalized)
	})

	t.Run("should reject a second finalize", func(t *testing.T) {
		collector := NewCollector("import", nil)

		_, err := collector.Finalize(nil)
		require.NoError(t, err)

		_, err = collector.Finalize(nil)
		assert.ErrorIs(t, err, ErrBatchFinalized)
	})

	t.Run("should reject an end time before the start time", func(t *testing.T) {
		collector := NewCollector("import", nil)

		_, err := collector.FinalizeAt(collector.StartTime().Add(-time.Second), nil)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		// A failed finalize must not consume the collector
		assert.NoError(t, collector.RecordSuccess(models.NewItem()))
		_, err = collector.Finalize(nil)
		assert.NoError(t, err)
	})
}
