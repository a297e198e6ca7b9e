package report

import (
	"fmt"
	"io"
	"strings"

	"batchreport/pkg/models"
	"batchreport/pkg/utils"
)

const summaryRule = "============================================================"

// PrintSummary writes the short interactive summary for a finished batch
func PrintSummary(w io.Writer, result *models.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintf(w, "BATCH COMPLETED: %s\n", strings.ToUpper(result.Name))
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintf(w, "Status: %s\n", strings.ToUpper(string(result.Status)))
	fmt.Fprintf(w, "Duration: %s\n", utils.FormatDuration(result.Duration))
	fmt.Fprintf(w, "Total: %d | Succeeded: %d | Failed: %d | Partial: %d\n",
		result.Statistics.TotalCount,
		result.Statistics.SuccessCount,
		result.Statistics.FailedCount,
		result.Statistics.PartialCount)

	if result.Statistics.TotalCount > 0 {
		fmt.Fprintf(w, "Success rate: %.1f%%\n", result.Statistics.SuccessRate)
	}
	if len(result.ErrorMessages) > 0 {
		fmt.Fprintf(w, "Errors: %d\n", len(result.ErrorMessages))
	}

	fmt.Fprintln(w, summaryRule)
}
