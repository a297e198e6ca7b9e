package render

import (
	"fmt"
	"sort"
	"strings"

	"batchreport/pkg/models"
	"batchreport/pkg/utils"
)

// DefaultTruncateLimit is the default maximum number of detail lines rendered
// per category in the text report. It is a tunable display threshold, not
// part of the report contract.
const DefaultTruncateLimit = 20

const (
	headerRule  = "============================================================"
	sectionRule = "--------------------"
	detailRule  = "----------------------------------------"
)

// Text renders the human-readable report for a finalized batch. The layout is
// fixed: header, statistics, metadata, error messages, then one detail block
// per non-empty category. Detail blocks are truncated after truncateLimit
// lines; pass a value <= 0 for the default.
func Text(result *models.Result, truncateLimit int) string {
	if truncateLimit <= 0 {
		truncateLimit = DefaultTruncateLimit
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("BATCH REPORT: %s\n", strings.ToUpper(result.Name)))
	sb.WriteString(headerRule + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", result.EndTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Status: %s\n", strings.ToUpper(string(result.Status))))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", utils.FormatDuration(result.Duration)))
	sb.WriteString(fmt.Sprintf("Start time: %s\n", result.StartTime.Format("15:04:05")))
	sb.WriteString(fmt.Sprintf("End time: %s\n", result.EndTime.Format("15:04:05")))

	// Statistics
	sb.WriteString("\n")
	sb.WriteString("STATISTICS:\n")
	sb.WriteString(sectionRule + "\n")
	sb.WriteString(fmt.Sprintf("Total items: %d\n", result.Statistics.TotalCount))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", result.Statistics.SuccessCount))
	sb.WriteString(fmt.Sprintf("Failed: %d\n", result.Statistics.FailedCount))
	sb.WriteString(fmt.Sprintf("Partial: %d\n", result.Statistics.PartialCount))
	sb.WriteString(fmt.Sprintf("Success rate: %.1f%%\n", result.Statistics.SuccessRate))

	// Metadata
	if len(result.Metadata) > 0 {
		sb.WriteString("\n")
		sb.WriteString("METADATA:\n")
		sb.WriteString(sectionRule + "\n")
		for _, key := range sortedKeys(result.Metadata) {
			sb.WriteString(fmt.Sprintf("%s: %v\n", utils.TitleKey(key), result.Metadata[key]))
		}
	}

	// Error messages
	if len(result.ErrorMessages) > 0 {
		sb.WriteString("\n")
		sb.WriteString("ERRORS:\n")
		sb.WriteString(sectionRule + "\n")
		for _, msg := range result.ErrorMessages {
			sb.WriteString(fmt.Sprintf("- %s\n", msg))
		}
	}

	// Per-category details; empty categories render nothing at all
	writeCategoryDetails(&sb, "SUCCESS", result.SuccessItems, false, truncateLimit)
	writeCategoryDetails(&sb, "FAILED", result.FailedItems, true, truncateLimit)
	writeCategoryDetails(&sb, "PARTIAL", result.PartialItems, true, truncateLimit)

	return sb.String()
}

// writeCategoryDetails appends one detail block for a non-empty category.
// Failed and partial lines carry the item's recorded reason when present.
func writeCategoryDetails(sb *strings.Builder, category string, items []*models.Item, withDetail bool, truncateLimit int) {
	if len(items) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s DETAILS (%d items):\n", category, len(items)))
	sb.WriteString(detailRule + "\n")

	shown := len(items)
	if shown > truncateLimit {
		shown = truncateLimit
	}

	for i := 0; i < shown; i++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, itemLine(items[i], withDetail)))
	}

	if omitted := len(items) - shown; omitted > 0 {
		sb.WriteString(fmt.Sprintf("... and %d more items\n", omitted))
	}
}

// itemLine renders a single detail line, falling back defensively when the
// item carries no recognizable display keys
func itemLine(item *models.Item, withDetail bool) string {
	if item == nil {
		return "unknown"
	}
	name := item.DisplayName()
	if withDetail {
		if detail := item.Detail(); detail != "" {
			return fmt.Sprintf("%s: %s", name, detail)
		}
	}
	return name
}

// sortedKeys returns metadata keys in a stable order so the report layout is
// deterministic
func sortedKeys(metadata map[string]interface{}) []string {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
