package render

import (
	"encoding/json"
	"fmt"

	"batchreport/pkg/models"
	"batchreport/pkg/utils"
)

// structuredTimeLayout carries microsecond precision plus the UTC offset so
// parsed timestamps are unambiguous
const structuredTimeLayout = "2006-01-02T15:04:05.000000-07:00"

// BatchInfo describes the batch in the structured report
type BatchInfo struct {
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	DurationSeconds   float64 `json:"duration_seconds"`
	DurationFormatted string  `json:"duration_formatted"`
}

// CategoryResults holds the verbatim, untruncated item lists per category
type CategoryResults struct {
	SuccessItems []*models.Item `json:"success_items"`
	FailedItems  []*models.Item `json:"failed_items"`
	PartialItems []*models.Item `json:"partial_items"`
}

// StructuredReport is the machine-readable report. Its field names are an
// external contract; consumers parse them by name.
type StructuredReport struct {
	BatchInfo     BatchInfo              `json:"batch_info"`
	Statistics    models.Statistics      `json:"statistics"`
	Metadata      map[string]interface{} `json:"metadata"`
	ErrorMessages []string               `json:"error_messages"`
	Results       CategoryResults        `json:"results"`
}

// Structured builds the machine-readable report value. Unlike the text
// renderer it never truncates; the item lists are carried verbatim.
func Structured(result *models.Result) *StructuredReport {
	return &StructuredReport{
		BatchInfo: BatchInfo{
			Name:              result.Name,
			Status:            string(result.Status),
			StartTime:         result.StartTime.Format(structuredTimeLayout),
			EndTime:           result.EndTime.Format(structuredTimeLayout),
			DurationSeconds:   result.Duration.Seconds(),
			DurationFormatted: utils.FormatDuration(result.Duration),
		},
		Statistics:    result.Statistics,
		Metadata:      nonNilMetadata(result.Metadata),
		ErrorMessages: nonNilStrings(result.ErrorMessages),
		Results: CategoryResults{
			SuccessItems: nonNilItems(result.SuccessItems),
			FailedItems:  nonNilItems(result.FailedItems),
			PartialItems: nonNilItems(result.PartialItems),
		},
	}
}

// StructuredJSON renders the structured report as indented JSON
func StructuredJSON(result *models.Result) ([]byte, error) {
	data, err := json.MarshalIndent(Structured(result), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structured report: %w", err)
	}
	return data, nil
}

// The nonNil helpers keep empty collections as [] / {} in the JSON output
// instead of null.

func nonNilItems(items []*models.Item) []*models.Item {
	if items == nil {
		return []*models.Item{}
	}
	return items
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilMetadata(metadata map[string]interface{}) map[string]interface{} {
	if metadata == nil {
		return map[string]interface{}{}
	}
	return metadata
}
