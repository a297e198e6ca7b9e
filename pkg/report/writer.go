// Package report is the file-writing collaborator for finalized batches: it
// owns the report file naming convention and output directory creation, and
// persists rendered report bytes. The reporting core itself performs no I/O.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"batchreport/pkg/logger"
	"batchreport/pkg/models"
	"batchreport/pkg/utils"
)

// Writer persists rendered reports under an output directory using the
// naming convention {batch_name}_{timestamp}_report.<ext>.
type Writer struct {
	outputDir      string
	organizeByDate bool
}

// NewWriter creates a writer rooted at outputDir. With organizeByDate set,
// reports are grouped into per-day subdirectories.
func NewWriter(outputDir string, organizeByDate bool) *Writer {
	return &Writer{
		outputDir:      outputDir,
		organizeByDate: organizeByDate,
	}
}

// WriteTextReport persists a rendered text report and returns its path
func (w *Writer) WriteTextReport(result *models.Result, content []byte) (string, error) {
	return w.write(result, content, "txt")
}

// WriteStructuredReport persists a rendered JSON report and returns its path
func (w *Writer) WriteStructuredReport(result *models.Result, content []byte) (string, error) {
	return w.write(result, content, "json")
}

func (w *Writer) write(result *models.Result, content []byte, ext string) (string, error) {
	dir := w.outputDir
	if w.organizeByDate {
		dir = filepath.Join(dir, result.EndTime.Format("2006-01-02"))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s_report.%s",
		utils.SanitizeBatchName(result.Name), utils.ReportTimestamp(result.EndTime), ext)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	logger.WithBatch(result.Name).WithField("file", path).Debug("Report written")
	return path, nil
}
