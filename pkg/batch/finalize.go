package batch

import (
	"fmt"
	"os"
	"time"

	"batchreport/pkg/logger"
	"batchreport/pkg/models"
	"batchreport/pkg/render"
	"batchreport/pkg/report"
)

// Sink receives rendered report bytes for persistence. The production sink is
// report.Writer; tests substitute their own.
type Sink interface {
	WriteTextReport(result *models.Result, content []byte) (string, error)
	WriteStructuredReport(result *models.Result, content []byte) (string, error)
}

// Options control what Finalize does beyond building the result. The zero
// value (or a nil pointer) builds the result and nothing else.
type Options struct {
	// EmitText renders the text report and hands it to the sink
	EmitText bool
	// EmitStructured renders the JSON report and hands it to the sink
	EmitStructured bool
	// PrintSummary writes the short console summary to stdout
	PrintSummary bool
	// OutputDirectory is where the default sink writes reports. Ignored when
	// a Sink is supplied explicitly.
	OutputDirectory string
	// OrganizeByDate groups reports into per-day subdirectories
	OrganizeByDate bool
	// TruncateLimit caps detail lines per category in the text report;
	// <= 0 means render.DefaultTruncateLimit
	TruncateLimit int
	// Sink overrides the default file writer
	Sink Sink
}

// Finalize snapshots the collector into an immutable Result at the current
// instant and, per the options, renders and persists the reports. Finalizing
// is terminal: the collector rejects any further recording and any second
// Finalize with ErrBatchFinalized.
func (c *Collector) Finalize(opts *Options) (*models.Result, error) {
	return c.FinalizeAt(time.Now(), opts)
}

// FinalizeAt is Finalize with an explicit end time. The end time must not
// precede the collector's start time.
func (c *Collector) FinalizeAt(end time.Time, opts *Options) (*models.Result, error) {
	if c.finalized {
		return nil, ErrBatchFinalized
	}

	result, err := BuildResult(c.name, c.startTime, end,
		c.successItems, c.failedItems, c.partialItems, c.metadata, c.errorMessages)
	if err != nil {
		return nil, err
	}
	c.finalized = true

	if opts == nil {
		return result, nil
	}
	if err := emitReports(result, opts); err != nil {
		return result, err
	}
	return result, nil
}

// emitReports renders and hands off the requested reports for a finalized
// result. Path construction and directory creation stay inside the sink.
func emitReports(result *models.Result, opts *Options) error {
	sink := opts.Sink
	if sink == nil && opts.OutputDirectory != "" {
		sink = report.NewWriter(opts.OutputDirectory, opts.OrganizeByDate)
	}

	if opts.EmitText && sink != nil {
		content := render.Text(result, opts.TruncateLimit)
		path, err := sink.WriteTextReport(result, []byte(content))
		if err != nil {
			return fmt.Errorf("failed to save text report: %w", err)
		}
		logger.WithBatch(result.Name).WithField("file", path).Info("Text report saved")
	}

	if opts.EmitStructured && sink != nil {
		content, err := render.StructuredJSON(result)
		if err != nil {
			return err
		}
		path, err := sink.WriteStructuredReport(result, content)
		if err != nil {
			return fmt.Errorf("failed to save structured report: %w", err)
		}
		logger.WithBatch(result.Name).WithField("file", path).Info("Structured report saved")
	}

	if opts.PrintSummary {
		report.PrintSummary(os.Stdout, result)
	}
	return nil
}
