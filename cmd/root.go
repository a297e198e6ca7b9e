package cmd

import (
	"fmt"

	"batchreport/internal/config"
	"batchreport/internal/outcomes"
	"batchreport/pkg/batch"
	"batchreport/pkg/logger"
	"batchreport/pkg/models"

	"github.com/spf13/cobra"
)

var (
	// Version information
	Version = "0.0.1"

	// CLI flags
	outputDir     string
	configFile    string
	truncateLimit int
	emitText      bool
	emitJSON      bool
	printSummary  bool
	verbose       bool
	quiet         bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "batchreport",
	Short:   "Batch Outcome Report Generator",
	Version: Version,
	Long: `Batchreport turns recorded per-item batch outcomes into consistent
human-readable text reports and machine-readable JSON reports.

It gives unrelated batch-processing tasks one reporting contract: record
each item as success, failed or partial while the batch runs, then finalize
to classify the batch, compute statistics and write the reports.`,
}

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <outcomes-file>",
	Short: "Render batch reports from a recorded outcomes file",
	Long: `Render replays a recorded outcomes file through the reporting core and
writes the text and JSON reports.

Outcomes File:
  A YAML document with the batch name, optional metadata, optional recorded
  start/end times, and the ordered outcome entries:

    name: nightly_import
    metadata:
      source: /data/incoming
    outcomes:
      - status: success
        item: {file: a.csv, rows: 120}
      - status: failed
        reason: "parse error at line 7"
        item: {file: b.csv}
      - status: partial
        reason: "3 rows skipped"
        item: {file: c.csv}

Examples:
  # Write both reports to the default output directory
  batchreport render outcomes.yml

  # Text report only, into a custom directory
  batchreport render outcomes.yml --output ./reports --json=false

  # Keep long batches readable
  batchreport render outcomes.yml --truncate 10

  # Use a configuration file for defaults
  batchreport render outcomes.yml --config .batchreport.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for reports")
	renderCmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	renderCmd.Flags().IntVar(&truncateLimit, "truncate", 0, "Maximum detail lines per category in the text report")
	renderCmd.Flags().BoolVar(&emitText, "text", true, "Write the text report")
	renderCmd.Flags().BoolVar(&emitJSON, "json", true, "Write the JSON report")
	renderCmd.Flags().BoolVar(&printSummary, "summary", true, "Print the console summary")
	renderCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	renderCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

// runRender executes the render command
func runRender(cmd *cobra.Command, args []string) error {
	// Configure logging based on flags
	if quiet {
		logger.SetQuiet()
	} else if verbose {
		logger.SetVerbose()
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	loader.OverrideWithFlags(cfg, &models.CLIOptions{
		Output:        outputDir,
		TruncateLimit: truncateLimit,
	})
	if cmd.Flags().Changed("text") {
		cfg.Report.Text = emitText
	}
	if cmd.Flags().Changed("json") {
		cfg.Report.JSON = emitJSON
	}
	if cmd.Flags().Changed("summary") {
		cfg.Report.PrintSummary = printSummary
	}

	if err := loader.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !verbose && !quiet {
		logger.SetLevel(cfg.Logging.Level)
	}

	path := args[0]
	logger.Logger.WithField("file", path).Info("Loading outcomes file")

	file, err := outcomes.Load(path)
	if err != nil {
		return err
	}

	collector, err := file.Replay()
	if err != nil {
		return err
	}

	success, failed, partial := collector.Counts()
	logger.WithBatch(file.Name).WithFields(map[string]interface{}{
		"success": success,
		"failed":  failed,
		"partial": partial,
	}).Debug("Outcomes replayed")

	result, err := collector.FinalizeAt(file.End(), &batch.Options{
		EmitText:        cfg.Report.Text,
		EmitStructured:  cfg.Report.JSON,
		PrintSummary:    cfg.Report.PrintSummary && !quiet,
		OutputDirectory: cfg.Output.Directory,
		OrganizeByDate:  cfg.Output.OrganizeByDate,
		TruncateLimit:   cfg.Report.TruncateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to finalize batch: %w", err)
	}

	logger.WithBatch(result.Name).WithFields(map[string]interface{}{
		"status":       string(result.Status),
		"total":        result.Statistics.TotalCount,
		"success_rate": fmt.Sprintf("%.1f%%", result.Statistics.SuccessRate),
		"output_dir":   cfg.Output.Directory,
	}).Info("Batch report generated")

	return nil
}
