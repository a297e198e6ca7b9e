package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"batchreport/pkg/models"
	"batchreport/pkg/render"
)

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads configuration from file or returns default config
func (l *Loader) LoadConfig(configFile string) (*models.Config, error) {
	config := l.getDefaultConfig()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	return config, nil
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *models.Config {
	return &models.Config{
		Output: models.OutputConfig{
			Directory:      "./batch-reports",
			OrganizeByDate: false,
		},
		Report: models.ReportConfig{
			Text:          true,
			JSON:          true,
			PrintSummary:  true,
			TruncateLimit: render.DefaultTruncateLimit,
		},
		Logging: models.LoggingConfig{
			Level: "info",
		},
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *models.Config, flags *models.CLIOptions) {
	if flags.Output != "" {
		config.Output.Directory = flags.Output
	}
	if flags.TruncateLimit > 0 {
		config.Report.TruncateLimit = flags.TruncateLimit
	}
}

// ValidateConfig validates the configuration
func (l *Loader) ValidateConfig(config *models.Config) error {
	if config.Output.Directory == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	if config.Report.TruncateLimit <= 0 {
		return fmt.Errorf("truncate_limit must be greater than 0")
	}

	switch config.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level: %s", config.Logging.Level)
	}

	return nil
}
