package models

import (
	"time"
)

// Status represents the batch-level outcome classification
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPartial Status = "partial"
)

// Statistics contains the derived counters for a finished batch
type Statistics struct {
	TotalCount   int     `json:"total_count"`
	SuccessCount int     `json:"success_count"`
	FailedCount  int     `json:"failed_count"`
	PartialCount int     `json:"partial_count"`
	SuccessRate  float64 `json:"success_rate"`
}

// Result is the immutable snapshot of a finished batch. It is built exactly
// once, either by Collector.Finalize or directly through batch.BuildResult,
// and is the only input the renderers consume.
type Result struct {
	Name          string
	Status        Status
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Statistics    Statistics
	SuccessItems  []*Item
	FailedItems   []*Item
	PartialItems  []*Item
	Metadata      map[string]interface{}
	ErrorMessages []string
}

// Config represents the complete configuration for batchreport
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Directory      string `yaml:"directory"`
	OrganizeByDate bool   `yaml:"organize_by_date"`
}

// ReportConfig contains report generation settings
type ReportConfig struct {
	Text          bool `yaml:"text"`
	JSON          bool `yaml:"json"`
	PrintSummary  bool `yaml:"print_summary"`
	TruncateLimit int  `yaml:"truncate_limit"` // Maximum detail lines per category in the text report
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CLIOptions contains command-line options
type CLIOptions struct {
	Output        string
	ConfigFile    string
	TruncateLimit int
	Text          bool
	JSON          bool
	PrintSummary  bool
	Verbose       bool
	Quiet         bool
}
