// Package outcomes loads recorded batch outcome files and replays them
// through the reporting core. An outcomes file is a YAML document listing the
// batch name, optional metadata and an ordered sequence of per-item outcome
// entries, typically produced by an unrelated batch task that wants its
// reports generated after the fact.
package outcomes

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"batchreport/pkg/batch"
	"batchreport/pkg/models"
)

// File is a recorded batch: name, caller metadata and the ordered outcome
// entries. StartTime and EndTime are optional; when absent the replay instant
// is used.
type File struct {
	Name      string                 `yaml:"name"`
	Metadata  map[string]interface{} `yaml:"metadata"`
	StartTime time.Time              `yaml:"start_time"`
	EndTime   time.Time              `yaml:"end_time"`
	Outcomes  []Entry                `yaml:"outcomes"`
}

// Entry is a single recorded outcome
type Entry struct {
	Status string       `yaml:"status"`
	Reason string       `yaml:"reason"`
	Item   *models.Item `yaml:"item"`
}

// Load reads and parses an outcomes file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outcomes file: %w", err)
	}

	file := &File{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse outcomes file: %w", err)
	}

	if file.Name == "" {
		return nil, fmt.Errorf("outcomes file is missing a batch name")
	}
	if !file.EndTime.IsZero() {
		if file.StartTime.IsZero() {
			return nil, fmt.Errorf("outcomes file has end_time but no start_time")
		}
		if file.EndTime.Before(file.StartTime) {
			return nil, fmt.Errorf("outcomes file end_time precedes start_time")
		}
	}
	for i, entry := range file.Outcomes {
		switch entry.Status {
		case "success", "failed", "partial":
		default:
			return nil, fmt.Errorf("outcome %d has unknown status %q", i+1, entry.Status)
		}
	}

	return file, nil
}

// Replay feeds the recorded outcomes through a fresh collector in their
// original order. The returned collector is ready to finalize.
func (f *File) Replay() (*batch.Collector, error) {
	start := f.StartTime
	if start.IsZero() {
		start = time.Now()
	}
	collector := batch.NewCollectorAt(f.Name, f.Metadata, start)

	for i, entry := range f.Outcomes {
		item := entry.Item
		if item == nil {
			item = models.NewItem()
		}

		var err error
		switch entry.Status {
		case "success":
			err = collector.RecordSuccess(item)
		case "failed":
			err = collector.RecordFailed(item, entry.Reason)
		case "partial":
			err = collector.RecordPartial(item, entry.Reason)
		default:
			err = fmt.Errorf("unknown status %q", entry.Status)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to replay outcome %d: %w", i+1, err)
		}
	}

	return collector, nil
}

// End returns the recorded end time, or the current instant when the file
// does not carry one
func (f *File) End() time.Time {
	if f.EndTime.IsZero() {
		return time.Now()
	}
	return f.EndTime
}
