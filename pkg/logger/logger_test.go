package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			SetLevel(tt.level)
			assert.Equal(t, tt.expected, Logger.GetLevel())
		})
	}

	// Restore the default for other tests
	SetLevel("info")
}

func TestSetQuietAndVerbose(t *testing.T) {
	SetQuiet()
	assert.Equal(t, logrus.ErrorLevel, Logger.GetLevel())

	SetVerbose()
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	SetLevel("info")
}

func TestWithBatch(t *testing.T) {
	entry := WithBatch("nightly_import")
	assert.Equal(t, "nightly_import", entry.Data["batch"])
}
