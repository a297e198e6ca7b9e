package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	t.Run("should have correct use", func(t *testing.T) {
		assert.Equal(t, "batchreport", RootCmd.Use)
	})

	t.Run("should register the render command", func(t *testing.T) {
		found := false
		for _, sub := range RootCmd.Commands() {
			if sub.Name() == "render" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestRenderCmd(t *testing.T) {
	t.Run("should have correct use", func(t *testing.T) {
		assert.Equal(t, "render <outcomes-file>", renderCmd.Use)
	})

	t.Run("should require exactly one arg", func(t *testing.T) {
		cmd := &cobra.Command{}

		assert.Error(t, renderCmd.Args(cmd, []string{}))
		assert.NoError(t, renderCmd.Args(cmd, []string{"outcomes.yml"}))
		assert.Error(t, renderCmd.Args(cmd, []string{"a.yml", "b.yml"}))
	})

	t.Run("should register its flags", func(t *testing.T) {
		for _, flag := range []string{"output", "config", "truncate", "text", "json", "summary", "verbose", "quiet"} {
			assert.NotNil(t, renderCmd.Flags().Lookup(flag), "missing flag %s", flag)
		}
	})
}

func TestRunRender(t *testing.T) {
	outcomesContent := `
name: nightly_import
metadata:
  source: /data/incoming
outcomes:
  - status: success
    item: {file: a.csv}
  - status: failed
    reason: "parse error"
    item: {file: b.csv}
`

	writeFile := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("should write both reports for a valid outcomes file", func(t *testing.T) {
		dir := t.TempDir()
		outcomesPath := writeFile(t, dir, "outcomes.yml", outcomesContent)
		outputDir := filepath.Join(dir, "reports")

		RootCmd.SetArgs([]string{"render", outcomesPath, "--output", outputDir, "--summary=false", "--quiet"})
		require.NoError(t, RootCmd.Execute())

		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		names := []string{entries[0].Name(), entries[1].Name()}
		assert.Contains(t, names[0]+names[1], "nightly_import_")
		assert.Contains(t, names[0]+names[1], "_report.txt")
		assert.Contains(t, names[0]+names[1], "_report.json")
	})

	t.Run("should fail for a missing outcomes file", func(t *testing.T) {
		RootCmd.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.yml"), "--quiet"})
		assert.Error(t, RootCmd.Execute())
	})

	t.Run("should fail for an invalid truncate limit from config", func(t *testing.T) {
		dir := t.TempDir()
		outcomesPath := writeFile(t, dir, "outcomes.yml", outcomesContent)
		configPath := writeFile(t, dir, "config.yml", "report:\n  truncate_limit: -1\n")

		RootCmd.SetArgs([]string{"render", outcomesPath, "--config", configPath, "--quiet"})
		assert.Error(t, RootCmd.Execute())
	})
}
