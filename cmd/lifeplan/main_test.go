package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"LIFEPLAN_FORMAT", "LIFEPLAN_DEBUG", "LIFEPLAN_NOW", "ENV_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "household.yaml")
	_, _, err := runCLI(t, "example", "--output", path)
	require.NoError(t, err)
	return path
}

func TestExampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.yaml")
	stdout, _, err := runCLI(t, "example", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Example household written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "family_members:")

	stdout, _, err = runCLI(t, "example", "--output", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "settings:")
}

func TestValidateCommand(t *testing.T) {
	path := writeExample(t)

	stdout, _, err := runCLI(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid (0 warnings)")

	_, _, err = runCLI(t, "validate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProjectCommandConsole(t *testing.T) {
	path := writeExample(t)

	stdout, _, err := runCLI(t, "project", "--config", path, "--now", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CASH FLOW PROJECTION")
	assert.Contains(t, stdout, "Ages:                 34-90")
	assert.Contains(t, stdout, "Purchase: Apartment")
}

func TestProjectCommandJSONIsReproducible(t *testing.T) {
	path := writeExample(t)

	first, _, err := runCLI(t, "project", "--config", path, "--format", "json", "--now", "2025-01-01")
	require.NoError(t, err)
	second, _, err := runCLI(t, "project", "--config", path, "--format", "json", "--now", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var decoded struct {
		Records []struct {
			Age int `json:"age"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &decoded))
	require.Len(t, decoded.Records, 57)
	assert.Equal(t, 34, decoded.Records[0].Age)
}

func TestProjectCommandWritesFile(t *testing.T) {
	path := writeExample(t)
	out := filepath.Join(t.TempDir(), "ledger.csv")

	_, stderr, err := runCLI(t, "project", "-c", path, "-f", "csv", "-o", out, "--now", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, stderr, "csv report written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 58, "header plus one row per age")
}

func TestProjectCommandDebugLogging(t *testing.T) {
	path := writeExample(t)

	_, stderr, err := runCLI(t, "project", "--config", path, "--now", "2025-01-01", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG projecting ages 34..90")
}

func TestProjectCommandErrors(t *testing.T) {
	path := writeExample(t)

	_, _, err := runCLI(t, "project", "--config", path, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, _, err = runCLI(t, "project", "--config", path, "--now", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --now date")

	_, _, err = runCLI(t, "project")
	assert.Error(t, err, "--config is required")
}
