package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHelpCommands(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"run", "--help"},
		{"config", "--help"},
		{"spinners", "--help"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := execute(t, args...)
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestCommandStructure(t *testing.T) {
	var names []string
	for _, sub := range newRootCmd().Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"run", "config", "spinners"} {
		assert.Contains(t, names, want)
	}
}

func TestConfigCommand_PrintsNormalizedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("animationLight = \"spinner:dot\"\nautoHide = true\nloop = true\n"), 0o600))

	out, errOut, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "animationLight")
	assert.Contains(t, out, "spinner:dot")
	assert.Contains(t, out, "loop = false")
	assert.Contains(t, errOut, "loop disabled")
}

func TestConfigCommand_YAML(t *testing.T) {
	out, errOut, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "none.toml"), "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "backgroundLight:")
	assert.Contains(t, out, "#FFFFFF")
	assert.Contains(t, errOut, "defaults")
}

func TestConfigCommand_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("animationLight = ["), 0o600))

	_, _, err := execute(t, "config", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSpinnersCommand(t *testing.T) {
	out, _, err := execute(t, "spinners")
	require.NoError(t, err)
	assert.Contains(t, out, "spinner:globe\n")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curtain.log")
	logger, closeLog, err := newLogger(path, "debug")
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	_, _, err = newLogger("", "loud")
	assert.Error(t, err)
}
