package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
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

// isolate points the config dir at a temp dir and clears webhook variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOOKTERM_DEFAULT_MODE", "")
	t.Setenv("HOOKTERM_LOG_LEVEL", "")
	t.Setenv("BUSINESS_QA_WEBHOOK_URL", "")
	t.Setenv("PROJECT_DATA_WEBHOOK_URL", "")
	t.Setenv("SUMMARIZER_WEBHOOK_URL", "")
	return dir
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hookterm")
}

func TestModes(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "modes")
	require.NoError(t, err)
	assert.Contains(t, out, "project")
	assert.Contains(t, out, "Business Q&A")
	assert.Contains(t, out, "SUMMARIZER_WEBHOOK_URL")
}

func TestStatusMissingWebhooksSucceeds(t *testing.T) {
	dir := isolate(t)
	t.Setenv("BUSINESS_QA_WEBHOOK_URL", "https://hooks.example.com/qa")

	out, logs, err := execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "1/3 configured")
	assert.Contains(t, out, "not found, using defaults")
	assert.Contains(t, out, filepath.Join(dir, "hookterm", "config.yaml"))
	assert.Contains(t, out, "Not set")
	assert.Contains(t, logs, "WRN")
	assert.Contains(t, logs, "businessQA=ok (https://hooks.example.com/qa)")
}

func TestStatusJSON(t *testing.T) {
	isolate(t)
	t.Setenv("PROJECT_DATA_WEBHOOK_URL", "https://hooks.example.com/project")

	out, _, err := execute(t, "status", "--json")
	require.NoError(t, err)

	var report statusReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Readiness.ProjectData)
	assert.False(t, report.Readiness.BusinessQA)
	assert.False(t, report.Readiness.Summarizer)
}

func TestStatusEnvFlagAndFile(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "hooks.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PROJECT_DATA_WEBHOOK_URL=https://file/project\n"), 0o644))
	os.Unsetenv("PROJECT_DATA_WEBHOOK_URL")

	out, _, err := execute(t, "status", "--json",
		"--env-file", envPath,
		"--env", "SUMMARIZER_WEBHOOK_URL=https://flag/sum")
	require.NoError(t, err)

	var report statusReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Readiness.ProjectData)
	assert.True(t, report.Readiness.Summarizer)
	assert.Equal(t, envPath, report.EnvFile)
}

func TestStatusRejectsBadFlags(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "status", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid config")

	_, _, err = execute(t, "status", "--env", "NOEQUALS")
	assert.ErrorContains(t, err, "parsing --env")
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "hookterm", "config.yaml")

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, _, err = execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Config OK")

	out, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestConfigValidateReportsIssues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_mode: chat\n"), 0o644))

	out, _, err := execute(t, "config", "validate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, out, "default_mode")
}

func TestRootRejectsArgs(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "bogus")
	assert.Error(t, err)
}
