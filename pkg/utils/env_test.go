package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvVars(t *testing.T) {
	got, err := ParseEnvVars("A=1, B = two;C=3\nD=")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "two", "C": "3", "D": ""}, got)
}

func TestParseEnvVarsEmpty(t *testing.T) {
	got, err := ParseEnvVars("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseEnvVarsInvalid(t *testing.T) {
	_, err := ParseEnvVars("A=1,nope")
	assert.Error(t, err)

	_, err = ParseEnvVars("=value")
	assert.Error(t, err)
}

func TestParseDotEnv(t *testing.T) {
	content := `
# webhooks
BUSINESS_QA_WEBHOOK_URL=https://hooks.example.com/webhook/qa
export PROJECT_DATA_WEBHOOK_URL="https://hooks.example.com/webhook/project?x=1"
SUMMARIZER_WEBHOOK_URL='https://hooks.example.com/webhook/sum'
EMPTY=
INLINE=value # trailing comment
ESCAPED="line\nbreak"
`
	got, err := ParseDotEnv(content)
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/webhook/qa", got["BUSINESS_QA_WEBHOOK_URL"])
	assert.Equal(t, "https://hooks.example.com/webhook/project?x=1", got["PROJECT_DATA_WEBHOOK_URL"])
	assert.Equal(t, "https://hooks.example.com/webhook/sum", got["SUMMARIZER_WEBHOOK_URL"])
	assert.Equal(t, "", got["EMPTY"])
	assert.Equal(t, "value", got["INLINE"])
	assert.Equal(t, "line\nbreak", got["ESCAPED"])
}

func TestParseDotEnvQuotedWithComment(t *testing.T) {
	content := `
SUMMARIZER_WEBHOOK_URL="https://hooks/sum" # prod
BUSINESS_QA_WEBHOOK_URL='https://hooks/qa'   # staging
HASH="a # not a comment"
ESCAPED_QUOTE="say \"hi\"" # greeting
`
	got, err := ParseDotEnv(content)
	require.NoError(t, err)
	assert.Equal(t, "https://hooks/sum", got["SUMMARIZER_WEBHOOK_URL"])
	assert.Equal(t, "https://hooks/qa", got["BUSINESS_QA_WEBHOOK_URL"])
	assert.Equal(t, "a # not a comment", got["HASH"])
	assert.Equal(t, `say "hi"`, got["ESCAPED_QUOTE"])
}

func TestParseDotEnvTextAfterQuote(t *testing.T) {
	_, err := ParseDotEnv(`URL="https://hooks/sum"trailing`)
	assert.Error(t, err)

	_, err = ParseDotEnv(`URL='https://hooks/sum`)
	assert.Error(t, err)
}

func TestParseDotEnvInvalidLine(t *testing.T) {
	_, err := ParseDotEnv("GOOD=1\nnot an assignment\n")
	assert.Error(t, err)
}

func TestParseDotEnvBadQuotes(t *testing.T) {
	_, err := ParseDotEnv(`BAD="unterminated \q"`)
	assert.Error(t, err)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	got, err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEY=value\n"), 0o600))

	got, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"KEY": "value"}, got)
}
