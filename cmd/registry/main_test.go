package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--no-color", "--config", t.TempDir()}, args...)
	code := run(full, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestProviders(t *testing.T) {
	code, out, _ := runCLI(t, "providers")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "openai")
	assert.Contains(t, out, "Amazon Bedrock")
}

func TestModels_ByProvider(t *testing.T) {
	code, out, _ := runCLI(t, "models", "anthropic")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "claude-3-5-sonnet-20241022")
	assert.NotContains(t, out, "gpt-4o")

	code, _, errOut := runCLI(t, "models", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "provider not found: nope")
}

func TestValidate(t *testing.T) {
	code, out, _ := runCLI(t, "validate", "ollama", `{}`)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "ollama settings are valid")

	code, _, errOut := runCLI(t, "validate", "openai", `{"compatibility":"loose"}`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "apiKey")
	assert.Contains(t, errOut, "compatibility")

	code, _, _ = runCLI(t, "validate", "openai", `not json`)
	assert.Equal(t, 1, code)
}

func TestValidate_Localized(t *testing.T) {
	code, _, errOut := runCLI(t, "--locale", "de", "validate", "openai", `{}`)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "ist ein Pflichtfeld")
}

func TestCaps(t *testing.T) {
	code, out, _ := runCLI(t, "caps", "claude-3-5-sonnet-20241022", "user", "application/pdf")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "accepts application/pdf")

	code, out, _ = runCLI(t, "caps", "gpt-3.5-turbo", "user", "image/png")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "does not accept")

	code, _, errOut := runCLI(t, "caps", "brand-new-model", "user")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "default template")

	code, _, _ = runCLI(t, "caps", "gpt-4o", "system")
	assert.Equal(t, 1, code)
}

func TestSniff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n"), 0o600))

	code, out, _ := runCLI(t, "sniff", "claude-3-7-sonnet-20250219", "user", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "application/pdf")

	code, _, _ = runCLI(t, "sniff", "gpt-4o", "user", path)
	assert.Equal(t, 1, code)
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage: registry")

	code, _, errOut = runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)

	code, _, _ = runCLI(t, "schema")
	assert.Equal(t, 2, code)
}
