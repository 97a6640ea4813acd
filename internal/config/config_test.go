package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/prism-registry/internal/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("REGISTRY_LOCALE", "DE")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, "de", cfg.Registry.Locale)
	assert.Equal(t, capability.DefaultTemplate, cfg.Registry.DefaultTemplate)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadConfig_RegistryFile(t *testing.T) {
	dir := t.TempDir()
	content := `
log:
  level: DEBUG
  format: json
registry:
  default_template: textOnly
  disabled_providers: ["bedrock"]
  models:
    - name: "qwen2.5-vl"
      provider: "ollama"
      template: "commonVision"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "textOnly", cfg.Registry.DefaultTemplate)
	assert.Equal(t, []string{"bedrock"}, cfg.Registry.DisabledProviders)
	assert.Equal(t, []capability.Model{
		{Name: "qwen2.5-vl", Provider: "ollama", Template: "commonVision"},
	}, cfg.Registry.Models)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
