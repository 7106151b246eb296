package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Input.Path)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, 3, cfg.Classifier.SampleLimit)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
input:
  path: messages.json

logging:
  development: true

classifier:
  sample_limit: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "messages.json", cfg.Input.Path)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 5, cfg.Classifier.SampleLimit)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInputEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
input:
  path: from-file.json
`)

	t.Setenv("TRIAGE_INPUT", "from-env.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Input.Path)
}
