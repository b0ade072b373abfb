package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 20, cfg.CreditLimit)
	assert.True(t, cfg.AutoReload)
	assert.True(t, cfg.UI.ShowCounts)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
	assert.Equal(t, "#7D56F4", cfg.Theme.Highlight)
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	var parsed struct {
		DataDir     string `yaml:"data_dir"`
		CreditLimit int    `yaml:"credit_limit"`
		AutoReload  bool   `yaml:"auto_reload"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	defaults := Defaults()
	assert.Equal(t, defaults.DataDir, parsed.DataDir)
	assert.Equal(t, defaults.CreditLimit, parsed.CreditLimit)
	assert.Equal(t, defaults.AutoReload, parsed.AutoReload)
}

func TestWriteDefaultConfig_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), "credit_limit: 20")
}

func TestSaveCreditLimit_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveCreditLimit(path, 30))

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "credit_limit: 30")
	assert.NotContains(t, content, "credit_limit: 20")
	assert.True(t, strings.Contains(content, "# siga configuration"),
		"comments survive the rewrite")

	var parsed struct {
		CreditLimit int `yaml:"credit_limit"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, 30, parsed.CreditLimit)
}

func TestSaveCreditLimit_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh", "config.yaml")
	require.NoError(t, SaveCreditLimit(path, 25))

	data, err := os.ReadFile(path) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), "credit_limit: 25")
}
