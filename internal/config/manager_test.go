package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingConfigUsesDefaults(t *testing.T) {
	cm, err := NewConfigManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	cfg := cm.GetConfig()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Equal(t, DefaultTimeFormat, cfg.Output.TimeFormat)
	assert.False(t, cfg.Parse.LenientEnums)
	assert.NoError(t, cm.Validate())
}

func TestLoadKeepsDefaultsForUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "yaml"

[parse]
lenient_enums = true
`), 0644))

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	cfg := cm.GetConfig()
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, DefaultTimeFormat, cfg.Output.TimeFormat)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Parse.LenientEnums)
}

func TestLoadRejectsBrokenToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output\nformat ="), 0644))

	_, err := NewConfigManager(path)
	assert.Error(t, err)
}

func TestSetSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	require.NoError(t, cm.Set("output.format", "json"))
	require.NoError(t, cm.Set("log.level", "debug"))
	require.NoError(t, cm.Set("parse.lenient_enums", "true"))
	require.NoError(t, cm.Set("catalog.path", "/tmp/snapshots.json"))
	require.NoError(t, cm.Save())

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	cfg := reloaded.GetConfig()
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Parse.LenientEnums)
	assert.Equal(t, "/tmp/snapshots.json", cfg.Catalog.Path)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	cm, err := NewConfigManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Error(t, cm.Set("output.format", "xml"))
	assert.Equal(t, FormatTable, cm.GetConfig().Output.Format)

	assert.Error(t, cm.Set("log.level", "loud"))
	assert.Equal(t, "info", cm.GetConfig().Log.Level)

	assert.Error(t, cm.Set("parse.lenient_enums", "maybe"))
	assert.Error(t, cm.Set("output.colour", "on"))
}

func TestSetRepairsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "loud"

[output]
format = "xml"
`), 0644))

	cm, err := NewConfigManager(path)
	require.NoError(t, err)
	require.Error(t, cm.Validate())

	require.NoError(t, cm.Set("output.format", FormatJSON))
	require.Error(t, cm.Validate())
	require.NoError(t, cm.Set("log.level", "warn"))
	require.NoError(t, cm.Validate())
	require.NoError(t, cm.Save())

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.NoError(t, reloaded.Validate())
	assert.Equal(t, FormatJSON, reloaded.GetConfig().Output.Format)
}
