package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
players:
  - id: a
    name: 甲
  - id: b
    name: 乙
  - id: c
    name: 丙
log:
  level: debug
  format: json
  file: /tmp/landlord.log
ui:
  alt_screen: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Players, 3)
	assert.Equal(t, "a", cfg.Players[0].ID)
	assert.Equal(t, "丙", cfg.Players[2].Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/landlord.log", cfg.Log.File)
	assert.False(t, cfg.UI.AltScreen)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, defaultPlayers(), cfg.Players)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultLogFormat, cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.UI.AltScreen)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "invalid: yaml: :::"},
		{"two players", "players:\n  - {id: a, name: A}\n  - {id: b, name: B}\n"},
		{"duplicate id", "players:\n  - {id: a, name: A}\n  - {id: a, name: B}\n  - {id: c, name: C}\n"},
		{"missing id", "players:\n  - {id: a, name: A}\n  - {name: B}\n  - {id: c, name: C}\n"},
		{"bad log format", "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "王二狗", cfg.Players[0].Name)
	assert.Equal(t, "1003", cfg.Players[2].ID)
}

func TestLoadFromEnv(t *testing.T) {
	// 修改环境变量，不能并行

	t.Setenv("LANDLORD_LOG_LEVEL", "warn")
	t.Setenv("LANDLORD_LOG_FORMAT", "json")
	t.Setenv("LANDLORD_UI_ALT_SCREEN", "false")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.UI.AltScreen)
	assert.Len(t, cfg.Players, 3)
}

func TestLoadOrDefault_MissingFileUsesEnv(t *testing.T) {
	// 修改环境变量，不能并行

	t.Setenv("LANDLORD_LOG_LEVEL", "debug")
	t.Setenv("LANDLORD_UI_ALT_SCREEN", "false")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, defaultPlayers(), cfg.Players)
}

func TestLoadOrDefault_Errors(t *testing.T) {
	// 修改环境变量，不能并行

	_, err := LoadOrDefault(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)

	t.Setenv("LANDLORD_LOG_FORMAT", "xml")
	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault_ExistingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOrDefault(writeConfig(t, "log:\n  format: json\n"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}
