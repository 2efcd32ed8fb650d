package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DefaultsOnly(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))

	cfg := Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "", cfg.Game.LevelPath)
	assert.Equal(t, 0, cfg.Game.MaxTurns)
	assert.Equal(t, 800, cfg.UI.Window.Width)
	assert.Equal(t, 48, cfg.UI.Game.TileSize)
	assert.Equal(t, [3]int{200, 50, 50}, cfg.Colors.Entities.Enemy)
}

func TestInit_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
  format: json
game:
  level_path: levels/canyon.level
  max_turns: 200
ui:
  game:
    tile_size: 64
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, Init(path))

	cfg := Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "levels/canyon.level", cfg.Game.LevelPath)
	assert.Equal(t, 200, cfg.Game.MaxTurns)
	assert.Equal(t, 64, cfg.UI.Game.TileSize)
	// Untouched keys keep their defaults.
	assert.Equal(t, 600, cfg.UI.Window.Height)
}

func TestInit_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"BadLogLevel", "logging:\n  level: shout\n"},
		{"BadLogFormat", "logging:\n  format: xml\n"},
		{"NegativeMaxTurns", "game:\n  max_turns: -1\n"},
		{"ZeroTileSize", "ui:\n  game:\n    tile_size: 0\n"},
		{"ColorOutOfRange", "colors:\n  tiles:\n    grass: [300, 0, 0]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			assert.Error(t, Init(path))
		})
	}
}

func TestSet_UpdatesStruct(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))

	Set("game.max_turns", 42)
	assert.Equal(t, 42, Get().Game.MaxTurns)
	assert.Equal(t, 42, GetInt("game.max_turns"))
}

func TestValidate_DefaultsPass(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.NoError(t, Validate(Get()))
}
