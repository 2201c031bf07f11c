package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 9.8, cfg.Gravity)
	assert.Equal(t, 5.0, cfg.Height)
	assert.True(t, cfg.ShowFormulas, "formulas should be shown by default")
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero gravity", func(c *Config) { c.Gravity = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative mass", func(c *Config) { c.Mass = -0.5 }},
		{"no frames", func(c *Config) { c.Frames = 0 }},
		{"no fps", func(c *Config) { c.FPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freefall.yaml")

	cfg := DefaultConfig()
	cfg.Height = 10
	cfg.ShowFormulas = false
	cfg.DataDir = "runs"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, loaded.Height)
	assert.False(t, loaded.ShowFormulas)
	assert.Equal(t, "runs", loaded.DataDir)
	assert.Equal(t, 9.8, loaded.Gravity)
}

func TestLoad_BodyGravity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("body: moon\nheight: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.62, cfg.Gravity)
	assert.Equal(t, DefaultFrames, cfg.Frames)

	require.NoError(t, os.WriteFile(path, []byte("body: pluto\n"), 0644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("moon")
	require.NotNil(t, cfg)
	assert.Equal(t, 1.62, cfg.Gravity)

	cfg.Height = 99
	assert.NotEqual(t, 99.0, Presets["moon"].Height, "GetPreset returned shared config")

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		assert.NoError(t, cfg.Validate(), "preset %s", name)
		g, ok := BodyGravity(cfg.Body)
		assert.True(t, ok, "preset %s: unknown body %s", name, cfg.Body)
		assert.Equal(t, g, cfg.Gravity, "preset %s", name)
	}
}

func TestNextHeight(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 2},
		{2, 5},
		{5, 10},
		{10, 1},
		{3, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextHeight(tt.in), "NextHeight(%v)", tt.in)
	}
	assert.Equal(t, 0.5, NextMass(5), "NextMass should wrap around")
	assert.True(t, IsAllowedHeight(5))
	assert.False(t, IsAllowedHeight(0))
}
