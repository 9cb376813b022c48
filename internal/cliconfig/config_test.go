package cliconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "input.txt", cfg.InputPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Pause)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig()},
		{name: "empty level means info", cfg: Config{InputPath: "route.txt"}},
		{name: "upper case level", cfg: Config{InputPath: "route.txt", LogLevel: "DEBUG"}},
		{name: "missing input", cfg: Config{InputPath: "  ", LogLevel: "info"}, wantErr: true},
		{name: "unknown level", cfg: Config{InputPath: "route.txt", LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name:       "applies all values",
			fileConfig: FileConfig{Input: "route.txt", LogLevel: "debug", Pause: &trueVal},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   Config{InputPath: "route.txt", LogLevel: "debug", Pause: true},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{Input: "route.txt", LogLevel: "debug"},
			changed:    map[string]bool{"input": true},
			initial:    Config{InputPath: "flag.txt", LogLevel: "info"},
			expected:   Config{InputPath: "flag.txt", LogLevel: "debug"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "input = \"route.txt\"\nlog_level = \"warn\"\npause = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "route.txt", fc.Input)
	assert.Equal(t, "warn", fc.LogLevel)
	require.NotNil(t, fc.Pause)
	assert.True(t, *fc.Pause)
	assert.True(t, FileExists(path))
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("input = [unterminated"), 0o644))

	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("HQWALK_INPUT", "env.txt")
	t.Setenv("HQWALK_LOG_LEVEL", "error")
	t.Setenv("HQWALK_PAUSE", "1")

	cfg := DefaultConfig()
	ApplyEnvConfig(&cfg, map[string]bool{"log-level": true})
	assert.Equal(t, Config{InputPath: "env.txt", LogLevel: "info", Pause: true}, cfg)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HQWALK_INPUT=dotenv.txt\nHQWALK_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("HQWALK_LOG_LEVEL", "warn")
	t.Setenv("HQWALK_INPUT", "")
	os.Unsetenv("HQWALK_INPUT")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "dotenv.txt", os.Getenv("HQWALK_INPUT"))
	assert.Equal(t, "warn", os.Getenv("HQWALK_LOG_LEVEL"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
