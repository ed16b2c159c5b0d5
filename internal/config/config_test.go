package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/secretscan/pkg/secretscan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `exit_zero: true
workers: 8
format: json
verbose: true
`)

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.ExitZero)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "verbose: true\n")

	cfg, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, secretscan.DefaultWorkers, cfg.Workers)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.ExitZero)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := LoadFromDir(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := LoadFromDir(writeConfig(t, "{{invalid"))
	assert.ErrorIs(t, err, secretscan.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_OutOfRangeValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero workers", "workers: 0\n"},
		{"too many workers", "workers: 1000\n"},
		{"unknown format", "format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromDir(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, secretscan.ErrInvalidConfig)
			assert.Equal(t, secretscan.ExitConfigError, secretscan.ExitCodeForError(err))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvExitZero: "true",
		EnvWorkers:  "4",
		EnvFormat:   "json",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.ExitZero)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Config{ExitZero: true, Workers: 2, Format: "json"}
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvWorkers: "", EnvFormat: ""})))

	assert.Equal(t, Config{ExitZero: true, Workers: 2, Format: "json"}, cfg)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad bool", map[string]string{EnvExitZero: "maybe"}},
		{"bad int", map[string]string{EnvWorkers: "many"}},
		{"negative workers", map[string]string{EnvWorkers: "-1"}},
		{"bad format", map[string]string{EnvFormat: "csv"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			assert.ErrorIs(t, cfg.ApplyEnv(envMap(tt.env)), secretscan.ErrInvalidConfig)
		})
	}
}
