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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"input_dir": "./runs",
		"output_dir": "./outlines",
		"top_n": 7,
		"doc_timeout_seconds": 15,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "./runs", cfg.InputDir)
	assert.Equal(t, "./outlines", cfg.OutputDir)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 15, cfg.DocTimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"top_n": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_NegativeTopN(t *testing.T) {
	cfg := &Config{TopN: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{DocTimeoutSeconds: -5}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doc_timeout_seconds")
}

func TestValidate_MissingInputDir(t *testing.T) {
	cfg := &Config{InputDir: filepath.Join(t.TempDir(), "does-not-exist")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory not found")
}

func TestValidate_ExistingPathsPass(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "manifest.json")
	require.NoError(t, os.WriteFile(manifest, []byte("{}"), 0644))

	cfg := &Config{InputDir: dir, RunsDir: dir, Manifest: manifest, TopN: 5}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{InputDir: "/explicit", TopN: 3}
	defaults := Config{
		InputDir:          "/default",
		OutputDir:         "/default-out",
		TopN:              5,
		DocTimeoutSeconds: 10,
	}

	merged := cfg.MergeWithDefaults(defaults)
	// Explicit values win; empty fields fall back.
	assert.Equal(t, "/explicit", merged.InputDir)
	assert.Equal(t, "/default-out", merged.OutputDir)
	assert.Equal(t, 3, merged.TopN)
	assert.Equal(t, 10, merged.DocTimeoutSeconds)
}
