package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outline-extractor/internal/config"
)

func TestLoadConfigFile_EmptyPathYieldsZeroConfig(t *testing.T) {
	cfg, err := loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoadConfigFile_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"runs_dir": "` + dir + `", "top_n": 9, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.RunsDir)
	assert.Equal(t, 9, cfg.TopN)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFile_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"top_n": -1}`), 0644))

	_, err := loadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n")
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
