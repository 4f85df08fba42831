package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, "import", cfg.Import.Dir)
	assert.Equal(t, int64(5), cfg.Import.MaxFileSizeMB)
	assert.Equal(t, "replace", cfg.Import.DefaultMode)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "import:\n  dir: exports\n  default_mode: accumulate\nserver:\n  port: \"9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exports", cfg.Import.Dir)
	assert.Equal(t, "accumulate", cfg.Import.DefaultMode)
	assert.Equal(t, "9090", cfg.Server.Port)
	// Untouched fields keep their defaults.
	assert.Equal(t, int64(5), cfg.Import.MaxFileSizeMB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("COINFOLIO_PORT", "7070")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("import: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Import.Dir = "incoming"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "incoming", loaded.Import.Dir)
}

func TestMaxFileSizeBytes(t *testing.T) {
	c := ImportConfig{MaxFileSizeMB: 5}
	assert.Equal(t, int64(5*1024*1024), c.MaxFileSizeBytes())
}
