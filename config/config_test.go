package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridpibt/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map_path: maps/arena.txt\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "maps/arena.txt", cfg.MapPath)
	assert.Equal(t, ".", cfg.FreeToken)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "map_path: maps/arena.txt\nfree_token: \"0\"\nseed: 42\nlisten_addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0", cfg.FreeToken)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoad_MissingMapPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0o644))

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrMissingMapPath)
}
