package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/netplan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Overrides(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("method: prim\nstrict: true\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Method:   "prim",
		Output:   "text",
		LogLevel: "info",
		Strict:   true,
	}, cfg)
}

func TestDecode_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("algorithm: prim\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "absent.yaml")

	cfg, err := config.Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, true)
	assert.Error(t, err)

	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("output: json\nlog_level: debug\n"), 0o600))
	cfg, err = config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "kruskal", cfg.Method)
}
