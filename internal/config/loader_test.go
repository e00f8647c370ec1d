package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, Default().Addr, cfg.Addr)

	// The defaults must have been written out for the operator to edit.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":8081\"\n" +
		"read_window: 500ms\n" +
		"max_line_bytes: 256\n" +
		"access_point:\n" +
		"  ssid: keydeck\n" +
		"  passphrase: opensesame\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.ReadWindow)
	assert.Equal(t, 256, cfg.MaxLineBytes)
	assert.Equal(t, "keydeck", cfg.AccessPoint.SSID)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":8081\"\n"), 0o600))

	t.Setenv("KEYDECK_ADDR", ":9090")

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadRejectsInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "access_point:\n" +
		"  ssid: keydeck\n" +
		"  passphrase: tiny\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, _, err := Load(nil, path)
	assert.ErrorContains(t, err, "passphrase")
}
