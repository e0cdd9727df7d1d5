// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	viper.Reset()
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "readings.db", cfg.Database.Path)
	assert.Equal(t, 3*time.Second, cfg.TickInterval())
	assert.Equal(t, 24, cfg.History.DefaultWindowHours)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	yaml := []byte("server:\n  port: 9191\nsimulation:\n  interval_seconds: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.TickInterval())
	// Unset keys keep their defaults.
	assert.Equal(t, "readings.db", cfg.Database.Path)
}
