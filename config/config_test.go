package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MICROBLOG_SERVER_ADDRESS", ":9090")
	t.Setenv("MICROBLOG_STORE_BACKEND", BackendBadger)
	t.Setenv("MICROBLOG_STORE_IN_MEMORY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, BackendBadger, cfg.Store.Backend)
	assert.True(t, cfg.Store.InMemory)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("MICROBLOG_STORE_BACKEND", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}
