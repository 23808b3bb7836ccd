package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_MAX_CONNECTIONS", "STORE_BACKEND", "LISTEN_ADDR", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, DbConfig, cfg.Db)
	assert.Equal(t, "host=localhost user=docker password=docker dbname=docker sslmode=disable port=5432", cfg.Db.ConnString())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("DB_MAX_CONNECTIONS", "20")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("LISTEN_ADDR", ":8080")

	cfg := Load()
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, 20, cfg.Db.MaxConnections)
	assert.Equal(t, "6543", cfg.Db.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr)

	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("DB_MAX_CONNECTIONS", "lots")
	cfg = Load()
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, DbConfig.MaxConnections, cfg.Db.MaxConnections)
}
