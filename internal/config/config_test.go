package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "NODE_ENV", "APP_ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	"DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_MAX_CONNS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.HTTPAddress())
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Production())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, Database{
		Driver:   DriverMySQL,
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Name:     "casino",
		MaxConns: 10,
	}, cfg.Database)
}

func TestLoadPostgresProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Database.TLS)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadAppEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "3307")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Database.TLS)
	assert.Equal(t, 3307, cfg.Database.Port)
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":   {"DB_DRIVER": "sqlite"},
		"bad db port":      {"DB_PORT": "abc"},
		"zero db port":     {"DB_PORT": "0"},
		"bad http port":    {"PORT": "99999"},
		"bad pool size":    {"DB_MAX_CONNS": "-1"},
		"non-numeric pool": {"DB_MAX_CONNS": "lots"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
