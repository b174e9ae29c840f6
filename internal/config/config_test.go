package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "dt.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Server.SessionExpiry)
	assert.Equal(t, AuthModeNone, cfg.Auth.Mode)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		token    string
		expected AuthMode
		ok       bool
	}{
		{"none", AuthModeNone, true},
		{"shared", AuthModeShared, true},
		{"users", AuthModeUsers, true},
		{"", "", false},
		{"basic", "", false},
		{"Shared", "", false},
	}

	for _, tt := range tests {
		mode, ok := ParseAuthMode(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		assert.Equal(t, tt.expected, mode, "token %q", tt.token)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DT_DB_DIR", "/tmp/dt-test")
	t.Setenv("DT_DB_FILENAME", "test.db")
	t.Setenv("DT_DB_QUERY_TIMEOUT", "5s")
	t.Setenv("DT_SERVER_ADDR", ":9090")
	t.Setenv("DT_SESSION_EXPIRY", "1h")
	t.Setenv("DT_AUTH_MODE", "shared")
	t.Setenv("DT_AUTH_USERNAME", "admin")
	t.Setenv("DT_AUTH_PASSWORD", "secret-pass")
	t.Setenv("DT_APP_TIMEOUT", "30s")
	t.Setenv("DT_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/dt-test", cfg.Database.Dir)
	assert.Equal(t, "test.db", cfg.Database.Filename)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, time.Hour, cfg.Server.SessionExpiry)
	assert.Equal(t, AuthModeShared, cfg.Auth.Mode)
	assert.Equal(t, "admin", cfg.Auth.SharedUsername)
	assert.Equal(t, "secret-pass", cfg.Auth.SharedPassword)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoadFromEnvironment_BadAuthMode(t *testing.T) {
	t.Setenv("DT_AUTH_MODE", "basic")

	cfg := NewConfig()
	err := cfg.LoadFromEnvironment()

	assert.Error(t, err)
}

func TestLoadFromEnvironment_IgnoresUnparseableDuration(t *testing.T) {
	t.Setenv("DT_DB_QUERY_TIMEOUT", "soon")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data/dt"
	cfg.Database.Filename = "tasks.db"

	assert.Equal(t, filepath.Join("/data/dt", "tasks.db"), cfg.GetDatabasePath())
}

func TestValidate_SharedModeRequiresCredentials(t *testing.T) {
	cfg := NewConfig()
	cfg.Auth.Mode = AuthModeShared

	err := cfg.Validate()
	assert.Error(t, err)

	cfg.Auth.SharedUsername = "admin"
	err = cfg.Validate()
	assert.Error(t, err)

	cfg.Auth.SharedPassword = "secret-pass"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UsersModeNeedsNoCredentials(t *testing.T) {
	cfg := NewConfig()
	cfg.Auth.Mode = AuthModeUsers

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }},
		{"empty db filename", func(c *Config) { c.Database.Filename = "" }},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero session expiry", func(c *Config) { c.Server.SessionExpiry = 0 }},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }},
		{"bad auth mode", func(c *Config) { c.Auth.Mode = "basic" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	dbDir := t.TempDir()
	addr := ":7070"
	timeout := 15 * time.Second
	verbose := true
	authMode := "users"

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBDir:      &dbDir,
		ServerAddr: &addr,
		AuthMode:   &authMode,
		Timeout:    &timeout,
		Verbose:    &verbose,
	})

	require.NoError(t, err)
	assert.Equal(t, dbDir, cfg.Database.Dir)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, AuthModeUsers, cfg.Auth.Mode)
	assert.Equal(t, 15*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestLoader_NilOverrides(t *testing.T) {
	cfg, err := NewLoader().LoadWithOverrides(nil)

	require.NoError(t, err)
	assert.Equal(t, AuthModeNone, cfg.Auth.Mode)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()

	require.NoError(t, err)
	assert.NoError(t, repo.Close())
}
