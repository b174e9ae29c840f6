package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AuthMode selects the task isolation policy. The classifier and filter
// logic is identical in every mode; only task-set scoping and the login
// gate differ.
type AuthMode string

const (
	// AuthModeNone disables the login gate; all tasks are global.
	AuthModeNone AuthMode = "none"
	// AuthModeShared gates every route behind one configured credential;
	// tasks are still global.
	AuthModeShared AuthMode = "shared"
	// AuthModeUsers enables registration, per-user login and owner scoping.
	AuthModeUsers AuthMode = "users"
)

// ParseAuthMode parses an auth mode token from the environment.
func ParseAuthMode(s string) (AuthMode, bool) {
	switch AuthMode(s) {
	case AuthModeNone, AuthModeShared, AuthModeUsers:
		return AuthMode(s), true
	default:
		return "", false
	}
}

// Config holds all configuration options for the deadline tracker application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Auth        AuthConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"DT_DB_DIR"`
	Filename       string        `env:"DT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"DT_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"DT_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds web server configuration
type ServerConfig struct {
	Addr          string        `env:"DT_SERVER_ADDR"`
	SessionExpiry time.Duration `env:"DT_SESSION_EXPIRY"`
}

// AuthConfig holds authentication configuration. Credentials live here and
// are passed by reference to the handlers that need them, never kept in
// package-level state.
type AuthConfig struct {
	Mode           AuthMode `env:"DT_AUTH_MODE"`
	SharedUsername string   `env:"DT_AUTH_USERNAME"`
	SharedPassword string   `env:"DT_AUTH_PASSWORD"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"DT_APP_TIMEOUT"`
	Verbose bool          `env:"DT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".dt")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "dt.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:          ":8080",
			SessionExpiry: 24 * time.Hour,
		},
		Auth: AuthConfig{
			Mode: AuthModeNone,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("DT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("DT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("DT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("DT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Server configuration
	if addr := os.Getenv("DT_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if expiry := os.Getenv("DT_SESSION_EXPIRY"); expiry != "" {
		if d, err := time.ParseDuration(expiry); err == nil {
			c.Server.SessionExpiry = d
		}
	}

	// Auth configuration
	if mode := os.Getenv("DT_AUTH_MODE"); mode != "" {
		if m, ok := ParseAuthMode(mode); ok {
			c.Auth.Mode = m
		} else {
			return &ConfigError{Field: "auth.mode", Message: "must be one of: none, shared, users"}
		}
	}
	if username := os.Getenv("DT_AUTH_USERNAME"); username != "" {
		c.Auth.SharedUsername = username
	}
	if password := os.Getenv("DT_AUTH_PASSWORD"); password != "" {
		c.Auth.SharedPassword = password
	}

	// Application configuration
	if timeout := os.Getenv("DT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("DT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.SessionExpiry <= 0 {
		return &ConfigError{Field: "server.session_expiry", Message: "session expiry must be positive"}
	}

	// Validate auth configuration
	if _, ok := ParseAuthMode(string(c.Auth.Mode)); !ok {
		return &ConfigError{Field: "auth.mode", Message: "must be one of: none, shared, users"}
	}
	if c.Auth.Mode == AuthModeShared {
		if c.Auth.SharedUsername == "" {
			return &ConfigError{Field: "auth.shared_username", Message: "shared auth mode requires DT_AUTH_USERNAME"}
		}
		if c.Auth.SharedPassword == "" {
			return &ConfigError{Field: "auth.shared_password", Message: "shared auth mode requires DT_AUTH_PASSWORD"}
		}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
