package database

import (
	"fmt"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URI overrides the DSN built from the other fields when set
	URI string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	uri := ""
	if c.URI != "" {
		uri = "[REDACTED]"
	}
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URI: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, uri, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// Validate reports an unsupported driver
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres, "postgresql", DriverSQLite, "":
		return nil
	default:
		return fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", c.Driver)
	}
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	if c.URI != "" {
		return c.URI
	}
	switch c.Driver {
	case DriverPostgres, "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case DriverSQLite, "":
		return c.Path
	default:
		return ""
	}
}
