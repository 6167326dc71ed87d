package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite uses the file path",
			config:   DatabaseConfig{Driver: DriverSQLite, Path: "app.db"},
			expected: "app.db",
		},
		{
			name:     "empty driver defaults to sqlite",
			config:   DatabaseConfig{Path: "local.db"},
			expected: "local.db",
		},
		{
			name: "postgres builds a key value dsn",
			config: DatabaseConfig{
				Driver: DriverPostgres, Host: "db", Port: "5432", User: "app",
				Password: "pw", Name: "restaurants", SSLMode: "disable",
			},
			expected: "host=db user=app password=pw dbname=restaurants port=5432 sslmode=disable",
		},
		{
			name:     "uri overrides everything",
			config:   DatabaseConfig{Driver: DriverPostgres, URI: "postgres://app@db/restaurants", Host: "ignored"},
			expected: "postgres://app@db/restaurants",
		},
		{
			name:     "unknown driver has no dsn",
			config:   DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestDatabaseConfigValidate(t *testing.T) {
	assert.NoError(t, (&DatabaseConfig{Driver: DriverSQLite}).Validate())
	assert.NoError(t, (&DatabaseConfig{Driver: "postgresql"}).Validate())
	assert.Error(t, (&DatabaseConfig{Driver: "mysql"}).Validate())
}

func TestDatabaseConfigStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverPostgres, Password: "hunter2", URI: "postgres://app:hunter2@db/x"}

	assert.NotContains(t, cfg.String(), "hunter2")
}
