package config_test

import (
	"testing"

	"github.com/jeebeez/jeebeecard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                   ":8080",
		StoreDriver:            config.StoreSQLite,
		DBPath:                 "test.db",
		LogLevel:               "INFO",
		ShutdownTimeoutSeconds: 30,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_StoreDrivers(t *testing.T) {
	tests := []struct {
		name          string
		driver        string
		dbPath        string
		databaseURL   string
		expectedError string
	}{
		{
			name:   "sqlite with path",
			driver: config.StoreSQLite,
			dbPath: "test.db",
		},
		{
			name:          "sqlite without path",
			driver:        config.StoreSQLite,
			expectedError: "DB_PATH",
		},
		{
			name:        "postgres with url",
			driver:      config.StorePostgres,
			databaseURL: "postgres://localhost/jeebeecard",
		},
		{
			name:          "postgres without url",
			driver:        config.StorePostgres,
			expectedError: "DATABASE_URL",
		},
		{
			name:   "memory needs nothing",
			driver: config.StoreMemory,
		},
		{
			name:          "unknown driver",
			driver:        "redis",
			expectedError: "STORE_DRIVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.StoreDriver = tt.driver
			cfg.DBPath = tt.dbPath
			cfg.DatabaseURL = tt.databaseURL

			err := cfg.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR", "debug"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = level
			assert.NoError(t, cfg.Validate())
		})
	}

	for _, level := range []string{"", "TRACE"} {
		t.Run("invalid "+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = level
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "LOG_LEVEL")
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:                   "",
		StoreDriver:            config.StoreSQLite,
		DBPath:                 "",
		LogLevel:               "INVALID",
		ShutdownTimeoutSeconds: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "SHUTDOWN_TIMEOUT_SECONDS")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://cards.example.com,")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, config.StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:3000", "https://cards.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30, cfg.ShutdownTimeoutSeconds)
}
