package main

import (
	"testing"
	"time"

	"github.com/votequest/coin-service/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: config.DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			Username:     "votequest",
			Password:     "votequest",
			Database:     "coin_service",
			QueryTimeout: 5 * time.Second,
		},
		Logger: config.LoggerConfig{
			Level: "info",
		},
		Scan: config.ScanConfig{
			Secret:   "test-scan-secret",
			PageSize: 500,
		},
		Ledger: config.LedgerConfig{
			InitialUserCoins: 100,
		},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("Valid configuration passes", func(t *testing.T) {
		require.NoError(t, validateConfig(validTestConfig()))
	})

	t.Run("Missing scan secret is reported", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Scan.Secret = ""

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan.secret")
	})

	t.Run("Missing database credentials are collected", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Database.Username = ""
		cfg.Database.Password = ""

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.username")
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("Unknown environment is rejected", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Environment = "staging"

		err := validateConfig(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment")
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, parsePort("5432"))
	assert.Equal(t, 6543, parsePort("6543"))
	assert.Equal(t, 5432, parsePort(""))
	assert.Equal(t, 5432, parsePort("not-a-port"))
	assert.Equal(t, 5432, parsePort("-1"))
}
