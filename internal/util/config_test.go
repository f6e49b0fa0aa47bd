package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, 3009, cfg.Server.Port)
		require.Equal(t, StoreKind_Memory, cfg.Store.Kind)
		require.Equal(t, EventStoreKind_Memory, cfg.Events.Kind)
		require.Equal(t, MarketDataKind_Mock, cfg.MarketData.Kind)
		require.Equal(t, 5.0, cfg.Trading.TransactionCost)
	})

	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `
env = "prod"

[server]
port = 8080

[store]
kind = "redis"
redis_addr = "cache:6379"

[trading]
transaction_cost = 2.5

[trading.replacements]
MSFT = "MSFF"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "prod", cfg.Env)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, StoreKind_Redis, cfg.Store.Kind)
		require.Equal(t, "cache:6379", cfg.Store.RedisAddr)
		require.Equal(t, 2.5, cfg.Trading.TransactionCost)
		require.Equal(t, map[string]string{"MSFT": "MSFF"}, cfg.Trading.Replacements)
		// untouched sections keep their defaults
		require.Equal(t, MarketDataKind_Mock, cfg.MarketData.Kind)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "[server]\nport = 8080\n")
		t.Setenv("ROBO_PORT", "9000")
		t.Setenv("ROBO_TRANSACTION_COST", "0")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 0.0, cfg.Trading.TransactionCost)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("ROBO_PORT", "abc")
		_, err := LoadConfig("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Events.Kind = EventStoreKind_Postgres
	require.Error(t, cfg.Validate())
	cfg.Events.PostgresURL = "postgres://localhost/robo"
	require.NoError(t, cfg.Validate())

	cfg.MarketData.Kind = MarketDataKind_Alpaca
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Store.Kind = "sqlite"
	require.Error(t, cfg.Validate())
}

func TestFormatDollars(t *testing.T) {
	require.Equal(t, "$1,234.50", FormatDollars(decimal.NewFromFloat(1234.5)))
	require.Equal(t, "$5.00", FormatDollars(decimal.NewFromInt(5)))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2030-06-15")
	require.NoError(t, err)
	require.Equal(t, NewDate(2030, 6, 15), got)
	require.Equal(t, "2030-06-15", FormatDate(got))

	_, err = ParseDate("06/15/2030")
	require.Error(t, err)
}
