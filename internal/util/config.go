package util

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	StoreKind_Memory = "memory"
	StoreKind_Redis  = "redis"

	EventStoreKind_Memory   = "memory"
	EventStoreKind_Postgres = "postgres"

	MarketDataKind_Mock   = "mock"
	MarketDataKind_Alpaca = "alpaca"
)

type Config struct {
	Env        string           `toml:"env"`
	Server     ServerConfig     `toml:"server"`
	Store      StoreConfig      `toml:"store"`
	Events     EventsConfig     `toml:"events"`
	MarketData MarketDataConfig `toml:"market_data"`
	Trading    TradingConfig    `toml:"trading"`
}

type ServerConfig struct {
	Port           int     `toml:"port"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
	JwtSecret      string  `toml:"jwt_secret"`
}

type StoreConfig struct {
	Kind          string `toml:"kind"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

type EventsConfig struct {
	Kind           string `toml:"kind"`
	PostgresURL    string `toml:"postgres_url"`
	MigrateOnStart bool   `toml:"migrate_on_start"`
}

type MarketDataConfig struct {
	Kind   string       `toml:"kind"`
	Alpaca AlpacaConfig `toml:"alpaca"`
}

type AlpacaConfig struct {
	ApiKey    string `toml:"api_key"`
	ApiSecret string `toml:"api_secret"`
	Endpoint  string `toml:"endpoint"`
}

type TradingConfig struct {
	TransactionCost float64           `toml:"transaction_cost"`
	Replacements    map[string]string `toml:"replacements"`
}

func DefaultConfig() Config {
	return Config{
		Env: "dev",
		Server: ServerConfig{
			Port:           3009,
			RateLimitRPS:   20,
			RateLimitBurst: 40,
		},
		Store: StoreConfig{
			Kind:      StoreKind_Memory,
			RedisAddr: "localhost:6379",
		},
		Events: EventsConfig{
			Kind:           EventStoreKind_Memory,
			MigrateOnStart: true,
		},
		MarketData: MarketDataConfig{
			Kind: MarketDataKind_Mock,
			Alpaca: AlpacaConfig{
				Endpoint: "https://data.alpaca.markets",
			},
		},
		Trading: TradingConfig{
			TransactionCost: 5,
		},
	}
}

// LoadConfig layers, in increasing priority: defaults, the TOML file at
// path (skipped when path is empty), a .env file in the working directory,
// and ROBO_* / ALPACA_* environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dest *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dest = v
		}
	}

	setString("ROBO_ENV", &cfg.Env)
	setString("ROBO_JWT_SECRET", &cfg.Server.JwtSecret)
	setString("ROBO_STORE", &cfg.Store.Kind)
	setString("ROBO_REDIS_ADDR", &cfg.Store.RedisAddr)
	setString("ROBO_REDIS_PASSWORD", &cfg.Store.RedisPassword)
	setString("ROBO_EVENTS", &cfg.Events.Kind)
	setString("ROBO_POSTGRES_URL", &cfg.Events.PostgresURL)
	setString("ROBO_MARKET_DATA", &cfg.MarketData.Kind)
	setString("ALPACA_API_KEY", &cfg.MarketData.Alpaca.ApiKey)
	setString("ALPACA_API_SECRET", &cfg.MarketData.Alpaca.ApiSecret)
	setString("ALPACA_ENDPOINT", &cfg.MarketData.Alpaca.Endpoint)

	if v, ok := os.LookupEnv("ROBO_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ROBO_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v, ok := os.LookupEnv("ROBO_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ROBO_REDIS_DB %q: %w", v, err)
		}
		cfg.Store.RedisDB = db
	}
	if v, ok := os.LookupEnv("ROBO_RATE_LIMIT_RPS"); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ROBO_RATE_LIMIT_RPS %q: %w", v, err)
		}
		cfg.Server.RateLimitRPS = rps
	}
	if v, ok := os.LookupEnv("ROBO_TRANSACTION_COST"); ok {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid ROBO_TRANSACTION_COST %q: %w", v, err)
		}
		cfg.Trading.TransactionCost = cost
	}

	cfg.Store.Kind = strings.ToLower(cfg.Store.Kind)
	cfg.Events.Kind = strings.ToLower(cfg.Events.Kind)
	cfg.MarketData.Kind = strings.ToLower(cfg.MarketData.Kind)

	return nil
}

func (c Config) Validate() error {
	switch c.Store.Kind {
	case StoreKind_Memory:
	case StoreKind_Redis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("invalid config: redis store requires store.redis_addr")
		}
	default:
		return fmt.Errorf("invalid config: unknown store kind %q", c.Store.Kind)
	}

	switch c.Events.Kind {
	case EventStoreKind_Memory:
	case EventStoreKind_Postgres:
		if c.Events.PostgresURL == "" {
			return fmt.Errorf("invalid config: postgres events require events.postgres_url")
		}
	default:
		return fmt.Errorf("invalid config: unknown events kind %q", c.Events.Kind)
	}

	switch c.MarketData.Kind {
	case MarketDataKind_Mock:
	case MarketDataKind_Alpaca:
		if c.MarketData.Alpaca.ApiKey == "" || c.MarketData.Alpaca.ApiSecret == "" {
			return fmt.Errorf("invalid config: alpaca market data requires an api key and secret")
		}
	default:
		return fmt.Errorf("invalid config: unknown market data kind %q", c.MarketData.Kind)
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid config: port must be positive, got %d", c.Server.Port)
	}
	if c.Trading.TransactionCost < 0 {
		return fmt.Errorf("invalid config: transaction cost must be >= 0, got %f", c.Trading.TransactionCost)
	}

	return nil
}
