package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"roboadvisor/api"
	"roboadvisor/internal/app"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"
	"roboadvisor/internal/util"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type Dependencies struct {
	ApiHandler        *api.ApiHandler
	SimulationHandler app.SimulationHandler
	Db                *sql.DB
	RedisClient       *redis.Client
}

func CloseDependencies(deps *Dependencies) {
	log := logger.FromContext(context.Background())
	if deps.Db != nil {
		if err := deps.Db.Close(); err != nil {
			log.Errorf("failed to close db: %v", err)
		}
	}
	if deps.RedisClient != nil {
		if err := deps.RedisClient.Close(); err != nil {
			log.Errorf("failed to close redis: %v", err)
		}
	}
}

func InitializeDependencies(ctx context.Context, cfg util.Config) (*Dependencies, error) {
	log := logger.FromContext(ctx)
	deps := &Dependencies{}

	var (
		profileRepository   repository.ProfileRepository
		portfolioRepository repository.PortfolioRepository
		userLocker          service.UserLocker
	)
	switch cfg.Store.Kind {
	case util.StoreKind_Redis:
		client, err := repository.NewRedisClient(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err != nil {
			return nil, err
		}
		deps.RedisClient = client
		profileRepository = repository.NewRedisProfileRepository(client)
		portfolioRepository = repository.NewRedisPortfolioRepository(client)
		userLocker = service.NewRedisUserLocker(client, service.DefaultUserLockTTL)
	default:
		profileRepository = repository.NewProfileRepository()
		portfolioRepository = repository.NewPortfolioRepository()
		userLocker = service.NewUserLocker()
	}

	var (
		rebalancingEventRepository repository.RebalancingEventRepository
		tlhEventRepository         repository.TaxLossHarvestingEventRepository
	)
	switch cfg.Events.Kind {
	case util.EventStoreKind_Postgres:
		dbConn, err := repository.NewPostgresDb(cfg.Events.PostgresURL)
		if err != nil {
			CloseDependencies(deps)
			return nil, err
		}
		deps.Db = dbConn
		if cfg.Events.MigrateOnStart {
			if err := repository.RunMigrations(dbConn); err != nil {
				CloseDependencies(deps)
				return nil, err
			}
		}
		rebalancingEventRepository = repository.NewPostgresRebalancingEventRepository(dbConn)
		tlhEventRepository = repository.NewPostgresTaxLossHarvestingEventRepository(dbConn)
	default:
		rebalancingEventRepository = repository.NewRebalancingEventRepository()
		tlhEventRepository = repository.NewTaxLossHarvestingEventRepository()
	}

	var marketDataRepository repository.MarketDataRepository = repository.NewMockMarketDataRepository(nil)
	if cfg.MarketData.Kind == util.MarketDataKind_Alpaca {
		marketDataRepository = repository.NewAlpacaMarketDataRepository(
			cfg.MarketData.Alpaca.ApiKey,
			cfg.MarketData.Alpaca.ApiSecret,
			cfg.MarketData.Alpaca.Endpoint,
			marketDataRepository,
		)
	}

	replacementRepository := repository.NewReplacementRepository(cfg.Trading.Replacements)

	advisoryService := service.NewAdvisoryService(
		profileRepository,
		portfolioRepository,
		rebalancingEventRepository,
		tlhEventRepository,
		marketDataRepository,
		replacementRepository,
		userLocker,
		decimal.NewFromFloat(cfg.Trading.TransactionCost),
	)

	var rateLimiter *api.RateLimiter
	if cfg.Server.RateLimitRPS > 0 {
		rateLimiter = api.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	deps.ApiHandler = &api.ApiHandler{
		AdvisoryService: advisoryService,
		JwtDecodeToken:  cfg.Server.JwtSecret,
		RateLimiter:     rateLimiter,
		Logger:          log,
	}
	deps.SimulationHandler = app.SimulationHandler{
		AdvisoryService:      advisoryService,
		MarketDataRepository: marketDataRepository,
	}

	log.Infow(
		"initialized dependencies",
		"store", cfg.Store.Kind,
		"events", cfg.Events.Kind,
		"marketData", cfg.MarketData.Kind,
	)

	return deps, nil
}

func loadConfigOrFail(path string) (*util.Config, error) {
	cfg, err := util.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
