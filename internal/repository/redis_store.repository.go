package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roboadvisor/internal/domain"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return client, nil
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func portfolioKey(userID string) string {
	return fmt.Sprintf("portfolio:%s", userID)
}

type redisProfileRepositoryHandler struct {
	Client *redis.Client
}

func NewRedisProfileRepository(client *redis.Client) ProfileRepository {
	return redisProfileRepositoryHandler{Client: client}
}

func (h redisProfileRepositoryHandler) Get(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error) {
	out := domain.UserInvestmentProfile{}
	if err := getJSON(ctx, h.Client, profileKey(userID), &out); err != nil {
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}
	if out.TargetAllocation == nil {
		out.TargetAllocation = map[string]float64{}
	}
	if out.FinancialGoals == nil {
		out.FinancialGoals = []domain.FinancialGoal{}
	}
	return &out, nil
}

func (h redisProfileRepositoryHandler) Put(ctx context.Context, profile domain.UserInvestmentProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("failed to put profile: missing user id")
	}
	if err := setJSON(ctx, h.Client, profileKey(profile.UserID), profile); err != nil {
		return fmt.Errorf("failed to put profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

type redisPortfolioRepositoryHandler struct {
	Client *redis.Client
}

func NewRedisPortfolioRepository(client *redis.Client) PortfolioRepository {
	return redisPortfolioRepositoryHandler{Client: client}
}

func (h redisPortfolioRepositoryHandler) Get(ctx context.Context, userID string) (*domain.Portfolio, error) {
	out := domain.Portfolio{}
	if err := getJSON(ctx, h.Client, portfolioKey(userID), &out); err != nil {
		return nil, fmt.Errorf("failed to get portfolio for user %s: %w", userID, err)
	}
	if out.Holdings == nil {
		out.Holdings = []*domain.Holding{}
	}
	return &out, nil
}

func (h redisPortfolioRepositoryHandler) Put(ctx context.Context, portfolio domain.Portfolio) error {
	if portfolio.UserID == "" {
		return fmt.Errorf("failed to put portfolio: missing user id")
	}
	if err := setJSON(ctx, h.Client, portfolioKey(portfolio.UserID), portfolio); err != nil {
		return fmt.Errorf("failed to put portfolio for user %s: %w", portfolio.UserID, err)
	}
	return nil
}

func getJSON(ctx context.Context, client *redis.Client, key string, dest any) error {
	raw, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, client *redis.Client, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return client.Set(ctx, key, raw, 0).Err()
}
