package repository

import (
	"context"
	"testing"

	"roboadvisor/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMockMarketDataRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("default table", func(t *testing.T) {
		repo := NewMockMarketDataRepository(nil)

		q, err := repo.Lookup(ctx, "AAPL")
		require.NoError(t, err)
		require.Equal(t, "Technology", q.Sector)
		require.True(t, decimal.NewFromInt(175).Equal(q.CurrentPrice))

		// every default replacement must be priceable
		for _, replacement := range DefaultReplacements() {
			_, err := repo.Lookup(ctx, replacement)
			require.NoError(t, err, replacement)
		}

		_, err = repo.Lookup(ctx, "NOPE")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("custom table", func(t *testing.T) {
		repo := NewMockMarketDataRepository(map[string]domain.MarketQuote{
			"A": {Symbol: "A", CurrentPrice: decimal.NewFromInt(1)},
		})
		_, err := repo.Lookup(ctx, "AAPL")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReplacementRepository(t *testing.T) {
	repo := NewReplacementRepository(nil)

	got, ok := repo.ReplacementFor("TSLA")
	require.True(t, ok)
	require.Equal(t, "TSLF", got)

	_, ok = repo.ReplacementFor("MSFT")
	require.False(t, ok)

	custom := NewReplacementRepository(map[string]string{"MSFT": "MSFF", "GOOGL": ""})
	got, ok = custom.ReplacementFor("MSFT")
	require.True(t, ok)
	require.Equal(t, "MSFF", got)
	_, ok = custom.ReplacementFor("GOOGL")
	require.False(t, ok)
	_, ok = custom.ReplacementFor("TSLA")
	require.False(t, ok)
}

func TestInMemoryStores(t *testing.T) {
	ctx := context.Background()

	t.Run("profiles", func(t *testing.T) {
		repo := NewProfileRepository()
		_, err := repo.Get(ctx, "u1")
		require.ErrorIs(t, err, ErrNotFound)

		profile := domain.NewUserInvestmentProfile("u1")
		require.NoError(t, repo.Put(ctx, *profile))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		got.TargetAllocation["SPY"] = 1

		again, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, 0.4, again.TargetAllocation["SPY"])
	})

	t.Run("portfolios", func(t *testing.T) {
		repo := NewPortfolioRepository()
		_, err := repo.Get(ctx, "u1")
		require.ErrorIs(t, err, ErrNotFound)

		portfolio := domain.NewPortfolio("u1")
		portfolio.UpdateHolding(domain.Holding{Symbol: "SPY", Shares: decimal.NewFromInt(1)})
		require.NoError(t, repo.Put(ctx, *portfolio))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		got.Holdings[0].Shares = decimal.NewFromInt(99)

		again, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(1).Equal(again.Holdings[0].Shares))

		require.Error(t, repo.Put(ctx, domain.Portfolio{}))
	})
}
