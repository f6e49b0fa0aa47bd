package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"roboadvisor/internal/app"
	"roboadvisor/internal/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInitializeDependencies(t *testing.T) {
	ctx := context.Background()

	t.Run("in memory", func(t *testing.T) {
		deps, err := InitializeDependencies(ctx, util.DefaultConfig())
		require.NoError(t, err)
		defer CloseDependencies(deps)

		require.Nil(t, deps.Db)
		require.Nil(t, deps.RedisClient)
		require.NotNil(t, deps.ApiHandler.RateLimiter)

		profile, err := deps.ApiHandler.AdvisoryService.GetUserProfile(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "u1", profile.UserID)
	})

	t.Run("redis store", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := util.DefaultConfig()
		cfg.Store.Kind = util.StoreKind_Redis
		cfg.Store.RedisAddr = mr.Addr()

		deps, err := InitializeDependencies(ctx, cfg)
		require.NoError(t, err)
		defer CloseDependencies(deps)
		require.NotNil(t, deps.RedisClient)

		_, err = deps.ApiHandler.AdvisoryService.GetUserPortfolio(ctx, "u1")
		require.NoError(t, err)
		require.True(t, mr.Exists("portfolio:u1"))
		require.False(t, mr.Exists("profile:u1"))

		// trades take the cross-instance lock and release it
		result, err := deps.ApiHandler.AdvisoryService.BuyAsset(ctx, "u1", "SPY", decimal.NewFromInt(1), decimal.NewFromInt(450))
		require.NoError(t, err)
		require.True(t, result.Success)
		require.False(t, mr.Exists("lock:user:u1"))
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := util.DefaultConfig()
		cfg.Store.Kind = util.StoreKind_Redis
		cfg.Store.RedisAddr = "127.0.0.1:1"

		_, err := InitializeDependencies(ctx, cfg)
		require.Error(t, err)
	})
}

func TestSimulateCommand(t *testing.T) {
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"simulate", "--user", "cli-user", "--rebalance=false"})

	require.NoError(t, root.ExecuteContext(context.Background()))

	report := app.SimulationReport{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Equal(t, "cli-user", report.UserID)
	require.Empty(t, report.RebalanceTrades)
	require.Len(t, report.HarvestTrades, 2)
}
