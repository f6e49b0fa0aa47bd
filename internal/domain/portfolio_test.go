package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestHolding_Derivations(t *testing.T) {
	t.Run("gain", func(t *testing.T) {
		h := Holding{Symbol: "AAPL", Shares: d(20), AvgPrice: d(150), CurrentPrice: d(175)}

		require.True(t, d(3500).Equal(h.CurrentValue()))
		require.True(t, d(500).Equal(h.GainLoss()))
		require.Equal(t, "16.6667", h.ReturnPercentage().StringFixed(4))
	})

	t.Run("loss", func(t *testing.T) {
		h := Holding{Symbol: "TSLA", Shares: d(5), AvgPrice: d(250), CurrentPrice: d(200)}

		require.True(t, d(-250).Equal(h.GainLoss()))
		require.True(t, d(-20).Equal(h.ReturnPercentage()))
	})

	t.Run("zero cost basis", func(t *testing.T) {
		h := Holding{Symbol: "FREE", Shares: d(10), AvgPrice: decimal.Zero, CurrentPrice: d(3)}
		require.True(t, h.ReturnPercentage().IsZero())

		empty := Holding{Symbol: "NONE"}
		require.True(t, empty.ReturnPercentage().IsZero())
	})
}

func TestHolding_Validate(t *testing.T) {
	require.NoError(t, Holding{Symbol: "SPY", Shares: d(1), AvgPrice: d(1), CurrentPrice: d(1)}.Validate())
	require.Error(t, Holding{Shares: d(1)}.Validate())
	require.Error(t, Holding{Symbol: "SPY", Shares: d(-1)}.Validate())
	require.Error(t, Holding{Symbol: "SPY", AvgPrice: d(-1)}.Validate())
	require.Error(t, Holding{Symbol: "SPY", CurrentPrice: d(-0.01)}.Validate())
}

func TestPortfolio_Mutations(t *testing.T) {
	t.Run("update holding upserts by symbol", func(t *testing.T) {
		p := NewPortfolio("u1")
		p.UpdateHolding(Holding{Symbol: "SPY", Shares: d(1)})
		p.UpdateHolding(Holding{Symbol: "AAPL", Shares: d(2)})
		p.UpdateHolding(Holding{Symbol: "SPY", Shares: d(5)})

		require.Len(t, p.Holdings, 2)
		require.Equal(t, []string{"SPY", "AAPL"}, p.HeldSymbols())
		require.True(t, d(5).Equal(p.GetHolding("SPY").Shares))
	})

	t.Run("add holding does not dedup", func(t *testing.T) {
		p := NewPortfolio("u1")
		p.AddHolding(Holding{Symbol: "SPY", Shares: d(1)})
		p.AddHolding(Holding{Symbol: "SPY", Shares: d(1)})
		require.Len(t, p.Holdings, 2)

		p.RemoveHolding("SPY")
		require.Empty(t, p.Holdings)
		require.Nil(t, p.GetHolding("SPY"))
	})

	t.Run("stored holdings are copies", func(t *testing.T) {
		p := NewPortfolio("u1")
		h := Holding{Symbol: "SPY", Shares: d(1)}
		p.AddHolding(h)
		h.Shares = d(100)
		require.True(t, d(1).Equal(p.GetHolding("SPY").Shares))

		cp := p.DeepCopy()
		cp.Holdings[0].Shares = d(7)
		require.True(t, d(1).Equal(p.GetHolding("SPY").Shares))
	})
}

func TestPortfolio_Aggregates(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		p := NewPortfolio("u1")
		require.True(t, p.TotalValue().IsZero())
		require.True(t, p.TotalGainLoss().IsZero())
		require.True(t, p.PortfolioReturnPercentage().IsZero())
	})

	t.Run("mixed gains and losses", func(t *testing.T) {
		p := NewPortfolio("u1")
		p.UpdateHolding(Holding{Symbol: "AAPL", Shares: d(20), AvgPrice: d(150), CurrentPrice: d(175)})
		p.UpdateHolding(Holding{Symbol: "TSLA", Shares: d(5), AvgPrice: d(250), CurrentPrice: d(200)})

		require.True(t, d(4500).Equal(p.TotalValue()))
		require.True(t, d(250).Equal(p.TotalGainLoss()))
		// 250 / (4500 - 250) * 100
		require.Equal(t, "5.8824", p.PortfolioReturnPercentage().StringFixed(4))
	})
}

func TestWeightedAverageCost(t *testing.T) {
	require.True(t, d(160).Equal(WeightedAverageCost(d(10), d(150), d(10), d(170))))
	require.True(t, d(42).Equal(WeightedAverageCost(decimal.Zero, decimal.Zero, d(3), d(42))))
	require.True(t, WeightedAverageCost(decimal.Zero, d(10), decimal.Zero, d(10)).IsZero())
}

func TestWeightedAverageCost_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("matches (s1*p1 + s2*p2)/(s1+s2)", prop.ForAll(
		func(s1, p1, s2, p2 int) bool {
			got := WeightedAverageCost(decimal.NewFromInt(int64(s1)), decimal.NewFromInt(int64(p1)), decimal.NewFromInt(int64(s2)), decimal.NewFromInt(int64(p2)))
			want := float64(s1*p1+s2*p2) / float64(s1+s2)
			diff := got.InexactFloat64() - want
			return diff < 1e-9 && diff > -1e-9
		},
		gen.IntRange(1, 10000),
		gen.IntRange(1, 1000),
		gen.IntRange(1, 10000),
		gen.IntRange(1, 1000),
	))

	properties.Property("stays between the two lot prices", prop.ForAll(
		func(s1, p1, s2, p2 int) bool {
			got := WeightedAverageCost(decimal.NewFromInt(int64(s1)), decimal.NewFromInt(int64(p1)), decimal.NewFromInt(int64(s2)), decimal.NewFromInt(int64(p2)))
			lo, hi := decimal.NewFromInt(int64(min(p1, p2))), decimal.NewFromInt(int64(max(p1, p2)))
			return got.GreaterThanOrEqual(lo) && got.LessThanOrEqual(hi)
		},
		gen.IntRange(1, 10000),
		gen.IntRange(1, 1000),
		gen.IntRange(1, 10000),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}
