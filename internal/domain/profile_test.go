package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewUserInvestmentProfile(t *testing.T) {
	p := NewUserInvestmentProfile("u1")

	require.Equal(t, RiskTolerance_Moderate, p.RiskTolerance)
	require.Equal(t, map[string]float64{"SPY": 0.4, "AAPL": 0.3, "MSFT": 0.3}, p.TargetAllocation)
	require.Equal(t, 0.05, p.RebalancingThreshold)
	require.Equal(t, RebalancingFrequency_Quarterly, p.RebalancingFrequency)
	require.False(t, p.TaxLossHarvestingOptIn)
	require.Empty(t, p.FinancialGoals)
}

func TestUserInvestmentProfile_Updates(t *testing.T) {
	p := NewUserInvestmentProfile("u1")

	allocation := map[string]float64{"VTI": 1}
	p.UpdateTargetAllocation(allocation)
	allocation["VTI"] = 0.2
	require.Equal(t, 1.0, p.TargetAllocation["VTI"])

	p.UpdateRebalancingThreshold(0.1)
	require.Equal(t, 0.1, p.RebalancingThreshold)

	p.UpdateRebalancingFrequency(RebalancingFrequency_Annually)
	require.Equal(t, RebalancingFrequency_Annually, p.RebalancingFrequency)

	p.ToggleTaxLossHarvesting()
	require.True(t, p.TaxLossHarvestingOptIn)
	p.ToggleTaxLossHarvesting()
	require.False(t, p.TaxLossHarvestingOptIn)
	p.SetTaxLossHarvesting(true)
	p.SetTaxLossHarvesting(true)
	require.True(t, p.TaxLossHarvestingOptIn)
}

func TestUserInvestmentProfile_CalendarRebalanceDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("never rebalanced", func(t *testing.T) {
		p := NewUserInvestmentProfile("u1")
		require.True(t, p.CalendarRebalanceDue(now))

		p.UpdateRebalancingFrequency(RebalancingFrequency_Threshold)
		require.False(t, p.CalendarRebalanceDue(now))
	})

	t.Run("quarterly", func(t *testing.T) {
		p := NewUserInvestmentProfile("u1")
		p.MarkRebalanced(now.AddDate(0, -2, 0))
		require.False(t, p.CalendarRebalanceDue(now))

		p.MarkRebalanced(now.AddDate(0, -3, 0))
		require.True(t, p.CalendarRebalanceDue(now))
	})

	t.Run("monthly and annually", func(t *testing.T) {
		p := NewUserInvestmentProfile("u1")
		p.MarkRebalanced(now.AddDate(0, -1, -1))

		p.UpdateRebalancingFrequency(RebalancingFrequency_Monthly)
		require.True(t, p.CalendarRebalanceDue(now))

		p.UpdateRebalancingFrequency(RebalancingFrequency_Annually)
		require.False(t, p.CalendarRebalanceDue(now))
	})
}

func TestUserInvestmentProfile_DeepCopy(t *testing.T) {
	p := NewUserInvestmentProfile("u1")
	p.MarkRebalanced(time.Now())

	cp := p.DeepCopy()
	cp.TargetAllocation["SPY"] = 1
	*cp.LastRebalancedAt = time.Time{}

	require.Equal(t, 0.4, p.TargetAllocation["SPY"])
	require.False(t, p.LastRebalancedAt.IsZero())
}
