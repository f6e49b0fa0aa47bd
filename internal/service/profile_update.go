package service

import (
	"math"

	"roboadvisor/internal/domain"
)

// ProfileUpdate is a partial update; nil fields are left unchanged.
// TaxLossHarvestingOptIn sets the flag to the given value, while
// ToggleTaxLossHarvesting flips whatever is stored.
type ProfileUpdate struct {
	RiskTolerance           *domain.RiskTolerance
	FinancialGoals          []domain.FinancialGoal
	TargetAllocation        map[string]float64
	RebalancingThreshold    *float64
	RebalancingFrequency    *domain.RebalancingFrequency
	TaxLossHarvestingOptIn  *bool
	ToggleTaxLossHarvesting bool
}

func validFraction(f float64) bool {
	return !math.IsNaN(f) && f >= 0 && f <= 1
}

func (u ProfileUpdate) Validate() error {
	if u.RiskTolerance != nil && !u.RiskTolerance.IsValid() {
		return newValidationError("riskTolerance", "unknown value %q", *u.RiskTolerance)
	}
	if u.RebalancingFrequency != nil && !u.RebalancingFrequency.IsValid() {
		return newValidationError("rebalancingFrequency", "unknown value %q", *u.RebalancingFrequency)
	}
	if u.RebalancingThreshold != nil && !validFraction(*u.RebalancingThreshold) {
		return newValidationError("rebalancingThreshold", "must be between 0 and 1, got %v", *u.RebalancingThreshold)
	}
	for symbol, fraction := range u.TargetAllocation {
		if symbol == "" {
			return newValidationError("targetAllocation", "symbol must not be empty")
		}
		if !validFraction(fraction) {
			return newValidationError("targetAllocation", "fraction for %s must be between 0 and 1, got %v", symbol, fraction)
		}
	}
	for _, goal := range u.FinancialGoals {
		if goal.Name == "" {
			return newValidationError("financialGoals", "goal name must not be empty")
		}
		if goal.TargetAmount < 0 {
			return newValidationError("financialGoals", "target amount for %s must be >= 0", goal.Name)
		}
	}
	if u.TaxLossHarvestingOptIn != nil && u.ToggleTaxLossHarvesting {
		return newValidationError("taxLossHarvestingOptIn", "cannot both set and toggle")
	}
	return nil
}

func (u ProfileUpdate) apply(profile *domain.UserInvestmentProfile) {
	if u.RiskTolerance != nil {
		profile.SetRiskTolerance(*u.RiskTolerance)
	}
	if u.FinancialGoals != nil {
		profile.SetFinancialGoals(u.FinancialGoals)
	}
	if u.TargetAllocation != nil {
		profile.UpdateTargetAllocation(u.TargetAllocation)
	}
	if u.RebalancingThreshold != nil {
		profile.UpdateRebalancingThreshold(*u.RebalancingThreshold)
	}
	if u.RebalancingFrequency != nil {
		profile.UpdateRebalancingFrequency(*u.RebalancingFrequency)
	}
	if u.TaxLossHarvestingOptIn != nil {
		profile.SetTaxLossHarvesting(*u.TaxLossHarvestingOptIn)
	}
	if u.ToggleTaxLossHarvesting {
		profile.ToggleTaxLossHarvesting()
	}
}
