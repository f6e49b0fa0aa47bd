package domain

import (
	"time"
)

type RiskTolerance string

const (
	RiskTolerance_Conservative RiskTolerance = "conservative"
	RiskTolerance_Moderate     RiskTolerance = "moderate"
	RiskTolerance_Aggressive   RiskTolerance = "aggressive"
)

func (r RiskTolerance) IsValid() bool {
	switch r {
	case RiskTolerance_Conservative, RiskTolerance_Moderate, RiskTolerance_Aggressive:
		return true
	}
	return false
}

type RebalancingFrequency string

const (
	RebalancingFrequency_Monthly   RebalancingFrequency = "monthly"
	RebalancingFrequency_Quarterly RebalancingFrequency = "quarterly"
	RebalancingFrequency_Annually  RebalancingFrequency = "annually"
	RebalancingFrequency_Threshold RebalancingFrequency = "threshold"
)

func (f RebalancingFrequency) IsValid() bool {
	switch f {
	case RebalancingFrequency_Monthly, RebalancingFrequency_Quarterly, RebalancingFrequency_Annually, RebalancingFrequency_Threshold:
		return true
	}
	return false
}

// NextDue returns when a calendar rebalance falls due after last. The
// second return value is false for frequencies with no calendar component.
func (f RebalancingFrequency) NextDue(last time.Time) (time.Time, bool) {
	switch f {
	case RebalancingFrequency_Monthly:
		return last.AddDate(0, 1, 0), true
	case RebalancingFrequency_Quarterly:
		return last.AddDate(0, 3, 0), true
	case RebalancingFrequency_Annually:
		return last.AddDate(1, 0, 0), true
	}
	return time.Time{}, false
}

type FinancialGoal struct {
	Name         string    `json:"name"`
	TargetAmount float64   `json:"targetAmount"`
	TargetDate   time.Time `json:"targetDate"`
}

const (
	DefaultRebalancingThreshold = 0.05
)

func DefaultTargetAllocation() map[string]float64 {
	return map[string]float64{
		"SPY":  0.4,
		"AAPL": 0.3,
		"MSFT": 0.3,
	}
}

type UserInvestmentProfile struct {
	UserID                 string               `json:"userId"`
	RiskTolerance          RiskTolerance        `json:"riskTolerance"`
	FinancialGoals         []FinancialGoal      `json:"financialGoals"`
	TargetAllocation       map[string]float64   `json:"targetAllocation"`
	RebalancingThreshold   float64              `json:"rebalancingThreshold"`
	RebalancingFrequency   RebalancingFrequency `json:"rebalancingFrequency"`
	TaxLossHarvestingOptIn bool                 `json:"taxLossHarvestingOptIn"`
	LastRebalancedAt       *time.Time           `json:"lastRebalancedAt,omitempty"`
}

func NewUserInvestmentProfile(userID string) *UserInvestmentProfile {
	return &UserInvestmentProfile{
		UserID:                 userID,
		RiskTolerance:          RiskTolerance_Moderate,
		FinancialGoals:         []FinancialGoal{},
		TargetAllocation:       DefaultTargetAllocation(),
		RebalancingThreshold:   DefaultRebalancingThreshold,
		RebalancingFrequency:   RebalancingFrequency_Quarterly,
		TaxLossHarvestingOptIn: false,
	}
}

func (p *UserInvestmentProfile) UpdateTargetAllocation(allocation map[string]float64) {
	p.TargetAllocation = copyAllocation(allocation)
}

func (p *UserInvestmentProfile) UpdateRebalancingThreshold(threshold float64) {
	p.RebalancingThreshold = threshold
}

func (p *UserInvestmentProfile) UpdateRebalancingFrequency(frequency RebalancingFrequency) {
	p.RebalancingFrequency = frequency
}

func (p *UserInvestmentProfile) ToggleTaxLossHarvesting() {
	p.TaxLossHarvestingOptIn = !p.TaxLossHarvestingOptIn
}

func (p *UserInvestmentProfile) SetTaxLossHarvesting(optIn bool) {
	p.TaxLossHarvestingOptIn = optIn
}

func (p *UserInvestmentProfile) SetRiskTolerance(riskTolerance RiskTolerance) {
	p.RiskTolerance = riskTolerance
}

func (p *UserInvestmentProfile) SetFinancialGoals(goals []FinancialGoal) {
	p.FinancialGoals = append([]FinancialGoal{}, goals...)
}

func (p *UserInvestmentProfile) MarkRebalanced(at time.Time) {
	t := at
	p.LastRebalancedAt = &t
}

// CalendarRebalanceDue is true when the profile's frequency interval has
// elapsed since the last executed trade. A profile that has never traded
// counts as due, so a brand-new user reports true on the first check.
func (p UserInvestmentProfile) CalendarRebalanceDue(now time.Time) bool {
	if p.LastRebalancedAt == nil {
		_, ok := p.RebalancingFrequency.NextDue(now)
		return ok
	}
	next, ok := p.RebalancingFrequency.NextDue(*p.LastRebalancedAt)
	if !ok {
		return false
	}
	return !now.Before(next)
}

func (p UserInvestmentProfile) DeepCopy() *UserInvestmentProfile {
	out := p
	out.TargetAllocation = copyAllocation(p.TargetAllocation)
	out.FinancialGoals = append([]FinancialGoal{}, p.FinancialGoals...)
	if p.LastRebalancedAt != nil {
		t := *p.LastRebalancedAt
		out.LastRebalancedAt = &t
	}
	return &out
}

func copyAllocation(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for symbol, fraction := range in {
		out[symbol] = fraction
	}
	return out
}
