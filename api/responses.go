package api

import (
	"time"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/util"
)

// Response types render decimals as plain JSON numbers.

type assetResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type rebalancingEventResponse struct {
	EventID         string        `json:"eventId"`
	UserID          string        `json:"userId"`
	Timestamp       string        `json:"timestamp"`
	ActionType      string        `json:"actionType"`
	Asset           assetResponse `json:"asset"`
	Quantity        float64       `json:"quantity"`
	Price           float64       `json:"price"`
	TransactionCost float64       `json:"transactionCost"`
	Status          string        `json:"status"`
}

func rebalancingEventToResponse(e domain.RebalancingEvent) rebalancingEventResponse {
	return rebalancingEventResponse{
		EventID:    e.EventID.String(),
		UserID:     e.UserID,
		Timestamp:  e.Timestamp.Format(time.RFC3339),
		ActionType: string(e.ActionType),
		Asset: assetResponse{
			Symbol: e.Asset.Symbol,
			Name:   e.Asset.Name,
		},
		Quantity:        e.Quantity.InexactFloat64(),
		Price:           e.Price.InexactFloat64(),
		TransactionCost: e.TransactionCost.InexactFloat64(),
		Status:          string(e.Status),
	}
}

type soldAssetResponse struct {
	Symbol     string  `json:"symbol"`
	SharesSold float64 `json:"sharesSold"`
}

type taxLossHarvestingEventResponse struct {
	EventID            string            `json:"eventId"`
	UserID             string            `json:"userId"`
	Timestamp          string            `json:"timestamp"`
	SoldAsset          soldAssetResponse `json:"soldAsset"`
	RealizedLossAmount float64           `json:"realizedLossAmount"`
	ReplacementAsset   assetResponse     `json:"replacementAsset"`
	Status             string            `json:"status"`
}

func taxLossHarvestingEventToResponse(e domain.TaxLossHarvestingEvent) taxLossHarvestingEventResponse {
	return taxLossHarvestingEventResponse{
		EventID:   e.EventID.String(),
		UserID:    e.UserID,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		SoldAsset: soldAssetResponse{
			Symbol:     e.SoldAsset.Symbol,
			SharesSold: e.SoldAsset.SharesSold.InexactFloat64(),
		},
		RealizedLossAmount: e.RealizedLossAmount.InexactFloat64(),
		ReplacementAsset: assetResponse{
			Symbol: e.ReplacementAsset.Symbol,
			Name:   e.ReplacementAsset.Name,
		},
		Status: string(e.Status),
	}
}

type financialGoalResponse struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
}

type profileResponse struct {
	UserID                 string                  `json:"userId"`
	RiskTolerance          string                  `json:"riskTolerance"`
	FinancialGoals         []financialGoalResponse `json:"financialGoals"`
	TargetAllocation       map[string]float64      `json:"targetAllocation"`
	RebalancingThreshold   float64                 `json:"rebalancingThreshold"`
	RebalancingFrequency   string                  `json:"rebalancingFrequency"`
	TaxLossHarvestingOptIn bool                    `json:"taxLossHarvestingOptIn"`
	LastRebalancedAt       *string                 `json:"lastRebalancedAt,omitempty"`
}

func profileToResponse(p domain.UserInvestmentProfile) profileResponse {
	goals := []financialGoalResponse{}
	for _, g := range p.FinancialGoals {
		goals = append(goals, financialGoalResponse{
			Name:         g.Name,
			TargetAmount: g.TargetAmount,
			TargetDate:   util.FormatDate(g.TargetDate),
		})
	}

	var lastRebalancedAt *string
	if p.LastRebalancedAt != nil {
		lastRebalancedAt = util.StringPointer(p.LastRebalancedAt.Format(time.RFC3339))
	}

	return profileResponse{
		UserID:                 p.UserID,
		RiskTolerance:          string(p.RiskTolerance),
		FinancialGoals:         goals,
		TargetAllocation:       p.TargetAllocation,
		RebalancingThreshold:   p.RebalancingThreshold,
		RebalancingFrequency:   string(p.RebalancingFrequency),
		TaxLossHarvestingOptIn: p.TaxLossHarvestingOptIn,
		LastRebalancedAt:       lastRebalancedAt,
	}
}
