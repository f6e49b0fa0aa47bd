package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "buy"
	TradeSide_Sell TradeSide = "sell"
)

type RebalancingEventStatus string

const (
	RebalancingEventStatus_Completed RebalancingEventStatus = "completed"
	RebalancingEventStatus_Pending   RebalancingEventStatus = "pending"
	RebalancingEventStatus_Failed    RebalancingEventStatus = "failed"
)

type TaxLossHarvestingEventStatus string

const (
	TaxLossHarvestingEventStatus_Completed TaxLossHarvestingEventStatus = "completed"
	TaxLossHarvestingEventStatus_Potential TaxLossHarvestingEventStatus = "potential"
	TaxLossHarvestingEventStatus_Failed    TaxLossHarvestingEventStatus = "failed"
)

type Asset struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// RebalancingEvent records one executed buy or sell. Events are never
// modified after they are created.
type RebalancingEvent struct {
	EventID         uuid.UUID              `json:"eventId"`
	UserID          string                 `json:"userId"`
	Timestamp       time.Time              `json:"timestamp"`
	ActionType      TradeSide              `json:"actionType"`
	Asset           Asset                  `json:"asset"`
	Quantity        decimal.Decimal        `json:"quantity"`
	Price           decimal.Decimal        `json:"price"`
	TransactionCost decimal.Decimal        `json:"transactionCost"`
	Status          RebalancingEventStatus `json:"status"`
}

type SoldAsset struct {
	Symbol     string          `json:"symbol"`
	SharesSold decimal.Decimal `json:"sharesSold"`
}

// TaxLossHarvestingEvent is either a harvested loss (completed) or a
// candidate found by an opportunity scan (potential).
type TaxLossHarvestingEvent struct {
	EventID            uuid.UUID                    `json:"eventId"`
	UserID             string                       `json:"userId"`
	Timestamp          time.Time                    `json:"timestamp"`
	SoldAsset          SoldAsset                    `json:"soldAsset"`
	RealizedLossAmount decimal.Decimal              `json:"realizedLossAmount"`
	ReplacementAsset   Asset                        `json:"replacementAsset"`
	Status             TaxLossHarvestingEventStatus `json:"status"`
}

// DriftDetail describes how far one symbol sits from its target weight.
// Values stay numeric here; rounding for display happens at the api layer.
type DriftDetail struct {
	Current        float64
	Target         float64
	Drift          float64
	Action         TradeSide
	AmountToAdjust float64
}
