package app

import (
	"context"
	"fmt"
	"sort"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/service"

	"github.com/shopspring/decimal"
)

// shares are traded in 1/10000 increments
const sharePrecision = 4

type SimulationHandler struct {
	AdvisoryService      service.AdvisoryService
	MarketDataRepository repository.MarketDataRepository
}

type SimulationOptions struct {
	EnableTaxLossHarvesting bool
	HarvestLosses           bool
	Rebalance               bool
}

type SimulationReport struct {
	UserID           string
	StartingSummary  service.PortfolioSummary
	EndingSummary    service.PortfolioSummary
	HarvestTrades    []service.TradeResult
	RebalanceTrades  []service.TradeResult
	StatusBefore     service.RebalancingStatus
	StatusAfter      service.RebalancingStatus
	FailedTradeCount int
}

// Run walks one user through a full advisory cycle: optionally opt into
// tax-loss harvesting, harvest every open opportunity into its replacement,
// then trade back toward the target allocation.
func (h SimulationHandler) Run(ctx context.Context, userID string, opts SimulationOptions) (*SimulationReport, error) {
	log := logger.FromContext(ctx)

	if opts.EnableTaxLossHarvesting {
		optIn := true
		_, err := h.AdvisoryService.UpdateUserProfile(ctx, userID, service.ProfileUpdate{
			TaxLossHarvestingOptIn: &optIn,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to enable tax loss harvesting: %w", err)
		}
	}

	startingSummary, err := h.AdvisoryService.GetPortfolioSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	statusBefore, err := h.AdvisoryService.CheckRebalancingStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &SimulationReport{
		UserID:          userID,
		StartingSummary: *startingSummary,
		StatusBefore:    *statusBefore,
		HarvestTrades:   []service.TradeResult{},
		RebalanceTrades: []service.TradeResult{},
	}

	if opts.HarvestLosses {
		trades, err := h.HarvestLosses(ctx, userID)
		if err != nil {
			return nil, err
		}
		report.HarvestTrades = trades
	}

	if opts.Rebalance {
		trades, err := h.Rebalance(ctx, userID)
		if err != nil {
			return nil, err
		}
		report.RebalanceTrades = trades
	}

	for _, t := range append(append([]service.TradeResult{}, report.HarvestTrades...), report.RebalanceTrades...) {
		if !t.Success {
			report.FailedTradeCount++
		}
	}

	endingSummary, err := h.AdvisoryService.GetPortfolioSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	statusAfter, err := h.AdvisoryService.CheckRebalancingStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	report.EndingSummary = *endingSummary
	report.StatusAfter = *statusAfter

	log.Infow(
		"completed simulation",
		"userID", userID,
		"numHarvestTrades", len(report.HarvestTrades),
		"numRebalanceTrades", len(report.RebalanceTrades),
		"failedTrades", report.FailedTradeCount,
		"startingValue", report.StartingSummary.TotalValue.String(),
		"endingValue", report.EndingSummary.TotalValue.String(),
	)

	return report, nil
}

// HarvestLosses sells every position with a harvestable loss at its current
// price and buys the replacement with the proceeds.
func (h SimulationHandler) HarvestLosses(ctx context.Context, userID string) ([]service.TradeResult, error) {
	opportunities, err := h.AdvisoryService.GetTaxLossHarvestingOpportunities(ctx, userID)
	if err != nil {
		return nil, err
	}

	portfolio, err := h.AdvisoryService.GetUserPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []service.TradeResult{}
	for _, opp := range opportunities.Opportunities {
		holding := portfolio.GetHolding(opp.SoldAsset.Symbol)
		if holding == nil {
			continue
		}
		sellResult, err := h.AdvisoryService.SellAsset(ctx, userID, holding.Symbol, opp.SoldAsset.SharesSold, holding.CurrentPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, *sellResult)
		if !sellResult.Success {
			continue
		}

		replacementQuote, err := h.MarketDataRepository.Lookup(ctx, opp.ReplacementAsset.Symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to price replacement %s: %w", opp.ReplacementAsset.Symbol, err)
		}
		proceeds := opp.SoldAsset.SharesSold.Mul(holding.CurrentPrice)
		shares := proceeds.Div(replacementQuote.CurrentPrice).RoundDown(sharePrecision)
		if !shares.IsPositive() {
			continue
		}
		buyResult, err := h.AdvisoryService.BuyAsset(ctx, userID, replacementQuote.Symbol, shares, replacementQuote.CurrentPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, *buyResult)
	}

	return out, nil
}

type plannedTrade struct {
	Symbol string
	Side   domain.TradeSide
	Shares decimal.Decimal
	Price  decimal.Decimal
}

// Rebalance converts the current drift report into trades at market prices.
// Sells run before buys. Targets without a market quote (e.g. Cash) are
// skipped.
func (h SimulationHandler) Rebalance(ctx context.Context, userID string) ([]service.TradeResult, error) {
	log := logger.FromContext(ctx)

	status, err := h.AdvisoryService.CheckRebalancingStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.NeedsRebalance {
		return []service.TradeResult{}, nil
	}

	portfolio, err := h.AdvisoryService.GetUserPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	trades, err := h.planTrades(ctx, portfolio, status.DriftDetails)
	if err != nil {
		return nil, err
	}

	out := []service.TradeResult{}
	for _, t := range trades {
		var result *service.TradeResult
		if t.Side == domain.TradeSide_Sell {
			result, err = h.AdvisoryService.SellAsset(ctx, userID, t.Symbol, t.Shares, t.Price)
		} else {
			result, err = h.AdvisoryService.BuyAsset(ctx, userID, t.Symbol, t.Shares, t.Price)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to %s %s: %w", t.Side, t.Symbol, err)
		}
		if !result.Success {
			log.Warnw("rebalance trade rejected", "userID", userID, "symbol", t.Symbol, "message", result.Message)
		}
		out = append(out, *result)
	}

	return out, nil
}

func (h SimulationHandler) planTrades(ctx context.Context, portfolio *domain.Portfolio, driftDetails map[string]domain.DriftDetail) ([]plannedTrade, error) {
	log := logger.FromContext(ctx)

	trades := []plannedTrade{}
	for symbol, detail := range driftDetails {
		var price decimal.Decimal
		holding := portfolio.GetHolding(symbol)
		if holding != nil {
			price = holding.CurrentPrice
		} else {
			quote, err := h.MarketDataRepository.Lookup(ctx, symbol)
			if err != nil {
				log.Infow("skipping unpriced rebalance target", "symbol", symbol, "error", err)
				continue
			}
			price = quote.CurrentPrice
		}
		if !price.IsPositive() {
			continue
		}

		shares := decimal.NewFromFloat(detail.AmountToAdjust).Div(price).RoundDown(sharePrecision)
		if detail.Action == domain.TradeSide_Sell && holding != nil && shares.GreaterThan(holding.Shares) {
			shares = holding.Shares
		}
		if !shares.IsPositive() {
			continue
		}

		trades = append(trades, plannedTrade{
			Symbol: symbol,
			Side:   detail.Action,
			Shares: shares,
			Price:  price,
		})
	}

	sort.Slice(trades, func(i, j int) bool {
		if trades[i].Side != trades[j].Side {
			return trades[i].Side == domain.TradeSide_Sell
		}
		return trades[i].Symbol < trades[j].Symbol
	})

	return trades, nil
}
