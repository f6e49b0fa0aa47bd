package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
	"roboadvisor/internal/util"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// AdvisoryService owns a user's investment profile and simulated portfolio.
// Expected trade failures (unknown symbol, bad quantity, not enough shares)
// come back as an unsuccessful TradeResult; returned errors are either a
// ValidationError or an infrastructure failure.
type AdvisoryService interface {
	GetUserProfile(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.UserInvestmentProfile, error)
	GetUserPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error)
	GetPortfolioSummary(ctx context.Context, userID string) (*PortfolioSummary, error)
	BuyAsset(ctx context.Context, userID, symbol string, sharesToBuy, pricePerShare decimal.Decimal) (*TradeResult, error)
	SellAsset(ctx context.Context, userID, symbol string, sharesToSell, pricePerShare decimal.Decimal) (*TradeResult, error)
	CheckRebalancingStatus(ctx context.Context, userID string) (*RebalancingStatus, error)
	GetTaxLossHarvestingOpportunities(ctx context.Context, userID string) (*TaxLossHarvestingOpportunities, error)
	GetInvestmentRecommendations(ctx context.Context, userID string) (*InvestmentRecommendations, error)
	ListRebalancingEvents(ctx context.Context, userID string) ([]domain.RebalancingEvent, error)
	ListTaxLossHarvestingEvents(ctx context.Context, userID string) ([]domain.TaxLossHarvestingEvent, error)
}

const (
	MessageTaxLossHarvestingDisabled = "Tax-loss harvesting is not enabled."
	MessageNoTaxLossHarvesting       = "No tax-loss harvesting opportunities found."
)

type TradeResult struct {
	Success                bool
	Message                string
	Event                  *domain.RebalancingEvent
	TaxLossHarvestingEvent *domain.TaxLossHarvestingEvent
}

type RebalancingStatus struct {
	NeedsRebalance   bool
	DriftDetails     map[string]domain.DriftDetail
	MaxAbsoluteDrift float64
	// CalendarDue reports whether the profile's rebalancing frequency has
	// elapsed; never having traded counts as due. It does not affect
	// NeedsRebalance.
	CalendarDue      bool
}

type TaxLossHarvestingOpportunities struct {
	Opportunities []domain.TaxLossHarvestingEvent
	Message       string
}

type InvestmentRecommendations struct {
	RiskTolerance    domain.RiskTolerance
	TargetAllocation map[string]float64
}

type PortfolioSummary struct {
	UserID           string
	TotalValue       decimal.Decimal
	TotalGainLoss    decimal.Decimal
	ReturnPercentage decimal.Decimal
	NumHoldings      int
}

type seedHolding struct {
	Symbol   string
	Shares   int64
	AvgPrice int64
}

// every new user starts from this demo portfolio
var seedHoldings = []seedHolding{
	{Symbol: "SPY", Shares: 10, AvgPrice: 400},
	{Symbol: "AAPL", Shares: 20, AvgPrice: 150},
	{Symbol: "TSLA", Shares: 5, AvgPrice: 250},
	{Symbol: "MSFT", Shares: 15, AvgPrice: 300},
}

var recommendedAllocations = map[domain.RiskTolerance]map[string]float64{
	domain.RiskTolerance_Conservative: {"BND": 0.5, "VTI": 0.3, "Cash": 0.2},
	domain.RiskTolerance_Moderate:     {"BND": 0.3, "VTI": 0.5, "Cash": 0.2},
	domain.RiskTolerance_Aggressive:   {"BND": 0.1, "VTI": 0.8, "Cash": 0.1},
}

type advisoryServiceHandler struct {
	ProfileRepository                repository.ProfileRepository
	PortfolioRepository              repository.PortfolioRepository
	RebalancingEventRepository       repository.RebalancingEventRepository
	TaxLossHarvestingEventRepository repository.TaxLossHarvestingEventRepository
	MarketDataRepository             repository.MarketDataRepository
	ReplacementRepository            repository.ReplacementRepository
	UserLocker                       UserLocker
	TransactionCost                  decimal.Decimal
	Now                              func() time.Time
}

func NewAdvisoryService(
	profileRepository repository.ProfileRepository,
	portfolioRepository repository.PortfolioRepository,
	rebalancingEventRepository repository.RebalancingEventRepository,
	taxLossHarvestingEventRepository repository.TaxLossHarvestingEventRepository,
	marketDataRepository repository.MarketDataRepository,
	replacementRepository repository.ReplacementRepository,
	userLocker UserLocker,
	transactionCost decimal.Decimal,
) AdvisoryService {
	if userLocker == nil {
		userLocker = NewUserLocker()
	}
	return advisoryServiceHandler{
		ProfileRepository:                profileRepository,
		PortfolioRepository:              portfolioRepository,
		RebalancingEventRepository:       rebalancingEventRepository,
		TaxLossHarvestingEventRepository: taxLossHarvestingEventRepository,
		MarketDataRepository:             marketDataRepository,
		ReplacementRepository:            replacementRepository,
		UserLocker:                       userLocker,
		TransactionCost:                  transactionCost,
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func validateUserID(userID string) error {
	if userID == "" {
		return newValidationError("userId", "is required")
	}
	return nil
}

func failedTrade(format string, args ...any) *TradeResult {
	return &TradeResult{
		Success: false,
		Message: fmt.Sprintf(format, args...),
	}
}

// loadProfile returns the stored profile, creating the default one on first
// access. Callers must hold the user's lock.
func (h advisoryServiceHandler) loadProfile(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error) {
	profile, err := h.ProfileRepository.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = domain.NewUserInvestmentProfile(userID)
	if err := h.ProfileRepository.Put(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	logger.FromContext(ctx).Infow("created default profile", "userID", userID)

	return profile, nil
}

// loadPortfolio returns the user's portfolio with prices refreshed from
// market data, seeding the demo portfolio on first access. The refreshed
// portfolio is written back. Callers must hold the user's lock.
func (h advisoryServiceHandler) loadPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	portfolio, err := h.PortfolioRepository.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		portfolio, err = h.seedPortfolio(ctx, userID)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	} else if err := h.refreshPrices(ctx, portfolio); err != nil {
		return nil, err
	}

	if err := h.PortfolioRepository.Put(ctx, *portfolio); err != nil {
		return nil, fmt.Errorf("failed to save portfolio: %w", err)
	}

	return portfolio, nil
}

func (h advisoryServiceHandler) seedPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	portfolio := domain.NewPortfolio(userID)
	for _, seed := range seedHoldings {
		quote, err := h.MarketDataRepository.Lookup(ctx, seed.Symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to seed portfolio for user %s: %w", userID, err)
		}
		portfolio.UpdateHolding(domain.Holding{
			Symbol:       seed.Symbol,
			Name:         quote.Name,
			Shares:       decimal.NewFromInt(seed.Shares),
			AvgPrice:     decimal.NewFromInt(seed.AvgPrice),
			CurrentPrice: quote.CurrentPrice,
			Sector:       quote.Sector,
		})
	}
	logger.FromContext(ctx).Infow("seeded demo portfolio", "userID", userID, "numHoldings", len(portfolio.Holdings))

	return portfolio, nil
}

func (h advisoryServiceHandler) refreshPrices(ctx context.Context, portfolio *domain.Portfolio) error {
	for _, holding := range portfolio.Holdings {
		quote, err := h.MarketDataRepository.Lookup(ctx, holding.Symbol)
		if errors.Is(err, repository.ErrNotFound) {
			// keep the last known price
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to refresh price for %s: %w", holding.Symbol, err)
		}
		holding.CurrentPrice = quote.CurrentPrice
		holding.Sector = quote.Sector
	}
	return nil
}

// findReplacement returns nil when the symbol has no replacement or the
// replacement cannot be priced.
func (h advisoryServiceHandler) findReplacement(ctx context.Context, symbol string) (*domain.Asset, error) {
	replacementSymbol, ok := h.ReplacementRepository.ReplacementFor(symbol)
	if !ok {
		return nil, nil
	}
	quote, err := h.MarketDataRepository.Lookup(ctx, replacementSymbol)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up replacement %s for %s: %w", replacementSymbol, symbol, err)
	}
	return &domain.Asset{
		Symbol: quote.Symbol,
		Name:   quote.Name,
	}, nil
}

func (h advisoryServiceHandler) GetUserProfile(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return h.loadProfile(ctx, userID)
}

func (h advisoryServiceHandler) UpdateUserProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.UserInvestmentProfile, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	profile, err := h.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.apply(profile)

	if err := h.ProfileRepository.Put(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

func (h advisoryServiceHandler) GetUserPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return h.loadPortfolio(ctx, userID)
}

func (h advisoryServiceHandler) GetPortfolioSummary(ctx context.Context, userID string) (*PortfolioSummary, error) {
	portfolio, err := h.GetUserPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PortfolioSummary{
		UserID:           portfolio.UserID,
		TotalValue:       portfolio.TotalValue(),
		TotalGainLoss:    portfolio.TotalGainLoss(),
		ReturnPercentage: portfolio.PortfolioReturnPercentage(),
		NumHoldings:      len(portfolio.Holdings),
	}, nil
}

func (h advisoryServiceHandler) BuyAsset(ctx context.Context, userID, symbol string, sharesToBuy, pricePerShare decimal.Decimal) (*TradeResult, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	quote, err := h.MarketDataRepository.Lookup(ctx, symbol)
	if errors.Is(err, repository.ErrNotFound) {
		return failedTrade("Asset %s not found in market data.", symbol), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", symbol, err)
	}
	if !sharesToBuy.IsPositive() {
		return failedTrade("Shares to buy must be greater than zero."), nil
	}
	if !pricePerShare.IsPositive() {
		return failedTrade("Price per share must be greater than zero."), nil
	}

	portfolio, err := h.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	var holding domain.Holding
	if existing := portfolio.GetHolding(symbol); existing != nil {
		holding = *existing
		holding.AvgPrice = domain.WeightedAverageCost(existing.Shares, existing.AvgPrice, sharesToBuy, pricePerShare)
		holding.Shares = existing.Shares.Add(sharesToBuy)
		holding.CurrentPrice = quote.CurrentPrice
		holding.Sector = quote.Sector
	} else {
		holding = domain.Holding{
			Symbol:       symbol,
			Name:         quote.Name,
			Shares:       sharesToBuy,
			AvgPrice:     pricePerShare,
			CurrentPrice: quote.CurrentPrice,
			Sector:       quote.Sector,
		}
	}
	if err := holding.Validate(); err != nil {
		return nil, fmt.Errorf("failed to buy %s: %w", symbol, err)
	}
	portfolio.UpdateHolding(holding)

	now := h.Now()
	event := domain.RebalancingEvent{
		EventID:         uuid.New(),
		UserID:          userID,
		Timestamp:       now,
		ActionType:      domain.TradeSide_Buy,
		Asset:           domain.Asset{Symbol: symbol, Name: holding.Name},
		Quantity:        sharesToBuy,
		Price:           pricePerShare,
		TransactionCost: h.TransactionCost,
		Status:          domain.RebalancingEventStatus_Completed,
	}

	if err := h.recordTrade(ctx, *portfolio, event, nil); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"executed buy",
		"userID", userID,
		"symbol", symbol,
		"shares", sharesToBuy.String(),
		"price", pricePerShare.String(),
		"avgPrice", holding.AvgPrice.String(),
	)

	return &TradeResult{
		Success: true,
		Message: fmt.Sprintf("Successfully bought %s shares of %s at %s.", sharesToBuy.String(), symbol, util.FormatDollars(pricePerShare)),
		Event:   &event,
	}, nil
}

func (h advisoryServiceHandler) SellAsset(ctx context.Context, userID, symbol string, sharesToSell, pricePerShare decimal.Decimal) (*TradeResult, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	portfolio, err := h.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing := portfolio.GetHolding(symbol)
	if existing == nil {
		return failedTrade("You do not own any shares of %s.", symbol), nil
	}
	if !sharesToSell.IsPositive() {
		return failedTrade("Shares to sell must be greater than zero."), nil
	}
	if sharesToSell.GreaterThan(existing.Shares) {
		return failedTrade("Insufficient shares of %s: you own %s, tried to sell %s.", symbol, existing.Shares.String(), sharesToSell.String()), nil
	}
	if !pricePerShare.IsPositive() {
		return failedTrade("Price per share must be greater than zero."), nil
	}

	holding := *existing
	realizedGainLoss := sharesToSell.Mul(pricePerShare.Sub(holding.AvgPrice))

	if sharesToSell.Equal(holding.Shares) {
		portfolio.RemoveHolding(symbol)
	} else {
		// average cost is intentionally left as-is on a partial sale
		remaining := holding
		remaining.Shares = holding.Shares.Sub(sharesToSell)
		portfolio.UpdateHolding(remaining)
	}

	now := h.Now()
	event := domain.RebalancingEvent{
		EventID:         uuid.New(),
		UserID:          userID,
		Timestamp:       now,
		ActionType:      domain.TradeSide_Sell,
		Asset:           domain.Asset{Symbol: symbol, Name: holding.Name},
		Quantity:        sharesToSell,
		Price:           pricePerShare,
		TransactionCost: h.TransactionCost,
		Status:          domain.RebalancingEventStatus_Completed,
	}

	profile, err := h.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var tlhEvent *domain.TaxLossHarvestingEvent
	if profile.TaxLossHarvestingOptIn && realizedGainLoss.IsNegative() {
		replacement, err := h.findReplacement(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if replacement != nil {
			tlhEvent = &domain.TaxLossHarvestingEvent{
				EventID:   uuid.New(),
				UserID:    userID,
				Timestamp: now,
				SoldAsset: domain.SoldAsset{
					Symbol:     symbol,
					SharesSold: sharesToSell,
				},
				RealizedLossAmount: realizedGainLoss.Abs(),
				ReplacementAsset:   *replacement,
				Status:             domain.TaxLossHarvestingEventStatus_Completed,
			}
		}
	}

	if err := h.recordTrade(ctx, *portfolio, event, tlhEvent); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Infow(
		"executed sell",
		"userID", userID,
		"symbol", symbol,
		"shares", sharesToSell.String(),
		"price", pricePerShare.String(),
		"realizedGainLoss", realizedGainLoss.String(),
	)

	message := fmt.Sprintf("Successfully sold %s shares of %s at %s.", sharesToSell.String(), symbol, util.FormatDollars(pricePerShare))
	if tlhEvent != nil {
		log.Infow("harvested tax loss", "userID", userID, "symbol", symbol, "loss", tlhEvent.RealizedLossAmount.String())
		message = fmt.Sprintf(
			"%s Harvested a loss of %s; consider buying %s to keep similar market exposure.",
			message,
			util.FormatDollars(tlhEvent.RealizedLossAmount),
			tlhEvent.ReplacementAsset.Symbol,
		)
	}

	return &TradeResult{
		Success:                true,
		Message:                message,
		Event:                  &event,
		TaxLossHarvestingEvent: tlhEvent,
	}, nil
}

// recordTrade appends the trade (and any harvested loss) to the event logs,
// then persists the mutated portfolio. Holdings are left untouched when a
// log write fails.
func (h advisoryServiceHandler) recordTrade(ctx context.Context, portfolio domain.Portfolio, event domain.RebalancingEvent, tlhEvent *domain.TaxLossHarvestingEvent) error {
	if err := h.RebalancingEventRepository.Add(ctx, event); err != nil {
		return fmt.Errorf("failed to record rebalancing event: %w", err)
	}
	if tlhEvent != nil {
		if err := h.TaxLossHarvestingEventRepository.Add(ctx, *tlhEvent); err != nil {
			return fmt.Errorf("failed to record tax loss harvesting event: %w", err)
		}
	}
	if err := h.PortfolioRepository.Put(ctx, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio after %s: %w", event.ActionType, err)
	}

	// the trade is committed at this point; a stale rebalance time only
	// affects the informational calendar flag
	log := logger.FromContext(ctx)
	profile, err := h.loadProfile(ctx, event.UserID)
	if err != nil {
		log.Warnw("failed to load profile after trade", "userID", event.UserID, "error", err)
		return nil
	}
	profile.MarkRebalanced(event.Timestamp)
	if err := h.ProfileRepository.Put(ctx, *profile); err != nil {
		log.Warnw("failed to update last rebalance time", "userID", event.UserID, "error", err)
	}

	return nil
}

func newDriftDetail(current, target float64, totalValue decimal.Decimal) domain.DriftDetail {
	drift := current - target
	action := domain.TradeSide_Buy
	if drift > 0 {
		action = domain.TradeSide_Sell
	}
	return domain.DriftDetail{
		Current:        current,
		Target:         target,
		Drift:          drift,
		Action:         action,
		AmountToAdjust: math.Abs(drift) * totalValue.InexactFloat64(),
	}
}

func (h advisoryServiceHandler) CheckRebalancingStatus(ctx context.Context, userID string) (*RebalancingStatus, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	profile, err := h.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	portfolio, err := h.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &RebalancingStatus{
		NeedsRebalance: false,
		DriftDetails:   map[string]domain.DriftDetail{},
		CalendarDue:    profile.CalendarRebalanceDue(h.Now()),
	}

	totalValue := portfolio.TotalValue()
	if totalValue.IsZero() {
		return out, nil
	}

	threshold := profile.RebalancingThreshold
	absDrifts := stats.Float64Data{}
	held := map[string]bool{}

	for _, holding := range portfolio.Holdings {
		held[holding.Symbol] = true
		current := holding.CurrentValue().Div(totalValue).InexactFloat64()
		detail := newDriftDetail(current, profile.TargetAllocation[holding.Symbol], totalValue)
		absDrifts = append(absDrifts, math.Abs(detail.Drift))
		if math.Abs(detail.Drift) > threshold {
			out.NeedsRebalance = true
			out.DriftDetails[holding.Symbol] = detail
		}
	}

	// targets with no position yet need to be bought from zero
	for symbol, target := range profile.TargetAllocation {
		if held[symbol] {
			continue
		}
		detail := newDriftDetail(0, target, totalValue)
		absDrifts = append(absDrifts, math.Abs(detail.Drift))
		if math.Abs(detail.Drift) > threshold {
			out.NeedsRebalance = true
			out.DriftDetails[symbol] = detail
		}
	}

	if len(absDrifts) > 0 {
		maxDrift, err := stats.Max(absDrifts)
		if err != nil {
			return nil, fmt.Errorf("failed to compute max drift: %w", err)
		}
		out.MaxAbsoluteDrift = maxDrift
	}

	return out, nil
}

func (h advisoryServiceHandler) GetTaxLossHarvestingOpportunities(ctx context.Context, userID string) (*TaxLossHarvestingOpportunities, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	unlock, err := h.UserLocker.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	profile, err := h.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.TaxLossHarvestingOptIn {
		return &TaxLossHarvestingOpportunities{
			Opportunities: []domain.TaxLossHarvestingEvent{},
			Message:       MessageTaxLossHarvestingDisabled,
		}, nil
	}

	portfolio, err := h.loadPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := h.Now()
	opportunities := []domain.TaxLossHarvestingEvent{}
	for _, holding := range portfolio.Holdings {
		unrealized := holding.GainLoss()
		if !unrealized.IsNegative() {
			continue
		}
		replacement, err := h.findReplacement(ctx, holding.Symbol)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			continue
		}
		opportunities = append(opportunities, domain.TaxLossHarvestingEvent{
			EventID:   uuid.New(),
			UserID:    userID,
			Timestamp: now,
			SoldAsset: domain.SoldAsset{
				Symbol:     holding.Symbol,
				SharesSold: holding.Shares,
			},
			RealizedLossAmount: unrealized.Abs(),
			ReplacementAsset:   *replacement,
			Status:             domain.TaxLossHarvestingEventStatus_Potential,
		})
	}

	out := &TaxLossHarvestingOpportunities{
		Opportunities: opportunities,
	}
	if len(opportunities) == 0 {
		out.Message = MessageNoTaxLossHarvesting
	}

	return out, nil
}

// RecommendedAllocation maps a risk tolerance to a model allocation.
// Unknown tolerances get the moderate allocation.
func RecommendedAllocation(riskTolerance domain.RiskTolerance) map[string]float64 {
	allocation, ok := recommendedAllocations[riskTolerance]
	if !ok {
		allocation = recommendedAllocations[domain.RiskTolerance_Moderate]
	}
	out := make(map[string]float64, len(allocation))
	for symbol, fraction := range allocation {
		out[symbol] = fraction
	}
	return out
}

// TODO - factor in financial goals (target amount and horizon) once goals
// carry enough information to size an allocation
func (h advisoryServiceHandler) GetInvestmentRecommendations(ctx context.Context, userID string) (*InvestmentRecommendations, error) {
	profile, err := h.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &InvestmentRecommendations{
		RiskTolerance:    profile.RiskTolerance,
		TargetAllocation: RecommendedAllocation(profile.RiskTolerance),
	}, nil
}

func (h advisoryServiceHandler) ListRebalancingEvents(ctx context.Context, userID string) ([]domain.RebalancingEvent, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	events, err := h.RebalancingEventRepository.List(ctx, repository.EventListFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list rebalancing events: %w", err)
	}
	return events, nil
}

func (h advisoryServiceHandler) ListTaxLossHarvestingEvents(ctx context.Context, userID string) ([]domain.TaxLossHarvestingEvent, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	events, err := h.TaxLossHarvestingEventRepository.List(ctx, repository.EventListFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tax loss harvesting events: %w", err)
	}
	return events, nil
}
