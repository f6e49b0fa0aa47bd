package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Holding struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Shares       decimal.Decimal `json:"shares"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Sector       string          `json:"sector"`
}

func (h Holding) CurrentValue() decimal.Decimal {
	return h.Shares.Mul(h.CurrentPrice)
}

func (h Holding) CostBasis() decimal.Decimal {
	return h.Shares.Mul(h.AvgPrice)
}

func (h Holding) GainLoss() decimal.Decimal {
	return h.Shares.Mul(h.CurrentPrice.Sub(h.AvgPrice))
}

// ReturnPercentage is zero when the position has no cost basis.
func (h Holding) ReturnPercentage() decimal.Decimal {
	costBasis := h.CostBasis()
	if costBasis.IsZero() {
		return decimal.Zero
	}
	return h.GainLoss().Div(costBasis).Mul(hundred)
}

func (h Holding) DeepCopy() *Holding {
	return &Holding{
		Symbol:       h.Symbol,
		Name:         h.Name,
		Shares:       h.Shares,
		AvgPrice:     h.AvgPrice,
		CurrentPrice: h.CurrentPrice,
		Sector:       h.Sector,
	}
}

// WeightedAverageCost blends an existing position's cost basis with a new lot.
func WeightedAverageCost(existingShares, existingAvgPrice, addedShares, addedPrice decimal.Decimal) decimal.Decimal {
	totalShares := existingShares.Add(addedShares)
	if totalShares.IsZero() {
		return decimal.Zero
	}
	totalCost := existingShares.Mul(existingAvgPrice).Add(addedShares.Mul(addedPrice))
	return totalCost.Div(totalShares)
}

type Portfolio struct {
	UserID   string     `json:"userId"`
	Holdings []*Holding `json:"holdings"`
}

func NewPortfolio(userID string) *Portfolio {
	return &Portfolio{
		UserID:   userID,
		Holdings: []*Holding{},
	}
}

// AddHolding appends without checking for an existing position in the
// same symbol. Use UpdateHolding to keep symbols unique.
func (p *Portfolio) AddHolding(h Holding) {
	p.Holdings = append(p.Holdings, h.DeepCopy())
}

func (p *Portfolio) UpdateHolding(h Holding) {
	for i, existing := range p.Holdings {
		if existing.Symbol == h.Symbol {
			p.Holdings[i] = h.DeepCopy()
			return
		}
	}
	p.AddHolding(h)
}

func (p *Portfolio) RemoveHolding(symbol string) {
	kept := []*Holding{}
	for _, h := range p.Holdings {
		if h.Symbol != symbol {
			kept = append(kept, h)
		}
	}
	p.Holdings = kept
}

func (p Portfolio) GetHolding(symbol string) *Holding {
	for _, h := range p.Holdings {
		if h.Symbol == symbol {
			return h
		}
	}
	return nil
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for _, h := range p.Holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}

func (p Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.CurrentValue())
	}
	return total
}

func (p Portfolio) TotalGainLoss() decimal.Decimal {
	total := decimal.Zero
	for _, h := range p.Holdings {
		total = total.Add(h.GainLoss())
	}
	return total
}

// PortfolioReturnPercentage approximates return on cost basis using
// TotalValue - TotalGainLoss as the aggregate cost.
func (p Portfolio) PortfolioReturnPercentage() decimal.Decimal {
	totalValue := p.TotalValue()
	if totalValue.IsZero() {
		return decimal.Zero
	}
	totalGainLoss := p.TotalGainLoss()
	costBasis := totalValue.Sub(totalGainLoss)
	if costBasis.IsZero() {
		return decimal.Zero
	}
	return totalGainLoss.Div(costBasis).Mul(hundred)
}

func (p Portfolio) DeepCopy() *Portfolio {
	newPortfolio := &Portfolio{
		UserID:   p.UserID,
		Holdings: make([]*Holding, 0, len(p.Holdings)),
	}
	for _, h := range p.Holdings {
		newPortfolio.Holdings = append(newPortfolio.Holdings, h.DeepCopy())
	}
	return newPortfolio
}

// MarketQuote is the read model served by market data providers.
type MarketQuote struct {
	Symbol       string
	Name         string
	CurrentPrice decimal.Decimal
	Sector       string
}

// Validate reports fields that break the holding's numeric invariants.
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("holding is missing a symbol")
	}
	if h.Shares.IsNegative() {
		return fmt.Errorf("holding %s has negative shares: %s", h.Symbol, h.Shares.String())
	}
	if h.AvgPrice.IsNegative() {
		return fmt.Errorf("holding %s has negative average price: %s", h.Symbol, h.AvgPrice.String())
	}
	if h.CurrentPrice.IsNegative() {
		return fmt.Errorf("holding %s has negative current price: %s", h.Symbol, h.CurrentPrice.String())
	}
	return nil
}
