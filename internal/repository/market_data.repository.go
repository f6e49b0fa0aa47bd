package repository

import (
	"context"
	"fmt"

	"roboadvisor/internal/domain"

	"github.com/shopspring/decimal"
)

type MarketDataRepository interface {
	Lookup(ctx context.Context, symbol string) (*domain.MarketQuote, error)
}

type mockMarketDataRepositoryHandler struct {
	Quotes map[string]domain.MarketQuote
}

// NewMockMarketDataRepository serves a fixed quote table. A nil table
// falls back to DefaultMockQuotes.
func NewMockMarketDataRepository(quotes map[string]domain.MarketQuote) MarketDataRepository {
	if quotes == nil {
		quotes = DefaultMockQuotes()
	}
	return mockMarketDataRepositoryHandler{Quotes: quotes}
}

func (h mockMarketDataRepositoryHandler) Lookup(ctx context.Context, symbol string) (*domain.MarketQuote, error) {
	quote, ok := h.Quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("no market data for %s: %w", symbol, ErrNotFound)
	}
	return &quote, nil
}

func quote(symbol, name string, price float64, sector string) domain.MarketQuote {
	return domain.MarketQuote{
		Symbol:       symbol,
		Name:         name,
		CurrentPrice: decimal.NewFromFloat(price),
		Sector:       sector,
	}
}

func DefaultMockQuotes() map[string]domain.MarketQuote {
	quotes := []domain.MarketQuote{
		quote("SPY", "SPDR S&P 500 ETF Trust", 450, "Index Fund"),
		quote("VOO", "Vanguard S&P 500 ETF", 415, "Index Fund"),
		quote("AAPL", "Apple Inc.", 175, "Technology"),
		quote("APLF", "Apple Alternative Fund", 172, "Technology"),
		quote("MSFT", "Microsoft Corporation", 330, "Technology"),
		quote("GOOGL", "Alphabet Inc.", 135, "Technology"),
		quote("AMZN", "Amazon.com, Inc.", 130, "Consumer Discretionary"),
		quote("TSLA", "Tesla, Inc.", 200, "Automotive"),
		quote("TSLF", "Tesla Alternative Fund", 195, "Automotive"),
		quote("BND", "Vanguard Total Bond Market ETF", 72, "Bonds"),
		quote("VTI", "Vanguard Total Stock Market ETF", 220, "Index Fund"),
	}

	out := map[string]domain.MarketQuote{}
	for _, q := range quotes {
		out[q.Symbol] = q
	}
	return out
}
