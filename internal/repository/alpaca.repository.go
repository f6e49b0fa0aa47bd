package repository

import (
	"context"
	"errors"
	"fmt"

	"roboadvisor/internal/domain"
	"roboadvisor/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// alpacaMarketDataRepositoryHandler prices symbols from Alpaca's latest
// quotes. Alpaca has no sector data, so names and sectors come from
// Reference when it knows the symbol.
type alpacaMarketDataRepositoryHandler struct {
	MdClient  *marketdata.Client
	Reference MarketDataRepository
}

func NewAlpacaMarketDataRepository(apiKey, apiSecret, endpoint string, reference MarketDataRepository) MarketDataRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaMarketDataRepositoryHandler{
		MdClient:  mdClient,
		Reference: reference,
	}
}

func (h alpacaMarketDataRepositoryHandler) Lookup(ctx context.Context, symbol string) (*domain.MarketQuote, error) {
	log := logger.FromContext(ctx)

	results, err := h.MdClient.GetLatestQuotes([]string{symbol}, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quote for %s: %w", symbol, err)
	}
	result, ok := results[symbol]
	if !ok {
		return nil, fmt.Errorf("no alpaca quote for %s: %w", symbol, ErrNotFound)
	}

	price := decimal.NewFromFloat(result.BidPrice)
	if price.IsZero() {
		return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
	}

	out := &domain.MarketQuote{
		Symbol:       symbol,
		Name:         symbol,
		CurrentPrice: price,
		Sector:       "Unknown",
	}

	if h.Reference != nil {
		ref, err := h.Reference.Lookup(ctx, symbol)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if ref != nil {
			out.Name = ref.Name
			out.Sector = ref.Sector
		} else {
			log.Debugf("no reference data for %s, using symbol as name", symbol)
		}
	}

	return out, nil
}
