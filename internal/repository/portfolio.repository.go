package repository

import (
	"context"
	"fmt"
	"sync"

	"roboadvisor/internal/domain"
)

type PortfolioRepository interface {
	Get(ctx context.Context, userID string) (*domain.Portfolio, error)
	Put(ctx context.Context, portfolio domain.Portfolio) error
}

type portfolioRepositoryHandler struct {
	mu         sync.RWMutex
	portfolios map[string]*domain.Portfolio
}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepositoryHandler{
		portfolios: map[string]*domain.Portfolio{},
	}
}

func (h *portfolioRepositoryHandler) Get(ctx context.Context, userID string) (*domain.Portfolio, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	portfolio, ok := h.portfolios[userID]
	if !ok {
		return nil, fmt.Errorf("failed to get portfolio for user %s: %w", userID, ErrNotFound)
	}

	return portfolio.DeepCopy(), nil
}

func (h *portfolioRepositoryHandler) Put(ctx context.Context, portfolio domain.Portfolio) error {
	if portfolio.UserID == "" {
		return fmt.Errorf("failed to put portfolio: missing user id")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.portfolios[portfolio.UserID] = portfolio.DeepCopy()

	return nil
}
