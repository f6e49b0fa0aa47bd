package repository

import (
	"context"
	"fmt"
	"sync"

	"roboadvisor/internal/domain"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error)
	Put(ctx context.Context, profile domain.UserInvestmentProfile) error
}

type profileRepositoryHandler struct {
	mu       sync.RWMutex
	profiles map[string]*domain.UserInvestmentProfile
}

func NewProfileRepository() ProfileRepository {
	return &profileRepositoryHandler{
		profiles: map[string]*domain.UserInvestmentProfile{},
	}
}

func (h *profileRepositoryHandler) Get(ctx context.Context, userID string) (*domain.UserInvestmentProfile, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	profile, ok := h.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, ErrNotFound)
	}

	return profile.DeepCopy(), nil
}

func (h *profileRepositoryHandler) Put(ctx context.Context, profile domain.UserInvestmentProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("failed to put profile: missing user id")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.profiles[profile.UserID] = profile.DeepCopy()

	return nil
}
