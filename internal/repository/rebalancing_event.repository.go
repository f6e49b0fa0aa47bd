package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"roboadvisor/internal/domain"
)

type EventListFilter struct {
	UserID *string
}

func (f EventListFilter) matches(userID string) bool {
	return f.UserID == nil || *f.UserID == userID
}

// RebalancingEventRepository is an append-only log of executed trades.
type RebalancingEventRepository interface {
	Add(ctx context.Context, event domain.RebalancingEvent) error
	List(ctx context.Context, filter EventListFilter) ([]domain.RebalancingEvent, error)
}

type rebalancingEventRepositoryHandler struct {
	mu     sync.RWMutex
	events []domain.RebalancingEvent
}

func NewRebalancingEventRepository() RebalancingEventRepository {
	return &rebalancingEventRepositoryHandler{
		events: []domain.RebalancingEvent{},
	}
}

func (h *rebalancingEventRepositoryHandler) Add(ctx context.Context, event domain.RebalancingEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, event)
	return nil
}

func (h *rebalancingEventRepositoryHandler) List(ctx context.Context, filter EventListFilter) ([]domain.RebalancingEvent, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := []domain.RebalancingEvent{}
	for _, e := range h.events {
		if filter.matches(e.UserID) {
			out = append(out, e)
		}
	}
	return out, nil
}

type postgresRebalancingEventRepositoryHandler struct {
	Db *sql.DB
}

func NewPostgresRebalancingEventRepository(db *sql.DB) RebalancingEventRepository {
	return postgresRebalancingEventRepositoryHandler{Db: db}
}

func (h postgresRebalancingEventRepositoryHandler) Add(ctx context.Context, e domain.RebalancingEvent) error {
	query := `
		INSERT INTO rebalancing_event (
			event_id, user_id, ts, action_type, asset_symbol, asset_name,
			quantity, price, transaction_cost, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := h.Db.ExecContext(
		ctx,
		query,
		e.EventID,
		e.UserID,
		e.Timestamp,
		string(e.ActionType),
		e.Asset.Symbol,
		e.Asset.Name,
		e.Quantity,
		e.Price,
		e.TransactionCost,
		string(e.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert rebalancing event: %w", err)
	}

	return nil
}

func (h postgresRebalancingEventRepositoryHandler) List(ctx context.Context, filter EventListFilter) ([]domain.RebalancingEvent, error) {
	query := `
		SELECT event_id, user_id, ts, action_type, asset_symbol, asset_name,
			quantity, price, transaction_cost, status
		FROM rebalancing_event
		WHERE ($1::text IS NULL OR user_id = $1)
		ORDER BY seq ASC`

	rows, err := h.Db.QueryContext(ctx, query, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rebalancing events: %w", err)
	}
	defer rows.Close()

	out := []domain.RebalancingEvent{}
	for rows.Next() {
		e := domain.RebalancingEvent{}
		var actionType, status string
		err := rows.Scan(
			&e.EventID,
			&e.UserID,
			&e.Timestamp,
			&actionType,
			&e.Asset.Symbol,
			&e.Asset.Name,
			&e.Quantity,
			&e.Price,
			&e.TransactionCost,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rebalancing event: %w", err)
		}
		e.ActionType = domain.TradeSide(actionType)
		e.Status = domain.RebalancingEventStatus(status)
		e.Timestamp = e.Timestamp.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list rebalancing events: %w", err)
	}

	return out, nil
}
