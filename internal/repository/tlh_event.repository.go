package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"roboadvisor/internal/domain"
)

// TaxLossHarvestingEventRepository is an append-only log of harvested
// losses. Potential opportunities from a scan are not recorded here.
type TaxLossHarvestingEventRepository interface {
	Add(ctx context.Context, event domain.TaxLossHarvestingEvent) error
	List(ctx context.Context, filter EventListFilter) ([]domain.TaxLossHarvestingEvent, error)
}

type taxLossHarvestingEventRepositoryHandler struct {
	mu     sync.RWMutex
	events []domain.TaxLossHarvestingEvent
}

func NewTaxLossHarvestingEventRepository() TaxLossHarvestingEventRepository {
	return &taxLossHarvestingEventRepositoryHandler{
		events: []domain.TaxLossHarvestingEvent{},
	}
}

func (h *taxLossHarvestingEventRepositoryHandler) Add(ctx context.Context, event domain.TaxLossHarvestingEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, event)
	return nil
}

func (h *taxLossHarvestingEventRepositoryHandler) List(ctx context.Context, filter EventListFilter) ([]domain.TaxLossHarvestingEvent, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := []domain.TaxLossHarvestingEvent{}
	for _, e := range h.events {
		if filter.matches(e.UserID) {
			out = append(out, e)
		}
	}
	return out, nil
}

type postgresTaxLossHarvestingEventRepositoryHandler struct {
	Db *sql.DB
}

func NewPostgresTaxLossHarvestingEventRepository(db *sql.DB) TaxLossHarvestingEventRepository {
	return postgresTaxLossHarvestingEventRepositoryHandler{Db: db}
}

func (h postgresTaxLossHarvestingEventRepositoryHandler) Add(ctx context.Context, e domain.TaxLossHarvestingEvent) error {
	query := `
		INSERT INTO tax_loss_harvesting_event (
			event_id, user_id, ts, sold_symbol, shares_sold, realized_loss_amount,
			replacement_symbol, replacement_name, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := h.Db.ExecContext(
		ctx,
		query,
		e.EventID,
		e.UserID,
		e.Timestamp,
		e.SoldAsset.Symbol,
		e.SoldAsset.SharesSold,
		e.RealizedLossAmount,
		e.ReplacementAsset.Symbol,
		e.ReplacementAsset.Name,
		string(e.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tax loss harvesting event: %w", err)
	}

	return nil
}

func (h postgresTaxLossHarvestingEventRepositoryHandler) List(ctx context.Context, filter EventListFilter) ([]domain.TaxLossHarvestingEvent, error) {
	query := `
		SELECT event_id, user_id, ts, sold_symbol, shares_sold, realized_loss_amount,
			replacement_symbol, replacement_name, status
		FROM tax_loss_harvesting_event
		WHERE ($1::text IS NULL OR user_id = $1)
		ORDER BY seq ASC`

	rows, err := h.Db.QueryContext(ctx, query, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax loss harvesting events: %w", err)
	}
	defer rows.Close()

	out := []domain.TaxLossHarvestingEvent{}
	for rows.Next() {
		e := domain.TaxLossHarvestingEvent{}
		var status string
		err := rows.Scan(
			&e.EventID,
			&e.UserID,
			&e.Timestamp,
			&e.SoldAsset.Symbol,
			&e.SoldAsset.SharesSold,
			&e.RealizedLossAmount,
			&e.ReplacementAsset.Symbol,
			&e.ReplacementAsset.Name,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax loss harvesting event: %w", err)
		}
		e.Status = domain.TaxLossHarvestingEventStatus(status)
		e.Timestamp = e.Timestamp.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tax loss harvesting events: %w", err)
	}

	return out, nil
}
