package order

import (
	"context"
	"fmt"

	"github.com/wellywell/shopsync/internal/types"
)

// Store is the persistence contract the upsert gate needs. Lookups return
// (nil, nil) when no order with the given external ID exists.
type Store interface {
	GetOrderByExternalID(ctx context.Context, externalID string) (*types.Order, error)
	CreateOrder(ctx context.Context, order types.Order) (*types.Order, error)
	UpdateOrderByExternalID(ctx context.Context, externalID string, order types.Order) (*types.Order, error)
}

type PersistenceError struct {
	ExternalID string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting order %s failed: %s", e.ExternalID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Upserter is the only writer of synced orders. It commits one transformed
// order at a time, keyed by external ID.
type Upserter struct {
	store Store
}

func NewUpserter(store Store) *Upserter {
	return &Upserter{store: store}
}

// Upsert creates the order if it is unknown, replaces its sync-relevant
// fields if it exists and updateExisting allows it, and skips otherwise.
func (u *Upserter) Upsert(ctx context.Context, order types.Order, updateExisting bool) (types.UpsertOutcome, error) {

	existing, err := u.store.GetOrderByExternalID(ctx, order.ExternalID)
	if err != nil {
		return "", fmt.Errorf("%w", &PersistenceError{ExternalID: order.ExternalID, Err: err})
	}

	if existing == nil {
		if _, err := u.store.CreateOrder(ctx, order); err != nil {
			return "", fmt.Errorf("%w", &PersistenceError{ExternalID: order.ExternalID, Err: err})
		}
		return types.OutcomeCreated, nil
	}

	if !updateExisting {
		return types.OutcomeSkipped, nil
	}

	if _, err := u.store.UpdateOrderByExternalID(ctx, order.ExternalID, order); err != nil {
		return "", fmt.Errorf("%w", &PersistenceError{ExternalID: order.ExternalID, Err: err})
	}
	return types.OutcomeUpdated, nil
}

// Refresh updates an already known order and skips unknown ones. Used by
// the status-monitoring pass, which must never create records.
func (u *Upserter) Refresh(ctx context.Context, order types.Order) (types.UpsertOutcome, error) {

	existing, err := u.store.GetOrderByExternalID(ctx, order.ExternalID)
	if err != nil {
		return "", fmt.Errorf("%w", &PersistenceError{ExternalID: order.ExternalID, Err: err})
	}
	if existing == nil {
		return types.OutcomeSkipped, nil
	}
	if _, err := u.store.UpdateOrderByExternalID(ctx, order.ExternalID, order); err != nil {
		return "", fmt.Errorf("%w", &PersistenceError{ExternalID: order.ExternalID, Err: err})
	}
	return types.OutcomeUpdated, nil
}
