// Package ports defines the contracts between the application layer and the
// infrastructure that stores products and orders and announces order changes.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists orders and their event ledger.
type OrderRepository interface {
	// Add stores a new order together with its Create event.
	Add(ctx context.Context, aggregate *order.Order, created order.Event) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Concurrent ledger writers on the same order queue
	// behind this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// History returns every event of the order, newest first.
	History(ctx context.Context, id kernel.UUID) (order.History, error)

	// AppendEvents stores new ledger events. A sequence number that already
	// exists for the order fails with errs.ErrConcurrentModification.
	AppendEvents(ctx context.Context, aggregate *order.Order, events ...order.Event) error
}
