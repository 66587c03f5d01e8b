package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderChanged describes events appended to one order in a committed
// transaction.
type OrderChanged struct {
	Order  *order.Order
	Events []order.Event
}

// OrderChangedPublisher announces committed ledger changes to other services.
// Publishing happens after commit and never changes the ledger outcome.
type OrderChangedPublisher interface {
	Publish(ctx context.Context, changed OrderChanged) error
}
