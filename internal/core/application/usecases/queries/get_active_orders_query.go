package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists the orders whose current state is not terminal.
// A business sees the orders it takes part in under its role; admins see
// every active order.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(actor principal.Principal) (GetActiveOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Actor() principal.Principal {
	return q.actor
}

// GetActiveOrdersQueryResponse is an order together with its newest event.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	Consumer    kernel.UUID
	Producer    kernel.UUID
	Distributor *kernel.UUID
	Product     kernel.UUID
	State       order.EventType
	Quantity    kernel.Amount
	Price       kernel.Amount
	Sequence    int64
	UpdatedAt   time.Time
}
