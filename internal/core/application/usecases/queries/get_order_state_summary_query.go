package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStateSummaryQueryIsNotConstructed = errors.New(
	"GetOrderStateSummaryQuery must be created via NewGetOrderStateSummaryQuery constructor",
)

// GetOrderStateSummaryQuery counts orders per current state.
type GetOrderStateSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStateSummaryQuery() GetOrderStateSummaryQuery {
	return GetOrderStateSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStateSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStateSummaryQueryIsNotConstructed)
}

type GetOrderStateSummaryQueryResponse struct {
	State  order.EventType
	Orders int64
}
