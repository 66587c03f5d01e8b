package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventView is one ledger entry as returned by queries.
type EventView struct {
	Type       order.EventType
	Sequence   int64
	Quantity   kernel.Amount
	Price      kernel.Amount
	OccurredAt time.Time
}

// eventRow holds the scanned columns of an order_events row.
type eventRow struct {
	kind       int
	sequence   int64
	quantity   decimal.Decimal
	price      decimal.Decimal
	occurredAt time.Time
}

func (r eventRow) view() (EventView, error) {
	kind, err := order.EventTypeFromCode(r.kind)
	if err != nil {
		return EventView{}, err
	}
	quantity, err := kernel.NewAmount("quantity", r.quantity)
	if err != nil {
		return EventView{}, err
	}
	price, err := kernel.NewAmount("price", r.price)
	if err != nil {
		return EventView{}, err
	}

	return EventView{
		Type:       kind,
		Sequence:   r.sequence,
		Quantity:   quantity,
		Price:      price,
		OccurredAt: r.occurredAt,
	}, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // a missing distributor is not an error
	}
	value, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func terminalCodes() []int {
	terminal := order.TerminalEventTypes()
	codes := make([]int, 0, len(terminal))
	for _, t := range terminal {
		codes = append(codes, t.Code())
	}
	return codes
}
