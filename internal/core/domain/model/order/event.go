package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event is one immutable entry of an order's ledger. Sequence numbers start
// at 1 and grow by one per appended event; they order the history even when
// two events share an insertion timestamp.
type Event struct {
	kind       EventType
	quantity   kernel.Amount
	price      kernel.Amount
	sequence   int64
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent builds an event that has not been stored yet. Its timestamp is
// assigned on insertion.
func NewEvent(kind EventType, quantity, price kernel.Amount, sequence int64) (Event, error) {
	var sequenceErr error
	if sequence < 1 {
		sequenceErr = errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}

	if err := errors.Join(
		kind.Validate(),
		quantity.Validate(),
		price.Validate(),
		sequenceErr,
	); err != nil {
		return Event{}, err
	}

	return Event{
		kind:     kind,
		quantity: quantity,
		price:    price,
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreEvent rebuilds a stored event.
func RestoreEvent(kind EventType, quantity, price kernel.Amount, sequence int64, occurredAt time.Time) (Event, error) {
	e, err := NewEvent(kind, quantity, price, sequence)
	if err != nil {
		return Event{}, err
	}
	e.occurredAt = occurredAt
	return e, nil
}

func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e Event) Type() EventType {
	return e.kind
}

func (e Event) Quantity() kernel.Amount {
	return e.quantity
}

func (e Event) Price() kernel.Amount {
	return e.price
}

func (e Event) Sequence() int64 {
	return e.sequence
}

// OccurredAt is the zero time for events that were not stored yet.
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
