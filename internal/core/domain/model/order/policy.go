package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Submission carries the quantity and price sent with an event request.
// Either may be nil; which ones are used depends on the event type.
type Submission struct {
	Quantity *kernel.Amount
	Price    *kernel.Amount
}

// DecideEvents computes the event(s) to append for an authorized transition.
// Sequences continue from the last event of history.
//
//   - Deliver before any Approve yields an implicit Approve followed by Deliver.
//   - Carry-forward types copy the last event's quantity and price.
//   - DeclineChangeRequest and CancelChangeRequest restore the terms of the
//     event before the pending change request.
//   - Update and the change requests take the submitted quantity and keep the
//     last price.
//   - Anything else takes what was submitted, falling back to the last values.
func DecideEvents(next EventType, history History, submitted Submission) ([]Event, error) {
	last, ok := history.Last()
	if !ok {
		return nil, ErrHistoryIsEmpty
	}
	sequence := last.Sequence() + 1

	switch {
	case next == Deliver && !history.Contains(Approve):
		approve, err := NewEvent(Approve, last.Quantity(), last.Price(), sequence)
		if err != nil {
			return nil, err
		}
		deliver, err := NewEvent(Deliver, last.Quantity(), last.Price(), sequence+1)
		if err != nil {
			return nil, err
		}
		return []Event{approve, deliver}, nil

	case next.carriesForward():
		return single(next, last.Quantity(), last.Price(), sequence)

	case next.revertsChange():
		beforeLast, found := history.BeforeLast()
		if !found {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"eventType",
				fmt.Errorf("%s needs an event before the pending change request", next),
			)
		}
		return single(next, beforeLast.Quantity(), beforeLast.Price(), sequence)

	case next.SetsQuantity():
		if submitted.Quantity == nil {
			return nil, errs.NewValueIsRequiredError("quantity")
		}
		return single(next, *submitted.Quantity, last.Price(), sequence)

	default:
		quantity, price := last.Quantity(), last.Price()
		if submitted.Quantity != nil {
			quantity = *submitted.Quantity
		}
		if submitted.Price != nil {
			price = *submitted.Price
		}
		return single(next, quantity, price, sequence)
	}
}

func single(kind EventType, quantity, price kernel.Amount, sequence int64) ([]Event, error) {
	e, err := NewEvent(kind, quantity, price, sequence)
	if err != nil {
		return nil, err
	}
	return []Event{e}, nil
}
