package order

import (
	"cmp"
	"fmt"
	"slices"

	"marketplace/internal/pkg/errs"
)

// History is the full ledger of one order, newest event first.
type History struct {
	events []Event
}

// NewHistory orders events by descending sequence and rejects duplicates
// or events that were not constructed.
func NewHistory(events []Event) (History, error) {
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b Event) int {
		return cmp.Compare(b.sequence, a.sequence)
	})

	for i, e := range sorted {
		if err := e.Validate(); err != nil {
			return History{}, err
		}
		if i > 0 && sorted[i-1].sequence == e.sequence {
			return History{}, errs.NewValueIsInvalidErrorWithCause(
				"history",
				fmt.Errorf("sequence %d appears more than once", e.sequence),
			)
		}
	}

	return History{events: sorted}, nil
}

func (h History) Len() int {
	return len(h.events)
}

func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// Last is the most recent event. Its type is the current state of the order.
func (h History) Last() (Event, bool) {
	if len(h.events) == 0 {
		return Event{}, false
	}
	return h.events[0], true
}

// BeforeLast is the event preceding the most recent one.
func (h History) BeforeLast() (Event, bool) {
	if len(h.events) < 2 {
		return Event{}, false
	}
	return h.events[1], true
}

// Contains reports whether an event of type t occurred at any point.
func (h History) Contains(t EventType) bool {
	return slices.ContainsFunc(h.events, func(e Event) bool {
		return e.kind == t
	})
}

// Events returns a copy of the events, newest first.
func (h History) Events() []Event {
	return slices.Clone(h.events)
}

// Append returns a new history with the given events recorded on top.
func (h History) Append(events ...Event) (History, error) {
	return NewHistory(append(slices.Clone(h.events), events...))
}
