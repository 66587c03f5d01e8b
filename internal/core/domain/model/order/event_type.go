package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// EventType is the kind of an order event. The integer codes are persisted in
// order_events.type and must never be renumbered.
type EventType int

const (
	// Unknown is the zero value and is never valid.
	Unknown EventType = iota
	Create
	Cancel
	Decline
	Approve
	Process
	Deliver
	ProducerRequestChange
	ApproveChangeRequest
	Dispute
	ResolveDispute
	Update
	ConsumerRequestChange
	DeclineChangeRequest
	CancelChangeRequest
)

var eventTypeNames = map[EventType]string{
	Create:                "Create",
	Cancel:                "Cancel",
	Decline:               "Decline",
	Approve:               "Approve",
	Process:               "Process",
	Deliver:               "Deliver",
	ProducerRequestChange: "ProducerRequestChange",
	ApproveChangeRequest:  "ApproveChangeRequest",
	Dispute:               "Dispute",
	ResolveDispute:        "ResolveDispute",
	Update:                "Update",
	ConsumerRequestChange: "ConsumerRequestChange",
	DeclineChangeRequest:  "DeclineChangeRequest",
	CancelChangeRequest:   "CancelChangeRequest",
}

var eventTypesByName = func() map[string]EventType {
	m := make(map[string]EventType, len(eventTypeNames))
	for t, name := range eventTypeNames {
		m[name] = t
	}
	return m
}()

// AllEventTypes returns the valid event types in ascending code order.
func AllEventTypes() []EventType {
	all := make([]EventType, 0, len(eventTypeNames))
	for t := Create; t <= CancelChangeRequest; t++ {
		all = append(all, t)
	}
	return all
}

// ParseEventType maps one of the 14 event type names to its EventType.
func ParseEventType(name string) (EventType, error) {
	if t, ok := eventTypesByName[name]; ok {
		return t, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("%q is not a known event type", name))
}

// EventTypeFromCode maps a persisted code back to its EventType.
func EventTypeFromCode(code int) (EventType, error) {
	t := EventType(code)
	if err := t.Validate(); err != nil {
		return Unknown, err
	}
	return t, nil
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func (t EventType) Code() int {
	return int(t)
}

func (t EventType) Validate() error {
	if _, ok := eventTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("%d is not a valid event type code", int(t)))
	}
	return nil
}

// IsTerminal reports whether no transition leaves t.
func (t EventType) IsTerminal() bool {
	return t == Cancel || t == Decline || t == ResolveDispute
}

// TerminalEventTypes lists the event types that end an order's lifecycle.
func TerminalEventTypes() []EventType {
	return []EventType{Cancel, Decline, ResolveDispute}
}

// SetsQuantity reports whether events of this type take the quantity from the
// request instead of carrying it forward.
func (t EventType) SetsQuantity() bool {
	return t == Update || t == ConsumerRequestChange || t == ProducerRequestChange
}

func (t EventType) carriesForward() bool {
	switch t {
	case Approve, Process, Deliver, Cancel, Decline, ApproveChangeRequest, Dispute:
		return true
	default:
		return false
	}
}

func (t EventType) revertsChange() bool {
	return t == DeclineChangeRequest || t == CancelChangeRequest
}
