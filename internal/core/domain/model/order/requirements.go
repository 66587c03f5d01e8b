package order

import "marketplace/internal/pkg/errs"

// requirement states whether an event of type eventType must (required) or
// must not (!required) appear somewhere in the history.
type requirement struct {
	eventType EventType
	required  bool
}

// historyRequirements lists, per requested event type, the requirements in
// ascending event type code so the first failure reported is stable.
var historyRequirements = map[EventType][]requirement{
	Cancel:  {{Deliver, false}},
	Decline: {{Approve, false}},
	Approve: {{Approve, false}, {Process, false}, {Deliver, false}},
	Process: {{Approve, true}, {Process, false}, {Deliver, false}},
	Deliver: {{Approve, true}, {Process, true}, {Deliver, false}},

	ConsumerRequestChange: {{Deliver, false}},
	ProducerRequestChange: {{Approve, true}},

	Update:  {{Approve, false}},
	Dispute: {{Deliver, true}},
}

// CheckHistory verifies the historical preconditions of next against the
// full history of the order.
func CheckHistory(next EventType, history History) error {
	for _, req := range historyRequirements[next] {
		if history.Contains(req.eventType) != req.required {
			return errs.NewHistoryPreconditionFailedError(next.String(), req.eventType.String(), req.required)
		}
	}
	return nil
}
