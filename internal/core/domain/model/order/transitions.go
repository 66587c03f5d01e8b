package order

import (
	"slices"

	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/errs"
)

// permission lists the roles allowed to perform one transition. admin grants
// the transition to any principal carrying the admin flag.
type permission struct {
	roles []principal.Role
	admin bool
}

func allow(roles ...principal.Role) permission {
	return permission{roles: roles}
}

func (p permission) orAdmin() permission {
	p.admin = true
	return p
}

func (p permission) permits(role principal.Role, isAdmin bool) bool {
	return slices.Contains(p.roles, role) || (isAdmin && p.admin)
}

// afterChangeRequest is the set of transitions available once a change
// request was settled. consumerRequestChange differs between settlements.
func afterChangeRequest(consumerRequestChange permission) map[EventType]permission {
	return map[EventType]permission{
		Cancel:                allow(principal.Consumer, principal.Producer),
		Update:                allow(principal.Consumer),
		Approve:               allow(principal.Producer),
		Process:               allow(principal.Producer),
		Deliver:               allow(principal.Producer),
		ProducerRequestChange: allow(principal.Producer),
		ConsumerRequestChange: consumerRequestChange,
	}
}

func beforeApproval() map[EventType]permission {
	return map[EventType]permission{
		Update:                allow(principal.Consumer),
		Cancel:                allow(principal.Consumer),
		Decline:               allow(principal.Producer),
		Approve:               allow(principal.Producer),
		ProducerRequestChange: allow(principal.Producer),
	}
}

// transitions maps the current event type to the event types that may follow
// it. Cancel, Decline and ResolveDispute have no entry and are terminal.
var transitions = map[EventType]map[EventType]permission{
	Create: beforeApproval(),
	Update: beforeApproval(),
	Approve: {
		Cancel:                allow(principal.Consumer, principal.Producer),
		Process:               allow(principal.Producer),
		Deliver:               allow(principal.Producer),
		ProducerRequestChange: allow(principal.Producer),
		ConsumerRequestChange: allow(principal.Consumer),
	},
	ProducerRequestChange: {
		ApproveChangeRequest: allow(principal.Consumer),
		DeclineChangeRequest: allow(principal.Consumer),
		CancelChangeRequest:  allow(principal.Producer),
	},
	ConsumerRequestChange: {
		ApproveChangeRequest: allow(principal.Producer),
		DeclineChangeRequest: allow(principal.Producer),
		CancelChangeRequest:  allow(principal.Consumer),
	},
	ApproveChangeRequest: afterChangeRequest(allow(principal.Consumer)),
	DeclineChangeRequest: afterChangeRequest(allow(principal.Consumer)),
	CancelChangeRequest:  afterChangeRequest(allow(principal.Producer)),
	Process: {
		Cancel:                allow(principal.Consumer, principal.Producer),
		Deliver:               allow(principal.Producer, principal.Distributor),
		ConsumerRequestChange: allow(principal.Consumer),
		ProducerRequestChange: allow(principal.Producer),
	},
	Deliver: {
		ProducerRequestChange: allow(principal.Producer),
		Dispute:               allow(principal.Consumer),
	},
	Dispute: {
		ResolveDispute: allow(principal.Producer).orAdmin(),
	},
}

// IsTransitionAuthorized checks whether a principal with the given role and
// admin flag may move an order from current to next.
func IsTransitionAuthorized(current, next EventType, role principal.Role, isAdmin bool) error {
	perm, ok := transitions[current][next]
	if !ok {
		return errs.NewTransitionNotPossibleError(current.String(), next.String())
	}
	if !perm.permits(role, isAdmin) {
		return errs.NewRoleNotAuthorizedError(role.String(), current.String(), next.String())
	}
	return nil
}

// NextEventTypes lists the event types a principal may append after history,
// in ascending code order. A type is listed only when the transition table
// allows the role and the history preconditions of that type hold.
func NextEventTypes(history History, role principal.Role, isAdmin bool) []EventType {
	next := make([]EventType, 0)
	last, ok := history.Last()
	if !ok {
		return next
	}
	for _, t := range AllEventTypes() {
		perm, ok := transitions[last.Type()][t]
		if !ok || !perm.permits(role, isAdmin) {
			continue
		}
		if CheckHistory(t, history) != nil {
			continue
		}
		next = append(next, t)
	}
	return next
}

// adminOverride reports whether admins may take the transition from current
// to next without being a party of the order.
func adminOverride(current, next EventType) bool {
	perm, ok := transitions[current][next]
	return ok && perm.admin
}
