package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	ErrHistoryIsEmpty        = errors.New("order has no events")
)

// QuantityRule validates a quantity against the ordered product.
// *product.Product satisfies it.
type QuantityRule interface {
	AcceptsQuantity(quantity kernel.Amount) error
}

// Order is a commitment between a consumer and the producer of one product,
// optionally delivered by a distributor. Its state is never stored on the
// aggregate; it is the type of the last event in its History.
type Order struct {
	id          kernel.UUID
	consumer    kernel.UUID
	producer    kernel.UUID
	distributor *kernel.UUID
	product     kernel.UUID

	isConstructed bool
}

// NewOrder places an order for quantity units of p on behalf of a verified
// consumer. The producer is the owner of the product and the Create event
// carries the product's current price.
func NewOrder(id kernel.UUID, consumer principal.Principal, p *product.Product, distributor *kernel.UUID, quantity kernel.Amount) (*Order, Event, error) {
	if err := errors.Join(consumer.Validate(), p.Validate()); err != nil {
		return nil, Event{}, err
	}
	if consumer.Role() != principal.Consumer {
		return nil, Event{}, errs.NewRoleNotAuthorizedErrorWithReason(consumer.Role().String(), "only consumers can place orders")
	}
	if !consumer.IsVerified() {
		return nil, Event{}, errs.NewRoleNotAuthorizedErrorWithReason(consumer.Role().String(), "the business is not verified")
	}
	if err := p.AcceptsQuantity(quantity); err != nil {
		return nil, Event{}, err
	}

	o, err := RestoreOrder(id, consumer.BusinessID(), p.Owner(), distributor, p.ID())
	if err != nil {
		return nil, Event{}, err
	}

	created, err := NewEvent(Create, quantity, p.Price(), 1)
	if err != nil {
		return nil, Event{}, err
	}

	return o, created, nil
}

// RestoreOrder rebuilds an order read back from storage.
func RestoreOrder(id, consumer, producer kernel.UUID, distributor *kernel.UUID, productID kernel.UUID) (*Order, error) {
	var distributorErr error
	if distributor != nil {
		distributorErr = distributor.Validate()
	}

	if err := errors.Join(
		id.Validate(),
		consumer.Validate(),
		producer.Validate(),
		distributorErr,
		productID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		consumer:      consumer,
		producer:      producer,
		distributor:   distributor,
		product:       productID,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Consumer() kernel.UUID {
	return o.consumer
}

func (o *Order) Producer() kernel.UUID {
	return o.producer
}

// Distributor returns nil when no distributor is involved.
func (o *Order) Distributor() *kernel.UUID {
	return o.distributor
}

func (o *Order) Product() kernel.UUID {
	return o.product
}

// IsParty reports whether the business takes part in the order under the
// given role.
func (o *Order) IsParty(businessID kernel.UUID, role principal.Role) bool {
	switch role {
	case principal.Consumer:
		return o.consumer.IsEqual(businessID)
	case principal.Producer:
		return o.producer.IsEqual(businessID)
	case principal.Distributor:
		return o.distributor != nil && o.distributor.IsEqual(businessID)
	default:
		return false
	}
}

// IsPartyAnyRole reports whether the business occupies any slot of the order.
func (o *Order) IsPartyAnyRole(businessID kernel.UUID) bool {
	return o.IsParty(businessID, principal.Consumer) ||
		o.IsParty(businessID, principal.Producer) ||
		o.IsParty(businessID, principal.Distributor)
}

// Apply runs the ledger for one requested transition and returns the events
// to append. history must be the full history of the order and must have been
// read under a lock that is held until the events are stored.
//
// Checks run in this order: the history is not empty, the actor is a verified
// party of the order (admins skip this only on admin-granted transitions such
// as ResolveDispute), the transition table allows
// the actor's role, the history preconditions hold. Quantities chosen by
// Update and the change requests are validated against rule.
func (o *Order) Apply(actor principal.Principal, history History, next EventType, submitted Submission, rule QuantityRule) ([]Event, error) {
	if err := errors.Join(o.Validate(), actor.Validate(), next.Validate()); err != nil {
		return nil, err
	}

	last, ok := history.Last()
	if !ok {
		return nil, errs.NewIntegrityViolationError("order", o.id.String(), ErrHistoryIsEmpty)
	}

	if err := o.authorizeActor(actor, last.Type(), next); err != nil {
		return nil, err
	}

	if err := IsTransitionAuthorized(last.Type(), next, actor.Role(), actor.IsAdmin()); err != nil {
		return nil, err
	}

	if err := CheckHistory(next, history); err != nil {
		return nil, err
	}

	events, err := DecideEvents(next, history, submitted)
	if err != nil {
		return nil, err
	}

	if next.SetsQuantity() && rule != nil {
		if err = rule.AcceptsQuantity(events[len(events)-1].Quantity()); err != nil {
			return nil, err
		}
	}

	return events, nil
}

// NextEventTypes lists the event types actor may append after history. It
// applies the same party, table and history checks as Apply, so every listed
// type is accepted by Apply given a valid submission.
func (o *Order) NextEventTypes(actor principal.Principal, history History) []EventType {
	next := make([]EventType, 0)
	last, ok := history.Last()
	if !ok || o.Validate() != nil || actor.Validate() != nil {
		return next
	}
	for _, t := range NextEventTypes(history, actor.Role(), actor.IsAdmin()) {
		if o.authorizeActor(actor, last.Type(), t) == nil {
			next = append(next, t)
		}
	}
	return next
}

func (o *Order) authorizeActor(actor principal.Principal, current, next EventType) error {
	if !actor.IsVerified() {
		return errs.NewRoleNotAuthorizedErrorWithReason(actor.Role().String(), "the business is not verified")
	}
	if actor.IsAdmin() && adminOverride(current, next) {
		return nil
	}
	if !o.IsParty(actor.BusinessID(), actor.Role()) {
		return errs.NewRoleNotAuthorizedErrorWithReason(
			actor.Role().String(),
			"the business is not the "+actor.Role().String()+" of this order",
		)
	}
	return nil
}
