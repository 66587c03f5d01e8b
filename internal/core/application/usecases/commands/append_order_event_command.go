package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAppendOrderEventCommandIsNotConstructed = errors.New(
	"AppendOrderEventCommand must be created via NewAppendOrderEventCommand constructor",
)

// AppendOrderEventCommand asks the ledger to move an order to a new state.
// Quantity and price are optional; which of them are used depends on the
// requested event type.
//
// Example:
//
//	q := decimal.NewFromInt(30)
//	cmd, err := NewAppendOrderEventCommand(actor, orderID, "ProducerRequestChange", &q, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AppendOrderEventCommand struct { //nolint:recvcheck //using for validation
	actor     principal.Principal
	orderID   kernel.UUID
	eventType order.EventType
	quantity  *kernel.Amount
	price     *kernel.Amount

	guard guard.ConstructorGuard
}

func NewAppendOrderEventCommand(
	actor principal.Principal,
	orderID kernel.UUID,
	eventType string,
	quantity *decimal.Decimal,
	price *decimal.Decimal,
) (AppendOrderEventCommand, error) {
	cmd := AppendOrderEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setEventType(eventType),
		cmd.setQuantity(quantity),
		cmd.setPrice(price),
	); err != nil {
		return AppendOrderEventCommand{}, err
	}

	return cmd, nil
}

func (c AppendOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendOrderEventCommandIsNotConstructed)
}

func (c AppendOrderEventCommand) Actor() principal.Principal {
	return c.actor
}

func (c AppendOrderEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AppendOrderEventCommand) EventType() order.EventType {
	return c.eventType
}

// Submission returns the submitted quantity and price, nil when absent.
func (c AppendOrderEventCommand) Submission() order.Submission {
	return order.Submission{
		Quantity: c.quantity,
		Price:    c.price,
	}
}

func (c *AppendOrderEventCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AppendOrderEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendOrderEventCommand) setEventType(name string) error {
	eventType, err := order.ParseEventType(name)
	if err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}

func (c *AppendOrderEventCommand) setQuantity(quantity *decimal.Decimal) error {
	amount, err := optionalAmount("quantity", quantity)
	if err != nil {
		return err
	}

	c.quantity = amount
	return nil
}

func (c *AppendOrderEventCommand) setPrice(price *decimal.Decimal) error {
	amount, err := optionalAmount("price", price)
	if err != nil {
		return err
	}

	c.price = amount
	return nil
}

func optionalAmount(paramName string, value *decimal.Decimal) (*kernel.Amount, error) {
	if value == nil {
		return nil, nil //nolint:nilnil // absent values are allowed
	}

	amount, err := kernel.NewAmount(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
