package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a consumer placing an order for a product.
// The distributor is optional.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(actor, orderID, productID, nil, decimal.NewFromInt(25))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       principal.Principal
	orderID     kernel.UUID
	productID   kernel.UUID
	distributor *kernel.UUID
	quantity    kernel.Amount

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and that quantity is
// positive. Whether the product accepts a fractional quantity is checked by
// the handler once the product is loaded.
func NewCreateOrderCommand(
	actor principal.Principal,
	orderID kernel.UUID,
	productID kernel.UUID,
	distributor *kernel.UUID,
	quantity decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setDistributor(distributor),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() principal.Principal {
	return c.actor
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Distributor returns nil when the order has no distributor.
func (c CreateOrderCommand) Distributor() *kernel.UUID {
	return c.distributor
}

func (c CreateOrderCommand) Quantity() kernel.Amount {
	return c.quantity
}

func (c *CreateOrderCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setDistributor(distributor *kernel.UUID) error {
	if distributor == nil {
		return nil
	}
	if err := distributor.Validate(); err != nil {
		return err
	}

	id := *distributor
	c.distributor = &id
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity decimal.Decimal) error {
	amount, err := kernel.NewAmount("quantity", quantity)
	if err != nil {
		return err
	}

	c.quantity = amount
	return nil
}
