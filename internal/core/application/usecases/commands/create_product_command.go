package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a catalogue entry owned by the acting producer.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(actor, kernel.NewUUID(), "Potatoes", decimal.RequireFromString("0.80"), true)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor            principal.Principal
	productID        kernel.UUID
	name             string
	price            kernel.Amount
	allowFloatValues bool

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	actor principal.Principal,
	productID kernel.UUID,
	name string,
	price decimal.Decimal,
	allowFloatValues bool,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		allowFloatValues: allowFloatValues,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() principal.Principal {
	return c.actor
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Price() kernel.Amount {
	return c.price
}

func (c CreateProductCommand) AllowFloatValues() bool {
	return c.allowFloatValues
}

func (c *CreateProductCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	amount, err := kernel.NewAmount("price", price)
	if err != nil {
		return err
	}

	c.price = amount
	return nil
}
