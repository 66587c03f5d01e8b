// Package product holds the catalogue entry orders are placed against. Only
// the attributes the order ledger needs are modelled: the owning producer,
// the unit price and whether fractional quantities may be ordered.
package product

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is owned by exactly one producer business.
type Product struct {
	id               kernel.UUID
	owner            kernel.UUID
	name             string
	price            kernel.Amount
	allowFloatValues bool

	isConstructed bool
}

// NewProduct creates a catalogue entry. The name is trimmed and must not be empty.
func NewProduct(id, owner kernel.UUID, name string, price kernel.Amount, allowFloatValues bool) (*Product, error) {
	p := &Product{
		allowFloatValues: allowFloatValues,
		isConstructed:    true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwner(owner),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product read back from storage.
func RestoreProduct(id, owner kernel.UUID, name string, price kernel.Amount, allowFloatValues bool) (*Product, error) {
	return NewProduct(id, owner, name, price, allowFloatValues)
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Owner() kernel.UUID {
	return p.owner
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Amount {
	return p.price
}

func (p *Product) AllowFloatValues() bool {
	return p.allowFloatValues
}

// AcceptsQuantity rejects a fractional quantity when the product only sells
// whole units.
func (p *Product) AcceptsQuantity(quantity kernel.Amount) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if !p.allowFloatValues && !quantity.IsWhole() {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("product %q does not allow fractional quantities, got %s", p.name, quantity),
		)
	}
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	p.owner = owner
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Amount) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
