package commands

import (
	"context"

	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CreateProductCommandHandler stores a new product owned by the acting
// producer. Only verified producers may list products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	ctx, span := tracing.Tracer().Start(ctx, "CreateProduct")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return reject(span, err)
	}

	actor := cmd.Actor()
	span.SetAttributes(
		attribute.String("product.id", cmd.ProductID().String()),
		attribute.String("actor.business_id", actor.BusinessID().String()),
	)

	if actor.Role() != principal.Producer {
		return reject(span, errs.NewRoleNotAuthorizedErrorWithReason(actor.Role().String(), "only producers can list products"))
	}
	if !actor.IsVerified() {
		return reject(span, errs.NewRoleNotAuthorizedErrorWithReason(actor.Role().String(), "the business is not verified"))
	}

	p, err := product.NewProduct(cmd.ProductID(), actor.BusinessID(), cmd.Name(), cmd.Price(), cmd.AllowFloatValues())
	if err != nil {
		return reject(span, err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return reject(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return reject(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return reject(span, err)
	}

	return nil
}
