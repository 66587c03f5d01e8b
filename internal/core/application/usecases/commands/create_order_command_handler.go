package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CreateOrderCommandHandler places a new order and writes its Create event.
// The product row is read with a shared lock so its price and float
// allowance hold until the order is committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(actor, kernel.NewUUID(), productID, nil, decimal.NewFromInt(15))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	ctx, span := tracing.Tracer().Start(ctx, "CreateOrder")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return reject(span, err)
	}

	span.SetAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("product.id", cmd.ProductID().String()),
		attribute.String("order.quantity", cmd.Quantity().String()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return reject(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().GetForShare(ctx, cmd.ProductID())
	if err != nil {
		return reject(span, err)
	}

	o, created, err := order.NewOrder(cmd.OrderID(), cmd.Actor(), p, cmd.Distributor(), cmd.Quantity())
	if err != nil {
		return reject(span, err)
	}

	if err = uow.OrderRepository().Add(ctx, o, created); err != nil {
		return reject(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return reject(span, err)
	}

	metrics.RecordEventAppended(created.Type().String())
	return nil
}
