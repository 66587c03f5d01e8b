package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AppendOrderEventCommandHandler runs one ledger transition.
//
// The order row is locked for the whole read-decide-write cycle so
// concurrent requests on one order are applied one after another, each
// seeing the events committed by the previous one. Events are appended with
// the next sequence numbers and announced after commit.
type AppendOrderEventCommandHandler struct {
	uowFactory UoWFactory
}

func NewAppendOrderEventCommandHandler(uowFactory UoWFactory) AppendOrderEventCommandHandler {
	return AppendOrderEventCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AppendOrderEventCommandHandler) Handle(ctx context.Context, cmd AppendOrderEventCommand) error {
	ctx, span := tracing.Tracer().Start(ctx, "AppendOrderEvent")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return reject(span, err)
	}

	actor := cmd.Actor()
	span.SetAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.event_type", cmd.EventType().String()),
		attribute.String("actor.role", actor.Role().String()),
		attribute.Bool("actor.admin", actor.IsAdmin()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return reject(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return reject(span, err)
	}

	history, err := orders.History(ctx, o.ID())
	if err != nil {
		return reject(span, err)
	}

	var rule order.QuantityRule
	if cmd.EventType().SetsQuantity() {
		p, productErr := uow.ProductRepository().Get(ctx, o.Product())
		if productErr != nil {
			return reject(span, productErr)
		}
		rule = p
	}

	events, err := o.Apply(actor, history, cmd.EventType(), cmd.Submission(), rule)
	if err != nil {
		return reject(span, err)
	}

	if err = orders.AppendEvents(ctx, o, events...); err != nil {
		return reject(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return reject(span, err)
	}

	for _, e := range events {
		metrics.RecordEventAppended(e.Type().String())
	}
	return nil
}
