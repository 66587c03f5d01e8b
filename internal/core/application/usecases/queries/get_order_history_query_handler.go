package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order history. A business that is not a party of the
// order gets errs.ErrRoleNotAuthorized unless it is an admin; an order
// without events is an integrity violation. Next lists what the actor may
// append now, with the same checks the append handler runs.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	resp, o, err := h.loadOrder(db, query.OrderID())
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !o.IsParty(actor.BusinessID(), actor.Role()) {
		return GetOrderHistoryQueryResponse{}, errs.NewRoleNotAuthorizedErrorWithReason(
			actor.Role().String(),
			"the business is not the "+actor.Role().String()+" of this order",
		)
	}

	rows, err := db.Raw(`
		SELECT type, sequence, quantity, price, occurred_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY sequence DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}
	defer rows.Close()

	resp.Events = make([]EventView, 0)
	events := make([]order.Event, 0)
	for rows.Next() {
		var row eventRow
		if err = rows.Scan(&row.kind, &row.sequence, &row.quantity, &row.price, &row.occurredAt); err != nil {
			return GetOrderHistoryQueryResponse{}, err
		}
		view, viewErr := row.view()
		if viewErr != nil {
			return GetOrderHistoryQueryResponse{}, viewErr
		}
		e, eventErr := order.RestoreEvent(view.Type, view.Quantity, view.Price, view.Sequence, view.OccurredAt)
		if eventErr != nil {
			return GetOrderHistoryQueryResponse{}, eventErr
		}
		resp.Events = append(resp.Events, view)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	if len(resp.Events) == 0 {
		return GetOrderHistoryQueryResponse{}, errs.NewIntegrityViolationError(
			"order", query.OrderID().String(), order.ErrHistoryIsEmpty)
	}

	history, err := order.NewHistory(events)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	resp.State = resp.Events[0].Type
	resp.Next = o.NextEventTypes(actor, history)
	return resp, nil
}

func (h GetOrderHistoryQueryHandler) loadOrder(db *gorm.DB, id kernel.UUID) (GetOrderHistoryQueryResponse, *order.Order, error) {
	var (
		consumerID, producerID, productID uuid.UUID
		distributorID                     uuid.NullUUID
	)

	row := db.Raw(`
		SELECT consumer_id, producer_id, distributor_id, product_id
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Row()
	if err := row.Scan(&consumerID, &producerID, &distributorID, &productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderHistoryQueryResponse{}, nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return GetOrderHistoryQueryResponse{}, nil, err
	}

	consumer, err := kernel.UUIDFromBytes(consumerID[:])
	if err != nil {
		return GetOrderHistoryQueryResponse{}, nil, err
	}
	producer, err := kernel.UUIDFromBytes(producerID[:])
	if err != nil {
		return GetOrderHistoryQueryResponse{}, nil, err
	}
	productRef, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetOrderHistoryQueryResponse{}, nil, err
	}
	distributor, err := optionalUUID(distributorID)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, nil, err
	}

	o, err := order.RestoreOrder(id, consumer, producer, distributor, productRef)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, nil, err
	}

	return GetOrderHistoryQueryResponse{
		OrderID:     id,
		Consumer:    consumer,
		Producer:    producer,
		Distributor: distributor,
		Product:     productRef,
	}, o, nil
}
