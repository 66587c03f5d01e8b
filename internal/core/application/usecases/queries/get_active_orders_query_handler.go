package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// latestEventJoin attaches the newest event of each order as "e".
const latestEventJoin = `
	JOIN LATERAL (
		SELECT type, sequence, quantity, price, occurred_at
		FROM order_events
		WHERE order_id = o.id
		ORDER BY sequence DESC
		LIMIT 1
	) e ON TRUE`

// GetActiveOrdersQueryHandler retrieves the caller's orders that can still
// change state.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns active orders oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	stmt := `
		SELECT
			o.id,
			o.consumer_id,
			o.producer_id,
			o.distributor_id,
			o.product_id,
			e.type,
			e.sequence,
			e.quantity,
			e.price,
			e.occurred_at
		FROM orders o` + latestEventJoin + `
		WHERE e.type NOT IN ?`
	args := []any{terminalCodes()}

	actor := query.Actor()
	if !actor.IsAdmin() {
		column, ok := partyColumn(actor.Role())
		if !ok {
			return orders, nil
		}
		stmt += " AND o." + column + " = ?"
		args = append(args, actor.BusinessID().Bytes())
	}
	stmt += " ORDER BY o.created_at, o.id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, consumerID, producerID, productID uuid.UUID
			distributorID                         uuid.NullUUID
			latest                                eventRow
		)

		err = rows.Scan(
			&id,
			&consumerID,
			&producerID,
			&distributorID,
			&productID,
			&latest.kind,
			&latest.sequence,
			&latest.quantity,
			&latest.price,
			&latest.occurredAt,
		)
		if err != nil {
			return nil, err
		}

		resp, convErr := activeOrder(id, consumerID, producerID, distributorID, productID, latest)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func partyColumn(role principal.Role) (string, bool) {
	switch role {
	case principal.Consumer:
		return "consumer_id", true
	case principal.Producer:
		return "producer_id", true
	case principal.Distributor:
		return "distributor_id", true
	default:
		return "", false
	}
}

func activeOrder(
	id, consumerID, producerID uuid.UUID,
	distributorID uuid.NullUUID,
	productID uuid.UUID,
	latest eventRow,
) (GetActiveOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	consumer, err := kernel.UUIDFromBytes(consumerID[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	producer, err := kernel.UUIDFromBytes(producerID[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	productRef, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	distributor, err := optionalUUID(distributorID)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	view, err := latest.view()
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	return GetActiveOrdersQueryResponse{
		ID:          orderID,
		Consumer:    consumer,
		Producer:    producer,
		Distributor: distributor,
		Product:     productRef,
		State:       view.Type,
		Quantity:    view.Quantity,
		Price:       view.Price,
		Sequence:    view.Sequence,
		UpdatedAt:   view.OccurredAt,
	}, nil
}
