package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStateSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStateSummaryQueryHandler(db *gorm.DB) GetOrderStateSummaryQueryHandler {
	return GetOrderStateSummaryQueryHandler{db: db}
}

// Handle returns one entry per state that at least one order is in, in
// ascending event type code.
func (h GetOrderStateSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStateSummaryQuery,
) ([]GetOrderStateSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]GetOrderStateSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT e.type, COUNT(*)
		FROM orders o` + latestEventJoin + `
		GROUP BY e.type
		ORDER BY e.type
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			code  int
			count int64
		)
		if err = rows.Scan(&code, &count); err != nil {
			return nil, err
		}

		state, typeErr := order.EventTypeFromCode(code)
		if typeErr != nil {
			return nil, typeErr
		}
		summary = append(summary, GetOrderStateSummaryQueryResponse{State: state, Orders: count})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
