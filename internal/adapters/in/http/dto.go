package http

import (
	"encoding/json"
	"time"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewProduct struct {
	Name             string      `json:"name" validate:"required,max=200"`
	Price            json.Number `json:"price" validate:"required"`
	AllowFloatValues bool        `json:"allowFloatValues"`
}

type NewOrder struct {
	Product     string      `json:"product" validate:"required,uuid"`
	Quantity    json.Number `json:"quantity" validate:"required"`
	Distributor *string     `json:"distributor,omitempty" validate:"omitempty,uuid"`
}

// NewOrderEvent is the body of POST /api/v1/orders/{id}/events. Quantity and
// price are optional; the ledger decides which of them it uses.
type NewOrderEvent struct {
	EventType string      `json:"eventType" validate:"required,alpha"`
	Quantity  json.Number `json:"quantity,omitempty"`
	Price     json.Number `json:"price,omitempty"`
}

type Created struct {
	ID string `json:"id"`
}

type OrderEvent struct {
	EventType  string    `json:"eventType"`
	Sequence   int64     `json:"sequence"`
	Quantity   string    `json:"quantity"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurredAt"`
}

type OrderHistory struct {
	ID          string       `json:"id"`
	Consumer    string       `json:"consumer"`
	Producer    string       `json:"producer"`
	Distributor *string      `json:"distributor,omitempty"`
	Product     string       `json:"product"`
	State       string       `json:"state"`
	Events      []OrderEvent `json:"events"`
	Next        []string     `json:"next"`
}

type ActiveOrder struct {
	ID          string    `json:"id"`
	Consumer    string    `json:"consumer"`
	Producer    string    `json:"producer"`
	Distributor *string   `json:"distributor,omitempty"`
	Product     string    `json:"product"`
	State       string    `json:"state"`
	Sequence    int64     `json:"sequence"`
	Quantity    string    `json:"quantity"`
	Price       string    `json:"price"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
