// Package orderrepo maps orders and their event ledger onto the orders and
// order_events tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. The order state is not stored here;
// it is the type of the newest order_events row.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConsumerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProducerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	DistributorID *uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt     time.Time  `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderEventDTO is a row of the order_events table. The composite primary key
// makes (order_id, sequence) unique.
type OrderEventDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Sequence   int64           `gorm:"primaryKey;autoIncrement:false"`
	Type       int             `gorm:"type:smallint;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:numeric(18,6);not null;check:chk_order_events_quantity,quantity > 0"`
	Price      decimal.Decimal `gorm:"type:numeric(18,6);not null;check:chk_order_events_price,price > 0"`
	OccurredAt time.Time       `gorm:"not null;autoCreateTime"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var distributorID *uuid.UUID
	if id := aggregate.Distributor(); id != nil {
		raw := id.Bytes()
		distributorID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ConsumerID:    aggregate.Consumer().Bytes(),
		ProducerID:    aggregate.Producer().Bytes(),
		DistributorID: distributorID,
		ProductID:     aggregate.Product().Bytes(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consumer, err := kernel.UUIDFromBytes(dto.ConsumerID[:])
	if err != nil {
		return nil, err
	}
	producer, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var distributor *kernel.UUID
	if dto.DistributorID != nil {
		dID, distributorErr := kernel.UUIDFromBytes((*dto.DistributorID)[:])
		if distributorErr != nil {
			return nil, distributorErr
		}
		distributor = &dID
	}

	return order.RestoreOrder(id, consumer, producer, distributor, productID)
}

func eventFromDomain(orderID kernel.UUID, e order.Event) OrderEventDTO {
	return OrderEventDTO{
		OrderID:  orderID.Bytes(),
		Sequence: e.Sequence(),
		Type:     e.Type().Code(),
		Quantity: e.Quantity().Decimal(),
		Price:    e.Price().Decimal(),
	}
}

func eventToDomain(dto OrderEventDTO) (order.Event, error) {
	kind, err := order.EventTypeFromCode(dto.Type)
	if err != nil {
		return order.Event{}, err
	}
	quantity, err := kernel.NewAmount("quantity", dto.Quantity)
	if err != nil {
		return order.Event{}, err
	}
	price, err := kernel.NewAmount("price", dto.Price)
	if err != nil {
		return order.Event{}, err
	}

	return order.RestoreEvent(kind, quantity, price, dto.Sequence, dto.OccurredAt)
}
