package orderrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the changes to announce once the transaction commits.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its Create event.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order, created order.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := created.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}

	return r.insertEvents(ctx, aggregate, []order.Event{created})
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order with SELECT ... FOR UPDATE.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// History returns the order's events ordered by sequence descending.
func (r *GormOrderRepository) History(ctx context.Context, id kernel.UUID) (order.History, error) {
	if err := id.Validate(); err != nil {
		return order.History{}, err
	}

	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Order("sequence DESC").
		Find(&dtos).Error
	if err != nil {
		return order.History{}, pgerr.Translate(err, "order", id.String())
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := eventToDomain(dto)
		if convErr != nil {
			return order.History{}, convErr
		}
		events = append(events, e)
	}

	return order.NewHistory(events)
}

// AppendEvents inserts ledger events for an existing order.
func (r *GormOrderRepository) AppendEvents(ctx context.Context, aggregate *order.Order, events ...order.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	return r.insertEvents(ctx, aggregate, events)
}

func (r *GormOrderRepository) insertEvents(ctx context.Context, aggregate *order.Order, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OrderEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventFromDomain(aggregate.ID(), e))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}

	stored := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := eventToDomain(dto)
		if err != nil {
			return err
		}
		stored = append(stored, e)
	}

	r.tracker.TrackAggregate(aggregate.ID(), ports.OrderChanged{Order: aggregate, Events: stored})
	return nil
}

func (r *GormOrderRepository) get(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "order", id.String())
	}

	return toDomain(dto)
}
