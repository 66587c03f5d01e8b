package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// OrderEventMessage is the JSON value of an order-changed message.
type OrderEventMessage struct {
	OrderID     string    `json:"orderId"`
	Consumer    string    `json:"consumer"`
	Producer    string    `json:"producer"`
	Distributor *string   `json:"distributor,omitempty"`
	Product     string    `json:"product"`
	EventType   string    `json:"eventType"`
	EventCode   int       `json:"eventCode"`
	Sequence    int64     `json:"sequence"`
	Quantity    string    `json:"quantity"`
	Price       string    `json:"price"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// OrderChangedPublisher sends one message per appended event, keyed by order
// id so the events of one order keep their order within a partition.
type OrderChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.OrderChangedPublisher = (*OrderChangedPublisher)(nil)

func NewOrderChangedPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderChangedPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderChangedPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "OrderChangedPublisher"),
	}
}

// Publish stops at the first event that cannot be sent.
func (p *OrderChangedPublisher) Publish(ctx context.Context, changed ports.OrderChanged) error {
	if err := changed.Order.Validate(); err != nil {
		return err
	}

	for _, e := range changed.Events {
		msg, err := p.message(ctx, changed.Order, e)
		if err != nil {
			return err
		}

		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return fmt.Errorf("failed to send %s event of order %s: %w", e.Type(), changed.Order.ID(), err)
		}

		traceID := ""
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		p.logger.DebugContext(ctx, "order event published",
			slog.String("order_id", changed.Order.ID().String()),
			slog.String("event_type", e.Type().String()),
			slog.Int64("sequence", e.Sequence()),
			slog.String("topic", p.topic),
			slog.Int("partition", int(partition)),
			slog.Int64("offset", offset),
			slog.String("trace_id", traceID))
	}

	return nil
}

func (p *OrderChangedPublisher) message(ctx context.Context, o *order.Order, e order.Event) (*sarama.ProducerMessage, error) {
	payload := OrderEventMessage{
		OrderID:    o.ID().String(),
		Consumer:   o.Consumer().String(),
		Producer:   o.Producer().String(),
		Product:    o.Product().String(),
		EventType:  e.Type().String(),
		EventCode:  e.Type().Code(),
		Sequence:   e.Sequence(),
		Quantity:   e.Quantity().String(),
		Price:      e.Price().String(),
		OccurredAt: e.OccurredAt(),
	}
	if d := o.Distributor(); d != nil {
		id := d.String()
		payload.Distributor = &id
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order event: %w", err)
	}

	carrier := make(headerCarrier, 0)
	otel.GetTextMapPropagator().Inject(ctx, &carrier)

	return &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(o.ID().String()),
		Value:   sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader(carrier),
	}, nil
}

// NoopPublisher drops every change. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, changed ports.OrderChanged) error {
	p.logger.DebugContext(ctx, "order change not published, no broker configured",
		slog.Int("events", len(changed.Events)))
	return nil
}
