package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

type (
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AppendOrderEventHandler interface {
		Handle(ctx context.Context, cmd commands.AppendOrderEventCommand) error
	}
	OrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) (queries.GetOrderHistoryQueryResponse, error)
	}
	ActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}
)

// Server exposes the ledger use cases over HTTP.
type Server struct {
	// Command handlers
	createProductHandler    CreateProductHandler
	createOrderHandler      CreateOrderHandler
	appendOrderEventHandler AppendOrderEventHandler

	// Query handlers
	orderHistoryHandler OrderHistoryHandler
	activeOrdersHandler ActiveOrdersHandler

	validator *RequestValidator
}

func NewServer(
	createProductHandler CreateProductHandler,
	createOrderHandler CreateOrderHandler,
	appendOrderEventHandler AppendOrderEventHandler,
	orderHistoryHandler OrderHistoryHandler,
	activeOrdersHandler ActiveOrdersHandler,
) *Server {
	return &Server{
		createProductHandler:    createProductHandler,
		createOrderHandler:      createOrderHandler,
		appendOrderEventHandler: appendOrderEventHandler,
		orderHistoryHandler:     orderHistoryHandler,
		activeOrdersHandler:     activeOrdersHandler,
		validator:               NewRequestValidator(),
	}
}

// Register mounts the routes. Everything under /api/v1 goes through auth.
func (s *Server) Register(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1", auth)
	api.POST("/products", s.CreateProduct)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/events", s.AppendOrderEvent)
	api.GET("/orders/:id/events", s.GetOrderEvents)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body NewProduct
	if err := s.bind(ctx, &body); err != nil {
		return writeError(ctx, err)
	}

	price, err := decimalOf("price", body.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(actor, productID, body.Name, price, body.AllowFloatValues)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: productID.String()})
}

// CreateOrder handles POST /api/v1/orders. The acting principal becomes the
// consumer of the order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(body.Product)
	if err != nil {
		return writeError(ctx, err)
	}

	var distributor *kernel.UUID
	if body.Distributor != nil {
		id, err := kernel.UUIDFromString(*body.Distributor)
		if err != nil {
			return writeError(ctx, err)
		}
		distributor = &id
	}

	quantity, err := decimalOf("quantity", body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, productID, distributor, quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// AppendOrderEvent handles POST /api/v1/orders/{id}/events.
func (s *Server) AppendOrderEvent(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewOrderEvent
	if err := s.bind(ctx, &body); err != nil {
		return writeError(ctx, err)
	}

	quantity, err := optionalDecimalOf("quantity", body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}
	price, err := optionalDecimalOf("price", body.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAppendOrderEventCommand(actor, orderID, body.EventType, quantity, price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.appendOrderEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderEvents handles GET /api/v1/orders/{id}/events.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrderHistory{
		ID:          history.OrderID.String(),
		Consumer:    history.Consumer.String(),
		Producer:    history.Producer.String(),
		Distributor: optionalString(history.Distributor),
		Product:     history.Product.String(),
		State:       history.State.String(),
		Events:      make([]OrderEvent, len(history.Events)),
		Next:        make([]string, len(history.Next)),
	}
	for i, event := range history.Events {
		response.Events[i] = OrderEvent{
			EventType:  event.Type.String(),
			Sequence:   event.Sequence,
			Quantity:   event.Quantity.String(),
			Price:      event.Price.String(),
			OccurredAt: event.OccurredAt,
		}
	}
	for i, next := range history.Next {
		response.Next[i] = next.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetActiveOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.String(),
			Consumer:    o.Consumer.String(),
			Producer:    o.Producer.String(),
			Distributor: optionalString(o.Distributor),
			Product:     o.Product.String(),
			State:       o.State.String(),
			Sequence:    o.Sequence,
			Quantity:    o.Quantity.String(),
			Price:       o.Price.String(),
			UpdatedAt:   o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Internal != nil {
			err = httpErr.Internal
		}
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return s.validator.Validate(body)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromString(raw)
}

func decimalOf(paramName string, n json.Number) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return d, nil
}

func optionalDecimalOf(paramName string, n json.Number) (*decimal.Decimal, error) {
	if n == "" {
		return nil, nil //nolint:nilnil // absent value
	}
	d, err := decimalOf(paramName, n)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
