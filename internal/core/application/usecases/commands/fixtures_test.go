package commands_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/principal"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func newPrincipal(t *testing.T, role principal.Role, admin, verified bool) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), role, admin, verified)
	require.NoError(t, err)
	return p
}

func newProduct(t *testing.T, owner kernel.UUID, allowFloatValues bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), owner, "Tomatoes", kernel.MustAmount("2.5"), allowFloatValues)
	require.NoError(t, err)
	return p
}

// placedOrder is an order together with its principals and Create event.
type placedOrder struct {
	consumer principal.Principal
	producer principal.Principal
	product  *product.Product
	order    *order.Order
	created  order.Event
}

func newPlacedOrder(t *testing.T, allowFloatValues bool) placedOrder {
	t.Helper()
	consumer := newPrincipal(t, principal.Consumer, false, true)
	producer := newPrincipal(t, principal.Producer, false, true)
	p := newProduct(t, producer.BusinessID(), allowFloatValues)

	o, created, err := order.NewOrder(kernel.NewUUID(), consumer, p, nil, kernel.MustAmount("10"))
	require.NoError(t, err)

	return placedOrder{
		consumer: consumer,
		producer: producer,
		product:  p,
		order:    o,
		created:  created,
	}
}

func historyOf(t *testing.T, events ...order.Event) order.History {
	t.Helper()
	h, err := order.NewHistory(events)
	require.NoError(t, err)
	return h
}

func nextEvent(t *testing.T, kind order.EventType, sequence int64) order.Event {
	t.Helper()
	e, err := order.NewEvent(kind, kernel.MustAmount("10"), kernel.MustAmount("2.5"), sequence)
	require.NoError(t, err)
	return e
}
