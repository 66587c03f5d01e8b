package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository persists catalogue entries.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForShare retrieves a product and holds a shared lock on it so the
	// price and float allowance cannot change while an order is placed.
	GetForShare(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
