package ports

import (
	"context"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate,
	// most importantly stock reductions.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBySKU retrieves a product by its stock keeping unit.
	GetBySKU(ctx context.Context, sku kernel.SKU) (*product.Product, error)

	// GetAll retrieves the full product catalog. Used as the availability
	// snapshot for order validation.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
