package ports

import (
	"context"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order by its human-readable reference.
	GetByOrderNumber(ctx context.Context, orderNumber kernel.OrderNumber) (*order.Order, error)

	// GetAllInPendingStatus retrieves all orders awaiting processing.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}
