package ports

import (
	"context"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return aggregate to storage.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists changes to an existing return aggregate.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return aggregate by its unique identifier.
	// Returns the complete return including its items.
	Get(ctx context.Context, id kernel.UUID) (*returns.Return, error)
}
