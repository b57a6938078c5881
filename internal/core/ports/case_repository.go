package ports

import (
	"context"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"
)

// CaseRepository defines the persistence contract for customer case aggregates.
type CaseRepository interface {
	// Add persists a new case aggregate to storage.
	Add(ctx context.Context, aggregate *casefile.Case) error

	// Update persists changes to an existing case aggregate.
	Update(ctx context.Context, aggregate *casefile.Case) error

	// Get retrieves a case aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*casefile.Case, error)

	// GetAllInOpenStatus retrieves all cases still waiting for an agent.
	// Used by the overdue-case escalation job.
	GetAllInOpenStatus(ctx context.Context) ([]*casefile.Case, error)
}
