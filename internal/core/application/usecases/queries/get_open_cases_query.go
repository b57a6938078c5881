package queries

import (
	"errors"
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var ErrGetOpenCasesQueryIsNotConstructed = errors.New(
	"GetOpenCasesQuery must be created via NewGetOpenCasesQuery constructor",
)

// GetOpenCasesQuery retrieves all cases still waiting for triage.
//
// Example:
//
//	query := NewGetOpenCasesQuery()
//	handler := NewGetOpenCasesQueryHandler(db)
//
//	cases, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open cases: %w", err)
//	}
type GetOpenCasesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenCasesQuery creates a query to retrieve open cases.
func NewGetOpenCasesQuery() GetOpenCasesQuery {
	return GetOpenCasesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenCasesQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenCasesQueryIsNotConstructed)
}

// GetOpenCasesQueryResponse represents an open case waiting for triage.
type GetOpenCasesQueryResponse struct {
	ID         kernel.UUID
	CaseNumber string
	CustomerID kernel.UUID
	Type       casefile.CaseType
	Priority   casefile.Priority
	CreatedAt  time.Time
}
