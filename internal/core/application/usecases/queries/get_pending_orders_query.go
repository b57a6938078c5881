// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection rows straight
// from the database, returning flat response structs tailored to the caller.
package queries

import (
	"errors"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves all orders awaiting processing.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query to retrieve pending orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse represents a pending order awaiting processing.
type GetPendingOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	CustomerID  kernel.UUID
	TotalAmount kernel.Money
	OrderDate   time.Time
}
