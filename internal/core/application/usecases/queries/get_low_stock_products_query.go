package queries

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery retrieves products whose stock has fallen below
// the given threshold.
//
// Example:
//
//	query, err := NewGetLowStockProductsQuery(50)
//	if err != nil {
//	    return err
//	}
//
//	products, err := handler.Handle(ctx, query)
type GetLowStockProductsQuery struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products below the given
// stock threshold. The threshold must be positive.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	query := GetLowStockProductsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setThreshold(threshold); err != nil {
		return GetLowStockProductsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock level below which products are reported.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}

func (q *GetLowStockProductsQuery) setThreshold(threshold int) error {
	if threshold <= 0 {
		return errs.NewValueIsOutOfRangeError("threshold", threshold, 1, "no upper bound")
	}

	q.threshold = threshold
	return nil
}

// GetLowStockProductsQueryResponse represents a product running low on stock.
type GetLowStockProductsQueryResponse struct {
	ID            kernel.UUID
	SKU           string
	Name          string
	StockQuantity int
}
