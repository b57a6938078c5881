package queries

import (
	"context"

	"webshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler retrieves products running low on stock,
// lowest stock first. Feeds the restock suggestion job and the back office.
type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockProductsQueryHandler creates a handler for low stock queries.
func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]GetLowStockProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetLowStockProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			stock_quantity
		FROM products
		WHERE stock_quantity < ?
		ORDER BY stock_quantity, sku
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			sku           string
			name          string
			stockQuantity int
		)

		if err = rows.Scan(&id, &sku, &name, &stockQuantity); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, GetLowStockProductsQueryResponse{
			ID:            productID,
			SKU:           sku,
			Name:          name,
			StockQuantity: stockQuantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
