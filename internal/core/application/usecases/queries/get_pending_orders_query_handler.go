package queries

import (
	"context"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves orders awaiting processing from the
// database. Rows are read directly from the orders table without
// reconstructing the full aggregate.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order date so the oldest
// pending orders come first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			total_amount,
			currency,
			order_date
		FROM orders
		WHERE status = ?
		ORDER BY order_date
	`, order.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderNumber string
			customerID  uuid.UUID
			totalAmount decimal.Decimal
			currency    string
			orderDate   time.Time
		)

		if err = rows.Scan(&id, &orderNumber, &customerID,
			&totalAmount, &currency, &orderDate); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		total, moneyErr := kernel.NewMoney(totalAmount, currency)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, GetPendingOrdersQueryResponse{
			ID:          orderID,
			OrderNumber: orderNumber,
			CustomerID:  custID,
			TotalAmount: total,
			OrderDate:   orderDate,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
