package ports

import (
	"context"

	"webshop/internal/core/domain/model/kernel"
)

// PaymentGateway is the outbound port for charging and refunding customers.
// Both calls are synchronous and report success as a boolean; the gateway
// owns its own retry and resilience behavior.
type PaymentGateway interface {
	// ProcessPayment charges the customer the given amount.
	// A false result means the charge was declined; an error means the
	// gateway could not be reached at all.
	ProcessPayment(ctx context.Context, customerID kernel.UUID, amount kernel.Money) (bool, error)

	// RefundPayment pays the given amount back for a previous transaction.
	RefundPayment(ctx context.Context, transactionID string, amount kernel.Money) (bool, error)
}
