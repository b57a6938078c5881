package ports

import (
	"context"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/returns"
)

// NotificationService is the outbound port for customer and staff
// notifications. Sends are fire-and-forget from the domain's perspective:
// orchestrations may log a failure but never roll back on one.
type NotificationService interface {
	// SendOrderConfirmation notifies the customer that their order was
	// confirmed and payment taken.
	SendOrderConfirmation(ctx context.Context, ord *order.Order) error

	// SendReturnApproval notifies the customer that their return was approved.
	SendReturnApproval(ctx context.Context, ret *returns.Return) error

	// SendEscalationAlert alerts staff that a case was escalated.
	SendEscalationAlert(ctx context.Context, c *casefile.Case) error

	// SendStatusUpdate sends a free-form status message to a customer.
	SendStatusUpdate(ctx context.Context, customerID kernel.UUID, message string) error
}
