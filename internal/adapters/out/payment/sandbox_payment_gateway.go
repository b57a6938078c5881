// Package payment contains the sandbox implementation of the payment port.
// It never talks to a real processor: charges and refunds are decided locally
// and logged, which is enough for development and integration environments.
package payment

import (
	"context"
	"log/slog"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/ports"
	"webshop/internal/pkg/errs"
)

var _ ports.PaymentGateway = (*SandboxPaymentGateway)(nil)

// SandboxPaymentGateway approves every positive charge and refund.
// A zero amount is declined rather than rejected with an error, so callers
// exercise the same decline path a real gateway would produce.
type SandboxPaymentGateway struct {
	logger *slog.Logger
}

func NewSandboxPaymentGateway(logger *slog.Logger) (*SandboxPaymentGateway, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &SandboxPaymentGateway{
		logger: logger.With("component", "sandbox-payment"),
	}, nil
}

func (g *SandboxPaymentGateway) ProcessPayment(
	ctx context.Context, customerID kernel.UUID, amount kernel.Money,
) (bool, error) {
	approved := amount.Amount().IsPositive()

	g.logger.InfoContext(ctx, "processing payment",
		"customer_id", customerID,
		"amount", amount,
		"approved", approved,
	)
	return approved, nil
}

func (g *SandboxPaymentGateway) RefundPayment(
	ctx context.Context, transactionID string, amount kernel.Money,
) (bool, error) {
	if transactionID == "" {
		return false, errs.NewValueIsRequiredError("transactionID")
	}
	approved := amount.Amount().IsPositive()

	g.logger.InfoContext(ctx, "refunding payment",
		"transaction_id", transactionID,
		"amount", amount,
		"approved", approved,
	)
	return approved, nil
}
