// Package notifications contains the email implementation of the
// notification port. Deliveries are simulated: each send is composed like a
// real email and written to the structured log instead of an SMTP relay.
package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/returns"
	"webshop/internal/core/ports"
	"webshop/internal/pkg/errs"
)

const supportMailbox = "support@webshop.example"

var _ ports.NotificationService = (*EmailNotificationService)(nil)

// EmailNotificationService sends customer and staff notifications as emails.
// Recipient addresses are resolved through the customer repository; for
// returns the customer is reached via the originating order.
type EmailNotificationService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	logger    *slog.Logger
}

func NewEmailNotificationService(
	orders ports.OrderRepository, customers ports.CustomerRepository, logger *slog.Logger,
) (*EmailNotificationService, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &EmailNotificationService{
		orders:    orders,
		customers: customers,
		logger:    logger.With("component", "email-notifications"),
	}, nil
}

func (s *EmailNotificationService) SendOrderConfirmation(ctx context.Context, ord *order.Order) error {
	if ord == nil {
		return errs.NewValueIsRequiredError("ord")
	}

	to, err := s.customerEmail(ctx, ord.CustomerID())
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Order Confirmation #%s", ord.OrderNumber())
	content := fmt.Sprintf("Thank you for your order #%s. Your total amount is %s.",
		ord.OrderNumber(), ord.TotalAmount())

	s.sendEmail(ctx, to, subject, content)
	return nil
}

func (s *EmailNotificationService) SendReturnApproval(ctx context.Context, ret *returns.Return) error {
	if ret == nil {
		return errs.NewValueIsRequiredError("ret")
	}

	ord, err := s.orders.Get(ctx, ret.OrderID())
	if err != nil {
		return fmt.Errorf("resolve order %s for return %s: %w", ret.OrderID(), ret.ReturnNumber(), err)
	}

	to, err := s.customerEmail(ctx, ord.CustomerID())
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Return Request Approved #%s", ret.ReturnNumber())
	content := fmt.Sprintf(
		"Your return request #%s has been approved. Please follow the instructions for returning the items.",
		ret.ReturnNumber())

	s.sendEmail(ctx, to, subject, content)
	return nil
}

func (s *EmailNotificationService) SendEscalationAlert(ctx context.Context, c *casefile.Case) error {
	if c == nil {
		return errs.NewValueIsRequiredError("c")
	}

	subject := fmt.Sprintf("Case Escalated #%s", c.CaseNumber())
	content := fmt.Sprintf("Case #%s has been escalated to priority %s. Immediate attention required.",
		c.CaseNumber(), c.Priority())

	s.sendEmail(ctx, supportMailbox, subject, content)
	return nil
}

func (s *EmailNotificationService) SendStatusUpdate(
	ctx context.Context, customerID kernel.UUID, message string,
) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	to, err := s.customerEmail(ctx, customerID)
	if err != nil {
		return err
	}

	s.sendEmail(ctx, to, "Status Update", message)
	return nil
}

func (s *EmailNotificationService) customerEmail(ctx context.Context, customerID kernel.UUID) (string, error) {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("resolve recipient for customer %s: %w", customerID, err)
	}
	return customer.Email().Value(), nil
}

func (s *EmailNotificationService) sendEmail(ctx context.Context, to, subject, content string) {
	s.logger.InfoContext(ctx, "sending email",
		"to", to,
		"subject", subject,
		"content", content,
	)
}
