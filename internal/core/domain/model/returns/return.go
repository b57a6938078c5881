package returns

import (
	"errors"
	"strings"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrReturnIsNotConstructed is returned when a Return instance was not created
// through the NewReturn or RestoreReturn factory methods.
var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn or RestoreReturn constructors")

const (
	// returnNumberPrefix prefixes every generated return reference.
	returnNumberPrefix = "RET-"

	// returnWindowDays is the number of days after the order date during
	// which a return may still be approved.
	returnWindowDays = 30
)

// Return is the aggregate root for a product return. It references the
// originating order and the customer case opened for the return by
// identifier only.
//
// The refund amount always equals the sum of the item refund shares.
type Return struct {
	id           kernel.UUID
	returnNumber string
	orderID      kernel.UUID
	caseID       *kernel.UUID
	items        []*ReturnItem
	status       Status
	reason       Reason
	refundAmount kernel.Money

	requestDate   time.Time
	processedDate *time.Time
	notes         string

	isConstructed bool
}

// NewReturn opens a return request in Requested status with a freshly
// generated return number. The refund amount is computed from the items.
func NewReturn(
	id kernel.UUID,
	orderID kernel.UUID,
	caseID *kernel.UUID,
	items []*ReturnItem,
	reason Reason,
	requestDate time.Time,
) (*Return, error) {
	r := &Return{
		returnNumber:  createReturnNumber(),
		status:        StatusRequested,
		requestDate:   requestDate,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCaseID(caseID),
		r.setItems(items),
		r.setReason(reason),
	); err != nil {
		return nil, err
	}

	if err := r.RecalculateRefund(); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReturn reconstructs a Return from persistence with its stored state.
func RestoreReturn(
	id kernel.UUID,
	returnNumber string,
	orderID kernel.UUID,
	caseID *kernel.UUID,
	items []*ReturnItem,
	status Status,
	reason Reason,
	refundAmount kernel.Money,
	requestDate time.Time,
	processedDate *time.Time,
	notes string,
) (*Return, error) {
	r := &Return{
		requestDate:   requestDate,
		processedDate: processedDate,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setReturnNumber(returnNumber),
		r.setOrderID(orderID),
		r.setCaseID(caseID),
		r.setItems(items),
		r.setStatus(status),
		r.setReason(reason),
		r.setRefundAmount(refundAmount),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Return instance was properly constructed.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}

	return nil
}

// IsEqual compares two returns by their unique identifiers.
func (r *Return) IsEqual(other *Return) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the return's unique identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// ReturnNumber returns the human-readable return reference, e.g. "RET-1A2B3C4D".
func (r *Return) ReturnNumber() string {
	return r.returnNumber
}

// OrderID returns the originating order's identifier.
func (r *Return) OrderID() kernel.UUID {
	return r.orderID
}

// CaseID returns the identifier of the customer case opened for the return,
// or nil when no case accompanies it.
func (r *Return) CaseID() *kernel.UUID {
	return r.caseID
}

// Items returns the returned product lines.
func (r *Return) Items() []*ReturnItem {
	return r.items
}

// Status returns the current status of the return.
func (r *Return) Status() Status {
	return r.status
}

// Reason returns why the customer is returning the goods.
func (r *Return) Reason() Reason {
	return r.reason
}

// RefundAmount returns the sum of the item refund shares.
func (r *Return) RefundAmount() kernel.Money {
	return r.refundAmount
}

// RequestDate returns the moment the return was requested.
func (r *Return) RequestDate() time.Time {
	return r.requestDate
}

// ProcessedDate returns the refund payout timestamp, or nil before that.
func (r *Return) ProcessedDate() *time.Time {
	return r.processedDate
}

// Notes returns free-form handling notes, e.g. the rejection reason.
func (r *Return) Notes() string {
	return r.notes
}

// IsWithinReturnWindow reports whether the request falls inside the 30-day
// window after the order date. The window is exclusive at its upper bound:
// a request exactly 30 days after the order date is already outside.
func (r *Return) IsWithinReturnWindow(orderDate time.Time) bool {
	return r.requestDate.Before(orderDate.AddDate(0, 0, returnWindowDays))
}

// RecalculateRefund re-derives the refund amount as the sum of the item
// refund shares. A return without items gets a zero refund in USD.
func (r *Return) RecalculateRefund() error {
	currency := "USD"
	if len(r.items) > 0 {
		currency = r.items[0].RefundAmount().Currency()
	}

	total, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}

	for _, item := range r.items {
		total, err = total.Add(item.RefundAmount())
		if err != nil {
			return err
		}
	}

	r.refundAmount = total
	return nil
}

// Approve transitions the return from Requested to Approved.
func (r *Return) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject transitions the return from Requested to Rejected and records the
// rejection reason in the notes.
func (r *Return) Reject(reason string) error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.notes = reason
	return nil
}

// MarkShippedBack records that the customer sent the goods back.
func (r *Return) MarkShippedBack() error {
	newStatus, err := r.status.MarkShippedBack()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// MarkReceived records that the warehouse received the goods.
func (r *Return) MarkReceived() error {
	newStatus, err := r.status.MarkReceived()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// MarkRefunded records the refund payout and stamps the processing time.
func (r *Return) MarkRefunded(processedAt time.Time) error {
	newStatus, err := r.status.MarkRefunded()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.processedDate = &processedAt
	return nil
}

// Complete finalizes a refunded return.
func (r *Return) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func createReturnNumber() string {
	return returnNumberPrefix + strings.ToUpper(uuid.NewString()[:8])
}

func (r *Return) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Return) setReturnNumber(returnNumber string) error {
	if strings.TrimSpace(returnNumber) == "" {
		return errs.NewValueIsRequiredError("returnNumber")
	}
	r.returnNumber = returnNumber
	return nil
}

func (r *Return) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Return) setCaseID(caseID *kernel.UUID) error {
	if caseID == nil {
		return nil
	}
	if err := caseID.Validate(); err != nil {
		return err
	}
	r.caseID = caseID
	return nil
}

func (r *Return) setItems(items []*ReturnItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	r.items = items
	return nil
}

func (r *Return) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Return) setReason(reason Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	r.reason = reason
	return nil
}

func (r *Return) setRefundAmount(refundAmount kernel.Money) error {
	if err := refundAmount.Validate(); err != nil {
		return err
	}
	r.refundAmount = refundAmount
	return nil
}
