package casefile

import (
	"errors"
	"strings"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCaseIsNotConstructed is returned when a Case instance was not created
// through the NewCase or RestoreCase factory methods.
var ErrCaseIsNotConstructed = errors.New("Case must be created via NewCase or RestoreCase constructors")

// caseNumberPrefix prefixes every generated case reference.
const caseNumberPrefix = "CASE-"

// Case is the aggregate root for a customer issue. It carries the issue
// description and classification, the assigned priority, and resolution
// details once the case is worked to completion.
//
// A case always references a customer; the order reference is optional
// because general inquiries and technical issues may not concern an order.
type Case struct {
	id         kernel.UUID
	caseNumber string
	customerID kernel.UUID
	orderID    *kernel.UUID
	caseType   CaseType
	status     Status
	priority   Priority

	description string
	resolution  string
	assignedTo  string

	createdAt  time.Time
	resolvedAt *time.Time

	isConstructed bool
}

// NewCase opens a new case in Open status with Low priority and a freshly
// generated case number. Priority is refined later by the prioritization
// rules; Low is the starting point, never a final verdict.
func NewCase(
	id kernel.UUID,
	customerID kernel.UUID,
	orderID *kernel.UUID,
	caseType CaseType,
	description string,
	createdAt time.Time,
) (*Case, error) {
	c := &Case{
		caseNumber:    createCaseNumber(),
		status:        StatusOpen,
		priority:      PriorityLow,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
		c.setOrderID(orderID),
		c.setCaseType(caseType),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCase reconstructs a Case from persistence with its stored state.
func RestoreCase(
	id kernel.UUID,
	caseNumber string,
	customerID kernel.UUID,
	orderID *kernel.UUID,
	caseType CaseType,
	status Status,
	priority Priority,
	description string,
	resolution string,
	assignedTo string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Case, error) {
	c := &Case{
		resolution:    resolution,
		assignedTo:    assignedTo,
		createdAt:     createdAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCaseNumber(caseNumber),
		c.setCustomerID(customerID),
		c.setOrderID(orderID),
		c.setCaseType(caseType),
		c.setStatus(status),
		c.setPriority(priority),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Case instance was properly constructed.
func (c *Case) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCaseIsNotConstructed
	}

	return nil
}

// IsEqual compares two cases by their unique identifiers.
func (c *Case) IsEqual(other *Case) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the case's unique identifier.
func (c *Case) ID() kernel.UUID {
	return c.id
}

// CaseNumber returns the human-readable case reference, e.g. "CASE-1A2B3C4D".
func (c *Case) CaseNumber() string {
	return c.caseNumber
}

// CustomerID returns the identifier of the affected customer.
func (c *Case) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderID returns the referenced order's identifier, or nil when the case
// does not concern a specific order.
func (c *Case) OrderID() *kernel.UUID {
	return c.orderID
}

// Type returns the case classification.
func (c *Case) Type() CaseType {
	return c.caseType
}

// Status returns the current status of the case.
func (c *Case) Status() Status {
	return c.status
}

// Priority returns the assigned urgency level.
func (c *Case) Priority() Priority {
	return c.priority
}

// Description returns the customer's issue description.
func (c *Case) Description() string {
	return c.description
}

// Resolution returns the recorded resolution text, empty until resolved.
func (c *Case) Resolution() string {
	return c.resolution
}

// AssignedTo returns the handling agent, empty when unassigned.
func (c *Case) AssignedTo() string {
	return c.assignedTo
}

// CreatedAt returns the moment the case was opened.
func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

// ResolvedAt returns the resolution timestamp, or nil if the case is not
// resolved yet.
func (c *Case) ResolvedAt() *time.Time {
	return c.resolvedAt
}

// Age returns how long the case has existed as of now.
func (c *Case) Age(now time.Time) time.Duration {
	return now.Sub(c.createdAt)
}

// NeedsImmediateAttention reports whether the case is open and urgent
// (High or Critical priority).
func (c *Case) NeedsImmediateAttention() bool {
	return c.priority.IsAtLeast(PriorityHigh) && c.status == StatusOpen
}

// Prioritize assigns an urgency level to the case.
func (c *Case) Prioritize(priority Priority) error {
	return c.setPriority(priority)
}

// AssignTo hands the case to a named agent.
func (c *Case) AssignTo(assignee string) error {
	if strings.TrimSpace(assignee) == "" {
		return errs.NewValueIsRequiredError("assignee")
	}

	c.assignedTo = assignee
	return nil
}

// StartProgress transitions the case to InProgress.
func (c *Case) StartProgress() error {
	newStatus, err := c.status.StartProgress()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// WaitForCustomer parks the case until the customer replies.
func (c *Case) WaitForCustomer() error {
	newStatus, err := c.status.WaitForCustomer()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Escalate raises the case to a senior agent.
func (c *Case) Escalate() error {
	newStatus, err := c.status.Escalate()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Resolve records a resolution and transitions the case to Resolved,
// stamping the resolution time. Valid from any non-terminal status.
func (c *Case) Resolve(resolution string, resolvedAt time.Time) error {
	if strings.TrimSpace(resolution) == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	newStatus, err := c.status.Resolve()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.resolution = resolution
	c.resolvedAt = &resolvedAt
	return nil
}

// Close finalizes a resolved case.
func (c *Case) Close() error {
	newStatus, err := c.status.Close()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

func createCaseNumber() string {
	return caseNumberPrefix + strings.ToUpper(uuid.NewString()[:8])
}

func (c *Case) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Case) setCaseNumber(caseNumber string) error {
	if strings.TrimSpace(caseNumber) == "" {
		return errs.NewValueIsRequiredError("caseNumber")
	}
	c.caseNumber = caseNumber
	return nil
}

func (c *Case) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *Case) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Case) setCaseType(caseType CaseType) error {
	if err := caseType.Validate(); err != nil {
		return err
	}
	c.caseType = caseType
	return nil
}

func (c *Case) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Case) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *Case) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
