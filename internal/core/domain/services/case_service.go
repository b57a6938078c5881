package services

import (
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/returns"
)

// Age thresholds for case prioritization. Cases older than two days rank
// HIGH, older than one day at least MEDIUM, regardless of type.
const (
	highPriorityAge   = 48 * time.Hour
	mediumPriorityAge = 24 * time.Hour
)

// CaseService is a domain service for customer case business rules:
// prioritization by type and age, return request validation, and escalation.
//
// The clock is injected so age computations are deterministic in tests:
//
//	svc := NewCaseService(time.Now)
//	priority := svc.DeterminePriority(c)
type CaseService struct {
	now func() time.Time
}

// NewCaseService creates a CaseService using the given clock.
func NewCaseService(now func() time.Time) CaseService {
	return CaseService{now: now}
}

// DeterminePriority derives the urgency of a case from its type and age.
// Damage claims and cases older than 48 hours rank High; complaints and
// cases older than 24 hours rank Medium; everything else is Low.
func (s CaseService) DeterminePriority(c *casefile.Case) casefile.Priority {
	age := c.Age(s.now())

	if c.Type() == casefile.TypeDamageClaim || age > highPriorityAge {
		return casefile.PriorityHigh
	}
	if c.Type() == casefile.TypeComplaint || age > mediumPriorityAge {
		return casefile.PriorityMedium
	}
	return casefile.PriorityLow
}

// ValidateReturnRequest reports whether a return may be approved against its
// originating order: the order must be delivered and the request must fall
// inside the 30-day return window after the order date.
func (s CaseService) ValidateReturnRequest(ret *returns.Return, ord *order.Order) bool {
	if ret.Validate() != nil || ord.Validate() != nil {
		return false
	}

	if ord.Status() != order.StatusDelivered {
		return false
	}

	return ret.IsWithinReturnWindow(ord.OrderDate())
}

// EscalateIfNeeded escalates an open critical case. Returns true after an
// escalation, false without mutation in every other constellation.
func (s CaseService) EscalateIfNeeded(c *casefile.Case) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	if c.Status() != casefile.StatusOpen || c.Priority() != casefile.PriorityCritical {
		return false, nil
	}

	if err := c.Escalate(); err != nil {
		return false, err
	}

	return true, nil
}
