package queries

import (
	"context"
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenCasesQueryHandler retrieves cases waiting for triage from the
// database, most urgent first.
type GetOpenCasesQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenCasesQueryHandler creates a handler for open case queries.
func NewGetOpenCasesQueryHandler(db *gorm.DB) GetOpenCasesQueryHandler {
	return GetOpenCasesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by priority descending and
// then by age, so the most pressing cases come first.
func (h GetOpenCasesQueryHandler) Handle(
	ctx context.Context,
	query GetOpenCasesQuery,
) ([]GetOpenCasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cases := make([]GetOpenCasesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			case_number,
			customer_id,
			case_type,
			priority,
			created_at
		FROM cases
		WHERE status = ?
		ORDER BY priority DESC, created_at
	`, casefile.StatusOpen).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			caseNumber string
			customerID uuid.UUID
			caseType   int
			priority   int
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &caseNumber, &customerID,
			&caseType, &priority, &createdAt); err != nil {
			return nil, err
		}

		caseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		cases = append(cases, GetOpenCasesQueryResponse{
			ID:         caseID,
			CaseNumber: caseNumber,
			CustomerID: custID,
			Type:       casefile.CaseType(caseType),
			Priority:   casefile.Priority(priority),
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}
