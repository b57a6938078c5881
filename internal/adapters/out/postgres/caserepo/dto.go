// Package caserepo provides data transfer objects and mapping functions for
// customer case persistence.
package caserepo

import (
	"time"

	"webshop/internal/core/domain/model/casefile"
	"webshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CaseDTO represents the database structure for persisting customer cases.
type CaseDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CaseNumber  string     `gorm:"size:13;uniqueIndex"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	CaseType    int
	Status      int `gorm:"index"`
	Priority    int
	Description string
	Resolution  string
	AssignedTo  string `gorm:"size:100"`
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// TableName specifies the database table name for case entities.
func (CaseDTO) TableName() string {
	return "cases"
}

// fromDomain converts a case aggregate to its database representation.
func fromDomain(aggregate *casefile.Case) CaseDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return CaseDTO{
		ID:          aggregate.ID().Bytes(),
		CaseNumber:  aggregate.CaseNumber(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		OrderID:     orderID,
		CaseType:    int(aggregate.Type()),
		Status:      int(aggregate.Status()),
		Priority:    int(aggregate.Priority()),
		Description: aggregate.Description(),
		Resolution:  aggregate.Resolution(),
		AssignedTo:  aggregate.AssignedTo(),
		CreatedAt:   aggregate.CreatedAt(),
		ResolvedAt:  aggregate.ResolvedAt(),
	}
}

// toDomain converts a database DTO to a case aggregate using RestoreCase.
func toDomain(dto CaseDTO) (*casefile.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return casefile.RestoreCase(id, dto.CaseNumber, customerID, orderID,
		casefile.CaseType(dto.CaseType), casefile.Status(dto.Status),
		casefile.Priority(dto.Priority), dto.Description, dto.Resolution,
		dto.AssignedTo, dto.CreatedAt, dto.ResolvedAt)
}
