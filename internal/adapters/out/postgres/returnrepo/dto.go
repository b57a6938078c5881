// Package returnrepo provides data transfer objects and mapping functions for
// return persistence.
package returnrepo

import (
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/returns"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnDTO represents the database structure for persisting returns.
// Returned product lines live in their own table.
type ReturnDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReturnNumber  string     `gorm:"size:12;uniqueIndex"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	CaseID        *uuid.UUID `gorm:"type:uuid;index"`
	Status        int        `gorm:"index"`
	Reason        int
	RefundAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency      string          `gorm:"size:3"`
	RequestDate   time.Time
	ProcessedDate *time.Time
	Notes         string
	Items         []ReturnItemDTO `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for return entities.
func (ReturnDTO) TableName() string {
	return "returns"
}

// ReturnItemDTO represents a single returned product line.
type ReturnItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	ReturnID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	RefundAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency     string          `gorm:"size:3"`
	Condition    string          `gorm:"size:100"`
}

// TableName specifies the database table name for return line items.
func (ReturnItemDTO) TableName() string {
	return "return_items"
}

// fromDomain converts a return aggregate to its database representation.
func fromDomain(aggregate *returns.Return) ReturnDTO {
	var caseID *uuid.UUID
	if id := aggregate.CaseID(); id != nil {
		raw := id.Bytes()
		caseID = &raw
	}

	items := make([]ReturnItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ReturnItemDTO{
			ReturnID:     aggregate.ID().Bytes(),
			ProductID:    item.ProductID().Bytes(),
			Quantity:     item.Quantity().Value(),
			RefundAmount: item.RefundAmount().Amount(),
			Currency:     item.RefundAmount().Currency(),
			Condition:    item.Condition(),
		})
	}

	return ReturnDTO{
		ID:            aggregate.ID().Bytes(),
		ReturnNumber:  aggregate.ReturnNumber(),
		OrderID:       aggregate.OrderID().Bytes(),
		CaseID:        caseID,
		Status:        int(aggregate.Status()),
		Reason:        int(aggregate.Reason()),
		RefundAmount:  aggregate.RefundAmount().Amount(),
		Currency:      aggregate.RefundAmount().Currency(),
		RequestDate:   aggregate.RequestDate(),
		ProcessedDate: aggregate.ProcessedDate(),
		Notes:         aggregate.Notes(),
		Items:         items,
	}
}

// toDomain converts a database DTO to a return aggregate using RestoreReturn.
func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var caseID *kernel.UUID
	if dto.CaseID != nil {
		cID, caseErr := kernel.UUIDFromBytes((*dto.CaseID)[:])
		if caseErr != nil {
			return nil, caseErr
		}
		caseID = &cID
	}

	refundAmount, err := kernel.NewMoney(dto.RefundAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*returns.ReturnItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return returns.RestoreReturn(id, dto.ReturnNumber, orderID, caseID, items,
		returns.Status(dto.Status), returns.Reason(dto.Reason), refundAmount,
		dto.RequestDate, dto.ProcessedDate, dto.Notes)
}

func itemToDomain(dto ReturnItemDTO) (*returns.ReturnItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	refundAmount, err := kernel.NewMoney(dto.RefundAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return returns.NewReturnItem(productID, quantity, refundAmount, dto.Condition)
}
