// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded together with the order.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber  string     `gorm:"size:12;uniqueIndex"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	Shipping     AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status       int        `gorm:"index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency     string          `gorm:"size:3"`
	OrderDate    time.Time
	DeliveryDate *time.Time
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street  string `gorm:"size:255"`
	City    string `gorm:"size:100"`
	ZipCode string `gorm:"size:20"`
	Country string `gorm:"size:100"`
}

// OrderItemDTO represents a single order line in the order_items table.
type OrderItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string    `gorm:"size:255"`
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency    string          `gorm:"size:3"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity().Value(),
			UnitPrice:   item.UnitPrice().Amount(),
			TotalPrice:  item.TotalPrice().Amount(),
			Currency:    item.UnitPrice().Currency(),
		})
	}

	shipping := aggregate.ShippingAddress()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber().Value(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Shipping: AddressDTO{
			Street:  shipping.Street(),
			City:    shipping.City(),
			ZipCode: shipping.ZipCode(),
			Country: shipping.Country(),
		},
		Status:       int(aggregate.Status()),
		TotalAmount:  aggregate.TotalAmount().Amount(),
		Currency:     aggregate.TotalAmount().Currency(),
		OrderDate:    aggregate.OrderDate(),
		DeliveryDate: aggregate.DeliveryDate(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	orderNumber, err := kernel.OrderNumberFrom(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	shipping, err := kernel.NewAddress(dto.Shipping.Street, dto.Shipping.City,
		dto.Shipping.ZipCode, dto.Shipping.Country)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, orderNumber, customerID, shipping, items,
		order.Status(dto.Status), totalAmount, dto.OrderDate, dto.DeliveryDate)
}

func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(productID, dto.ProductName, quantity, unitPrice, totalPrice)
}
