// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU           string    `gorm:"size:15;uniqueIndex"`
	Name          string    `gorm:"size:255"`
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Currency      string          `gorm:"size:3"`
	StockQuantity int
	Category      int `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		SKU:           aggregate.SKU().Value(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price().Amount(),
		Currency:      aggregate.Price().Currency(),
		StockQuantity: aggregate.StockQuantity().Value(),
		Category:      int(aggregate.Category()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a product aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sku, err := kernel.NewSKU(dto.SKU)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	stock, err := kernel.NewQuantity(dto.StockQuantity)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, sku, dto.Name, dto.Description, price,
		stock, product.Category(dto.Category), dto.CreatedAt, dto.UpdatedAt)
}
