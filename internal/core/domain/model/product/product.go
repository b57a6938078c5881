package product

import (
	"errors"
	"fmt"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructors")

	// ErrInsufficientStock is returned when a stock reduction asks for more
	// units than the product currently has. The product is left unmutated.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents an item in the shop catalog. It is an aggregate root
// whose stock is mutated only through ReduceStock, so the non-negativity of
// stock is enforced in one place.
//
// Invariants:
//   - Must have a valid unique identifier and SKU
//   - Price is a constructed Money value
//   - Stock never goes negative; ReduceStock rejects overdraws
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	id            kernel.UUID
	sku           kernel.SKU
	name          string
	description   string
	price         kernel.Money
	stockQuantity kernel.Quantity
	category      Category
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewProduct creates a Product with its initial stock.
// All value-object parameters must themselves be constructed; validation
// failures are joined into a single error.
func NewProduct(
	id kernel.UUID,
	sku kernel.SKU,
	name string,
	description string,
	price kernel.Money,
	initialStock kernel.Quantity,
	category Category,
	createdAt time.Time,
) (*Product, error) {
	product := &Product{
		description:   description,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setSKU(sku),
		product.setName(name),
		product.setPrice(price),
		product.setStock(initialStock),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence, preserving the
// stored timestamps and stock level. Used only by repository adapters.
func RestoreProduct(
	id kernel.UUID,
	sku kernel.SKU,
	name string,
	description string,
	price kernel.Money,
	stockQuantity kernel.Quantity,
	category Category,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	product, err := NewProduct(id, sku, name, description, price, stockQuantity, category, createdAt)
	if err != nil {
		return nil, err
	}

	product.updatedAt = updatedAt
	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the product's stock keeping unit.
func (p *Product) SKU() kernel.SKU {
	return p.sku
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the catalog description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQuantity returns the current stock level.
func (p *Product) StockQuantity() kernel.Quantity {
	return p.stockQuantity
}

// Category returns the product category.
func (p *Product) Category() Category {
	return p.category
}

// CreatedAt returns when the product was added to the catalog.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the product was last mutated.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsAvailable reports whether the product can currently be purchased,
// which holds exactly when stock is above zero.
func (p *Product) IsAvailable() bool {
	return p.stockQuantity.Value() > 0
}

// ReduceStock decrements stock after a purchase.
//
// Fails with ErrInsufficientStock when the requested amount exceeds current
// stock; the product is left unmutated in that case. This is the only
// mutation point for stock.
func (p *Product) ReduceStock(quantity kernel.Quantity, now time.Time) error {
	if err := errors.Join(p.Validate(), quantity.Validate()); err != nil {
		return err
	}

	if quantity.IsGreaterThan(p.stockQuantity) {
		return fmt.Errorf("%w: product %s has %d units, requested %d",
			ErrInsufficientStock, p.sku, p.stockQuantity.Value(), quantity.Value())
	}

	remaining, err := p.stockQuantity.Subtract(quantity)
	if err != nil {
		return err
	}

	p.stockQuantity = remaining
	p.updatedAt = now
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku kernel.SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock kernel.Quantity) error {
	if err := stock.Validate(); err != nil {
		return err
	}
	p.stockQuantity = stock
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
