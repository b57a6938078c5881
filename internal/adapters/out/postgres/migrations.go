package postgres

import (
	"webshop/internal/adapters/out/postgres/caserepo"
	"webshop/internal/adapters/out/postgres/customerrepo"
	"webshop/internal/adapters/out/postgres/orderrepo"
	"webshop/internal/adapters/out/postgres/productrepo"
	"webshop/internal/adapters/out/postgres/returnrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the tables for every persisted aggregate.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&caserepo.CaseDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
	)
}
