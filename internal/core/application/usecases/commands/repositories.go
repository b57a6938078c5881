// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"webshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CaseRepoFactory provides access to the case repository within a transaction.
	CaseRepoFactory interface {
		CaseRepository() ports.CaseRepository
	}

	// ReturnRepoFactory provides access to the return repository within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order processing operations.
	// Order commands read the product catalog and the customer record
	// alongside the order aggregate itself.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CaseUoW manages transactions for case-only operations.
	CaseUoW interface {
		TxManager
		CaseRepoFactory
	}

	// CaseUoWFactory creates new case unit of work instances.
	CaseUoWFactory interface {
		Create() CaseUoW
	}

	// ReturnUoW manages transactions for return handling, which touches the
	// return, its originating order, and the associated case.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   returnRepo := uow.ReturnRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ReturnUoW interface {
		TxManager
		ReturnRepoFactory
		OrderRepoFactory
		CaseRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}
)
