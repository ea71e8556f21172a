// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
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

	// OrderCycleRepoFactory provides access to the order cycle repository within a transaction.
	OrderCycleRepoFactory interface {
		OrderCycleRepository() ports.OrderCycleRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCycleUoW manages transactions for order-cycle-only operations.
	OrderCycleUoW interface {
		TxManager
		OrderCycleRepoFactory
	}

	// OrderCycleUoWFactory creates new order cycle unit of work instances.
	OrderCycleUoWFactory interface {
		Create() OrderCycleUoW
	}
)
