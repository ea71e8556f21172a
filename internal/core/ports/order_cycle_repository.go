package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ordercycle"
)

// OrderCycleRepository defines the persistence contract for order cycle
// aggregates. Cycles are loaded with their coordinator enterprise.
type OrderCycleRepository interface {
	// Add persists a new order cycle aggregate to storage.
	Add(ctx context.Context, aggregate *ordercycle.OrderCycle) error

	// Update persists changes to an existing order cycle aggregate.
	Update(ctx context.Context, aggregate *ordercycle.OrderCycle) error

	// Get retrieves an order cycle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ordercycle.OrderCycle, error)

	// GetAllDueToOpen retrieves upcoming cycles whose window start has
	// passed. Used by the cycle clock to open them.
	GetAllDueToOpen(ctx context.Context, now time.Time) ([]*ordercycle.OrderCycle, error)

	// GetAllDueToClose retrieves open cycles whose window end has passed.
	// Used by the cycle clock to close them.
	GetAllDueToClose(ctx context.Context, now time.Time) ([]*ordercycle.OrderCycle, error)
}
