package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded with their distributor, cycle (with coordinator)
// and line items so that visibility decisions never trigger further reads.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its business number.
	// Returns an object-not-found error when no order carries the number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// GetAll retrieves every order with its full visibility graph.
	// Listing filters, sorting and pagination are applied by the caller
	// after per-order access decisions.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// DeleteCartsBefore removes cart-state orders created before the cutoff
	// and returns how many were removed. Orders that progressed past the
	// cart are never touched.
	DeleteCartsBefore(ctx context.Context, cutoff time.Time) (int, error)
}
