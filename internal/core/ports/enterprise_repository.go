// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
)

// EnterpriseRepository defines the persistence contract for enterprise
// aggregates.
type EnterpriseRepository interface {
	// Add persists a new enterprise aggregate to storage.
	// The enterprise must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *enterprise.Enterprise) error

	// Update persists changes to an existing enterprise aggregate.
	Update(ctx context.Context, aggregate *enterprise.Enterprise) error

	// Get retrieves an enterprise aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*enterprise.Enterprise, error)

	// GetAllByOwner retrieves the enterprises owned by the given actor
	// identity. Used to establish a caller's standing in the order API.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*enterprise.Enterprise, error)
}
