// Package ports defines the persistence contracts of the sales domain.
// Adapters implement them; the application layer depends only on these interfaces.
package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An aggregate is always stored and loaded together with all of its lines.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its lines.
	// The stored version must match aggregate.Version(); otherwise an
	// errs.VersionIsInvalidError is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// DeleteDraftsNotUpdatedSince removes draft orders whose last update happened
	// before cutoff and returns how many were deleted.
	DeleteDraftsNotUpdatedSince(ctx context.Context, cutoff time.Time) (int64, error)
}
