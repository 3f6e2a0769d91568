package ordering

import "context"

// OrderRepository defines the interface for order persistence.
// Multi-row writes (order plus its mappings) are atomic: either everything in
// the call is persisted or nothing is.
type OrderRepository interface {
	// FindAll returns orders with mappings and products eagerly loaded,
	// ordered by primary key for stable pagination
	FindAll(ctx context.Context, offset, limit int) ([]Order, error)

	// FindByID finds an order by primary key with mappings and products loaded
	FindByID(ctx context.Context, id int64) (*Order, error)

	// Create persists the order and its mappings in one transaction after
	// verifying every referenced product exists
	Create(ctx context.Context, order *Order) error

	// Update persists the order description and, when replaceMappings is set,
	// swaps the full mapping set, all in one transaction
	Update(ctx context.Context, order *Order, replaceMappings bool) error

	// Delete removes the order; its mappings go with it by cascade
	Delete(ctx context.Context, id int64) error
}
