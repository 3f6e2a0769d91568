package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll finds all products
	FindAll(ctx context.Context) ([]Product, error)

	// FindExistingIDs returns the subset of ids that exist, deduplicated
	FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Delete deletes a product; mappings referencing it are removed by cascade
	Delete(ctx context.Context, id int64) error
}
