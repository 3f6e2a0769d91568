package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM-based order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAll(ctx context.Context, offset, limit int) ([]ordering.Order, error) {
	var orders []ordering.Order
	err := r.db.WithContext(ctx).
		Preload("Mappings", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_product_map.id")
		}).
		Preload("Mappings.Product").
		Order("orders.id").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*ordering.Order, error) {
	var order ordering.Order
	err := r.db.WithContext(ctx).
		Preload("Mappings", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_product_map.id")
		}).
		Preload("Mappings.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %d: %w", id, err)
	}
	return &order, nil
}

// Create persists the order and its product mappings in a single
// transaction. All referenced products are verified first so that a bad
// reference rolls back without leaving a partial order behind.
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkProductsExist(tx, order.ProductIDs()); err != nil {
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
}

// Update persists a changed description and, when replaceMappings is set,
// swaps the full set of product mappings for the order. Both writes happen
// in one transaction.
func (r *GormOrderRepository) Update(ctx context.Context, order *ordering.Order, replaceMappings bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ordering.Order{}).
			Where("id = ?", order.ID).
			Update("description", order.Description)
		if result.Error != nil {
			return fmt.Errorf("failed to update order %d: %w", order.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if !replaceMappings {
			return nil
		}

		if err := checkProductsExist(tx, order.ProductIDs()); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).
			Delete(&ordering.OrderProductMap{}).Error; err != nil {
			return fmt.Errorf("failed to clear mappings for order %d: %w", order.ID, err)
		}
		mappings := make([]ordering.OrderProductMap, len(order.Mappings))
		for i, m := range order.Mappings {
			mappings[i] = ordering.OrderProductMap{
				OrderID:   order.ID,
				ProductID: m.ProductID,
				Quantity:  m.Quantity,
			}
		}
		if err := tx.Create(&mappings).Error; err != nil {
			return fmt.Errorf("failed to insert mappings for order %d: %w", order.ID, err)
		}
		order.Mappings = mappings
		return nil
	})
}

func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// checkProductsExist verifies every referenced product ID inside the
// current transaction and reports the missing ones as a domain error.
func checkProductsExist(tx *gorm.DB, ids []int64) error {
	unique := dedupeIDs(ids)

	var found []int64
	if err := tx.Model(&catalog.Product{}).
		Where("id IN ?", unique).
		Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("failed to look up product IDs: %w", err)
	}
	if len(found) == len(unique) {
		return nil
	}

	existing := make(map[int64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}
	var missing []int64
	for _, id := range unique {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return shared.NewInvalidReferenceError(missing)
}
