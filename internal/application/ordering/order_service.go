package ordering

import (
	"context"
	"sort"

	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/domain/shared"
)

// DefaultListLimit caps order listings when the caller does not ask for a
// specific page size.
const DefaultListLimit = 100

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo   ordering.OrderRepository
	productRepo catalog.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, productRepo catalog.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// List returns a page of orders with their products loaded
func (s *OrderService) List(ctx context.Context, skip, limit int) ([]OrderResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	orders, err := s.orderRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Get returns a single order by ID
func (s *OrderService) Get(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// Create creates a new order referencing existing products
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := ordering.NewOrder(req.Description, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.ProductIDs); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Re-fetch so the response carries DB-assigned fields and product data
	return s.Get(ctx, order.ID)
}

// Update changes an order's description and/or replaces its product set.
// An absent product_ids keeps the current mappings untouched.
func (s *OrderService) Update(ctx context.Context, id int64, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if err := order.UpdateDescription(*req.Description); err != nil {
			return nil, err
		}
	}

	replaceMappings := req.ProductIDs != nil
	if replaceMappings {
		if err := order.ReplaceProducts(req.ProductIDs); err != nil {
			return nil, err
		}
		if err := s.checkReferences(ctx, req.ProductIDs); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Update(ctx, order, replaceMappings); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes an order; its product mappings go with it
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}

// checkReferences rejects product IDs that do not exist in the catalog.
// The repository repeats this check inside its write transaction; here it
// fails fast before any write begins.
func (s *OrderService) checkReferences(ctx context.Context, ids []int64) error {
	found, err := s.productRepo.FindExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	existing := make(map[int64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(ids))
	var missing []int64
	for _, id := range ids {
		if _, ok := existing[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return shared.NewInvalidReferenceError(missing)
}
