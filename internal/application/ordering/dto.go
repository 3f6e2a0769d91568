package ordering

import (
	"time"

	catalogapp "github.com/orderhub/backend/internal/application/catalog"
	"github.com/orderhub/backend/internal/domain/ordering"
)

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=100"`
	ProductIDs  []int64 `json:"product_ids" binding:"required,min=1,dive,gt=0"`
}

// UpdateOrderRequest represents a request to update an order. Both fields
// are optional; an absent product_ids leaves the current mappings alone.
type UpdateOrderRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=100"`
	ProductIDs  []int64 `json:"product_ids" binding:"omitempty,min=1,dive,gt=0"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID          int64                        `json:"id"`
	Description string                       `json:"description"`
	CreatedAt   time.Time                    `json:"created_at"`
	Products    []catalogapp.ProductResponse `json:"products"`
}

// ToOrderResponse converts a domain Order to OrderResponse. Products appear
// in mapping order, one entry per mapping row, so duplicate references stay
// visible.
func ToOrderResponse(o *ordering.Order) OrderResponse {
	products := make([]catalogapp.ProductResponse, 0, len(o.Mappings))
	for _, m := range o.Mappings {
		if m.Product == nil {
			continue
		}
		products = append(products, catalogapp.ToProductResponse(m.Product))
	}
	return OrderResponse{
		ID:          o.ID,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		Products:    products,
	}
}

// ToOrderResponses converts a slice of domain Orders to responses
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
