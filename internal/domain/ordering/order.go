package ordering

import (
	"time"

	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/orderhub/backend/internal/domain/shared"
)

// DefaultMappingQuantity is the quantity assigned to every mapping created
// from a plain product id list.
const DefaultMappingQuantity = 1

// Order is the aggregate root for order operations. It owns its product
// mappings: replacing or deleting the order replaces or deletes the mappings.
type Order struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Description string            `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime"`
	Mappings    []OrderProductMap `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderProductMap links an order to a product with a quantity.
type OrderProductMap struct {
	ID        int64            `gorm:"primaryKey;autoIncrement"`
	OrderID   int64            `gorm:"not null;index"`
	ProductID int64            `gorm:"not null;index"`
	Quantity  int              `gorm:"not null;default:1"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderProductMap) TableName() string {
	return "order_product_map"
}

// NewOrder creates a new order referencing the given products. Duplicate ids
// are kept: each occurrence becomes its own mapping row with quantity 1.
func NewOrder(description string, productIDs []int64) (*Order, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validateProductIDs(productIDs); err != nil {
		return nil, err
	}

	order := &Order{Description: description}
	order.Mappings = buildMappings(productIDs)
	return order, nil
}

// UpdateDescription changes the order description. CreatedAt is never touched.
func (o *Order) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	o.Description = description
	return nil
}

// ReplaceProducts discards the current mapping set and builds a new one from
// the supplied ids, preserving order and duplicates.
func (o *Order) ReplaceProducts(productIDs []int64) error {
	if err := validateProductIDs(productIDs); err != nil {
		return err
	}
	mappings := buildMappings(productIDs)
	for i := range mappings {
		mappings[i].OrderID = o.ID
	}
	o.Mappings = mappings
	return nil
}

// ProductIDs returns the referenced product ids in mapping order, duplicates
// included.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, len(o.Mappings))
	for i, m := range o.Mappings {
		ids[i] = m.ProductID
	}
	return ids
}

func buildMappings(productIDs []int64) []OrderProductMap {
	mappings := make([]OrderProductMap, len(productIDs))
	for i, id := range productIDs {
		mappings[i] = OrderProductMap{
			ProductID: id,
			Quantity:  DefaultMappingQuantity,
		}
	}
	return mappings
}

func validateDescription(description string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Order description is required")
	}
	if len(description) > 100 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Order description cannot exceed 100 characters")
	}
	return nil
}

func validateProductIDs(productIDs []int64) error {
	if len(productIDs) == 0 {
		return shared.NewDomainError("INVALID_PRODUCT_IDS", "At least one product ID is required")
	}
	for _, id := range productIDs {
		if id <= 0 {
			return shared.NewDomainError("INVALID_PRODUCT_IDS", "Product IDs must be positive integers")
		}
	}
	return nil
}
