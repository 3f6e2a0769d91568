package catalog

import (
	"github.com/orderhub/backend/internal/domain/shared"
)

// Product represents a product in the catalog. Products are created through
// seed data or maintenance tooling; the public API only reads them.
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	return &Product{
		Name:        name,
		Description: description,
	}, nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 100 characters")
	}
	return nil
}
