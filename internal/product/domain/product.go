package domain

import "errors"

// ErrNotFound is returned when a product lookup misses
var ErrNotFound = errors.New("product not found")

// UnitsOfMeasure lists the accepted units for a product
var UnitsOfMeasure = []string{
	"piece", "set", "box", "roll", "meter", "liter", "kilogram", "sheet",
}

// Product represents a catalog product sourced from a supplier
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	SupplierID    string  `json:"supplier_id"`
	MinStockLevel int     `json:"min_stock_level"`
	CurrentStock  int     `json:"current_stock"`
	UnitOfMeasure string  `json:"unit_of_measure"`
}

// IsLowStock reports whether the product is at or below its minimum stock level
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

// IsValidUnit reports whether unit is an accepted unit of measure
func IsValidUnit(unit string) bool {
	for _, u := range UnitsOfMeasure {
		if u == unit {
			return true
		}
	}
	return false
}

// ProductRepository defines the contract for product data access.
// Update and Delete against an unknown id are silent no-ops; only lookups
// report ErrNotFound.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll() ([]Product, error)
	FindBySupplier(supplierID string) ([]Product, error)
	Update(product *Product) error
	Delete(id string) error
	Count() (int, error)
}
