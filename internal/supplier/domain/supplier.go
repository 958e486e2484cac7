package domain

import "errors"

// ErrNotFound is returned when a supplier lookup misses
var ErrNotFound = errors.New("supplier not found")

// Reliability rating bounds
const (
	MinReliability = 1
	MaxReliability = 5
)

// Supplier represents a supplier entity
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Category      string `json:"category"`
	LeadTime      int    `json:"lead_time"`
	Reliability   int    `json:"reliability"`
	Active        bool   `json:"active"`
}

// SupplierRepository defines the contract for supplier data access.
// Update and Delete against an unknown id are silent no-ops; only lookups
// report ErrNotFound.
type SupplierRepository interface {
	Create(supplier *Supplier) error
	FindByID(id string) (*Supplier, error)
	FindAll() ([]Supplier, error)
	Update(supplier *Supplier) error
	Delete(id string) error
	Count() (int, error)
}
