package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/supplier/domain"
)

// MemorySupplierRepository is a slice-backed supplier store. Records keep
// their insertion order; every read returns a copy.
type MemorySupplierRepository struct {
	mu        sync.RWMutex
	suppliers []domain.Supplier
}

// NewMemorySupplierRepository creates an empty supplier repository
func NewMemorySupplierRepository() *MemorySupplierRepository {
	return &MemorySupplierRepository{}
}

func (r *MemorySupplierRepository) Create(supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	r.suppliers = append(r.suppliers, *supplier)
	return nil
}

func (r *MemorySupplierRepository) FindByID(id string) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			supplier := r.suppliers[i]
			return &supplier, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemorySupplierRepository) FindAll() ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]domain.Supplier, len(r.suppliers))
	copy(suppliers, r.suppliers)
	return suppliers, nil
}

// Update replaces the record matching the supplier id; unknown ids are ignored
func (r *MemorySupplierRepository) Update(supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.suppliers {
		if r.suppliers[i].ID == supplier.ID {
			r.suppliers[i] = *supplier
			return nil
		}
	}
	return nil
}

// Delete removes the record matching id; unknown ids are ignored
func (r *MemorySupplierRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemorySupplierRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.suppliers), nil
}
