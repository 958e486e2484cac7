package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/product/domain"
)

// MemoryProductRepository is a slice-backed product store. Records keep
// their insertion order; every read returns a copy.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemoryProductRepository creates an empty product repository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) FindByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryProductRepository) FindBySKU(sku string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].SKU == sku {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryProductRepository) FindAll() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// FindBySupplier returns the supplier's products preserving catalog order
func (r *MemoryProductRepository) FindBySupplier(supplierID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []domain.Product
	for i := range r.products {
		if r.products[i].SupplierID == supplierID {
			products = append(products, r.products[i])
		}
	}
	return products, nil
}

// Update replaces the record matching the product id; unknown ids are ignored
func (r *MemoryProductRepository) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return nil
}

// Delete removes the record matching id; unknown ids are ignored
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryProductRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products), nil
}
