package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tair/supplychain-dashboard/internal/order/domain"
)

// MemoryOrderRepository is a slice-backed order store. Records keep their
// insertion order; every read returns a copy, including item lines.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryOrderRepository creates an empty order repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := cloneOrder(r.orders[i])
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryOrderRepository) FindAll() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, len(r.orders))
	for i := range r.orders {
		orders[i] = cloneOrder(r.orders[i])
	}
	return orders, nil
}

// FindBySupplier returns the supplier's orders preserving creation order
func (r *MemoryOrderRepository) FindBySupplier(supplierID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for i := range r.orders {
		if r.orders[i].SupplierID == supplierID {
			orders = append(orders, cloneOrder(r.orders[i]))
		}
	}
	return orders, nil
}

// Update replaces the record matching the order id; unknown ids are ignored
func (r *MemoryOrderRepository) Update(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = cloneOrder(*order)
			return nil
		}
	}
	return nil
}

// Delete removes the record matching id; unknown ids are ignored
func (r *MemoryOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryOrderRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders), nil
}

// cloneOrder copies an order along with its item slice so callers can
// mutate the result without touching stored state
func cloneOrder(order domain.Order) domain.Order {
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	if order.ActualDeliveryDate != nil {
		actual := *order.ActualDeliveryDate
		order.ActualDeliveryDate = &actual
	}
	return order
}
