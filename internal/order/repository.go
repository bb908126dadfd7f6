package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id string) (Order, error)
	// List returns orders newest first. limit <= 0 means no limit.
	List(limit, offset int) ([]Order, error)
	Count() (int, error)
	UpdateStatus(id, status string) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List(limit, offset int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// newest first: orders are appended in creation order
	out := make([]Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	if offset > len(out) {
		return []Order{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}

func (r *InMemoryRepository) UpdateStatus(id, status string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.ID == id {
			r.orders[i].Status = status
			return r.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}
