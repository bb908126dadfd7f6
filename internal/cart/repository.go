package cart

import "sync"

// Repository persists one cart per visitor session key.
// Load must never fail because of a corrupt stored blob; implementations
// degrade to an empty cart so the storefront keeps working.
type Repository interface {
	Load(sessionID string) (Cart, error)
	Save(sessionID string, c Cart) error
	Delete(sessionID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]Cart)}
}

func (r *InMemoryRepository) Load(sessionID string) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.carts[sessionID]
	if !ok {
		return Cart{}, nil
	}
	items := make([]LineItem, len(stored.Items))
	copy(items, stored.Items)
	return Cart{Items: items}, nil
}

func (r *InMemoryRepository) Save(sessionID string, c Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	r.carts[sessionID] = Cart{Items: items}
	return nil
}

func (r *InMemoryRepository) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
