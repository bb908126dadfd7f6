package cart

import "errors"

var (
	ErrInvalidItem     = errors.New("invalid line item")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Service owns the cart for each visitor session. Every mutation is
// written through to the repository immediately; there is no batching.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(sessionID string) (Cart, error) {
	return s.repo.Load(sessionID)
}

// AddItem merges the item into the session's cart. An entry with the same
// (productId, size, color) tuple accumulates quantity instead of
// duplicating the row.
func (s *Service) AddItem(sessionID string, item LineItem) (Cart, error) {
	if item.ProductID == "" || item.Quantity < 1 || item.UnitPrice < 0 {
		return Cart{}, ErrInvalidItem
	}

	c, err := s.repo.Load(sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.Add(item)
	if err := s.repo.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// RemoveItem drops the matching entry. An absent tuple is a no-op, not an
// error, so the handler can treat deletes as idempotent.
func (s *Service) RemoveItem(sessionID, productID, size, color string) (Cart, error) {
	c, err := s.repo.Load(sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.Remove(productID, size, color)
	if err := s.repo.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// UpdateQuantity replaces the quantity on the matching entry. Quantities
// below 1 are rejected without touching the entry; callers must use
// RemoveItem to drop a line instead of zeroing it.
func (s *Service) UpdateQuantity(sessionID, productID string, qty int, size, color string) (Cart, error) {
	if qty < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	c, err := s.repo.Load(sessionID)
	if err != nil {
		return Cart{}, err
	}
	if !c.SetQuantity(productID, qty, size, color) {
		// nothing matched; return the cart unchanged
		return c, nil
	}
	if err := s.repo.Save(sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Clear empties the session's cart. Used after a confirmed order placement
// or an explicit delete from the cart page.
func (s *Service) Clear(sessionID string) error {
	return s.repo.Delete(sessionID)
}

// Snapshot returns a defensive copy of the cart plus computed totals for
// the checkout orchestrator.
func (s *Service) Snapshot(sessionID string) (Snapshot, error) {
	c, err := s.repo.Load(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}
