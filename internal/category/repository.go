package category

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	List() ([]Category, error)
	GetByID(id string) (Category, error)
	Create(c Category) (Category, error)
	Update(id string, name, slug string) (Category, error)
	Delete(id string) error
	CreateSubcategory(s Subcategory) (Subcategory, error)
	DeleteSubcategory(id string) error
}

// InMemoryRepository backs tests and local runs without a database.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{categories: make([]Category, 0, len(seed))}
	r.categories = append(r.categories, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = copyCategory(c)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.ID == id {
			return copyCategory(c), nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Subcategories == nil {
		c.Subcategories = []Subcategory{}
	}
	r.categories = append(r.categories, c)
	return copyCategory(c), nil
}

func (r *InMemoryRepository) Update(id string, name, slug string) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories[i].Name = name
			r.categories[i].Slug = slug
			return copyCategory(r.categories[i]), nil
		}
	}
	return Category{}, ErrNotFound
}

// Delete removes a category together with its subcategories.
func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) CreateSubcategory(s Subcategory) (Subcategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == s.CategoryID {
			r.categories[i].Subcategories = append(r.categories[i].Subcategories, s)
			return s, nil
		}
	}
	return Subcategory{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteSubcategory(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		subs := r.categories[i].Subcategories
		for j := range subs {
			if subs[j].ID == id {
				r.categories[i].Subcategories = append(subs[:j], subs[j+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

func copyCategory(c Category) Category {
	out := c
	out.Subcategories = make([]Subcategory, len(c.Subcategories))
	copy(out.Subcategories, c.Subcategories)
	return out
}
