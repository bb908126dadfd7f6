package category

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hidestyle/hidestyle-backend/internal/product"
)

var ErrValidation = errors.New("invalid category")

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Category, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(name, slug string) (Category, error) {
	if slug == "" {
		slug = product.Slugify(name)
	}
	if err := validate(name, slug); err != nil {
		return Category{}, err
	}
	return s.repo.Create(Category{
		ID:            uuid.NewString(),
		Name:          name,
		Slug:          slug,
		Subcategories: []Subcategory{},
	})
}

func (s *Service) Update(id, name, slug string) (Category, error) {
	if slug == "" {
		slug = product.Slugify(name)
	}
	if err := validate(name, slug); err != nil {
		return Category{}, err
	}
	return s.repo.Update(id, name, slug)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *Service) CreateSubcategory(categoryID, name, slug string) (Subcategory, error) {
	if slug == "" {
		slug = product.Slugify(name)
	}
	if err := validate(name, slug); err != nil {
		return Subcategory{}, err
	}
	if strings.TrimSpace(categoryID) == "" {
		return Subcategory{}, fmt.Errorf("%w: categoryId is required", ErrValidation)
	}
	return s.repo.CreateSubcategory(Subcategory{
		ID:         uuid.NewString(),
		Name:       name,
		Slug:       slug,
		CategoryID: categoryID,
	})
}

func (s *Service) DeleteSubcategory(id string) error {
	return s.repo.DeleteSubcategory(id)
}

func validate(name, slug string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrValidation)
	}
	return nil
}
