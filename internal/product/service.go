package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("invalid product")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filter) ([]Product, error) {
	return s.repo.List(f)
}

// ListByIDs resolves the products behind a set of cart line items. Unknown
// ids are simply absent from the result.
func (s *Service) ListByIDs(ids []string) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	return s.repo.GetBySlug(slug)
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := validate(p); err != nil {
		return Product{}, err
	}

	p.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Images == nil {
		p.Images = []string{}
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Product) (Product, error) {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if err := validate(p); err != nil {
		return Product{}, err
	}

	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

func validate(p Product) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case strings.TrimSpace(p.Slug) == "":
		return fmt.Errorf("%w: slug is required", ErrValidation)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	case p.Inventory < 0:
		return fmt.Errorf("%w: inventory cannot be negative", ErrValidation)
	case strings.TrimSpace(p.CategoryID) == "":
		return fmt.Errorf("%w: categoryId is required", ErrValidation)
	}
	return nil
}

// Slugify lowercases the title and keeps letters and digits, joining the
// rest with hyphens, so "Air Stride Max" becomes "air-stride-max".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
