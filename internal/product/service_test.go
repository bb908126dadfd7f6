package product

import (
	"errors"
	"testing"
)

func validProduct() Product {
	sub := "sub-running"
	return Product{
		Title:         "Air Stride Max",
		Description:   "Flagship running shoe.",
		Price:         12999,
		Inventory:     50,
		CategoryID:    "cat-sneakers",
		SubcategoryID: &sub,
		Images:        []string{"https://img.example/air-stride.jpg"},
		Sizes:         []string{"UK 8", "UK 9"},
		Colors:        []string{"Black", "White"},
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Air Stride Max":        "air-stride-max",
		"  Classic  Loafer  ":   "classic-loafer",
		"Court Legend High (2)": "court-legend-high-2",
		"UPPER":                 "upper",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateAssignsIDAndSlug(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Create(validProduct())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Slug != "air-stride-max" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatal("expected timestamps to be set")
	}

	stored, err := svc.GetBySlug("air-stride-max")
	if err != nil {
		t.Fatalf("lookup by slug: %v", err)
	}
	if stored.ID != created.ID {
		t.Fatal("slug lookup returned a different product")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	cases := []struct {
		name   string
		mutate func(*Product)
	}{
		{"missing title", func(p *Product) { p.Title = "" }},
		{"zero price", func(p *Product) { p.Price = 0 }},
		{"negative price", func(p *Product) { p.Price = -500 }},
		{"negative inventory", func(p *Product) { p.Inventory = -1 }},
		{"missing category", func(p *Product) { p.CategoryID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			if _, err := svc.Create(p); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	products, _ := svc.List(Filter{})
	if len(products) != 0 {
		t.Fatalf("rejected products must not be stored, found %d", len(products))
	}
}

func TestListFilters(t *testing.T) {
	subRunning := "sub-running"
	subHigh := "sub-high"
	repo := NewInMemoryRepository([]Product{
		{ID: "p1", CategoryID: "cat-sneakers", SubcategoryID: &subRunning},
		{ID: "p2", CategoryID: "cat-sneakers", SubcategoryID: &subHigh},
		{ID: "p3", CategoryID: "cat-formal"},
	})
	svc := NewService(repo)

	all, _ := svc.List(Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	sneakers, _ := svc.List(Filter{CategoryID: "cat-sneakers"})
	if len(sneakers) != 2 {
		t.Fatalf("expected 2 sneakers, got %d", len(sneakers))
	}

	running, _ := svc.List(Filter{CategoryID: "cat-sneakers", SubcategoryID: "sub-running"})
	if len(running) != 1 || running[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", running)
	}
}

func TestFeaturedAndSearchFilters(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: "p1", Title: "Air Stride Max", CategoryID: "c1", Featured: true},
		{ID: "p2", Title: "Court Legend High", CategoryID: "c1"},
		{ID: "p3", Title: "Street Lows", CategoryID: "c1"},
	})
	svc := NewService(repo)

	featured, _ := svc.List(Filter{Featured: true})
	if len(featured) != 1 || featured[0].ID != "p1" {
		t.Fatalf("expected only the featured product, got %+v", featured)
	}

	matches, _ := svc.List(Filter{Search: "legend"})
	if len(matches) != 1 || matches[0].ID != "p2" {
		t.Fatalf("search should be case-insensitive on title, got %+v", matches)
	}
}

func TestListByIDs(t *testing.T) {
	repo := NewInMemoryRepository([]Product{
		{ID: "p1", Title: "Air Stride Max", CategoryID: "c1"},
		{ID: "p2", Title: "Street Lows", CategoryID: "c1"},
	})
	svc := NewService(repo)

	got, err := svc.ListByIDs([]string{"p2", "missing"})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("unknown ids must be skipped, got %+v", got)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	created, err := svc.Create(validProduct())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	changed := created
	changed.Price = 9999
	updated, err := svc.Update(created.ID, changed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 9999 {
		t.Fatalf("expected updated price, got %d", updated.Price)
	}

	if _, err := svc.Update("missing", changed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
