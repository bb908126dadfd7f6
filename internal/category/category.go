package category

// Category groups products on the storefront. Listings embed the
// subcategories so the navigation renders from a single call.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID string `json:"categoryId"`
}
