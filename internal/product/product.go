package product

// Product is a catalog entry. Prices are stored in the smallest currency
// unit, so 12999 renders as 129.99 on the storefront.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	Inventory     int      `json:"inventory"`
	CategoryID    string   `json:"categoryId"`
	SubcategoryID *string  `json:"subcategoryId,omitempty"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Featured      bool     `json:"featured"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// Filter narrows catalog listings. Zero values mean "no constraint".
type Filter struct {
	CategoryID    string
	SubcategoryID string
	Featured      bool
	Search        string
}
