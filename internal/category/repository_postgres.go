package category

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery    = `SELECT id, name, slug FROM categories ORDER BY name`
	getCategoryQuery       = `SELECT id, name, slug FROM categories WHERE id = $1`
	insertCategoryQuery    = `INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`
	updateCategoryQuery    = `UPDATE categories SET name = $1, slug = $2 WHERE id = $3`
	deleteCategoryQuery    = `DELETE FROM categories WHERE id = $1`
	listSubcategoriesQuery = `SELECT id, name, slug, "categoryId" FROM subcategories WHERE "categoryId" = ANY($1) ORDER BY name`
	insertSubcategoryQuery = `INSERT INTO subcategories (id, name, slug, "categoryId") VALUES ($1, $2, $3, $4)`
	deleteSubcategoryQuery = `DELETE FROM subcategories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		c.Subcategories = []Subcategory{}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSubcategories(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Category, error) {
	var c Category
	err := r.db.QueryRow(getCategoryQuery, id).Scan(&c.ID, &c.Name, &c.Slug)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	c.Subcategories = []Subcategory{}

	one := []Category{c}
	if err := r.attachSubcategories(one); err != nil {
		return Category{}, err
	}
	return one[0], nil
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	if _, err := r.db.Exec(insertCategoryQuery, c.ID, c.Name, c.Slug); err != nil {
		return Category{}, err
	}
	if c.Subcategories == nil {
		c.Subcategories = []Subcategory{}
	}
	return c, nil
}

func (r *PostgresRepository) Update(id string, name, slug string) (Category, error) {
	res, err := r.db.Exec(updateCategoryQuery, name, slug, id)
	if err != nil {
		return Category{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Category{}, ErrNotFound
	}
	return r.GetByID(id)
}

// Delete relies on the subcategories foreign key being ON DELETE CASCADE.
func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteCategoryQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CreateSubcategory(s Subcategory) (Subcategory, error) {
	if _, err := r.db.Exec(insertSubcategoryQuery, s.ID, s.Name, s.Slug, s.CategoryID); err != nil {
		return Subcategory{}, err
	}
	return s, nil
}

func (r *PostgresRepository) DeleteSubcategory(id string) error {
	res, err := r.db.Exec(deleteSubcategoryQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) attachSubcategories(categories []Category) error {
	if len(categories) == 0 {
		return nil
	}

	ids := make([]string, len(categories))
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
		index[c.ID] = i
	}

	rows, err := r.db.Query(listSubcategoriesQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.CategoryID); err != nil {
			return err
		}
		if i, ok := index[s.CategoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, s)
		}
	}
	return rows.Err()
}
