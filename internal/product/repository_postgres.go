package product

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, title, slug, description, price, inventory, "categoryId", "subcategoryId", images, sizes, colors, featured, "createdAt", "updatedAt"`

	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	getProductBySlugQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1
	`
	insertProductQuery = `
		INSERT INTO products (id, title, slug, description, price, inventory, "categoryId", "subcategoryId", images, sizes, colors, featured, "createdAt", "updatedAt")
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	updateProductQuery = `
		UPDATE products
		SET title = $1,
			slug = $2,
			description = $3,
			price = $4,
			inventory = $5,
			"categoryId" = $6,
			"subcategoryId" = $7,
			images = $8,
			sizes = $9,
			colors = $10,
			featured = $11,
			"updatedAt" = $12
		WHERE id = $13
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var (
		where []string
		args  []any
	)
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		where = append(where, fmt.Sprintf(`"categoryId" = $%d`, len(args)))
	}
	if f.SubcategoryID != "" {
		args = append(args, f.SubcategoryID)
		where = append(where, fmt.Sprintf(`"subcategoryId" = $%d`, len(args)))
	}
	if f.Featured {
		where = append(where, `featured = TRUE`)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf(`title ILIKE $%d`, len(args)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += ` ORDER BY "createdAt" DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ListByIDs(ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductBySlugQuery, slug))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	_, err := r.db.Exec(insertProductQuery,
		p.ID, p.Title, p.Slug, p.Description, p.Price, p.Inventory,
		p.CategoryID, p.SubcategoryID,
		pq.Array(p.Images), pq.Array(p.Sizes), pq.Array(p.Colors),
		p.Featured, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	res, err := r.db.Exec(updateProductQuery,
		p.Title, p.Slug, p.Description, p.Price, p.Inventory,
		p.CategoryID, p.SubcategoryID,
		pq.Array(p.Images), pq.Array(p.Sizes), pq.Array(p.Colors),
		p.Featured, p.UpdatedAt, id,
	)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProduct(row interface{ Scan(dest ...any) error }) (Product, error) {
	var (
		p             Product
		subcategoryID sql.NullString
		createdAt     sql.NullString
		updatedAt     sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.Inventory,
		&p.CategoryID, &subcategoryID,
		pq.Array(&p.Images), pq.Array(&p.Sizes), pq.Array(&p.Colors),
		&p.Featured, &createdAt, &updatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	if subcategoryID.Valid {
		p.SubcategoryID = &subcategoryID.String
	}
	p.CreatedAt = createdAt.String
	p.UpdatedAt = updatedAt.String
	return p, nil
}
