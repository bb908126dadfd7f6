package user

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getUserByIDQuery    = `SELECT id, name, email, password, role, "createdAt", "updatedAt" FROM users WHERE id = $1`
	getUserByEmailQuery = `SELECT id, name, email, password, role, "createdAt", "updatedAt" FROM users WHERE LOWER(email) = LOWER($1)`
	insertUserQuery     = `INSERT INTO users (id, name, email, password, role, "createdAt", "updatedAt") VALUES ($1,$2,$3,$4,$5,$6,$7)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id string) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByEmailQuery, email))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	_, err := r.db.Exec(insertUserQuery, u.ID, u.Name, u.Email, u.Password, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (User, error) {
	var (
		u         User
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.CreatedAt = createdAt.String
	u.UpdatedAt = updatedAt.String
	return u, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
