package cart

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load reads the stored items blob for a session. A missing row or an
// unparseable blob both come back as an empty cart; a broken blob only
// produces a logged warning, never an error to the caller.
func (r *PostgresRepository) Load(sessionID string) (Cart, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT items FROM carts WHERE "sessionID" = $1`, sessionID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, nil
		}
		return Cart{}, err
	}

	if !raw.Valid || raw.String == "" {
		return Cart{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw.String), &items); err != nil {
		log.Printf("warning: discarding corrupt cart blob for session %s: %v", sessionID, err)
		return Cart{}, nil
	}
	return Cart{Items: items}, nil
}

// Save writes the full item list back as a single JSON blob. Carts are
// written through on every mutation, so an upsert keeps this one statement.
func (r *PostgresRepository) Save(sessionID string, c Cart) error {
	items := c.Items
	if items == nil {
		items = []LineItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`INSERT INTO carts ("sessionID", items, "updatedAt") VALUES ($1, $2, $3)
        ON CONFLICT ("sessionID") DO UPDATE SET items = $2, "updatedAt" = $3`,
		sessionID, string(blob), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *PostgresRepository) Delete(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM carts WHERE "sessionID" = $1`, sessionID)
	return err
}
