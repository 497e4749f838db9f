package postgres

import (
	"context"
	"database/sql"

	"storefront/internal/storage"
)

// Backend keeps documents as JSONB rows in the documents table
type Backend struct {
	db *sql.DB
}

// New creates a Postgres document backend
func New(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// Read returns the raw document
func (b *Backend) Read(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	query := `SELECT body FROM documents WHERE name = $1`
	err := b.db.QueryRowContext(ctx, query, name).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Write upserts the document
func (b *Backend) Write(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`
	_, err := b.db.ExecContext(ctx, query, name, string(data))
	return err
}
