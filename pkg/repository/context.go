package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ContextRepository stores the single ingestion context record
type ContextRepository struct {
	db *sqlx.DB
}

// NewContextRepository creates a new ingestion context repository
func NewContextRepository(database *sqlx.DB) *ContextRepository {
	return &ContextRepository{db: database}
}

// GetContext returns the stored ingestion context, empty string if it was never saved
func (r *ContextRepository) GetContext(ctx context.Context) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT context FROM ingestion_context WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get ingestion context: %w", err)
	}
	return value, nil
}

// SaveContext upserts the ingestion context. Empty value is stored as is.
func (r *ContextRepository) SaveContext(ctx context.Context, value string) error {
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO ingestion_context (id, context, updated_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET context = excluded.context, updated_at = excluded.updated_at
		`
		if _, err := r.db.ExecContext(ctx, query, value, time.Now().UTC()); err != nil {
			return fmt.Errorf("save ingestion context: %w", err)
		}
		return nil
	})
}
