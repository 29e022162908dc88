package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/postgen/pkg/domain"
)

// SessionRecord is a persisted sign-in session
type SessionRecord struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// SessionRepository keeps the current session of this client. Only one session is live at a time.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(database *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: database}
}

// ReplaceSession drops any existing session and stores the new one
func (r *SessionRepository) ReplaceSession(ctx context.Context, rec SessionRecord) error {
	return withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		query := `INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query, rec.Token, rec.UserID, rec.CreatedAt, rec.ExpiresAt); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit session: %w", err)
		}
		return nil
	})
}

// CurrentSession returns the live session with the user's email.
// Returns domain.ErrLookupAbsent if there is none; expiry is checked by the caller.
func (r *SessionRepository) CurrentSession(ctx context.Context) (*SessionRecord, error) {
	var rec SessionRecord
	query := `
		SELECT s.token, s.user_id, u.email, s.created_at, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &rec, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("current session: %w", domain.ErrLookupAbsent)
	}
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return &rec, nil
}

// ExtendSession moves the expiry of the session with the given token
func (r *SessionRepository) ExtendSession(ctx context.Context, token string, expiresAt time.Time) error {
	return withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, "UPDATE sessions SET expires_at = ? WHERE token = ?", expiresAt, token)
		if err != nil {
			return fmt.Errorf("extend session: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("extend session: %w", domain.ErrLookupAbsent)
		}
		return nil
	})
}

// DeleteSessions removes all sessions
func (r *SessionRepository) DeleteSessions(ctx context.Context) error {
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		return nil
	})
}
