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

// UserRepository handles user accounts and role records
type UserRepository struct {
	db *sqlx.DB
}

type userSQL struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         sql.NullString `db:"role"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (u userSQL) toDomain() domain.User {
	return domain.User{ID: u.ID, Email: u.Email, Role: domain.ParseRole(u.Role.String), CreatedAt: u.CreatedAt}
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *sqlx.DB) *UserRepository {
	return &UserRepository{db: database}
}

// CreateUser inserts a user with the given password hash.
// RoleUnknown is stored as NULL, i.e. no role record.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User, passwordHash string) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	rec := userSQL{ID: user.ID, Email: user.Email, PasswordHash: passwordHash, CreatedAt: user.CreatedAt}
	if user.Role == domain.RoleUser || user.Role == domain.RoleAdmin {
		rec.Role = sql.NullString{String: string(user.Role), Valid: true}
	}

	return withRetry(ctx, func() error {
		query := `
			INSERT INTO users (id, email, password_hash, role, created_at)
			VALUES (:id, :email, :password_hash, :role, :created_at)
		`
		if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

// GetCredentials returns the user and password hash for the given email
func (r *UserRepository) GetCredentials(ctx context.Context, email string) (*domain.User, string, error) {
	var rec userSQL
	err := r.db.GetContext(ctx, &rec, "SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("get credentials for %s: %w", email, domain.ErrLookupAbsent)
	}
	if err != nil {
		return nil, "", fmt.Errorf("get credentials: %w", err)
	}
	user := rec.toDomain()
	return &user, rec.PasswordHash, nil
}

// GetRole returns the role of the user. Missing user returns domain.ErrLookupAbsent,
// a user without a role record returns domain.RoleUnknown.
func (r *UserRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	var role sql.NullString
	err := r.db.GetContext(ctx, &role, "SELECT role FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoleUnknown, fmt.Errorf("get role for %s: %w", userID, domain.ErrLookupAbsent)
	}
	if err != nil {
		return domain.RoleUnknown, fmt.Errorf("get role: %w", err)
	}
	return domain.ParseRole(role.String), nil
}

// ListUsersByRole returns all users with the given role ordered by creation time
func (r *UserRepository) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var recs []userSQL
	query := "SELECT id, email, password_hash, role, created_at FROM users WHERE role = ? ORDER BY created_at, id"
	if err := r.db.SelectContext(ctx, &recs, query, string(role)); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	users := make([]domain.User, len(recs))
	for i, rec := range recs {
		users[i] = rec.toDomain()
	}
	return users, nil
}
