// Package identity implements the identity provider backed by the local data store.
// It issues sessions, validates credentials and notifies subscribers about session changes.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/repository"
)

//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . SessionStore

// errors returned to the sign-in and sign-up callers, both wrap domain.ErrProvider
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrProvider)
	ErrPasswordMismatch   = fmt.Errorf("%w: passwords do not match", domain.ErrProvider)
	ErrEmptyCredentials   = fmt.Errorf("%w: email and password are required", domain.ErrProvider)
)

// UserStore is the part of the data store holding auth users
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User, passwordHash string) error
	GetCredentials(ctx context.Context, email string) (*domain.User, string, error)
}

// SessionStore persists the current session
type SessionStore interface {
	ReplaceSession(ctx context.Context, rec repository.SessionRecord) error
	CurrentSession(ctx context.Context) (*repository.SessionRecord, error)
	ExtendSession(ctx context.Context, token string, expiresAt time.Time) error
	DeleteSessions(ctx context.Context) error
}

// Local is the identity provider of this client
type Local struct {
	users    UserStore
	sessions SessionStore
	ttl      time.Duration
	now      func() time.Time

	mu        sync.Mutex
	listeners map[int]func(domain.Session)
	nextID    int
}

// NewLocal makes a provider with the given session lifetime
func NewLocal(users UserStore, sessions SessionStore, ttl time.Duration) *Local {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Local{
		users:     users,
		sessions:  sessions,
		ttl:       ttl,
		now:       time.Now,
		listeners: map[int]func(domain.Session){},
	}
}

// CurrentSession returns the live session or domain.NoSession if there is none or it expired
func (l *Local) CurrentSession(ctx context.Context) (domain.Session, error) {
	rec, err := l.sessions.CurrentSession(ctx)
	if errors.Is(err, domain.ErrLookupAbsent) {
		return domain.NoSession, nil
	}
	if err != nil {
		return domain.NoSession, fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}
	if !rec.ExpiresAt.After(l.now()) {
		lgr.Printf("[DEBUG] session for %s expired at %s", rec.Email, rec.ExpiresAt.Format(time.RFC3339))
		return domain.NoSession, nil
	}
	return domain.Session{UserID: rec.UserID, Email: rec.Email, Token: rec.Token, Present: true}, nil
}

// Subscribe registers fn for session change notifications and returns the unsubscribe function
func (l *Local) Subscribe(fn func(domain.Session)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.listeners, id)
			l.mu.Unlock()
		})
	}
}

// SignUp registers a new account with role user. It doesn't sign the user in.
func (l *Local) SignUp(ctx context.Context, email, password, confirm string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{ID: uuid.NewString(), Email: email, Role: domain.RoleUser, CreatedAt: l.now().UTC()}
	if err := l.users.CreateUser(ctx, user, string(hash)); err != nil {
		return nil, fmt.Errorf("%w: sign up: %w", domain.ErrProvider, err)
	}
	lgr.Printf("[INFO] registered user %s", email)
	return user, nil
}

// EnsureAdmin creates an admin account with the given credentials if there is no account
// with this email. An existing account is left as is.
func (l *Local) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	existing, _, err := l.users.GetCredentials(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			lgr.Printf("[WARN] bootstrap account %s exists with role %s", email, existing.Role)
		}
		return nil
	case !errors.Is(err, domain.ErrLookupAbsent):
		return fmt.Errorf("%w: lookup admin: %w", domain.ErrProvider, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{ID: uuid.NewString(), Email: email, Role: domain.RoleAdmin, CreatedAt: l.now().UTC()}
	if err := l.users.CreateUser(ctx, user, string(hash)); err != nil {
		return fmt.Errorf("%w: create admin: %w", domain.ErrProvider, err)
	}
	lgr.Printf("[INFO] created admin account %s", email)
	return nil
}

// SignIn checks credentials and starts a new session, replacing the current one.
// The returned session carries the token the caller presents on later requests.
func (l *Local) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domain.NoSession, ErrEmptyCredentials
	}

	user, hash, err := l.users.GetCredentials(ctx, email)
	if errors.Is(err, domain.ErrLookupAbsent) {
		return domain.NoSession, ErrInvalidCredentials
	}
	if err != nil {
		return domain.NoSession, fmt.Errorf("%w: sign in: %w", domain.ErrProvider, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.NoSession, ErrInvalidCredentials
	}

	now := l.now().UTC()
	rec := repository.SessionRecord{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl),
	}
	if err := l.sessions.ReplaceSession(ctx, rec); err != nil {
		return domain.NoSession, fmt.Errorf("%w: store session: %w", domain.ErrProvider, err)
	}

	session := domain.Session{UserID: user.ID, Email: user.Email, Token: rec.Token, Present: true}
	lgr.Printf("[INFO] signed in %s", user.Email)
	l.notify(session)
	return session, nil
}

// Refresh extends the current session and emits a change notification for it
func (l *Local) Refresh(ctx context.Context) (domain.Session, error) {
	rec, err := l.sessions.CurrentSession(ctx)
	if errors.Is(err, domain.ErrLookupAbsent) {
		return domain.NoSession, fmt.Errorf("%w: no session to refresh", domain.ErrProvider)
	}
	if err != nil {
		return domain.NoSession, fmt.Errorf("%w: refresh: %w", domain.ErrProvider, err)
	}
	if !rec.ExpiresAt.After(l.now()) {
		return domain.NoSession, fmt.Errorf("%w: session expired", domain.ErrProvider)
	}
	if err := l.sessions.ExtendSession(ctx, rec.Token, l.now().UTC().Add(l.ttl)); err != nil {
		return domain.NoSession, fmt.Errorf("%w: refresh: %w", domain.ErrProvider, err)
	}
	session := domain.Session{UserID: rec.UserID, Email: rec.Email, Token: rec.Token, Present: true}
	l.notify(session)
	return session, nil
}

// SignOut drops the session and notifies subscribers
func (l *Local) SignOut(ctx context.Context) error {
	if err := l.sessions.DeleteSessions(ctx); err != nil {
		return fmt.Errorf("%w: sign out: %w", domain.ErrProvider, err)
	}
	lgr.Printf("[INFO] signed out")
	l.notify(domain.NoSession)
	return nil
}

// notify calls listeners outside the lock so they may unsubscribe
func (l *Local) notify(s domain.Session) {
	l.mu.Lock()
	fns := make([]func(domain.Session), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
