// Package admin implements the admin panel operations: listing user accounts and deleting
// them through the remote service. All operations require the admin role.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postgen/pkg/auth"
	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/remote"
)

//go:generate moq -out mocks/users.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/service.go -pkg mocks -skip-ensure -fmt goimports . Service
//go:generate moq -out mocks/reloader.go -pkg mocks -skip-ensure -fmt goimports . Reloader

// user visible messages
const (
	MsgLoadUsersFailed  = "Failed to fetch users."
	MsgDeleteFailed     = "Failed to delete user: %s"
	MsgDeleteUnexpected = "Unexpected error occurred while deleting user."
	MsgUserDeleted      = "User deleted successfully from both authentication and users table."
	MsgReloadTriggered  = "Articles reload triggered!"
	MsgReloadFailed     = "Failed to fetch articles."
)

// UserStore lists stored accounts
type UserStore interface {
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// Service deletes users from both the auth system and the users table
type Service interface {
	DeleteUser(ctx context.Context, userID string) (string, error)
}

// Reloader starts an ingestion run
type Reloader interface {
	RunIngestion(ctx context.Context) (*domain.IngestionRun, error)
}

// Snapshot is a copy of the panel state
type Snapshot struct {
	Users  []domain.User `json:"users"`
	Notice domain.Notice `json:"notice"`
}

// Panel keeps the loaded user list and the notice of the last operation
type Panel struct {
	auth     auth.StateSource
	users    UserStore
	service  Service
	reloader Reloader

	mu     sync.RWMutex
	list   []domain.User
	notice domain.Notice
}

// NewPanel makes an admin panel, reloader is optional
func NewPanel(src auth.StateSource, users UserStore, service Service, reloader Reloader) *Panel {
	return &Panel{auth: src, users: users, service: service, reloader: reloader}
}

// LoadUsers reads all accounts with the plain user role
func (p *Panel) LoadUsers(ctx context.Context) ([]domain.User, error) {
	if err := p.authorize(ctx); err != nil {
		return nil, err
	}

	users, err := p.users.ListUsersByRole(ctx, domain.RoleUser)
	if err != nil {
		lgr.Printf("[WARN] failed to list users: %v", err)
		p.setNotice(domain.Notice{Error: MsgLoadUsersFailed})
		return nil, fmt.Errorf("load users: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.list = users
	return append([]domain.User(nil), users...), nil
}

// DeleteUser asks the remote service to delete the user. The local list changes only on success.
func (p *Panel) DeleteUser(ctx context.Context, userID string) error {
	if err := p.authorize(ctx); err != nil {
		return err
	}

	msg, err := p.service.DeleteUser(ctx, userID)
	if err != nil {
		var se *remote.StatusError
		if errors.As(err, &se) && se.Message != "" {
			lgr.Printf("[WARN] remote rejected deletion of user %s: %v", userID, err)
			p.setNotice(domain.Notice{Error: fmt.Sprintf(MsgDeleteFailed, se.Message)})
			return fmt.Errorf("delete user %s: %w", userID, err)
		}
		lgr.Printf("[WARN] unexpected error deleting user %s: %v", userID, err)
		p.setNotice(domain.Notice{Error: MsgDeleteUnexpected})
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	lgr.Printf("[INFO] user %s deleted, %s", userID, msg)

	p.mu.Lock()
	defer p.mu.Unlock()
	kept := make([]domain.User, 0, len(p.list))
	for _, u := range p.list {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	p.list = kept
	p.notice = domain.Notice{Success: MsgUserDeleted}
	return nil
}

// ReloadArticles triggers an ingestion run on behalf of the admin
func (p *Panel) ReloadArticles(ctx context.Context) error {
	if err := p.authorize(ctx); err != nil {
		return err
	}
	if p.reloader == nil {
		return errors.New("articles reload is not configured")
	}
	p.setNotice(domain.Notice{Success: MsgReloadTriggered})
	if _, err := p.reloader.RunIngestion(ctx); err != nil {
		lgr.Printf("[WARN] articles reload failed: %v", err)
		p.setNotice(domain.Notice{Error: MsgReloadFailed})
		return fmt.Errorf("reload articles: %w", err)
	}
	return nil
}

// Snapshot returns the loaded users and the current notice
func (p *Panel) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := p.authorize(ctx); err != nil {
		return Snapshot{}, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{Users: append([]domain.User(nil), p.list...), Notice: p.notice}, nil
}

func (p *Panel) authorize(ctx context.Context) error {
	if _, err := auth.Require(ctx, p.auth, domain.RequireAdmin); err != nil {
		return fmt.Errorf("admin access: %w", err)
	}
	return nil
}

func (p *Panel) setNotice(n domain.Notice) {
	p.mu.Lock()
	p.notice = n
	p.mu.Unlock()
}
