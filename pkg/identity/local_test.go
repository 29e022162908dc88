package identity

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/postgen/pkg/domain"
	"github.com/umputun/postgen/pkg/identity/mocks"
	"github.com/umputun/postgen/pkg/repository"
)

func setupProvider(t *testing.T) (*Local, *repository.Repositories) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewLocal(repos.User, repos.Session, time.Hour), repos
}

// recorder collects session change notifications
type recorder struct {
	mu     sync.Mutex
	events []domain.Session
}

func (r *recorder) add(s domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *recorder) all() []domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Session{}, r.events...)
}

func TestLocal_SignUpSignInSignOut(t *testing.T) {
	p, repos := setupProvider(t)
	ctx := context.Background()
	rec := &recorder{}
	unsubscribe := p.Subscribe(rec.add)
	defer unsubscribe()

	s, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, s.Present)

	user, err := p.SignUp(ctx, " Bob@Example.com ", "secret", "secret")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.NotEmpty(t, user.ID)

	role, err := repos.User.GetRole(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, role, "new accounts get role user")
	assert.Empty(t, rec.all(), "sign up doesn't sign in")

	_, err = p.SignIn(ctx, "bob@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, domain.ErrProvider)
	_, err = p.SignIn(ctx, "nobody@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	s, err = p.SignIn(ctx, "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, s.UserID)
	assert.Equal(t, "bob@example.com", s.Email)
	assert.True(t, s.Present)
	assert.NotEmpty(t, s.Token)

	again, err := p.SignIn(ctx, "bob@example.com", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, s.Token, again.Token, "each sign in issues a new token")
	s = again

	current, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, current)

	require.NoError(t, p.SignOut(ctx))
	current, err = p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NoSession, current)

	events := rec.all()
	require.Len(t, events, 3)
	assert.True(t, events[0].Present)
	assert.Equal(t, s, events[1])
	assert.False(t, events[2].Present)
}

func TestLocal_SignUpValidation(t *testing.T) {
	p, _ := setupProvider(t)
	ctx := context.Background()

	_, err := p.SignUp(ctx, "a@example.com", "one", "two")
	require.ErrorIs(t, err, ErrPasswordMismatch)
	_, err = p.SignUp(ctx, "", "one", "one")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = p.SignUp(ctx, "a@example.com", "one", "one")
	require.NoError(t, err)
	_, err = p.SignUp(ctx, "a@example.com", "one", "one")
	require.ErrorIs(t, err, domain.ErrProvider, "duplicate email")
}

func TestLocal_ExpiredSession(t *testing.T) {
	p, _ := setupProvider(t)
	ctx := context.Background()
	_, err := p.SignUp(ctx, "a@example.com", "pass", "pass")
	require.NoError(t, err)
	_, err = p.SignIn(ctx, "a@example.com", "pass")
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	s, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, s.Present)

	_, err = p.Refresh(ctx)
	require.ErrorIs(t, err, domain.ErrProvider)
}

func TestLocal_Refresh(t *testing.T) {
	p, _ := setupProvider(t)
	ctx := context.Background()
	_, err := p.Refresh(ctx)
	require.ErrorIs(t, err, domain.ErrProvider, "nothing to refresh")

	_, err = p.SignUp(ctx, "a@example.com", "pass", "pass")
	require.NoError(t, err)
	signed, err := p.SignIn(ctx, "a@example.com", "pass")
	require.NoError(t, err)

	rec := &recorder{}
	defer p.Subscribe(rec.add)()

	// 50 minutes later the refreshed session should outlive the original hour
	start := time.Now()
	p.now = func() time.Time { return start.Add(50 * time.Minute) }
	refreshed, err := p.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, signed, refreshed)
	assert.Equal(t, []domain.Session{signed}, rec.all())

	p.now = func() time.Time { return start.Add(90 * time.Minute) }
	s, err := p.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, s.Present)
}

func TestLocal_Unsubscribe(t *testing.T) {
	p, _ := setupProvider(t)
	rec := &recorder{}
	unsubscribe := p.Subscribe(rec.add)
	unsubscribe()
	unsubscribe() // second call is a no-op

	require.NoError(t, p.SignOut(context.Background()))
	assert.Empty(t, rec.all())
	assert.Empty(t, p.listeners)
}

func TestLocal_ProviderError(t *testing.T) {
	sessions := &mocks.SessionStoreMock{
		CurrentSessionFunc: func(ctx context.Context) (*repository.SessionRecord, error) {
			return nil, errors.New("disk on fire")
		},
		DeleteSessionsFunc: func(ctx context.Context) error {
			return errors.New("disk on fire")
		},
	}
	p := NewLocal(nil, sessions, time.Hour)

	s, err := p.CurrentSession(context.Background())
	require.ErrorIs(t, err, domain.ErrProvider)
	assert.Equal(t, domain.NoSession, s)

	rec := &recorder{}
	defer p.Subscribe(rec.add)()
	require.ErrorIs(t, p.SignOut(context.Background()), domain.ErrProvider)
	assert.Empty(t, rec.all(), "failed sign out doesn't notify")
	assert.Len(t, sessions.DeleteSessionsCalls(), 1)
}

func TestLocal_EnsureAdmin(t *testing.T) {
	p, repos := setupProvider(t)
	ctx := context.Background()

	require.NoError(t, p.EnsureAdmin(ctx, "Admin@Example.com", "secret"))
	user, _, err := repos.User.GetCredentials(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	// second call keeps the existing account
	require.NoError(t, p.EnsureAdmin(ctx, "admin@example.com", "other"))
	admins, err := repos.User.ListUsersByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, user.ID, admins[0].ID)

	s, err := p.SignIn(ctx, "admin@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, s.Present)

	require.ErrorIs(t, p.EnsureAdmin(ctx, "", "secret"), ErrEmptyCredentials)
}
