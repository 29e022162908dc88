// Package auth keeps the process-wide authentication state and decides access for routes.
//
// Resolver is the only writer of domain.AuthState. It consumes session change notifications
// and its own fetch results as events on a single goroutine. Every new session query or
// session change starts a new generation, and results tagged with an older generation are
// dropped, so a late role response for a previous user can never show up for the current one.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postgen/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider
//go:generate moq -out mocks/roles.go -pkg mocks -skip-ensure -fmt goimports . RoleLookup

// Provider is the identity provider as seen by the resolver
type Provider interface {
	CurrentSession(ctx context.Context) (domain.Session, error)
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}

// RoleLookup returns the role record of a user
type RoleLookup interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

// Resolver maintains the AuthState derived from the provider's session and the role lookup
type Resolver struct {
	provider     Provider
	roles        RoleLookup
	fetchTimeout time.Duration

	mu      sync.RWMutex
	state   domain.AuthState
	changed chan struct{} // closed and replaced on every state transition

	events      chan event
	done        chan struct{} // closed when the loop exits
	cancel      context.CancelFunc
	unsubscribe func()
	started     bool
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// owned by the loop goroutine
	gen         uint64
	cancelFetch context.CancelFunc
}

type eventKind int

const (
	evInitialize     eventKind = iota // query the provider for the current session
	evSessionChanged                  // provider emitted a change
	evSessionResult                   // result of the session query
	evRoleResult                      // result of the role fetch
)

type event struct {
	kind    eventKind
	gen     uint64
	session domain.Session
	userID  string
	role    domain.Role
	err     error
}

// NewResolver makes a resolver in the unresolved state. fetchTimeout limits each provider
// and role call, zero means 30s.
func NewResolver(provider Provider, roles RoleLookup, fetchTimeout time.Duration) *Resolver {
	if fetchTimeout <= 0 {
		fetchTimeout = 30 * time.Second
	}
	return &Resolver{
		provider:     provider,
		roles:        roles,
		fetchTimeout: fetchTimeout,
		state:        domain.AuthState{Session: domain.NoSession, Role: domain.RoleUnknown, Resolving: true},
		changed:      make(chan struct{}),
		events:       make(chan event, 16),
		done:         make(chan struct{}),
	}
}

// Start subscribes to provider notifications and runs the initial resolution.
// The subscription is released by Stop or when ctx is canceled.
func (r *Resolver) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return errors.New("resolver already started")
	}
	r.started = true
	r.mu.Unlock()

	ctx, r.cancel = context.WithCancel(ctx)

	// subscribe before the initial query, so no change can slip in between
	var once sync.Once
	unsubscribe := r.provider.Subscribe(func(s domain.Session) {
		r.post(event{kind: evSessionChanged, session: s})
	})
	r.unsubscribe = func() { once.Do(unsubscribe) }

	r.wg.Add(1)
	go r.loop(ctx)

	r.post(event{kind: evInitialize})
	lgr.Printf("[DEBUG] session resolver started")
	return nil
}

// Stop unsubscribes from the provider and waits for the loop and in-flight fetches to finish
func (r *Resolver) Stop() {
	r.stopOnce.Do(func() {
		if r.unsubscribe != nil {
			r.unsubscribe()
		}
		if r.cancel != nil {
			r.cancel()
		}
		r.wg.Wait()
		lgr.Printf("[DEBUG] session resolver stopped")
	})
}

// State returns the current snapshot
func (r *Resolver) State() domain.AuthState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Changes returns a channel closed on the next state transition
func (r *Resolver) Changes() <-chan struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.changed
}

// Wait blocks until the state is resolved or ctx is done
func (r *Resolver) Wait(ctx context.Context) (domain.AuthState, error) {
	for {
		r.mu.RLock()
		st, ch := r.state, r.changed
		r.mu.RUnlock()
		if !st.Resolving {
			return st, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return st, fmt.Errorf("wait for auth state: %w", ctx.Err())
		}
	}
}

// post delivers an event to the loop, dropped if the loop is gone
func (r *Resolver) post(ev event) {
	select {
	case r.events <- ev:
	case <-r.done:
	}
}

func (r *Resolver) loop(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.done)
	defer func() {
		if r.unsubscribe != nil {
			r.unsubscribe()
		}
		if r.cancelFetch != nil {
			r.cancelFetch()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-r.events:
			r.handle(ctx, ev)
		}
	}
}

func (r *Resolver) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case evInitialize:
		gen := r.advance()
		r.setState(domain.AuthState{Session: domain.NoSession, Role: domain.RoleUnknown, Resolving: true})
		r.querySession(ctx, gen)

	case evSessionChanged:
		lgr.Printf("[DEBUG] session changed, present=%v", ev.session.Present)
		gen := r.advance()
		r.applySession(ctx, gen, ev.session)

	case evSessionResult:
		if ev.gen != r.gen {
			lgr.Printf("[DEBUG] drop stale session result, generation %d, current %d", ev.gen, r.gen)
			return
		}
		if ev.err != nil {
			lgr.Printf("[WARN] failed to get current session: %v", ev.err)
			r.setState(domain.AuthState{Session: domain.NoSession, Role: domain.RoleUnknown, Diagnostic: ev.err.Error()})
			return
		}
		r.applySession(ctx, ev.gen, ev.session)

	case evRoleResult:
		cur := r.State()
		if ev.gen != r.gen || cur.Session.UserID != ev.userID {
			lgr.Printf("[DEBUG] drop stale role result for %s, generation %d, current %d", ev.userID, ev.gen, r.gen)
			return
		}
		role := ev.role
		switch {
		case errors.Is(ev.err, domain.ErrLookupAbsent):
			lgr.Printf("[DEBUG] no role record for %s", ev.userID)
			role = domain.RoleUnknown
		case ev.err != nil:
			lgr.Printf("[WARN] failed to get role for %s: %v", ev.userID, ev.err)
			role = domain.RoleUnknown
		}
		r.setState(domain.AuthState{Session: cur.Session, Role: role})
	}
}

// applySession moves to the unauthenticated state or to the role phase for session s
func (r *Resolver) applySession(ctx context.Context, gen uint64, s domain.Session) {
	if !s.Present {
		r.setState(domain.AuthState{Session: domain.NoSession, Role: domain.RoleUnknown})
		return
	}

	cur := r.State()
	if !cur.Resolving && cur.Session.Present && cur.Session.UserID == s.UserID {
		// same user, e.g. token refresh. The resolved role stays visible while it is re-fetched.
		r.setState(domain.AuthState{Session: s, Role: cur.Role})
	} else {
		r.setState(domain.AuthState{Session: s, Role: domain.RoleUnknown, Resolving: true})
	}
	r.fetchRole(ctx, gen, s.UserID)
}

// advance starts a new generation and cancels the fetch of the previous one
func (r *Resolver) advance() uint64 {
	if r.cancelFetch != nil {
		r.cancelFetch()
		r.cancelFetch = nil
	}
	r.gen++
	return r.gen
}

func (r *Resolver) querySession(ctx context.Context, gen uint64) {
	fctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	r.cancelFetch = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		s, err := r.provider.CurrentSession(fctx)
		r.post(event{kind: evSessionResult, gen: gen, session: s, err: err})
	}()
}

func (r *Resolver) fetchRole(ctx context.Context, gen uint64, userID string) {
	fctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	r.cancelFetch = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		role, err := r.roles.GetRole(fctx, userID)
		r.post(event{kind: evRoleResult, gen: gen, userID: userID, role: role, err: err})
	}()
}

// setState publishes a new snapshot, a no-op if nothing changed
func (r *Resolver) setState(st domain.AuthState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == st {
		return
	}
	r.state = st
	close(r.changed)
	r.changed = make(chan struct{})
}
