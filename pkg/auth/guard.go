package auth

import (
	"context"

	"github.com/umputun/postgen/pkg/domain"
)

// StateSource gives a resolved auth state
type StateSource interface {
	Wait(ctx context.Context) (domain.AuthState, error)
}

// Decide is the access guard. It suspends while the state is resolving and otherwise checks the
// session and role against the requirement. Admin access needs exactly RoleAdmin.
func Decide(st domain.AuthState, req domain.Requirement) domain.Decision {
	if req == domain.RequireNone {
		return domain.DecisionAllow
	}
	if st.Resolving {
		return domain.DecisionPending
	}
	if !st.Session.Present {
		return domain.DecisionUnauthenticated
	}
	if req == domain.RequireAdmin && st.Role != domain.RoleAdmin {
		return domain.DecisionForbidden
	}
	return domain.DecisionAllow
}

// Require waits for resolution and returns domain.ErrUnauthenticated or domain.ErrForbidden
// if the requirement isn't met
func Require(ctx context.Context, src StateSource, req domain.Requirement) (domain.AuthState, error) {
	st, err := src.Wait(ctx)
	if err != nil {
		return st, err
	}
	switch Decide(st, req) {
	case domain.DecisionUnauthenticated:
		return st, domain.ErrUnauthenticated
	case domain.DecisionForbidden:
		return st, domain.ErrForbidden
	default:
		return st, nil
	}
}
