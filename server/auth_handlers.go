package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postgen/pkg/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm_password,omitempty"`
}

// authStateResponse is the auth state as seen by the client
type authStateResponse struct {
	Authenticated bool   `json:"authenticated"`
	Resolving     bool   `json:"resolving"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role"`
	Diagnostic    string `json:"diagnostic,omitempty"`
	Token         string `json:"token,omitempty"` // set on sign-in only
}

func newAuthStateResponse(st domain.AuthState) authStateResponse {
	return authStateResponse{
		Authenticated: st.Authenticated(),
		Resolving:     st.Resolving,
		UserID:        st.Session.UserID,
		Email:         st.Session.Email,
		Role:          string(st.Role),
		Diagnostic:    st.Diagnostic,
	}
}

// signUpHandler registers a new account, it doesn't sign in
func (s *Server) signUpHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	user, err := s.identity.SignUp(r.Context(), req.Email, req.Password, req.Confirm)
	if err != nil {
		lgr.Printf("[WARN] sign up failed for %s: %v", req.Email, err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, user)
}

// signInHandler signs in and responds once the resolver reflects the new session.
// The session token is returned in the body and set as the session cookie.
func (s *Server) signInHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	session, err := s.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		lgr.Printf("[WARN] sign in failed for %s: %v", req.Email, err)
		renderError(w, r, err, errorCode(err))
		return
	}

	st, err := s.awaitSession(r.Context(), session)
	if err != nil {
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	writeSessionCookie(w, r, session.Token)
	resp := newAuthStateResponse(st)
	resp.Token = session.Token
	renderJSON(w, r, http.StatusOK, resp)
}

// signOutHandler ends the session
func (s *Server) signOutHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.identity.SignOut(r.Context()); err != nil {
		lgr.Printf("[WARN] sign out failed: %v", err)
		renderError(w, r, err, errorCode(err))
		return
	}

	clearSessionCookie(w, r)
	st, err := s.awaitSession(r.Context(), domain.NoSession)
	if err != nil {
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	renderJSON(w, r, http.StatusOK, newAuthStateResponse(st))
}

// refreshHandler extends the current session
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	session, err := s.identity.Refresh(r.Context())
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	if !session.Present {
		renderJSON(w, r, http.StatusUnauthorized, map[string]string{"error": "not authenticated", "redirect": loginRoute})
		return
	}
	st, err := s.awaitSession(r.Context(), session)
	if err != nil {
		renderError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	renderJSON(w, r, http.StatusOK, newAuthStateResponse(st))
}

// authStateHandler returns the current state without waiting, resolving=true means no decision yet.
// A caller without the session token sees no session.
func (s *Server) authStateHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, newAuthStateResponse(stateFor(r, s.auth.State())))
}

// awaitSession waits until the auth state is resolved for the given session
func (s *Server) awaitSession(ctx context.Context, want domain.Session) (domain.AuthState, error) {
	ctx, cancel := context.WithTimeout(ctx, s.resolveTimeout)
	defer cancel()
	for {
		changes := s.auth.Changes()
		st := s.auth.State()
		if !st.Resolving && st.Session.Present == want.Present && st.Session.UserID == want.UserID && st.Session.Token == want.Token {
			return st, nil
		}
		select {
		case <-changes:
		case <-ctx.Done():
			return st, fmt.Errorf("session change not resolved: %w", ctx.Err())
		}
	}
}
