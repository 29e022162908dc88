package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/umputun/postgen/pkg/domain"
)

// sessionCookie holds the session token issued on sign-in
const sessionCookie = "postgen_session"

// requestToken returns the session token presented by the request,
// "Authorization: Bearer" header takes precedence over the cookie
func requestToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// ownsSession checks if the request carries the token of session s
func ownsSession(r *http.Request, s domain.Session) bool {
	token := requestToken(r)
	if token == "" || s.Token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) == 1
}

// stateFor is the auth state as seen by the request. A session the request doesn't hold
// the token for is reported as no session.
func stateFor(r *http.Request, st domain.AuthState) domain.AuthState {
	if !st.Session.Present || ownsSession(r, st.Session) {
		return st
	}
	return domain.AuthState{Session: domain.NoSession, Role: domain.RoleUnknown, Resolving: st.Resolving}
}

func writeSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
