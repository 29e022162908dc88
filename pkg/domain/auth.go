package domain

import "time"

// Role is the authorization level of a user
type Role string

// enum of roles; RoleUnknown is used before resolution and when no role record exists
const (
	RoleUnknown Role = "unknown"
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a stored role value to Role, anything unrecognized is RoleUnknown
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser:
		return RoleUser
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Session is the identity issued by the identity provider. The zero value is "no session".
type Session struct {
	UserID  string
	Email   string
	Token   string // bearer credential handed to the signed-in client
	Present bool
}

// NoSession is the absent session
var NoSession = Session{}

// AuthState is an immutable snapshot of the resolved authentication state.
// Resolving=true means no decision has been made yet, it is not the same as unauthenticated.
type AuthState struct {
	Session    Session
	Role       Role
	Resolving  bool
	Diagnostic string // last identity provider failure, if any
}

// Authenticated returns true if the state is resolved and has a live session
func (s AuthState) Authenticated() bool {
	return !s.Resolving && s.Session.Present
}

// User is a stored account record
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Requirement is the access level a route needs
type Requirement int

// enum of route requirements
const (
	RequireNone Requirement = iota
	RequireAuthenticated
	RequireAdmin
)

// Decision is the outcome of an access check
type Decision int

// enum of access decisions
const (
	DecisionPending         Decision = iota // still resolving, render nothing
	DecisionAllow                           // go to the requested destination
	DecisionUnauthenticated                 // fall back to sign-in
	DecisionForbidden                       // signed in but not allowed
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionForbidden:
		return "forbidden"
	default:
		return "invalid"
	}
}
