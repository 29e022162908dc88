package domain

import "errors"

// error taxonomy shared by all components
var (
	ErrProvider           = errors.New("identity provider error")
	ErrLookupAbsent       = errors.New("record not found")
	ErrValidationRejected = errors.New("validation rejected")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrTransport          = errors.New("transport failure")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
)

// Notice is the single user visible message region, the most recent message replaces the previous one
type Notice struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}
