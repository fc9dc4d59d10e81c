package domain

import "errors"

var (
	ErrNoSession            = errors.New("no session")
	ErrMalformedToken       = errors.New("malformed session token")
	ErrSessionExpired       = errors.New("session expired, please login again")
	ErrUnrecognizedResponse = errors.New("login response not recognized")
)

// LoginRejectedError is a backend refusal of the submitted credentials.
// Message carries the backend's error field when the response had one.
type LoginRejectedError struct {
	StatusCode int
	Message    string
}

func (e *LoginRejectedError) Error() string {
	return e.Message
}

// BackendError is a non-success response from any student endpoint.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}
