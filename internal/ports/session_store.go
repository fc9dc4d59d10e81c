package ports

import "context"

// SessionStore holds the single persisted session slot. Only the auth
// service reads or writes it; every other component goes through that.
type SessionStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
