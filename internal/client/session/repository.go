// Package session persists the credentials of the last signed-in user
// (bearer token and username) so the client can restore the session on the
// next start without asking for a password.
package session

import "context"

// Keys under which credentials are stored.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Repository is a small key/value store for session credentials.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
