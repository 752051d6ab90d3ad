package api

import "errors"

// Sentinel errors for the failure classes of the remote service.
// Match with errors.Is; the wrapped error keeps the underlying detail.
var (
	// ErrUnavailable: the request never produced an HTTP response
	// (connection refused, DNS failure, cancelled context).
	ErrUnavailable = errors.New("server unavailable")

	// ErrServer: a 5xx response, or a 2xx response whose body did not
	// decode into the expected shape.
	ErrServer = errors.New("server error")

	// ErrUnauthorized: 401 or 403 — bad credentials or an invalid/expired token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation: 400 — the server rejected the input
	// (e.g. duplicate username on signup, malformed story draft).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound: 404.
	ErrNotFound = errors.New("not found")
)
