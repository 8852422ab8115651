package usecase

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the services. The HTTP layer maps each one to a
// status code, so wrap them with context rather than replacing them.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrConfiguration marks a request that cannot succeed until an operator
	// fixes the deployment, such as missing provider credentials.
	ErrConfiguration = errors.New("service misconfigured")
)
