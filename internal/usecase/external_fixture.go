package usecase

import (
	"context"
	"fmt"
)

// ExternalFixtureRecord is one raw game object as returned by the fixture provider.
type ExternalFixtureRecord map[string]any

// FixtureProvider fetches raw fixtures for a competition grade.
type FixtureProvider interface {
	// Configured reports whether credentials needed to call the provider are present.
	Configured() bool
	FetchFixtures(ctx context.Context, gradeID string) ProviderResult
}

// ProviderResult is one of ProviderOK, ProviderHTTPError or ProviderTransportError.
type ProviderResult interface {
	providerResult()
}

// ProviderOK carries the decoded records of a 2xx response.
type ProviderOK struct {
	Records []ExternalFixtureRecord
}

// ProviderHTTPError is a non-2xx response; the body is kept for diagnostics.
type ProviderHTTPError struct {
	StatusCode int
	Body       string
}

// ProviderTransportError covers everything that prevented a usable response:
// timeouts, refused connections, an open circuit or an undecodable body.
type ProviderTransportError struct {
	Cause error
}

func (ProviderOK) providerResult()             {}
func (ProviderHTTPError) providerResult()      {}
func (ProviderTransportError) providerResult() {}

func (e ProviderHTTPError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

func (e ProviderTransportError) Error() string {
	if e.Cause == nil {
		return "provider transport failure"
	}
	return "provider transport failure: " + e.Cause.Error()
}

func (e ProviderTransportError) Unwrap() error {
	return e.Cause
}
