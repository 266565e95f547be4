package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")

	// ErrAllProvidersFailed wraps the last provider failure once the chain is exhausted.
	ErrAllProvidersFailed  = errors.New("all providers failed")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError tags an error with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusCoder is implemented by the raw client API errors.
type statusCoder interface {
	HTTPStatus() int
}

// upstreamStatus returns the HTTP status carried by err, or 0.
func upstreamStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return 0
}

// classify maps a raw provider error onto the package sentinels where one fits.
func classify(err error) error {
	if upstreamStatus(err) == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}
	return err
}

// retryable reports whether another attempt against the same provider can help.
// Client errors other than 429 will fail the same way again.
func retryable(err error) bool {
	code := upstreamStatus(err)
	if code == 0 || code == http.StatusTooManyRequests {
		return true
	}
	return code < 400 || code >= 500
}
