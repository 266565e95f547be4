package errors

import "fmt"

// HTTPError carries an HTTP status alongside a client-safe message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}
