package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a client-safe message.
// Delivery layers map domain errors into HTTPError before responding.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
