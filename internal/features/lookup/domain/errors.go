package domain

import "fmt"

// RequestError reports a non-2xx answer from the order-lookup service.
type RequestError struct {
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status: %d", e.StatusCode)
}

// ParseError reports a response body that is not a well-formed order record.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse order: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
