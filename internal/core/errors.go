package core

import "fmt"

// InvalidNameError is returned when a crate name fails validation.
// No request is made for an invalid name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid crate name %q: %s", e.Name, e.Reason)
}

// HTTPError represents a transport failure, timeout, or non-success response
// from the registry.
type HTTPError struct {
	URL        string
	StatusCode int // 0 if the request never completed
	Err        error
}

func (e *HTTPError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("HTTP request failed: %s: %v", e.URL, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error represents a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}

// ParseError is returned when the registry response does not contain the
// expected newest_version field.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

// VersionError is returned when a version string is not a valid semantic
// version. Side is "current" or "latest".
type VersionError struct {
	Side  string
	Input string
	Err   error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("invalid %s version %q: %v", e.Side, e.Input, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}
