package domain

import "fmt"

// ConfigurationError is returned when the upstream credential
// has not been configured for the deployment.
type ConfigurationError struct {
	// Setting is the name of the missing configuration value.
	Setting string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured.", e.Setting)
}

// ValidationError is returned when the caller sent a request
// without a usable value for a required field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("Body must include the %s field.", e.Field)
}

// UpstreamError represents a non-success HTTP status reported
// by the upstream API.
type UpstreamError struct {
	// Name identifies the upstream API in the message.
	Name string
	// Status is the HTTP status code returned upstream.
	Status int
	// Body is the raw response text returned upstream.
	Body string
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Name, e.Status, e.Body)
}

// TransportError represents a failure to reach the upstream API at all.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string {
	return e.Err.Error()
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when an otherwise successful upstream
// response does not contain a valid JSON document.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return e.Err.Error()
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when no function is registered under
// the requested name.
type NotFoundError struct {
	// ID is the function name that was requested.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("function (%s) not found", e.ID)
}
