package common

import "fmt"

// ValidationError reports a rejected value for a named field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigurationError reports an unusable setting. It matches ErrInvalidConfiguration.
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Section != "" && e.Field != "":
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	case e.Section != "":
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	default:
		return "configuration error: " + e.Reason
	}
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{Section: section, Field: field, Reason: reason}
}

// NetworkError is a transport-level failure: dial, TLS, redirect policy or body read.
type NetworkError struct {
	URL     string
	Reason  string
	Wrapped error
}

func (e *NetworkError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("network error for '%s': %s", e.URL, e.Reason)
	}
	return fmt.Sprintf("network error for '%s': %s: %v", e.URL, e.Reason, e.Wrapped)
}

func (e *NetworkError) Unwrap() error { return e.Wrapped }

func NewNetworkError(url, reason string, wrapped error) *NetworkError {
	return &NetworkError{URL: url, Reason: reason, Wrapped: wrapped}
}

// HTTPError is a completed exchange with a status the caller did not accept.
// Message holds a prefix of the response body.
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("HTTP %d error: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d error for '%s': %s", e.StatusCode, e.URL, e.Message)
}

func NewHTTPErrorWithURL(statusCode int, message, url string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, URL: url}
}

// FetchError records that one seed resource could not be retrieved. Scans
// keep it next to the resource and carry on.
type FetchError struct {
	Resource   string
	StatusCode int
	Reason     string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("fetch failed for '%s': HTTP %d", e.Resource, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch failed for '%s': %s: %v", e.Resource, e.Reason, e.Err)
	default:
		return fmt.Sprintf("fetch failed for '%s': %s", e.Resource, e.Reason)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func NewFetchError(resource string, statusCode int, reason string, err error) *FetchError {
	return &FetchError{Resource: resource, StatusCode: statusCode, Reason: reason, Err: err}
}
