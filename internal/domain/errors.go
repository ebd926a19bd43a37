package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a weather lookup failure for API clients.
type ErrorCode string

const (
	CodeUnknownLocation ErrorCode = "UNKNOWN_LOCATION"
	CodeRateLimited     ErrorCode = "RATE_LIMIT_REACHED"
	CodeUpstream        ErrorCode = "UPSTREAM_ERROR"
	CodeNetwork         ErrorCode = "NETWORK_ERROR"
)

// SourceError is returned when weather data cannot be produced for a request.
// All codes are terminal for the request; nothing is retried.
type SourceError struct {
	Code    ErrorCode
	Status  int // upstream HTTP status, when there was one
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SourceError) Unwrap() error { return e.Err }

// UnknownLocationError reports a location name missing from the site directory.
func UnknownLocationError(name string) *SourceError {
	return &SourceError{
		Code:    CodeUnknownLocation,
		Message: fmt.Sprintf("unknown location %q", name),
	}
}

// RateLimitedError reports that the upstream provider refused the request
// for exceeding its quota.
func RateLimitedError() *SourceError {
	return &SourceError{
		Code:    CodeRateLimited,
		Status:  http.StatusTooManyRequests,
		Message: "weather provider rate limit reached; retry later or request sample data with use_sample=true",
	}
}

// UpstreamError reports a non-success response from the upstream provider.
func UpstreamError(status int, detail string) *SourceError {
	return &SourceError{
		Code:    CodeUpstream,
		Status:  status,
		Message: fmt.Sprintf("weather provider returned status %d: %s", status, detail),
	}
}

// NetworkError reports a transport failure reaching the upstream provider.
func NetworkError(err error) *SourceError {
	return &SourceError{
		Code:    CodeNetwork,
		Message: "could not reach weather provider",
		Err:     err,
	}
}

// ErrorCodeOf returns the code carried by err, or "" if err is not a SourceError.
func ErrorCodeOf(err error) ErrorCode {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
