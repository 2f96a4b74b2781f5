package optimizer

import (
	"errors"
	"fmt"
)

// ErrorType classifies an optimization failure. Every failure is terminal
// for the current call; nothing here is retried.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeInvalidRequest marks malformed caller input (empty prompt,
	// prompt over the token budget).
	ErrorTypeInvalidRequest

	// ErrorTypeServiceUnavailable marks a service that started without a
	// usable generation credential. All calls fail fast with it until the
	// configuration is corrected.
	ErrorTypeServiceUnavailable

	// ErrorTypeUpstream marks a generation call that failed at invocation
	// time: network, auth, quota, or a vendor-side error.
	ErrorTypeUpstream

	// ErrorTypeMalformedOutput marks upstream text that is not valid JSON.
	ErrorTypeMalformedOutput

	// ErrorTypeSchemaMismatch marks valid JSON that does not satisfy the
	// required response shape, whether a field is missing or mistyped.
	ErrorTypeSchemaMismatch
)

// OptimizationError is the only error type Optimize returns.
type OptimizationError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *OptimizationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.TypeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.TypeString(), e.Message)
}

func (e *OptimizationError) Unwrap() error {
	return e.Err
}

func (e *OptimizationError) TypeString() string {
	switch e.Type {
	case ErrorTypeInvalidRequest:
		return "InvalidRequest"
	case ErrorTypeServiceUnavailable:
		return "ServiceUnavailable"
	case ErrorTypeUpstream:
		return "UpstreamUnavailable"
	case ErrorTypeMalformedOutput:
		return "MalformedOutput"
	case ErrorTypeSchemaMismatch:
		return "SchemaMismatch"
	default:
		return "UnknownError"
	}
}

// NewOptimizationError creates a new OptimizationError.
func NewOptimizationError(errType ErrorType, message string, err error) *OptimizationError {
	return &OptimizationError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// TypeOf extracts the error category from err, or ErrorTypeUnknown when
// err is not an OptimizationError.
func TypeOf(err error) ErrorType {
	var optErr *OptimizationError
	if errors.As(err, &optErr) {
		return optErr.Type
	}
	return ErrorTypeUnknown
}
