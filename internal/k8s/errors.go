package k8s

import (
	"context"
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrorKind identifies the failure class of an operation. The set is
// closed; tool handlers switch on it to produce user-facing messages
// instead of matching on error strings or exception types.
type ErrorKind string

const (
	// ErrorKindArgument indicates invalid caller input, detected before
	// any external call.
	ErrorKindArgument ErrorKind = "argument"

	// ErrorKindNotFound indicates the referenced resource is absent.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindConflict indicates the resource already exists.
	ErrorKindConflict ErrorKind = "conflict"

	// ErrorKindAPI indicates any other Kubernetes API failure.
	ErrorKindAPI ErrorKind = "api"

	// ErrorKindTimeout indicates a bounded external command exceeded
	// its deadline.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindUnexpected is the catch-all for local faults.
	ErrorKindUnexpected ErrorKind = "unexpected"
)

// OpError carries the classified outcome of a failed operation.
type OpError struct {
	Kind         ErrorKind
	ResourceKind string
	Name         string
	Namespace    string

	// Reason and Body are populated for API failures from the status
	// error returned by the API server.
	Reason string
	Body   string

	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	switch e.Kind {
	case ErrorKindNotFound:
		if e.Namespace != "" {
			return fmt.Sprintf("%s '%s' not found in namespace '%s'", e.ResourceKind, e.Name, e.Namespace)
		}
		return fmt.Sprintf("%s '%s' not found", e.ResourceKind, e.Name)
	case ErrorKindConflict:
		return fmt.Sprintf("%s '%s' already exists", e.ResourceKind, e.Name)
	case ErrorKindAPI:
		return fmt.Sprintf("%s - %s", e.Reason, e.Body)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Kind)
	}
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an argument-class OpError for input rejected
// before any external call.
func NewArgumentError(format string, args ...any) *OpError {
	return &OpError{
		Kind: ErrorKindArgument,
		Err:  fmt.Errorf(format, args...),
	}
}

// NewTimeoutError creates a timeout-class OpError.
func NewTimeoutError(format string, args ...any) *OpError {
	return &OpError{
		Kind: ErrorKindTimeout,
		Err:  fmt.Errorf(format, args...),
	}
}

// classify maps an error from client-go onto the closed taxonomy,
// recording the resource identity for message rendering.
func classify(err error, resourceKind, name, namespace string) *OpError {
	opErr := &OpError{
		ResourceKind: resourceKind,
		Name:         name,
		Namespace:    namespace,
		Err:          err,
	}

	switch {
	case apierrors.IsNotFound(err):
		opErr.Kind = ErrorKindNotFound
	case apierrors.IsAlreadyExists(err):
		opErr.Kind = ErrorKindConflict
	case errors.Is(err, context.DeadlineExceeded):
		opErr.Kind = ErrorKindTimeout
	default:
		var statusErr *apierrors.StatusError
		if errors.As(err, &statusErr) {
			opErr.Kind = ErrorKindAPI
			opErr.Reason = string(statusErr.Status().Reason)
			opErr.Body = statusErr.Status().Message
		} else {
			opErr.Kind = ErrorKindUnexpected
		}
	}

	return opErr
}

// AsOpError extracts an OpError from an error chain. The second return
// value is false when the error was never classified, which callers
// treat as the unexpected kind.
func AsOpError(err error) (*OpError, bool) {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}
