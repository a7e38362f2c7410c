package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a pcbuild error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrUnknownCategory  ErrorCode = "UNKNOWN_CATEGORY"  // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrUnknownComponent ErrorCode = "UNKNOWN_COMPONENT" // 404
	ErrEmptyBuild       ErrorCode = "EMPTY_BUILD"       // 409
	ErrStorage          ErrorCode = "STORAGE"           // 503
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// BuildError represents a structured error with code, status, and details.
type BuildError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *BuildError {
	return &BuildError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnknownCategory creates a 400 error for a category outside the fixed set.
func NewUnknownCategory(category string) *BuildError {
	return &BuildError{
		Code:    ErrUnknownCategory,
		Status:  400,
		Message: fmt.Sprintf("unknown category: %q", category),
		Details: map[string]any{"category": category},
	}
}

// NewNotFound creates a 404 error for a missing resource.
func NewNotFound(identifier string) *BuildError {
	return &BuildError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewUnknownComponent creates a 404 error when a name is not in the catalog.
func NewUnknownComponent(category, name string) *BuildError {
	return &BuildError{
		Code:    ErrUnknownComponent,
		Status:  404,
		Message: fmt.Sprintf("component %q not found in category %q", name, category),
		Details: map[string]any{"category": category, "name": name},
	}
}

// NewEmptyBuild creates a 409 error for operations that need at least one selection.
func NewEmptyBuild(op string) *BuildError {
	return &BuildError{
		Code:    ErrEmptyBuild,
		Status:  409,
		Message: fmt.Sprintf("cannot %s an empty build", op),
		Details: map[string]any{"operation": op},
	}
}

// NewStorage creates a 503 error wrapping a storage collaborator failure.
func NewStorage(err error) *BuildError {
	msg := "storage unavailable"
	if err != nil {
		msg = err.Error()
	}
	return &BuildError{
		Code:    ErrStorage,
		Status:  503,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *BuildError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &BuildError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// As extracts a *BuildError from err's chain.
func As(err error) (*BuildError, bool) {
	var bErr *BuildError
	if stderrors.As(err, &bErr) {
		return bErr, true
	}
	return nil, false
}

// Is checks if an error is a BuildError with the given code.
func Is(err error, code ErrorCode) bool {
	if bErr, ok := As(err); ok {
		return bErr.Code == code
	}
	return false
}
