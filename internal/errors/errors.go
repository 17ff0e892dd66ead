// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrTradeNotFound    = errors.New("trade not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotPro           = errors.New("pro subscription required")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store not initialized")
)

// ValidationError represents a validation error. Validation failures are
// surfaced to the caller before any persistence is attempted.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// StorageError represents an error from the persistence layer.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage error [%s] %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error [%s]: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Key: key,
		Err: err,
	}
}

// InsightError represents an error from the AI insight provider. The
// insight pipeline converts these into fallback results; they never reach
// the presentation layer.
type InsightError struct {
	Stage string
	Err   error
}

func (e *InsightError) Error() string {
	return fmt.Sprintf("insight error [%s]: %v", e.Stage, e.Err)
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError.
func NewInsightError(stage string, err error) *InsightError {
	return &InsightError{
		Stage: stage,
		Err:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
