// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is missing or malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNotFound is returned when an owner or resource record cannot be located
	// by the key it was searched with.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned on create when a record already exists for
	// the given mobile number.
	ErrAlreadyExists = errors.New("resource already exists")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Err, e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ResourceNotFoundError reports which resource was missing and how it was searched for.
type ResourceNotFoundError struct {
	Resource string // e.g. "Customer", "Loan"
	Field    string // the field used to search, e.g. "mobileNumber"
	Value    string // the search value
}

// Error implements the error interface for ResourceNotFoundError.
func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with the given input data %s : '%s'", e.Resource, e.Field, e.Value)
}

// Unwrap returns ErrNotFound so callers can use errors.Is(err, ErrNotFound).
func (e *ResourceNotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewResourceNotFoundError creates a ResourceNotFoundError.
func NewResourceNotFoundError(resource, field, value string) *ResourceNotFoundError {
	return &ResourceNotFoundError{
		Resource: resource,
		Field:    field,
		Value:    value,
	}
}

// AlreadyExistsError reports that a domain already holds a record for a mobile number.
type AlreadyExistsError struct {
	Resource     string
	MobileNumber string
}

// Error implements the error interface for AlreadyExistsError.
func (e *AlreadyExistsError) Error() string {
	if e.Resource == ResourceCustomer {
		return "Customer already registered with given mobileNumber " + e.MobileNumber
	}
	return fmt.Sprintf("%s already exists for mobile number: %s", e.Resource, e.MobileNumber)
}

// Unwrap returns ErrAlreadyExists so callers can use errors.Is(err, ErrAlreadyExists).
func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// NewAlreadyExistsError creates an AlreadyExistsError.
func NewAlreadyExistsError(resource, mobileNumber string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource:     resource,
		MobileNumber: mobileNumber,
	}
}
