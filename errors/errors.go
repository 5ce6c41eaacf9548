/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidArgument is returned when a required constructor argument is nil or invalid
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat is returned when a stored string cannot be decoded as the requested type
	ErrFormat = errors.New("malformed stored value")

	// ErrNotFound is returned when an operation requires an item that does not exist
	ErrNotFound = errors.New("item not found")

	// ErrAlreadyExists is returned when a fail-on-collision create finds an existing item
	ErrAlreadyExists = errors.New("item already exists")

	// ErrCollaborator is returned when the underlying storage substrate fails
	ErrCollaborator = errors.New("storage collaborator failure")
)

// ArgumentError represents a nil or invalid required argument.
type ArgumentError struct {
	Name    string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("invalid argument %q", e.Name)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// FormatError represents a stored string that is not a valid encoding of the
// requested type. It is always propagated to the caller; absence of a key is
// the only case mapped to a default value.
type FormatError struct {
	TargetType string
	Err        error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("stored value is not a valid %s: %v", e.TargetType, e.Err)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NotFoundError represents an operation against a definitively absent item.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a fail-on-collision create against an existing item.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("item %q already exists", e.Path)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// CollaboratorError wraps an opaque failure from the settings container or
// folder provider, surfaced unchanged to the caller.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: collaborator failure: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Is(target error) bool {
	return target == ErrCollaborator
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewArgumentError creates a new ArgumentError
func NewArgumentError(name, message string) error {
	return &ArgumentError{Name: name, Message: message}
}

// NewFormatError creates a new FormatError wrapping the decode failure
func NewFormatError(targetType string, err error) error {
	return &FormatError{TargetType: targetType, Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(path string) error {
	return &AlreadyExistsError{Path: path}
}

// NewCollaboratorError wraps a substrate failure for the named operation
func NewCollaboratorError(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}

// IsInvalidArgument checks if an error is an argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsFormat checks if an error is a format error
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsCollaborator checks if an error is a collaborator error
func IsCollaborator(err error) bool {
	return errors.Is(err, ErrCollaborator)
}
