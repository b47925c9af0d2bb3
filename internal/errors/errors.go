// Package errors provides sentinel errors and custom error types for the pdfmerge application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Sentinel errors for common conditions
var (
	// ErrNoCandidates indicates that discovery found no PDF files to merge
	ErrNoCandidates = errors.New("no PDF files found")

	// ErrInvalidSelection indicates that the user's selection input was rejected
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrUnreadableInput indicates that a selected file could not be read as a PDF
	ErrUnreadableInput = errors.New("unreadable input file")

	// ErrWriteFailure indicates that the merged output could not be written
	ErrWriteFailure = errors.New("write failure")

	// ErrOutputExists indicates that the output file already exists and the
	// overwrite policy forbids replacing it
	ErrOutputExists = errors.New("output file already exists")

	// ErrCanceled indicates that the user aborted the selection prompt
	ErrCanceled = errors.New("canceled")
)

// InvalidSelectionError represents a rejected selection input
type InvalidSelectionError struct {
	Input  string
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid selection: %s", e.Reason)
	}
	return fmt.Sprintf("invalid selection %q: %s", e.Input, e.Reason)
}

// Is returns true if the target error is ErrInvalidSelection
func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// NewInvalidSelectionError creates a new InvalidSelectionError
func NewInvalidSelectionError(input, reason string) *InvalidSelectionError {
	return &InvalidSelectionError{Input: input, Reason: reason}
}

// UnreadableInputError represents a selected file that could not be opened or
// parsed as a PDF
type UnreadableInputError struct {
	Path string
	Err  error
}

func (e *UnreadableInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %s as PDF: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read %s as PDF", e.Path)
}

func (e *UnreadableInputError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrUnreadableInput
func (e *UnreadableInputError) Is(target error) bool {
	return target == ErrUnreadableInput
}

// NewUnreadableInputError creates a new UnreadableInputError
func NewUnreadableInputError(path string, err error) *UnreadableInputError {
	return &UnreadableInputError{Path: path, Err: err}
}

// WriteFailureError represents a failure to produce the merged output file
type WriteFailureError struct {
	Path string
	Err  error
}

func (e *WriteFailureError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteFailureError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrWriteFailure
func (e *WriteFailureError) Is(target error) bool {
	return target == ErrWriteFailure
}

// NewWriteFailureError creates a new WriteFailureError
func NewWriteFailureError(path string, err error) *WriteFailureError {
	return &WriteFailureError{Path: path, Err: err}
}
