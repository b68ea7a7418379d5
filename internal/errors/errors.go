package errors

import "fmt"

// InputError represents a missing or unreadable input file
type InputError struct {
	Path    string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input file %s: %s", e.Path, e.Message)
}

// NewInputError creates a new InputError
func NewInputError(path, message string) *InputError {
	return &InputError{
		Path:    path,
		Message: message,
	}
}

// OutputError represents a failure to create or write the output file
type OutputError struct {
	Path    string
	Message string
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output file %s: %s", e.Path, e.Message)
}

// NewOutputError creates a new OutputError
func NewOutputError(path, message string) *OutputError {
	return &OutputError{
		Path:    path,
		Message: message,
	}
}

// GlobError represents an invalid or unmatchable batch pattern
type GlobError struct {
	Pattern string
	Message string
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Message)
}

// NewGlobError creates a new GlobError
func NewGlobError(pattern, message string) *GlobError {
	return &GlobError{
		Pattern: pattern,
		Message: message,
	}
}
