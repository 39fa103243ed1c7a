// Package validation checks skill and requirement records at the input
// boundary. The analysis core is total over well-typed input, so validation
// runs once where documents enter the system (CLI flags, JSON files), not
// inside the pipeline.
package validation

import "fmt"

// Error represents a general input validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// RecordError pinpoints an invalid record by collection and index
type RecordError struct {
	Collection string // "user_skills" or "requirements"
	Index      int
	Cause      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid %s record at index %d: %v", e.Collection, e.Index, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
