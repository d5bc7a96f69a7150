// Package ingestion loads pre-parsed text-run dumps and groups runs into visual lines.
package ingestion

import "fmt"

// LoadError represents an error reading or decoding a run dump file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// MalformedRunError reports a text run that violates the input contract
// (non-positive font size or negative page).
type MalformedRunError struct {
	Index int
	Cause error
}

func (e *MalformedRunError) Error() string {
	return fmt.Sprintf("malformed text run at index %d: %v", e.Index, e.Cause)
}

func (e *MalformedRunError) Unwrap() error {
	return e.Cause
}
