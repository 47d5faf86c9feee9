package model

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected field value. Field names the first
// field that failed; it is empty when the failure was reported by the
// store without field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// RequestError wraps a transport-level failure of a store or rate call.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *RequestError) Unwrap() error { return e.Err }
