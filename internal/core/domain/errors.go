package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
)

// Reasons reported for a rejected field.
const (
	ReasonMissing   = "field required"
	ReasonWrongType = "wrong type"
	ReasonNotInSet  = "not in enumerated set"
)

// FieldIssue is one rejected field of an incoming payload.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every field of a payload that failed to conform to
// the create shape. errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Reason))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Has reports whether field already carries an issue.
func (e *ValidationError) Has(field string) bool {
	for _, is := range e.Issues {
		if is.Field == field {
			return true
		}
	}
	return false
}
