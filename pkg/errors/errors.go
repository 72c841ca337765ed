package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// FormatError reports a color or date string that matches none of the accepted grammars.
type FormatError struct {
	Field   string
	Value   string
	Message string
}

// NewFormatError constructs a FormatError.
func NewFormatError(field, value, message string) error {
	return &FormatError{Field: field, Value: value, Message: message}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("format error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

// StructuralError captures a missing field or a field of the wrong type.
type StructuralError struct {
	Field   string
	Message string
	Err     error
}

// NewStructuralError constructs a StructuralError.
func NewStructuralError(field, message string, err error) error {
	return &StructuralError{Field: field, Message: message, Err: err}
}

func (e *StructuralError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("structural error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("structural error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StructuralError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SecurityRejection marks a value that passed structural checks but did not survive sanitization.
type SecurityRejection struct {
	Field   string
	Message string
	Err     error
}

// NewSecurityRejection constructs a SecurityRejection.
func NewSecurityRejection(field, message string, err error) error {
	return &SecurityRejection{Field: field, Message: message, Err: err}
}

func (e *SecurityRejection) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("security rejection: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("security rejection: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SecurityRejection) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IOError wraps a failed read or write of file or clipboard content.
type IOError struct {
	Source string
	Op     string
	Err    error
}

// NewIOError constructs an IOError for the given source ("file", "clipboard") and operation.
func NewIOError(source, op string, err error) error {
	return &IOError{Source: source, Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Violations aggregates every constraint a value failed so callers can render a complete list.
type Violations []error

func (v Violations) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Messages returns one human-readable string per violation.
func (v Violations) Messages() []string {
	out := make([]string, 0, len(v))
	for _, err := range v {
		if err == nil {
			continue
		}
		out = append(out, err.Error())
	}
	return out
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (v Violations) Unwrap() []error {
	return v
}

// Err returns nil when there are no violations, so callers can write `return v.Err()`.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// FieldOf returns the field path carried by err, or "" when err names no field.
func FieldOf(err error) string {
	var formatErr *FormatError
	if stderrors.As(err, &formatErr) {
		return formatErr.Field
	}
	var structuralErr *StructuralError
	if stderrors.As(err, &structuralErr) {
		return structuralErr.Field
	}
	var rejection *SecurityRejection
	if stderrors.As(err, &rejection) {
		return rejection.Field
	}
	return ""
}
