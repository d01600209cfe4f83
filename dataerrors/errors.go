// Package dataerrors provides the structured error taxonomy shared by the
// index, series and dataframe packages.
//
// # Overview
//
// Every failure returned by the core is an *Error carrying:
//   - a Type that callers branch on (validation, key lookup, type mismatch)
//   - a human-readable Message
//   - an optional Cause for errors wrapped from I/O or parsing
//   - Details with the offending labels, lengths or positions
//   - the Stack captured where the error was created
//
// # Basic Usage
//
//	idx, err := index.New([]string{"a", "a"})
//	if dataerrors.IsValidation(err) {
//	    // duplicate or empty labels
//	}
//
//	v, err := s.Loc("missing")
//	if dataerrors.IsKeyNotFound(err) {
//	    // strict lookup miss
//	}
//
// Lookup-or-absent accessors (Get) never return an error; they report a miss
// through their boolean result.
package dataerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of error.
type ErrorType string

const (
	// ErrorTypeValidation represents structural violations detected at construction time
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeKeyNotFound represents strict lookups of absent labels
	ErrorTypeKeyNotFound ErrorType = "key_not_found"
	// ErrorTypeTypeMismatch represents operands or element types an operation cannot handle
	ErrorTypeTypeMismatch ErrorType = "type_mismatch"
	// ErrorTypeArithmetic represents element-wise arithmetic failures such as a zero divisor
	ErrorTypeArithmetic ErrorType = "arithmetic"
	// ErrorTypeFile represents file and stream errors during text ingestion
	ErrorTypeFile ErrorType = "file"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// Error represents a structured error with context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack.
type StackFrame struct {
	Function string // Fully qualified function name
	File     string // Source file path
	Line     int    // Line number in source file
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. Calls can be chained.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new error with a formatted message.
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context. A nil err yields nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the stack of the innermost structured error
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return IsType(err, ErrorTypeValidation) }

// IsKeyNotFound reports whether err is a strict lookup miss.
func IsKeyNotFound(err error) bool { return IsType(err, ErrorTypeKeyNotFound) }

// IsTypeMismatch reports whether err is a type mismatch.
func IsTypeMismatch(err error) bool { return IsType(err, ErrorTypeTypeMismatch) }

// GetDetail returns the detail stored under key on the outermost *Error in
// the chain.
func GetDetail(err error, key string) (interface{}, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Details == nil {
		return nil, false
	}
	v, ok := e.Details[key]
	return v, ok
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
