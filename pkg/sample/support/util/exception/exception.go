// Package exception provides the error type used across sample-app.
// A SampleError records which module failed, a short message and the
// underlying cause, plus the stack at creation time for debugging.
package exception

import (
	"errors"
	"fmt"
	"runtime"
)

// SampleError is the error type returned by sample-app components.
type SampleError struct {
	// Module indicates where the error occurred (e.g., "config", "launcher").
	Module string
	// Message is a concise description of the error.
	Message string
	// OriginalErr is the wrapped original error.
	OriginalErr error
	// StackTrace is the stack trace at the time of the error.
	StackTrace string
}

// NewSampleError creates a new SampleError wrapping originalErr, which may be nil.
func NewSampleError(module, message string, originalErr error) *SampleError {
	return &SampleError{
		Module:      module,
		Message:     message,
		OriginalErr: originalErr,
		StackTrace:  captureStack(),
	}
}

// NewSampleErrorf creates a SampleError with a formatted message.
// If the last argument is an error it becomes the wrapped error and is not
// passed to the format string.
//
// NewSampleErrorf("config", "invalid level %q", lvl, err)
// -> message: `invalid level "x"`, originalErr: err
func NewSampleErrorf(module, format string, a ...interface{}) *SampleError {
	var originalErr error
	args := a
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			originalErr = err
			args = args[:len(args)-1]
		}
	}
	return &SampleError{
		Module:      module,
		Message:     fmt.Sprintf(format, args...),
		OriginalErr: originalErr,
		StackTrace:  captureStack(),
	}
}

func captureStack() string {
	buf := make([]byte, 2048)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// Error implements the error interface.
func (e *SampleError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Module, e.Message, e.OriginalErr)
	}
	return fmt.Sprintf("[%s] %s", e.Module, e.Message)
}

// Unwrap returns the original error for errors.Is / errors.As.
func (e *SampleError) Unwrap() error {
	return e.OriginalErr
}

// IsSampleError reports whether err is, or wraps, a SampleError.
func IsSampleError(err error) bool {
	var se *SampleError
	return errors.As(err, &se)
}

// ExtractErrorMessage returns the Message of the outermost SampleError in
// the chain, or err.Error() otherwise.
func ExtractErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *SampleError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
