// Package errors provides structured error types and exit codes for h2verify.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Exit codes. Every failure, including a failed validation, exits with 1.
const (
	ExitSuccess = 0 // Validation passed
	ExitFailure = 1 // Validation failed, or a record could not be loaded
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindNotFound
	KindParse
)

// String returns the kind name used in diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse"
	default:
		return "runtime"
	}
}

// VerifyError is the base error type for h2verify.
type VerifyError struct {
	Kind    ErrorKind
	Message string
	Path    string   // File the error refers to, if any
	Tried   []string // Every location attempted, for not-found errors
	Hints   []string // Suggestions printed after the error
	Cause   error    // Underlying error
}

func (e *VerifyError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *VerifyError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *VerifyError) ExitCode() int {
	return ExitFailure
}

// Details returns extra lines worth showing to the user: every location that
// was tried before giving up, then any hints.
func (e *VerifyError) Details() []string {
	if len(e.Tried) == 0 && len(e.Hints) == 0 {
		return nil
	}
	lines := make([]string, 0, len(e.Hints)+1)
	if len(e.Tried) > 0 {
		lines = append(lines, "tried: "+strings.Join(e.Tried, ", "))
	}
	return append(lines, e.Hints...)
}

// Usage creates a command-line usage error.
func Usage(message string) *VerifyError {
	return &VerifyError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a usage error with formatting.
func Usagef(format string, args ...interface{}) *VerifyError {
	return Usage(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *VerifyError {
	return &VerifyError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error. tried lists every path that was checked;
// the first entry is used as the reported path.
func NotFound(what string, tried ...string) *VerifyError {
	e := &VerifyError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", what),
		Tried:   tried,
	}
	if len(tried) == 1 {
		e.Path = tried[0]
		e.Tried = nil
	}
	return e
}

// Parse creates an error for a file whose contents are not a well-formed record.
func Parse(what, path string, cause error) *VerifyError {
	return &VerifyError{
		Kind:    KindParse,
		Message: fmt.Sprintf("error parsing %s", what),
		Path:    path,
		Cause:   cause,
	}
}

// WithHint appends hint to the VerifyError in err's chain and returns err.
// Other errors are returned unchanged.
func WithHint(err error, hint string) error {
	var ve *VerifyError
	if stderrors.As(err, &ve) {
		ve.Hints = append(ve.Hints, hint)
	}
	return err
}

// IsKind reports whether err is a VerifyError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ve *VerifyError
	return stderrors.As(err, &ve) && ve.Kind == kind
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ve *VerifyError
	if stderrors.As(err, &ve) {
		return ve.ExitCode()
	}
	return ExitFailure
}
