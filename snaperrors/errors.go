package snaperrors

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure for exit-code mapping and watch-loop policy.
type Kind int

const (
	// KindUsage indicates an invalid configuration or flag combination.
	KindUsage Kind = iota
	// KindNetwork indicates a transport or HTTP-status failure after retries.
	KindNetwork
	// KindParse indicates the response body is not valid JSON.
	KindParse
	// KindReduce indicates a missing top-level key or malformed reduce list.
	KindReduce
	// KindOutline indicates a structural violation found while projecting.
	KindOutline
	// KindIO indicates a filesystem failure while writing output.
	KindIO
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindReduce:
		return "reduce"
	case KindOutline:
		return "outline"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ExitCode returns the process exit code designated for this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindUsage, KindNetwork:
		return 1
	case KindParse:
		return 2
	case KindReduce, KindOutline:
		return 3
	case KindIO:
		return 4
	default:
		return 1
	}
}

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUsage matches any Error with KindUsage.
	ErrUsage = errors.New("usage error")

	// ErrNetwork matches any Error with KindNetwork.
	ErrNetwork = errors.New("network error")

	// ErrParse matches any Error with KindParse.
	ErrParse = errors.New("parse error")

	// ErrReduce matches any Error with KindReduce.
	ErrReduce = errors.New("reduce error")

	// ErrOutline matches any Error with KindOutline.
	ErrOutline = errors.New("outline error")

	// ErrIO matches any Error with KindIO.
	ErrIO = errors.New("io error")
)

// sentinel returns the sentinel error corresponding to the kind.
func (k Kind) sentinel() error {
	switch k {
	case KindUsage:
		return ErrUsage
	case KindNetwork:
		return ErrNetwork
	case KindParse:
		return ErrParse
	case KindReduce:
		return ErrReduce
	case KindOutline:
		return ErrOutline
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// Error is the failure type surfaced by every library package.
type Error struct {
	// Kind categorizes the failure
	Kind Kind
	// Message describes the failure in human-readable form
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Error returns a human-readable error message.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf extracts the Kind from an error chain.
// The second return value is false when no *Error is present in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ExitCode returns the process exit code for an error. Errors that do not
// carry a Kind (including flag-parsing errors) map to 1.
func ExitCode(err error) int {
	if kind, ok := KindOf(err); ok {
		return kind.ExitCode()
	}
	return 1
}

// IsEndpointError reports whether the error indicates the endpoint itself is
// unreachable or not serving JSON (KindNetwork or KindParse). The watch loop
// uses this to decide whether the misconfigured-default recovery prompt
// applies.
func IsEndpointError(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == KindNetwork || kind == KindParse)
}
