package objecthash

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is a stable category for programmatic error handling. Callers
// should branch on the kind rather than on error strings.
type ErrorKind string

const (
	UnsupportedType    ErrorKind = "UnsupportedType"
	MalformedRedaction ErrorKind = "MalformedRedaction"
	MalformedHex       ErrorKind = "MalformedHex"
	MalformedDigest    ErrorKind = "MalformedDigest"
	NumericRange       ErrorKind = "NumericRange"
	DuplicateKey       ErrorKind = "DuplicateKey"
	Parse              ErrorKind = "Parse"
	Internal           ErrorKind = "Internal"
)

// Error is the structured error returned by every operation in this package.
//
// Path locates the failing node inside the value tree ("$.part[2]") and is
// empty for errors that are not tied to a tree position.
type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return "objecthash: " + msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapError records where an upstream failure entered the package. The
// cause keeps its text; errors.Cause and errors.Is still reach the original.
func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: errors.WithStack(cause)}
}

// atPath prefixes the location of a failing child onto err. Segments are
// added innermost first as the error travels back up the recursion.
func atPath(err error, segment string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Path = segment + e.Path
		return err
	}
	return &Error{Kind: Internal, Path: segment, Message: "unstructured error", Cause: err}
}

func indexSegment(i int) string {
	return fmt.Sprintf("[%d]", i)
}

func keySegment(k string) string {
	return fmt.Sprintf("[%q]", k)
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the kind of a structured error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
