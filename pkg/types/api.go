package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat          ErrKind = iota // malformed text or binary input
	ErrKindIO                             // stream or file failure
	ErrKindInvalidArgument                // caller misuse (nil stream, nil node)
	ErrKindUnsupported                    // recognized option or feature we don't support
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIO:
		return "io"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Causes reachable with errors.Is through an *Error.
var (
	// ErrTruncated indicates the input ended inside a node.
	ErrTruncated = errors.New("truncated input")
	// ErrUnknownTag indicates a binary tag byte with no assigned Tag.
	ErrUnknownTag = errors.New("unknown type tag")
	// ErrWideString indicates the unsupported WIDESTRING binary tag.
	ErrWideString = errors.New("wide string values are not supported")
	// ErrUnbalanced indicates a closing brace where a value was expected.
	ErrUnbalanced = errors.New("unbalanced braces")
	// ErrEmptyToken indicates a missing or empty key name token.
	ErrEmptyToken = errors.New("empty or missing token")
	// ErrConditional indicates a conditional marker used as a value.
	ErrConditional = errors.New("conditional between key and value")
	// ErrMissingBrace indicates a root name not followed by an opening brace.
	ErrMissingBrace = errors.New("missing opening brace")
	// ErrTokenOverflow indicates a bare token longer than the tokenizer allows.
	ErrTokenOverflow = errors.New("token too long")
	// ErrLimit indicates input that exceeds the configured Limits.
	ErrLimit = errors.New("limit exceeded")
	// ErrNilArgument indicates a nil stream, node or path argument.
	ErrNilArgument = errors.New("nil argument")
)

// FormatError builds an ErrKindFormat error around cause.
func FormatError(cause error, format string, args ...any) *Error {
	return &Error{Kind: ErrKindFormat, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// IOError builds an ErrKindIO error around cause.
func IOError(cause error, format string, args ...any) *Error {
	return &Error{Kind: ErrKindIO, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// InvalidArgument builds an ErrKindInvalidArgument error naming the argument.
func InvalidArgument(op, arg string) *Error {
	return &Error{Kind: ErrKindInvalidArgument, Msg: op + ": " + arg, Err: ErrNilArgument}
}

// Unsupported builds an ErrKindUnsupported error.
func Unsupported(format string, args ...any) *Error {
	return &Error{Kind: ErrKindUnsupported, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether any *Error in err's chain has the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
