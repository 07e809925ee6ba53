package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrUnexpectedChar      = NewError("unrecognized character")
	ErrUnterminatedComment = NewError("unterminated comment")
	ErrUnterminatedString  = NewError("unterminated string")
	ErrInvalidOctal        = NewError("invalid octal literal")
	ErrUndefinedConstant   = NewError("undefined constant")
	ErrNotEnoughOperands   = NewError("not enough operands")
	ErrIntegerOperands     = NewError("math operations only supported for integers")
	ErrDivisionByZero      = NewError("division by zero")
	ErrMalformedStack      = NewError("expression error, malformed stack")
	ErrInvalidNode         = NewError("invalid syntax node")
	ErrReadInput           = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same sentinel this error was created
// from, ignoring any wrapped cause or attributes.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LexError reports a malformed or unterminated token. It is fatal to the
// compilation; no partial result is produced.
type LexError struct {
	Pos    Position
	Err    error
	Source string // Original source input, attached for error context
}

// Error implements the error interface.
func (e *LexError) Error() string {
	var buf strings.Builder

	buf.WriteString("lex error at line ")
	buf.WriteString(strconv.Itoa(e.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Pos.Column))
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())

	if snippet := sourceSnippet(e.Source, e.Pos); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LexError) Unwrap() error { return e.Err }

// ParseError reports a token sequence that does not match the grammar.
// It names the unexpected token and the expected alternatives.
type ParseError struct {
	Token    Token
	Expected []string
	Source   string // Original source input, attached for error context
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Token.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Token.Pos.Column))
	buf.WriteString(": unexpected ")
	buf.WriteString(e.Token.String())

	if snippet := sourceSnippet(e.Source, e.Token.Pos); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	if len(e.Expected) > 0 {
		buf.WriteString("\n\texpected: ")
		buf.WriteString(strings.Join(e.Expected, ", "))
	}

	return buf.String()
}

// EvalError reports a semantic failure while resolving a constant:
// undefined reference, non-integer operand, insufficient operands,
// malformed expression stack, division by zero, or invalid literal.
type EvalError struct {
	Constant string // Name of the constant being resolved
	Err      error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Constant == "" {
		return "eval error: " + e.Err.Error()
	}

	return "eval error in constant " + strconv.Quote(e.Constant) +
		": " + e.Err.Error()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *EvalError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer for structured logging.
func (e *EvalError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("constant", e.Constant),
		slog.String("cause", e.Err.Error()),
	)
}

// sourceSnippet renders the offending source line with a marker pointing
// at the error column, in the form:
//
//	  3 | set A = 0o8
//	              ^
func sourceSnippet(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	var buf strings.Builder

	line := lines[pos.Line-1]

	buf.WriteString("  ")
	buf.WriteString(strconv.Itoa(pos.Line))
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	lineNumWidth := len(strconv.Itoa(pos.Line))
	padding := strings.Repeat(" ", lineNumWidth+5)

	if pos.Column > 0 {
		padding += strings.Repeat(" ", pos.Column-1)
	}

	buf.WriteString(padding + "^")

	return buf.String()
}
