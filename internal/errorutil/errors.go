// Package errorutil contains the error taxonomy shared by all codec packages.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/sipmsg/internal/util"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

const (
	// ErrMissingHeader is returned by header accessors when a required header is absent.
	ErrMissingHeader Error = "missing header"
	// ErrInvalidParam is returned when a mandatory sub-field of a typed header
	// is absent or semantically wrong.
	ErrInvalidParam Error = "invalid param"
	// ErrParse is returned when a scalar value (number, keyword) fails to parse.
	ErrParse Error = "parse error"
	// ErrTokenize is returned when the input does not match the expected structure.
	ErrTokenize Error = "tokenize error"
	// ErrUtf8 is returned when text is required but the input is not valid UTF-8.
	ErrUtf8 Error = "invalid utf-8"
	// ErrUnexpected reports internal invariant violations.
	ErrUnexpected Error = "unexpected error"
	// ErrIncomplete is returned by message-level tokenizers when the input ends
	// before the message head is complete. Callers should buffer more bytes and retry.
	ErrIncomplete Error = "incomplete input"
	// ErrInvalidArgument is an error returned when an invalid argument is provided.
	ErrInvalidArgument Error = "invalid argument"
)

// NewMissingHeaderError returns [ErrMissingHeader] annotated with the header name.
func NewMissingHeaderError(name string) error {
	return NewWrapperError(ErrMissingHeader, name) //errtrace:skip
}

// NewInvalidParamError creates a new error with [ErrInvalidParam] or
// wraps provided error with [ErrInvalidParam].
func NewInvalidParamError(args ...any) error {
	return NewWrapperError(ErrInvalidParam, args...) //errtrace:skip
}

// NewParseError creates a new error with [ErrParse] or wraps provided error with [ErrParse].
func NewParseError(args ...any) error {
	return NewWrapperError(ErrParse, args...) //errtrace:skip
}

// NewTokenizeError creates a new error with [ErrTokenize] or wraps provided error with [ErrTokenize].
func NewTokenizeError(args ...any) error {
	return NewWrapperError(ErrTokenize, args...) //errtrace:skip
}

// NewUtf8Error creates a new error with [ErrUtf8].
func NewUtf8Error(args ...any) error {
	return NewWrapperError(ErrUtf8, args...) //errtrace:skip
}

// NewUnexpectedError creates a new error with [ErrUnexpected].
func NewUnexpectedError(args ...any) error {
	return NewWrapperError(ErrUnexpected, args...) //errtrace:skip
}

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// IsIncomplete reports whether err signals that more input is required.
func IsIncomplete(err error) bool { return errors.Is(err, ErrIncomplete) }

func Join(errs ...error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0] //errtrace:skip
	}
	return &multiError{errs: errs} //errtrace:skip
}

func JoinPrefix(prefix string, errs ...error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ":"), errs[0]) //errtrace:skip
	}
	return &multiError{prefix: prefix, errs: errs} //errtrace:skip
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	if len(e.errs) == 0 {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(e.prefix)
	for _, err := range e.errs {
		if err == nil {
			continue
		}
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *multiError) Unwrap() []error { return e.errs }

// NewTrailingInputError returns [ErrTokenize] for input left after a complete value.
func NewTrailingInputError() error {
	return NewTokenizeError("tokenizing left trailing input") //errtrace:skip
}
