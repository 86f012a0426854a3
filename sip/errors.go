package sip

import "github.com/ghettovoice/sipmsg/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	ErrMissingHeader   = errorutil.ErrMissingHeader
	ErrInvalidParam    = errorutil.ErrInvalidParam
	ErrParse           = errorutil.ErrParse
	ErrTokenize        = errorutil.ErrTokenize
	ErrUtf8            = errorutil.ErrUtf8
	ErrUnexpected      = errorutil.ErrUnexpected
	// ErrIncomplete asks the caller to buffer more bytes and parse again from the start.
	ErrIncomplete = errorutil.ErrIncomplete
)

// Message errors.
const (
	ErrInvalidMessage  Error = "invalid message"
	ErrMessageTooLarge Error = "message too large"
)

// Error represents a SIP error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

// NewInvalidMessageError creates a new error with [ErrInvalidMessage] or
// wraps provided error with [ErrInvalidMessage].
func NewInvalidMessageError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidMessage, args...) //errtrace:skip
}

// IsIncomplete reports whether err asks for more input.
func IsIncomplete(err error) bool { return errorutil.IsIncomplete(err) }
