// Package sip assembles SIP requests and responses from start lines, header lines and bodies.
//
// [Parse] handles a complete message held in memory, [Tokenize] splits a message head
// without converting it and reports [ErrIncomplete] when more bytes are needed.
// [Decoder] frames messages off a byte stream or a sequence of datagrams.
package sip

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -typed -destination sipmock/handler.go -package sipmock . Handler

import (
	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

type (
	// RequestMethod represents a SIP request method.
	// See [types.RequestMethod].
	RequestMethod = types.RequestMethod
	// ProtoVersion represents a SIP protocol version.
	ProtoVersion = types.ProtoVersion
	// ResponseStatus represents a SIP response status code.
	ResponseStatus = types.ResponseStatus
	ResponseReason = types.ResponseReason
	// StatusKind is a class of status codes, see [ResponseStatus.Kind].
	StatusKind     = types.StatusKind
	TransportProto = types.TransportProto
	RenderOptions  = types.RenderOptions

	Header  = header.Header
	Headers = header.Headers
	URI     = uri.URI
)

// Request method constants.
const (
	RequestMethodAck       = types.RequestMethodAck
	RequestMethodBye       = types.RequestMethodBye
	RequestMethodCancel    = types.RequestMethodCancel
	RequestMethodInfo      = types.RequestMethodInfo
	RequestMethodInvite    = types.RequestMethodInvite
	RequestMethodMessage   = types.RequestMethodMessage
	RequestMethodNotify    = types.RequestMethodNotify
	RequestMethodOptions   = types.RequestMethodOptions
	RequestMethodPrack     = types.RequestMethodPrack
	RequestMethodPublish   = types.RequestMethodPublish
	RequestMethodRefer     = types.RequestMethodRefer
	RequestMethodRegister  = types.RequestMethodRegister
	RequestMethodSubscribe = types.RequestMethodSubscribe
	RequestMethodUpdate    = types.RequestMethodUpdate
)

// Frequently used status codes, the full table lives in [types].
const (
	ResponseStatusTrying                      = types.ResponseStatusTrying
	ResponseStatusRinging                     = types.ResponseStatusRinging
	ResponseStatusSessionProgress             = types.ResponseStatusSessionProgress
	ResponseStatusOK                          = types.ResponseStatusOK
	ResponseStatusAccepted                    = types.ResponseStatusAccepted
	ResponseStatusMovedTemporarily            = types.ResponseStatusMovedTemporarily
	ResponseStatusBadRequest                  = types.ResponseStatusBadRequest
	ResponseStatusUnauthorized                = types.ResponseStatusUnauthorized
	ResponseStatusForbidden                   = types.ResponseStatusForbidden
	ResponseStatusNotFound                    = types.ResponseStatusNotFound
	ResponseStatusMethodNotAllowed            = types.ResponseStatusMethodNotAllowed
	ResponseStatusProxyAuthenticationRequired = types.ResponseStatusProxyAuthenticationRequired
	ResponseStatusRequestTimeout              = types.ResponseStatusRequestTimeout
	ResponseStatusRequestEntityTooLarge       = types.ResponseStatusRequestEntityTooLarge
	ResponseStatusIntervalTooBrief            = types.ResponseStatusIntervalTooBrief
	ResponseStatusCallTransactionDoesNotExist = types.ResponseStatusCallTransactionDoesNotExist
	ResponseStatusLoopDetected                = types.ResponseStatusLoopDetected
	ResponseStatusBusyHere                    = types.ResponseStatusBusyHere
	ResponseStatusRequestTerminated           = types.ResponseStatusRequestTerminated
	ResponseStatusServerInternalError         = types.ResponseStatusServerInternalError
	ResponseStatusServiceUnavailable          = types.ResponseStatusServiceUnavailable
	ResponseStatusBusyEverywhere              = types.ResponseStatusBusyEverywhere
	ResponseStatusDecline                     = types.ResponseStatusDecline
)

const (
	StatusKindOther          = types.StatusKindOther
	StatusKindProvisional    = types.StatusKindProvisional
	StatusKindSuccessful     = types.StatusKindSuccessful
	StatusKindRedirection    = types.StatusKindRedirection
	StatusKindRequestFailure = types.StatusKindRequestFailure
	StatusKindServerFailure  = types.StatusKindServerFailure
	StatusKindGlobalFailure  = types.StatusKindGlobalFailure
)

var (
	V1 = types.V1
	V2 = types.V2
)
