package types

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

const (
	RequestMethodAck       RequestMethod = "ACK"
	RequestMethodBye       RequestMethod = "BYE"
	RequestMethodCancel    RequestMethod = "CANCEL"
	RequestMethodInfo      RequestMethod = "INFO"
	RequestMethodInvite    RequestMethod = "INVITE"
	RequestMethodMessage   RequestMethod = "MESSAGE"
	RequestMethodNotify    RequestMethod = "NOTIFY"
	RequestMethodOptions   RequestMethod = "OPTIONS"
	RequestMethodPrack     RequestMethod = "PRACK"
	RequestMethodPublish   RequestMethod = "PUBLISH"
	RequestMethodRefer     RequestMethod = "REFER"
	RequestMethodRegister  RequestMethod = "REGISTER"
	RequestMethodSubscribe RequestMethod = "SUBSCRIBE"
	RequestMethodUpdate    RequestMethod = "UPDATE"
)

var knownMethods = map[string]RequestMethod{
	"ACK":       RequestMethodAck,
	"BYE":       RequestMethodBye,
	"CANCEL":    RequestMethodCancel,
	"INFO":      RequestMethodInfo,
	"INVITE":    RequestMethodInvite,
	"MESSAGE":   RequestMethodMessage,
	"NOTIFY":    RequestMethodNotify,
	"OPTIONS":   RequestMethodOptions,
	"PRACK":     RequestMethodPrack,
	"PUBLISH":   RequestMethodPublish,
	"REFER":     RequestMethodRefer,
	"REGISTER":  RequestMethodRegister,
	"SUBSCRIBE": RequestMethodSubscribe,
	"UPDATE":    RequestMethodUpdate,
}

// RequestMethod is a SIP method name. Extension methods are kept verbatim.
type RequestMethod string

func (m RequestMethod) ToUpper() RequestMethod { return util.UCase(m) }

func (m RequestMethod) ToLower() RequestMethod { return util.LCase(m) }

func (m RequestMethod) IsValid() bool { return grammar.IsToken(m) }

// IsKnown reports whether m is one of the methods defined by RFC 3261 and its extensions.
func (m RequestMethod) IsKnown() bool {
	_, ok := knownMethods[string(m)]
	return ok
}

func (m RequestMethod) String() string { return string(m) }

func (m RequestMethod) Equal(val any) bool {
	var other RequestMethod
	switch v := val.(type) {
	case RequestMethod:
		other = v
	case *RequestMethod:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(m, other)
}

// MethodTokenizer holds the raw method token.
type MethodTokenizer struct {
	Value []byte
}

// TokenizeMethod splits the method token at the start of in.
func TokenizeMethod(in []byte) (rest []byte, tok MethodTokenizer, err error) {
	v, rest, ok := grammar.CutToken(in)
	if !ok {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("method token expected"))
	}
	return rest, MethodTokenizer{Value: v}, nil
}

// MethodFrom converts tokenized method.
// Known methods are matched case-insensitively and normalized to upper case.
func MethodFrom(tok MethodTokenizer) (RequestMethod, error) {
	if !grammar.IsToken(tok.Value) {
		return "", errtrace.Wrap(errorutil.NewParseError("invalid method %q", tok.Value))
	}
	for k, m := range knownMethods {
		if util.EqFoldBytes(k, tok.Value) {
			return m, nil
		}
	}
	return RequestMethod(tok.Value), nil
}

// ParseMethod parses a method name.
func ParseMethod[T ~string | ~[]byte](s T) (RequestMethod, error) {
	return errtrace.Wrap2(MethodFrom(MethodTokenizer{Value: []byte(s)}))
}
