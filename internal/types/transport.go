package types

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

const (
	TransportProtoUDP     TransportProto = "UDP"
	TransportProtoTCP     TransportProto = "TCP"
	TransportProtoTLS     TransportProto = "TLS"
	TransportProtoSCTP    TransportProto = "SCTP"
	TransportProtoTLSSCTP TransportProto = "TLS-SCTP"
	TransportProtoWS      TransportProto = "WS"
	TransportProtoWSS     TransportProto = "WSS"
)

// TransportProto is a transport name as used in Via and the transport URI parameter.
// Values are stored in upper case. Unknown tokens are extension transports.
type TransportProto string

func (p TransportProto) ToUpper() TransportProto { return util.UCase(p) }

func (p TransportProto) ToLower() TransportProto { return util.LCase(p) }

func (p TransportProto) IsValid() bool { return grammar.IsToken(p) }

func (p TransportProto) IsKnown() bool {
	switch p.ToUpper() {
	case TransportProtoUDP, TransportProtoTCP, TransportProtoTLS, TransportProtoSCTP,
		TransportProtoTLSSCTP, TransportProtoWS, TransportProtoWSS:
		return true
	}
	return false
}

// IsReliable reports whether the transport is connection oriented.
func (p TransportProto) IsReliable() bool {
	p = p.ToUpper()
	return p.IsKnown() && p != TransportProtoUDP
}

// IsSecured reports whether the transport runs over TLS.
func (p TransportProto) IsSecured() bool {
	switch p.ToUpper() {
	case TransportProtoTLS, TransportProtoTLSSCTP, TransportProtoWSS:
		return true
	}
	return false
}

func (p TransportProto) String() string { return string(p) }

func (p TransportProto) Equal(val any) bool {
	var other TransportProto
	switch v := val.(type) {
	case TransportProto:
		other = v
	case *TransportProto:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(p, other)
}

// TransportTokenizer holds the raw transport token.
type TransportTokenizer struct {
	Value []byte
}

func TokenizeTransport(in []byte) (rest []byte, tok TransportTokenizer, err error) {
	v, rest, ok := grammar.CutToken(in)
	if !ok {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("transport token expected"))
	}
	return rest, TransportTokenizer{Value: v}, nil
}

// TransportFrom converts tokenized transport, normalizing it to upper case.
func TransportFrom(tok TransportTokenizer) (TransportProto, error) {
	if !grammar.IsToken(tok.Value) {
		return "", errtrace.Wrap(errorutil.NewParseError("invalid transport %q", tok.Value))
	}
	return TransportProto(tok.Value).ToUpper(), nil
}

func ParseTransport[T ~string | ~[]byte](s T) (TransportProto, error) {
	return errtrace.Wrap2(TransportFrom(TransportTokenizer{Value: []byte(s)}))
}
