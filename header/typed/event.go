package typed

import (
	"fmt"
	"io"
	"strconv"


	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// TokenWithParamsTokenizer holds a raw token and the parameters following it.
type TokenWithParamsTokenizer struct {
	Token  []byte
	Params []uri.ParamTokenizer
}

// TokenizeTokenWithParams splits "token *(;param)" at the start of in.
func TokenizeTokenWithParams(in []byte) (rest []byte, tok TokenWithParamsTokenizer, err error) {
	var ok bool
	if tok.Token, rest, ok = grammar.CutToken(in); !ok {
		return in, TokenWithParamsTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("token expected"))
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, TokenWithParamsTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

func renderTokenWithParams(w io.Writer, tok string, ps uri.Params) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(tok)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(ps.RenderTo(w, nil)) })
	return errtrace.Wrap2(cw.Result())
}

// Event represents the Event header field.
// The Event header field names the event package of a subscription or notification (RFC 6665).
type Event struct {
	Type   string
	Params uri.Params
}

// ID returns the id parameter.
func (hdr *Event) ID() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Value("id")
}

// CanonicName returns the canonical name of the header.
func (*Event) CanonicName() Name { return "Event" }

// CompactName returns the compact name of the header.
func (*Event) CompactName() Name { return "o" }

// RenderTo writes the header to the provided writer.
func (hdr *Event) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *Event) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTokenWithParams(w, hdr.Type, hdr.Params))
}

// Render returns the string representation of the header.
func (hdr *Event) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *Event) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *Event) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Event) Format(f fmt.State, verb rune) {
	type hideMethods Event
	type Event hideMethods
	formatHdr(f, verb, hdr, (*Event)(hdr))
}

// Clone returns a copy of the header.
func (hdr *Event) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Event{Type: hdr.Type, Params: hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *Event) Equal(val any) bool {
	var other *Event
	switch v := val.(type) {
	case Event:
		other = &v
	case *Event:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.Type, other.Type) && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Event) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.Type) }

// TokenizeEvent splits the Event header value.
func TokenizeEvent(in []byte) (rest []byte, tok TokenWithParamsTokenizer, err error) {
	return errtrace.Wrap3(TokenizeTokenWithParams(in))
}

// EventFrom converts tokenized Event value.
func EventFrom(tok TokenWithParamsTokenizer) (*Event, error) {
	ps, err := uri.ParamsFrom(tok.Params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Event{Type: string(tok.Token), Params: ps}, nil
}

// ParseEvent parses the Event header value.
func ParseEvent[T ~string | ~[]byte](s T) (*Event, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeEvent, EventFrom))
}

// SubscriptionState represents the Subscription-State header field.
// The Subscription-State header field indicates the status of a subscription (RFC 6665).
type SubscriptionState struct {
	State  string
	Params uri.Params
}

// Subscription states of RFC 6665.
const (
	SubStateActive     = "active"
	SubStatePending    = "pending"
	SubStateTerminated = "terminated"
)

// Expires returns the expires parameter in seconds.
func (hdr *SubscriptionState) Expires() (uint32, bool) {
	if hdr == nil {
		return 0, false
	}
	p, ok := hdr.Params.Get("expires")
	if !ok {
		return 0, false
	}
	return p.Uint()
}

// Reason returns the reason parameter.
func (hdr *SubscriptionState) Reason() (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Value("reason")
}

// RetryAfter returns the retry-after parameter in seconds.
func (hdr *SubscriptionState) RetryAfter() (uint32, bool) {
	if hdr == nil {
		return 0, false
	}
	p, ok := hdr.Params.Get("retry-after")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(p.Val(), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// CanonicName returns the canonical name of the header.
func (*SubscriptionState) CanonicName() Name { return "Subscription-State" }

// CompactName returns the compact name of the header (Subscription-State has no compact form).
func (*SubscriptionState) CompactName() Name { return "Subscription-State" }

// RenderTo writes the header to the provided writer.
func (hdr *SubscriptionState) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *SubscriptionState) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTokenWithParams(w, hdr.State, hdr.Params))
}

// Render returns the string representation of the header.
func (hdr *SubscriptionState) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *SubscriptionState) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *SubscriptionState) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *SubscriptionState) Format(f fmt.State, verb rune) {
	type hideMethods SubscriptionState
	type SubscriptionState hideMethods
	formatHdr(f, verb, hdr, (*SubscriptionState)(hdr))
}

// Clone returns a copy of the header.
func (hdr *SubscriptionState) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &SubscriptionState{State: hdr.State, Params: hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *SubscriptionState) Equal(val any) bool {
	var other *SubscriptionState
	switch v := val.(type) {
	case SubscriptionState:
		other = &v
	case *SubscriptionState:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.State, other.State) && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *SubscriptionState) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.State) }

// TokenizeSubscriptionState splits the Subscription-State header value.
func TokenizeSubscriptionState(in []byte) (rest []byte, tok TokenWithParamsTokenizer, err error) {
	return errtrace.Wrap3(TokenizeTokenWithParams(in))
}

// SubscriptionStateFrom converts tokenized Subscription-State value.
func SubscriptionStateFrom(tok TokenWithParamsTokenizer) (*SubscriptionState, error) {
	ps, err := uri.ParamsFrom(tok.Params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &SubscriptionState{State: string(tok.Token), Params: ps}, nil
}

// ParseSubscriptionState parses the Subscription-State header value.
func ParseSubscriptionState[T ~string | ~[]byte](s T) (*SubscriptionState, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeSubscriptionState, SubscriptionStateFrom))
}
