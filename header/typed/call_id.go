package typed

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// CallID represents the Call-ID header field.
// The Call-ID header field uniquely identifies a particular invitation or all registrations of a particular client.
type CallID string

// CanonicName returns the canonical name of the header.
func (CallID) CanonicName() Name { return "Call-ID" }

// CompactName returns the compact name of the header.
func (CallID) CompactName() Name { return "i" }

// RenderTo writes the header to the provided writer.
func (hdr CallID) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr CallID) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

// Render returns the string representation of the header.
func (hdr CallID) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr CallID) RenderValue() string { return string(hdr) }

// String returns the string representation of the header value.
func (hdr CallID) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CallID) Format(f fmt.State, verb rune) {
	type hideMethods CallID
	type CallID hideMethods
	formatHdr(f, verb, hdr, CallID(hdr))
}

// Clone returns a copy of the header.
func (hdr CallID) Clone() Header { return hdr }

// Equal compares Call-IDs byte by byte, they are case-sensitive.
func (hdr CallID) Equal(val any) bool {
	switch v := val.(type) {
	case CallID:
		return hdr == v
	case *CallID:
		return v != nil && hdr == *v
	default:
		return false
	}
}

// IsValid checks whether the header is syntactically valid.
func (hdr CallID) IsValid() bool {
	rest, _, err := TokenizeCallID([]byte(hdr))
	return err == nil && len(rest) == 0
}

func isWordChar(c byte) bool {
	if grammar.IsAlphanumChar(c) {
		return true
	}
	return strings.IndexByte("-.!%*_+`'~()<>:\\\"/[]?{}", c) >= 0
}

// TokenizeCallID splits word["@"word] at the start of in.
func TokenizeCallID(in []byte) (rest, tok []byte, err error) {
	n := grammar.IndexFunc(in, func(c byte) bool { return !isWordChar(c) })
	if n == 0 {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("call-id expected"))
	}
	if n < len(in) && in[n] == '@' {
		m := grammar.IndexFunc(in[n+1:], func(c byte) bool { return !isWordChar(c) })
		if m == 0 {
			return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("call-id host expected"))
		}
		n += m + 1
	}
	return in[n:], in[:n], nil
}

// CallIDFrom converts tokenized Call-ID.
func CallIDFrom(tok []byte) (CallID, error) { return CallID(tok), nil }

// ParseCallID parses the Call-ID header value.
func ParseCallID[T ~string | ~[]byte](s T) (CallID, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeCallID, CallIDFrom))
}

// InReplyTo represents the In-Reply-To header field.
// The In-Reply-To header field enumerates the Call-IDs that this call references or returns.
type InReplyTo []CallID

// CanonicName returns the canonical name of the header.
func (InReplyTo) CanonicName() Name { return "In-Reply-To" }

// CompactName returns the compact name of the header (In-Reply-To has no compact form).
func (InReplyTo) CompactName() Name { return "In-Reply-To" }

// RenderTo writes the header to the provided writer.
func (hdr InReplyTo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr InReplyTo) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr InReplyTo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr InReplyTo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr InReplyTo) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr InReplyTo) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr InReplyTo) Equal(val any) bool {
	var other InReplyTo
	switch v := val.(type) {
	case InReplyTo:
		other = v
	case *InReplyTo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr InReplyTo) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(id CallID) bool { return !id.IsValid() })
}

// TokenizeInReplyTo splits comma separated Call-IDs.
func TokenizeInReplyTo(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeCallID))
}

// InReplyToFrom converts tokenized In-Reply-To value.
func InReplyToFrom(toks [][]byte) (InReplyTo, error) {
	ids, err := convertList(toks, CallIDFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return InReplyTo(ids), nil
}

// ParseInReplyTo parses the In-Reply-To header value.
func ParseInReplyTo[T ~string | ~[]byte](s T) (InReplyTo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeInReplyTo, InReplyToFrom))
}
