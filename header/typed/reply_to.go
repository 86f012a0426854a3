package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// ReplyTo represents the Reply-To header field.
// The Reply-To header field contains a logical return URI that may be different from the From header field.
type ReplyTo struct {
	NameAddr
}

// CanonicName returns the canonical name of the header.
func (*ReplyTo) CanonicName() Name { return "Reply-To" }

// CompactName returns the compact name of the header (Reply-To has no compact form).
func (*ReplyTo) CompactName() Name { return "Reply-To" }

// RenderTo writes the header to the provided writer.
func (hdr *ReplyTo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *ReplyTo) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.NameAddr.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *ReplyTo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *ReplyTo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *ReplyTo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ReplyTo) Format(f fmt.State, verb rune) {
	type hideMethods ReplyTo
	type ReplyTo hideMethods
	formatHdr(f, verb, hdr, (*ReplyTo)(hdr))
}

// Clone returns a copy of the header.
func (hdr *ReplyTo) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ReplyTo{NameAddr: hdr.NameAddr.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ReplyTo) Equal(val any) bool {
	var other *ReplyTo
	switch v := val.(type) {
	case ReplyTo:
		other = &v
	case *ReplyTo:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.NameAddr.Equal(other.NameAddr)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ReplyTo) IsValid() bool { return hdr != nil && hdr.NameAddr.IsValid() }

// TokenizeReplyTo splits the Reply-To header value at the start of in.
func TokenizeReplyTo(in []byte) (rest []byte, tok NameAddrTokenizer, err error) {
	return errtrace.Wrap3(TokenizeNameAddr(in))
}

// ReplyToFrom converts tokenized Reply-To header value.
func ReplyToFrom(tok NameAddrTokenizer) (*ReplyTo, error) {
	addr, err := NameAddrFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ReplyTo{NameAddr: addr}, nil
}

// ParseReplyTo parses the Reply-To header value.
func ParseReplyTo[T ~string | ~[]byte](s T) (*ReplyTo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeReplyTo, ReplyToFrom))
}
