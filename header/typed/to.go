package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// To represents the To header field.
// The To header field specifies the logical recipient of the request.
type To struct {
	NameAddr
}

// CanonicName returns the canonical name of the header.
func (*To) CanonicName() Name { return "To" }

// CompactName returns the compact name of the header.
func (*To) CompactName() Name { return "t" }

// RenderTo writes the header to the provided writer.
func (hdr *To) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *To) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.NameAddr.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *To) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *To) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *To) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *To) Format(f fmt.State, verb rune) {
	type hideMethods To
	type To hideMethods
	formatHdr(f, verb, hdr, (*To)(hdr))
}

// Clone returns a copy of the header.
func (hdr *To) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &To{NameAddr: hdr.NameAddr.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *To) Equal(val any) bool {
	var other *To
	switch v := val.(type) {
	case To:
		other = &v
	case *To:
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
func (hdr *To) IsValid() bool { return hdr != nil && hdr.NameAddr.IsValid() }

// TokenizeTo splits the To header value at the start of in.
func TokenizeTo(in []byte) (rest []byte, tok NameAddrTokenizer, err error) {
	return errtrace.Wrap3(TokenizeNameAddr(in))
}

// ToFrom converts tokenized To header value.
func ToFrom(tok NameAddrTokenizer) (*To, error) {
	addr, err := NameAddrFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &To{NameAddr: addr}, nil
}

// ParseTo parses the To header value.
func ParseTo[T ~string | ~[]byte](s T) (*To, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeTo, ToFrom))
}
