package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// From represents the From header field.
// The From header field indicates the initiator of the request.
type From struct {
	NameAddr
}

// CanonicName returns the canonical name of the header.
func (*From) CanonicName() Name { return "From" }

// CompactName returns the compact name of the header.
func (*From) CompactName() Name { return "f" }

// RenderTo writes the header to the provided writer.
func (hdr *From) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *From) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.NameAddr.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *From) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *From) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *From) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *From) Format(f fmt.State, verb rune) {
	type hideMethods From
	type From hideMethods
	formatHdr(f, verb, hdr, (*From)(hdr))
}

// Clone returns a copy of the header.
func (hdr *From) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &From{NameAddr: hdr.NameAddr.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *From) Equal(val any) bool {
	var other *From
	switch v := val.(type) {
	case From:
		other = &v
	case *From:
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
func (hdr *From) IsValid() bool { return hdr != nil && hdr.NameAddr.IsValid() }

// TokenizeFrom splits the From header value at the start of in.
func TokenizeFrom(in []byte) (rest []byte, tok NameAddrTokenizer, err error) {
	return errtrace.Wrap3(TokenizeNameAddr(in))
}

// FromFrom converts tokenized From header value.
func FromFrom(tok NameAddrTokenizer) (*From, error) {
	addr, err := NameAddrFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &From{NameAddr: addr}, nil
}

// ParseFrom parses the From header value.
func ParseFrom[T ~string | ~[]byte](s T) (*From, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeFrom, FromFrom))
}
