package typed

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// Expires represents the Expires header field.
// The Expires header field gives the relative time after which the message (or content) expires.
type Expires uint32

// CanonicName returns the canonical name of the header.
func (Expires) CanonicName() Name { return "Expires" }

// CompactName returns the compact name of the header (Expires has no compact form).
func (Expires) CompactName() Name { return "Expires" }

// RenderTo writes the header to the provided writer.
func (hdr Expires) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Expires) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, hdr.String()))
}

// Render returns the string representation of the header.
func (hdr Expires) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Expires) RenderValue() string { return strconv.FormatUint(uint64(hdr), 10) }

// String returns the string representation of the header value.
func (hdr Expires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Expires) Format(f fmt.State, verb rune) {
	type hideMethods Expires
	type Expires hideMethods
	formatHdr(f, verb, hdr, Expires(hdr))
}

// Clone returns a copy of the header.
func (hdr Expires) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr Expires) Equal(val any) bool {
	switch v := val.(type) {
	case Expires:
		return hdr == v
	case *Expires:
		return v != nil && hdr == *v
	default:
		return false
	}
}

// IsValid checks whether the header is syntactically valid.
func (Expires) IsValid() bool { return true }

// TokenizeExpires splits the Expires header value.
func TokenizeExpires(in []byte) (rest, tok []byte, err error) {
	return errtrace.Wrap3(TokenizeNumber(in))
}

// ExpiresFrom converts tokenized Expires value.
func ExpiresFrom(tok []byte) (Expires, error) {
	v, err := parseUint32(tok)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return Expires(v), nil
}

// ParseExpires parses the Expires header value.
func ParseExpires[T ~string | ~[]byte](s T) (Expires, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeExpires, ExpiresFrom))
}
