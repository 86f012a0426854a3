package typed

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
)

// MinExpires represents the Min-Expires header field.
// The Min-Expires header field conveys the minimum refresh interval supported for soft-state elements managed by that server.
type MinExpires uint32

// CanonicName returns the canonical name of the header.
func (MinExpires) CanonicName() Name { return "Min-Expires" }

// CompactName returns the compact name of the header (Min-Expires has no compact form).
func (MinExpires) CompactName() Name { return "Min-Expires" }

// RenderTo writes the header to the provided writer.
func (hdr MinExpires) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr MinExpires) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, hdr.String()))
}

// Render returns the string representation of the header.
func (hdr MinExpires) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr MinExpires) RenderValue() string { return strconv.FormatUint(uint64(hdr), 10) }

// String returns the string representation of the header value.
func (hdr MinExpires) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr MinExpires) Format(f fmt.State, verb rune) {
	type hideMethods MinExpires
	type MinExpires hideMethods
	formatHdr(f, verb, hdr, MinExpires(hdr))
}

// Clone returns a copy of the header.
func (hdr MinExpires) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr MinExpires) Equal(val any) bool {
	switch v := val.(type) {
	case MinExpires:
		return hdr == v
	case *MinExpires:
		return v != nil && hdr == *v
	default:
		return false
	}
}

// IsValid checks whether the header is syntactically valid.
func (MinExpires) IsValid() bool { return true }

// TokenizeMinExpires splits the Min-Expires header value.
func TokenizeMinExpires(in []byte) (rest, tok []byte, err error) {
	return errtrace.Wrap3(TokenizeNumber(in))
}

// MinExpiresFrom converts tokenized Min-Expires value.
func MinExpiresFrom(tok []byte) (MinExpires, error) {
	v, err := parseUint32(tok)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return MinExpires(v), nil
}

// ParseMinExpires parses the Min-Expires header value.
func ParseMinExpires[T ~string | ~[]byte](s T) (MinExpires, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeMinExpires, MinExpiresFrom))
}
