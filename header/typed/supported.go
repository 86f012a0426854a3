package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// Supported represents the Supported header field.
// The Supported header field enumerates all the extensions supported by the UAC or UAS.
type Supported TokenList

// CanonicName returns the canonical name of the header.
func (Supported) CanonicName() Name { return "Supported" }

// CompactName returns the compact name of the header.
func (Supported) CompactName() Name { return "k" }

// RenderTo writes the header to the provided writer.
func (hdr Supported) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr Supported) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Supported) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr Supported) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Supported) Format(f fmt.State, verb rune) {
	type hideMethods Supported
	type Supported hideMethods
	formatHdr(f, verb, hdr, Supported(hdr))
}

// Contains reports whether the header lists the token.
func (hdr Supported) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr Supported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Supported) Equal(val any) bool {
	var other Supported
	switch v := val.(type) {
	case Supported:
		other = v
	case *Supported:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return TokenList(hdr).Equal(TokenList(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr Supported) IsValid() bool { return TokenList(hdr).isValid(true) }

// TokenizeSupported splits the Supported header value.
func TokenizeSupported(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeOptTokenList(in))
}

// SupportedFrom converts tokenized Supported value.
func SupportedFrom(toks [][]byte) (Supported, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Supported(l), nil
}

// ParseSupported parses the Supported header value.
func ParseSupported[T ~string | ~[]byte](s T) (Supported, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeSupported, SupportedFrom))
}
