package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// ContentEncoding represents the Content-Encoding header field.
// The Content-Encoding header field is used as a modifier to the media-type.
type ContentEncoding TokenList

// CanonicName returns the canonical name of the header.
func (ContentEncoding) CanonicName() Name { return "Content-Encoding" }

// CompactName returns the compact name of the header.
func (ContentEncoding) CompactName() Name { return "e" }

// RenderTo writes the header to the provided writer.
func (hdr ContentEncoding) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr ContentEncoding) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentEncoding) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr ContentEncoding) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ContentEncoding) Format(f fmt.State, verb rune) {
	type hideMethods ContentEncoding
	type ContentEncoding hideMethods
	formatHdr(f, verb, hdr, ContentEncoding(hdr))
}

// Contains reports whether the header lists the token.
func (hdr ContentEncoding) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr ContentEncoding) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ContentEncoding) Equal(val any) bool {
	var other ContentEncoding
	switch v := val.(type) {
	case ContentEncoding:
		other = v
	case *ContentEncoding:
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
func (hdr ContentEncoding) IsValid() bool { return TokenList(hdr).isValid(false) }

// TokenizeContentEncoding splits the Content-Encoding header value.
func TokenizeContentEncoding(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeTokenList(in))
}

// ContentEncodingFrom converts tokenized Content-Encoding value.
func ContentEncodingFrom(toks [][]byte) (ContentEncoding, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ContentEncoding(l), nil
}

// ParseContentEncoding parses the Content-Encoding header value.
func ParseContentEncoding[T ~string | ~[]byte](s T) (ContentEncoding, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeContentEncoding, ContentEncodingFrom))
}
