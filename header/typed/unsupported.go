package typed

import (
	"io"
	"slices"

	"braces.dev/errtrace"
)

// Unsupported represents the Unsupported header field.
// The Unsupported header field lists the features not supported by the UAS.
type Unsupported TokenList

// CanonicName returns the canonical name of the header.
func (Unsupported) CanonicName() Name { return "Unsupported" }

// CompactName returns the compact name of the header (Unsupported has no compact form).
func (Unsupported) CompactName() Name { return "Unsupported" }

// RenderTo writes the header to the provided writer.
func (hdr Unsupported) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr Unsupported) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Unsupported) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr Unsupported) String() string { return hdr.RenderValue() }

// Contains reports whether the header lists the token.
func (hdr Unsupported) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr Unsupported) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Unsupported) Equal(val any) bool {
	var other Unsupported
	switch v := val.(type) {
	case Unsupported:
		other = v
	case *Unsupported:
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
func (hdr Unsupported) IsValid() bool { return TokenList(hdr).isValid(false) }

// TokenizeUnsupported splits the Unsupported header value.
func TokenizeUnsupported(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeTokenList(in))
}

// UnsupportedFrom converts tokenized Unsupported value.
func UnsupportedFrom(toks [][]byte) (Unsupported, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Unsupported(l), nil
}

// ParseUnsupported parses the Unsupported header value.
func ParseUnsupported[T ~string | ~[]byte](s T) (Unsupported, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeUnsupported, UnsupportedFrom))
}
