package typed

import (
	"io"
	"slices"

	"braces.dev/errtrace"
)

// Require represents the Require header field.
// The Require header field is used by UACs to tell UASs about options that the UAC expects the UAS to support.
type Require TokenList

// CanonicName returns the canonical name of the header.
func (Require) CanonicName() Name { return "Require" }

// CompactName returns the compact name of the header (Require has no compact form).
func (Require) CompactName() Name { return "Require" }

// RenderTo writes the header to the provided writer.
func (hdr Require) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr Require) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Require) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr Require) String() string { return hdr.RenderValue() }

// Contains reports whether the header lists the token.
func (hdr Require) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr Require) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Require) Equal(val any) bool {
	var other Require
	switch v := val.(type) {
	case Require:
		other = v
	case *Require:
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
func (hdr Require) IsValid() bool { return TokenList(hdr).isValid(false) }

// TokenizeRequire splits the Require header value.
func TokenizeRequire(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeTokenList(in))
}

// RequireFrom converts tokenized Require value.
func RequireFrom(toks [][]byte) (Require, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Require(l), nil
}

// ParseRequire parses the Require header value.
func ParseRequire[T ~string | ~[]byte](s T) (Require, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeRequire, RequireFrom))
}
