package typed

import (
	"io"
	"slices"

	"braces.dev/errtrace"
)

// ContentLanguage represents the Content-Language header field.
// The Content-Language header field lists the natural languages of the message body.
type ContentLanguage TokenList

// CanonicName returns the canonical name of the header.
func (ContentLanguage) CanonicName() Name { return "Content-Language" }

// CompactName returns the compact name of the header (Content-Language has no compact form).
func (ContentLanguage) CompactName() Name { return "Content-Language" }

// RenderTo writes the header to the provided writer.
func (hdr ContentLanguage) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr ContentLanguage) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ContentLanguage) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr ContentLanguage) String() string { return hdr.RenderValue() }

// Contains reports whether the header lists the token.
func (hdr ContentLanguage) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr ContentLanguage) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ContentLanguage) Equal(val any) bool {
	var other ContentLanguage
	switch v := val.(type) {
	case ContentLanguage:
		other = v
	case *ContentLanguage:
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
func (hdr ContentLanguage) IsValid() bool { return TokenList(hdr).isValid(false) }

// TokenizeContentLanguage splits the Content-Language header value.
func TokenizeContentLanguage(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeTokenList(in))
}

// ContentLanguageFrom converts tokenized Content-Language value.
func ContentLanguageFrom(toks [][]byte) (ContentLanguage, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ContentLanguage(l), nil
}

// ParseContentLanguage parses the Content-Language header value.
func ParseContentLanguage[T ~string | ~[]byte](s T) (ContentLanguage, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeContentLanguage, ContentLanguageFrom))
}
