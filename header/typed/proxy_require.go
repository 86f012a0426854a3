package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// ProxyRequire represents the Proxy-Require header field.
// The Proxy-Require header field is used to indicate proxy-sensitive features that must be supported by the proxy.
type ProxyRequire TokenList

// CanonicName returns the canonical name of the header.
func (ProxyRequire) CanonicName() Name { return "Proxy-Require" }

// CompactName returns the compact name of the header (Proxy-Require has no compact form).
func (ProxyRequire) CompactName() Name { return "Proxy-Require" }

// RenderTo writes the header to the provided writer.
func (hdr ProxyRequire) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, TokenList(hdr).renderTo))
}

// Render returns the string representation of the header.
func (hdr ProxyRequire) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ProxyRequire) RenderValue() string { return TokenList(hdr).String() }

// String returns the string representation of the header value.
func (hdr ProxyRequire) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ProxyRequire) Format(f fmt.State, verb rune) {
	type hideMethods ProxyRequire
	type ProxyRequire hideMethods
	formatHdr(f, verb, hdr, ProxyRequire(hdr))
}

// Contains reports whether the header lists the token.
func (hdr ProxyRequire) Contains(tok string) bool { return TokenList(hdr).Contains(tok) }

// Clone returns a copy of the header.
func (hdr ProxyRequire) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr ProxyRequire) Equal(val any) bool {
	var other ProxyRequire
	switch v := val.(type) {
	case ProxyRequire:
		other = v
	case *ProxyRequire:
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
func (hdr ProxyRequire) IsValid() bool { return TokenList(hdr).isValid(false) }

// TokenizeProxyRequire splits the Proxy-Require header value.
func TokenizeProxyRequire(in []byte) (rest []byte, toks [][]byte, err error) {
	return errtrace.Wrap3(TokenizeTokenList(in))
}

// ProxyRequireFrom converts tokenized Proxy-Require value.
func ProxyRequireFrom(toks [][]byte) (ProxyRequire, error) {
	l, err := TokenListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ProxyRequire(l), nil
}

// ParseProxyRequire parses the Proxy-Require header value.
func ParseProxyRequire[T ~string | ~[]byte](s T) (ProxyRequire, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeProxyRequire, ProxyRequireFrom))
}
