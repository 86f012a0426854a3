package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// Route represents the Route header field.
// The Route header field is used to force routing for a request through the listed set of proxies.
type Route []NameAddr

// CanonicName returns the canonical name of the header.
func (Route) CanonicName() Name { return "Route" }

// CompactName returns the compact name of the header (Route has no compact form).
func (Route) CompactName() Name { return "Route" }

// RenderTo writes the header to the provided writer.
func (hdr Route) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Route) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Route) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Route) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Route) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Route) Format(f fmt.State, verb rune) {
	type hideMethods Route
	type Route hideMethods
	formatHdr(f, verb, hdr, Route(hdr))
}

// Clone returns a copy of the header.
func (hdr Route) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Route) Equal(val any) bool {
	var other Route
	switch v := val.(type) {
	case Route:
		other = v
	case *Route:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalHdrEntries(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Route) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(addr NameAddr) bool { return !addr.IsValid() })
}

// TokenizeRoute splits comma separated Route entries at the start of in.
func TokenizeRoute(in []byte) (rest []byte, toks []NameAddrTokenizer, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeNameAddr))
}

// RouteFrom converts tokenized Route entries.
func RouteFrom(toks []NameAddrTokenizer) (Route, error) {
	addrs, err := nameAddrList(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Route(addrs), nil
}

// ParseRoute parses the Route header value.
func ParseRoute[T ~string | ~[]byte](s T) (Route, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeRoute, RouteFrom))
}
