package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
)

// RecordRoute represents the Record-Route header field.
// The Record-Route header field is inserted by proxies in a request to force future requests in the dialog to be routed through the proxy.
type RecordRoute []NameAddr

// CanonicName returns the canonical name of the header.
func (RecordRoute) CanonicName() Name { return "Record-Route" }

// CompactName returns the compact name of the header (Record-Route has no compact form).
func (RecordRoute) CompactName() Name { return "Record-Route" }

// RenderTo writes the header to the provided writer.
func (hdr RecordRoute) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr RecordRoute) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr RecordRoute) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr RecordRoute) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr RecordRoute) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr RecordRoute) Format(f fmt.State, verb rune) {
	type hideMethods RecordRoute
	type RecordRoute hideMethods
	formatHdr(f, verb, hdr, RecordRoute(hdr))
}

// Clone returns a copy of the header.
func (hdr RecordRoute) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr RecordRoute) Equal(val any) bool {
	var other RecordRoute
	switch v := val.(type) {
	case RecordRoute:
		other = v
	case *RecordRoute:
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
func (hdr RecordRoute) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(addr NameAddr) bool { return !addr.IsValid() })
}

// TokenizeRecordRoute splits comma separated Record-Route entries at the start of in.
func TokenizeRecordRoute(in []byte) (rest []byte, toks []NameAddrTokenizer, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeNameAddr))
}

// RecordRouteFrom converts tokenized Record-Route entries.
func RecordRouteFrom(toks []NameAddrTokenizer) (RecordRoute, error) {
	addrs, err := nameAddrList(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return RecordRoute(addrs), nil
}

// ParseRecordRoute parses the Record-Route header value.
func ParseRecordRoute[T ~string | ~[]byte](s T) (RecordRoute, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeRecordRoute, RecordRouteFrom))
}
