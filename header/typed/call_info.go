package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/uri"
)

// CallInfo represents the Call-Info header field.
// The Call-Info header field provides additional information about the caller or callee.
type CallInfo []uri.WithParams

// CanonicName returns the canonical name of the header.
func (CallInfo) CanonicName() Name { return "Call-Info" }

// CompactName returns the compact name of the header (Call-Info has no compact form).
func (CallInfo) CompactName() Name { return "Call-Info" }

// RenderTo writes the header to the provided writer.
func (hdr CallInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr CallInfo) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(uri.WithParamsList(hdr).RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr CallInfo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr CallInfo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr CallInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr CallInfo) Format(f fmt.State, verb rune) {
	type hideMethods CallInfo
	type CallInfo hideMethods
	formatHdr(f, verb, hdr, CallInfo(hdr))
}

// Clone returns a copy of the header.
func (hdr CallInfo) Clone() Header { return CallInfo(uri.WithParamsList(hdr).Clone()) }

// Equal compares this header with another for equality.
func (hdr CallInfo) Equal(val any) bool {
	var other CallInfo
	switch v := val.(type) {
	case CallInfo:
		other = v
	case *CallInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return uri.WithParamsList(hdr).Equal(uri.WithParamsList(other))
}

// IsValid checks whether the header is syntactically valid.
func (hdr CallInfo) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(wp uri.WithParams) bool { return !wp.IsValid() })
}

// TokenizeCallInfo splits comma separated Call-Info entries.
func TokenizeCallInfo(in []byte) (rest []byte, toks []uri.WithParamsTokenizer, err error) {
	return errtrace.Wrap3(uri.TokenizeWithParamsList(in))
}

// CallInfoFrom converts tokenized Call-Info entries.
func CallInfoFrom(toks []uri.WithParamsTokenizer) (CallInfo, error) {
	l, err := uri.WithParamsListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return CallInfo(l), nil
}

// ParseCallInfo parses the Call-Info header value.
func ParseCallInfo[T ~string | ~[]byte](s T) (CallInfo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeCallInfo, CallInfoFrom))
}
