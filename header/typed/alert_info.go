package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/uri"
)

// AlertInfo represents the Alert-Info header field.
// The Alert-Info header field specifies an alternative ring tone to the UAS or ringback tone to the UAC.
type AlertInfo []uri.WithParams

// CanonicName returns the canonical name of the header.
func (AlertInfo) CanonicName() Name { return "Alert-Info" }

// CompactName returns the compact name of the header (Alert-Info has no compact form).
func (AlertInfo) CompactName() Name { return "Alert-Info" }

// RenderTo writes the header to the provided writer.
func (hdr AlertInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr AlertInfo) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(uri.WithParamsList(hdr).RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr AlertInfo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AlertInfo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AlertInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr AlertInfo) Format(f fmt.State, verb rune) {
	type hideMethods AlertInfo
	type AlertInfo hideMethods
	formatHdr(f, verb, hdr, AlertInfo(hdr))
}

// Clone returns a copy of the header.
func (hdr AlertInfo) Clone() Header { return AlertInfo(uri.WithParamsList(hdr).Clone()) }

// Equal compares this header with another for equality.
func (hdr AlertInfo) Equal(val any) bool {
	var other AlertInfo
	switch v := val.(type) {
	case AlertInfo:
		other = v
	case *AlertInfo:
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
func (hdr AlertInfo) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(wp uri.WithParams) bool { return !wp.IsValid() })
}

// TokenizeAlertInfo splits comma separated Alert-Info entries.
func TokenizeAlertInfo(in []byte) (rest []byte, toks []uri.WithParamsTokenizer, err error) {
	return errtrace.Wrap3(uri.TokenizeWithParamsList(in))
}

// AlertInfoFrom converts tokenized Alert-Info entries.
func AlertInfoFrom(toks []uri.WithParamsTokenizer) (AlertInfo, error) {
	l, err := uri.WithParamsListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AlertInfo(l), nil
}

// ParseAlertInfo parses the Alert-Info header value.
func ParseAlertInfo[T ~string | ~[]byte](s T) (AlertInfo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAlertInfo, AlertInfoFrom))
}
