package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/uri"
)

// ErrorInfo represents the Error-Info header field.
// The Error-Info header field provides a pointer to additional information about the error status response.
type ErrorInfo []uri.WithParams

// CanonicName returns the canonical name of the header.
func (ErrorInfo) CanonicName() Name { return "Error-Info" }

// CompactName returns the compact name of the header (Error-Info has no compact form).
func (ErrorInfo) CompactName() Name { return "Error-Info" }

// RenderTo writes the header to the provided writer.
func (hdr ErrorInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr ErrorInfo) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(uri.WithParamsList(hdr).RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr ErrorInfo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr ErrorInfo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr ErrorInfo) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr ErrorInfo) Format(f fmt.State, verb rune) {
	type hideMethods ErrorInfo
	type ErrorInfo hideMethods
	formatHdr(f, verb, hdr, ErrorInfo(hdr))
}

// Clone returns a copy of the header.
func (hdr ErrorInfo) Clone() Header { return ErrorInfo(uri.WithParamsList(hdr).Clone()) }

// Equal compares this header with another for equality.
func (hdr ErrorInfo) Equal(val any) bool {
	var other ErrorInfo
	switch v := val.(type) {
	case ErrorInfo:
		other = v
	case *ErrorInfo:
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
func (hdr ErrorInfo) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(wp uri.WithParams) bool { return !wp.IsValid() })
}

// TokenizeErrorInfo splits comma separated Error-Info entries.
func TokenizeErrorInfo(in []byte) (rest []byte, toks []uri.WithParamsTokenizer, err error) {
	return errtrace.Wrap3(uri.TokenizeWithParamsList(in))
}

// ErrorInfoFrom converts tokenized Error-Info entries.
func ErrorInfoFrom(toks []uri.WithParamsTokenizer) (ErrorInfo, error) {
	l, err := uri.WithParamsListFrom(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return ErrorInfo(l), nil
}

// ParseErrorInfo parses the Error-Info header value.
func ParseErrorInfo[T ~string | ~[]byte](s T) (ErrorInfo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeErrorInfo, ErrorInfoFrom))
}
