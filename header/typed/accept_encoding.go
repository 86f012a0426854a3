package typed

import (
	"io"

	"braces.dev/errtrace"
)

// AcceptEncoding represents the Accept-Encoding header field.
// The Accept-Encoding header field restricts the content-codings acceptable in the response.
// An empty Accept-Encoding is valid.
type AcceptEncoding []AcceptValue

// CanonicName returns the canonical name of the header.
func (AcceptEncoding) CanonicName() Name { return "Accept-Encoding" }

// CompactName returns the compact name of the header (Accept-Encoding has no compact form).
func (AcceptEncoding) CompactName() Name { return "Accept-Encoding" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptEncoding) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr AcceptEncoding) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr AcceptEncoding) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptEncoding) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AcceptEncoding) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr AcceptEncoding) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptEncoding) Equal(val any) bool {
	var other AcceptEncoding
	switch v := val.(type) {
	case AcceptEncoding:
		other = v
	case *AcceptEncoding:
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
func (hdr AcceptEncoding) IsValid() bool { return acceptValuesValid(hdr) }

// TokenizeAcceptEncoding splits the Accept-Encoding header value, it may be empty.
func TokenizeAcceptEncoding(in []byte) (rest []byte, toks []AcceptValueTokenizer, err error) {
	return errtrace.Wrap3(tokenizeOptList(in, TokenizeAcceptValue))
}

// AcceptEncodingFrom converts tokenized Accept-Encoding value.
func AcceptEncodingFrom(toks []AcceptValueTokenizer) (AcceptEncoding, error) {
	vs, err := convertList(toks, AcceptValueFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AcceptEncoding(vs), nil
}

// ParseAcceptEncoding parses the Accept-Encoding header value.
func ParseAcceptEncoding[T ~string | ~[]byte](s T) (AcceptEncoding, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAcceptEncoding, AcceptEncodingFrom))
}
