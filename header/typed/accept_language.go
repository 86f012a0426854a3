package typed

import (
	"io"

	"braces.dev/errtrace"
)

// AcceptLanguage represents the Accept-Language header field.
// The Accept-Language header field indicates the preferred languages for reason phrases, session descriptions, or status responses.
// An empty Accept-Language is valid.
type AcceptLanguage []AcceptValue

// CanonicName returns the canonical name of the header.
func (AcceptLanguage) CanonicName() Name { return "Accept-Language" }

// CompactName returns the compact name of the header (Accept-Language has no compact form).
func (AcceptLanguage) CompactName() Name { return "Accept-Language" }

// RenderTo writes the header to the provided writer.
func (hdr AcceptLanguage) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr AcceptLanguage) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr AcceptLanguage) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr AcceptLanguage) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr AcceptLanguage) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr AcceptLanguage) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr AcceptLanguage) Equal(val any) bool {
	var other AcceptLanguage
	switch v := val.(type) {
	case AcceptLanguage:
		other = v
	case *AcceptLanguage:
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
func (hdr AcceptLanguage) IsValid() bool { return acceptValuesValid(hdr) }

// TokenizeAcceptLanguage splits the Accept-Language header value, it may be empty.
func TokenizeAcceptLanguage(in []byte) (rest []byte, toks []AcceptValueTokenizer, err error) {
	return errtrace.Wrap3(tokenizeOptList(in, TokenizeAcceptValue))
}

// AcceptLanguageFrom converts tokenized Accept-Language value.
func AcceptLanguageFrom(toks []AcceptValueTokenizer) (AcceptLanguage, error) {
	vs, err := convertList(toks, AcceptValueFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return AcceptLanguage(vs), nil
}

// ParseAcceptLanguage parses the Accept-Language header value.
func ParseAcceptLanguage[T ~string | ~[]byte](s T) (AcceptLanguage, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAcceptLanguage, AcceptLanguageFrom))
}
