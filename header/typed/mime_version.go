package typed

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// MIMEVersion represents the MIME-Version header field.
type MIMEVersion string

// CanonicName returns the canonical name of the header.
func (MIMEVersion) CanonicName() Name { return "MIME-Version" }

// CompactName returns the compact name of the header (MIME-Version has no compact form).
func (MIMEVersion) CompactName() Name { return "MIME-Version" }

// RenderTo writes the header to the provided writer.
func (hdr MIMEVersion) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr MIMEVersion) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

// Render returns the string representation of the header.
func (hdr MIMEVersion) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr MIMEVersion) RenderValue() string { return string(hdr) }

// String returns the string representation of the header value.
func (hdr MIMEVersion) String() string { return string(hdr) }

// Clone returns a copy of the header.
func (hdr MIMEVersion) Clone() Header { return hdr }

// Equal compares this header with another for equality.
func (hdr MIMEVersion) Equal(val any) bool {
	switch v := val.(type) {
	case MIMEVersion:
		return hdr == v
	case *MIMEVersion:
		return v != nil && hdr == *v
	default:
		return false
	}
}

// IsValid checks whether the header is syntactically valid.
func (hdr MIMEVersion) IsValid() bool {
	rest, _, err := TokenizeMIMEVersion([]byte(hdr))
	return err == nil && len(rest) == 0
}

// TokenizeMIMEVersion splits 1*DIGIT "." 1*DIGIT at the start of in.
func TokenizeMIMEVersion(in []byte) (rest, tok []byte, err error) {
	n := grammar.IndexFunc(in, func(c byte) bool { return !grammar.IsDigit(c) })
	if n == 0 || n == len(in) || in[n] != '.' {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("MIME version expected"))
	}
	m := grammar.IndexFunc(in[n+1:], func(c byte) bool { return !grammar.IsDigit(c) })
	if m == 0 {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("MIME minor version expected"))
	}
	n += m + 1
	return in[n:], in[:n], nil
}

// MIMEVersionFrom converts tokenized MIME-Version.
func MIMEVersionFrom(tok []byte) (MIMEVersion, error) { return MIMEVersion(tok), nil }

// ParseMIMEVersion parses the MIME-Version header value.
func ParseMIMEVersion[T ~string | ~[]byte](s T) (MIMEVersion, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeMIMEVersion, MIMEVersionFrom))
}
