package typed

import (
	"bytes"
	"io"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
)

// DateLayout is the RFC 1123 date layout SIP restricts to GMT.
const DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Date represents the Date header field.
// The Date header field contains the date and time.
type Date struct {
	Time time.Time
}

// NewDate returns Date for t truncated to seconds.
func NewDate(t time.Time) *Date { return &Date{Time: t.UTC().Truncate(time.Second)} }

// CanonicName returns the canonical name of the header.
func (*Date) CanonicName() Name { return "Date" }

// CompactName returns the compact name of the header (Date has no compact form).
func (*Date) CompactName() Name { return "Date" }

// RenderTo writes the header to the provided writer.
func (hdr *Date) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *Date) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, hdr.Time.UTC().Format(DateLayout)))
}

// Render returns the string representation of the header.
func (hdr *Date) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *Date) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *Date) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *Date) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *Date) Equal(val any) bool {
	var other *Date
	switch v := val.(type) {
	case Date:
		other = &v
	case *Date:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Time.Equal(other.Time)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Date) IsValid() bool { return hdr != nil && !hdr.Time.IsZero() }

// TokenizeDate splits the date up to and including the "GMT" zone.
func TokenizeDate(in []byte) (rest, tok []byte, err error) {
	i := bytes.Index(in, []byte("GMT"))
	if i < 0 {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("GMT date expected"))
	}
	return in[i+3:], in[:i+3], nil
}

// DateFrom converts tokenized Date.
func DateFrom(tok []byte) (*Date, error) {
	t, err := time.Parse(DateLayout, string(tok))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewParseError(err))
	}
	return &Date{Time: t}, nil
}

// ParseDate parses the Date header value.
func ParseDate[T ~string | ~[]byte](s T) (*Date, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeDate, DateFrom))
}
