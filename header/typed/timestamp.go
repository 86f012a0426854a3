package typed

import (
	"io"
	"strconv"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
)

// Timestamp represents the Timestamp header field.
// The Timestamp header field describes when the UAC sent the request to the UAS.
// Values are kept in their decimal text form.
type Timestamp struct {
	Value string
	Delay string
}

// Time returns the timestamp value as seconds with fraction.
func (hdr *Timestamp) Time() (float64, bool) {
	if hdr == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(hdr.Value, 64)
	return v, err == nil
}

// DelayDuration returns the delay as [time.Duration].
func (hdr *Timestamp) DelayDuration() time.Duration {
	if hdr == nil || hdr.Delay == "" {
		return 0
	}
	v, err := strconv.ParseFloat(hdr.Delay, 64)
	if err != nil {
		return 0
	}
	return time.Duration(v * float64(time.Second))
}

// CanonicName returns the canonical name of the header.
func (*Timestamp) CanonicName() Name { return "Timestamp" }

// CompactName returns the compact name of the header (Timestamp has no compact form).
func (*Timestamp) CompactName() Name { return "Timestamp" }

// RenderTo writes the header to the provided writer.
func (hdr *Timestamp) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *Timestamp) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.Value)
	if hdr.Delay != "" {
		cw.Fprint(" ", hdr.Delay)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (hdr *Timestamp) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *Timestamp) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *Timestamp) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *Timestamp) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *Timestamp) Equal(val any) bool {
	var other *Timestamp
	switch v := val.(type) {
	case Timestamp:
		other = &v
	case *Timestamp:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return *hdr == *other
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Timestamp) IsValid() bool {
	return hdr != nil && isDecimal([]byte(hdr.Value)) && (hdr.Delay == "" || isDecimal([]byte(hdr.Delay)))
}

func isDecimal(s []byte) bool {
	rest, _, err := tokenizeDecimal(s)
	return err == nil && len(rest) == 0
}

// tokenizeDecimal cuts 1*DIGIT ["." *DIGIT].
func tokenizeDecimal(in []byte) (rest, tok []byte, err error) {
	n := grammar.IndexFunc(in, func(c byte) bool { return !grammar.IsDigit(c) })
	if n == 0 {
		return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("digits expected"))
	}
	if n < len(in) && in[n] == '.' {
		n += 1 + grammar.IndexFunc(in[n+1:], func(c byte) bool { return !grammar.IsDigit(c) })
	}
	return in[n:], in[:n], nil
}

// TimestampTokenizer holds raw timestamp and delay.
type TimestampTokenizer struct {
	Value []byte
	Delay []byte
}

// TokenizeTimestamp splits "value [LWS delay]" at the start of in.
func TokenizeTimestamp(in []byte) (rest []byte, tok TimestampTokenizer, err error) {
	if rest, tok.Value, err = tokenizeDecimal(in); err != nil {
		return in, TimestampTokenizer{}, errtrace.Wrap(err)
	}
	if r, ok := cutLWS(rest); ok && len(r) > 0 && grammar.IsDigit(r[0]) {
		if rest, tok.Delay, err = tokenizeDecimal(r); err != nil {
			return in, TimestampTokenizer{}, errtrace.Wrap(err)
		}
	}
	return rest, tok, nil
}

// TimestampFrom converts tokenized Timestamp.
func TimestampFrom(tok TimestampTokenizer) (*Timestamp, error) {
	return &Timestamp{Value: string(tok.Value), Delay: string(tok.Delay)}, nil
}

// ParseTimestamp parses the Timestamp header value.
func ParseTimestamp[T ~string | ~[]byte](s T) (*Timestamp, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeTimestamp, TimestampFrom))
}
