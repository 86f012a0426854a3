package typed

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// RetryAfter represents the Retry-After header field.
// The Retry-After header field indicates how long the service is expected to be unavailable
// or when the called party anticipates being available again.
type RetryAfter struct {
	Delay   uint32
	Comment *string
	Params  uri.Params
}

// Duration returns the delay as [time.Duration].
func (hdr *RetryAfter) Duration() time.Duration {
	if hdr == nil {
		return 0
	}
	return time.Duration(hdr.Delay) * time.Second
}

// CanonicName returns the canonical name of the header.
func (*RetryAfter) CanonicName() Name { return "Retry-After" }

// CompactName returns the compact name of the header (Retry-After has no compact form).
func (*RetryAfter) CompactName() Name { return "Retry-After" }

// RenderTo writes the header to the provided writer.
func (hdr *RetryAfter) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *RetryAfter) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.Delay)
	if hdr.Comment != nil {
		cw.Fprint(" (", *hdr.Comment, ")")
	}
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdr.Params.RenderTo(w, nil)) })
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (hdr *RetryAfter) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *RetryAfter) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *RetryAfter) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *RetryAfter) Format(f fmt.State, verb rune) {
	type hideMethods RetryAfter
	type RetryAfter hideMethods
	formatHdr(f, verb, hdr, (*RetryAfter)(hdr))
}

// Clone returns a copy of the header.
func (hdr *RetryAfter) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	if hdr.Comment != nil {
		hdr2.Comment = util.PtrStr(*hdr.Comment)
	}
	hdr2.Params = hdr.Params.Clone()
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *RetryAfter) Equal(val any) bool {
	var other *RetryAfter
	switch v := val.(type) {
	case RetryAfter:
		other = &v
	case *RetryAfter:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Delay == other.Delay &&
		util.EqStrPtr(hdr.Comment, other.Comment) &&
		hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *RetryAfter) IsValid() bool { return hdr != nil }

// RetryAfterTokenizer holds raw delay, comment without parentheses and parameters.
type RetryAfterTokenizer struct {
	Delay   []byte
	Comment []byte
	Params  []uri.ParamTokenizer
}

// cutComment splits a parenthesized comment, nested comments and quoted-pairs included.
func cutComment(in []byte) (comment, rest []byte, ok bool) {
	if len(in) == 0 || in[0] != '(' {
		return nil, in, false
	}
	depth := 0
	for i := 0; i < len(in); i++ {
		switch in[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return in[1:i], in[i+1:], true
			}
		}
	}
	return nil, in, false
}

// TokenizeRetryAfter splits "delta-seconds [comment] *(;param)" at the start of in.
func TokenizeRetryAfter(in []byte) (rest []byte, tok RetryAfterTokenizer, err error) {
	if rest, tok.Delay, err = TokenizeNumber(in); err != nil {
		return in, RetryAfterTokenizer{}, errtrace.Wrap(err)
	}
	if r, ok := cutLWS(rest); ok && len(r) > 0 && r[0] == '(' {
		if tok.Comment, rest, ok = cutComment(r); !ok {
			return in, RetryAfterTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("unterminated comment"))
		}
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, RetryAfterTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// RetryAfterFrom converts tokenized Retry-After.
func RetryAfterFrom(tok RetryAfterTokenizer) (*RetryAfter, error) {
	var (
		hdr RetryAfter
		err error
	)
	if hdr.Delay, err = parseUint32(tok.Delay); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if tok.Comment != nil {
		if !utf8.Valid(tok.Comment) {
			return nil, errtrace.Wrap(errorutil.NewUtf8Error("comment %q", tok.Comment))
		}
		hdr.Comment = util.PtrStr(string(tok.Comment))
	}
	if hdr.Params, err = uri.ParamsFrom(tok.Params); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &hdr, nil
}

// ParseRetryAfter parses the Retry-After header value.
func ParseRetryAfter[T ~string | ~[]byte](s T) (*RetryAfter, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeRetryAfter, RetryAfterFrom))
}
