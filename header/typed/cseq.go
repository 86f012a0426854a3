package typed

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// CSeq represents the CSeq header field.
// The CSeq header field serves as a way to identify and order transactions.
type CSeq struct {
	SeqNum uint32
	Method RequestMethod
}

// CanonicName returns the canonical name of the header.
func (*CSeq) CanonicName() Name { return "CSeq" }

// CompactName returns the compact name of the header (CSeq has no compact form).
func (*CSeq) CompactName() Name { return "CSeq" }

// RenderTo writes the header to the provided writer.
func (hdr *CSeq) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *CSeq) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.SeqNum, " ", hdr.Method))
}

// Render returns the string representation of the header.
func (hdr *CSeq) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *CSeq) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *CSeq) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *CSeq) Format(f fmt.State, verb rune) {
	type hideMethods CSeq
	type CSeq hideMethods
	formatHdr(f, verb, hdr, (*CSeq)(hdr))
}

// Clone returns a copy of the header.
func (hdr *CSeq) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *CSeq) Equal(val any) bool {
	var other *CSeq
	switch v := val.(type) {
	case CSeq:
		other = &v
	case *CSeq:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.SeqNum == other.SeqNum && hdr.Method.Equal(other.Method)
}

// IsValid checks whether the header is syntactically valid.
// RFC 3261 limits the sequence number to 2**31.
func (hdr *CSeq) IsValid() bool {
	return hdr != nil && hdr.SeqNum < 1<<31 && hdr.Method.IsValid()
}

// CSeqTokenizer holds raw sequence number and method.
type CSeqTokenizer struct {
	SeqNum []byte
	Method types.MethodTokenizer
}

// TokenizeCSeq splits "1*DIGIT LWS Method" at the start of in.
func TokenizeCSeq(in []byte) (rest []byte, tok CSeqTokenizer, err error) {
	n := grammar.IndexFunc(in, func(c byte) bool { return !grammar.IsDigit(c) })
	if n == 0 {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("sequence number expected"))
	}
	tok.SeqNum = in[:n]

	rest, ok := cutLWS(in[n:])
	if !ok {
		return in, CSeqTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("white space expected"))
	}
	if rest, tok.Method, err = types.TokenizeMethod(rest); err != nil {
		return in, CSeqTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// CSeqFrom converts tokenized CSeq.
func CSeqFrom(tok CSeqTokenizer) (*CSeq, error) {
	seq, err := strconv.ParseUint(string(tok.SeqNum), 10, 32)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewParseError(err))
	}
	mtd, err := types.MethodFrom(tok.Method)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &CSeq{SeqNum: uint32(seq), Method: mtd}, nil
}

// ParseCSeq parses the CSeq header value.
func ParseCSeq[T ~string | ~[]byte](s T) (*CSeq, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeCSeq, CSeqFrom))
}
