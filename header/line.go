package header

import (
	"bytes"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// LineTokenizer holds the raw name and value of one header line.
// Value may still contain folded line breaks, the terminating CRLF is excluded.
type LineTokenizer struct {
	Name  []byte
	Value []byte
}

func skipWSP(in []byte) []byte {
	for len(in) > 0 && grammar.IsWSP(in[0]) {
		in = in[1:]
	}
	return in
}

// TokenizeLine splits "Name: value CRLF" at the start of in.
// A line break followed by SP or HTAB continues the value.
// Bare LF is accepted as the line terminator.
//
// When in ends before the line terminator the error is [ErrIncomplete].
// A terminator at the very end of in closes the line, callers that read a stream
// see the blank line after the last header before calling this.
func TokenizeLine(in []byte) (rest []byte, tok LineTokenizer, err error) {
	if len(in) == 0 {
		return in, tok, errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "header line expected"))
	}
	n, err := grammar.MessageHeader(in)
	if err != nil {
		return in, tok, lineError(in) //errtrace:skip
	}
	tok.Name = grammar.Bytes(in, grammar.MustGetNode(n, "header-name"))
	if vn, ok := n.GetNode("header-value"); ok {
		tok.Value = skipWSP(grammar.Bytes(in, vn))
	}
	return in[n.Len():], tok, nil
}

// lineError tells a malformed line from one that is not complete yet.
func lineError(in []byte) error {
	name, rest, ok := grammar.CutToken(in)
	if !ok {
		return errtrace.Wrap(errorutil.NewTokenizeError("header name expected"))
	}
	if rest = skipWSP(rest); len(rest) > 0 && rest[0] != ':' {
		return errtrace.Wrap(errorutil.NewTokenizeError("\":\" expected after header name %q", name))
	}
	return errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "header line"))
}

// unfold replaces every folded line break with a single SP.
func unfold(v []byte) string {
	v = bytes.TrimRight(v, " \t")
	if bytes.IndexByte(v, '\n') < 0 {
		return string(v)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, line := range bytes.Split(v, []byte{'\n'}) {
		line = bytes.TrimRight(line, " \t\r")
		if i > 0 {
			line = skipWSP(line)
			sb.WriteByte(' ')
		}
		sb.Write(line)
	}
	return sb.String()
}

// LineFrom converts a tokenized header line.
// The value is unfolded, its content is not validated against the header grammar.
func LineFrom(tok LineTokenizer) (Header, error) {
	if !utf8.Valid(tok.Value) {
		return nil, errtrace.Wrap(errorutil.NewUtf8Error("header %q value", tok.Name))
	}
	return New(string(tok.Name), unfold(tok.Value)), nil
}

// Parse parses one header line, the trailing CRLF is optional.
//
// Example:
//
//	hdr, err := header.Parse("v: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds")
//	// hdr is *header.Via
func Parse[T ~string | ~[]byte](s T) (Header, error) {
	in := []byte(s)
	if len(in) == 0 || in[len(in)-1] != '\n' {
		in = append(in[:len(in):len(in)], '\r', '\n')
	}
	rest, tok, err := TokenizeLine(in)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return nil, errtrace.Wrap(errorutil.NewTrailingInputError())
	}
	return errtrace.Wrap2(LineFrom(tok))
}
