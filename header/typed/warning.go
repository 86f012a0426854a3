package typed

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
)

// WarningValue is a single warning: 3 digit code, agent host or pseudonym and unquoted text.
type WarningValue struct {
	Code  uint16
	Agent string
	Text  string
}

func (v WarningValue) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprintf("%03d %s %s", v.Code, v.Agent, grammar.Quote(v.Text))
	return errtrace.Wrap2(cw.Result())
}

func (v WarningValue) String() string {
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(v.RenderTo(w, nil)) })
}

func (v WarningValue) Equal(val any) bool {
	switch o := val.(type) {
	case WarningValue:
		return v == o
	case *WarningValue:
		return o != nil && v == *o
	default:
		return false
	}
}

func (v WarningValue) IsValid() bool { return v.Code >= 100 && v.Code <= 999 && v.Agent != "" }

func (v WarningValue) Clone() WarningValue { return v }

// WarningValueTokenizer holds raw code, agent and quoted text.
type WarningValueTokenizer struct {
	Code  []byte
	Agent []byte
	Text  []byte
}

// TokenizeWarningValue splits "code SP agent SP quoted-text" at the start of in.
func TokenizeWarningValue(in []byte) (rest []byte, tok WarningValueTokenizer, err error) {
	if len(in) < 3 || !grammar.IsDigits(in[:3]) {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("warning code expected"))
	}
	tok.Code = in[:3]

	rest, ok := cutLWS(in[3:])
	if !ok {
		return in, WarningValueTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("white space expected"))
	}
	n := grammar.IndexFunc(rest, func(c byte) bool { return grammar.IsWSP(c) || c == '\r' || c == '\n' || c == '"' })
	if n == 0 {
		return in, WarningValueTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("warning agent expected"))
	}
	tok.Agent = rest[:n]

	if rest, ok = cutLWS(rest[n:]); !ok {
		return in, WarningValueTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("white space expected"))
	}
	if tok.Text, rest, ok = grammar.CutQuoted(rest); !ok {
		return in, WarningValueTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("quoted warning text expected"))
	}
	return rest, tok, nil
}

// WarningValueFrom converts tokenized warning.
func WarningValueFrom(tok WarningValueTokenizer) (WarningValue, error) {
	code, err := strconv.ParseUint(string(tok.Code), 10, 16)
	if err != nil {
		return WarningValue{}, errtrace.Wrap(errorutil.NewParseError(err))
	}
	if !utf8.Valid(tok.Text) {
		return WarningValue{}, errtrace.Wrap(errorutil.NewUtf8Error("warning text %q", tok.Text))
	}
	return WarningValue{Code: uint16(code), Agent: string(tok.Agent), Text: grammar.Unquote(tok.Text)}, nil
}

// Warning represents the Warning header field.
// The Warning header field is used to carry additional information about the status of a response.
type Warning []WarningValue

// CanonicName returns the canonical name of the header.
func (Warning) CanonicName() Name { return "Warning" }

// CompactName returns the compact name of the header (Warning has no compact form).
func (Warning) CompactName() Name { return "Warning" }

// RenderTo writes the header to the provided writer.
func (hdr Warning) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Warning) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Warning) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Warning) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Warning) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Warning) Format(f fmt.State, verb rune) {
	type hideMethods Warning
	type Warning hideMethods
	formatHdr(f, verb, hdr, Warning(hdr))
}

// Clone returns a copy of the header.
func (hdr Warning) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Warning) Equal(val any) bool {
	var other Warning
	switch v := val.(type) {
	case Warning:
		other = v
	case *Warning:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Warning) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(v WarningValue) bool { return !v.IsValid() })
}

// TokenizeWarning splits comma separated warnings.
func TokenizeWarning(in []byte) (rest []byte, toks []WarningValueTokenizer, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeWarningValue))
}

// WarningFrom converts tokenized Warning value.
func WarningFrom(toks []WarningValueTokenizer) (Warning, error) {
	vs, err := convertList(toks, WarningValueFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Warning(vs), nil
}

// ParseWarning parses the Warning header value.
func ParseWarning[T ~string | ~[]byte](s T) (Warning, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeWarning, WarningFrom))
}
