package typed

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

type (
	// Name is a header name, see [types.HeaderName].
	Name           = types.HeaderName
	RenderOptions  = types.RenderOptions
	RequestMethod  = types.RequestMethod
	TransportProto = types.TransportProto
	ProtoVersion   = types.ProtoVersion
)

const (
	ErrInvalidParam = errorutil.ErrInvalidParam
	ErrParse        = errorutil.ErrParse
	ErrTokenize     = errorutil.ErrTokenize
	ErrUtf8         = errorutil.ErrUtf8
)

// Header is a typed SIP header.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	CanonicName() Name
	CompactName() Name
	// RenderValue returns the header value without the name prefix.
	RenderValue() string
	String() string
}

func hdrName(hdr Header, opts *RenderOptions) Name {
	if opts != nil && opts.Compact {
		return hdr.CompactName()
	}
	return hdr.CanonicName()
}

// renderHdrTo writes "Name: value".
func renderHdrTo(w io.Writer, hdr Header, opts *RenderOptions, renderValue func(io.Writer) (int, error)) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdrName(hdr, opts), ": ")
	cw.Call(renderValue)
	return errtrace.Wrap2(cw.Result())
}

func renderHdr(hdr Header, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func renderString(renderTo func(io.Writer) (int, error)) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderTo(sb) //nolint:errcheck
	return sb.String()
}

// formatHdr implements fmt.Formatter for headers.
// raw is the header converted to a type without methods, it is used for verbs other than s and q.
func formatHdr(f fmt.State, verb rune, hdr Header, raw any) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render(nil)))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), raw)
	}
}

// renderEntries writes list entries separated with comma.
func renderEntries[S ~[]E, E fmt.Stringer](w io.Writer, s S) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range s {
		if i > 0 {
			cw.Fprint(", ")
		}
		cw.Fprint(s[i].String())
	}
	return errtrace.Wrap2(cw.Result())
}

// parseValue tokenizes a header value, requires that only white space is left
// and converts the tokenizer.
func parseValue[T, K any](
	s []byte,
	tokenize func([]byte) ([]byte, K, error),
	from func(K) (T, error),
) (T, error) {
	var zero T
	rest, tok, err := tokenize(grammar.SkipLWS(s))
	if err != nil {
		return zero, errtrace.Wrap(err)
	}
	if len(grammar.TrimLWS(rest)) > 0 {
		return zero, errtrace.Wrap(errorutil.NewTrailingInputError())
	}
	return errtrace.Wrap2(from(tok))
}

// tokenizeList splits one or more comma separated items.
func tokenizeList[K any](in []byte, tokenizeItem func([]byte) ([]byte, K, error)) (rest []byte, toks []K, err error) {
	rest = grammar.SkipLWS(in)
	for {
		var tok K
		if rest, tok, err = tokenizeItem(rest); err != nil {
			return in, nil, errtrace.Wrap(err)
		}
		toks = append(toks, tok)

		r, ok := grammar.CutByte(rest, ',')
		if !ok {
			return rest, toks, nil
		}
		rest = r
	}
}

// tokenizeOptList is like tokenizeList, but allows empty value.
func tokenizeOptList[K any](in []byte, tokenizeItem func([]byte) ([]byte, K, error)) (rest []byte, toks []K, err error) {
	if isEmptyValue(in) {
		return in, nil, nil
	}
	return errtrace.Wrap3(tokenizeList(in, tokenizeItem))
}

func isEmptyValue(in []byte) bool {
	in = grammar.SkipLWS(in)
	return len(in) == 0 || in[0] == '\r' || in[0] == '\n'
}

// convertList converts every tokenizer with from.
func convertList[T, K any](toks []K, from func(K) (T, error)) ([]T, error) {
	vals := make([]T, 0, len(toks))
	for _, tok := range toks {
		v, err := from(tok)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// cutLWS consumes mandatory linear white space.
func cutLWS(in []byte) ([]byte, bool) {
	rest := grammar.SkipLWS(in)
	return rest, len(rest) < len(in)
}

func cloneHdrEntries[S ~[]E, E interface{ Clone() E }](s S) S { return types.CloneSlice(s) }

func equalHdrEntries[S ~[]E, E types.Equalable](s1, s2 S) bool { return types.EqualSlices(s1, s2) }
