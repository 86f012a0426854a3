package uri

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// WithParams is a URI followed by header parameters, as in Route or Call-Info values.
// URI parameters stay in [URI.Params], parameters after the URI go to Params.
type WithParams struct {
	URI    URI    `json:"uri"`
	Params Params `json:"params,omitempty"`
}

// RenderTo always writes the enclosed form "<uri>;params".
func (wp WithParams) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("<")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(wp.URI.RenderTo(w, opts)) })
	cw.Fprint(">")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(wp.Params.RenderTo(w, opts)) })
	return errtrace.Wrap2(cw.Result())
}

func (wp WithParams) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	wp.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

func (wp WithParams) Clone() WithParams {
	wp.URI = wp.URI.Clone()
	wp.Params = wp.Params.Clone()
	return wp
}

func (wp WithParams) Equal(val any) bool {
	var other WithParams
	switch v := val.(type) {
	case WithParams:
		other = v
	case *WithParams:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return wp.URI.Equal(other.URI) && wp.Params.Equal(other.Params)
}

func (wp WithParams) IsValid() bool { return wp.URI.IsValid() }

// WithParamsTokenizer holds a tokenized URI and the parameters following it.
type WithParamsTokenizer struct {
	URI      Tokenizer
	Params   []ParamTokenizer
	Enclosed bool
}

// TokenizeWithParams splits "<uri>;params" or "uri;params" at the start of in.
// The form is chosen by a leading "<". In the bare form the URI has no parameters
// of its own and every parameter belongs to the header value.
func TokenizeWithParams(in []byte) (rest []byte, tok WithParamsTokenizer, err error) {
	rest = grammar.SkipLWS(in)
	if len(rest) > 0 && rest[0] == '<' {
		tok.Enclosed = true
		if rest, tok.URI, err = Tokenize(rest[1:]); err != nil {
			return in, WithParamsTokenizer{}, errtrace.Wrap(err)
		}
		if len(rest) == 0 || rest[0] != '>' {
			return in, WithParamsTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\">\" expected"))
		}
		rest = rest[1:]
	} else if rest, tok.URI, err = TokenizeNoParams(rest); err != nil {
		return in, WithParamsTokenizer{}, errtrace.Wrap(err)
	}

	if rest, tok.Params, err = TokenizeParams(rest); err != nil {
		return in, WithParamsTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

func WithParamsFrom(tok WithParamsTokenizer) (WithParams, error) {
	u, err := FromTokenizer(tok.URI)
	if err != nil {
		return WithParams{}, errtrace.Wrap(err)
	}
	ps, err := ParamsFrom(tok.Params)
	if err != nil {
		return WithParams{}, errtrace.Wrap(err)
	}
	return WithParams{URI: u, Params: ps}, nil
}

func ParseWithParams[T ~string | ~[]byte](s T) (WithParams, error) {
	rest, tok, err := TokenizeWithParams([]byte(s))
	if err != nil {
		return WithParams{}, errtrace.Wrap(err)
	}
	if len(grammar.TrimLWS(rest)) > 0 {
		return WithParams{}, errtrace.Wrap(newTrailingInputError())
	}
	return errtrace.Wrap2(WithParamsFrom(tok))
}

// WithParamsList is a comma separated list of [WithParams].
type WithParamsList []WithParams

func (l WithParamsList) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, wp := range l {
		if i > 0 {
			cw.Fprint(", ")
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(wp.RenderTo(w, opts)) })
	}
	return errtrace.Wrap2(cw.Result())
}

func (l WithParamsList) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	l.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

func (l WithParamsList) Clone() WithParamsList {
	if l == nil {
		return nil
	}
	l2 := make(WithParamsList, len(l))
	for i := range l {
		l2[i] = l[i].Clone()
	}
	return l2
}

// Equal compares lists element by element, order matters.
func (l WithParamsList) Equal(val any) bool {
	var other WithParamsList
	switch v := val.(type) {
	case WithParamsList:
		other = v
	case []WithParams:
		other = v
	case *WithParamsList:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// TokenizeWithParamsList splits a comma separated list of [WithParams].
// Unlike single value tokenizers it requires the whole input to be consumed,
// only trailing white space may be left.
func TokenizeWithParamsList(in []byte) (rest []byte, toks []WithParamsTokenizer, err error) {
	rest = in
	for {
		var tok WithParamsTokenizer
		if rest, tok, err = TokenizeWithParams(rest); err != nil {
			return in, nil, errtrace.Wrap(err)
		}
		toks = append(toks, tok)

		r, ok := grammar.CutByte(rest, ',')
		if !ok {
			break
		}
		rest = r
	}
	if rest = grammar.TrimLWS(rest); len(rest) > 0 {
		return in, nil, errtrace.Wrap(newTrailingInputError())
	}
	return rest, toks, nil
}

func WithParamsListFrom(toks []WithParamsTokenizer) (WithParamsList, error) {
	l := make(WithParamsList, 0, len(toks))
	for _, tok := range toks {
		wp, err := WithParamsFrom(tok)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		l = append(l, wp)
	}
	return l, nil
}

func ParseWithParamsList[T ~string | ~[]byte](s T) (WithParamsList, error) {
	_, toks, err := TokenizeWithParamsList([]byte(s))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(WithParamsListFrom(toks))
}
