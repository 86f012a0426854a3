package typed

import (
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// AcceptValue is a coding or language range with parameters,
// an entry of Accept-Encoding and Accept-Language.
type AcceptValue struct {
	Value  string
	Params uri.Params
}

// Q returns the q parameter, 1 when it is missing or malformed.
func (v AcceptValue) Q() float64 {
	s, ok := v.Params.Value("q")
	if !ok {
		return 1
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return q
}

func (v AcceptValue) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(v.Value)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(v.Params.RenderTo(w, opts)) })
	return errtrace.Wrap2(cw.Result())
}

func (v AcceptValue) String() string {
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(v.RenderTo(w, nil)) })
}

func (v AcceptValue) Equal(val any) bool {
	var other AcceptValue
	switch o := val.(type) {
	case AcceptValue:
		other = o
	case *AcceptValue:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return util.EqFold(v.Value, other.Value) && v.Params.Equal(other.Params)
}

func (v AcceptValue) IsValid() bool { return grammar.IsToken(v.Value) }

func (v AcceptValue) Clone() AcceptValue {
	v.Params = v.Params.Clone()
	return v
}

// AcceptValueTokenizer holds the raw value and parameters.
type AcceptValueTokenizer struct {
	Value  []byte
	Params []uri.ParamTokenizer
}

// TokenizeAcceptValue splits "value;params" at the start of in.
func TokenizeAcceptValue(in []byte) (rest []byte, tok AcceptValueTokenizer, err error) {
	if rest, tok.Value, err = TokenizeToken(in); err != nil {
		return in, AcceptValueTokenizer{}, errtrace.Wrap(err)
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, AcceptValueTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// AcceptValueFrom converts tokenized accept entry.
func AcceptValueFrom(tok AcceptValueTokenizer) (AcceptValue, error) {
	ps, err := uri.ParamsFrom(tok.Params)
	if err != nil {
		return AcceptValue{}, errtrace.Wrap(err)
	}
	return AcceptValue{Value: string(tok.Value), Params: ps}, nil
}

func acceptValuesValid(vs []AcceptValue) bool {
	return !slices.ContainsFunc(vs, func(v AcceptValue) bool { return !v.IsValid() })
}
