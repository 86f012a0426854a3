package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// ParamKind classifies a parameter by its name.
type ParamKind uint8

const (
	ParamOther ParamKind = iota
	// URI parameters (RFC 3261 19.1.1).
	ParamTransport
	ParamUser
	ParamMethod
	ParamTTL
	ParamMAddr
	ParamLR
	// Header parameters of Via, To, From and Contact.
	ParamBranch
	ParamReceived
	ParamRPort
	ParamTag
	ParamExpires
	ParamQ
)

var paramKinds = map[string]ParamKind{
	"transport": ParamTransport,
	"user":      ParamUser,
	"method":    ParamMethod,
	"ttl":       ParamTTL,
	"maddr":     ParamMAddr,
	"lr":        ParamLR,
	"branch":    ParamBranch,
	"received":  ParamReceived,
	"rport":     ParamRPort,
	"tag":       ParamTag,
	"expires":   ParamExpires,
	"q":         ParamQ,
}

// ParamKindOf returns kind of the parameter name, names are case-insensitive.
func ParamKindOf(name string) ParamKind { return paramKinds[util.LCase(name)] }

func (k ParamKind) String() string {
	for n, k2 := range paramKinds {
		if k2 == k {
			return n
		}
	}
	return "other"
}

// IsURIParam reports whether the kind belongs to SIP URI parameters.
func (k ParamKind) IsURIParam() bool { return k >= ParamTransport && k <= ParamLR }

// Param is a single ";name[=value]" parameter.
// Known names are stored in lower case. Value is nil when the parameter has no value,
// which is different from an empty value.
type Param struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// NewParam returns a parameter with the value.
func NewParam(name, value string) Param { return Param{Name: name, Value: &value} }

// FlagParam returns a parameter without value, like "lr".
func FlagParam(name string) Param { return Param{Name: name} }

func (p Param) Kind() ParamKind { return ParamKindOf(p.Name) }

// Val returns the value or empty string.
func (p Param) Val() string { return util.DerefStr(p.Value) }

func (p Param) HasValue() bool { return p.Value != nil }

func (p Param) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(";", escapeParam(p.Name))
	if p.Value != nil {
		cw.Fprint("=", escapeParam(*p.Value))
	}
	return errtrace.Wrap2(cw.Result())
}

func escapeParam(s string) string {
	if grammar.IsQuoted(s) {
		return s
	}
	return grammar.Escape(s, shouldEscapeURIParamChar)
}

func (p Param) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

func (p Param) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods Param
		type Param hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Param(p))
		return
	}
}

func (p Param) Clone() Param {
	if p.Value != nil {
		p.Value = util.PtrStr(*p.Value)
	}
	return p
}

// Equal compares names case-insensitively.
// Values of known parameters are compared case-insensitively, except branch and tag.
func (p Param) Equal(val any) bool {
	var other Param
	switch v := val.(type) {
	case Param:
		other = v
	case *Param:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if !util.EqFold(p.Name, other.Name) || (p.Value == nil) != (other.Value == nil) {
		return false
	}
	if p.Value == nil {
		return true
	}
	switch p.Kind() {
	case ParamOther, ParamBranch, ParamTag:
		return *p.Value == *other.Value
	default:
		return util.EqFold(*p.Value, *other.Value)
	}
}

func (p Param) IsValid() bool { return p.Name != "" }

// Transport returns value of the transport parameter.
func (p Param) Transport() (TransportProto, bool) {
	if p.Kind() != ParamTransport || p.Value == nil {
		return "", false
	}
	return TransportProto(*p.Value).ToUpper(), true
}

// Uint returns numeric value of ttl, rport and expires parameters.
func (p Param) Uint() (uint32, bool) {
	if p.Value == nil {
		return 0, false
	}
	v, err := strconv.ParseUint(*p.Value, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// ParamTokenizer holds raw parameter name and value. Quoted values keep their quotes.
type ParamTokenizer struct {
	Name     []byte
	Value    []byte
	HasValue bool
}

// TokenizeParam splits ";name[=value]" at the start of in.
// Linear white space around ";" and "=" is allowed as in header parameters.
func TokenizeParam(in []byte) (rest []byte, tok ParamTokenizer, err error) {
	n, err := grammar.GenericParam(in)
	if err != nil {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("parameter expected"))
	}
	return in[n.Len():], paramTokenizer(in, n, "gen-name", "EQUAL gen-value", "gen-value"), nil
}

// tokenizeURIParams splits uri-parameters at the start of in, white space is not allowed.
func tokenizeURIParams(in []byte) (rest []byte, toks []ParamTokenizer, err error) {
	rest = in
	for len(rest) > 0 && rest[0] == ';' {
		n, err := grammar.URIParameter(rest)
		if err != nil {
			return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("URI parameter expected"))
		}
		toks = append(toks, paramTokenizer(rest, n, "pname", "=pvalue", "pvalue"))
		rest = rest[n.Len():]
	}
	return rest, toks, nil
}

func paramTokenizer(in []byte, n *abnf.Node, name, eq, value string) ParamTokenizer {
	tok := ParamTokenizer{Name: grammar.Bytes(in, grammar.MustGetNode(n, name))}
	if en, ok := n.GetNode(eq); ok {
		tok.HasValue = true
		if vn, ok := en.GetNode(value); ok {
			tok.Value = grammar.Bytes(in, vn)
		}
	}
	return tok
}

// TokenizeParams splits all parameters at the start of in.
func TokenizeParams(in []byte) (rest []byte, toks []ParamTokenizer, err error) {
	rest = in
	for {
		if _, ok := grammar.CutByte(rest, ';'); !ok {
			return rest, toks, nil
		}
		var tok ParamTokenizer
		if rest, tok, err = TokenizeParam(rest); err != nil {
			return in, nil, errtrace.Wrap(err)
		}
		toks = append(toks, tok)
	}
}

// ParamFrom converts tokenized parameter.
// Known parameter names are lower cased and their values checked.
// Other parameters are kept verbatim.
func ParamFrom(tok ParamTokenizer) (Param, error) {
	name, err := grammar.UnescapeStrict(string(tok.Name))
	if err != nil {
		return Param{}, errtrace.Wrap(errorutil.NewParseError(err))
	}
	kind := ParamKindOf(name)
	if kind == ParamOther {
		p := Param{Name: name}
		if tok.HasValue {
			v := string(tok.Value)
			if !grammar.IsQuoted(v) {
				v = grammar.Unescape(v)
			}
			p.Value = &v
		}
		return p, nil
	}

	p := Param{Name: util.LCase(name)}
	if !tok.HasValue {
		switch kind {
		case ParamLR, ParamRPort:
			return p, nil
		default:
			return Param{}, errtrace.Wrap(errorutil.NewParseError("parameter %q requires a value", name))
		}
	}
	v, err := grammar.UnescapeStrict(grammar.Unquote(tok.Value))
	if err != nil {
		return Param{}, errtrace.Wrap(errorutil.NewParseError(err))
	}
	if err := checkParamValue(kind, v); err != nil {
		return Param{}, errtrace.Wrap(err)
	}
	p.Value = &v
	return p, nil
}

func checkParamValue(kind ParamKind, v string) error {
	switch kind {
	case ParamTransport, ParamUser, ParamMethod, ParamBranch, ParamTag:
		if !grammar.IsToken(v) {
			return errtrace.Wrap(errorutil.NewParseError("invalid %s parameter value %q", kind, v))
		}
	case ParamTTL:
		if _, err := strconv.ParseUint(v, 10, 8); err != nil {
			return errtrace.Wrap(errorutil.NewParseError("invalid ttl parameter value %q", v))
		}
	case ParamRPort:
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			return errtrace.Wrap(errorutil.NewParseError("invalid rport parameter value %q", v))
		}
	case ParamExpires:
		if _, err := strconv.ParseUint(v, 10, 32); err != nil {
			return errtrace.Wrap(errorutil.NewParseError("invalid expires parameter value %q", v))
		}
	case ParamQ:
		q, err := strconv.ParseFloat(v, 32)
		if err != nil || q < 0 || q > 1 {
			return errtrace.Wrap(errorutil.NewParseError("invalid q parameter value %q", v))
		}
	case ParamMAddr, ParamReceived:
		if v == "" {
			return errtrace.Wrap(errorutil.NewParseError("empty %s parameter value", kind))
		}
	}
	return nil
}

// ParseParam parses ";name[=value]" consuming the whole input. The leading ";" is optional.
func ParseParam[T ~string | ~[]byte](s T) (Param, error) {
	in := []byte(s)
	if len(in) == 0 || in[0] != ';' {
		in = append([]byte{';'}, in...)
	}
	rest, tok, err := TokenizeParam(in)
	if err != nil {
		return Param{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return Param{}, errtrace.Wrap(newTrailingInputError())
	}
	return errtrace.Wrap2(ParamFrom(tok))
}

// Params is an ordered parameter list. Lookups are case-insensitive and return the first match.
type Params []Param

// ParamsFrom converts tokenized parameters.
func ParamsFrom(toks []ParamTokenizer) (Params, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	ps := make(Params, 0, len(toks))
	for _, tok := range toks {
		p, err := ParamFrom(tok)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (ps Params) Get(name string) (Param, bool) {
	for _, p := range ps {
		if util.EqFold(p.Name, name) {
			return p, true
		}
	}
	return Param{}, false
}

// Value returns value of the first parameter with the name.
func (ps Params) Value(name string) (string, bool) {
	p, ok := ps.Get(name)
	if !ok || p.Value == nil {
		return "", false
	}
	return *p.Value, true
}

func (ps Params) Has(name string) bool {
	_, ok := ps.Get(name)
	return ok
}

// Del removes all parameters with the name.
func (ps Params) Del(name string) Params {
	out := ps[:0]
	for _, p := range ps {
		if !util.EqFold(p.Name, name) {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	return out
}

// Set removes all parameters with the same name and appends p.
func (ps Params) Set(p Param) Params { return append(ps.Del(p.Name), p) }

func (ps Params) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, p := range ps {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(p.RenderTo(w, opts)) })
	}
	return errtrace.Wrap2(cw.Result())
}

func (ps Params) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

func (ps Params) Clone() Params { return types.CloneSlice(ps) }

// Equal reports whether both lists hold the same parameters in any order.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case []Param:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if len(ps) != len(other) {
		return false
	}
	for _, p := range ps {
		p2, ok := other.Get(p.Name)
		if !ok || !p.Equal(p2) {
			return false
		}
	}
	return true
}
