package typed

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Algorithm is a digest algorithm name.
type Algorithm string

const (
	AlgorithmMD5        Algorithm = "MD5"
	AlgorithmMD5Sess    Algorithm = "MD5-sess"
	AlgorithmSHA256     Algorithm = "SHA-256"
	AlgorithmSHA256Sess Algorithm = "SHA-256-sess"
	AlgorithmSHA512     Algorithm = "SHA-512"
	AlgorithmSHA512Sess Algorithm = "SHA-512-sess"
)

var knownAlgorithms = []Algorithm{
	AlgorithmMD5, AlgorithmMD5Sess,
	AlgorithmSHA256, AlgorithmSHA256Sess,
	AlgorithmSHA512, AlgorithmSHA512Sess,
}

// AlgorithmFrom returns the known algorithm matching s case-insensitively or s as is.
func AlgorithmFrom[T ~string | ~[]byte](s T) Algorithm {
	for _, a := range knownAlgorithms {
		if util.EqFoldBytes(a, s) {
			return a
		}
	}
	return Algorithm(s)
}

// IsKnown reports whether the algorithm is supported by the digest generator.
func (a Algorithm) IsKnown() bool {
	for _, k := range knownAlgorithms {
		if util.EqFold(a, k) {
			return true
		}
	}
	return false
}

// IsSess reports whether the algorithm is a session variant.
func (a Algorithm) IsSess() bool { return strings.HasSuffix(util.LCase(string(a)), "-sess") }

// Base returns the algorithm without the session suffix.
func (a Algorithm) Base() Algorithm {
	if a.IsSess() {
		return AlgorithmFrom(a[:len(a)-len("-sess")])
	}
	return a
}

func (a Algorithm) String() string { return string(a) }

func (a Algorithm) Equal(val any) bool {
	var other Algorithm
	switch v := val.(type) {
	case Algorithm:
		other = v
	case *Algorithm:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(a, other)
}

// Qop is a digest quality of protection value.
type Qop string

const (
	QopAuth    Qop = "auth"
	QopAuthInt Qop = "auth-int"
)

// QopFrom returns lower-cased known qop or s as is.
func QopFrom[T ~string | ~[]byte](s T) Qop {
	switch {
	case util.EqFoldBytes(QopAuth, s):
		return QopAuth
	case util.EqFoldBytes(QopAuthInt, s):
		return QopAuthInt
	}
	return Qop(s)
}

func (q Qop) String() string { return string(q) }

func (q Qop) Equal(val any) bool {
	var other Qop
	switch v := val.(type) {
	case Qop:
		other = v
	case *Qop:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(q, other)
}

// AuthQop is the qop of a digest response together with its client nonce and nonce count.
// The three values always come together.
type AuthQop struct {
	Qop    Qop
	CNonce string
	NC     uint32
}

// NCString returns the nonce count as 8 hex digits.
func (q AuthQop) NCString() string { return fmt.Sprintf("%08x", q.NC) }

func (q AuthQop) Equal(val any) bool {
	var other AuthQop
	switch v := val.(type) {
	case AuthQop:
		other = v
	case *AuthQop:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return q.Qop.Equal(other.Qop) && q.CNonce == other.CNonce && q.NC == other.NC
}

func parseNC(v string) (uint32, error) {
	nc, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewParseError("invalid nonce count %q", v))
	}
	return uint32(nc), nil
}

// AuthParam is an extension auth-param. Quoted tells whether the value is rendered as quoted-string.
type AuthParam struct {
	Name   string
	Value  string
	Quoted bool
}

func (p AuthParam) String() string {
	if p.Quoted {
		return p.Name + "=" + grammar.Quote(p.Value)
	}
	return p.Name + "=" + p.Value
}

func (p AuthParam) Equal(val any) bool {
	var other AuthParam
	switch v := val.(type) {
	case AuthParam:
		other = v
	case *AuthParam:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(p.Name, other.Name) && p.Value == other.Value
}

func (p AuthParam) Clone() AuthParam { return p }

func authParamsEqual(ps1, ps2 []AuthParam) bool { return equalHdrEntries(ps1, ps2) }

// authParamWriter writes comma separated auth-params.
type authParamWriter struct {
	cw *ioutil.CountingWriter
	n  int
}

func (aw *authParamWriter) sep() {
	if aw.n > 0 {
		aw.cw.Fprint(", ")
	}
	aw.n++
}

func (aw *authParamWriter) token(name, value string) {
	aw.sep()
	aw.cw.Fprint(name, "=", value)
}

func (aw *authParamWriter) quoted(name, value string) {
	aw.sep()
	aw.cw.Fprint(name, "=", grammar.Quote(value))
}

func (aw *authParamWriter) params(ps []AuthParam) {
	for _, p := range ps {
		aw.sep()
		aw.cw.Fprint(p.String())
	}
}

// AuthParamTokenizer holds a raw auth-param. Quoted values keep their quotes.
type AuthParamTokenizer struct {
	Name  []byte
	Value []byte
}

func isAuthValueEnd(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// TokenizeAuthParam splits `name=value` or `name="quoted value"` at the start of in.
func TokenizeAuthParam(in []byte) (rest []byte, tok AuthParamTokenizer, err error) {
	var ok bool
	if tok.Name, rest, ok = grammar.CutToken(in); !ok {
		return in, AuthParamTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("auth parameter name expected"))
	}
	if rest, ok = grammar.CutByte(rest, '='); !ok {
		return in, AuthParamTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\"=\" expected"))
	}
	if len(rest) > 0 && rest[0] == '"' {
		if tok.Value, rest, ok = grammar.CutQuoted(rest); !ok {
			return in, AuthParamTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("unterminated quoted string"))
		}
		return rest, tok, nil
	}
	n := grammar.IndexFunc(rest, isAuthValueEnd)
	if n == 0 {
		return in, AuthParamTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("auth parameter value expected"))
	}
	tok.Value, rest = rest[:n], rest[n:]
	return rest, tok, nil
}

// TokenizeAuthParams splits comma separated auth-params.
func TokenizeAuthParams(in []byte) (rest []byte, toks []AuthParamTokenizer, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeAuthParam))
}

// AuthTokenizer holds the scheme and raw parameters of credentials or a challenge.
type AuthTokenizer struct {
	Scheme []byte
	Params []AuthParamTokenizer
}

// TokenizeAuth splits "scheme LWS auth-param *(, auth-param)" at the start of in.
func TokenizeAuth(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	var ok bool
	if tok.Scheme, rest, ok = grammar.CutToken(grammar.SkipLWS(in)); !ok {
		return in, AuthTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("auth scheme expected"))
	}
	if isEmptyValue(rest) {
		return rest, tok, nil
	}
	if rest, ok = cutLWS(rest); !ok {
		return in, AuthTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("white space expected"))
	}
	if rest, tok.Params, err = TokenizeAuthParams(rest); err != nil {
		return in, AuthTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// authValue returns the parameter value, quoted-string values are unquoted.
func authValue(tok AuthParamTokenizer) (string, bool) {
	if grammar.IsQuoted(tok.Value) {
		return grammar.Unquote(tok.Value), true
	}
	return string(tok.Value), false
}

func isDigestScheme(s string) bool { return util.EqFold(s, "Digest") }

// checkRequired returns [ErrInvalidParam] listing required parameters that were not seen.
func checkRequired(seen map[string]bool, names ...string) error {
	var missing []string
	for _, n := range names {
		if !seen[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return errtrace.Wrap(errorutil.NewInvalidParamError("missing %s", strings.Join(missing, ", ")))
	}
	return nil
}

func parseBool(name, v string) (bool, error) {
	switch {
	case util.EqFold(v, "true"):
		return true, nil
	case util.EqFold(v, "false"):
		return false, nil
	}
	return false, errtrace.Wrap(errorutil.NewParseError("invalid %s value %q", name, v))
}

func ptrBool(b bool) *bool { return &b }

func eqBoolPtr(b1, b2 *bool) bool {
	if b1 == nil || b2 == nil {
		return b1 == b2
	}
	return *b1 == *b2
}

func eqAlgPtr(a1, a2 *Algorithm) bool {
	if a1 == nil || a2 == nil {
		return a1 == a2
	}
	return a1.Equal(*a2)
}

func cloneAuthParams(ps []AuthParam) []AuthParam { return cloneHdrEntries(ps) }
