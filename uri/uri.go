package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// RenderOptions contains options for rendering URIs and headers.
type RenderOptions = types.RenderOptions

type (
	TransportProto = types.TransportProto
	RequestMethod  = types.RequestMethod
	Scheme         = types.Scheme
)

const (
	SchemeSIP  = types.SchemeSIP
	SchemeSIPS = types.SchemeSIPS
	SchemeTel  = types.SchemeTel
)

const (
	ErrTokenize = errorutil.ErrTokenize
	ErrParse    = errorutil.ErrParse
)

func newTrailingInputError() error {
	return errorutil.NewTrailingInputError() //errtrace:skip
}

// URI is a SIP, SIPS or other absolute URI.
//
// SIP and SIPS URIs, as well as URIs without a scheme, use the
// [user[:password]@]host[:port] form.
// The remainder of any other URI, like tel or urn, is stored in Path.
// A URI without scheme and host is accepted when it carries an absolute path, as digest-uri does.
type URI struct {
	Scheme       Scheme       `json:"scheme,omitempty"`
	Auth         *Auth        `json:"auth,omitempty"`
	HostWithPort HostWithPort `json:"host_with_port"`
	Path         string       `json:"path,omitempty"`
	Params       Params       `json:"params,omitempty"`
	Headers      []Header     `json:"headers,omitempty"`
}

// Header is a single URI header "name=value" pair.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IsSIP reports whether the URI is in the SIP host form.
func (u URI) IsSIP() bool { return usesHostForm(u.Scheme) }

func usesHostForm(s Scheme) bool { return s == "" || s == SchemeSIP || s == SchemeSIPS }

func (u URI) IsSecured() bool { return u.Scheme == SchemeSIPS }

func (u URI) Transport() (TransportProto, bool) {
	p, ok := u.Params.Get("transport")
	if !ok {
		return "", false
	}
	return p.Transport()
}

// UserParam returns value of the user parameter, like "phone".
func (u URI) UserParam() (string, bool) { return u.Params.Value("user") }

func (u URI) Method() (RequestMethod, bool) {
	v, ok := u.Params.Value("method")
	return RequestMethod(v).ToUpper(), ok
}

func (u URI) MAddr() (Host, bool) {
	v, ok := u.Params.Value("maddr")
	if !ok {
		return Host{}, false
	}
	return NewHost(v), true
}

func (u URI) TTL() (uint8, bool) {
	p, ok := u.Params.Get("ttl")
	if !ok {
		return 0, false
	}
	v, ok := p.Uint()
	return uint8(v), ok && v <= 255 //nolint:gosec
}

func (u URI) LR() bool { return u.Params.Has("lr") }

func shouldEscapeURIParamChar(c byte) bool { return !grammar.IsURIParamCharUnreserved(c) }

func shouldEscapeURIHeaderChar(c byte) bool { return !grammar.IsURIHeaderCharUnreserved(c) }

func (u URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.Scheme != "" {
		cw.Fprint(u.Scheme.ToLower(), ":")
	}
	if u.IsSIP() && !u.HostWithPort.IsZero() {
		if u.Auth != nil {
			cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.Auth.RenderTo(w, opts)) })
			cw.Fprint("@")
		}
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.HostWithPort.RenderTo(w, opts)) })
	}
	cw.Fprint(u.Path)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.Params.RenderTo(w, opts)) })
	for i, h := range u.Headers {
		if i == 0 {
			cw.Fprint("?")
		} else {
			cw.Fprint("&")
		}
		cw.Fprint(grammar.Escape(h.Name, shouldEscapeURIHeaderChar), "=", grammar.Escape(h.Value, shouldEscapeURIHeaderChar))
	}
	return errtrace.Wrap2(cw.Result())
}

func (u URI) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (u URI) String() string { return u.Render(nil) }

func (u URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URI(u))
		return
	}
}

func (u URI) Clone() URI {
	u.Auth = u.Auth.Clone()
	u.HostWithPort = u.HostWithPort.Clone()
	u.Params = u.Params.Clone()
	if u.Headers != nil {
		u.Headers = append([]Header(nil), u.Headers...)
	}
	return u
}

// Equal compares URIs following RFC 3261 19.1.4 loosely:
// scheme and host are case-insensitive, user info is case-sensitive,
// parameters are compared regardless of their order.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if !u.Scheme.Equal(other.Scheme) || !u.Auth.Equal(other.Auth) ||
		!u.HostWithPort.Equal(other.HostWithPort) || u.Path != other.Path ||
		!u.Params.Equal(other.Params) || len(u.Headers) != len(other.Headers) {
		return false
	}
	for i := range u.Headers {
		if !util.EqFold(u.Headers[i].Name, other.Headers[i].Name) || u.Headers[i].Value != other.Headers[i].Value {
			return false
		}
	}
	return true
}

func (u URI) IsValid() bool {
	if u.Scheme != "" && !u.Scheme.IsValid() {
		return false
	}
	if u.IsSIP() {
		if u.HostWithPort.IsZero() {
			return u.Scheme == "" && strings.HasPrefix(u.Path, "/")
		}
		return u.HostWithPort.IsValid() && (u.Auth == nil || u.Auth.IsValid())
	}
	return u.Path != ""
}

func (u URI) IsZero() bool {
	return u.Scheme == "" && u.Auth == nil && u.HostWithPort.IsZero() && u.Path == "" &&
		len(u.Params) == 0 && len(u.Headers) == 0
}

// Tokenizer holds raw URI parts. Scheme is nil when the URI has no scheme,
// Auth is nil when there is no user info.
type Tokenizer struct {
	Scheme       []byte
	Auth         *AuthTokenizer
	HostWithPort HostWithPortTokenizer
	Path         []byte
	Params       []ParamTokenizer
	Headers      []HeaderTokenizer
}

// HeaderTokenizer holds a raw, still escaped, URI header.
type HeaderTokenizer struct {
	Name  []byte
	Value []byte
}

// Tokenize splits a URI with parameters and headers at the start of in.
func Tokenize(in []byte) (rest []byte, tok Tokenizer, err error) {
	return errtrace.Wrap3(tokenize(in, true))
}

// TokenizeNoParams splits a URI without parameters and headers at the start of in,
// as used by sent-by and by bare URIs of name-addr headers.
func TokenizeNoParams(in []byte) (rest []byte, tok Tokenizer, err error) {
	return errtrace.Wrap3(tokenize(in, false))
}

func tokenize(in []byte, withParams bool) (rest []byte, tok Tokenizer, err error) {
	rest = in
	if r, stok, err := types.TokenizeScheme(rest); err == nil && isScheme(rest, stok.Value, r) {
		tok.Scheme, rest = stok.Value, r
	}

	if tok.Scheme == nil || usesHostForm(types.Scheme(util.LCase(string(tok.Scheme)))) {
		// schemeless absolute path has no host
		if tok.Scheme != nil || len(rest) == 0 || rest[0] != '/' {
			n, err := grammar.Server(rest)
			if err != nil {
				return in, Tokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("host expected"))
			}
			if un, ok := n.GetNode("userinfo"); ok {
				atok := authTokenizer(rest, un)
				tok.Auth = &atok
			}
			tok.HostWithPort = hostWithPortTokenizer(rest, grammar.MustGetNode(n, "hostport"))
			if rest = rest[n.Len():]; len(rest) > 0 && rest[0] == ':' {
				return in, Tokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("port expected"))
			}
		}
		if len(rest) > 0 && rest[0] == '/' {
			if n, err := grammar.URIPath(rest); err == nil {
				tok.Path, rest = grammar.Bytes(rest, n), rest[n.Len():]
			}
		}
	} else {
		n, err := grammar.URIPath(rest)
		if err != nil {
			return in, Tokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("empty URI"))
		}
		tok.Path, rest = grammar.Bytes(rest, n), rest[n.Len():]
	}

	if !withParams {
		return rest, tok, nil
	}

	if rest, tok.Params, err = tokenizeURIParams(rest); err != nil {
		return in, Tokenizer{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 && rest[0] == '?' {
		if rest, tok.Headers, err = tokenizeURIHeaders(rest[1:]); err != nil {
			return in, Tokenizer{}, errtrace.Wrap(err)
		}
	}
	return rest, tok, nil
}

// tokenizeURIHeaders splits "hname=hvalue *(& hname=hvalue)" at the start of in.
func tokenizeURIHeaders(in []byte) (rest []byte, toks []HeaderTokenizer, err error) {
	rest = in
	for {
		n, err := grammar.URIHeader(rest)
		if err != nil {
			return in, nil, errtrace.Wrap(errorutil.NewTokenizeError("URI header expected"))
		}
		tok := HeaderTokenizer{Name: grammar.Bytes(rest, grammar.MustGetNode(n, "hname"))}
		if vn, ok := n.GetNode("hvalue"); ok {
			tok.Value = grammar.Bytes(rest, vn)
		}
		toks = append(toks, tok)
		if rest = rest[n.Len():]; len(rest) == 0 || rest[0] != '&' {
			return rest, toks, nil
		}
		rest = rest[1:]
	}
}

// isScheme tells a scheme from "host:port" and "user:password@" that look alike.
func isScheme(in, name, rest []byte) bool {
	if types.Scheme(name).ToLower().IsKnown() {
		return true
	}
	if len(rest) == 0 || grammar.IsDigit(rest[0]) {
		return false
	}
	_, err := grammar.Userinfo(in)
	return err != nil
}

// FromTokenizer converts tokenized URI.
func FromTokenizer(tok Tokenizer) (URI, error) {
	var (
		u   URI
		err error
	)
	if tok.Scheme != nil {
		if u.Scheme, err = types.SchemeFrom(types.SchemeTokenizer{Value: tok.Scheme}); err != nil {
			return URI{}, errtrace.Wrap(err)
		}
	}
	if tok.Auth != nil {
		if u.Auth, err = AuthFrom(*tok.Auth); err != nil {
			return URI{}, errtrace.Wrap(err)
		}
	}
	if tok.HostWithPort.Host != nil {
		if u.HostWithPort, err = HostWithPortFrom(tok.HostWithPort); err != nil {
			return URI{}, errtrace.Wrap(err)
		}
	}
	u.Path = string(tok.Path)
	if u.IsSIP() && u.HostWithPort.IsZero() && !strings.HasPrefix(u.Path, "/") {
		return URI{}, errtrace.Wrap(errorutil.NewParseError("URI host expected"))
	}
	if u.Params, err = ParamsFrom(tok.Params); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if u.Headers, err = headersFrom(tok.Headers); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

func headersFrom(toks []HeaderTokenizer) ([]Header, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	hdrs := make([]Header, len(toks))
	for i, tok := range toks {
		hdrs[i] = Header{
			Name:  grammar.Unescape(string(tok.Name)),
			Value: grammar.Unescape(string(tok.Value)),
		}
	}
	return hdrs, nil
}

// Parse parses a URI with parameters and headers consuming the whole input.
func Parse[T ~string | ~[]byte](s T) (URI, error) {
	rest, tok, err := Tokenize([]byte(s))
	if err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return URI{}, errtrace.Wrap(newTrailingInputError())
	}
	return errtrace.Wrap2(FromTokenizer(tok))
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = u1
	return nil
}
