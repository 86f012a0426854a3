package typed

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// NameAddr represents a single element of From, To, Contact, Reply-To, Route and Record-Route headers.
// It contains an optional display name, URI, and header parameters.
type NameAddr struct {
	DisplayName *string
	URI         uri.URI
	Params      uri.Params
}

// Tag returns the tag parameter.
func (addr NameAddr) Tag() (string, bool) { return addr.Params.Value("tag") }

// SetTag replaces the tag parameter in place. Any existing tag is removed before the new one is added.
func (addr *NameAddr) SetTag(tag string) { addr.Params = addr.Params.Set(uri.NewParam("tag", tag)) }

// WithTag returns a copy of addr with the tag parameter replaced.
func (addr NameAddr) WithTag(tag string) NameAddr {
	addr.Params = addr.Params.Clone().Set(uri.NewParam("tag", tag))
	return addr
}

// Expires returns the expires parameter in seconds.
func (addr NameAddr) Expires() (uint32, bool) {
	p, ok := addr.Params.Get("expires")
	if !ok {
		return 0, false
	}
	return p.Uint()
}

// Q returns the q parameter.
func (addr NameAddr) Q() (float64, bool) {
	v, ok := addr.Params.Value("q")
	if !ok {
		return 0, false
	}
	q, err := strconv.ParseFloat(v, 64)
	return q, err == nil
}

// RenderTo always writes the enclosed form with the URI in angle brackets.
func (addr NameAddr) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if addr.DisplayName != nil {
		cw.Fprint(grammar.Quote(*addr.DisplayName), " ")
	}
	cw.Fprint("<")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.URI.RenderTo(w, opts)) })
	cw.Fprint(">")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.Params.RenderTo(w, opts)) })
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the NameAddr.
func (addr NameAddr) String() string {
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(addr.RenderTo(w, nil)) })
}

// Format implements fmt.Formatter for custom formatting of the NameAddr.
func (addr NameAddr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods NameAddr
		type NameAddr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), NameAddr(addr))
		return
	}
}

// Equal compares URIs and parameters, display names are ignored.
func (addr NameAddr) Equal(val any) bool {
	var other NameAddr
	switch v := val.(type) {
	case NameAddr:
		other = v
	case *NameAddr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return addr.URI.Equal(other.URI) && addr.Params.Equal(other.Params)
}

// IsValid checks whether the NameAddr is syntactically valid.
func (addr NameAddr) IsValid() bool { return addr.URI.IsValid() }

// IsZero checks whether the NameAddr is empty.
func (addr NameAddr) IsZero() bool {
	return addr.DisplayName == nil && addr.URI.IsZero() && len(addr.Params) == 0
}

// Clone returns a copy of the NameAddr.
func (addr NameAddr) Clone() NameAddr {
	if addr.DisplayName != nil {
		addr.DisplayName = util.PtrStr(*addr.DisplayName)
	}
	addr.URI = addr.URI.Clone()
	addr.Params = addr.Params.Clone()
	return addr
}

// NameAddrTokenizer holds raw parts of name-addr or addr-spec with parameters.
type NameAddrTokenizer struct {
	// DisplayName is a quoted-string with quotes or a sequence of tokens, nil if absent.
	DisplayName []byte
	URI         uri.Tokenizer
	Params      []uri.ParamTokenizer
	// Enclosed is set for the name-addr form with the URI in angle brackets.
	Enclosed bool
}

// TokenizeNameAddr splits `["display name"] <uri>;params` or `uri;params` at the start of in.
// The forms are told apart by the "<". In the bare form all parameters belong to the header.
func TokenizeNameAddr(in []byte) (rest []byte, tok NameAddrTokenizer, err error) {
	rest = grammar.SkipLWS(in)
	if len(rest) > 0 && rest[0] == '"' {
		var ok bool
		if tok.DisplayName, rest, ok = grammar.CutQuoted(rest); !ok {
			return in, NameAddrTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("unterminated display name"))
		}
		rest = grammar.SkipLWS(rest)
		if len(rest) == 0 || rest[0] != '<' {
			return in, NameAddrTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\"<\" expected"))
		}
	} else {
		r := rest
		for {
			_, r2, ok := grammar.CutToken(r)
			if !ok {
				break
			}
			r = grammar.SkipLWS(r2)
		}
		if len(r) > 0 && r[0] == '<' {
			if dn := grammar.TrimLWS(rest[:len(rest)-len(r)]); len(dn) > 0 {
				tok.DisplayName = dn
			}
			rest = r
		}
	}

	if len(rest) > 0 && rest[0] == '<' {
		tok.Enclosed = true
		if rest, tok.URI, err = uri.Tokenize(rest[1:]); err != nil {
			return in, NameAddrTokenizer{}, errtrace.Wrap(err)
		}
		if len(rest) == 0 || rest[0] != '>' {
			return in, NameAddrTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\">\" expected"))
		}
		rest = rest[1:]
	} else if rest, tok.URI, err = uri.TokenizeNoParams(rest); err != nil {
		return in, NameAddrTokenizer{}, errtrace.Wrap(err)
	}

	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, NameAddrTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// NameAddrFrom converts tokenized name-addr. Quoted display names are unquoted.
func NameAddrFrom(tok NameAddrTokenizer) (NameAddr, error) {
	var (
		addr NameAddr
		err  error
	)
	if tok.DisplayName != nil {
		if !utf8.Valid(tok.DisplayName) {
			return NameAddr{}, errtrace.Wrap(errorutil.NewUtf8Error("display name %q", tok.DisplayName))
		}
		dn := grammar.Unquote(tok.DisplayName)
		addr.DisplayName = &dn
	}
	if addr.URI, err = uri.FromTokenizer(tok.URI); err != nil {
		return NameAddr{}, errtrace.Wrap(err)
	}
	if addr.Params, err = uri.ParamsFrom(tok.Params); err != nil {
		return NameAddr{}, errtrace.Wrap(err)
	}
	return addr, nil
}

// ParseNameAddr parses a single name-addr with parameters.
func ParseNameAddr[T ~string | ~[]byte](s T) (NameAddr, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeNameAddr, NameAddrFrom))
}

// nameAddrList converts tokenized list entries.
func nameAddrList(toks []NameAddrTokenizer) ([]NameAddr, error) {
	return errtrace.Wrap2(convertList(toks, NameAddrFrom))
}
