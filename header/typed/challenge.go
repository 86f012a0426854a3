package typed

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Challenge is the value of WWW-Authenticate and Proxy-Authenticate headers.
// For the Digest scheme the standard parameters are kept in fields, everything else goes to Params.
type Challenge struct {
	Scheme    string
	Realm     string
	Domain    *string
	Nonce     string
	Opaque    *string
	Stale     *bool
	Algorithm *Algorithm
	Qop       []Qop
	Charset   *string
	Userhash  *bool
	Params    []AuthParam
}

// IsDigest reports whether the challenge uses the Digest scheme.
func (cln *Challenge) IsDigest() bool { return cln != nil && isDigestScheme(cln.Scheme) }

// SupportsQop reports whether the challenge offers the qop.
func (cln *Challenge) SupportsQop(qop Qop) bool {
	return cln != nil && slices.ContainsFunc(cln.Qop, func(q Qop) bool { return q.Equal(qop) })
}

func (cln *Challenge) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if cln == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(cln.Scheme)
	if !cln.IsDigest() && len(cln.Params) == 0 {
		return errtrace.Wrap2(cw.Result())
	}
	cw.Fprint(" ")

	aw := &authParamWriter{cw: cw}
	if cln.IsDigest() {
		aw.quoted("realm", cln.Realm)
		if cln.Domain != nil {
			aw.quoted("domain", *cln.Domain)
		}
		aw.quoted("nonce", cln.Nonce)
		if cln.Opaque != nil {
			aw.quoted("opaque", *cln.Opaque)
		}
		if cln.Stale != nil {
			aw.token("stale", fmt.Sprint(*cln.Stale))
		}
		if cln.Algorithm != nil {
			aw.token("algorithm", cln.Algorithm.String())
		}
		switch len(cln.Qop) {
		case 0:
		case 1:
			aw.token("qop", cln.Qop[0].String())
		default:
			// a list needs quotes to keep its commas
			qops := make([]string, len(cln.Qop))
			for i := range cln.Qop {
				qops[i] = cln.Qop[i].String()
			}
			aw.quoted("qop", strings.Join(qops, ","))
		}
		if cln.Charset != nil {
			aw.token("charset", *cln.Charset)
		}
		if cln.Userhash != nil {
			aw.token("userhash", fmt.Sprint(*cln.Userhash))
		}
	}
	aw.params(cln.Params)
	return errtrace.Wrap2(cw.Result())
}

func (cln *Challenge) String() string {
	if cln == nil {
		return ""
	}
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(cln.RenderTo(w, nil)) })
}

func (cln *Challenge) Clone() *Challenge {
	if cln == nil {
		return nil
	}
	cln2 := *cln
	if cln.Domain != nil {
		cln2.Domain = util.PtrStr(*cln.Domain)
	}
	if cln.Opaque != nil {
		cln2.Opaque = util.PtrStr(*cln.Opaque)
	}
	if cln.Stale != nil {
		cln2.Stale = ptrBool(*cln.Stale)
	}
	if cln.Algorithm != nil {
		alg := *cln.Algorithm
		cln2.Algorithm = &alg
	}
	cln2.Qop = slices.Clone(cln.Qop)
	if cln.Charset != nil {
		cln2.Charset = util.PtrStr(*cln.Charset)
	}
	if cln.Userhash != nil {
		cln2.Userhash = ptrBool(*cln.Userhash)
	}
	cln2.Params = cloneAuthParams(cln.Params)
	return &cln2
}

func (cln *Challenge) Equal(val any) bool {
	var other *Challenge
	switch v := val.(type) {
	case Challenge:
		other = &v
	case *Challenge:
		other = v
	default:
		return false
	}

	if cln == other {
		return true
	} else if cln == nil || other == nil {
		return false
	}

	return util.EqFold(cln.Scheme, other.Scheme) &&
		cln.Realm == other.Realm &&
		util.EqStrPtr(cln.Domain, other.Domain) &&
		cln.Nonce == other.Nonce &&
		util.EqStrPtr(cln.Opaque, other.Opaque) &&
		eqBoolPtr(cln.Stale, other.Stale) &&
		eqAlgPtr(cln.Algorithm, other.Algorithm) &&
		slices.EqualFunc(cln.Qop, other.Qop, func(q1, q2 Qop) bool { return q1.Equal(q2) }) &&
		util.EqStrPtr(cln.Charset, other.Charset) &&
		eqBoolPtr(cln.Userhash, other.Userhash) &&
		authParamsEqual(cln.Params, other.Params)
}

func (cln *Challenge) IsValid() bool {
	if cln == nil || cln.Scheme == "" {
		return false
	}
	return !cln.IsDigest() || cln.Realm != "" && cln.Nonce != ""
}

// ChallengeFrom converts tokenized challenge.
// Digest challenges require realm and nonce parameters, otherwise [ErrInvalidParam] is returned.
func ChallengeFrom(tok AuthTokenizer) (*Challenge, error) {
	cln := &Challenge{Scheme: string(tok.Scheme)}
	if !isDigestScheme(cln.Scheme) {
		for _, ptok := range tok.Params {
			v, quoted := authValue(ptok)
			cln.Params = append(cln.Params, AuthParam{Name: string(ptok.Name), Value: v, Quoted: quoted})
		}
		return cln, nil
	}

	seen := make(map[string]bool, len(tok.Params))
	for _, ptok := range tok.Params {
		name := util.LCase(string(ptok.Name))
		v, quoted := authValue(ptok)
		switch name {
		case "realm":
			cln.Realm = v
		case "domain":
			cln.Domain = &v
		case "nonce":
			cln.Nonce = v
		case "opaque":
			cln.Opaque = &v
		case "stale":
			b, err := parseBool(name, v)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			cln.Stale = &b
		case "algorithm":
			alg := AlgorithmFrom(v)
			cln.Algorithm = &alg
		case "qop":
			for q := range strings.SplitSeq(v, ",") {
				if q = strings.TrimSpace(q); q != "" {
					cln.Qop = append(cln.Qop, QopFrom(q))
				}
			}
		case "charset":
			cln.Charset = &v
		case "userhash":
			b, err := parseBool(name, v)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			cln.Userhash = &b
		default:
			cln.Params = append(cln.Params, AuthParam{Name: string(ptok.Name), Value: v, Quoted: quoted})
			continue
		}
		seen[name] = true
	}
	if err := checkRequired(seen, "realm", "nonce"); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return cln, nil
}

// ParseChallenge parses a challenge of WWW-Authenticate and Proxy-Authenticate headers.
func ParseChallenge[T ~string | ~[]byte](s T) (*Challenge, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAuth, ChallengeFrom))
}

// WWWAuthenticate represents the WWW-Authenticate header field.
// The WWW-Authenticate header field contains an authentication challenge of a UAS or registrar.
type WWWAuthenticate struct {
	Challenge
}

// CanonicName returns the canonical name of the header.
func (*WWWAuthenticate) CanonicName() Name { return "WWW-Authenticate" }

// CompactName returns the compact name of the header (WWW-Authenticate has no compact form).
func (*WWWAuthenticate) CompactName() Name { return "WWW-Authenticate" }

// RenderTo writes the header to the provided writer.
func (hdr *WWWAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *WWWAuthenticate) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.Challenge.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *WWWAuthenticate) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *WWWAuthenticate) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *WWWAuthenticate) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *WWWAuthenticate) Format(f fmt.State, verb rune) {
	type hideMethods WWWAuthenticate
	type WWWAuthenticate hideMethods
	formatHdr(f, verb, hdr, (*WWWAuthenticate)(hdr))
}

// Clone returns a copy of the header.
func (hdr *WWWAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &WWWAuthenticate{Challenge: *hdr.Challenge.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *WWWAuthenticate) Equal(val any) bool {
	var other *WWWAuthenticate
	switch v := val.(type) {
	case WWWAuthenticate:
		other = &v
	case *WWWAuthenticate:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Challenge.Equal(&other.Challenge)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *WWWAuthenticate) IsValid() bool { return hdr != nil && hdr.Challenge.IsValid() }

// TokenizeWWWAuthenticate splits the WWW-Authenticate header value.
func TokenizeWWWAuthenticate(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	return errtrace.Wrap3(TokenizeAuth(in))
}

// WWWAuthenticateFrom converts tokenized WWW-Authenticate header value.
func WWWAuthenticateFrom(tok AuthTokenizer) (*WWWAuthenticate, error) {
	cln, err := ChallengeFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &WWWAuthenticate{Challenge: *cln}, nil
}

// ParseWWWAuthenticate parses the WWW-Authenticate header value.
func ParseWWWAuthenticate[T ~string | ~[]byte](s T) (*WWWAuthenticate, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeWWWAuthenticate, WWWAuthenticateFrom))
}

// ProxyAuthenticate represents the Proxy-Authenticate header field.
// The Proxy-Authenticate header field contains an authentication challenge of a proxy.
type ProxyAuthenticate struct {
	Challenge
}

// CanonicName returns the canonical name of the header.
func (*ProxyAuthenticate) CanonicName() Name { return "Proxy-Authenticate" }

// CompactName returns the compact name of the header (Proxy-Authenticate has no compact form).
func (*ProxyAuthenticate) CompactName() Name { return "Proxy-Authenticate" }

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthenticate) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *ProxyAuthenticate) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.Challenge.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthenticate) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthenticate) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *ProxyAuthenticate) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *ProxyAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthenticate{Challenge: *hdr.Challenge.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthenticate) Equal(val any) bool {
	var other *ProxyAuthenticate
	switch v := val.(type) {
	case ProxyAuthenticate:
		other = &v
	case *ProxyAuthenticate:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Challenge.Equal(&other.Challenge)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ProxyAuthenticate) IsValid() bool { return hdr != nil && hdr.Challenge.IsValid() }

// TokenizeProxyAuthenticate splits the Proxy-Authenticate header value.
func TokenizeProxyAuthenticate(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	return errtrace.Wrap3(TokenizeAuth(in))
}

// ProxyAuthenticateFrom converts tokenized Proxy-Authenticate header value.
func ProxyAuthenticateFrom(tok AuthTokenizer) (*ProxyAuthenticate, error) {
	cln, err := ChallengeFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ProxyAuthenticate{Challenge: *cln}, nil
}

// ParseProxyAuthenticate parses the Proxy-Authenticate header value.
func ParseProxyAuthenticate[T ~string | ~[]byte](s T) (*ProxyAuthenticate, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeProxyAuthenticate, ProxyAuthenticateFrom))
}
