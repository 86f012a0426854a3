package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// Credentials is the value of Authorization and Proxy-Authorization headers.
// For the Digest scheme the standard parameters are kept in fields, everything else goes to Params.
// Other schemes keep all their parameters in Params.
type Credentials struct {
	Scheme    string
	Username  string
	Realm     string
	Nonce     string
	URI       uri.URI
	// RawURI is the digest-uri as received, responses are computed over it.
	// It is empty for credentials built locally.
	RawURI    string
	Response  string
	Algorithm *Algorithm
	Opaque    *string
	Qop       *AuthQop
	Params    []AuthParam
}

// DigestURI returns the digest-uri to hash and render: RawURI when set, URI otherwise.
func (crd *Credentials) DigestURI() string {
	if crd.RawURI != "" {
		return crd.RawURI
	}
	return crd.URI.String()
}

// IsDigest reports whether the credentials use the Digest scheme.
func (crd *Credentials) IsDigest() bool { return crd != nil && isDigestScheme(crd.Scheme) }

func (crd *Credentials) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if crd == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(crd.Scheme)
	if !crd.IsDigest() && len(crd.Params) == 0 {
		return errtrace.Wrap2(cw.Result())
	}
	cw.Fprint(" ")

	aw := &authParamWriter{cw: cw}
	if crd.IsDigest() {
		aw.quoted("username", crd.Username)
		aw.quoted("realm", crd.Realm)
		aw.quoted("nonce", crd.Nonce)
		if crd.RawURI != "" {
			aw.quoted("uri", crd.RawURI)
		} else {
			aw.quoted("uri", crd.URI.Render(opts))
		}
		aw.quoted("response", crd.Response)
		if crd.Algorithm != nil {
			aw.token("algorithm", crd.Algorithm.String())
		}
		if crd.Qop != nil {
			aw.quoted("cnonce", crd.Qop.CNonce)
			aw.token("nc", crd.Qop.NCString())
			aw.token("qop", crd.Qop.Qop.String())
		}
		if crd.Opaque != nil {
			aw.quoted("opaque", *crd.Opaque)
		}
	}
	aw.params(crd.Params)
	return errtrace.Wrap2(cw.Result())
}

func (crd *Credentials) String() string {
	if crd == nil {
		return ""
	}
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(crd.RenderTo(w, nil)) })
}

func (crd *Credentials) Clone() *Credentials {
	if crd == nil {
		return nil
	}
	crd2 := *crd
	crd2.URI = crd.URI.Clone()
	if crd.Algorithm != nil {
		alg := *crd.Algorithm
		crd2.Algorithm = &alg
	}
	if crd.Opaque != nil {
		crd2.Opaque = util.PtrStr(*crd.Opaque)
	}
	if crd.Qop != nil {
		qop := *crd.Qop
		crd2.Qop = &qop
	}
	crd2.Params = cloneAuthParams(crd.Params)
	return &crd2
}

// Equal compares credentials. Scheme and algorithm are case-insensitive.
func (crd *Credentials) Equal(val any) bool {
	var other *Credentials
	switch v := val.(type) {
	case Credentials:
		other = &v
	case *Credentials:
		other = v
	default:
		return false
	}

	if crd == other {
		return true
	} else if crd == nil || other == nil {
		return false
	}

	return util.EqFold(crd.Scheme, other.Scheme) &&
		crd.Username == other.Username &&
		crd.Realm == other.Realm &&
		crd.Nonce == other.Nonce &&
		crd.URI.Equal(other.URI) &&
		crd.Response == other.Response &&
		eqAlgPtr(crd.Algorithm, other.Algorithm) &&
		util.EqStrPtr(crd.Opaque, other.Opaque) &&
		((crd.Qop == nil && other.Qop == nil) || crd.Qop != nil && crd.Qop.Equal(other.Qop)) &&
		authParamsEqual(crd.Params, other.Params)
}

func (crd *Credentials) IsValid() bool {
	if crd == nil || crd.Scheme == "" {
		return false
	}
	if !crd.IsDigest() {
		return true
	}
	return crd.Username != "" && crd.Realm != "" && crd.Nonce != "" && crd.Response != "" &&
		(crd.Qop == nil || crd.Qop.CNonce != "")
}

// CredentialsFrom converts tokenized credentials.
// Digest credentials require username, realm, nonce, uri and response parameters,
// qop requires cnonce and nc, otherwise [ErrInvalidParam] is returned.
func CredentialsFrom(tok AuthTokenizer) (*Credentials, error) {
	crd := &Credentials{Scheme: string(tok.Scheme)}
	if !isDigestScheme(crd.Scheme) {
		for _, ptok := range tok.Params {
			v, quoted := authValue(ptok)
			crd.Params = append(crd.Params, AuthParam{Name: string(ptok.Name), Value: v, Quoted: quoted})
		}
		return crd, nil
	}

	seen := make(map[string]bool, len(tok.Params))
	var (
		qop        Qop
		cnonce, nc string
	)
	for _, ptok := range tok.Params {
		name := util.LCase(string(ptok.Name))
		v, quoted := authValue(ptok)
		switch name {
		case "username":
			crd.Username = v
		case "realm":
			crd.Realm = v
		case "nonce":
			crd.Nonce = v
		case "uri":
			u, err := uri.Parse(v)
			if err != nil {
				return nil, errtrace.Wrap(errorutil.NewParseError(err))
			}
			crd.URI, crd.RawURI = u, v
		case "response":
			crd.Response = v
		case "algorithm":
			alg := AlgorithmFrom(v)
			crd.Algorithm = &alg
		case "opaque":
			crd.Opaque = &v
		case "qop":
			qop = QopFrom(v)
		case "cnonce":
			cnonce = v
		case "nc":
			nc = v
		default:
			crd.Params = append(crd.Params, AuthParam{Name: string(ptok.Name), Value: v, Quoted: quoted})
			continue
		}
		seen[name] = true
	}
	if err := checkRequired(seen, "username", "realm", "nonce", "uri", "response"); err != nil {
		return nil, errtrace.Wrap(err)
	}

	switch {
	case seen["qop"]:
		if err := checkRequired(seen, "cnonce", "nc"); err != nil {
			return nil, errtrace.Wrap(err)
		}
		n, err := parseNC(nc)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		crd.Qop = &AuthQop{Qop: qop, CNonce: cnonce, NC: n}
	case seen["cnonce"] || seen["nc"]:
		return nil, errtrace.Wrap(errorutil.NewInvalidParamError("cnonce and nc require qop"))
	}
	return crd, nil
}

// ParseCredentials parses credentials of Authorization and Proxy-Authorization headers.
func ParseCredentials[T ~string | ~[]byte](s T) (*Credentials, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAuth, CredentialsFrom))
}

// Authorization represents the Authorization header field.
// The Authorization header field contains authentication credentials of a UA.
type Authorization struct {
	Credentials
}

// CanonicName returns the canonical name of the header.
func (*Authorization) CanonicName() Name { return "Authorization" }

// CompactName returns the compact name of the header (Authorization has no compact form).
func (*Authorization) CompactName() Name { return "Authorization" }

// RenderTo writes the header to the provided writer.
func (hdr *Authorization) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *Authorization) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.Credentials.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *Authorization) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *Authorization) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *Authorization) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Authorization) Format(f fmt.State, verb rune) {
	type hideMethods Authorization
	type Authorization hideMethods
	formatHdr(f, verb, hdr, (*Authorization)(hdr))
}

// Clone returns a copy of the header.
func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Authorization{Credentials: *hdr.Credentials.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *Authorization) Equal(val any) bool {
	var other *Authorization
	switch v := val.(type) {
	case Authorization:
		other = &v
	case *Authorization:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Credentials.Equal(&other.Credentials)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Authorization) IsValid() bool { return hdr != nil && hdr.Credentials.IsValid() }

// TokenizeAuthorization splits the Authorization header value.
func TokenizeAuthorization(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	return errtrace.Wrap3(TokenizeAuth(in))
}

// AuthorizationFrom converts tokenized Authorization header value.
func AuthorizationFrom(tok AuthTokenizer) (*Authorization, error) {
	crd, err := CredentialsFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Authorization{Credentials: *crd}, nil
}

// ParseAuthorization parses the Authorization header value.
func ParseAuthorization[T ~string | ~[]byte](s T) (*Authorization, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAuthorization, AuthorizationFrom))
}

// ProxyAuthorization represents the Proxy-Authorization header field.
// It carries credentials of the client for a proxy that requires authentication.
type ProxyAuthorization struct {
	Credentials
}

// CanonicName returns the canonical name of the header.
func (*ProxyAuthorization) CanonicName() Name { return "Proxy-Authorization" }

// CompactName returns the compact name of the header (Proxy-Authorization has no compact form).
func (*ProxyAuthorization) CompactName() Name { return "Proxy-Authorization" }

// RenderTo writes the header to the provided writer.
func (hdr *ProxyAuthorization) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *ProxyAuthorization) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.Credentials.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *ProxyAuthorization) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *ProxyAuthorization) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *ProxyAuthorization) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *ProxyAuthorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ProxyAuthorization{Credentials: *hdr.Credentials.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ProxyAuthorization) Equal(val any) bool {
	var other *ProxyAuthorization
	switch v := val.(type) {
	case ProxyAuthorization:
		other = &v
	case *ProxyAuthorization:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Credentials.Equal(&other.Credentials)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ProxyAuthorization) IsValid() bool { return hdr != nil && hdr.Credentials.IsValid() }

// TokenizeProxyAuthorization splits the Proxy-Authorization header value.
func TokenizeProxyAuthorization(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	return errtrace.Wrap3(TokenizeAuth(in))
}

// ProxyAuthorizationFrom converts tokenized Proxy-Authorization header value.
func ProxyAuthorizationFrom(tok AuthTokenizer) (*ProxyAuthorization, error) {
	crd, err := CredentialsFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ProxyAuthorization{Credentials: *crd}, nil
}

// ParseProxyAuthorization parses the Proxy-Authorization header value.
func ParseProxyAuthorization[T ~string | ~[]byte](s T) (*ProxyAuthorization, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeProxyAuthorization, ProxyAuthorizationFrom))
}
