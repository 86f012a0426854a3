// Package digest computes and verifies digest authentication responses
// as defined in RFC 2617 and RFC 7616.
//
// A [Generator] holds everything the response depends on.
// Servers build it from received credentials with [FromCredentials] and check the response with [Generator.Verify],
// clients answer a challenge with [Answer] or its header flavours [AnswerWWWAuthenticate] and [AnswerProxyAuthenticate].
package digest

//go:generate go tool errtrace -w .

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/google/uuid"

	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

type (
	Algorithm     = typed.Algorithm
	Qop           = typed.Qop
	AuthQop       = typed.AuthQop
	RequestMethod = types.RequestMethod
)

const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	ErrInvalidParam    = errorutil.ErrInvalidParam
	// ErrUnsupportedAlgorithm is returned for algorithms other than MD5, SHA-256, SHA-512 and their -sess variants.
	ErrUnsupportedAlgorithm errorutil.Error = "unsupported digest algorithm"
)

const scheme = "Digest"

var hashFuncs = map[Algorithm]func() hash.Hash{
	typed.AlgorithmMD5:    md5.New,
	typed.AlgorithmSHA256: sha256.New,
	typed.AlgorithmSHA512: sha512.New,
}

// Generator computes the digest response for a single request.
// Empty Algorithm means MD5. Nil Qop selects the RFC 2069 compatible response without cnonce and nonce count.
type Generator struct {
	Username  string
	Password  string
	Realm     string
	Nonce     string
	Method    RequestMethod
	URI       uri.URI
	// DigestURI replaces the rendered URI in HA2 when not empty.
	DigestURI string
	Algorithm Algorithm
	Qop       *AuthQop
}

func (g *Generator) algorithm() Algorithm {
	if g.Algorithm == "" {
		return typed.AlgorithmMD5
	}
	return g.Algorithm
}

func (g *Generator) hashFunc() (func() hash.Hash, error) {
	if fn, ok := hashFuncs[typed.AlgorithmFrom(g.algorithm().Base())]; ok {
		return fn, nil
	}
	return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedAlgorithm, "%q", g.Algorithm))
}

func (g *Generator) check() error {
	if g == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil generator"))
	}
	if g.Qop != nil {
		switch g.Qop.Qop {
		case typed.QopAuth, typed.QopAuthInt:
		default:
			return errtrace.Wrap(errorutil.NewInvalidParamError("unsupported qop %q", g.Qop.Qop))
		}
		if g.Qop.CNonce == "" {
			return errtrace.Wrap(errorutil.NewInvalidParamError("qop requires cnonce"))
		}
	} else if g.algorithm().IsSess() {
		return errtrace.Wrap(errorutil.NewInvalidParamError("%s requires qop with cnonce", g.algorithm()))
	}
	return nil
}

// Compute returns the lower-case hex response value.
//
//	HA1 = H(username ":" realm ":" password)
//	HA1 = H(H(username ":" realm ":" password) ":" nonce ":" cnonce)   for -sess algorithms
//	HA2 = H(method ":" uri)                                            for qop auth or no qop
//	HA2 = H(method ":" uri ":" H(""))                                  for qop auth-int
//	response = H(HA1 ":" nonce ":" nc ":" cnonce ":" qop ":" HA2)      with qop
//	response = H(HA1 ":" nonce ":" HA2)                                without qop
//
// The auth-int body hash is always the hash of an empty entity body.
func (g *Generator) Compute() (string, error) {
	if err := g.check(); err != nil {
		return "", errtrace.Wrap(err)
	}
	newHash, err := g.hashFunc()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	h := func(parts ...string) string { return hexHash(newHash(), parts...) }

	ha1 := h(g.Username, g.Realm, g.Password)
	if g.algorithm().IsSess() {
		ha1 = h(ha1, g.Nonce, g.Qop.CNonce)
	}

	u := g.DigestURI
	if u == "" {
		u = g.URI.String()
	}
	var ha2 string
	if g.Qop != nil && g.Qop.Qop == typed.QopAuthInt {
		ha2 = h(string(g.Method), u, h(""))
	} else {
		ha2 = h(string(g.Method), u)
	}

	if g.Qop == nil {
		return h(ha1, g.Nonce, ha2), nil
	}
	return h(ha1, g.Nonce, g.Qop.NCString(), g.Qop.CNonce, string(g.Qop.Qop), ha2), nil
}

// Verify reports whether the candidate response matches the computed one.
// Hex digits are compared case-insensitively.
func (g *Generator) Verify(candidate string) bool {
	want, err := g.Compute()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(candidate))) == 1
}

func hexHash(h hash.Hash, parts ...string) string {
	for i, p := range parts {
		if i > 0 {
			io.WriteString(h, ":")
		}
		io.WriteString(h, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// FromCredentials builds a generator from Digest credentials received in
// an Authorization or Proxy-Authorization header.
// The method is the method of the request that carried the credentials.
func FromCredentials(crd *typed.Credentials, method RequestMethod, password string) (*Generator, error) {
	if !crd.IsDigest() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("not Digest credentials"))
	}
	g := &Generator{
		Username:  crd.Username,
		Password:  password,
		Realm:     crd.Realm,
		Nonce:     crd.Nonce,
		Method:    method,
		URI:       crd.URI.Clone(),
		DigestURI: crd.RawURI,
	}
	if crd.Algorithm != nil {
		g.Algorithm = *crd.Algorithm
	}
	if crd.Qop != nil {
		qop := *crd.Qop
		g.Qop = &qop
	}
	return g, nil
}

// FromAuthorization is [FromCredentials] for the Authorization header.
func FromAuthorization(hdr *typed.Authorization, method RequestMethod, password string) (*Generator, error) {
	if hdr == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil Authorization"))
	}
	return errtrace.Wrap2(FromCredentials(&hdr.Credentials, method, password))
}

// VerifyCredentials checks the response of received Digest credentials against the password.
func VerifyCredentials(crd *typed.Credentials, method RequestMethod, password string) (bool, error) {
	g, err := FromCredentials(crd, method, password)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	if err := g.check(); err != nil {
		return false, errtrace.Wrap(err)
	}
	if _, err := g.hashFunc(); err != nil {
		return false, errtrace.Wrap(err)
	}
	return g.Verify(crd.Response), nil
}

// AnswerOptions are the client side inputs of a challenge answer.
type AnswerOptions struct {
	Method   RequestMethod
	URI      uri.URI
	Username string
	Password string
	// CNonce is the client nonce, a random one is generated when empty.
	CNonce string
	// NC is the nonce count, zero means the first use of the nonce.
	NC uint32
}

func (o *AnswerOptions) cnonce() string {
	if o == nil || o.CNonce == "" {
		return NewCNonce()
	}
	return o.CNonce
}

func (o *AnswerOptions) nc() uint32 {
	if o == nil || o.NC == 0 {
		return 1
	}
	return o.NC
}

// NewCNonce returns a random client nonce.
func NewCNonce() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }

// FromChallenge builds a generator answering a Digest challenge.
// When the challenge offers qop, auth is preferred over auth-int.
func FromChallenge(cln *typed.Challenge, opts *AnswerOptions) (*Generator, error) {
	if !cln.IsDigest() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("not Digest challenge"))
	}
	if opts == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil options"))
	}
	g := &Generator{
		Username: opts.Username,
		Password: opts.Password,
		Realm:    cln.Realm,
		Nonce:    cln.Nonce,
		Method:   opts.Method,
		URI:      opts.URI.Clone(),
	}
	if cln.Algorithm != nil {
		g.Algorithm = *cln.Algorithm
	}
	switch {
	case cln.SupportsQop(typed.QopAuth):
		g.Qop = &AuthQop{Qop: typed.QopAuth, CNonce: opts.cnonce(), NC: opts.nc()}
	case cln.SupportsQop(typed.QopAuthInt):
		g.Qop = &AuthQop{Qop: typed.QopAuthInt, CNonce: opts.cnonce(), NC: opts.nc()}
	case len(cln.Qop) > 0:
		return nil, errtrace.Wrap(errorutil.NewInvalidParamError("no supported qop in %v", cln.Qop))
	}
	if _, err := g.hashFunc(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return g, nil
}

// Answer computes the credentials answering a Digest challenge.
// Opaque and algorithm are echoed back. With userhash=true the username is sent hashed as RFC 7616 requires.
func Answer(cln *typed.Challenge, opts *AnswerOptions) (*typed.Credentials, error) {
	g, err := FromChallenge(cln, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	resp, err := g.Compute()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	crd := &typed.Credentials{
		Scheme:   scheme,
		Username: g.Username,
		Realm:    g.Realm,
		Nonce:    g.Nonce,
		URI:      g.URI.Clone(),
		Response: resp,
	}
	if cln.Algorithm != nil {
		alg := *cln.Algorithm
		crd.Algorithm = &alg
	}
	if cln.Opaque != nil {
		opaque := *cln.Opaque
		crd.Opaque = &opaque
	}
	if g.Qop != nil {
		qop := *g.Qop
		crd.Qop = &qop
	}
	if cln.Userhash != nil && *cln.Userhash {
		newHash, _ := g.hashFunc()
		crd.Username = hexHash(newHash(), g.Username, g.Realm)
		crd.Params = append(crd.Params, typed.AuthParam{Name: "userhash", Value: "true"})
	}
	return crd, nil
}

// AnswerWWWAuthenticate answers the WWW-Authenticate challenge of a 401 response.
func AnswerWWWAuthenticate(hdr *typed.WWWAuthenticate, opts *AnswerOptions) (*typed.Authorization, error) {
	if hdr == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil WWW-Authenticate"))
	}
	crd, err := Answer(&hdr.Challenge, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &typed.Authorization{Credentials: *crd}, nil
}

// AnswerProxyAuthenticate answers the Proxy-Authenticate challenge of a 407 response.
func AnswerProxyAuthenticate(hdr *typed.ProxyAuthenticate, opts *AnswerOptions) (*typed.ProxyAuthorization, error) {
	if hdr == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil Proxy-Authenticate"))
	}
	crd, err := Answer(&hdr.Challenge, opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &typed.ProxyAuthorization{Credentials: *crd}, nil
}
