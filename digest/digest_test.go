package digest_test

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/digest"
	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/uri"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func ptr[T any](v T) *T { return &v }

func mufasa(method digest.RequestMethod) *digest.Generator {
	return &digest.Generator{
		Username:  "Mufasa",
		Password:  "Circle Of Life",
		Realm:     "testrealm@host.com",
		Nonce:     "dcd98b7102dd2f0e8b11d0f600bfb0c093",
		Method:    method,
		URI:       uri.URI{Path: "/dir/index.html"},
		Algorithm: typed.AlgorithmMD5,
		Qop:       &digest.AuthQop{Qop: typed.QopAuth, CNonce: "0a4f113b", NC: 1},
	}
}

func TestGenerator_Compute(t *testing.T) {
	t.Parallel()

	ha1 := md5Hex("Mufasa:testrealm@host.com:Circle Of Life")
	nonce := "dcd98b7102dd2f0e8b11d0f600bfb0c093"

	cases := []struct {
		name    string
		gen     func() *digest.Generator
		want    string
		wantErr error
	}{
		{"register", func() *digest.Generator { return mufasa("REGISTER") }, "59d17b90f0e821045ecceb843e5b38c4", nil},
		{"rfc 2617 get", func() *digest.Generator { return mufasa("GET") }, "6629fae49393a05397450978507c4ef1", nil},
		{
			"default algorithm",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Algorithm = ""
				return g
			},
			"59d17b90f0e821045ecceb843e5b38c4",
			nil,
		},
		{
			"no qop",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Qop = nil
				return g
			},
			md5Hex(ha1 + ":" + nonce + ":" + md5Hex("REGISTER:/dir/index.html")),
			nil,
		},
		{
			"auth-int",
			func() *digest.Generator {
				g := mufasa("INVITE")
				g.Qop.Qop = typed.QopAuthInt
				return g
			},
			md5Hex(ha1 + ":" + nonce + ":00000001:0a4f113b:auth-int:" +
				md5Hex("INVITE:/dir/index.html:"+md5Hex(""))),
			nil,
		},
		{
			"md5-sess",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Algorithm = typed.AlgorithmMD5Sess
				return g
			},
			md5Hex(md5Hex(ha1+":"+nonce+":0a4f113b") + ":" + nonce + ":00000001:0a4f113b:auth:" +
				md5Hex("REGISTER:/dir/index.html")),
			nil,
		},
		{
			"sip uri",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.URI = uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("biloxi.com")}}
				g.Qop.NC = 0x1a
				return g
			},
			md5Hex(ha1 + ":" + nonce + ":0000001a:0a4f113b:auth:" + md5Hex("REGISTER:sip:biloxi.com")),
			nil,
		},
		{
			"sess without qop",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Algorithm = typed.AlgorithmSHA256Sess
				g.Qop = nil
				return g
			},
			"",
			digest.ErrInvalidParam,
		},
		{
			"qop without cnonce",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Qop.CNonce = ""
				return g
			},
			"",
			digest.ErrInvalidParam,
		},
		{
			"unknown qop",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Qop.Qop = "auth-conf"
				return g
			},
			"",
			digest.ErrInvalidParam,
		},
		{
			"unknown algorithm",
			func() *digest.Generator {
				g := mufasa("REGISTER")
				g.Algorithm = "SHA-1"
				return g
			},
			"",
			digest.ErrUnsupportedAlgorithm,
		},
		{"nil generator", func() *digest.Generator { return nil }, "", digest.ErrInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.gen().Compute()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("gen.Compute() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("gen.Compute() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestGenerator_Compute_RFC7616(t *testing.T) {
	t.Parallel()

	g := &digest.Generator{
		Username: "Mufasa",
		Password: "Circle of Life",
		Realm:    "http-auth@example.org",
		Nonce:    "7ypf/xlj9XXwfDPEoM4URrv/xwf94BcCAzFZH4GiTo0v",
		Method:   "GET",
		URI:      uri.URI{Path: "/dir/index.html"},
		Qop:      &digest.AuthQop{Qop: typed.QopAuth, CNonce: "f2/wE4q74E6zIJEtWaHKaf5wv/H5QzzpXusqGemxURZJ", NC: 1},
	}
	for _, c := range []struct {
		alg  digest.Algorithm
		want string
	}{
		{typed.AlgorithmMD5, "8ca523f5e9506fed4657c9700eebdbec"},
		{typed.AlgorithmSHA256, "753927fa0e85d155564e2e272a28d1802ca10daf4496794697cf8db5856cb6c1"},
		{"sha-256", "753927fa0e85d155564e2e272a28d1802ca10daf4496794697cf8db5856cb6c1"},
	} {
		g.Algorithm = c.alg
		got, err := g.Compute()
		if err != nil {
			t.Fatalf("gen.Compute() with %s error = %v, want nil", c.alg, err)
		}
		if got != c.want {
			t.Errorf("gen.Compute() with %s = %q, want %q", c.alg, got, c.want)
		}
	}

	g.Algorithm = typed.AlgorithmSHA512
	got, err := g.Compute()
	if err != nil {
		t.Fatalf("gen.Compute() with SHA-512 error = %v, want nil", err)
	}
	if len(got) != 128 {
		t.Errorf("gen.Compute() with SHA-512 = %q, want 128 hex digits", got)
	}
}

func TestGenerator_Verify(t *testing.T) {
	t.Parallel()

	g := mufasa("REGISTER")
	if !g.Verify("59d17b90f0e821045ecceb843e5b38c4") {
		t.Errorf("gen.Verify(valid) = false, want true")
	}
	if !g.Verify("59D17B90F0E821045ECCEB843E5B38C4") {
		t.Errorf("gen.Verify(upper case) = false, want true")
	}
	if g.Verify("6629fae49393a05397450978507c4ef1") {
		t.Errorf("gen.Verify(other) = true, want false")
	}
	g.Algorithm = "SHA-1"
	if g.Verify("59d17b90f0e821045ecceb843e5b38c4") {
		t.Errorf("gen.Verify() with unsupported algorithm = true, want false")
	}
}

func TestFromAuthorization(t *testing.T) {
	t.Parallel()

	hdr, err := typed.ParseAuthorization(`Digest username="Mufasa", realm="testrealm@host.com", ` +
		`nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", uri="/dir/index.html", qop=auth, nc=00000001, ` +
		`cnonce="0a4f113b", response="59d17b90f0e821045ecceb843e5b38c4", opaque="5ccc069c403ebaf9f0171e9517f40e41"`)
	if err != nil {
		t.Fatalf("typed.ParseAuthorization() error = %v, want nil", err)
	}

	g, err := digest.FromAuthorization(hdr, "REGISTER", "Circle Of Life")
	if err != nil {
		t.Fatalf("digest.FromAuthorization() error = %v, want nil", err)
	}
	want := mufasa("REGISTER")
	want.Algorithm = ""
	want.DigestURI = "/dir/index.html"
	if diff := cmp.Diff(g, want); diff != "" {
		t.Errorf("digest.FromAuthorization() = %+v, want %+v\ndiff (-got +want):\n%v", g, want, diff)
	}

	if ok, err := digest.VerifyCredentials(&hdr.Credentials, "REGISTER", "Circle Of Life"); err != nil || !ok {
		t.Errorf("digest.VerifyCredentials() = %v, %v, want true, nil", ok, err)
	}
	if ok, err := digest.VerifyCredentials(&hdr.Credentials, "REGISTER", "circle of life"); err != nil || ok {
		t.Errorf("digest.VerifyCredentials(wrong password) = %v, %v, want false, nil", ok, err)
	}
	if ok, err := digest.VerifyCredentials(&hdr.Credentials, "INVITE", "Circle Of Life"); err != nil || ok {
		t.Errorf("digest.VerifyCredentials(wrong method) = %v, %v, want false, nil", ok, err)
	}

	basic := &typed.Credentials{Scheme: "Basic"}
	if _, err := digest.VerifyCredentials(basic, "REGISTER", ""); !errors.Is(err, digest.ErrInvalidArgument) {
		t.Errorf("digest.VerifyCredentials(Basic) error = %v, want %v", err, digest.ErrInvalidArgument)
	}
	if _, err := digest.FromAuthorization(nil, "REGISTER", ""); !errors.Is(err, digest.ErrInvalidArgument) {
		t.Errorf("digest.FromAuthorization(nil) error = %v, want %v", err, digest.ErrInvalidArgument)
	}
}

func TestVerifyCredentials_RawURI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{"upper case ipv6", "sip:[2001:DB8::1]"},
		{"upper case scheme", "SIP:Bob@Biloxi.com"},
		{"escaped user", "sip:b%6Fb@biloxi.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ha1 := md5Hex("bob:biloxi.com:zanzibar")
			resp := md5Hex(ha1 + ":n1:" + md5Hex("INVITE:"+c.raw))
			in := `Digest username="bob", realm="biloxi.com", nonce="n1", uri="` + c.raw + `", response="` + resp + `"`
			crd, err := typed.ParseCredentials(in)
			if err != nil {
				t.Fatalf("typed.ParseCredentials(%q) error = %v, want nil", in, err)
			}
			if crd.URI.String() == c.raw {
				t.Fatalf("crd.URI.String() = %q, want it to differ from the raw digest-uri", crd.URI.String())
			}
			if got := crd.DigestURI(); got != c.raw {
				t.Errorf("crd.DigestURI() = %q, want %q", got, c.raw)
			}
			if ok, err := digest.VerifyCredentials(crd, "INVITE", "zanzibar"); err != nil || !ok {
				t.Errorf("digest.VerifyCredentials() = %v, %v, want true, nil", ok, err)
			}
			if !strings.Contains(crd.String(), `uri="`+c.raw+`"`) {
				t.Errorf("crd.String() = %q, want the raw digest-uri", crd.String())
			}
		})
	}
}

func TestAnswerWWWAuthenticate(t *testing.T) {
	t.Parallel()

	hdr, err := typed.ParseWWWAuthenticate(`Digest realm="testrealm@host.com", qop="auth,auth-int", ` +
		`nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", opaque="5ccc069c403ebaf9f0171e9517f40e41"`)
	if err != nil {
		t.Fatalf("typed.ParseWWWAuthenticate() error = %v, want nil", err)
	}
	opts := &digest.AnswerOptions{
		Method:   "GET",
		URI:      uri.URI{Path: "/dir/index.html"},
		Username: "Mufasa",
		Password: "Circle Of Life",
		CNonce:   "0a4f113b",
	}

	got, err := digest.AnswerWWWAuthenticate(hdr, opts)
	if err != nil {
		t.Fatalf("digest.AnswerWWWAuthenticate() error = %v, want nil", err)
	}
	want := &typed.Authorization{Credentials: typed.Credentials{
		Scheme:   "Digest",
		Username: "Mufasa",
		Realm:    "testrealm@host.com",
		Nonce:    "dcd98b7102dd2f0e8b11d0f600bfb0c093",
		URI:      uri.URI{Path: "/dir/index.html"},
		Response: "6629fae49393a05397450978507c4ef1",
		Opaque:   ptr("5ccc069c403ebaf9f0171e9517f40e41"),
		Qop:      &digest.AuthQop{Qop: typed.QopAuth, CNonce: "0a4f113b", NC: 1},
	}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("digest.AnswerWWWAuthenticate() = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}

	back, err := typed.ParseAuthorization(got.RenderValue())
	if err != nil {
		t.Fatalf("typed.ParseAuthorization(%q) error = %v, want nil", got.RenderValue(), err)
	}
	if !back.Equal(got) {
		t.Errorf("typed.ParseAuthorization(%q) = %v, want %v", got.RenderValue(), back, got)
	}
	if ok, err := digest.VerifyCredentials(&back.Credentials, "GET", "Circle Of Life"); err != nil || !ok {
		t.Errorf("digest.VerifyCredentials() = %v, %v, want true, nil", ok, err)
	}
}

func TestAnswer(t *testing.T) {
	t.Parallel()

	opts := &digest.AnswerOptions{
		Method:   "REGISTER",
		URI:      uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("biloxi.com")}},
		Username: "bob",
		Password: "zanzibar",
	}

	t.Run("no qop", func(t *testing.T) {
		t.Parallel()

		cln, err := typed.ParseChallenge(`Digest realm="biloxi.com", nonce="ea9c8e88df84f1cec4341ae6cbe5a359", algorithm=MD5`)
		if err != nil {
			t.Fatalf("typed.ParseChallenge() error = %v, want nil", err)
		}
		crd, err := digest.Answer(cln, opts)
		if err != nil {
			t.Fatalf("digest.Answer() error = %v, want nil", err)
		}
		if crd.Qop != nil {
			t.Errorf("crd.Qop = %+v, want nil", crd.Qop)
		}
		if crd.Algorithm == nil || *crd.Algorithm != typed.AlgorithmMD5 {
			t.Errorf("crd.Algorithm = %v, want MD5", crd.Algorithm)
		}
		ha1 := md5Hex("bob:biloxi.com:zanzibar")
		want := md5Hex(ha1 + ":ea9c8e88df84f1cec4341ae6cbe5a359:" + md5Hex("REGISTER:sip:biloxi.com"))
		if crd.Response != want {
			t.Errorf("crd.Response = %q, want %q", crd.Response, want)
		}
	})

	t.Run("auth-int only", func(t *testing.T) {
		t.Parallel()

		cln, err := typed.ParseChallenge(`Digest realm="biloxi.com", nonce="n", qop="auth-int", algorithm=SHA-256-sess`)
		if err != nil {
			t.Fatalf("typed.ParseChallenge() error = %v, want nil", err)
		}
		crd, err := digest.Answer(cln, opts)
		if err != nil {
			t.Fatalf("digest.Answer() error = %v, want nil", err)
		}
		if crd.Qop == nil || crd.Qop.Qop != typed.QopAuthInt || crd.Qop.NC != 1 || len(crd.Qop.CNonce) != 32 {
			t.Errorf("crd.Qop = %+v, want auth-int with generated cnonce", crd.Qop)
		}
		if len(crd.Response) != 64 {
			t.Errorf("crd.Response = %q, want 64 hex digits", crd.Response)
		}
		if ok, err := digest.VerifyCredentials(crd, "REGISTER", "zanzibar"); err != nil || !ok {
			t.Errorf("digest.VerifyCredentials() = %v, %v, want true, nil", ok, err)
		}
	})

	t.Run("userhash", func(t *testing.T) {
		t.Parallel()

		cln, err := typed.ParseChallenge(`Digest realm="biloxi.com", nonce="n", qop="auth", algorithm=SHA-256, userhash=true`)
		if err != nil {
			t.Fatalf("typed.ParseChallenge() error = %v, want nil", err)
		}
		crd, err := digest.Answer(cln, opts)
		if err != nil {
			t.Fatalf("digest.Answer() error = %v, want nil", err)
		}
		sum := sha256.Sum256([]byte("bob:biloxi.com"))
		if want := hex.EncodeToString(sum[:]); crd.Username != want {
			t.Errorf("crd.Username = %q, want %q", crd.Username, want)
		}
		if diff := cmp.Diff(crd.Params, []typed.AuthParam{{Name: "userhash", Value: "true"}}); diff != "" {
			t.Errorf("crd.Params = %+v, want userhash\ndiff (-got +want):\n%v", crd.Params, diff)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name    string
			cln     string
			opts    *digest.AnswerOptions
			wantErr error
		}{
			{"other scheme", `Basic realm="biloxi.com"`, opts, digest.ErrInvalidArgument},
			{"nil options", `Digest realm="biloxi.com", nonce="n"`, nil, digest.ErrInvalidArgument},
			{"unsupported qop", `Digest realm="biloxi.com", nonce="n", qop="auth-conf"`, opts, digest.ErrInvalidParam},
			{"unsupported algorithm", `Digest realm="biloxi.com", nonce="n", algorithm=SHA-1`, opts, digest.ErrUnsupportedAlgorithm},
		}
		for _, c := range cases {
			cln, err := typed.ParseChallenge(c.cln)
			if err != nil {
				t.Fatalf("typed.ParseChallenge(%q) error = %v, want nil", c.cln, err)
			}
			_, err = digest.Answer(cln, c.opts)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("%s: digest.Answer() error = %v, want %v\ndiff (-got +want):\n%v", c.name, err, c.wantErr, diff)
			}
		}
	})
}

func TestAnswerProxyAuthenticate(t *testing.T) {
	t.Parallel()

	hdr, err := typed.ParseProxyAuthenticate(`Digest realm="atlanta.com", nonce="wf84f1ceczx41ae6cbe5aea9c8e88d359", qop="auth"`)
	if err != nil {
		t.Fatalf("typed.ParseProxyAuthenticate() error = %v, want nil", err)
	}
	got, err := digest.AnswerProxyAuthenticate(hdr, &digest.AnswerOptions{
		Method:   "INVITE",
		URI:      uri.URI{Scheme: uri.SchemeSIP, Auth: &uri.Auth{User: "bob"}, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("biloxi.com")}},
		Username: "alice",
		Password: "secret",
		CNonce:   "c0ffee",
		NC:       2,
	})
	if err != nil {
		t.Fatalf("digest.AnswerProxyAuthenticate() error = %v, want nil", err)
	}
	if got.CanonicName() != "Proxy-Authorization" {
		t.Errorf("got.CanonicName() = %q, want \"Proxy-Authorization\"", got.CanonicName())
	}
	ha1 := md5Hex("alice:atlanta.com:secret")
	want := md5Hex(ha1 + ":wf84f1ceczx41ae6cbe5aea9c8e88d359:00000002:c0ffee:auth:" + md5Hex("INVITE:sip:bob@biloxi.com"))
	if got.Response != want {
		t.Errorf("got.Response = %q, want %q", got.Response, want)
	}
}
