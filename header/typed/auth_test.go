package typed_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header/typed"
)

func TestParseAuthorization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *typed.Authorization
		wantErr error
	}{
		{"empty", "", nil, typed.ErrTokenize},
		{"no space", `Digest,username="a"`, nil, typed.ErrTokenize},
		{
			"missing realm",
			`Digest username="bob", nonce="n", uri="sip:b.com", response="r"`,
			nil,
			typed.ErrInvalidParam,
		},
		{
			"qop without cnonce",
			`Digest username="bob", realm="b.com", nonce="n", uri="sip:b.com", response="r", qop=auth, nc=00000001`,
			nil,
			typed.ErrInvalidParam,
		},
		{
			"cnonce without qop",
			`Digest username="bob", realm="b.com", nonce="n", uri="sip:b.com", response="r", cnonce="c"`,
			nil,
			typed.ErrInvalidParam,
		},
		{
			"bad nc",
			`Digest username="bob", realm="b.com", nonce="n", uri="sip:b.com", response="r", qop=auth, cnonce="c", nc=zz`,
			nil,
			typed.ErrParse,
		},
		{
			"minimal",
			`Digest username="bob", realm="biloxi.com", nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", uri="sip:bob@biloxi.com", response="245f23415f11432b3434341c022"`,
			&typed.Authorization{Credentials: typed.Credentials{
				Scheme:   "Digest",
				Username: "bob",
				Realm:    "biloxi.com",
				Nonce:    "dcd98b7102dd2f0e8b11d0f600bfb0c093",
				URI:      mustURI("sip:bob@biloxi.com"),
				RawURI:   "sip:bob@biloxi.com",
				Response: "245f23415f11432b3434341c022",
			}},
			nil,
		},
		{
			"full",
			"digest  username=\"bob\",realm=\"biloxi.com\" ,\r\n nonce=\"n\", uri=\"sip:bob@biloxi.com\", response=\"r\", " +
				"algorithm=md5, cnonce=\"0a4f113b\", nc=0000000a, qop=AUTH, opaque=\"5ccc\", foo=bar",
			&typed.Authorization{Credentials: typed.Credentials{
				Scheme:    "digest",
				Username:  "bob",
				Realm:     "biloxi.com",
				Nonce:     "n",
				URI:       mustURI("sip:bob@biloxi.com"),
				RawURI:    "sip:bob@biloxi.com",
				Response:  "r",
				Algorithm: ptr(typed.AlgorithmMD5),
				Opaque:    ptr("5ccc"),
				Qop:       &typed.AuthQop{Qop: typed.QopAuth, CNonce: "0a4f113b", NC: 10},
				Params:    []typed.AuthParam{{Name: "foo", Value: "bar"}},
			}},
			nil,
		},
		{
			"other scheme",
			`Basic realm="b.com", token="x"`,
			&typed.Authorization{Credentials: typed.Credentials{
				Scheme: "Basic",
				Params: []typed.AuthParam{
					{Name: "realm", Value: "b.com", Quoted: true},
					{Name: "token", Value: "x", Quoted: true},
				},
			}},
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := typed.ParseAuthorization(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("typed.ParseAuthorization(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("typed.ParseAuthorization(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestAuthorization_Render(t *testing.T) {
	t.Parallel()

	hdr := &typed.Authorization{Credentials: typed.Credentials{
		Scheme:    "Digest",
		Username:  "Mufasa",
		Realm:     "testrealm@host.com",
		Nonce:     "dcd98b7102dd2f0e8b11d0f600bfb0c093",
		URI:       mustURI("sip:bob@biloxi.com"),
		Response:  "6629fae49393a05397450978507c4ef1",
		Algorithm: ptr(typed.AlgorithmMD5),
		Opaque:    ptr("5ccc069c403ebaf9f0171e9517f40e41"),
		Qop:       &typed.AuthQop{Qop: typed.QopAuth, CNonce: "0a4f113b", NC: 1},
	}}
	want := `Authorization: Digest username="Mufasa", realm="testrealm@host.com", ` +
		`nonce="dcd98b7102dd2f0e8b11d0f600bfb0c093", uri="sip:bob@biloxi.com", ` +
		`response="6629fae49393a05397450978507c4ef1", algorithm=MD5, cnonce="0a4f113b", nc=00000001, qop=auth, ` +
		`opaque="5ccc069c403ebaf9f0171e9517f40e41"`
	if got := hdr.Render(nil); got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}

	parsed, err := typed.ParseAuthorization(hdr.RenderValue())
	if err != nil {
		t.Fatalf("typed.ParseAuthorization(hdr.RenderValue()) error = %v, want nil", err)
	}
	want2 := *hdr
	want2.RawURI = "sip:bob@biloxi.com"
	if diff := cmp.Diff(parsed, &want2); diff != "" {
		t.Errorf("round trip mismatch\ndiff (-got +want):\n%v", diff)
	}

	pa := &typed.ProxyAuthorization{Credentials: hdr.Credentials}
	if got := pa.CanonicName(); got != "Proxy-Authorization" {
		t.Errorf("pa.CanonicName() = %q, want %q", got, "Proxy-Authorization")
	}
	if !pa.Clone().Equal(pa) {
		t.Error("pa.Clone().Equal(pa) = false, want true")
	}
	if pa.Equal(hdr) {
		t.Error("pa.Equal(hdr) = true, want false")
	}
}

func TestParseWWWAuthenticate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *typed.WWWAuthenticate
		wantErr error
	}{
		{"missing nonce", `Digest realm="atlanta.com"`, nil, typed.ErrInvalidParam},
		{"bad stale", `Digest realm="a.com", nonce="n", stale=maybe`, nil, typed.ErrParse},
		{
			"full",
			`Digest realm="atlanta.com", domain="sip:ss1.carrier.com", qop="auth,auth-int", ` +
				`nonce="f84f1cec41e6cbe5aea9c8e88d359", opaque="", stale=FALSE, algorithm=SHA-256-sess`,
			&typed.WWWAuthenticate{Challenge: typed.Challenge{
				Scheme:    "Digest",
				Realm:     "atlanta.com",
				Domain:    ptr("sip:ss1.carrier.com"),
				Nonce:     "f84f1cec41e6cbe5aea9c8e88d359",
				Opaque:    ptr(""),
				Stale:     ptr(false),
				Algorithm: ptr(typed.AlgorithmSHA256Sess),
				Qop:       []typed.Qop{typed.QopAuth, typed.QopAuthInt},
			}},
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := typed.ParseWWWAuthenticate(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("typed.ParseWWWAuthenticate(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("typed.ParseWWWAuthenticate(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestChallenge_Render(t *testing.T) {
	t.Parallel()

	hdr := &typed.ProxyAuthenticate{Challenge: typed.Challenge{
		Scheme:    "Digest",
		Realm:     "atlanta.com",
		Nonce:     "wf84f1ceczx41ae6cbe5aea9c8e88d359",
		Opaque:    ptr(""),
		Stale:     ptr(false),
		Algorithm: ptr(typed.AlgorithmMD5),
		Qop:       []typed.Qop{typed.QopAuth, typed.QopAuthInt},
	}}
	want := `Proxy-Authenticate: Digest realm="atlanta.com", nonce="wf84f1ceczx41ae6cbe5aea9c8e88d359", ` +
		`opaque="", stale=false, algorithm=MD5, qop="auth,auth-int"`
	if got := hdr.Render(nil); got != want {
		t.Errorf("hdr.Render(nil) = %q, want %q", got, want)
	}
	if !hdr.SupportsQop(typed.QopAuthInt) {
		t.Error("hdr.SupportsQop(auth-int) = false, want true")
	}
	if !hdr.IsDigest() {
		t.Error("hdr.IsDigest() = false, want true")
	}
}

func TestChallenge_Render_SingleQop(t *testing.T) {
	t.Parallel()

	in := `Digest realm="atlanta.com", nonce="n1", qop="auth"`
	cln, err := typed.ParseChallenge(in)
	if err != nil {
		t.Fatalf("typed.ParseChallenge(%q) error = %v, want nil", in, err)
	}
	want := `Digest realm="atlanta.com", nonce="n1", qop=auth`
	if got := cln.String(); got != want {
		t.Errorf("cln.String() = %q, want %q", got, want)
	}

	back, err := typed.ParseChallenge(want)
	if err != nil {
		t.Fatalf("typed.ParseChallenge(%q) error = %v, want nil", want, err)
	}
	if !back.SupportsQop(typed.QopAuth) || len(back.Qop) != 1 {
		t.Errorf("typed.ParseChallenge(%q).Qop = %v, want [auth]", want, back.Qop)
	}
}

func TestParseAuthenticationInfo(t *testing.T) {
	t.Parallel()

	in := `nextnonce="47364c23432d2e131a5fb210812c", qop=auth, rspauth="6629fae49393a05397450978507c4ef1", cnonce="0a4f113b", nc=00000001`
	got, err := typed.ParseAuthenticationInfo(in)
	if err != nil {
		t.Fatalf("typed.ParseAuthenticationInfo(%q) error = %v, want nil", in, err)
	}
	want := &typed.AuthenticationInfo{
		NextNonce: "47364c23432d2e131a5fb210812c",
		Qop:       ptr(typed.QopAuth),
		RspAuth:   "6629fae49393a05397450978507c4ef1",
		CNonce:    "0a4f113b",
		NC:        1,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("typed.ParseAuthenticationInfo(%q) = %+v, want %+v\ndiff (-got +want):\n%v", in, got, want, diff)
	}
	if got := got.RenderValue(); got != in {
		t.Errorf("hdr.RenderValue() = %q, want %q", got, in)
	}
}

func TestAlgorithm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		want     typed.Algorithm
		wantSess bool
		wantBase typed.Algorithm
	}{
		{"md5", typed.AlgorithmMD5, false, typed.AlgorithmMD5},
		{"MD5-SESS", typed.AlgorithmMD5Sess, true, typed.AlgorithmMD5},
		{"sha-512-sess", typed.AlgorithmSHA512Sess, true, typed.AlgorithmSHA512},
		{"AKAv1-MD5", "AKAv1-MD5", false, "AKAv1-MD5"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got := typed.AlgorithmFrom(c.in)
			if got != c.want {
				t.Errorf("typed.AlgorithmFrom(%q) = %q, want %q", c.in, got, c.want)
			}
			if got.IsSess() != c.wantSess {
				t.Errorf("alg.IsSess() = %v, want %v", got.IsSess(), c.wantSess)
			}
			if got.Base() != c.wantBase {
				t.Errorf("alg.Base() = %q, want %q", got.Base(), c.wantBase)
			}
		})
	}
}
