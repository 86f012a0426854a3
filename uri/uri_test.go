package uri_test

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/uri"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    uri.URI
		wantErr error
	}{
		{
			"sip host",
			"sip:server.com",
			uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("server.com")}},
			nil,
		},
		{
			"sips full",
			"SIPS:alice:secret@[2001:db8::1]:5061;transport=TLS;lr?subject=hi%20there&x=",
			uri.URI{
				Scheme: uri.SchemeSIPS,
				Auth:   uri.NewAuth("alice").WithPassword("secret"),
				HostWithPort: uri.HostWithPort{
					Host: uri.IPHost(netip.MustParseAddr("2001:db8::1")),
					Port: ptr(uri.Port(5061)),
				},
				Params:  uri.Params{uri.NewParam("transport", "TLS"), uri.FlagParam("lr")},
				Headers: []uri.Header{{Name: "subject", Value: "hi there"}, {Name: "x", Value: ""}},
			},
			nil,
		},
		{
			"escaped user",
			"sip:al%20ice@a.com",
			uri.URI{
				Scheme:       uri.SchemeSIP,
				Auth:         uri.NewAuth("al ice"),
				HostWithPort: uri.HostWithPort{Host: uri.DomainHost("a.com")},
			},
			nil,
		},
		{
			"tel",
			"tel:+1-212-555-1234;phone-context=example.com",
			uri.URI{
				Scheme: uri.SchemeTel,
				Path:   "+1-212-555-1234",
				Params: uri.Params{uri.NewParam("phone-context", "example.com")},
			},
			nil,
		},
		{"absolute path", "/dir/index.html", uri.URI{Path: "/dir/index.html"}, nil},
		{
			"sent-by",
			"192.168.0.1:5060",
			uri.URI{HostWithPort: uri.NewHostWithPort("192.168.0.1", 5060)},
			nil,
		},
		{
			"schemeless user and password",
			"alice:pw@example.com",
			uri.URI{
				Auth:         uri.NewAuth("alice").WithPassword("pw"),
				HostWithPort: uri.HostWithPort{Host: uri.DomainHost("example.com")},
			},
			nil,
		},
		{"no host", "sip:", uri.URI{}, uri.ErrTokenize},
		{"bad ttl", "sip:a.com;ttl=300", uri.URI{}, uri.ErrParse},
		{"bad port", "sip:a.com:99999", uri.URI{}, uri.ErrParse},
		{"trailing input", "sip:a.com x", uri.URI{}, uri.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Parse(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	in := []byte("sip:bob@b.example.com:5070;transport=tcp?h=v>;tag=1")
	rest, tok, err := uri.Tokenize(in)
	if err != nil {
		t.Fatalf("uri.Tokenize(%q) error = %v, want nil", in, err)
	}
	if got, want := string(rest), ">;tag=1"; got != want {
		t.Errorf("rest = %q, want %q", got, want)
	}
	if got, want := string(tok.Scheme), "sip"; got != want {
		t.Errorf("tok.Scheme = %q, want %q", got, want)
	}
	if tok.Auth == nil || string(tok.Auth.User) != "bob" {
		t.Errorf("tok.Auth = %+v, want user \"bob\"", tok.Auth)
	}
	if got, want := string(tok.HostWithPort.Host), "b.example.com"; got != want {
		t.Errorf("tok.HostWithPort.Host = %q, want %q", got, want)
	}
	if got, want := string(tok.HostWithPort.Port), "5070"; got != want {
		t.Errorf("tok.HostWithPort.Port = %q, want %q", got, want)
	}
	if len(tok.Params) != 1 || string(tok.Params[0].Name) != "transport" || string(tok.Params[0].Value) != "tcp" {
		t.Errorf("tok.Params = %+v, want [transport=tcp]", tok.Params)
	}
	if len(tok.Headers) != 1 || string(tok.Headers[0].Name) != "h" || string(tok.Headers[0].Value) != "v" {
		t.Errorf("tok.Headers = %+v, want [h=v]", tok.Headers)
	}

	// sub-slices share the input buffer
	if &tok.HostWithPort.Host[0] != &in[8] {
		t.Error("tok.HostWithPort.Host does not point into the input buffer")
	}
}

func TestTokenizeNoParams(t *testing.T) {
	t.Parallel()

	rest, tok, err := uri.TokenizeNoParams([]byte("sip:a.com;lr"))
	if err != nil {
		t.Fatalf("uri.TokenizeNoParams() error = %v, want nil", err)
	}
	if got, want := string(rest), ";lr"; got != want {
		t.Errorf("rest = %q, want %q", got, want)
	}
	if len(tok.Params) != 0 {
		t.Errorf("tok.Params = %+v, want empty", tok.Params)
	}
}

func TestURI_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  uri.URI
		want string
	}{
		{"zero", uri.URI{}, ""},
		{
			"sip",
			uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.NewHostWithPort("example.com", 5060)},
			"sip:example.com:5060",
		},
		{
			"user with password to escape",
			uri.URI{
				Scheme:       uri.SchemeSIP,
				Auth:         uri.NewAuth("root@;field=123").WithPassword("p@sswd;qwe"),
				HostWithPort: uri.HostWithPort{Host: uri.DomainHost("example.com")},
			},
			"sip:root%40;field=123:p%40sswd%3Bqwe@example.com",
		},
		{
			"ipv6 with params and headers",
			uri.URI{
				Scheme:       uri.SchemeSIPS,
				HostWithPort: uri.HostWithPort{Host: uri.NewHost("::1")},
				Params:       uri.Params{uri.FlagParam("lr"), uri.NewParam("transport", "tls")},
				Headers:      []uri.Header{{Name: "Subject", Value: "Hello world!"}},
			},
			"sips:[::1];lr;transport=tls?Subject=Hello%20world!",
		},
		{"tel", uri.URI{Scheme: uri.SchemeTel, Path: "+12345"}, "tel:+12345"},
		{"path", uri.URI{Path: "/dir/index.html"}, "/dir/index.html"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.String(); got != c.want {
				t.Errorf("uri.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestURI_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"sip:alice@atlanta.com;maddr=239.255.255.1;ttl=15",
		"sips:bob:pwd@biloxi.com:5061;user=phone;method=REGISTER?to=alice%40atlanta.com",
		"sip:[2001:db8::10]:5070;lr;X-Foo=Bar",
		"tel:+358-555-1234567;postd=pp22",
		"urn:service:sos",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			u1, err := uri.Parse(in)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", in, err)
			}
			u2, err := uri.Parse(u1.String())
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", u1.String(), err)
			}
			if !u1.Equal(u2) {
				t.Errorf("uri.Parse(%q) = %+v, want %+v", u1.String(), u2, u1)
			}
		})
	}
}

func TestURI_Accessors(t *testing.T) {
	t.Parallel()

	u, err := uri.Parse("sip:a.com;transport=tcp;ttl=15;maddr=10.0.0.1;lr;method=invite;user=phone")
	if err != nil {
		t.Fatalf("uri.Parse() error = %v, want nil", err)
	}
	if tp, ok := u.Transport(); !ok || tp != "TCP" {
		t.Errorf("u.Transport() = (%q, %v), want (\"TCP\", true)", tp, ok)
	}
	if ttl, ok := u.TTL(); !ok || ttl != 15 {
		t.Errorf("u.TTL() = (%d, %v), want (15, true)", ttl, ok)
	}
	if h, ok := u.MAddr(); !ok || !h.IsIP() {
		t.Errorf("u.MAddr() = (%v, %v), want IP host", h, ok)
	}
	if !u.LR() {
		t.Error("u.LR() = false, want true")
	}
	if m, ok := u.Method(); !ok || m != "INVITE" {
		t.Errorf("u.Method() = (%q, %v), want (\"INVITE\", true)", m, ok)
	}
	if v, ok := u.UserParam(); !ok || v != "phone" {
		t.Errorf("u.UserParam() = (%q, %v), want (\"phone\", true)", v, ok)
	}
}

func TestURI_Clone(t *testing.T) {
	t.Parallel()

	u1, err := uri.Parse("sip:alice:pw@a.com:5060;x=1")
	if err != nil {
		t.Fatalf("uri.Parse() error = %v, want nil", err)
	}
	u2 := u1.Clone()
	*u2.Auth.Password = "other"
	*u2.HostWithPort.Port = 1
	*u2.Params[0].Value = "2"
	if got, want := u1.String(), "sip:alice:pw@a.com:5060;x=1"; got != want {
		t.Errorf("u1.String() = %q after modifying the clone, want %q", got, want)
	}
}

func TestURI_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  uri.URI
		want bool
	}{
		{"zero", uri.URI{}, false},
		{"domain", uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("a.com")}}, true},
		{"bad domain", uri.URI{Scheme: uri.SchemeSIP, HostWithPort: uri.HostWithPort{Host: uri.DomainHost("a..com")}}, false},
		{"path", uri.URI{Path: "/index.html"}, true},
		{"tel", uri.URI{Scheme: uri.SchemeTel, Path: "+1"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.IsValid(); got != c.want {
				t.Errorf("uri.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
