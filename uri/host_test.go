package uri_test

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/uri"
)

func TestNewHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		wantIP    bool
		wantStr   string
		wantValid bool
	}{
		{"ipv4", "10.0.0.1", true, "10.0.0.1", true},
		{"ipv6 bracketed", "[2001:db8::1]", true, "[2001:db8::1]", true},
		{"ipv6 bare", "::1", true, "[::1]", true},
		{"domain", "Example.COM", false, "Example.COM", true},
		{"numeric domain", "10.0.0", false, "10.0.0", true},
		{"empty label", "a..b", false, "a..b", false},
		{"empty", "", false, "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := uri.NewHost(c.in)
			if got := h.IsIP(); got != c.wantIP {
				t.Errorf("uri.NewHost(%q).IsIP() = %v, want %v", c.in, got, c.wantIP)
			}
			if got := h.String(); got != c.wantStr {
				t.Errorf("uri.NewHost(%q).String() = %q, want %q", c.in, got, c.wantStr)
			}
			if got := h.IsValid(); got != c.wantValid {
				t.Errorf("uri.NewHost(%q).IsValid() = %v, want %v", c.in, got, c.wantValid)
			}
		})
	}
}

func TestHost_Equal(t *testing.T) {
	t.Parallel()

	if !uri.DomainHost("example.com").Equal(uri.DomainHost("EXAMPLE.com")) {
		t.Error("domains must be compared case-insensitively")
	}
	if !uri.NewHost("::ffff:10.0.0.1").Equal(uri.IPHost(netip.MustParseAddr("10.0.0.1"))) {
		t.Error("IPv4-mapped address must equal its IPv4 form")
	}
	if uri.NewHost("10.0.0.1").Equal(uri.DomainHost("10.0.0.1.example.com")) {
		t.Error("IP host must not equal a domain")
	}
}

func TestTokenizeHostWithPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		in                string
		wantHost, wantPrt string
		wantRest          string
		wantErr           error
	}{
		{"host", "example.com;lr", "example.com", "", ";lr", nil},
		{"host and port", "example.com:5060;lr", "example.com", "5060", ";lr", nil},
		{"ipv6 and port", "[::1]:5060 SIP/2.0", "[::1]", "5060", " SIP/2.0", nil},
		{"unterminated ipv6", "[::1", "", "", "[::1", uri.ErrTokenize},
		{"no port digits", "a.com:x", "", "", "a.com:x", uri.ErrTokenize},
		{"no host", ":5060", "", "", ":5060", uri.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			rest, tok, err := uri.TokenizeHostWithPort([]byte(c.in))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.TokenizeHostWithPort(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if string(rest) != c.wantRest || string(tok.Host) != c.wantHost || string(tok.Port) != c.wantPrt {
				t.Errorf("uri.TokenizeHostWithPort(%q) = (%q, {%q, %q}), want (%q, {%q, %q})",
					c.in, rest, tok.Host, tok.Port, c.wantRest, c.wantHost, c.wantPrt)
			}
		})
	}
}

func TestParseHostWithPort(t *testing.T) {
	t.Parallel()

	hp, err := uri.ParseHostWithPort("example.com")
	if err != nil {
		t.Fatalf("uri.ParseHostWithPort() error = %v, want nil", err)
	}
	if hp.Port != nil {
		t.Errorf("hp.Port = %v, want nil", *hp.Port)
	}
	if got := hp.PortOr(5060); got != 5060 {
		t.Errorf("hp.PortOr(5060) = %d, want 5060", got)
	}

	if _, err := uri.ParseHostWithPort("[bad]:5060"); !cmp.Equal(err, uri.ErrParse, cmpopts.EquateErrors()) {
		t.Errorf("uri.ParseHostWithPort(\"[bad]:5060\") error = %v, want %v", err, uri.ErrParse)
	}
}
