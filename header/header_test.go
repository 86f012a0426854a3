package header_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/header/typed"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		hdrName  string
		want     header.Header
		wantName header.Name
	}{
		{"via lower", "via", header.NewVia("SIP/2.0/UDP a.com"), "Via"},
		{"via upper", "VIA", header.NewVia("SIP/2.0/UDP a.com"), "Via"},
		{"via canonic", "Via", header.NewVia("SIP/2.0/UDP a.com"), "Via"},
		{"via compact", "v", header.NewVia("SIP/2.0/UDP a.com"), "Via"},
		{"call-id", "call-id", header.NewCallID("SIP/2.0/UDP a.com"), "Call-ID"},
		{"cseq", "CSEQ", header.NewCSeq("SIP/2.0/UDP a.com"), "CSeq"},
		{"www-authenticate", "www-authenticate", header.NewWWWAuthenticate("SIP/2.0/UDP a.com"), "WWW-Authenticate"},
		{"event compact", "o", header.NewEvent("SIP/2.0/UDP a.com"), "Event"},
		{"extension", "X-Forward", header.NewOther("X-Forward", "SIP/2.0/UDP a.com"), "X-Forward"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := header.New(c.hdrName, "SIP/2.0/UDP a.com")
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("header.New(%q, ...) = %#v, want %#v\ndiff (-got +want):\n%v", c.hdrName, got, c.want, diff)
			}
			if got.Name() != c.wantName {
				t.Errorf("hdr.Name() = %q, want %q", got.Name(), c.wantName)
			}
			if got.Value() != "SIP/2.0/UDP a.com" {
				t.Errorf("hdr.Value() = %q, want %q", got.Value(), "SIP/2.0/UDP a.com")
			}
		})
	}
}

func TestHeader_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  header.Header
		opts *header.RenderOptions
		want string
	}{
		{"call-id", header.NewCallID("a84b4c76e66710"), nil, "Call-ID: a84b4c76e66710"},
		{"call-id compact", header.NewCallID("a84b4c76e66710"), &header.RenderOptions{Compact: true}, "i: a84b4c76e66710"},
		{"cseq", header.NewCSeq("314159 INVITE"), nil, "CSeq: 314159 INVITE"},
		{"cseq compact", header.NewCSeq("314159 INVITE"), &header.RenderOptions{Compact: true}, "CSeq: 314159 INVITE"},
		{"www-authenticate", header.NewWWWAuthenticate(`Digest realm="a"`), nil, `WWW-Authenticate: Digest realm="a"`},
		{"mime-version", header.NewMIMEVersion("1.0"), nil, "MIME-Version: 1.0"},
		{"other", header.NewOther("X-Forward", "202.45.213.14"), nil, "X-Forward: 202.45.213.14"},
		{"other compact", header.NewOther("x-forward", "202.45.213.14"), &header.RenderOptions{Compact: true}, "x-forward: 202.45.213.14"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(c.opts); got != c.want {
				t.Errorf("hdr.Render(opts) = %q, want %q", got, c.want)
			}
			if c.opts == nil {
				if got := c.hdr.String(); got != c.want {
					t.Errorf("hdr.String() = %q, want %q", got, c.want)
				}
				if got := fmt.Sprint(c.hdr); got != c.want {
					t.Errorf("fmt.Sprint(hdr) = %q, want %q", got, c.want)
				}
			}
		})
	}
}

func TestHeader_ReplaceClone(t *testing.T) {
	t.Parallel()

	to := header.NewTo("<sip:bob@biloxi.com>")
	clone := to.Clone()
	to.Replace("<sip:bob@biloxi.com>;tag=a6c85cf")

	if got, want := to.Value(), "<sip:bob@biloxi.com>;tag=a6c85cf"; got != want {
		t.Errorf("to.Value() = %q, want %q", got, want)
	}
	if got, want := clone.Value(), "<sip:bob@biloxi.com>"; got != want {
		t.Errorf("clone.Value() = %q, want %q", got, want)
	}
	if to.Equal(clone) {
		t.Error("to.Equal(clone) = true, want false")
	}
	if !to.Equal(*header.NewTo("<sip:bob@biloxi.com>;tag=a6c85cf")) {
		t.Error("to.Equal(value) = false, want true")
	}
	if to.Equal(header.NewFrom(to.Value())) {
		t.Error("to.Equal(from) = true, want false")
	}

	other := header.NewOther("X-Foo", "bar")
	if !other.Equal(header.NewOther("x-foo", "bar")) {
		t.Error("other.Equal(lower name) = false, want true")
	}
	if other.Equal(header.NewOther("X-Foo", "BAR")) {
		t.Error("other.Equal(upper value) = true, want false")
	}
}

func TestHeader_Typed(t *testing.T) {
	t.Parallel()

	via := header.NewVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds, SIP/2.0/TCP [2001:db8::1]:5061")
	v, err := via.Typed()
	if err != nil {
		t.Fatalf("via.Typed() error = %v, want nil", err)
	}
	if len(v) != 2 {
		t.Fatalf("len(via.Typed()) = %d, want 2", len(v))
	}
	if br, ok := v[0].Branch(); !ok || br != "z9hG4bK776asdhds" {
		t.Errorf("v[0].Branch() = %q, %v, want %q, true", br, ok, "z9hG4bK776asdhds")
	}

	cseq := header.NewCSeq("abc INVITE")
	if _, err := cseq.Typed(); !errors.Is(err, typed.ErrParse) && !errors.Is(err, typed.ErrTokenize) {
		t.Errorf("cseq.Typed() error = %v, want parse or tokenize error", err)
	}
	if got, want := cseq.Value(), "abc INVITE"; got != want {
		t.Errorf("cseq.Value() after failed conversion = %q, want %q", got, want)
	}

	to := header.NewTo(`"Bob" <sip:bob@biloxi.com>`)
	hdr, err := to.Typed()
	if err != nil {
		t.Fatalf("to.Typed() error = %v, want nil", err)
	}
	hdr.SetTag("a6c85cf")
	to.Replace(hdr.RenderValue())
	if got, want := to.String(), `To: "Bob" <sip:bob@biloxi.com>;tag=a6c85cf`; got != want {
		t.Errorf("to.String() = %q, want %q", got, want)
	}
}

func TestFromTyped(t *testing.T) {
	t.Parallel()

	cseq := &typed.CSeq{SeqNum: 1, Method: "REGISTER"}
	got := header.FromTyped(cseq)
	if diff := cmp.Diff(got, header.Header(header.NewCSeq("1 REGISTER"))); diff != "" {
		t.Errorf("header.FromTyped(cseq) = %v, want %v\ndiff (-got +want):\n%v", got, "CSeq: 1 REGISTER", diff)
	}

	back, err := got.(*header.CSeq).Typed()
	if err != nil {
		t.Fatalf("hdr.Typed() error = %v, want nil", err)
	}
	if !back.Equal(cseq) {
		t.Errorf("round trip = %v, want %v", back, cseq)
	}

	if header.FromTyped(nil) != nil {
		t.Error("header.FromTyped(nil) != nil")
	}
}

func TestGenCallID(t *testing.T) {
	t.Parallel()

	id1, id2 := header.GenCallID("example.com"), header.GenCallID("")
	if !strings.HasSuffix(id1.Value(), "@example.com") {
		t.Errorf("header.GenCallID(host) = %q, want %q suffix", id1.Value(), "@example.com")
	}
	if strings.Contains(id2.Value(), "@") {
		t.Errorf("header.GenCallID(\"\") = %q, want no host part", id2.Value())
	}
	if _, err := id1.Typed(); err != nil {
		t.Errorf("id.Typed() error = %v, want nil", err)
	}
}
