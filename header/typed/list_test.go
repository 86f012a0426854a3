package typed_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/uri"
)

func TestParseSupported(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    typed.Supported
		wantErr error
	}{
		{"empty", "  ", typed.Supported{}, nil},
		{"single", "100rel", typed.Supported{"100rel"}, nil},
		{"list", "100rel , timer,\r\n\tpath", typed.Supported{"100rel", "timer", "path"}, nil},
		{"bad", "100rel, @", nil, typed.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := typed.ParseSupported(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("typed.ParseSupported(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("typed.ParseSupported(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestTokenListHeaders(t *testing.T) {
	t.Parallel()

	if _, err := typed.ParseRequire(""); err == nil {
		t.Error("typed.ParseRequire(\"\") error = nil, want error")
	}

	req, err := typed.ParseRequire("100rel, Timer")
	if err != nil {
		t.Fatalf("typed.ParseRequire(...) error = %v, want nil", err)
	}
	if !req.Contains("timer") {
		t.Error("req.Contains(\"timer\") = false, want true")
	}
	if got, want := req.Render(nil), "Require: 100rel, Timer"; got != want {
		t.Errorf("req.Render(nil) = %q, want %q", got, want)
	}

	ce := typed.ContentEncoding{"gzip"}
	if got, want := ce.Render(&typed.RenderOptions{Compact: true}), "e: gzip"; got != want {
		t.Errorf("ce.Render(compact) = %q, want %q", got, want)
	}
	if got, want := (typed.Supported{"path"}).Render(&typed.RenderOptions{Compact: true}), "k: path"; got != want {
		t.Errorf("supported.Render(compact) = %q, want %q", got, want)
	}
	if !(typed.ProxyRequire{"sec-agree"}).Equal(typed.ProxyRequire{"Sec-Agree"}) {
		t.Error("ProxyRequire.Equal is case-sensitive, want case-insensitive")
	}
	if (typed.Unsupported{"a"}).Equal(typed.Require{"a"}) {
		t.Error("Unsupported.Equal(Require) = true, want false")
	}
	if (typed.ContentLanguage{}).IsValid() {
		t.Error("empty ContentLanguage is valid, want invalid")
	}
	if !(typed.Supported{}).IsValid() {
		t.Error("empty Supported is invalid, want valid")
	}
}

func TestParseAllow(t *testing.T) {
	t.Parallel()

	got, err := typed.ParseAllow("INVITE, ack ,OPTIONS, CANCEL, BYE, FOO")
	if err != nil {
		t.Fatalf("typed.ParseAllow(...) error = %v, want nil", err)
	}
	want := typed.Allow{"INVITE", "ACK", "OPTIONS", "CANCEL", "BYE", "FOO"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("typed.ParseAllow(...) = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
	if !got.Contains("bye") {
		t.Error("allow.Contains(\"bye\") = false, want true")
	}
	if got, want := got.String(), "INVITE, ACK, OPTIONS, CANCEL, BYE, FOO"; got != want {
		t.Errorf("allow.String() = %q, want %q", got, want)
	}

	empty, err := typed.ParseAllow("")
	if err != nil {
		t.Fatalf("typed.ParseAllow(\"\") error = %v, want nil", err)
	}
	if len(empty) != 0 || !empty.IsValid() {
		t.Errorf("typed.ParseAllow(\"\") = %v, want empty valid list", empty)
	}
}

func TestParseAcceptEncoding(t *testing.T) {
	t.Parallel()

	got, err := typed.ParseAcceptEncoding("gzip;q=1.0, identity; q=0.5, *;q=0")
	if err != nil {
		t.Fatalf("typed.ParseAcceptEncoding(...) error = %v, want nil", err)
	}
	want := typed.AcceptEncoding{
		{Value: "gzip", Params: uri.Params{uri.NewParam("q", "1.0")}},
		{Value: "identity", Params: uri.Params{uri.NewParam("q", "0.5")}},
		{Value: "*", Params: uri.Params{uri.NewParam("q", "0")}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("typed.ParseAcceptEncoding(...) = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}
	if q := got[1].Q(); q != 0.5 {
		t.Errorf("got[1].Q() = %v, want 0.5", q)
	}

	al, err := typed.ParseAcceptLanguage("da, en-gb;q=0.8, en;q=0.7")
	if err != nil {
		t.Fatalf("typed.ParseAcceptLanguage(...) error = %v, want nil", err)
	}
	if got, want := al.Render(nil), "Accept-Language: da, en-gb;q=0.8, en;q=0.7"; got != want {
		t.Errorf("al.Render(nil) = %q, want %q", got, want)
	}
	if q := al[0].Q(); q != 1 {
		t.Errorf("al[0].Q() = %v, want 1", q)
	}
}

func TestInfoHeaders(t *testing.T) {
	t.Parallel()

	ai, err := typed.ParseAlertInfo("<http://www.example.com/sounds/moo.wav>")
	if err != nil {
		t.Fatalf("typed.ParseAlertInfo(...) error = %v, want nil", err)
	}
	if got, want := ai.Render(nil), "Alert-Info: <http://www.example.com/sounds/moo.wav>"; got != want {
		t.Errorf("ai.Render(nil) = %q, want %q", got, want)
	}

	ci, err := typed.ParseCallInfo("<http://wwww.example.com/alice/photo.jpg> ;purpose=icon, <http://www.example.com/alice/> ;purpose=info")
	if err != nil {
		t.Fatalf("typed.ParseCallInfo(...) error = %v, want nil", err)
	}
	if len(ci) != 2 {
		t.Fatalf("len(ci) = %d, want 2", len(ci))
	}
	if v, _ := ci[1].Params.Value("purpose"); v != "info" {
		t.Errorf("ci[1] purpose = %q, want %q", v, "info")
	}

	ei, err := typed.ParseErrorInfo("<sip:not-in-service-recording@atlanta.com>")
	if err != nil {
		t.Fatalf("typed.ParseErrorInfo(...) error = %v, want nil", err)
	}
	if !ei.Clone().Equal(ei) {
		t.Error("ei.Clone().Equal(ei) = false, want true")
	}
}
