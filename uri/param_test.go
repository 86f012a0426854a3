package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/uri"
)

func TestParseParam(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		want     uri.Param
		wantKind uri.ParamKind
		wantErr  error
	}{
		{"transport", "transport=UDP", uri.NewParam("transport", "UDP"), uri.ParamTransport, nil},
		{"upper lr", "LR", uri.FlagParam("lr"), uri.ParamLR, nil},
		{"leading semicolon", ";ttl=1", uri.NewParam("ttl", "1"), uri.ParamTTL, nil},
		{"other flag", "X-Foo", uri.FlagParam("X-Foo"), uri.ParamOther, nil},
		{"other empty", "x-foo=", uri.NewParam("x-foo", ""), uri.ParamOther, nil},
		{"other quoted", `foo="a b"`, uri.NewParam("foo", `"a b"`), uri.ParamOther, nil},
		{"quoted received", `received="10.0.0.1"`, uri.NewParam("received", "10.0.0.1"), uri.ParamReceived, nil},
		{"rport no value", "rport", uri.FlagParam("rport"), uri.ParamRPort, nil},
		{"q", "q=0.7", uri.NewParam("q", "0.7"), uri.ParamQ, nil},
		{"ttl overflow", "ttl=256", uri.Param{}, uri.ParamOther, uri.ErrParse},
		{"empty maddr", "maddr=", uri.Param{}, uri.ParamOther, uri.ErrParse},
		{"tag without value", "tag", uri.Param{}, uri.ParamOther, uri.ErrParse},
		{"q out of range", "q=1.5", uri.Param{}, uri.ParamOther, uri.ErrParse},
		{"trailing", "lr x", uri.Param{}, uri.ParamOther, uri.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseParam(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ParseParam(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.ParseParam(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
			if got.Name != c.want.Name {
				t.Errorf("uri.ParseParam(%q).Name = %q, want %q", c.in, got.Name, c.want.Name)
			}
			if got.Kind() != c.wantKind {
				t.Errorf("uri.ParseParam(%q).Kind() = %v, want %v", c.in, got.Kind(), c.wantKind)
			}
		})
	}
}

func TestTokenizeParam(t *testing.T) {
	t.Parallel()

	rest, tok, err := uri.TokenizeParam([]byte(" ; branch = z9hG4bK776 ;rport"))
	if err != nil {
		t.Fatalf("uri.TokenizeParam() error = %v, want nil", err)
	}
	if string(tok.Name) != "branch" || string(tok.Value) != "z9hG4bK776" || !tok.HasValue {
		t.Errorf("tok = %+v, want branch=z9hG4bK776", tok)
	}
	if got, want := string(rest), " ;rport"; got != want {
		t.Errorf("rest = %q, want %q", got, want)
	}

	if _, _, err := uri.TokenizeParam([]byte(";=x")); !cmp.Equal(err, uri.ErrTokenize, cmpopts.EquateErrors()) {
		t.Errorf("uri.TokenizeParam(\";=x\") error = %v, want %v", err, uri.ErrTokenize)
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	ps := uri.Params{uri.NewParam("tag", "a"), uri.FlagParam("lr"), uri.NewParam("TAG", "b")}
	if v, ok := ps.Value("Tag"); !ok || v != "a" {
		t.Errorf("ps.Value(\"Tag\") = (%q, %v), want (\"a\", true)", v, ok)
	}

	ps = ps.Set(uri.NewParam("tag", "c"))
	if got, want := ps.String(), ";lr;tag=c"; got != want {
		t.Errorf("ps.Set(tag=c).String() = %q, want %q", got, want)
	}

	ps = ps.Del("LR")
	if ps.Has("lr") {
		t.Error("ps.Del(\"LR\").Has(\"lr\") = true, want false")
	}

	a := uri.Params{uri.NewParam("transport", "udp"), uri.FlagParam("lr")}
	b := uri.Params{uri.FlagParam("LR"), uri.NewParam("Transport", "UDP")}
	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
	if a.Equal(uri.Params{uri.FlagParam("lr")}) {
		t.Errorf("%v.Equal(;lr) = true, want false", a)
	}
}
