package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/types"
)

func TestParseMethod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    types.RequestMethod
		wantErr error
	}{
		{"upper", "INVITE", types.RequestMethodInvite, nil},
		{"lower", "register", types.RequestMethodRegister, nil},
		{"mixed", "Bye", types.RequestMethodBye, nil},
		{"extension", "Foo-Bar", "Foo-Bar", nil},
		{"empty", "", "", errorutil.ErrParse},
		{"not token", "IN VITE", "", errorutil.ErrParse},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseMethod(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("types.ParseMethod(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("types.ParseMethod(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestTokenizeMethod(t *testing.T) {
	t.Parallel()

	rest, tok, err := types.TokenizeMethod([]byte("OPTIONS sip:a@b SIP/2.0"))
	if err != nil {
		t.Fatalf("types.TokenizeMethod() error = %v, want nil", err)
	}
	if got, want := string(tok.Value), "OPTIONS"; got != want {
		t.Errorf("tok.Value = %q, want %q", got, want)
	}
	if got, want := string(rest), " sip:a@b SIP/2.0"; got != want {
		t.Errorf("rest = %q, want %q", got, want)
	}

	if _, _, err := types.TokenizeMethod([]byte(" OPTIONS")); !cmp.Equal(err, errorutil.ErrTokenize, cmpopts.EquateErrors()) {
		t.Errorf("types.TokenizeMethod(\" OPTIONS\") error = %v, want %v", err, errorutil.ErrTokenize)
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    types.ProtoVersion
		wantErr error
	}{
		{"v2", "SIP/2.0", types.V2, nil},
		{"v1", "SIP/1.0", types.V1, nil},
		{"lower", "sip/2.0", types.V2, nil},
		{"other", "SIP/3.1", types.ProtoVersion{Major: 3, Minor: 1}, nil},
		{"no minor", "SIP/2", types.ProtoVersion{}, errorutil.ErrTokenize},
		{"http", "HTTP/1.1", types.ProtoVersion{}, errorutil.ErrTokenize},
		{"trailing", "SIP/2.0x", types.ProtoVersion{}, errorutil.ErrTokenize},
		{"overflow", "SIP/256.0", types.ProtoVersion{}, errorutil.ErrParse},
		{"spaced slash", "SIP / 2.0", types.ProtoVersion{}, errorutil.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseVersion(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("types.ParseVersion(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("types.ParseVersion(%q) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func TestTokenizeSentVersion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		wantMajor string
		wantMinor string
		wantRest  string
		wantErr   error
	}{
		{"tight", "SIP/2.0/UDP", "2", "0", "/UDP", nil},
		{"spaced", "SIP / 2.0 / UDP", "2", "0", " / UDP", nil},
		{"tabs", "sip\t/\t2.0/TCP", "2", "0", "/TCP", nil},
		{"no version", "SIP / UDP", "", "", "", errorutil.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			rest, tok, err := types.TokenizeSentVersion([]byte(c.in))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("types.TokenizeSentVersion(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if err != nil {
				return
			}
			if string(tok.Major) != c.wantMajor || string(tok.Minor) != c.wantMinor {
				t.Errorf("types.TokenizeSentVersion(%q) = %s.%s, want %s.%s", c.in, tok.Major, tok.Minor, c.wantMajor, c.wantMinor)
			}
			if string(rest) != c.wantRest {
				t.Errorf("types.TokenizeSentVersion(%q) rest = %q, want %q", c.in, rest, c.wantRest)
			}
		})
	}
}

func TestProtoVersion_String(t *testing.T) {
	t.Parallel()

	if got, want := types.V2.String(), "SIP/2.0"; got != want {
		t.Errorf("types.V2.String() = %q, want %q", got, want)
	}
	if got, want := (types.ProtoVersion{Major: 3, Minor: 1}).String(), "SIP/3.1"; got != want {
		t.Errorf("ProtoVersion{3, 1}.String() = %q, want %q", got, want)
	}
}

func TestParseTransport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in        string
		want      types.TransportProto
		wantKnown bool
	}{
		{"udp", types.TransportProtoUDP, true},
		{"Tls-Sctp", types.TransportProtoTLSSCTP, true},
		{"wss", types.TransportProtoWSS, true},
		{"quic", "QUIC", false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseTransport(c.in)
			if err != nil {
				t.Fatalf("types.ParseTransport(%q) error = %v, want nil", c.in, err)
			}
			if got != c.want {
				t.Errorf("types.ParseTransport(%q) = %q, want %q", c.in, got, c.want)
			}
			if got.IsKnown() != c.wantKnown {
				t.Errorf("types.ParseTransport(%q).IsKnown() = %v, want %v", c.in, got.IsKnown(), c.wantKnown)
			}
		})
	}
}

func TestResponseStatus_Kind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code types.ResponseStatus
		want types.StatusKind
	}{
		{99, types.StatusKindOther},
		{100, types.StatusKindProvisional},
		{199, types.StatusKindProvisional},
		{200, types.StatusKindSuccessful},
		{299, types.StatusKindSuccessful},
		{300, types.StatusKindRedirection},
		{399, types.StatusKindRedirection},
		{404, types.StatusKindRequestFailure},
		{503, types.StatusKindServerFailure},
		{600, types.StatusKindGlobalFailure},
		{699, types.StatusKindGlobalFailure},
		{700, types.StatusKindOther},
	}

	for _, c := range cases {
		t.Run(c.code.String(), func(t *testing.T) {
			t.Parallel()

			if got := c.code.Kind(); got != c.want {
				t.Errorf("ResponseStatus(%d).Kind() = %v, want %v", c.code, got, c.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		want      types.ResponseStatus
		wantKnown bool
		wantErr   error
	}{
		{"ok", "200", types.ResponseStatusOK, true, nil},
		{"unknown", "299", 299, false, nil},
		{"two digits", "20", 0, false, errorutil.ErrTokenize},
		{"four digits", "2000", 0, false, errorutil.ErrTokenize},
		{"leading zero", "099", 0, false, errorutil.ErrParse},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseStatus(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("types.ParseStatus(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("types.ParseStatus(%q) = %d, want %d", c.in, got, c.want)
			}
			if got.IsKnown() != c.wantKnown {
				t.Errorf("types.ParseStatus(%q).IsKnown() = %v, want %v", c.in, got.IsKnown(), c.wantKnown)
			}
		})
	}
}

func TestResponseStatus_Reason(t *testing.T) {
	t.Parallel()

	if got, want := types.ResponseStatusBusyHere.Reason(), types.ResponseReason("Busy Here"); got != want {
		t.Errorf("ResponseStatusBusyHere.Reason() = %q, want %q", got, want)
	}
	if got := types.ResponseStatus(299).Reason(); got != "" {
		t.Errorf("ResponseStatus(299).Reason() = %q, want \"\"", got)
	}
}

func TestTokenizeScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		want     types.Scheme
		wantRest string
		wantErr  error
	}{
		{"sip", "sip:alice@a.com", types.SchemeSIP, "alice@a.com", nil},
		{"upper sips", "SIPS:a.com", types.SchemeSIPS, "a.com", nil},
		{"tel", "tel:+1234", types.SchemeTel, "+1234", nil},
		{"other", "urn:service:sos", "urn", "service:sos", nil},
		{"no colon", "alice.com", "", "alice.com", errorutil.ErrTokenize},
		{"digit first", "1sip:a", "", "1sip:a", errorutil.ErrTokenize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			rest, tok, err := types.TokenizeScheme([]byte(c.in))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("types.TokenizeScheme(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if string(rest) != c.wantRest {
				t.Errorf("types.TokenizeScheme(%q) rest = %q, want %q", c.in, rest, c.wantRest)
			}
			if err != nil {
				return
			}
			got, err := types.SchemeFrom(tok)
			if err != nil {
				t.Fatalf("types.SchemeFrom() error = %v, want nil", err)
			}
			if got != c.want {
				t.Errorf("types.SchemeFrom() = %q, want %q", got, c.want)
			}
		})
	}
}
