package sip_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/sip"
)

func newTestRequest(t *testing.T) *sip.Request {
	t.Helper()
	req := sip.NewRequest(sip.RequestMethodRegister, mustParseURI(t, "sip:registrar.biloxi.com"))
	req.Headers.Push(
		header.NewVia("SIP/2.0/UDP bobspc.biloxi.com:5060;branch=z9hG4bKnashds7"),
		header.NewMaxForwards("70"),
		header.NewTo("Bob <sip:bob@biloxi.com>"),
		header.NewFrom("Bob <sip:bob@biloxi.com>;tag=456248"),
		header.NewCallID("843817637684230@998sdasdh09"),
		header.NewCSeq("1826 REGISTER"),
		header.NewContact("<sip:bob@192.0.2.4>"),
		header.NewExpires("7200"),
		header.NewContentLength("0"),
	)
	return req
}

func TestRequest_Render(t *testing.T) {
	t.Parallel()

	req := newTestRequest(t)
	want := "REGISTER sip:registrar.biloxi.com SIP/2.0\r\n" +
		"Via: SIP/2.0/UDP bobspc.biloxi.com:5060;branch=z9hG4bKnashds7\r\n" +
		"Max-Forwards: 70\r\n" +
		"To: Bob <sip:bob@biloxi.com>\r\n" +
		"From: Bob <sip:bob@biloxi.com>;tag=456248\r\n" +
		"Call-ID: 843817637684230@998sdasdh09\r\n" +
		"CSeq: 1826 REGISTER\r\n" +
		"Contact: <sip:bob@192.0.2.4>\r\n" +
		"Expires: 7200\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n"
	if got := req.Render(nil); got != want {
		t.Errorf("req.Render(nil) = %q, want %q", got, want)
	}

	wantCompact := "REGISTER sip:registrar.biloxi.com SIP/2.0\r\n" +
		"v: SIP/2.0/UDP bobspc.biloxi.com:5060;branch=z9hG4bKnashds7\r\n" +
		"Max-Forwards: 70\r\n" +
		"t: Bob <sip:bob@biloxi.com>\r\n" +
		"f: Bob <sip:bob@biloxi.com>;tag=456248\r\n" +
		"i: 843817637684230@998sdasdh09\r\n" +
		"CSeq: 1826 REGISTER\r\n" +
		"m: <sip:bob@192.0.2.4>\r\n" +
		"Expires: 7200\r\n" +
		"l: 0\r\n" +
		"\r\n"
	if got := req.Render(&sip.RenderOptions{Compact: true}); got != wantCompact {
		t.Errorf("req.Render(compact) = %q, want %q", got, wantCompact)
	}

	if got, want := req.String(), "REGISTER sip:registrar.biloxi.com SIP/2.0"; got != want {
		t.Errorf("req.String() = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%s", req), req.StartLine(); got != want {
		t.Errorf("fmt.Sprintf(\"%%s\", req) = %q, want %q", got, want)
	}
	if got := fmt.Sprintf("%+s", req); got != want {
		t.Errorf("fmt.Sprintf(\"%%+s\", req) = %q, want %q", got, want)
	}

	var nilReq *sip.Request
	if got := nilReq.String(); got != "<nil>" {
		t.Errorf("nilReq.String() = %q, want \"<nil>\"", got)
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		modify  func(req *sip.Request)
		wantErr error
	}{
		{name: "valid", modify: func(*sip.Request) {}},
		{
			name:    "missing Max-Forwards",
			modify:  func(req *sip.Request) { req.Headers.Remove(header.NameMaxForwards) },
			wantErr: sip.ErrMissingHeader,
		},
		{
			name:    "CSeq method mismatch",
			modify:  func(req *sip.Request) { req.Method = sip.RequestMethodInvite },
			wantErr: sip.ErrInvalidMessage,
		},
		{
			name: "bad CSeq",
			modify: func(req *sip.Request) {
				cseq, _ := req.Headers.CSeq()
				cseq.Replace("99999999999 REGISTER")
			},
			wantErr: sip.ErrParse,
		},
		{
			name:    "content length mismatch",
			modify:  func(req *sip.Request) { req.Body = []byte("hello") },
			wantErr: sip.ErrInvalidMessage,
		},
		{
			name:    "bad method",
			modify:  func(req *sip.Request) { req.Method = "IN VITE" },
			wantErr: sip.ErrInvalidMessage,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			req := newTestRequest(t)
			c.modify(req)
			err := req.Validate()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("req.Validate() = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if err != nil && !errors.Is(err, sip.ErrInvalidMessage) {
				t.Errorf("req.Validate() = %v, want it to wrap %v", err, sip.ErrInvalidMessage)
			}
			if got, want := req.IsValid(), c.wantErr == nil; got != want {
				t.Errorf("req.IsValid() = %v, want %v", got, want)
			}
		})
	}

	var nilReq *sip.Request
	if err := nilReq.Validate(); !errors.Is(err, sip.ErrInvalidArgument) {
		t.Errorf("nilReq.Validate() = %v, want %v", err, sip.ErrInvalidArgument)
	}
}

func TestRequest_CloneEqual(t *testing.T) {
	t.Parallel()

	req := newTestRequest(t)
	req.Body = []byte("x")
	clone := req.Clone()
	if !clone.Equal(req) || !req.Equal(clone) || !req.Equal(*req) {
		t.Fatalf("req.Clone() = %+v, want equal to %+v", clone, req)
	}

	to, err := clone.MessageHeaders().To()
	if err != nil {
		t.Fatalf("clone.MessageHeaders().To() error = %v, want nil", err)
	}
	to.Replace("Bob <sip:bob@biloxi.com>;tag=8321234356")
	if clone.Equal(req) {
		t.Errorf("clone.Equal(req) = true after editing the clone To header, want false")
	}
	if to, _ := req.Headers.To(); to.Value() != "Bob <sip:bob@biloxi.com>" {
		t.Errorf("req To = %q, want untouched", to.Value())
	}

	clone.MessageBody()[0] = 'y'
	if req.Body[0] != 'x' {
		t.Errorf("req.Body = %q, want \"x\"", req.Body)
	}

	if req.Equal(&sip.Response{}) || req.Equal(nil) {
		t.Errorf("req.Equal(other type) = true, want false")
	}
}

func TestRequest_JSON(t *testing.T) {
	t.Parallel()

	req := newTestRequest(t)
	req.Body = []byte("body")
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(req) error = %v, want nil", err)
	}
	var got sip.Request
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	if diff := cmp.Diff(&got, req); diff != "" {
		t.Errorf("json round trip = %+v, want %+v\ndiff (-got +want):\n%v", &got, req, diff)
	}
}

func TestRequest_LogValue(t *testing.T) {
	t.Parallel()

	v := newTestRequest(t).LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("req.LogValue().Kind() = %v, want %v", v.Kind(), slog.KindGroup)
	}
	got := make(map[string]string)
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}
	want := map[string]string{
		"method":  "REGISTER",
		"uri":     "sip:registrar.biloxi.com",
		"Via":     "SIP/2.0/UDP bobspc.biloxi.com:5060;branch=z9hG4bKnashds7",
		"From":    "Bob <sip:bob@biloxi.com>;tag=456248",
		"To":      "Bob <sip:bob@biloxi.com>",
		"Call-ID": "843817637684230@998sdasdh09",
		"CSeq":    "1826 REGISTER",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("req.LogValue() = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}
