package sip_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/sip"
)

const inviteMsg = "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
	"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
	"Max-Forwards: 70\r\n" +
	"To: Bob <sip:bob@biloxi.com>\r\n" +
	"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
	"Call-ID: a84b4c76e66710@pc33.atlanta.com\r\n" +
	"CSeq: 314159 INVITE\r\n" +
	"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
	"X-Forward: 202.45.213.14\r\n" +
	"Content-Type: application/sdp\r\n" +
	"Content-Length: 4\r\n" +
	"\r\n" +
	"v=0\n"

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    sip.Message
		wantErr error
	}{
		{
			name: "register without headers",
			in:   "REGISTER sip:server.com SIP/2.0\r\n\r\n",
			want: &sip.Request{
				Method:  sip.RequestMethodRegister,
				URI:     mustParseURI(t, "sip:server.com"),
				Version: sip.V2,
			},
		},
		{
			name: "invite",
			in:   inviteMsg,
			want: &sip.Request{
				Method:  sip.RequestMethodInvite,
				URI:     mustParseURI(t, "sip:bob@biloxi.com"),
				Version: sip.V2,
				Headers: header.Headers{
					header.NewVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"),
					header.NewMaxForwards("70"),
					header.NewTo("Bob <sip:bob@biloxi.com>"),
					header.NewFrom("Alice <sip:alice@atlanta.com>;tag=1928301774"),
					header.NewCallID("a84b4c76e66710@pc33.atlanta.com"),
					header.NewCSeq("314159 INVITE"),
					header.NewContact("<sip:alice@pc33.atlanta.com>"),
					header.NewOther("X-Forward", "202.45.213.14"),
					header.NewContentType("application/sdp"),
					header.NewContentLength("4"),
				},
				Body: []byte("v=0\n"),
			},
		},
		{
			name: "lower case method and version, bare LF, leading empty lines",
			in:   "\r\n\r\nbye sip:bob@biloxi.com sip/2.0\nv: SIP/2.0/UDP pc33.atlanta.com\n\n",
			want: &sip.Request{
				Method:  sip.RequestMethodBye,
				URI:     mustParseURI(t, "sip:bob@biloxi.com"),
				Version: sip.V2,
				Headers: header.Headers{header.NewVia("SIP/2.0/UDP pc33.atlanta.com")},
			},
		},
		{
			name: "extension method",
			in:   "FOO sip:bob@biloxi.com SIP/2.0\r\nSubject: lunch\r\n  today\r\n\r\n",
			want: &sip.Request{
				Method:  "FOO",
				URI:     mustParseURI(t, "sip:bob@biloxi.com"),
				Version: sip.V2,
				Headers: header.Headers{header.NewSubject("lunch today")},
			},
		},
		{
			name: "response",
			in: "SIP/2.0 180 Ringing\r\n" +
				"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds\r\n" +
				"l: 0\r\n" +
				"\r\n",
			want: &sip.Response{
				Status:  sip.ResponseStatusRinging,
				Reason:  "Ringing",
				Version: sip.V2,
				Headers: header.Headers{
					header.NewVia("SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bK776asdhds"),
					header.NewContentLength("0"),
				},
			},
		},
		{
			name: "response with multi word reason",
			in:   "SIP/2.0 404 Not Here At All\r\n\r\n",
			want: &sip.Response{Status: 404, Reason: "Not Here At All", Version: sip.V2},
		},
		{
			name: "response without reason",
			in:   "SIP/2.0 200\r\n\r\n",
			want: &sip.Response{Status: 200, Version: sip.V2},
		},
		{
			name: "status code out of table",
			in:   "SIP/2.0 799 Strange\r\n\r\n",
			want: &sip.Response{Status: 799, Reason: "Strange", Version: sip.V2},
		},
		{name: "empty", in: "", wantErr: sip.ErrIncomplete},
		{name: "partial request line", in: "INVITE sip:bob@biloxi.com SIP/2.0", wantErr: sip.ErrIncomplete},
		{name: "no headers end", in: "INVITE sip:bob@biloxi.com SIP/2.0\r\n", wantErr: sip.ErrIncomplete},
		{name: "partial header", in: "INVITE sip:bob@biloxi.com SIP/2.0\r\nTo: <sip:bob@", wantErr: sip.ErrIncomplete},
		{name: "partial blank line", in: "INVITE sip:bob@biloxi.com SIP/2.0\r\nTo: x\r\n\r", wantErr: sip.ErrIncomplete},
		{name: "partial status line", in: "SIP/2.0 200 O", wantErr: sip.ErrIncomplete},
		{name: "control byte in start line", in: "INV\x00ITE", wantErr: sip.ErrTokenize},
		{name: "no colon", in: "INVITE sip:bob@biloxi.com SIP/2.0\r\nVia SIP/2.0/UDP x\r\n\r\n", wantErr: sip.ErrTokenize},
		{name: "bad status code", in: "SIP/2.0 20 OK\r\n\r\n", wantErr: sip.ErrTokenize},
		{name: "missing version", in: "INVITE sip:bob@biloxi.com\r\n\r\n", wantErr: sip.ErrTokenize},
		{name: "trailing garbage", in: "INVITE sip:bob@biloxi.com SIP/2.0 x\r\n\r\n", wantErr: sip.ErrTokenize},
		{name: "bad utf-8 value", in: "INVITE sip:bob@biloxi.com SIP/2.0\r\nSubject: \xff\xfe\r\n\r\n", wantErr: sip.ErrUtf8},
		{name: "bad utf-8 reason", in: "SIP/2.0 200 \xff\r\n\r\n", wantErr: sip.ErrUtf8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := sip.Parse(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("sip.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("sip.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestParse_RenderRoundTrip(t *testing.T) {
	t.Parallel()

	msg, err := sip.Parse(inviteMsg)
	if err != nil {
		t.Fatalf("sip.Parse(inviteMsg) error = %v, want nil", err)
	}
	if got := msg.Render(nil); got != inviteMsg {
		t.Errorf("msg.Render(nil) = %q, want %q", got, inviteMsg)
	}
	if err := msg.Validate(); err != nil {
		t.Errorf("msg.Validate() = %v, want nil", err)
	}

	msg2, err := sip.Parse(msg.Render(&sip.RenderOptions{Compact: true}))
	if err != nil {
		t.Fatalf("sip.Parse(compact) error = %v, want nil", err)
	}
	for i, h := range msg2.MessageHeaders().All() {
		if want := msg.MessageHeaders()[i]; !h.Equal(want) {
			t.Errorf("compact header #%d = %q, want %q", i, h, want)
		}
	}
}

func TestParseRequest_ParseResponse(t *testing.T) {
	t.Parallel()

	if _, err := sip.ParseRequest("SIP/2.0 200 OK\r\n\r\n"); !cmp.Equal(err, sip.ErrTokenize, cmpopts.EquateErrors()) {
		t.Errorf("sip.ParseRequest(response) error = %v, want %v", err, sip.ErrTokenize)
	}
	if _, err := sip.ParseResponse("ACK sip:a@b SIP/2.0\r\n\r\n"); !cmp.Equal(err, sip.ErrTokenize, cmpopts.EquateErrors()) {
		t.Errorf("sip.ParseResponse(request) error = %v, want %v", err, sip.ErrTokenize)
	}
	req, err := sip.ParseRequest([]byte("ACK sip:a@b SIP/2.0\r\n\r\n"))
	if err != nil {
		t.Fatalf("sip.ParseRequest(ACK) error = %v, want nil", err)
	}
	if req.Method != sip.RequestMethodAck {
		t.Errorf("req.Method = %q, want %q", req.Method, sip.RequestMethodAck)
	}
}

func TestResponseStatus_Kind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want sip.StatusKind
	}{
		{"SIP/2.0 100 Trying\r\n\r\n", sip.StatusKindProvisional},
		{"SIP/2.0 199 Early Dialog Terminated\r\n\r\n", sip.StatusKindProvisional},
		{"SIP/2.0 200 OK\r\n\r\n", sip.StatusKindSuccessful},
		{"SIP/2.0 399 Whatever\r\n\r\n", sip.StatusKindRedirection},
		{"SIP/2.0 486 Busy Here\r\n\r\n", sip.StatusKindRequestFailure},
		{"SIP/2.0 503 Service Unavailable\r\n\r\n", sip.StatusKindServerFailure},
		{"SIP/2.0 699 Whatever\r\n\r\n", sip.StatusKindGlobalFailure},
		{"SIP/2.0 700 Whatever\r\n\r\n", sip.StatusKindOther},
	}
	for _, c := range cases {
		res, err := sip.ParseResponse(c.in)
		if err != nil {
			t.Fatalf("sip.ParseResponse(%q) error = %v, want nil", c.in, err)
		}
		if got := res.Status.Kind(); got != c.want {
			t.Errorf("sip.ParseResponse(%q).Status.Kind() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	in := []byte(inviteMsg)
	rest, tok, err := sip.Tokenize(in)
	if err != nil {
		t.Fatalf("sip.Tokenize(inviteMsg) error = %v, want nil", err)
	}
	if len(rest) != 0 {
		t.Errorf("rest = %q, want empty", rest)
	}
	if !tok.IsRequest() || tok.StatusLine != nil {
		t.Fatalf("tok.IsRequest() = false, want true")
	}
	if got := string(tok.RequestLine.Method.Value); got != "INVITE" {
		t.Errorf("tok.RequestLine.Method = %q, want \"INVITE\"", got)
	}
	if got := len(tok.Headers); got != 10 {
		t.Errorf("len(tok.Headers) = %d, want 10", got)
	}
	if got := string(tok.Headers[7].Name); got != "X-Forward" {
		t.Errorf("tok.Headers[7].Name = %q, want \"X-Forward\"", got)
	}
	if got := string(tok.Body); got != "v=0\n" {
		t.Errorf("tok.Body = %q, want \"v=0\\n\"", got)
	}
	// tokens point into the input
	if &tok.Body[0] != &in[len(in)-4] {
		t.Errorf("tok.Body does not alias the input")
	}

	_, _, err = sip.Tokenize([]byte("SIP/2.0 200 OK\r\nVia: SIP/2.0/UDP x"))
	if !sip.IsIncomplete(err) {
		t.Errorf("sip.Tokenize(partial) error = %v, want %v", err, sip.ErrIncomplete)
	}
}

func TestTokenizeHead(t *testing.T) {
	t.Parallel()

	in := []byte("SIP/2.0 200 OK\r\nContent-Length: 3\r\n\r\nabcNEXT")
	rest, tok, err := sip.TokenizeHead(in)
	if err != nil {
		t.Fatalf("sip.TokenizeHead() error = %v, want nil", err)
	}
	if string(rest) != "abcNEXT" {
		t.Errorf("rest = %q, want \"abcNEXT\"", rest)
	}
	if tok.StatusLine == nil || string(tok.StatusLine.Reason) != "OK" {
		t.Errorf("tok.StatusLine = %+v, want reason \"OK\"", tok.StatusLine)
	}
	if tok.Body != nil {
		t.Errorf("tok.Body = %q, want nil", tok.Body)
	}
}
