package sip_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/sipmsg/sip"
	"github.com/ghettovoice/sipmsg/sip/sipmock"
)

const (
	optionsMsg = "OPTIONS sip:carol@chicago.com SIP/2.0\r\n" +
		"Via: SIP/2.0/TCP pc33.atlanta.com;branch=z9hG4bKhjhs8ass877\r\n" +
		"Max-Forwards: 70\r\n" +
		"To: <sip:carol@chicago.com>\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710\r\n" +
		"CSeq: 63104 OPTIONS\r\n" +
		"Content-Length: 0\r\n" +
		"\r\n"
	okMsg = "SIP/2.0 200 OK\r\n" +
		"Via: SIP/2.0/TCP pc33.atlanta.com;branch=z9hG4bKhjhs8ass877\r\n" +
		"To: <sip:carol@chicago.com>;tag=93810874\r\n" +
		"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
		"Call-ID: a84b4c76e66710\r\n" +
		"CSeq: 63104 OPTIONS\r\n" +
		"Content-Type: application/sdp\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"v=0\r\n"
)

func TestDecoder_Stream(t *testing.T) {
	t.Parallel()

	metrics := sip.NewDecoderMetrics("sip", nil)
	dec := sip.NewDecoder(&sip.DecoderOptions{Stream: true, Metrics: metrics})

	ctrl := gomock.NewController(t)
	h := sipmock.NewMockHandler(ctrl)
	var got []string
	h.EXPECT().HandleMessage(gomock.Any()).
		Do(func(msg sip.Message) { got = append(got, msg.Render(nil)) }).
		Times(2)

	in := []byte("\r\n\r\n" + optionsMsg + "\r\n\r\n" + okMsg)
	for i := range in {
		if err := dec.Feed(in[i:i+1], h); err != nil {
			t.Fatalf("dec.Feed(in[%d]) error = %v, want nil", i, err)
		}
	}

	if diff := cmp.Diff(got, []string{optionsMsg, okMsg}); diff != "" {
		t.Errorf("handled messages = %q, want %q\ndiff (-got +want):\n%v", got, []string{optionsMsg, okMsg}, diff)
	}
	if dec.Buffered() != 0 || dec.State() != sip.DecodeStateIdle {
		t.Errorf("dec.Buffered(), dec.State() = %d, %q, want 0, %q", dec.Buffered(), dec.State(), sip.DecodeStateIdle)
	}
	if v := testutil.ToFloat64(metrics.Messages("request")); v != 1 {
		t.Errorf("requests counter = %v, want 1", v)
	}
	if v := testutil.ToFloat64(metrics.Messages("response")); v != 1 {
		t.Errorf("responses counter = %v, want 1", v)
	}
	if v := testutil.ToFloat64(metrics.KeepAliveBytes()); v != 8 {
		t.Errorf("keep-alive counter = %v, want 8", v)
	}
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	dec := sip.NewDecoder(&sip.DecoderOptions{Stream: true})

	if _, err := dec.Decode(); !sip.IsIncomplete(err) {
		t.Fatalf("dec.Decode() on empty buffer error = %v, want %v", err, sip.ErrIncomplete)
	}

	head, body := okMsg[:len(okMsg)-5], okMsg[len(okMsg)-5:]
	dec.Write([]byte(head[:20]))
	if _, err := dec.Decode(); !sip.IsIncomplete(err) || dec.State() != sip.DecodeStateHead {
		t.Fatalf("dec.Decode() on partial head = %v in %q, want %v in %q",
			err, dec.State(), sip.ErrIncomplete, sip.DecodeStateHead)
	}
	dec.Write([]byte(head[20:]))
	if _, err := dec.Decode(); !sip.IsIncomplete(err) || dec.State() != sip.DecodeStateBody {
		t.Fatalf("dec.Decode() without body = %v in %q, want %v in %q",
			err, dec.State(), sip.ErrIncomplete, sip.DecodeStateBody)
	}
	if dec.Buffered() != len(head) {
		t.Errorf("dec.Buffered() = %d, want %d", dec.Buffered(), len(head))
	}
	dec.Write([]byte(body + optionsMsg[:10]))
	msg, err := dec.Decode()
	if err != nil {
		t.Fatalf("dec.Decode() error = %v, want nil", err)
	}
	res, ok := msg.(*sip.Response)
	if !ok || res.Status != sip.ResponseStatusOK || string(res.Body) != "v=0\r\n" {
		t.Errorf("dec.Decode() = %+v, want 200 response with body", msg)
	}
	if dec.Buffered() != 10 {
		t.Errorf("dec.Buffered() = %d, want 10", dec.Buffered())
	}

	dec.Reset()
	if dec.Buffered() != 0 || dec.State() != sip.DecodeStateIdle {
		t.Errorf("after Reset dec.Buffered(), dec.State() = %d, %q, want 0, %q",
			dec.Buffered(), dec.State(), sip.DecodeStateIdle)
	}
	dec.Reset()
}

func TestDecoder_StreamErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		opts       *sip.DecoderOptions
		in         string
		wantErr    error
		wantReason string
		wantMsgs   int
	}{
		{
			name:       "missing content length",
			in:         strings.Replace(optionsMsg, "Content-Length: 0\r\n", "", 1),
			wantErr:    sip.ErrMissingHeader,
			wantReason: "missing_header",
		},
		{
			name:       "malformed head",
			in:         "INVITE sip:bob@biloxi.com SIP/2.0\r\nVia SIP/2.0/UDP x\r\n\r\n",
			wantErr:    sip.ErrTokenize,
			wantReason: "tokenize",
		},
		{
			name:       "bad content length",
			in:         strings.Replace(optionsMsg, "Content-Length: 0", "Content-Length: x", 1),
			wantErr:    sip.ErrTokenize,
			wantReason: "tokenize",
		},
		{
			name:       "message too large",
			opts:       &sip.DecoderOptions{MaxMessageSize: 100},
			in:         optionsMsg,
			wantErr:    sip.ErrMessageTooLarge,
			wantReason: "too_large",
		},
		{
			name:       "head too large",
			opts:       &sip.DecoderOptions{MaxMessageSize: 100},
			in:         optionsMsg[:150],
			wantErr:    sip.ErrMessageTooLarge,
			wantReason: "too_large",
		},
		{
			name:       "bad frame is skipped",
			in:         strings.Replace(optionsMsg, "Max-Forwards: 70", "Subject: \xff\xfe", 1) + okMsg,
			wantErr:    sip.ErrUtf8,
			wantReason: "utf8",
			wantMsgs:   1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			metrics := sip.NewDecoderMetrics("sip", nil)
			opts := c.opts
			if opts == nil {
				opts = &sip.DecoderOptions{}
			}
			opts.Stream = true
			opts.Metrics = metrics
			dec := sip.NewDecoder(opts)

			var msgs int
			err := dec.Feed([]byte(c.in), sip.HandlerFunc(func(sip.Message) { msgs++ }))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("dec.Feed() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if msgs != c.wantMsgs {
				t.Errorf("handled %d messages, want %d", msgs, c.wantMsgs)
			}
			if dec.Buffered() != 0 || dec.State() != sip.DecodeStateIdle {
				t.Errorf("dec.Buffered(), dec.State() = %d, %q, want 0, %q", dec.Buffered(), dec.State(), sip.DecodeStateIdle)
			}
			if got := sip.ErrorReason(err); got != c.wantReason {
				t.Errorf("sip.ErrorReason(err) = %q, want %q", got, c.wantReason)
			}
			if v := testutil.ToFloat64(metrics.Errors(c.wantReason)); v != 1 {
				t.Errorf("errors counter{reason=%q} = %v, want 1", c.wantReason, v)
			}
		})
	}
}

func TestDecoder_Packet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantBody string
		wantErr  error
	}{
		{
			name:     "no content length",
			in:       strings.Replace(okMsg, "Content-Length: 5\r\n", "", 1),
			wantBody: "v=0\r\n",
		},
		{
			name:     "bytes after content length are discarded",
			in:       okMsg + "garbage",
			wantBody: "v=0\r\n",
		},
		{
			name:    "body shorter than content length",
			in:      okMsg[:len(okMsg)-2],
			wantErr: sip.ErrTokenize,
		},
		{
			name:    "truncated head",
			in:      okMsg[:40],
			wantErr: sip.ErrTokenize,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			dec := sip.NewDecoder(nil)
			var got []sip.Message
			err := dec.Feed([]byte(c.in), sip.HandlerFunc(func(msg sip.Message) { got = append(got, msg) }))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("dec.Feed() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if dec.Buffered() != 0 {
				t.Errorf("dec.Buffered() = %d, want 0", dec.Buffered())
			}
			if c.wantErr != nil {
				if len(got) != 0 {
					t.Errorf("handled %d messages, want 0", len(got))
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("handled %d messages, want 1", len(got))
			}
			if body := string(got[0].MessageBody()); body != c.wantBody {
				t.Errorf("body = %q, want %q", body, c.wantBody)
			}
		})
	}
}

func TestDecoderMetrics_Register(t *testing.T) {
	t.Parallel()

	m := sip.NewDecoderMetrics("sip", prometheus.Labels{"transport": "tcp"})
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(m); err != nil {
		t.Fatalf("reg.Register(m) error = %v, want nil", err)
	}
	m.Messages("request").Inc()
	m.Errors("parse").Inc()
	if n := testutil.CollectAndCount(m); n != 3 {
		t.Errorf("testutil.CollectAndCount(m) = %d, want 3", n)
	}
	if err := reg.Register(m); err == nil {
		t.Errorf("second reg.Register(m) error = nil, want already registered")
	} else if are := (prometheus.AlreadyRegisteredError{}); !errors.As(err, &are) {
		t.Errorf("second reg.Register(m) error = %v, want %T", err, are)
	}
}
