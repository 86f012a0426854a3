package sip

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Request represents a SIP request message.
type Request struct {
	Method  RequestMethod `json:"method"`
	URI     URI           `json:"uri"`
	Version ProtoVersion  `json:"version"`
	Headers Headers       `json:"headers"`
	Body    []byte        `json:"body"`
}

// NewRequest returns a SIP/2.0 request without headers.
func NewRequest(method RequestMethod, u URI) *Request {
	return &Request{Method: method, URI: u, Version: V2}
}

// RequestFrom converts a tokenized request.
func RequestFrom(tok Tokenizer) (*Request, error) {
	if tok.RequestLine == nil {
		return nil, errtrace.Wrap(errorutil.NewTokenizeError("request line expected"))
	}
	method, u, ver, err := RequestLineFrom(*tok.RequestLine)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdrs, err := headersFrom(tok.Headers)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Request{
		Method:  method,
		URI:     u,
		Version: ver,
		Headers: hdrs,
		Body:    bodyFrom(tok.Body),
	}, nil
}

// RenderTo renders the SIP request to the given writer.
func (req *Request) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if req == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(req.renderStartLine(w, opts))
	})
	cw.Fprint("\r\n")
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(req.Headers.RenderTo(w, opts))
	})
	cw.Fprint("\r\n")
	cw.Write(req.Body)
	return errtrace.Wrap2(cw.Result())
}

func (req *Request) renderStartLine(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(req.Method, " ")
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(req.URI.RenderTo(w, opts))
	})
	cw.Fprint(" ", req.Version)
	return errtrace.Wrap2(cw.Result())
}

// Render renders the SIP request to a string.
func (req *Request) Render(opts *RenderOptions) string {
	if req == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	req.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// StartLine returns the request line.
func (req *Request) StartLine() string {
	if req == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	req.renderStartLine(sb, nil) //nolint:errcheck
	return sb.String()
}

// String returns a short string representation of the request.
func (req *Request) String() string {
	if req == nil {
		return "<nil>"
	}
	return req.StartLine()
}

// Format implements [fmt.Formatter] for custom formatting.
func (req *Request) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			req.RenderTo(f, nil) //nolint:errcheck
			return
		}
		f.Write([]byte(req.String()))
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(req.Render(nil)))
			return
		}
		f.Write([]byte(strconv.Quote(req.String())))
		return
	default:
		type hideMethods Request
		type Request hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Request)(req))
		return
	}
}

// LogValue implements [slog.LogValuer] for structured logging.
func (req *Request) LogValue() slog.Value {
	if req == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs, slog.String("method", string(req.Method)), slog.String("uri", req.URI.String()))
	attrs = appendHdrAttrs(attrs, req.Headers)
	return slog.GroupValue(attrs...)
}

func appendHdrAttrs(attrs []slog.Attr, hdrs Headers) []slog.Attr {
	if via, err := hdrs.Via(); err == nil {
		attrs = append(attrs, slog.String("Via", via.Value()))
	}
	if from, err := hdrs.From(); err == nil {
		attrs = append(attrs, slog.String("From", from.Value()))
	}
	if to, err := hdrs.To(); err == nil {
		attrs = append(attrs, slog.String("To", to.Value()))
	}
	if callID, err := hdrs.CallID(); err == nil {
		attrs = append(attrs, slog.String("Call-ID", callID.Value()))
	}
	if cseq, err := hdrs.CSeq(); err == nil {
		attrs = append(attrs, slog.String("CSeq", cseq.Value()))
	}
	return attrs
}

// MessageHeaders returns the request headers.
func (req *Request) MessageHeaders() Headers { return req.Headers }

// SetMessageHeaders replaces the request headers.
func (req *Request) SetMessageHeaders(hdrs Headers) { req.Headers = hdrs }

// MessageBody returns the request body.
func (req *Request) MessageBody() []byte { return req.Body }

// SetMessageBody replaces the request body.
func (req *Request) SetMessageBody(body []byte) { req.Body = body }

// Clone returns a deep copy of the request.
func (req *Request) Clone() Message {
	if req == nil {
		return nil
	}

	req2 := *req
	req2.URI = req.URI.Clone()
	req2.Headers = req.Headers.Clone()
	req2.Body = slices.Clone(req.Body)
	return &req2
}

// Equal returns whether the request is equal to another value.
// Headers are compared pairwise in order, the body byte by byte.
func (req *Request) Equal(val any) bool {
	var other *Request
	switch v := val.(type) {
	case Request:
		other = &v
	case *Request:
		other = v
	default:
		return false
	}

	if req == other {
		return true
	} else if req == nil || other == nil {
		return false
	}

	return req.Method.Equal(other.Method) &&
		req.Version.Equal(other.Version) &&
		req.URI.Equal(other.URI) &&
		req.Headers.Equal(other.Headers) &&
		slices.Equal(req.Body, other.Body)
}

// IsValid returns whether the request is valid.
func (req *Request) IsValid() bool {
	return req.Validate() == nil
}

var reqMandatoryHdrs = []header.Name{
	header.NameVia,
	header.NameFrom,
	header.NameTo,
	header.NameCallID,
	header.NameCSeq,
	header.NameMaxForwards,
}

// Validate checks the request line, presence of the headers every request must carry
// (RFC 3261 Section 8.1.1), the CSeq method and Content-Length against the body.
func (req *Request) Validate() error {
	if req == nil {
		return errtrace.Wrap(NewInvalidArgumentError("invalid request"))
	}

	errs := make([]error, 0, 10)

	if !req.Method.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid method %q", req.Method))
	}
	if !req.URI.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid URI %q", req.URI))
	}
	if !req.Version.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid version %q", req.Version))
	}
	errs = append(errs, validateHdrs(req.Headers, reqMandatoryHdrs)...)
	if hdr, err := req.Headers.CSeq(); err == nil {
		if cseq, err := hdr.Typed(); err == nil && !cseq.Method.Equal(req.Method) {
			errs = append(errs, errorutil.Errorf("CSeq method %q does not match request method %q", cseq.Method, req.Method))
		}
	}
	if err := validateContentLength(req.Headers, req.Body); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errtrace.Wrap(NewInvalidMessageError(errorutil.Join(errs...)))
	}
	return nil
}
