package sip

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Response represents a SIP response message.
type Response struct {
	Status  ResponseStatus `json:"status"`
	Reason  ResponseReason `json:"reason"`
	Version ProtoVersion   `json:"version"`
	Headers Headers        `json:"headers"`
	Body    []byte         `json:"body"`
}

// NewResponse builds a response to req as a UAS does (RFC 3261 Section 8.2.6).
// Via, From, To, Call-ID and CSeq are copied, Record-Route is copied into 101-299 responses.
// A To tag is generated for responses other than 100 when the request has none.
// An empty reason is replaced with the default phrase of the status.
func NewResponse(req *Request, sts ResponseStatus, reason ResponseReason) (*Response, error) {
	if req == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("nil request"))
	}
	if reason == "" {
		reason = sts.Reason()
	}

	res := &Response{
		Status:  sts,
		Reason:  reason,
		Version: req.Version,
	}
	for _, h := range req.Headers {
		switch h.(type) {
		case *header.Via, *header.From, *header.CallID, *header.CSeq:
			res.Headers.Push(h.Clone())
		case *header.To:
			to := h.Clone()
			if sts != ResponseStatusTrying {
				if err := ensureToTag(to.(*header.To)); err != nil {
					return nil, errtrace.Wrap(err)
				}
			}
			res.Headers.Push(to)
		case *header.RecordRoute:
			if sts > 100 && sts < 300 {
				res.Headers.Push(h.Clone())
			}
		}
	}
	res.Headers.Push(header.NewContentLength("0"))
	return res, nil
}

func ensureToTag(hdr *header.To) error {
	to, err := hdr.Typed()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if _, ok := to.Tag(); ok {
		return nil
	}
	to.SetTag(typed.NewTag())
	hdr.Replace(to.RenderValue())
	return nil
}

// ResponseFrom converts a tokenized response.
func ResponseFrom(tok Tokenizer) (*Response, error) {
	if tok.StatusLine == nil {
		return nil, errtrace.Wrap(errorutil.NewTokenizeError("status line expected"))
	}
	ver, sts, reason, err := StatusLineFrom(*tok.StatusLine)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	hdrs, err := headersFrom(tok.Headers)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Response{
		Status:  sts,
		Reason:  reason,
		Version: ver,
		Headers: hdrs,
		Body:    bodyFrom(tok.Body),
	}, nil
}

// RenderTo renders the SIP response to the given writer.
func (res *Response) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if res == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(res.renderStartLine)
	cw.Fprint("\r\n")
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(res.Headers.RenderTo(w, opts))
	})
	cw.Fprint("\r\n")
	cw.Write(res.Body)
	return errtrace.Wrap2(cw.Result())
}

func (res *Response) renderStartLine(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(fmt.Fprint(w, res.Version, " ", res.Status, " ", res.Reason))
}

// Render renders the SIP response to a string.
func (res *Response) Render(opts *RenderOptions) string {
	if res == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	res.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// StartLine returns the status line.
func (res *Response) StartLine() string {
	if res == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	res.renderStartLine(sb) //nolint:errcheck
	return sb.String()
}

// String returns a short string representation of the response.
func (res *Response) String() string {
	if res == nil {
		return "<nil>"
	}
	return res.StartLine()
}

// Format implements [fmt.Formatter] for custom formatting.
func (res *Response) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			res.RenderTo(f, nil) //nolint:errcheck
			return
		}
		f.Write([]byte(res.String()))
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(res.Render(nil)))
			return
		}
		f.Write([]byte(strconv.Quote(res.String())))
		return
	default:
		type hideMethods Response
		type Response hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Response)(res))
		return
	}
}

// LogValue implements [slog.LogValuer] for structured logging.
func (res *Response) LogValue() slog.Value {
	if res == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs, slog.Int("status", int(res.Status)), slog.String("reason", string(res.Reason)))
	attrs = appendHdrAttrs(attrs, res.Headers)
	return slog.GroupValue(attrs...)
}

// MessageHeaders returns the response headers.
func (res *Response) MessageHeaders() Headers { return res.Headers }

// SetMessageHeaders replaces the response headers.
func (res *Response) SetMessageHeaders(hdrs Headers) { res.Headers = hdrs }

// MessageBody returns the response body.
func (res *Response) MessageBody() []byte { return res.Body }

// SetMessageBody replaces the response body.
func (res *Response) SetMessageBody(body []byte) { res.Body = body }

// Clone returns a deep copy of the response.
func (res *Response) Clone() Message {
	if res == nil {
		return nil
	}

	res2 := *res
	res2.Headers = res.Headers.Clone()
	res2.Body = slices.Clone(res.Body)
	return &res2
}

// Equal returns whether the response is equal to another value.
func (res *Response) Equal(val any) bool {
	var other *Response
	switch v := val.(type) {
	case Response:
		other = &v
	case *Response:
		other = v
	default:
		return false
	}

	if res == other {
		return true
	} else if res == nil || other == nil {
		return false
	}

	return res.Status == other.Status &&
		res.Reason == other.Reason &&
		res.Version.Equal(other.Version) &&
		res.Headers.Equal(other.Headers) &&
		slices.Equal(res.Body, other.Body)
}

// IsValid returns whether the response is valid.
func (res *Response) IsValid() bool {
	return res.Validate() == nil
}

var resMandatoryHdrs = []header.Name{
	header.NameVia,
	header.NameFrom,
	header.NameTo,
	header.NameCallID,
	header.NameCSeq,
}

// Validate checks the status line, presence of the headers every response must carry
// and Content-Length against the body.
func (res *Response) Validate() error {
	if res == nil {
		return errtrace.Wrap(NewInvalidArgumentError("invalid response"))
	}

	errs := make([]error, 0, 10)

	if !res.Status.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid status %d", res.Status))
	}
	if !res.Version.IsValid() {
		errs = append(errs, errorutil.Errorf("invalid version %q", res.Version))
	}
	errs = append(errs, validateHdrs(res.Headers, resMandatoryHdrs)...)
	if err := validateContentLength(res.Headers, res.Body); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errtrace.Wrap(NewInvalidMessageError(errorutil.Join(errs...)))
	}
	return nil
}
