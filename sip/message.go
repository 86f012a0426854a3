package sip

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// Message is a SIP request or response.
// It is implemented by [*Request] and [*Response].
type Message interface {
	types.Renderer
	types.Cloneable[Message]
	types.Equalable
	types.ValidFlag
	// StartLine returns the request line or the status line without CRLF.
	StartLine() string
	// MessageHeaders returns the message headers.
	// Headers are stored as pointers, so edits made through them change the message.
	MessageHeaders() Headers
	// SetMessageHeaders replaces all message headers.
	SetMessageHeaders(hdrs Headers)
	// MessageBody returns the raw message body.
	MessageBody() []byte
	// SetMessageBody replaces the message body, Content-Length is not touched.
	SetMessageBody(body []byte)
	// Validate checks the start line and the headers every message must carry.
	Validate() error
	// String returns a short form of the message: its start line.
	String() string
}

// Tokenizer holds a tokenized message.
// Exactly one of RequestLine and StatusLine is set.
// All slices point into the tokenized input.
type Tokenizer struct {
	RequestLine *RequestLineTokenizer
	StatusLine  *StatusLineTokenizer
	Headers     []header.LineTokenizer
	Body        []byte
}

// IsRequest reports whether the tokenized message is a request.
func (tok Tokenizer) IsRequest() bool { return tok.RequestLine != nil }

// Tokenize splits a whole message.
// Empty lines before the start line are skipped, everything after the blank line
// that ends the headers is the body, taken verbatim without looking at Content-Length.
//
// When the input ends before the blank line the error is [ErrIncomplete].
// Callers should buffer more bytes and tokenize again from the start.
func Tokenize(in []byte) (rest []byte, tok Tokenizer, err error) {
	rest, tok, err = TokenizeHead(skipEmptyLines(in))
	if err != nil {
		return in, Tokenizer{}, errtrace.Wrap(err)
	}
	tok.Body, rest = rest, rest[len(rest):]
	return rest, tok, nil
}

// TokenizeHead splits the start line and the header lines including the blank line after them.
// The rest starts with the message body.
//
// A status line is tried before a request line.
func TokenizeHead(in []byte) (rest []byte, tok Tokenizer, err error) {
	if r, stok, err := TokenizeStatusLine(in); err == nil {
		tok.StatusLine, rest = &stok, r
	} else if errorutil.IsIncomplete(err) {
		return in, Tokenizer{}, errtrace.Wrap(err)
	} else {
		r, rtok, err := TokenizeRequestLine(in)
		if err != nil {
			return in, Tokenizer{}, errtrace.Wrap(err)
		}
		tok.RequestLine, rest = &rtok, r
	}

	for {
		switch {
		case len(rest) == 0, len(rest) == 1 && rest[0] == '\r':
			return in, Tokenizer{}, errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "message head"))
		case rest[0] == '\n':
			return rest[1:], tok, nil
		case rest[0] == '\r' && rest[1] == '\n':
			return rest[2:], tok, nil
		}

		var ltok header.LineTokenizer
		if rest, ltok, err = header.TokenizeLine(rest); err != nil {
			return in, Tokenizer{}, errtrace.Wrap(err)
		}
		tok.Headers = append(tok.Headers, ltok)
	}
}

func skipEmptyLines(in []byte) []byte {
	for {
		switch {
		case bytes.HasPrefix(in, []byte("\r\n")):
			in = in[2:]
		case len(in) > 0 && in[0] == '\n':
			in = in[1:]
		default:
			return in
		}
	}
}

// MessageFrom converts a tokenized message.
// Header values are kept untyped, the body is copied.
func MessageFrom(tok Tokenizer) (Message, error) {
	switch {
	case tok.StatusLine != nil:
		return errtrace.Wrap2(ResponseFrom(tok))
	case tok.RequestLine != nil:
		return errtrace.Wrap2(RequestFrom(tok))
	default:
		return nil, errtrace.Wrap(errorutil.NewUnexpectedError("tokenized message has no start line"))
	}
}

func headersFrom(toks []header.LineTokenizer) (Headers, error) {
	var hdrs Headers
	for _, ltok := range toks {
		hdr, err := header.LineFrom(ltok)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		hdrs = append(hdrs, hdr)
	}
	return hdrs, nil
}

func bodyFrom(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}

// Parse parses a complete message held in memory.
// The body is everything after the blank line.
//
// Example:
//
//	msg, err := sip.Parse([]byte("REGISTER sip:server.com SIP/2.0\r\n\r\n"))
//	// msg is *sip.Request
func Parse[T ~string | ~[]byte](s T) (Message, error) {
	_, tok, err := Tokenize([]byte(s))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(MessageFrom(tok))
}

// ParseRequest parses a complete request, a response gives [ErrTokenize].
func ParseRequest[T ~string | ~[]byte](s T) (*Request, error) {
	msg, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	req, ok := msg.(*Request)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewTokenizeError("request expected, got response"))
	}
	return req, nil
}

// ParseResponse parses a complete response, a request gives [ErrTokenize].
func ParseResponse[T ~string | ~[]byte](s T) (*Response, error) {
	msg, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	res, ok := msg.(*Response)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewTokenizeError("response expected, got request"))
	}
	return res, nil
}

func validateContentLength(hdrs Headers, body []byte) error {
	hdr, ok := hdrs.ContentLength()
	if !ok {
		return nil
	}
	cl, err := hdr.Typed()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if int(cl) != len(body) {
		return errorutil.Errorf("content length mismatch: got %d, want %d", cl, len(body)) //errtrace:skip
	}
	return nil
}

func validateHdrs(hdrs Headers, mandatory []header.Name) []error {
	var errs []error
	for _, name := range mandatory {
		if !hdrs.Has(name) {
			errs = append(errs, errorutil.NewMissingHeaderError(string(name)))
		}
	}
	if hdr, err := hdrs.CSeq(); err == nil {
		if _, err := hdr.Typed(); err != nil {
			errs = append(errs, errorutil.JoinPrefix("CSeq", err))
		}
	}
	if via, err := hdrs.Via(); err == nil {
		if _, err := via.Typed(); err != nil {
			errs = append(errs, errorutil.JoinPrefix("Via", err))
		}
	}
	return errs
}
