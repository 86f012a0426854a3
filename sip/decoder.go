package sip

import (
	"context"
	"log/slog"
	"reflect"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/log"
)

// DefaultMaxMessageSize is the message size limit used when [DecoderOptions.MaxMessageSize] is zero.
const DefaultMaxMessageSize = 65535

// DecoderOptions configures a [Decoder].
// A nil *DecoderOptions is valid and means stream mode off and defaults for the rest.
type DecoderOptions struct {
	// Stream switches the decoder to stream mode used with TCP, TLS and other reliable transports.
	// In stream mode every message must carry Content-Length.
	// Otherwise every written chunk is a whole datagram: the body is the rest of the datagram
	// unless Content-Length says otherwise and bytes after the message are discarded.
	Stream bool
	// MaxMessageSize limits the size of one message, head and body together.
	MaxMessageSize int
	// Log is used to log keep-alives and dropped frames.
	Log *slog.Logger
	// Metrics is optional.
	Metrics *DecoderMetrics
}

func (o *DecoderOptions) stream() bool { return o != nil && o.Stream }

func (o *DecoderOptions) maxMessageSize() int {
	if o == nil || o.MaxMessageSize <= 0 {
		return DefaultMaxMessageSize
	}
	return o.MaxMessageSize
}

func (o *DecoderOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

func (o *DecoderOptions) metrics() *DecoderMetrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}

// DecodeState is a state of the [Decoder] framing state machine.
type DecodeState string

const (
	// DecodeStateIdle waits for the first byte of a message, CRLF keep-alives are skipped.
	DecodeStateIdle DecodeState = "idle"
	// DecodeStateHead waits for the blank line that ends the message head.
	DecodeStateHead DecodeState = "head"
	// DecodeStateBody waits for Content-Length bytes of the body.
	DecodeStateBody DecodeState = "body"
)

const (
	decEvtData  = "data"
	decEvtHead  = "head"
	decEvtFrame = "frame"
	decEvtDrop  = "drop"
	decEvtReset = "reset"
)

// Decoder frames SIP messages off bytes received from a transport.
// It does no I/O: bytes come in with [Decoder.Write] or [Decoder.Feed],
// messages go out of [Decoder.Decode] or to a [Handler].
//
// Decoder is not safe for concurrent use, keep one per connection.
type Decoder struct {
	opts *DecoderOptions
	fsm  *stateless.StateMachine
	buf  []byte

	headLen, bodyLen int
}

// NewDecoder creates a decoder, opts may be nil.
func NewDecoder(opts *DecoderOptions) *Decoder {
	d := &Decoder{opts: opts}
	d.initFSM()
	return d
}

func (d *Decoder) initFSM() {
	d.fsm = stateless.NewStateMachine(DecodeStateIdle)
	d.fsm.SetTriggerParameters(decEvtHead, reflect.TypeOf(0), reflect.TypeOf(0))

	d.fsm.Configure(DecodeStateIdle).
		OnEntryFrom(decEvtFrame, d.actFrame).
		OnEntryFrom(decEvtDrop, d.actDrop).
		Permit(decEvtData, DecodeStateHead).
		Ignore(decEvtReset)

	d.fsm.Configure(DecodeStateHead).
		Permit(decEvtHead, DecodeStateBody).
		Permit(decEvtDrop, DecodeStateIdle).
		Permit(decEvtReset, DecodeStateIdle)

	d.fsm.Configure(DecodeStateBody).
		OnEntryFrom(decEvtHead, d.actHead).
		Permit(decEvtFrame, DecodeStateIdle).
		Permit(decEvtDrop, DecodeStateIdle).
		Permit(decEvtReset, DecodeStateIdle)
}

// State returns the current framing state.
func (d *Decoder) State() DecodeState { return d.fsm.MustState().(DecodeState) }

// Buffered returns the number of bytes waiting to be decoded.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Write appends p to the internal buffer, it never fails.
func (d *Decoder) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Reset drops buffered bytes and returns the decoder to [DecodeStateIdle].
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
	d.headLen, d.bodyLen = 0, 0
	d.fsm.Fire(decEvtReset) //nolint:errcheck
}

// Decode returns the next complete message from the buffer.
//
// [ErrIncomplete] means more bytes are needed, buffered bytes are kept.
// Any other error means a frame was dropped: in stream mode the stream is out of sync
// after a malformed head, the caller decides whether to close the connection.
// Decode may be called again after an error.
func (d *Decoder) Decode() (Message, error) {
	for {
		switch d.State() {
		case DecodeStateIdle:
			if n := keepAliveLen(d.buf); n > 0 {
				d.consume(n)
				d.opts.metrics().recordKeepAlive(n)
				d.opts.log().LogAttrs(context.Background(), slog.LevelDebug, "keep-alive skipped", slog.Int("bytes", n))
			}
			if len(d.buf) == 0 {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "no data"))
			}
			if err := d.fsm.Fire(decEvtData); err != nil {
				return nil, errtrace.Wrap(err)
			}
		case DecodeStateHead:
			headLen, bodyLen, err := d.frameSize()
			if err != nil {
				if errorutil.IsIncomplete(err) {
					return nil, errtrace.Wrap(err)
				}
				return nil, errtrace.Wrap(d.drop(err, len(d.buf)))
			}
			if err := d.fsm.Fire(decEvtHead, headLen, bodyLen); err != nil {
				return nil, errtrace.Wrap(err)
			}
		case DecodeStateBody:
			size := d.headLen + d.bodyLen
			if len(d.buf) < size {
				if d.opts.stream() {
					return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "message body"))
				}
				return nil, errtrace.Wrap(d.drop(
					errorutil.NewTokenizeError("datagram body is %d bytes shorter than Content-Length", size-len(d.buf)),
					len(d.buf),
				))
			}

			msg, err := Parse(d.buf[:size])
			if err != nil {
				n := size
				if !d.opts.stream() {
					n = len(d.buf)
				}
				return nil, errtrace.Wrap(d.drop(err, n))
			}
			if err := d.fsm.Fire(decEvtFrame, msg); err != nil {
				return nil, errtrace.Wrap(err)
			}
			return msg, nil
		default:
			return nil, errtrace.Wrap(errorutil.NewUnexpectedError("decoder in unknown state %q", d.State()))
		}
	}
}

// Feed writes p and passes every complete message to h.
// Errors of dropped frames are joined, decoding goes on after each of them.
func (d *Decoder) Feed(p []byte, h Handler) error {
	d.Write(p) //nolint:errcheck

	var errs []error
	for {
		msg, err := d.Decode()
		if err != nil {
			if errorutil.IsIncomplete(err) {
				break
			}
			errs = append(errs, err)
			continue
		}
		h.HandleMessage(msg)
	}
	return errtrace.Wrap(errorutil.Join(errs...))
}

// frameSize locates the end of the head and reads Content-Length.
func (d *Decoder) frameSize() (headLen, bodyLen int, err error) {
	maxSize := d.opts.maxMessageSize()
	rest, tok, err := TokenizeHead(d.buf)
	if err != nil {
		if !errorutil.IsIncomplete(err) {
			return 0, 0, errtrace.Wrap(err)
		}
		if len(d.buf) > maxSize {
			return 0, 0, errtrace.Wrap(errorutil.NewWrapperError(ErrMessageTooLarge, "head exceeds %d bytes", maxSize))
		}
		if !d.opts.stream() {
			return 0, 0, errtrace.Wrap(errorutil.NewTokenizeError("datagram ends inside the message head"))
		}
		return 0, 0, errtrace.Wrap(err)
	}

	headLen = len(d.buf) - len(rest)
	cl, ok, err := contentLength(tok.Headers)
	switch {
	case err != nil:
		return 0, 0, errtrace.Wrap(err)
	case ok:
		bodyLen = cl
	case d.opts.stream():
		return 0, 0, errtrace.Wrap(errorutil.NewMissingHeaderError(string(header.NameContentLength)))
	default:
		bodyLen = len(rest)
	}
	if headLen+bodyLen > maxSize {
		return 0, 0, errtrace.Wrap(errorutil.NewWrapperError(ErrMessageTooLarge,
			"%d bytes exceed %d bytes", headLen+bodyLen, maxSize))
	}
	return headLen, bodyLen, nil
}

func contentLength(toks []header.LineTokenizer) (int, bool, error) {
	for _, ltok := range toks {
		if !header.CanonicName(string(ltok.Name)).Equal(header.NameContentLength) {
			continue
		}
		hdr, err := header.LineFrom(ltok)
		if err != nil {
			return 0, false, errtrace.Wrap(err)
		}
		cl, ok := hdr.(*header.ContentLength)
		if !ok {
			return 0, false, errtrace.Wrap(errorutil.NewUnexpectedError("unexpected Content-Length header type %T", hdr))
		}
		v, err := cl.Typed()
		if err != nil {
			return 0, false, errtrace.Wrap(err)
		}
		return int(v), true, nil
	}
	return 0, false, nil
}

func keepAliveLen(b []byte) int {
	var n int
	for n < len(b) && (b[n] == '\r' || b[n] == '\n') {
		n++
	}
	return n
}

func (d *Decoder) consume(n int) {
	d.buf = d.buf[:copy(d.buf, d.buf[n:])]
}

func (d *Decoder) drop(err error, n int) error {
	if ferr := d.fsm.Fire(decEvtDrop, err, n); ferr != nil {
		return errtrace.Wrap(errorutil.Join(err, ferr))
	}
	return errtrace.Wrap(err)
}

func (d *Decoder) actHead(ctx context.Context, args ...any) error {
	d.headLen, d.bodyLen = args[0].(int), args[1].(int) //nolint:forcetypeassert

	d.opts.log().LogAttrs(ctx, slog.LevelDebug, "message head framed",
		slog.Int("head_len", d.headLen),
		slog.Int("body_len", d.bodyLen),
	)
	return nil
}

func (d *Decoder) actFrame(ctx context.Context, args ...any) error {
	msg := args[0].(Message) //nolint:forcetypeassert

	n := d.headLen + d.bodyLen
	if !d.opts.stream() {
		n = len(d.buf)
	}
	d.consume(n)
	d.headLen, d.bodyLen = 0, 0
	d.opts.metrics().recordMessage(msg)

	d.opts.log().LogAttrs(ctx, slog.LevelDebug, "message decoded", slog.Any("message", msg))
	return nil
}

func (d *Decoder) actDrop(ctx context.Context, args ...any) error {
	err := args[0].(error) //nolint:forcetypeassert
	n := args[1].(int)     //nolint:forcetypeassert

	d.opts.log().LogAttrs(ctx, slog.LevelWarn, "frame dropped",
		slog.Any("error", err),
		slog.Any("data", log.Bytes(d.buf[:n])),
	)
	d.consume(n)
	d.headLen, d.bodyLen = 0, 0
	d.opts.metrics().recordError(err)
	return nil
}
