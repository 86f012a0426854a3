package sip

import (
	"bytes"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

// RequestLineTokenizer holds a tokenized "Method SP Request-URI SP SIP-Version" line.
type RequestLineTokenizer struct {
	Method  types.MethodTokenizer
	URI     uri.Tokenizer
	Version types.VersionTokenizer
}

// StatusLineTokenizer holds a tokenized "SIP-Version SP Status-Code SP Reason-Phrase" line.
type StatusLineTokenizer struct {
	Version types.VersionTokenizer
	Status  types.StatusTokenizer
	Reason  []byte
}

// cutLine returns the first line without its terminator.
// Input that has no LF yet is incomplete unless it already holds bytes no start line may contain.
func cutLine(in []byte) (line, rest []byte, err error) {
	i := bytes.IndexByte(in, '\n')
	if i < 0 {
		if j := bytes.IndexFunc(in, func(r rune) bool { return r < ' ' && r != '\t' && r != '\r' || r == 0x7f }); j >= 0 {
			return nil, in, errtrace.Wrap(errorutil.NewTokenizeError("unexpected control character 0x%02x in start line", in[j]))
		}
		return nil, in, errtrace.Wrap(errorutil.NewWrapperError(ErrIncomplete, "start line"))
	}
	line, rest = in[:i], in[i+1:]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, rest, nil
}

func cutSP(in []byte) ([]byte, bool) {
	if len(in) == 0 || !grammar.IsWSP(in[0]) {
		return in, false
	}
	for len(in) > 0 && grammar.IsWSP(in[0]) {
		in = in[1:]
	}
	return in, true
}

// TokenizeRequestLine splits the request line at the start of in, including its line terminator.
func TokenizeRequestLine(in []byte) (rest []byte, tok RequestLineTokenizer, err error) {
	line, rest, err := cutLine(in)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}

	r, mtok, err := types.TokenizeMethod(line)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}
	r, ok := cutSP(r)
	if !ok {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("SP expected after method"))
	}
	r, utok, err := uri.Tokenize(r)
	if err != nil {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError(err))
	}
	if r, ok = cutSP(r); !ok {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("SP expected after request URI"))
	}
	r, vtok, err := types.TokenizeVersion(r)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}
	if len(grammar.TrimLWS(r)) > 0 {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("unexpected %q after version", r))
	}
	return rest, RequestLineTokenizer{Method: mtok, URI: utok, Version: vtok}, nil
}

// TokenizeStatusLine splits the status line at the start of in, including its line terminator.
// The reason phrase may be empty.
func TokenizeStatusLine(in []byte) (rest []byte, tok StatusLineTokenizer, err error) {
	line, rest, err := cutLine(in)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}

	r, vtok, err := types.TokenizeVersion(line)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}
	r, ok := cutSP(r)
	if !ok {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("SP expected after version"))
	}
	r, stok, err := types.TokenizeStatus(r)
	if err != nil {
		return in, tok, errtrace.Wrap(err)
	}
	if len(r) > 0 {
		if r, ok = cutSP(r); !ok {
			return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("SP expected after status code"))
		}
	}
	return rest, StatusLineTokenizer{Version: vtok, Status: stok, Reason: r}, nil
}

// RequestLineFrom converts a tokenized request line.
func RequestLineFrom(tok RequestLineTokenizer) (method RequestMethod, u URI, ver ProtoVersion, err error) {
	if method, err = types.MethodFrom(tok.Method); err != nil {
		return "", URI{}, ProtoVersion{}, errtrace.Wrap(err)
	}
	if u, err = uri.FromTokenizer(tok.URI); err != nil {
		return "", URI{}, ProtoVersion{}, errtrace.Wrap(err)
	}
	if ver, err = types.VersionFrom(tok.Version); err != nil {
		return "", URI{}, ProtoVersion{}, errtrace.Wrap(err)
	}
	return method, u, ver, nil
}

// StatusLineFrom converts a tokenized status line.
// The reason phrase must be valid UTF-8.
func StatusLineFrom(tok StatusLineTokenizer) (ver ProtoVersion, sts ResponseStatus, reason ResponseReason, err error) {
	if ver, err = types.VersionFrom(tok.Version); err != nil {
		return ProtoVersion{}, 0, "", errtrace.Wrap(err)
	}
	if sts, err = types.StatusFrom(tok.Status); err != nil {
		return ProtoVersion{}, 0, "", errtrace.Wrap(err)
	}
	if !utf8.Valid(tok.Reason) {
		return ProtoVersion{}, 0, "", errtrace.Wrap(errorutil.NewUtf8Error("reason phrase"))
	}
	return ver, sts, ResponseReason(bytes.TrimRight(tok.Reason, " \t")), nil
}
