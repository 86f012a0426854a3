package typed

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
	"github.com/ghettovoice/sipmsg/uri"
)

// MediaType is a MIME type with parameters, as used by Content-Type and Accept.
type MediaType struct {
	Type    string
	Subtype string
	Params  uri.Params
}

// Charset returns the charset parameter.
func (mt MediaType) Charset() (string, bool) { return mt.Params.Value("charset") }

func (mt MediaType) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(mt.Type, "/", mt.Subtype)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(mt.Params.RenderTo(w, opts)) })
	return errtrace.Wrap2(cw.Result())
}

func (mt MediaType) String() string {
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(mt.RenderTo(w, nil)) })
}

// Format implements fmt.Formatter for custom formatting of the MediaType.
func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

// Equal compares types case-insensitively.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		mt.Params.Equal(other.Params)
}

func (mt MediaType) IsValid() bool { return grammar.IsToken(mt.Type) && grammar.IsToken(mt.Subtype) }

func (mt MediaType) IsZero() bool { return mt.Type == "" && mt.Subtype == "" && len(mt.Params) == 0 }

func (mt MediaType) Clone() MediaType {
	mt.Params = mt.Params.Clone()
	return mt
}

// MediaTypeTokenizer holds raw type, subtype and parameters.
type MediaTypeTokenizer struct {
	Type    []byte
	Subtype []byte
	Params  []uri.ParamTokenizer
}

// TokenizeMediaType splits "type/subtype;params" at the start of in.
func TokenizeMediaType(in []byte) (rest []byte, tok MediaTypeTokenizer, err error) {
	var ok bool
	if tok.Type, rest, ok = grammar.CutToken(in); !ok {
		return in, MediaTypeTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("media type expected"))
	}
	if rest, ok = grammar.CutByte(rest, '/'); !ok {
		return in, MediaTypeTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\"/\" expected"))
	}
	if tok.Subtype, rest, ok = grammar.CutToken(rest); !ok {
		return in, MediaTypeTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("media subtype expected"))
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, MediaTypeTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// MediaTypeFrom converts tokenized media type.
func MediaTypeFrom(tok MediaTypeTokenizer) (MediaType, error) {
	ps, err := uri.ParamsFrom(tok.Params)
	if err != nil {
		return MediaType{}, errtrace.Wrap(err)
	}
	return MediaType{Type: string(tok.Type), Subtype: string(tok.Subtype), Params: ps}, nil
}

// ContentType represents the Content-Type header field.
// The Content-Type header field indicates the media type of the message-body sent to the recipient.
type ContentType struct {
	MediaType
}

// CanonicName returns the canonical name of the header.
func (*ContentType) CanonicName() Name { return "Content-Type" }

// CompactName returns the compact name of the header.
func (*ContentType) CompactName() Name { return "c" }

// RenderTo writes the header to the provided writer.
func (hdr *ContentType) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *ContentType) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(hdr.MediaType.RenderTo(w, nil))
}

// Render returns the string representation of the header.
func (hdr *ContentType) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *ContentType) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *ContentType) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *ContentType) Format(f fmt.State, verb rune) {
	type hideMethods ContentType
	type ContentType hideMethods
	formatHdr(f, verb, hdr, (*ContentType)(hdr))
}

// Clone returns a copy of the header.
func (hdr *ContentType) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ContentType{MediaType: hdr.MediaType.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ContentType) Equal(val any) bool {
	var other *ContentType
	switch v := val.(type) {
	case ContentType:
		other = &v
	case *ContentType:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.MediaType.Equal(other.MediaType)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentType) IsValid() bool { return hdr != nil && hdr.MediaType.IsValid() }

// TokenizeContentType splits the Content-Type header value.
func TokenizeContentType(in []byte) (rest []byte, tok MediaTypeTokenizer, err error) {
	return errtrace.Wrap3(TokenizeMediaType(in))
}

// ContentTypeFrom converts tokenized Content-Type value.
func ContentTypeFrom(tok MediaTypeTokenizer) (*ContentType, error) {
	mt, err := MediaTypeFrom(tok)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ContentType{MediaType: mt}, nil
}

// ParseContentType parses the Content-Type header value.
func ParseContentType[T ~string | ~[]byte](s T) (*ContentType, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeContentType, ContentTypeFrom))
}

// Accept represents the Accept header field.
// The Accept header field lists media types acceptable for the response. It may be empty.
type Accept []MediaType

// CanonicName returns the canonical name of the header.
func (Accept) CanonicName() Name { return "Accept" }

// CompactName returns the compact name of the header (Accept has no compact form).
func (Accept) CompactName() Name { return "Accept" }

// RenderTo writes the header to the provided writer.
func (hdr Accept) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Accept) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Accept) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Accept) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Accept) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr Accept) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Accept) Equal(val any) bool {
	var other Accept
	switch v := val.(type) {
	case Accept:
		other = v
	case *Accept:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalHdrEntries(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Accept) IsValid() bool {
	return !slices.ContainsFunc(hdr, func(mt MediaType) bool { return !mt.IsValid() })
}

// TokenizeAccept splits comma separated media ranges, the value may be empty.
func TokenizeAccept(in []byte) (rest []byte, toks []MediaTypeTokenizer, err error) {
	return errtrace.Wrap3(tokenizeOptList(in, TokenizeMediaType))
}

// AcceptFrom converts tokenized Accept value.
func AcceptFrom(toks []MediaTypeTokenizer) (Accept, error) {
	mts, err := convertList(toks, MediaTypeFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Accept(mts), nil
}

// ParseAccept parses the Accept header value.
func ParseAccept[T ~string | ~[]byte](s T) (Accept, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAccept, AcceptFrom))
}

// ContentDisposition represents the Content-Disposition header field.
// The Content-Disposition header field describes how the message body is to be interpreted.
type ContentDisposition struct {
	Type   string
	Params uri.Params
}

// CanonicName returns the canonical name of the header.
func (*ContentDisposition) CanonicName() Name { return "Content-Disposition" }

// CompactName returns the compact name of the header (Content-Disposition has no compact form).
func (*ContentDisposition) CompactName() Name { return "Content-Disposition" }

// RenderTo writes the header to the provided writer.
func (hdr *ContentDisposition) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *ContentDisposition) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(hdr.Type)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hdr.Params.RenderTo(w, nil)) })
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (hdr *ContentDisposition) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *ContentDisposition) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *ContentDisposition) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *ContentDisposition) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &ContentDisposition{Type: hdr.Type, Params: hdr.Params.Clone()}
}

// Equal compares this header with another for equality.
func (hdr *ContentDisposition) Equal(val any) bool {
	var other *ContentDisposition
	switch v := val.(type) {
	case ContentDisposition:
		other = &v
	case *ContentDisposition:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.Type, other.Type) && hdr.Params.Equal(other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *ContentDisposition) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.Type) }

// ContentDispositionTokenizer holds raw disposition type and parameters.
type ContentDispositionTokenizer struct {
	Type   []byte
	Params []uri.ParamTokenizer
}

// TokenizeContentDisposition splits "type;params" at the start of in.
func TokenizeContentDisposition(in []byte) (rest []byte, tok ContentDispositionTokenizer, err error) {
	var ok bool
	if tok.Type, rest, ok = grammar.CutToken(in); !ok {
		return in, ContentDispositionTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("disposition type expected"))
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, ContentDispositionTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// ContentDispositionFrom converts tokenized Content-Disposition value.
func ContentDispositionFrom(tok ContentDispositionTokenizer) (*ContentDisposition, error) {
	ps, err := uri.ParamsFrom(tok.Params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ContentDisposition{Type: string(tok.Type), Params: ps}, nil
}

// ParseContentDisposition parses the Content-Disposition header value.
func ParseContentDisposition[T ~string | ~[]byte](s T) (*ContentDisposition, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeContentDisposition, ContentDispositionFrom))
}
