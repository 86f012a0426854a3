package typed

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/uri"
)

// Via represents the Via header field.
// The Via header field indicates the transport used for the transaction and identifies the location
// where the response is to be sent.
type Via []ViaHop

// CanonicName returns the canonical name of the header.
func (Via) CanonicName() Name { return "Via" }

// CompactName returns the compact name of the header.
func (Via) CompactName() Name { return "v" }

// RenderTo writes the header to the provided writer.
func (hdr Via) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Via) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Via) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Via) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Via) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Via) Format(f fmt.State, verb rune) {
	type hideMethods Via
	type Via hideMethods
	formatHdr(f, verb, hdr, Via(hdr))
}

// Clone returns a copy of the header.
func (hdr Via) Clone() Header { return cloneHdrEntries(hdr) }

// Equal compares this header with another for equality.
func (hdr Via) Equal(val any) bool {
	var other Via
	switch v := val.(type) {
	case Via:
		other = v
	case *Via:
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
func (hdr Via) IsValid() bool {
	return len(hdr) > 0 && !slices.ContainsFunc(hdr, func(hop ViaHop) bool { return !hop.IsValid() })
}

// ViaHop is a single via-parm entry of the Via header.
type ViaHop struct {
	Version   ProtoVersion
	Transport TransportProto
	// URI is the sent-by address, it has no scheme and parameters.
	URI    uri.URI
	Params uri.Params
}

// SentBy returns the sent-by host and port.
func (hop ViaHop) SentBy() uri.HostWithPort { return hop.URI.HostWithPort }

// Branch returns value of the branch parameter.
func (hop ViaHop) Branch() (string, bool) { return hop.Params.Value("branch") }

// IsRFC3261 reports whether the branch starts with the RFC 3261 magic cookie.
func (hop ViaHop) IsRFC3261() bool {
	b, ok := hop.Branch()
	return ok && strings.HasPrefix(b, MagicCookie)
}

// Received returns the received parameter as a host.
func (hop ViaHop) Received() (uri.Host, bool) {
	v, ok := hop.Params.Value("received")
	if !ok {
		return uri.Host{}, false
	}
	return uri.NewHost(v), true
}

// RPort returns the rport parameter. The port is zero when the parameter has no value,
// as in requests asking for symmetric response routing.
func (hop ViaHop) RPort() (uri.Port, bool) {
	p, ok := hop.Params.Get("rport")
	if !ok {
		return 0, false
	}
	v, _ := p.Uint()
	return uri.Port(v), true
}

// MAddr returns the maddr parameter.
func (hop ViaHop) MAddr() (uri.Host, bool) {
	v, ok := hop.Params.Value("maddr")
	if !ok {
		return uri.Host{}, false
	}
	return uri.NewHost(v), true
}

// TTL returns the ttl parameter.
func (hop ViaHop) TTL() (uint8, bool) {
	p, ok := hop.Params.Get("ttl")
	if !ok {
		return 0, false
	}
	v, ok := p.Uint()
	return uint8(v), ok //nolint:gosec
}

func (hop ViaHop) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hop.Version.RenderTo(w, opts)) })
	cw.WriteStrings("/", string(hop.Transport), " ")
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hop.URI.RenderTo(w, opts)) })
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hop.Params.RenderTo(w, opts)) })
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the ViaHop.
func (hop ViaHop) String() string {
	return renderString(func(w io.Writer) (int, error) { return errtrace.Wrap2(hop.RenderTo(w, nil)) })
}

// Format implements fmt.Formatter for custom formatting of the ViaHop.
func (hop ViaHop) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), hop.String())
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, hop.String())
			return
		}

		type hideMethods ViaHop
		type ViaHop hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ViaHop(hop))
		return
	}
}

// Clone returns a deep copy of the hop.
func (hop ViaHop) Clone() ViaHop {
	hop.URI = hop.URI.Clone()
	hop.Params = hop.Params.Clone()
	return hop
}

// Equal compares this ViaHop with another for equality.
func (hop ViaHop) Equal(val any) bool {
	var other ViaHop
	switch v := val.(type) {
	case ViaHop:
		other = v
	case *ViaHop:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return hop.Version.Equal(other.Version) &&
		hop.Transport.Equal(other.Transport) &&
		hop.URI.Equal(other.URI) &&
		hop.Params.Equal(other.Params)
}

// IsValid checks whether the ViaHop is syntactically valid.
func (hop ViaHop) IsValid() bool {
	return hop.Version.IsValid() &&
		hop.Transport.IsValid() &&
		hop.URI.HostWithPort.IsValid()
}

// ViaHopTokenizer holds raw parts of a via-parm.
type ViaHopTokenizer struct {
	Version   types.VersionTokenizer
	Transport types.TransportTokenizer
	URI       uri.Tokenizer
	Params    []uri.ParamTokenizer
}

// TokenizeViaHop splits "SIP/2.0/UDP host:port;params" at the start of in.
func TokenizeViaHop(in []byte) (rest []byte, tok ViaHopTokenizer, err error) {
	if rest, tok.Version, err = types.TokenizeSentVersion(in); err != nil {
		return in, ViaHopTokenizer{}, errtrace.Wrap(err)
	}
	rest, ok := grammar.CutByte(rest, '/')
	if !ok {
		return in, ViaHopTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("\"/\" expected"))
	}
	if rest, tok.Transport, err = types.TokenizeTransport(rest); err != nil {
		return in, ViaHopTokenizer{}, errtrace.Wrap(err)
	}
	if rest, ok = cutLWS(rest); !ok {
		return in, ViaHopTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("white space expected"))
	}
	if rest, tok.URI, err = uri.TokenizeNoParams(rest); err != nil {
		return in, ViaHopTokenizer{}, errtrace.Wrap(err)
	}
	if tok.URI.Scheme != nil || tok.URI.Auth != nil || tok.URI.Path != nil {
		return in, ViaHopTokenizer{}, errtrace.Wrap(errorutil.NewTokenizeError("sent-by expected"))
	}
	if rest, tok.Params, err = uri.TokenizeParams(rest); err != nil {
		return in, ViaHopTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// ViaHopFrom converts tokenized via-parm.
func ViaHopFrom(tok ViaHopTokenizer) (ViaHop, error) {
	var (
		hop ViaHop
		err error
	)
	if hop.Version, err = types.VersionFrom(tok.Version); err != nil {
		return ViaHop{}, errtrace.Wrap(err)
	}
	if hop.Transport, err = types.TransportFrom(tok.Transport); err != nil {
		return ViaHop{}, errtrace.Wrap(err)
	}
	if hop.URI, err = uri.FromTokenizer(tok.URI); err != nil {
		return ViaHop{}, errtrace.Wrap(err)
	}
	if hop.Params, err = uri.ParamsFrom(tok.Params); err != nil {
		return ViaHop{}, errtrace.Wrap(err)
	}
	return hop, nil
}

// TokenizeVia splits comma separated via-parm entries.
func TokenizeVia(in []byte) (rest []byte, toks []ViaHopTokenizer, err error) {
	return errtrace.Wrap3(tokenizeList(in, TokenizeViaHop))
}

// ViaFrom converts tokenized via-parm entries.
func ViaFrom(toks []ViaHopTokenizer) (Via, error) {
	hops, err := convertList(toks, ViaHopFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Via(hops), nil
}

// ParseVia parses the Via header value.
func ParseVia[T ~string | ~[]byte](s T) (Via, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeVia, ViaFrom))
}

// ParseViaHop parses a single via-parm.
func ParseViaHop[T ~string | ~[]byte](s T) (ViaHop, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeViaHop, ViaHopFrom))
}
