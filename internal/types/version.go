package types

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// ProtoName is the protocol name of every SIP version string.
const ProtoName = "SIP"

var (
	// V1 is SIP/1.0.
	V1 = ProtoVersion{Major: 1, Minor: 0}
	// V2 is SIP/2.0.
	V2 = ProtoVersion{Major: 2, Minor: 0}
)

// ProtoVersion is a SIP protocol version rendered as "SIP/<major>.<minor>".
// Any version other than [V1] and [V2] is kept as is.
type ProtoVersion struct {
	Major uint `json:"major"`
	Minor uint `json:"minor"`
}

func (v ProtoVersion) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(fmt.Fprintf(w, "%s/%d.%d", ProtoName, v.Major, v.Minor))
}

func (v ProtoVersion) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	v.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (v ProtoVersion) String() string { return v.Render(nil) }

func (v ProtoVersion) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, v.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(v.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, v.String())
			return
		}

		type hideMethods ProtoVersion
		type ProtoVersion hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), ProtoVersion(v))
		return
	}
}

func (v ProtoVersion) Equal(val any) bool {
	var other ProtoVersion
	switch o := val.(type) {
	case ProtoVersion:
		other = o
	case *ProtoVersion:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return v == other
}

func (v ProtoVersion) IsValid() bool { return v.Major > 0 }

func (v ProtoVersion) IsZero() bool { return v.Major == 0 && v.Minor == 0 }

// VersionTokenizer holds raw major and minor digits of "SIP/<major>.<minor>".
type VersionTokenizer struct {
	Major []byte
	Minor []byte
}

// TokenizeVersion splits the version string at the start of in.
// The protocol name is matched case-insensitively.
func TokenizeVersion(in []byte) (rest []byte, tok VersionTokenizer, err error) {
	n, err := grammar.SIPVersion(in)
	if err != nil {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("version must look like \"SIP/<major>.<minor>\""))
	}
	return in[n.Len():], versionTokenizer(in, n), nil
}

// TokenizeSentVersion is [TokenizeVersion] for the Via sent-protocol,
// where white space may surround the slash.
func TokenizeSentVersion(in []byte) (rest []byte, tok VersionTokenizer, err error) {
	n, err := grammar.SentVersion(in)
	if err != nil {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("version must look like \"SIP/<major>.<minor>\""))
	}
	return in[n.Len():], versionTokenizer(in, n), nil
}

func versionTokenizer(in []byte, n *abnf.Node) VersionTokenizer {
	return VersionTokenizer{
		Major: grammar.Bytes(in, grammar.MustGetNode(n, "major")),
		Minor: grammar.Bytes(in, grammar.MustGetNode(n, "minor")),
	}
}

func VersionFrom(tok VersionTokenizer) (ProtoVersion, error) {
	major, err := strconv.ParseUint(string(tok.Major), 10, 8)
	if err != nil {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewParseError(err))
	}
	minor, err := strconv.ParseUint(string(tok.Minor), 10, 8)
	if err != nil {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewParseError(err))
	}
	return ProtoVersion{Major: uint(major), Minor: uint(minor)}, nil
}

// ParseVersion parses a version string like "SIP/2.0".
func ParseVersion[T ~string | ~[]byte](s T) (ProtoVersion, error) {
	rest, tok, err := TokenizeVersion([]byte(s))
	if err != nil {
		return ProtoVersion{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return ProtoVersion{}, errtrace.Wrap(errorutil.NewTokenizeError("tokenizing left trailing input"))
	}
	return errtrace.Wrap2(VersionFrom(tok))
}
