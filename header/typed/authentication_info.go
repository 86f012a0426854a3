package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// AuthenticationInfo represents the Authentication-Info header field.
// The Authentication-Info header field provides for mutual authentication with HTTP Digest.
// All parameters are optional, empty fields are not rendered.
type AuthenticationInfo struct {
	NextNonce string
	Qop       *Qop
	RspAuth   string
	CNonce    string
	NC        uint32
	Params    []AuthParam
}

// CanonicName returns the canonical name of the header.
func (*AuthenticationInfo) CanonicName() Name { return "Authentication-Info" }

// CompactName returns the compact name of the header (Authentication-Info has no compact form).
func (*AuthenticationInfo) CompactName() Name { return "Authentication-Info" }

// RenderTo writes the header to the provided writer.
func (hdr *AuthenticationInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *AuthenticationInfo) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	aw := &authParamWriter{cw: cw}
	if hdr.NextNonce != "" {
		aw.quoted("nextnonce", hdr.NextNonce)
	}
	if hdr.Qop != nil {
		aw.token("qop", hdr.Qop.String())
	}
	if hdr.RspAuth != "" {
		aw.quoted("rspauth", hdr.RspAuth)
	}
	if hdr.CNonce != "" {
		aw.quoted("cnonce", hdr.CNonce)
	}
	if hdr.NC > 0 {
		aw.token("nc", fmt.Sprintf("%08x", hdr.NC))
	}
	aw.params(hdr.Params)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the header.
func (hdr *AuthenticationInfo) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *AuthenticationInfo) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *AuthenticationInfo) String() string { return hdr.RenderValue() }

// Clone returns a copy of the header.
func (hdr *AuthenticationInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	if hdr.Qop != nil {
		q := *hdr.Qop
		hdr2.Qop = &q
	}
	hdr2.Params = cloneAuthParams(hdr.Params)
	return &hdr2
}

// Equal compares this header with another for equality.
func (hdr *AuthenticationInfo) Equal(val any) bool {
	var other *AuthenticationInfo
	switch v := val.(type) {
	case AuthenticationInfo:
		other = &v
	case *AuthenticationInfo:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.NextNonce == other.NextNonce &&
		(hdr.Qop == nil && other.Qop == nil || hdr.Qop != nil && hdr.Qop.Equal(other.Qop)) &&
		hdr.RspAuth == other.RspAuth &&
		hdr.CNonce == other.CNonce &&
		hdr.NC == other.NC &&
		authParamsEqual(hdr.Params, other.Params)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *AuthenticationInfo) IsValid() bool {
	return hdr != nil && (hdr.NextNonce != "" || hdr.Qop != nil || hdr.RspAuth != "" || len(hdr.Params) > 0)
}

// TokenizeAuthenticationInfo splits comma separated auth-params of the Authentication-Info value.
func TokenizeAuthenticationInfo(in []byte) (rest []byte, toks []AuthParamTokenizer, err error) {
	return errtrace.Wrap3(TokenizeAuthParams(in))
}

// AuthenticationInfoFrom converts tokenized Authentication-Info value.
func AuthenticationInfoFrom(toks []AuthParamTokenizer) (*AuthenticationInfo, error) {
	hdr := &AuthenticationInfo{}
	for _, ptok := range toks {
		v, quoted := authValue(ptok)
		switch util.LCase(string(ptok.Name)) {
		case "nextnonce":
			hdr.NextNonce = v
		case "qop":
			q := QopFrom(v)
			hdr.Qop = &q
		case "rspauth":
			hdr.RspAuth = v
		case "cnonce":
			hdr.CNonce = v
		case "nc":
			nc, err := parseNC(v)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			hdr.NC = nc
		default:
			hdr.Params = append(hdr.Params, AuthParam{Name: string(ptok.Name), Value: v, Quoted: quoted})
		}
	}
	return hdr, nil
}

// ParseAuthenticationInfo parses the Authentication-Info header value.
func ParseAuthenticationInfo[T ~string | ~[]byte](s T) (*AuthenticationInfo, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAuthenticationInfo, AuthenticationInfoFrom))
}
