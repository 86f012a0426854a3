package types

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

const (
	SchemeSIP  Scheme = "sip"
	SchemeSIPS Scheme = "sips"
	SchemeTel  Scheme = "tel"
)

// Scheme is a URI scheme, stored in lower case.
type Scheme string

func (s Scheme) ToLower() Scheme { return util.LCase(s) }

func (s Scheme) IsValid() bool { return isScheme([]byte(s)) }

func (s Scheme) IsKnown() bool {
	switch s.ToLower() {
	case SchemeSIP, SchemeSIPS, SchemeTel:
		return true
	}
	return false
}

func (s Scheme) String() string { return string(s) }

func (s Scheme) Equal(val any) bool {
	var other Scheme
	switch v := val.(type) {
	case Scheme:
		other = v
	case *Scheme:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(s, other)
}

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func schemeLen(in []byte) int {
	if len(in) == 0 || !isAlpha(in[0]) {
		return 0
	}
	i := 1
	for ; i < len(in); i++ {
		c := in[i]
		if !isAlpha(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			break
		}
	}
	return i
}

func isScheme(s []byte) bool { return len(s) > 0 && schemeLen(s) == len(s) }

func isAlpha(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// SchemeTokenizer holds the raw scheme name.
type SchemeTokenizer struct {
	Value []byte
}

// TokenizeScheme splits "scheme:" at the start of in. The colon is consumed.
func TokenizeScheme(in []byte) (rest []byte, tok SchemeTokenizer, err error) {
	n := schemeLen(in)
	if n == 0 || n == len(in) || in[n] != ':' {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("URI scheme expected"))
	}
	return in[n+1:], SchemeTokenizer{Value: in[:n]}, nil
}

// SchemeFrom converts tokenized scheme, normalizing it to lower case.
func SchemeFrom(tok SchemeTokenizer) (Scheme, error) {
	if !isScheme(tok.Value) {
		return "", errtrace.Wrap(errorutil.NewParseError("invalid scheme %q", tok.Value))
	}
	return Scheme(tok.Value).ToLower(), nil
}

func ParseScheme[T ~string | ~[]byte](s T) (Scheme, error) {
	return errtrace.Wrap2(SchemeFrom(SchemeTokenizer{Value: []byte(s)}))
}
