package uri

import (
	"io"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Auth is the userinfo part of a SIP URI.
// User and Password hold unescaped values.
type Auth struct {
	User     string  `json:"user"`
	Password *string `json:"password,omitempty"`
}

// NewAuth returns [Auth] with the user and no password.
func NewAuth(user string) *Auth { return &Auth{User: user} }

// WithPassword returns a copy of a with the password set.
func (a Auth) WithPassword(pwd string) *Auth {
	a.Password = &pwd
	return &a
}

func shouldEscapeUserChar(c byte) bool { return !grammar.IsURIUserCharUnreserved(c) }

func shouldEscapePasswdChar(c byte) bool { return !grammar.IsURIPasswdCharUnreserved(c) }

// RenderTo writes user[:password] with reserved characters escaped. The "@" is not written.
func (a *Auth) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if a == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(grammar.Escape(a.User, shouldEscapeUserChar))
	if a.Password != nil {
		cw.Fprint(":", grammar.Escape(*a.Password, shouldEscapePasswdChar))
	}
	return errtrace.Wrap2(cw.Result())
}

func (a *Auth) String() string {
	if a == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

func (a *Auth) Clone() *Auth {
	if a == nil {
		return nil
	}
	a2 := *a
	if a.Password != nil {
		a2.Password = util.PtrStr(*a.Password)
	}
	return &a2
}

// Equal compares user and password case-sensitively.
func (a *Auth) Equal(val any) bool {
	var other *Auth
	switch v := val.(type) {
	case Auth:
		other = &v
	case *Auth:
		other = v
	default:
		return false
	}
	if a == nil || other == nil {
		return a == other
	}
	return a.User == other.User && util.EqStrPtr(a.Password, other.Password)
}

func (a *Auth) IsValid() bool { return a != nil && a.User != "" }

// AuthTokenizer holds raw, still escaped, user and password.
type AuthTokenizer struct {
	User     []byte
	Password []byte
	// HasPassword is set when the colon separator is present, even for an empty password.
	HasPassword bool
}

// TokenizeAuth splits "user[:password]@" at the start of in. The "@" is consumed.
func TokenizeAuth(in []byte) (rest []byte, tok AuthTokenizer, err error) {
	n, err := grammar.Userinfo(in)
	if err != nil {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("userinfo expected"))
	}
	return in[n.Len():], authTokenizer(in, n), nil
}

func authTokenizer(in []byte, n *abnf.Node) AuthTokenizer {
	tok := AuthTokenizer{User: grammar.Bytes(in, grammar.MustGetNode(n, "user"))}
	if pn, ok := n.GetNode(":password"); ok {
		tok.HasPassword = true
		if pwn, ok := pn.GetNode("password"); ok {
			tok.Password = grammar.Bytes(in, pwn)
		}
	}
	return tok
}

// AuthFrom converts tokenized userinfo, resolving %HH escapes.
func AuthFrom(tok AuthTokenizer) (*Auth, error) {
	user, err := grammar.UnescapeStrict(string(tok.User))
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewParseError(err))
	}
	a := &Auth{User: user}
	if tok.HasPassword {
		pwd, err := grammar.UnescapeStrict(string(tok.Password))
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewParseError(err))
		}
		a.Password = &pwd
	}
	return a, nil
}
