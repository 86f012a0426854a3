// Package grammar holds the lexical leaf rules shared by all SIP tokenizers.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"unicode/utf8"

	"github.com/ghettovoice/abnf"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNodeNotFound Error = "node not found"
	ErrEmptyInput   Error = "empty input"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

func lit(c byte) abnf.Operator { return abnf.Literal(string(c), []byte{c}) }

// runOf matches as many consecutive elements as possible as a single node.
// next returns the length of the element at the start of its input or 0.
func runOf(key string, next func(in []byte) int) abnf.Operator {
	return func(in []byte, pos uint, ns *abnf.Nodes) error {
		end := int(pos)
		for end < len(in) {
			n := next(in[end:])
			if n == 0 {
				break
			}
			end += n
		}
		if end == int(pos) {
			return abnf.ErrNotMatched //errtrace:skip
		}
		ns.Append(&abnf.Node{Key: key, Pos: pos, Value: in[pos:end]})
		return nil
	}
}

// run is [runOf] for a single byte class.
func run(key string, ok func(c byte) bool) abnf.Operator {
	return runOf(key, func(in []byte) int {
		if ok(in[0]) {
			return 1
		}
		return 0
	})
}

// escapedRun is [run] that also accepts "%" HEXDIG HEXDIG.
func escapedRun(key string, ok func(c byte) bool) abnf.Operator {
	return runOf(key, func(in []byte) int {
		switch {
		case ok(in[0]):
			return 1
		case in[0] == '%' && len(in) > 2 && ishex(in[1]) && ishex(in[2]):
			return 3
		}
		return 0
	})
}

func isTokenChar(c byte) bool {
	switch c {
	case '-', '.', '!', '%', '*', '_', '+', '`', '\'', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// qcharLen measures one qdtext or quoted-pair, folded line breaks and UTF-8 sequences included.
func qcharLen(in []byte) int {
	switch c := in[0]; {
	case c == ' ' || c == '\t' || c == 0x21 || 0x23 <= c && c <= 0x5B || 0x5D <= c && c <= 0x7E:
		return 1
	case c == '\\':
		if len(in) > 1 && in[1] <= 0x7F && in[1] != '\r' && in[1] != '\n' {
			return 2
		}
	case c == '\r':
		if len(in) > 2 && in[1] == '\n' && IsWSP(in[2]) {
			return 3
		}
	case c >= 0x80:
		if r, n := utf8.DecodeRune(in); r != utf8.RuneError || n > 1 {
			return n
		}
	}
	return 0
}

// RFC 3261 25.1 basic rules.
var (
	opWSPs = run("1*WSP", IsWSP)
	opCRLF = abnf.Literal("CRLF", []byte("\r\n"))

	opToken = run("token", isTokenChar)

	// LWS = [*WSP CRLF] 1*WSP
	opLWS = abnf.Concat(
		"LWS",
		abnf.Optional("[fold]", abnf.Concat("fold", abnf.Optional("*WSP", opWSPs), opCRLF)),
		opWSPs,
	)
	opSWS = abnf.Optional("SWS", opLWS)

	// quoted-string = DQUOTE *(qdtext / quoted-pair) DQUOTE
	opQuotedString = abnf.Concat(
		"quoted-string",
		lit('"'),
		abnf.Optional("*qchar", runOf("qchars", qcharLen)),
		lit('"'),
	)
)

func prefixLen(op abnf.Operator, in []byte) int {
	if len(in) == 0 {
		return 0
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(in, 0, ns); err != nil {
		return 0
	}
	n := ns.Best()
	if n == nil {
		return 0
	}
	return n.Len()
}

// TokenLen returns length of the RFC 3261 token at the start of in, or 0.
func TokenLen(in []byte) int { return prefixLen(opToken, in) }

// QuotedStringLen returns length of the quoted-string (quotes included) at the start of in, or 0.
func QuotedStringLen(in []byte) int {
	if len(in) == 0 || in[0] != '"' {
		return 0
	}
	return prefixLen(opQuotedString, in)
}

// LWSLen returns length of the linear white space at the start of in, or 0.
func LWSLen(in []byte) int {
	if len(in) == 0 || !IsWSP(in[0]) && in[0] != '\r' {
		return 0
	}
	return prefixLen(opLWS, in)
}

func IsToken[T ~string | ~[]byte](s T) bool {
	return len(s) > 0 && TokenLen([]byte(s)) == len(s)
}

func IsQuoted[T ~string | ~[]byte](s T) bool {
	return len(s) > 1 && QuotedStringLen([]byte(s)) == len(s)
}

func IsWSP(c byte) bool { return c == ' ' || c == '\t' }

func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

func IsDigits[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// Quote wraps s into double quotes, escaping inner quotes and backslashes as quoted-pairs.
func Quote(s string) string {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b = append(b, '\\')
		}
		b = append(b, s[i])
	}
	b = append(b, '"')
	return string(b)
}

// Unquote strips surrounding double quotes and resolves quoted-pairs.
// Values that are not quoted are returned as is.
func Unquote[T ~string | ~[]byte](s T) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return string(s)
	}
	s = s[1 : len(s)-1]
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b = append(b, s[i])
	}
	return string(b)
}
