package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
)

const ErrMalformedInput Error = "malformed input"

const protoName = "SIP"

func isHostnameChar(c byte) bool { return IsAlphanumChar(c) || c == '-' || c == '.' || c == '_' }

func isIPv6Char(c byte) bool { return ishex(c) || c == ':' || c == '.' }

func isGenericParamChar(c byte) bool {
	return c == '%' || c == '`' || c == '{' || c == '}' || IsURIParamCharUnreserved(c)
}

func isPathChar(c byte) bool {
	switch c {
	case ';', '?', '>', ',', '"', '<', 0x7F:
		return false
	}
	return c > ' '
}

// valueCharLen measures one header value character, folded line breaks included.
// A CR at the end of input is left for the next read.
func valueCharLen(in []byte) int {
	switch in[0] {
	case '\n':
		if len(in) > 1 && IsWSP(in[1]) {
			return 2
		}
		return 0
	case '\r':
		switch {
		case len(in) == 1:
			return 0
		case in[1] != '\n':
			return 1
		case len(in) > 2 && IsWSP(in[2]):
			return 3
		}
		return 0
	}
	return 1
}

// RFC 3261 25.1 URI rules.
var (
	// userinfo = user [ ":" password ] "@"
	opUserinfo = abnf.Concat(
		"userinfo",
		escapedRun("user", IsURIUserCharUnreserved),
		abnf.Optional("[:password]", abnf.Concat(
			":password",
			lit(':'),
			abnf.Optional("*password", escapedRun("password", IsURIPasswdCharUnreserved)),
		)),
		lit('@'),
	)

	// host = hostname / IPv4address / IPv6reference
	// IPv6reference = "[" IPv6address "]"
	//
	// IPv4 addresses fall into the hostname run, addresses are checked when the host is parsed.
	opHost = abnf.AltFirst(
		"host",
		abnf.Concat("IPv6reference", lit('['), run("IPv6address", isIPv6Char), lit(']')),
		run("hostname", isHostnameChar),
	)

	// hostport = host [ ":" port ]
	opHostport = abnf.Concat(
		"hostport",
		opHost,
		abnf.Optional("[:port]", abnf.Concat(":port", lit(':'), run("port", IsDigit))),
	)

	// server = [ userinfo ] hostport
	opServer = abnf.Concat("server", abnf.Optional("[userinfo]", opUserinfo), opHostport)

	opURIPath = run("uri-path", isPathChar)

	// uri-parameter = ";" pname [ "=" pvalue ]
	opURIParameter = abnf.Concat(
		"uri-parameter",
		lit(';'),
		escapedRun("pname", IsURIParamCharUnreserved),
		abnf.Optional("[=pvalue]", abnf.Concat(
			"=pvalue",
			lit('='),
			abnf.Optional("*pvalue", escapedRun("pvalue", IsURIParamCharUnreserved)),
		)),
	)

	// header = hname "=" hvalue
	opURIHeader = abnf.Concat(
		"header",
		escapedRun("hname", IsURIHeaderCharUnreserved),
		lit('='),
		abnf.Optional("*hvalue", escapedRun("hvalue", IsURIHeaderCharUnreserved)),
	)
)

// RFC 3261 25.1 message rules.
var (
	// generic-param = SEMI token [ EQUAL gen-value ]
	// gen-value     = token / host / quoted-string
	opGenericParam = abnf.Concat(
		"generic-param",
		opSWS,
		lit(';'),
		opSWS,
		run("gen-name", isGenericParamChar),
		abnf.Optional("[EQUAL gen-value]", abnf.Concat(
			"EQUAL gen-value",
			opSWS,
			lit('='),
			opSWS,
			abnf.Optional("*gen-value", abnf.AltFirst(
				"gen-value",
				opQuotedString,
				run("gen-text", isGenericParamChar),
			)),
		)),
	)

	opVersionNum = abnf.Concat("version-num", run("major", IsDigit), lit('.'), run("minor", IsDigit))

	// SIP-Version = "SIP" "/" 1*DIGIT "." 1*DIGIT
	opSIPVersion = abnf.Concat(
		"SIP-Version",
		abnf.Literal("protocol-name", []byte(protoName)),
		lit('/'),
		opVersionNum,
	)

	// sent-version = protocol-name SLASH protocol-version
	// SLASH        = SWS "/" SWS
	opSentVersion = abnf.Concat(
		"sent-version",
		abnf.Literal("protocol-name", []byte(protoName)),
		opSWS,
		lit('/'),
		opSWS,
		opVersionNum,
	)

	// message-header = header-name *WSP ":" header-value ( CRLF / LF )
	opMessageHeader = abnf.Concat(
		"message-header",
		run("header-name", isTokenChar),
		abnf.Optional("*WSP", opWSPs),
		lit(':'),
		abnf.Optional("*header-value", runOf("header-value", valueCharLen)),
		abnf.Concat("EOL", abnf.Optional("[CR]", lit('\r')), lit('\n')),
	)
)

func match(op abnf.Operator, in []byte) (*abnf.Node, error) {
	if len(in) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(in, 0, ns); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedInput, err))
	}
	n := ns.Best()
	if n.IsEmpty() {
		return nil, errtrace.Wrap(ErrMalformedInput)
	}
	return n, nil
}

// Bytes returns the part of in matched by n.
// n must come from a rule applied to in, nil n gives nil.
func Bytes(in []byte, n *abnf.Node) []byte {
	if n == nil {
		return nil
	}
	return in[n.Pos : n.Pos+uint(len(n.Value))]
}

// Userinfo matches "user [":" password] "@"" at the start of in.
// Nodes: user, password (absent when there is no colon).
func Userinfo(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opUserinfo, in)) }

// Hostport matches "host [":" port]" at the start of in.
// Nodes: host, port.
func Hostport(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opHostport, in)) }

// Server matches "[userinfo] hostport" at the start of in.
// Nodes: userinfo, hostport.
func Server(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opServer, in)) }

// URIPath matches an absolute path or an opaque URI part at the start of in.
func URIPath(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opURIPath, in)) }

// URIParameter matches ";pname[=pvalue]" at the start of in. White space is not allowed.
// Nodes: pname, =pvalue, pvalue.
func URIParameter(in []byte) (*abnf.Node, error) {
	return errtrace.Wrap2(match(opURIParameter, in))
}

// URIHeader matches "hname=hvalue" at the start of in.
// Nodes: hname, hvalue.
func URIHeader(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opURIHeader, in)) }

// GenericParam matches ";name[=value]" with optional linear white space around the separators.
// Nodes: gen-name, EQUAL gen-value, gen-value (quoted values keep the quotes).
func GenericParam(in []byte) (*abnf.Node, error) {
	return errtrace.Wrap2(match(opGenericParam, in))
}

// SIPVersion matches "SIP/major.minor" at the start of in.
// Nodes: major, minor.
func SIPVersion(in []byte) (*abnf.Node, error) { return errtrace.Wrap2(match(opSIPVersion, in)) }

// SentVersion is [SIPVersion] with optional white space around the slash, as Via sent-protocol allows.
func SentVersion(in []byte) (*abnf.Node, error) {
	return errtrace.Wrap2(match(opSentVersion, in))
}

// MessageHeader matches one header line including its line terminator.
// Nodes: header-name, header-value (absent for empty values, leading white space included).
func MessageHeader(in []byte) (*abnf.Node, error) {
	return errtrace.Wrap2(match(opMessageHeader, in))
}
