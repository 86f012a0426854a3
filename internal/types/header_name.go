package types

import (
	"net/textproto"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// HeaderName is a SIP header field name.
type HeaderName string

// ToCanonic converts the name to its canonical form.
func (n HeaderName) ToCanonic() HeaderName { return CanonicHeaderName(n) }

// IsValid checks whether the name is a token.
func (n HeaderName) IsValid() bool { return grammar.IsToken(n) }

// IsKnown reports whether the name, full or compact, belongs to the table of known headers.
func (n HeaderName) IsKnown() bool {
	_, ok := knownHdrNames[util.LCase(string(util.TrimSP(n)))]
	return ok
}

func (n HeaderName) String() string { return string(n) }

// Equal compares canonical forms, so compact and full names of the same header are equal.
func (n HeaderName) Equal(val any) bool {
	var other HeaderName
	switch v := val.(type) {
	case HeaderName:
		other = v
	case *HeaderName:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicHeaderName(n) == CanonicHeaderName(other)
}

// Known header names.
const (
	HeaderAccept             HeaderName = "Accept"
	HeaderAcceptEncoding     HeaderName = "Accept-Encoding"
	HeaderAcceptLanguage     HeaderName = "Accept-Language"
	HeaderAlertInfo          HeaderName = "Alert-Info"
	HeaderAllow              HeaderName = "Allow"
	HeaderAuthenticationInfo HeaderName = "Authentication-Info"
	HeaderAuthorization      HeaderName = "Authorization"
	HeaderCallID             HeaderName = "Call-ID"
	HeaderCallInfo           HeaderName = "Call-Info"
	HeaderContact            HeaderName = "Contact"
	HeaderContentDisposition HeaderName = "Content-Disposition"
	HeaderContentEncoding    HeaderName = "Content-Encoding"
	HeaderContentLanguage    HeaderName = "Content-Language"
	HeaderContentLength      HeaderName = "Content-Length"
	HeaderContentType        HeaderName = "Content-Type"
	HeaderCSeq               HeaderName = "CSeq"
	HeaderDate               HeaderName = "Date"
	HeaderErrorInfo          HeaderName = "Error-Info"
	HeaderEvent              HeaderName = "Event"
	HeaderExpires            HeaderName = "Expires"
	HeaderFrom               HeaderName = "From"
	HeaderInReplyTo          HeaderName = "In-Reply-To"
	HeaderMaxForwards        HeaderName = "Max-Forwards"
	HeaderMIMEVersion        HeaderName = "MIME-Version"
	HeaderMinExpires         HeaderName = "Min-Expires"
	HeaderOrganization       HeaderName = "Organization"
	HeaderPriority           HeaderName = "Priority"
	HeaderProxyAuthenticate  HeaderName = "Proxy-Authenticate"
	HeaderProxyAuthorization HeaderName = "Proxy-Authorization"
	HeaderProxyRequire       HeaderName = "Proxy-Require"
	HeaderRecordRoute        HeaderName = "Record-Route"
	HeaderReplyTo            HeaderName = "Reply-To"
	HeaderRequire            HeaderName = "Require"
	HeaderRetryAfter         HeaderName = "Retry-After"
	HeaderRoute              HeaderName = "Route"
	HeaderServer             HeaderName = "Server"
	HeaderSubject            HeaderName = "Subject"
	HeaderSubscriptionState  HeaderName = "Subscription-State"
	HeaderSupported          HeaderName = "Supported"
	HeaderTimestamp          HeaderName = "Timestamp"
	HeaderTo                 HeaderName = "To"
	HeaderUnsupported        HeaderName = "Unsupported"
	HeaderUserAgent          HeaderName = "User-Agent"
	HeaderVia                HeaderName = "Via"
	HeaderWarning            HeaderName = "Warning"
	HeaderWWWAuthenticate    HeaderName = "WWW-Authenticate"
)

var compactHdrNames = map[HeaderName]HeaderName{
	HeaderContentType:     "c",
	HeaderContentEncoding: "e",
	HeaderFrom:            "f",
	HeaderCallID:          "i",
	HeaderSupported:       "k",
	HeaderContentLength:   "l",
	HeaderContact:         "m",
	HeaderEvent:           "o",
	HeaderSubject:         "s",
	HeaderTo:              "t",
	HeaderVia:             "v",
}

// knownHdrNames maps lower-cased full and compact names to canonical ones.
var knownHdrNames = func() map[string]HeaderName {
	names := []HeaderName{
		HeaderAccept, HeaderAcceptEncoding, HeaderAcceptLanguage, HeaderAlertInfo, HeaderAllow,
		HeaderAuthenticationInfo, HeaderAuthorization, HeaderCallID, HeaderCallInfo, HeaderContact,
		HeaderContentDisposition, HeaderContentEncoding, HeaderContentLanguage, HeaderContentLength,
		HeaderContentType, HeaderCSeq, HeaderDate, HeaderErrorInfo, HeaderEvent, HeaderExpires,
		HeaderFrom, HeaderInReplyTo, HeaderMaxForwards, HeaderMIMEVersion, HeaderMinExpires,
		HeaderOrganization, HeaderPriority, HeaderProxyAuthenticate, HeaderProxyAuthorization,
		HeaderProxyRequire, HeaderRecordRoute, HeaderReplyTo, HeaderRequire, HeaderRetryAfter,
		HeaderRoute, HeaderServer, HeaderSubject, HeaderSubscriptionState, HeaderSupported,
		HeaderTimestamp, HeaderTo, HeaderUnsupported, HeaderUserAgent, HeaderVia, HeaderWarning,
		HeaderWWWAuthenticate,
	}
	m := make(map[string]HeaderName, len(names)+len(compactHdrNames))
	for _, n := range names {
		m[util.LCase(string(n))] = n
	}
	for n, c := range compactHdrNames {
		m[string(c)] = n
	}
	return m
}()

// CanonicHeaderName converts name to the canonical form.
// Known names, full or compact, map to their table form, e.g. "call-id" and "i" both give "Call-ID".
// Other names get MIME canonical casing, "x-foo" gives "X-Foo".
func CanonicHeaderName[T ~string](name T) HeaderName {
	s := util.TrimSP(string(name))
	if n, ok := knownHdrNames[util.LCase(s)]; ok {
		return n
	}
	return HeaderName(textproto.CanonicalMIMEHeaderKey(s))
}

// CompactHeaderName returns the compact form of the name or its canonical form if there is none.
func CompactHeaderName[T ~string](name T) HeaderName {
	n := CanonicHeaderName(name)
	if c, ok := compactHdrNames[n]; ok {
		return c
	}
	return n
}
