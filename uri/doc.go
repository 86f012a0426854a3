// Package uri implements the SIP URI and parameter grammar of RFC 3261.
//
// # Overview
//
// A [URI] covers SIP and SIPS URIs, schemeless sent-by addresses and absolute paths,
// and any other absolute URI such as tel or urn:
//
//	[scheme ":"] [user [":" password] "@"] host [":" port] [path] *(";" param) ["?" headers]
//
// For schemes other than sip and sips everything between the scheme and the first parameter
// is kept in [URI.Path] as is.
//
// # Two phase parsing
//
// Every grammar rule has a tokenizer and a conversion function.
// Tokenizers ([Tokenize], [TokenizeNoParams], [TokenizeHostWithPort], [TokenizeAuth],
// [TokenizeParam], [TokenizeWithParams], [TokenizeWithParamsList]) split the input into
// sub-slices of the original buffer and return the unconsumed remainder.
// They never copy or modify the input and check only the structure.
// Conversion functions ([FromTokenizer], [HostWithPortFrom], [AuthFrom], [ParamFrom],
// [WithParamsFrom], [WithParamsListFrom]) make owned values and validate them.
//
//	rest, tok, err := uri.Tokenize([]byte("sip:alice@example.com;transport=tcp>;tag=1"))
//	// rest == ">;tag=1"
//	u, err := uri.FromTokenizer(tok)
//
// [Parse], [ParseWithParams] and [ParseWithParamsList] do both steps and require
// the whole input to be consumed.
//
// # Hosts and ports
//
// [Host] is an IP address or a domain name. An IP address is always tried first.
// A missing port stays nil in [HostWithPort] and is never replaced with 5060 or 5061,
// see [HostWithPort.PortOr].
//
// # Parameters
//
// Known parameter names (transport, user, method, ttl, maddr, lr and the
// header level branch, received, rport, tag, expires, q) are matched case-insensitively
// and their values are checked on conversion. Any other parameter is kept verbatim,
// a parameter without value is distinguished from a parameter with an empty value.
//
// # Thread Safety
//
// URI types are not safe for concurrent modification. When sharing URIs across
// goroutines, either use synchronization or create copies using the Clone method.
package uri
