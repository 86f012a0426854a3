package uri

import (
	"fmt"
	"io"
	"net/netip"
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
	"github.com/miekg/dns"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Host is either an IP address or a domain name.
type Host struct {
	ip     netip.Addr
	domain string
}

// IPHost returns a [Host] holding the IP address.
func IPHost(ip netip.Addr) Host { return Host{ip: ip.Unmap()} }

// DomainHost returns a [Host] holding the domain name as is.
func DomainHost(name string) Host { return Host{domain: name} }

// NewHost makes a [Host] from s.
// s is parsed as an IP address first, IPv6 references may be bracketed.
// Anything else is kept as a domain name without validation.
func NewHost(s string) Host {
	ipStr := s
	if len(ipStr) > 1 && ipStr[0] == '[' && ipStr[len(ipStr)-1] == ']' {
		ipStr = ipStr[1 : len(ipStr)-1]
	}
	if ip, err := netip.ParseAddr(ipStr); err == nil {
		return IPHost(ip)
	}
	return DomainHost(s)
}

// IP returns the IP address if the host is an IP.
func (h Host) IP() (netip.Addr, bool) { return h.ip, h.ip.IsValid() }

// Domain returns the domain name if the host is not an IP.
func (h Host) Domain() (string, bool) { return h.domain, !h.ip.IsValid() && h.domain != "" }

func (h Host) IsIP() bool { return h.ip.IsValid() }

// RenderTo writes the host, IPv6 addresses are bracketed.
func (h Host) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if h.ip.IsValid() {
		if h.ip.Is6() {
			return errtrace.Wrap2(fmt.Fprint(w, "[", h.ip.String(), "]"))
		}
		return errtrace.Wrap2(fmt.Fprint(w, h.ip.String()))
	}
	return errtrace.Wrap2(fmt.Fprint(w, h.domain))
}

func (h Host) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	h.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (h Host) String() string { return h.Render(nil) }

func (h Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.String())
			return
		}

		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Host(h))
		return
	}
}

// Equal compares IP hosts by address and domains case-insensitively.
func (h Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if h.ip.IsValid() || other.ip.IsValid() {
		return h.ip == other.ip
	}
	return util.EqFold(h.domain, other.domain)
}

// IsValid reports whether the host is an IP or a well-formed domain name.
func (h Host) IsValid() bool {
	if h.ip.IsValid() {
		return true
	}
	if h.domain == "" {
		return false
	}
	_, ok := dns.IsDomainName(h.domain)
	return ok
}

func (h Host) IsZero() bool { return !h.ip.IsValid() && h.domain == "" }

// Port is a transport port number.
type Port uint16

func (p Port) String() string { return strconv.FormatUint(uint64(p), 10) }

// HostWithPort is a host with an optional port.
// Missing port is never replaced with a transport default.
type HostWithPort struct {
	Host Host  `json:"host"`
	Port *Port `json:"port,omitempty"`
}

// NewHostWithPort returns [HostWithPort] with the port set.
func NewHostWithPort(host string, port Port) HostWithPort {
	return HostWithPort{Host: NewHost(host), Port: &port}
}

// PortOr returns the port or def when the port is absent.
func (hp HostWithPort) PortOr(def Port) Port {
	if hp.Port == nil {
		return def
	}
	return *hp.Port
}

func (hp HostWithPort) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(hp.Host.RenderTo(w, opts)) })
	if hp.Port != nil {
		cw.Fprint(":", hp.Port.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (hp HostWithPort) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hp.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hp HostWithPort) String() string { return hp.Render(nil) }

func (hp HostWithPort) Clone() HostWithPort {
	if hp.Port != nil {
		p := *hp.Port
		hp.Port = &p
	}
	return hp
}

func (hp HostWithPort) Equal(val any) bool {
	var other HostWithPort
	switch v := val.(type) {
	case HostWithPort:
		other = v
	case *HostWithPort:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if (hp.Port == nil) != (other.Port == nil) || hp.Port != nil && *hp.Port != *other.Port {
		return false
	}
	return hp.Host.Equal(other.Host)
}

func (hp HostWithPort) IsValid() bool { return hp.Host.IsValid() }

func (hp HostWithPort) IsZero() bool { return hp.Host.IsZero() && hp.Port == nil }

// HostWithPortTokenizer holds raw host and port. Host keeps IPv6 brackets.
type HostWithPortTokenizer struct {
	Host []byte
	Port []byte
}

// TokenizeHostWithPort splits host[:port] at the start of in.
func TokenizeHostWithPort(in []byte) (rest []byte, tok HostWithPortTokenizer, err error) {
	n, err := grammar.Hostport(in)
	if err != nil {
		if len(in) > 0 && in[0] == '[' {
			return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("unterminated IPv6 reference"))
		}
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("host expected"))
	}
	if rest = in[n.Len():]; len(rest) > 0 && rest[0] == ':' {
		return in, tok, errtrace.Wrap(errorutil.NewTokenizeError("port expected"))
	}
	return rest, hostWithPortTokenizer(in, n), nil
}

func hostWithPortTokenizer(in []byte, n *abnf.Node) HostWithPortTokenizer {
	tok := HostWithPortTokenizer{Host: grammar.Bytes(in, grammar.MustGetNode(n, "host"))}
	if pn, ok := n.GetNode("port"); ok {
		tok.Port = grammar.Bytes(in, pn)
	}
	return tok
}

// HostWithPortFrom converts tokenized host and port.
func HostWithPortFrom(tok HostWithPortTokenizer) (HostWithPort, error) {
	if len(tok.Host) == 0 {
		return HostWithPort{}, errtrace.Wrap(errorutil.NewParseError("empty host"))
	}
	hp := HostWithPort{Host: NewHost(string(tok.Host))}
	if tok.Host[0] == '[' && !hp.Host.IsIP() {
		return HostWithPort{}, errtrace.Wrap(errorutil.NewParseError("invalid IPv6 reference %q", tok.Host))
	}
	if tok.Port != nil {
		p, err := strconv.ParseUint(string(tok.Port), 10, 16)
		if err != nil {
			return HostWithPort{}, errtrace.Wrap(errorutil.NewParseError(err))
		}
		port := Port(p)
		hp.Port = &port
	}
	return hp, nil
}

// ParseHostWithPort parses "host[:port]" consuming the whole input.
func ParseHostWithPort[T ~string | ~[]byte](s T) (HostWithPort, error) {
	rest, tok, err := TokenizeHostWithPort([]byte(s))
	if err != nil {
		return HostWithPort{}, errtrace.Wrap(err)
	}
	if len(rest) > 0 {
		return HostWithPort{}, errtrace.Wrap(newTrailingInputError())
	}
	return errtrace.Wrap2(HostWithPortFrom(tok))
}
