package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
)

// Contact represents the Contact header field.
// The Contact header field provides a URI that can be used to contact that specific instance
// of the UA for subsequent requests. A REGISTER request may use the "*" wildcard instead of the list.
type Contact struct {
	Wildcard bool
	Addrs    []NameAddr
}

// CanonicName returns the canonical name of the header.
func (*Contact) CanonicName() Name { return "Contact" }

// CompactName returns the compact name of the header.
func (*Contact) CompactName() Name { return "m" }

// RenderTo writes the header to the provided writer.
func (hdr *Contact) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr *Contact) renderValueTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	if hdr.Wildcard {
		return errtrace.Wrap2(fmt.Fprint(w, "*"))
	}
	return errtrace.Wrap2(renderEntries(w, hdr.Addrs))
}

// Render returns the string representation of the header.
func (hdr *Contact) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr *Contact) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr *Contact) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr *Contact) Format(f fmt.State, verb rune) {
	type hideMethods Contact
	type Contact hideMethods
	formatHdr(f, verb, hdr, (*Contact)(hdr))
}

// Clone returns a copy of the header.
func (hdr *Contact) Clone() Header {
	if hdr == nil {
		return nil
	}
	return &Contact{Wildcard: hdr.Wildcard, Addrs: cloneHdrEntries(hdr.Addrs)}
}

// Equal compares this header with another for equality.
func (hdr *Contact) Equal(val any) bool {
	var other *Contact
	switch v := val.(type) {
	case Contact:
		other = &v
	case *Contact:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Wildcard == other.Wildcard && equalHdrEntries(hdr.Addrs, other.Addrs)
}

// IsValid checks whether the header is syntactically valid.
func (hdr *Contact) IsValid() bool {
	if hdr == nil {
		return false
	}
	if hdr.Wildcard {
		return len(hdr.Addrs) == 0
	}
	return len(hdr.Addrs) > 0 && !slices.ContainsFunc(hdr.Addrs, func(addr NameAddr) bool { return !addr.IsValid() })
}

// ContactTokenizer holds tokenized Contact entries.
type ContactTokenizer struct {
	Wildcard bool
	Addrs    []NameAddrTokenizer
}

// TokenizeContact splits "*" or comma separated contact entries at the start of in.
func TokenizeContact(in []byte) (rest []byte, tok ContactTokenizer, err error) {
	if r := grammar.SkipLWS(in); len(r) > 0 && r[0] == '*' {
		return r[1:], ContactTokenizer{Wildcard: true}, nil
	}
	if rest, tok.Addrs, err = tokenizeList(in, TokenizeNameAddr); err != nil {
		return in, ContactTokenizer{}, errtrace.Wrap(err)
	}
	return rest, tok, nil
}

// ContactFrom converts tokenized Contact value.
func ContactFrom(tok ContactTokenizer) (*Contact, error) {
	if tok.Wildcard {
		return &Contact{Wildcard: true}, nil
	}
	addrs, err := nameAddrList(tok.Addrs)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Contact{Addrs: addrs}, nil
}

// ParseContact parses the Contact header value.
func ParseContact[T ~string | ~[]byte](s T) (*Contact, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeContact, ContactFrom))
}
