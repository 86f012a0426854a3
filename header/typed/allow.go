package typed

import (
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/types"
)

// Allow represents the Allow header field.
// The Allow header field lists the set of methods supported by the UA generating the message.
// An empty Allow is valid.
type Allow []RequestMethod

// CanonicName returns the canonical name of the header.
func (Allow) CanonicName() Name { return "Allow" }

// CompactName returns the compact name of the header (Allow has no compact form).
func (Allow) CompactName() Name { return "Allow" }

// RenderTo writes the header to the provided writer.
func (hdr Allow) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Allow) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(renderEntries(w, hdr))
}

// Render returns the string representation of the header.
func (hdr Allow) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Allow) RenderValue() string { return renderString(hdr.renderValueTo) }

// String returns the string representation of the header value.
func (hdr Allow) String() string { return hdr.RenderValue() }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Allow) Format(f fmt.State, verb rune) {
	type hideMethods Allow
	type Allow hideMethods
	formatHdr(f, verb, hdr, Allow(hdr))
}

// Contains reports whether the method is allowed.
func (hdr Allow) Contains(mtd RequestMethod) bool {
	return slices.ContainsFunc(hdr, func(m RequestMethod) bool { return m.Equal(mtd) })
}

// Clone returns a copy of the header.
func (hdr Allow) Clone() Header { return slices.Clone(hdr) }

// Equal compares this header with another for equality.
func (hdr Allow) Equal(val any) bool {
	var other Allow
	switch v := val.(type) {
	case Allow:
		other = v
	case *Allow:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalHdrEntries(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Allow) IsValid() bool {
	return !slices.ContainsFunc(hdr, func(m RequestMethod) bool { return !m.IsValid() })
}

// TokenizeAllow splits comma separated methods, the value may be empty.
func TokenizeAllow(in []byte) (rest []byte, toks []types.MethodTokenizer, err error) {
	return errtrace.Wrap3(tokenizeOptList(in, types.TokenizeMethod))
}

// AllowFrom converts tokenized Allow value.
func AllowFrom(toks []types.MethodTokenizer) (Allow, error) {
	mtds, err := convertList(toks, types.MethodFrom)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return Allow(mtds), nil
}

// ParseAllow parses the Allow header value.
func ParseAllow[T ~string | ~[]byte](s T) (Allow, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizeAllow, AllowFrom))
}
