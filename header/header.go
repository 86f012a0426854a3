// Package header implements the untyped SIP header model.
//
// Every known header is a string newtype holding the raw value exactly as it was received,
// unknown headers are kept in [Other]. The typed view of a header is derived on demand
// with its Typed method and is never cached.
package header

//go:generate go tool errtrace -w .
//go:generate go run ./internal/gen -out headers_gen.go

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"
	"github.com/google/uuid"

	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/types"
	"github.com/ghettovoice/sipmsg/internal/util"
)

type (
	// Name is a header name, matching is case-insensitive, see [CanonicName].
	Name          = types.HeaderName
	RenderOptions = types.RenderOptions
)

const (
	ErrMissingHeader = errorutil.ErrMissingHeader
	ErrTokenize      = errorutil.ErrTokenize
	ErrIncomplete    = errorutil.ErrIncomplete
	ErrUtf8          = errorutil.ErrUtf8
)

// Header is an untyped SIP header: a name and its raw string value.
// The value is always available, whether or not it converts to the typed form.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.Equalable
	Name() Name
	// Value returns the raw value.
	Value() string
	// Replace sets the raw value in place.
	Replace(value string)
	// String returns "Name: value".
	String() string
}

// CanonicName converts name to the canonical form.
// Compact names of known headers are expanded, e.g. "v" gives "Via".
func CanonicName[T ~string](name T) Name { return types.CanonicHeaderName(name) }

// IsKnown reports whether the name, full or compact, is one of the known header names.
func IsKnown[T ~string](name T) bool { return Name(name).IsKnown() }

// New makes a header for name with the value kept verbatim.
// Known names, compared case-insensitively, give their dedicated type, others give [*Other].
func New(name, value string) Header {
	if fn, ok := newHeaderFuncs[CanonicName(name)]; ok {
		return fn(value)
	}
	return NewOther(name, value)
}

// FromTyped converts a typed header back to the untyped form.
func FromTyped(hdr typed.Header) Header {
	if hdr == nil {
		return nil
	}
	return New(string(hdr.CanonicName()), hdr.RenderValue())
}

// GenCallID returns a Call-ID header with a random identifier, the host is appended after "@" if not empty.
func GenCallID(host string) *CallID {
	id := uuid.NewString()
	if host != "" {
		id += "@" + host
	}
	return NewCallID(id)
}

func renderTo(w io.Writer, hdr Header, opts *RenderOptions) (int, error) {
	name := hdr.Name()
	if opts != nil && opts.Compact {
		name = types.CompactHeaderName(name)
	}
	return errtrace.Wrap2(fmt.Fprint(w, name, ": ", hdr.Value()))
}

func render(hdr Header, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// Other is a header not in the table of known names.
// The name keeps its original spelling, so the header renders exactly as received.
type Other struct {
	name  string
	value string
}

// NewOther returns an extension header.
func NewOther(name, value string) *Other { return &Other{name: name, value: value} }

func (hdr *Other) Name() Name {
	if hdr == nil {
		return ""
	}
	return Name(hdr.name)
}

func (hdr *Other) Value() string {
	if hdr == nil {
		return ""
	}
	return hdr.value
}

func (hdr *Other) Replace(value string) { hdr.value = value }

// RenderTo writes the name as is, there is no compact form.
func (hdr *Other) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.name, ": ", hdr.value))
}

func (hdr *Other) Render(opts *RenderOptions) string { return render(hdr, opts) }

func (hdr *Other) String() string { return render(hdr, nil) }

func (hdr *Other) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, hdr.String())
			return
		}

		type hideMethods Other
		type Other hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Other)(hdr))
		return
	}
}

func (hdr *Other) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares names case-insensitively and values exactly.
func (hdr *Other) Equal(val any) bool {
	var other *Other
	switch v := val.(type) {
	case Other:
		other = &v
	case *Other:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return util.EqFold(hdr.name, other.name) && hdr.value == other.value
}

func (hdr *Other) IsValid() bool { return hdr != nil && grammar.IsToken(hdr.name) }
