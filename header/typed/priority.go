package typed

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/grammar"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Priority represents the Priority header field.
// The Priority header field indicates the urgency of the request as perceived by the client.
// Extension values are kept as is.
type Priority string

const (
	PriorityEmergency Priority = "emergency"
	PriorityUrgent    Priority = "urgent"
	PriorityNormal    Priority = "normal"
	PriorityNonUrgent Priority = "non-urgent"
)

// CanonicName returns the canonical name of the header.
func (Priority) CanonicName() Name { return "Priority" }

// CompactName returns the compact name of the header (Priority has no compact form).
func (Priority) CompactName() Name { return "Priority" }

// RenderTo writes the header to the provided writer.
func (hdr Priority) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	return errtrace.Wrap2(renderHdrTo(w, hdr, opts, hdr.renderValueTo))
}

func (hdr Priority) renderValueTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(io.WriteString(w, string(hdr)))
}

// Render returns the string representation of the header.
func (hdr Priority) Render(opts *RenderOptions) string { return renderHdr(hdr, opts) }

// RenderValue returns the header value without the name prefix.
func (hdr Priority) RenderValue() string { return string(hdr) }

// String returns the string representation of the header value.
func (hdr Priority) String() string { return string(hdr) }

// Format implements fmt.Formatter for custom formatting of the header.
func (hdr Priority) Format(f fmt.State, verb rune) {
	type hideMethods Priority
	type Priority hideMethods
	formatHdr(f, verb, hdr, Priority(hdr))
}

// Clone returns a copy of the header.
func (hdr Priority) Clone() Header { return hdr }

// Equal compares priorities case-insensitively.
func (hdr Priority) Equal(val any) bool {
	var other Priority
	switch v := val.(type) {
	case Priority:
		other = v
	case *Priority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(hdr, other)
}

// IsValid checks whether the header is syntactically valid.
func (hdr Priority) IsValid() bool { return grammar.IsToken(hdr) }

// IsKnown reports whether the priority is one of RFC 3261 values.
func (hdr Priority) IsKnown() bool {
	switch util.LCase(hdr) {
	case PriorityEmergency, PriorityUrgent, PriorityNormal, PriorityNonUrgent:
		return true
	}
	return false
}

// TokenizePriority splits the Priority header value.
func TokenizePriority(in []byte) (rest, tok []byte, err error) {
	return errtrace.Wrap3(TokenizeToken(in))
}

// PriorityFrom converts tokenized Priority. Known values are lower cased.
func PriorityFrom(tok []byte) (Priority, error) {
	p := Priority(tok)
	if p.IsKnown() {
		p = util.LCase(p)
	}
	return p, nil
}

// ParsePriority parses the Priority header value.
func ParsePriority[T ~string | ~[]byte](s T) (Priority, error) {
	return errtrace.Wrap2(parseValue([]byte(s), TokenizePriority, PriorityFrom))
}
