package header

import (
	"io"
	"iter"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
	"github.com/ghettovoice/sipmsg/internal/ioutil"
	"github.com/ghettovoice/sipmsg/internal/util"
)

// Headers is an ordered list of headers.
// Order is kept as pushed, duplicates are allowed unless [Headers.UniquePush] is used.
type Headers []Header

// Push appends headers to the end.
func (hs *Headers) Push(hdrs ...Header) { *hs = append(*hs, hdrs...) }

// UniquePush removes all headers with the same name and appends hdr.
func (hs *Headers) UniquePush(hdr Header) {
	name := hdr.Name()
	hs.Retain(func(h Header) bool { return !h.Name().Equal(name) })
	hs.Push(hdr)
}

// PushFront inserts headers at the beginning keeping their order.
func (hs *Headers) PushFront(hdrs ...Header) { *hs = slices.Insert(*hs, 0, hdrs...) }

// Retain keeps only headers for which keep returns true.
func (hs *Headers) Retain(keep func(Header) bool) {
	*hs = slices.DeleteFunc(*hs, func(h Header) bool { return !keep(h) })
}

// Remove drops all headers with the name, compact names included.
func (hs *Headers) Remove(name Name) {
	hs.Retain(func(h Header) bool { return !h.Name().Equal(name) })
}

// Extend appends all headers of other.
func (hs *Headers) Extend(other Headers) { *hs = append(*hs, other...) }

// Len returns the number of headers.
func (hs Headers) Len() int { return len(hs) }

// All iterates over headers in order.
func (hs Headers) All() iter.Seq2[int, Header] { return slices.All(hs) }

// ByName iterates over headers with the name in order.
func (hs Headers) ByName(name Name) iter.Seq[Header] {
	return func(yield func(Header) bool) {
		for _, h := range hs {
			if h.Name().Equal(name) && !yield(h) {
				return
			}
		}
	}
}

// Get returns the first header with the name.
func (hs Headers) Get(name Name) (Header, bool) {
	for h := range hs.ByName(name) {
		return h, true
	}
	return nil, false
}

// Has reports whether a header with the name is present.
func (hs Headers) Has(name Name) bool {
	_, ok := hs.Get(name)
	return ok
}

// RenderTo writes every header followed by CRLF.
func (hs Headers) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, h := range hs {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(h.RenderTo(w, opts)) })
		cw.Fprint("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

func (hs Headers) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hs Headers) String() string { return hs.Render(nil) }

// Clone returns a deep copy.
func (hs Headers) Clone() Headers {
	if hs == nil {
		return nil
	}
	hs2 := make(Headers, len(hs))
	for i, h := range hs {
		hs2[i] = h.Clone()
	}
	return hs2
}

// Equal compares headers pairwise in order.
func (hs Headers) Equal(val any) bool {
	var other Headers
	switch v := val.(type) {
	case Headers:
		other = v
	case *Headers:
		if v == nil {
			return false
		}
		other = *v
	case []Header:
		other = v
	default:
		return false
	}
	return slices.EqualFunc(hs, other, func(h1, h2 Header) bool { return h1.Equal(h2) })
}

func first[H Header](hs Headers) (H, bool) {
	for _, h := range hs {
		if v, ok := h.(H); ok {
			return v, true
		}
	}
	var zero H
	return zero, false
}

func required[H Header](hs Headers, name Name) (H, error) {
	h, ok := first[H](hs)
	if !ok {
		return h, errtrace.Wrap(errorutil.NewMissingHeaderError(string(name)))
	}
	return h, nil
}

func all[H Header](hs Headers) []H {
	var s []H
	for _, h := range hs {
		if v, ok := h.(H); ok {
			s = append(s, v)
		}
	}
	return s
}

// Accessors below scan the list and return the first matching header.
// Returned headers alias the stored ones, so Replace on them edits the list in place.

func (hs Headers) To() (*To, error) { return errtrace.Wrap2(required[*To](hs, NameTo)) }

func (hs Headers) From() (*From, error) { return errtrace.Wrap2(required[*From](hs, NameFrom)) }

// Via returns the topmost Via header.
func (hs Headers) Via() (*Via, error) { return errtrace.Wrap2(required[*Via](hs, NameVia)) }

func (hs Headers) CallID() (*CallID, error) { return errtrace.Wrap2(required[*CallID](hs, NameCallID)) }

func (hs Headers) CSeq() (*CSeq, error) { return errtrace.Wrap2(required[*CSeq](hs, NameCSeq)) }

func (hs Headers) MaxForwards() (*MaxForwards, error) {
	return errtrace.Wrap2(required[*MaxForwards](hs, NameMaxForwards))
}

func (hs Headers) Contact() (*Contact, error) { return errtrace.Wrap2(required[*Contact](hs, NameContact)) }

func (hs Headers) ContentLength() (*ContentLength, bool) { return first[*ContentLength](hs) }

func (hs Headers) ContentType() (*ContentType, bool) { return first[*ContentType](hs) }

func (hs Headers) Authorization() (*Authorization, bool) { return first[*Authorization](hs) }

func (hs Headers) ProxyAuthorization() (*ProxyAuthorization, bool) {
	return first[*ProxyAuthorization](hs)
}

func (hs Headers) WWWAuthenticate() (*WWWAuthenticate, bool) { return first[*WWWAuthenticate](hs) }

func (hs Headers) ProxyAuthenticate() (*ProxyAuthenticate, bool) {
	return first[*ProxyAuthenticate](hs)
}

func (hs Headers) Expires() (*Expires, bool) { return first[*Expires](hs) }

func (hs Headers) UserAgent() (*UserAgent, bool) { return first[*UserAgent](hs) }

func (hs Headers) RecordRoute() (*RecordRoute, bool) { return first[*RecordRoute](hs) }

func (hs Headers) Route() (*Route, bool) { return first[*Route](hs) }

// AllVia returns every Via header, topmost first.
func (hs Headers) AllVia() []*Via { return all[*Via](hs) }

func (hs Headers) AllRoute() []*Route { return all[*Route](hs) }

func (hs Headers) AllRecordRoute() []*RecordRoute { return all[*RecordRoute](hs) }

func (hs Headers) AllContact() []*Contact { return all[*Contact](hs) }

func (hs Headers) AllWWWAuthenticate() []*WWWAuthenticate { return all[*WWWAuthenticate](hs) }

func (hs Headers) AllProxyAuthenticate() []*ProxyAuthenticate { return all[*ProxyAuthenticate](hs) }
