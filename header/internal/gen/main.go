// Command gen writes the untyped header types of the header package.
//
// Every known header gets a string newtype with the [header.Header] method set,
// a constructor and, when a typed counterpart exists, a Typed method.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"text/template"
)

type hdrDef struct {
	// Type is the Go type name, shared with the typed package.
	Type string
	// Typed is the result type of typed.Parse<Type>, empty if the header stays untyped.
	Typed string
}

var defs = []hdrDef{
	{"Accept", "typed.Accept"},
	{"AcceptEncoding", "typed.AcceptEncoding"},
	{"AcceptLanguage", "typed.AcceptLanguage"},
	{"AlertInfo", "typed.AlertInfo"},
	{"Allow", "typed.Allow"},
	{"AuthenticationInfo", "*typed.AuthenticationInfo"},
	{"Authorization", "*typed.Authorization"},
	{"CallID", "typed.CallID"},
	{"CallInfo", "typed.CallInfo"},
	{"Contact", "*typed.Contact"},
	{"ContentDisposition", "*typed.ContentDisposition"},
	{"ContentEncoding", "typed.ContentEncoding"},
	{"ContentLanguage", "typed.ContentLanguage"},
	{"ContentLength", "typed.ContentLength"},
	{"ContentType", "*typed.ContentType"},
	{"CSeq", "*typed.CSeq"},
	{"Date", "*typed.Date"},
	{"ErrorInfo", "typed.ErrorInfo"},
	{"Event", "*typed.Event"},
	{"Expires", "typed.Expires"},
	{"From", "*typed.From"},
	{"InReplyTo", "typed.InReplyTo"},
	{"MaxForwards", "typed.MaxForwards"},
	{"MIMEVersion", "typed.MIMEVersion"},
	{"MinExpires", "typed.MinExpires"},
	{"Organization", ""},
	{"Priority", "typed.Priority"},
	{"ProxyAuthenticate", "*typed.ProxyAuthenticate"},
	{"ProxyAuthorization", "*typed.ProxyAuthorization"},
	{"ProxyRequire", "typed.ProxyRequire"},
	{"RecordRoute", "typed.RecordRoute"},
	{"ReplyTo", "*typed.ReplyTo"},
	{"Require", "typed.Require"},
	{"RetryAfter", "*typed.RetryAfter"},
	{"Route", "typed.Route"},
	{"Server", ""},
	{"Subject", ""},
	{"SubscriptionState", "*typed.SubscriptionState"},
	{"Supported", "typed.Supported"},
	{"Timestamp", "*typed.Timestamp"},
	{"To", "*typed.To"},
	{"Unsupported", "typed.Unsupported"},
	{"UserAgent", ""},
	{"Via", "typed.Via"},
	{"Warning", "typed.Warning"},
	{"WWWAuthenticate", "*typed.WWWAuthenticate"},
}

var tmpl = template.Must(template.New("headers").Parse(`// Code generated by header/internal/gen. DO NOT EDIT.

package header

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipmsg/header/typed"
	"github.com/ghettovoice/sipmsg/internal/types"
)

// Known header names.
const (
{{- range .}}
	Name{{.Type}} = types.Header{{.Type}}
{{- end}}
)

var newHeaderFuncs = map[Name]func(string) Header{
{{- range .}}
	Name{{.Type}}: func(v string) Header { return New{{.Type}}(v) },
{{- end}}
}
{{range .}}
// {{.Type}} is the untyped {{.Type}} header, it holds the raw value.
type {{.Type}} string

// New{{.Type}} wraps value verbatim.
func New{{.Type}}(value string) *{{.Type}} {
	hdr := {{.Type}}(value)
	return &hdr
}

// Name returns the canonical header name.
func (*{{.Type}}) Name() Name { return Name{{.Type}} }

// Value returns the raw header value.
func (hdr *{{.Type}}) Value() string {
	if hdr == nil {
		return ""
	}
	return string(*hdr)
}

// Replace sets the raw header value.
func (hdr *{{.Type}}) Replace(value string) { *hdr = {{.Type}}(value) }

// RenderTo writes the header line without the trailing CRLF.
func (hdr *{{.Type}}) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderTo(w, hdr, opts))
}

// Render returns the header line without the trailing CRLF.
func (hdr *{{.Type}}) Render(opts *RenderOptions) string { return render(hdr, opts) }

// String returns "Name: value".
func (hdr *{{.Type}}) String() string { return render(hdr, nil) }

// Clone returns a copy of the header.
func (hdr *{{.Type}}) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares raw values.
func (hdr *{{.Type}}) Equal(val any) bool {
	switch v := val.(type) {
	case {{.Type}}:
		return hdr != nil && *hdr == v
	case *{{.Type}}:
		return hdr == v || hdr != nil && v != nil && *hdr == *v
	default:
		return false
	}
}
{{- if .Typed}}

// Typed tokenizes the value and converts it to [{{.Typed}}].
// The conversion is repeated on every call.
func (hdr *{{.Type}}) Typed() ({{.Typed}}, error) {
	return errtrace.Wrap2(typed.Parse{{.Type}}(hdr.Value()))
}
{{- end}}
{{end}}`))

func main() {
	out := flag.String("out", "headers_gen.go", "output file")
	flag.Parse()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, defs); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format source: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
