package typed_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/header/typed"
)

func TestParseCSeq(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *typed.CSeq
		wantErr error
	}{
		{"empty", "", nil, typed.ErrTokenize},
		{"no method", "4711", nil, typed.ErrTokenize},
		{"no space", "4711INVITE", nil, typed.ErrTokenize},
		{"overflow", "99999999999 INVITE", nil, typed.ErrParse},
		{"above 16 bits", "70000 INVITE", &typed.CSeq{SeqNum: 70000, Method: "INVITE"}, nil},
		{"max 32 bits", "4294967295 ACK", &typed.CSeq{SeqNum: 1<<32 - 1, Method: "ACK"}, nil},
		{"above 32 bits", "4294967296 INVITE", nil, typed.ErrParse},
		{"trailing", "4711 INVITE BYE", nil, typed.ErrTokenize},
		{"basic", "4711 INVITE", &typed.CSeq{SeqNum: 4711, Method: "INVITE"}, nil},
		{"lower method", "  1   invite\r\n", &typed.CSeq{SeqNum: 1, Method: "INVITE"}, nil},
		{"ext method", "2 PUBLISH2", &typed.CSeq{SeqNum: 2, Method: "PUBLISH2"}, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := typed.ParseCSeq(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("typed.ParseCSeq(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("typed.ParseCSeq(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestCSeq_RenderTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     *typed.CSeq
		opts    *typed.RenderOptions
		wantRes string
	}{
		{"nil", nil, nil, ""},
		{"full", &typed.CSeq{SeqNum: 4711, Method: "INVITE"}, nil, "CSeq: 4711 INVITE"},
		{"compact", &typed.CSeq{SeqNum: 4711, Method: "INVITE"}, &typed.RenderOptions{Compact: true}, "CSeq: 4711 INVITE"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder
			if _, err := c.hdr.RenderTo(&sb, c.opts); err != nil {
				t.Fatalf("hdr.RenderTo(sb, opts) error = %v, want nil", err)
			}
			if got := sb.String(); got != c.wantRes {
				t.Errorf("sb.String() = %q, want %q", got, c.wantRes)
			}
		})
	}
}

func TestCSeq_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  *typed.CSeq
		val  any
		want bool
	}{
		{"nil ptr to nil", (*typed.CSeq)(nil), nil, false},
		{"nil ptr to nil ptr", (*typed.CSeq)(nil), (*typed.CSeq)(nil), true},
		{"zero ptr to zero val", &typed.CSeq{}, typed.CSeq{}, true},
		{"seq mismatch", &typed.CSeq{SeqNum: 1, Method: "INVITE"}, typed.CSeq{SeqNum: 2, Method: "INVITE"}, false},
		{"method mismatch", &typed.CSeq{SeqNum: 1, Method: "INVITE"}, &typed.CSeq{SeqNum: 1, Method: "BYE"}, false},
		{"match", &typed.CSeq{SeqNum: 1, Method: "INVITE"}, typed.CSeq{SeqNum: 1, Method: "invite"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Equal(c.val); got != c.want {
				t.Errorf("hdr.Equal(val) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCSeq_IsValid(t *testing.T) {
	t.Parallel()

	if (*typed.CSeq)(nil).IsValid() {
		t.Error("nil CSeq is valid, want invalid")
	}
	if !(&typed.CSeq{SeqNum: 1<<31 - 1, Method: "INVITE"}).IsValid() {
		t.Error("CSeq 2**31-1 is invalid, want valid")
	}
	if (&typed.CSeq{SeqNum: 1 << 31, Method: "INVITE"}).IsValid() {
		t.Error("CSeq 2**31 is valid, want invalid")
	}
}

func TestCSeq_Clone(t *testing.T) {
	t.Parallel()

	hdr := &typed.CSeq{SeqNum: 1, Method: "INVITE"}
	got := hdr.Clone().(*typed.CSeq)
	if got == hdr {
		t.Fatal("hdr.Clone() returned the same pointer")
	}
	got.SeqNum = 2
	if hdr.SeqNum != 1 {
		t.Errorf("hdr.SeqNum = %d after clone mutation, want 1", hdr.SeqNum)
	}
}
