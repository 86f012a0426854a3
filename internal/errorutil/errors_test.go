package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/sipmsg/internal/errorutil"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "parse error"},
		{"message", []any{"bad port"}, "parse error: bad port"},
		{"format", []any{"bad port %d", 99999}, "parse error: bad port 99999"},
		{"error", []any{io.EOF}, "parse error: EOF"},
		{"already wrapped", []any{errorutil.NewParseError("x")}, "parse error: x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewParseError(c.args...)
			if diff := cmp.Diff(err, errorutil.ErrParse, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("errorutil.NewParseError(%v) = %v, want wrapped %v", c.args, err, errorutil.ErrParse)
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("errorutil.NewParseError(%v).Error() = %q, want %q", c.args, got, c.wantMsg)
			}
		})
	}
}

func TestIsIncomplete(t *testing.T) {
	t.Parallel()

	if !errorutil.IsIncomplete(errorutil.NewWrapperError(errorutil.ErrIncomplete, "need more")) {
		t.Error("errorutil.IsIncomplete(wrapped ErrIncomplete) = false, want true")
	}
	if errorutil.IsIncomplete(errorutil.NewTokenizeError()) {
		t.Error("errorutil.IsIncomplete(ErrTokenize) = true, want false")
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	err1 := errorutil.NewMissingHeaderError("Via")
	err2 := errorutil.NewMissingHeaderError("CSeq")

	if got, want := errorutil.JoinPrefix("invalid request:", err1).Error(), "invalid request: missing header: Via"; got != want {
		t.Errorf("errorutil.JoinPrefix() = %q, want %q", got, want)
	}

	err := errorutil.JoinPrefix("invalid request:", err1, err2)
	want := "invalid request:\n  - missing header: Via\n  - missing header: CSeq"
	if got := err.Error(); got != want {
		t.Errorf("errorutil.JoinPrefix() = %q, want %q", got, want)
	}
	if !errors.Is(err, errorutil.ErrMissingHeader) {
		t.Errorf("errors.Is(%v, ErrMissingHeader) = false, want true", err)
	}
	if errorutil.Join() != nil {
		t.Error("errorutil.Join() != nil")
	}
}
