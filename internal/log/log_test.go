package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/sipmsg/internal/log"
)

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Error("log.Noop.Enabled(ctx, slog.LevelError) = true, want false")
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got, want := log.StringValue([]byte("INVITE")).LogValue().String(), "INVITE"; got != want {
		t.Errorf("log.StringValue([]byte(\"INVITE\")).LogValue() = %q, want %q", got, want)
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	if got, want := log.Bytes([]byte("OPTIONS\r\n")).LogValue().String(), `"OPTIONS\r\n"`; got != want {
		t.Errorf("log.Bytes(short).LogValue() = %q, want %q", got, want)
	}

	v := log.Bytes(bytes.Repeat([]byte("a"), log.MaxBytesLen+10)).LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("log.Bytes(long).LogValue().Kind() = %v, want %v", v.Kind(), slog.KindGroup)
	}
	attrs := v.Group()
	if len(attrs) != 2 || attrs[1].Key != "len" || attrs[1].Value.Int64() != log.MaxBytesLen+10 {
		t.Errorf("log.Bytes(long).LogValue() = %v, want head and len", attrs)
	}
	if head := attrs[0].Value.String(); len(head) != log.MaxBytesLen+2 {
		t.Errorf("head length = %d, want %d", len(head), log.MaxBytesLen+2)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []log.Format{log.FormatConsole, log.FormatDev} {
		var buf bytes.Buffer
		l := log.New(&buf, format, slog.LevelInfo)
		l.Debug("hidden")
		l.Warn("frame dropped", "data", []byte("BYE\r\n"), "error", errors.New("boom"))

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("format %d: debug record written at info level:\n%s", format, out)
		}
		for _, want := range []string{"frame dropped", "BYE", "boom"} {
			if !strings.Contains(out, want) {
				t.Errorf("format %d: output has no %q:\n%s", format, want, out)
			}
		}
	}
}
