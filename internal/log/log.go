// Package log provides slog presets used by the decoder and example programs.
package log

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

// MaxBytesLen limits how many bytes of a raw frame end up in a log record.
const MaxBytesLen = 512

// Format is the output format of [New].
type Format uint8

const (
	// FormatConsole is a compact single line format.
	FormatConsole Format = iota
	// FormatDev is a verbose multi line format with sorted keys.
	FormatDev
)

var formatters = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(b []byte) slog.Value { return Bytes(b).LogValue() }),
)

// New returns a logger writing to w in the given format.
// Errors are expanded into groups and raw byte slices are quoted and truncated to [MaxBytesLen].
func New(w io.Writer, format Format, level slog.Leveler) *slog.Logger {
	var h slog.Handler
	switch format {
	case FormatDev:
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(formatters(h))
}

// Noop discards everything.
var Noop = slog.New(slog.DiscardHandler)

type bytesValue []byte

func (b bytesValue) LogValue() slog.Value {
	if len(b) > MaxBytesLen {
		return slog.GroupValue(
			slog.String("head", strconv.Quote(string(b[:MaxBytesLen]))),
			slog.Int("len", len(b)),
		)
	}
	return slog.StringValue(strconv.Quote(string(b)))
}

// Bytes returns a value logger that renders raw wire data as a quoted string.
// Data longer than [MaxBytesLen] is cut and logged together with its full length.
func Bytes(b []byte) slog.LogValuer { return bytesValue(b) }

type stringValue[T ~string | ~[]byte] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T ~string | ~[]byte](v T) slog.LogValuer { return stringValue[T]{v} }
