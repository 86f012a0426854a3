package sip

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// DecoderMetrics counts what a [Decoder] sees.
// It is a [prometheus.Collector], register it with a registry of choice.
// One instance may be shared by many decoders.
type DecoderMetrics struct {
	messages  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	keepAlive prometheus.Counter
}

// NewDecoderMetrics creates decoder counters under the namespace and the "decoder" subsystem.
func NewDecoderMetrics(namespace string, constLabels prometheus.Labels) *DecoderMetrics {
	return &DecoderMetrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "decoder",
			Name:        "messages_total",
			Help:        "Number of decoded SIP messages by kind.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "decoder",
			Name:        "errors_total",
			Help:        "Number of dropped frames by reason.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		keepAlive: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "decoder",
			Name:        "keepalive_bytes_total",
			Help:        "Number of skipped CRLF keep-alive bytes.",
			ConstLabels: constLabels,
		}),
	}
}

// Describe implements [prometheus.Collector].
func (m *DecoderMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.messages.Describe(ch)
	m.errors.Describe(ch)
	m.keepAlive.Describe(ch)
}

// Collect implements [prometheus.Collector].
func (m *DecoderMetrics) Collect(ch chan<- prometheus.Metric) {
	m.messages.Collect(ch)
	m.errors.Collect(ch)
	m.keepAlive.Collect(ch)
}

// Messages returns the counter of decoded messages of the kind, "request" or "response".
func (m *DecoderMetrics) Messages(kind string) prometheus.Counter {
	return m.messages.WithLabelValues(kind)
}

// Errors returns the counter of frames dropped for the reason, see [ErrorReason].
func (m *DecoderMetrics) Errors(reason string) prometheus.Counter {
	return m.errors.WithLabelValues(reason)
}

// KeepAliveBytes returns the counter of skipped keep-alive bytes.
func (m *DecoderMetrics) KeepAliveBytes() prometheus.Counter { return m.keepAlive }

func (m *DecoderMetrics) recordMessage(msg Message) {
	if m == nil {
		return
	}
	kind := "request"
	if _, ok := msg.(*Response); ok {
		kind = "response"
	}
	m.messages.WithLabelValues(kind).Inc()
}

func (m *DecoderMetrics) recordError(err error) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(ErrorReason(err)).Inc()
}

func (m *DecoderMetrics) recordKeepAlive(n int) {
	if m == nil {
		return
	}
	m.keepAlive.Add(float64(n))
}

// ErrorReason maps a decode error to a short label value.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMessageTooLarge):
		return "too_large"
	case errors.Is(err, ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, ErrUtf8):
		return "utf8"
	case errors.Is(err, ErrInvalidParam):
		return "invalid_param"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrTokenize):
		return "tokenize"
	default:
		return "other"
	}
}
