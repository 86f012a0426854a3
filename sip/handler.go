package sip

// Handler receives messages framed by a [Decoder].
type Handler interface {
	HandleMessage(msg Message)
}

// HandlerFunc is an adapter to use ordinary functions as [Handler].
type HandlerFunc func(msg Message)

func (f HandlerFunc) HandleMessage(msg Message) { f(msg) }
