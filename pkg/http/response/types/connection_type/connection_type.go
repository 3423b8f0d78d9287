package connection_type

type ConnectionType int

const (
	None ConnectionType = iota
	KeepAlive
	Close
)

const Default = KeepAlive

// HeaderValue returns the Connection header value; empty means no header is emitted.
func (connectionType ConnectionType) HeaderValue() string {
	switch connectionType {
	case KeepAlive:
		return "Keep-Alive"
	case Close:
		return "Close"
	default:
		return ""
	}
}

func (connectionType ConnectionType) String() string {
	switch connectionType {
	case KeepAlive:
		return "keep-alive"
	case Close:
		return "close"
	default:
		return "none"
	}
}
