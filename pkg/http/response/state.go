package response

type State int

const (
	Fresh State = iota
	BodyFilled
	Compressed
	HeaderWritten
)

func (state State) String() string {
	switch state {
	case Fresh:
		return "fresh"
	case BodyFilled:
		return "body filled"
	case Compressed:
		return "compressed"
	case HeaderWritten:
		return "header written"
	default:
		return "unknown"
	}
}
