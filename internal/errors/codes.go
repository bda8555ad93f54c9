package errors

// Kind classifies a failure of the monitor pipeline
type Kind string

const (
	// KindRead means the temperature source could not be read
	KindRead Kind = "read_error"
	// KindParse means the temperature source returned malformed numeric text
	KindParse Kind = "parse_error"
	// KindConfig means an invalid pin/mode, address or a failed hardware initialization
	KindConfig Kind = "config_error"
	// KindActuation means the hardware rejected a duty cycle at runtime
	KindActuation Kind = "actuation_error"
	// KindNetwork means the local datagram send failed
	KindNetwork Kind = "network_error"
)

var kindMessages = map[Kind]string{
	KindRead:      "Unable to read temperature",
	KindParse:     "Unable to parse temperature",
	KindConfig:    "Invalid configuration",
	KindActuation: "Unable to set fan speed",
	KindNetwork:   "Unable to send datagram",
}

// Message returns the human readable message for a given kind
func Message(kind Kind) string {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}

	return string(kind)
}
