// Package packet implements the datagram sent to a remote fan controller.
//
// The layout is frozen: one type byte followed by a big-endian uint16 duty cycle.
// A new packet type needs a new type value, existing bytes are never reinterpreted.
package packet

import (
	"encoding/binary"
	"fmt"
)

const (
	// TypeSetDuty is the only defined packet type
	TypeSetDuty byte = 1

	Size = 3
)

// Packet is a "set duty" datagram: [type: u8][duty: u16 big-endian]
type Packet [Size]byte

// Encode creates a "set duty" packet for the given duty cycle
func Encode(duty uint16) Packet {
	var p Packet
	p[0] = TypeSetDuty
	binary.BigEndian.PutUint16(p[1:], duty)
	return p
}

func (p Packet) Bytes() []byte {
	return p[:]
}

func (p Packet) Type() byte {
	return p[0]
}

func (p Packet) Duty() uint16 {
	return binary.BigEndian.Uint16(p[1:])
}

func (p Packet) String() string {
	return fmt.Sprintf("% x", p[:])
}

// Decode parses a "set duty" packet and returns its duty cycle
func Decode(data []byte) (uint16, error) {
	if len(data) != Size {
		return 0, fmt.Errorf("invalid packet size %d, expected %d", len(data), Size)
	}
	if data[0] != TypeSetDuty {
		return 0, fmt.Errorf("unknown packet type %d", data[0])
	}
	return binary.BigEndian.Uint16(data[1:]), nil
}
