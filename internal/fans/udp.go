package fans

import (
	"math"
	"net"

	"github.com/markusressel/radiator/internal/errors"
	"github.com/markusressel/radiator/internal/packet"
	"github.com/markusressel/radiator/internal/ui"
)

type packetConn interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
	LocalAddr() net.Addr
	Close() error
}

var listenUDP = func(network string, laddr *net.UDPAddr) (packetConn, error) {
	return net.ListenUDP(network, laddr)
}

// UdpFan is a fan driven by a remote microcontroller.
// Every SetPwm sends exactly one datagram, delivery is not acknowledged or retried.
type UdpFan struct {
	Address string `json:"address"`
	Pwm     int    `json:"pwm"`

	remote *net.UDPAddr
	conn   packetConn
}

// NewUdpFan binds a socket to an ephemeral local port
func NewUdpFan(address string) (*UdpFan, error) {
	remote, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, errors.Wrap(errors.KindConfig, err, "resolve %s", address)
	}

	conn, err := listenUDP("udp", nil)
	if err != nil {
		return nil, errors.Wrap(errors.KindConfig, err, "bind udp socket")
	}

	ui.Debug("Sending duty cycles from %s to %s", conn.LocalAddr(), remote)

	return &UdpFan{
		Address: address,
		remote:  remote,
		conn:    conn,
	}, nil
}

func (fan *UdpFan) GetId() string {
	return "udp:" + fan.Address
}

func (fan *UdpFan) SetPwm(duty int) (err error) {
	if duty < 0 {
		duty = 0
	} else if duty > math.MaxUint16 {
		duty = math.MaxUint16
	}

	p := packet.Encode(uint16(duty))
	_, err = fan.conn.WriteTo(p.Bytes(), fan.remote)
	if err != nil {
		return errors.Wrap(errors.KindNetwork, err, "send to %s", fan.remote)
	}
	fan.Pwm = duty
	return nil
}

func (fan *UdpFan) GetPwm() int {
	return fan.Pwm
}

func (fan *UdpFan) LocalAddr() net.Addr {
	return fan.conn.LocalAddr()
}

func (fan *UdpFan) Close() error {
	if fan.conn == nil {
		return nil
	}
	return fan.conn.Close()
}
