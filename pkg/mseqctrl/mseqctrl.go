// Package mseqctrl models the IO-Link M-sequence control byte (IO-Link
// Interface Specification v1.1.3, section A.1.2): a 5-bit address, a 2-bit
// communication channel and a 1-bit transmission direction packed into one
// octet.
package mseqctrl

import (
	"github.com/vexingcodes/bitfield/pkg/field"
)

// Channel is the communication channel addressed by an M-sequence.
type Channel uint8

const (
	ChannelProcess Channel = iota
	ChannelPage
	ChannelDiagnosis
	ChannelISDU
)

func (c Channel) String() string {
	switch c {
	case ChannelProcess:
		return "process"
	case ChannelPage:
		return "page"
	case ChannelDiagnosis:
		return "diagnosis"
	case ChannelISDU:
		return "isdu"
	}
	return "unknown"
}

// Direction is the transmission direction of an M-sequence.
type Direction uint8

const (
	DirectionWrite Direction = 0
	DirectionRead  Direction = 1
)

func (d Direction) String() string {
	if d == DirectionRead {
		return "read"
	}
	return "write"
}

var errCfg = field.Config{Strategy: field.StrategyError}

var (
	address   = field.Must(field.New[uint8](5, 0, errCfg))
	channel   = field.Must(field.NewAs[uint8, Channel](2, 5, errCfg))
	direction = field.Must(field.NewAs[uint8, Direction](1, 7, errCfg))
)

// Control is one M-sequence control byte.
type Control interface {
	Address() uint8
	SetAddress(a uint8) error
	Channel() Channel
	SetChannel(c Channel) error
	Direction() Direction
	SetDirection(d Direction) error

	Raw() uint8
}

// New returns a zeroed control byte: address 0, process channel, write
// direction.
func New() Control {
	return &control{}
}

// From returns a control byte wrapping the given raw octet.
func From(raw uint8) Control {
	return &control{raw: raw}
}

type control struct {
	raw uint8
}

func (r *control) Address() uint8 {
	return address.Get(r.raw)
}

func (r *control) SetAddress(a uint8) error {
	_, err := address.Set(&r.raw, a)
	return err
}

func (r *control) Channel() Channel {
	return channel.Get(r.raw)
}

func (r *control) SetChannel(c Channel) error {
	_, err := channel.Set(&r.raw, c)
	return err
}

func (r *control) Direction() Direction {
	return direction.Get(r.raw)
}

func (r *control) SetDirection(d Direction) error {
	_, err := direction.Set(&r.raw, d)
	return err
}

func (r *control) Raw() uint8 {
	return r.raw
}
