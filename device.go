//go:build tinygo || baremetal

// This file is built only for embedded targets, where machine.Pin is a
// real GPIO pin. Host-based testing drives gapTracker (or Ring) directly
// with synthetic timestamps instead of through a Device.
package ookrx

import (
	. "machine"
	"runtime/volatile"
)

// Device wires a single GPIO input pin to a gapTracker. It owns the
// hardware-facing half of the core: pin configuration, interrupt
// registration, and the liveness/heartbeat surface the main loop polls.
// Decoding a rising-edge stream into packets is entirely the ring's job;
// Device only ever forwards timestamps to it.
type Device struct {
	pin      Pin
	ring     Ring
	ringSink RingSink
	lastEdge volatile.Register32
	now      func() Micros
}

// NewDevice configures pin as an input and returns a Device ready for
// Setup. now supplies the free-running microsecond counter reading; the
// core never reads a hardware timer directly.
func NewDevice(pin Pin, now func() Micros) *Device {
	pin.Configure(PinConfig{Mode: PinInput})
	return &Device{
		pin:      pin,
		ringSink: NopRingSink{},
		now:      now,
	}
}

// SetRingSink installs a RingSink to be notified of RanOutOfBuffers events.
// Never called from the ISR; safe to call any time before Start.
func (d *Device) SetRingSink(sink RingSink) {
	if sink == nil {
		sink = NopRingSink{}
	}
	d.ringSink = sink
}

// Setup resets the ring's state. Call once before Start, and again if the
// receiver is being restarted after being stopped for a while.
func (d *Device) Setup() {
	d.ring.Setup()
	d.lastEdge.Set(uint32(d.now()))
}

// Start registers the rising-edge interrupt handler, beginning packet
// reception.
func (d *Device) Start() {
	d.pin.SetInterrupt(PinRising, d.interruptHandler)
}

// Stop disables the interrupt handler. The ring retains whatever state it
// had; call Setup again before Start if a clean restart is wanted.
func (d *Device) Stop() {
	d.pin.SetInterrupt(PinRising, nil)
}

func (d *Device) interruptHandler(Pin) {
	now := d.now()
	d.lastEdge.Set(uint32(now))
	if notice := d.ring.HandleRise(now); notice != NoticeNone {
		d.ringSink.RingNotice(notice)
	}
}

// DrainOne implements the small interface chacon.Receiver needs from a
// buffer source; it forwards to the ring.
func (d *Device) DrainOne(now Micros, cb func(*PacketBuffer)) bool {
	return d.ring.DrainOne(now, cb)
}

// HasBeenAlive forwards to the ring's liveness flag.
func (d *Device) HasBeenAlive() bool {
	return d.ring.HasBeenAlive()
}

// Heartbeat reports whether no rising edge has been observed for at least
// staleAfter microseconds — a dead-antenna indicator distinct from
// HasBeenAlive, which only ever reports since it was last consumed.
func (d *Device) Heartbeat(now Micros, staleAfter Micros) bool {
	return DurationFromTo(Micros(d.lastEdge.Get()), now) >= staleAfter
}
