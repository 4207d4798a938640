// Package chacon decodes the Chacon/DIO-style 32-bit OOK remote-control
// protocol on top of the protocol-agnostic gap-tracking ring in ookrx,
// building this remote's bit semantics on top of that generic transport.
package chacon

// Payload is a decoded 32-bit Chacon/DIO command word. Field layout (bits,
// LSB at 0): 6-31 transmitter ID, 5 multicast, 4 on/off, 2-3 page, 0-1 row.
// Interpretation of these fields is otherwise left to the application; the
// accessors below exist only to document the layout.
type Payload uint32

// TransmitterID returns the 26-bit sender identity.
func (p Payload) TransmitterID() uint32 { return uint32(p) >> 6 }

// IsMulticast reports whether the command addresses every receiver tuned to
// this transmitter, rather than a single (page, row).
func (p Payload) IsMulticast() bool { return p&(1<<5) != 0 }

// IsOn reports the commanded on/off state.
func (p Payload) IsOn() bool { return p&(1<<4) != 0 }

// Page returns the 2-bit page selector.
func (p Payload) Page() uint8 { return uint8((p >> 2) & 0x3) }

// Row returns the 2-bit row selector.
func (p Payload) Row() uint8 { return uint8(p & 0x3) }
