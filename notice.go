package ookrx

// RingNotice is a transport-level soft notice from the gap tracker, distinct
// from the protocol-level NoticeTag enumeration in the chacon subpackage.
type RingNotice uint8

const (
	// NoticeNone means nothing worth reporting happened.
	NoticeNone RingNotice = iota
	// NoticeRanOutOfBuffers means the producer needed a free buffer to
	// rotate into but the consumer hadn't drained the oldest one yet; that
	// buffer was overwritten and its packet is lost. The packet train will
	// typically retransmit it within TrainTimeout.
	NoticeRanOutOfBuffers
)

// RingSink receives ring-level notices. Unlike chacon.EventSink, it carries
// no text payload — RanOutOfBuffers needs no further context.
type RingSink interface {
	RingNotice(n RingNotice)
}

// NopRingSink discards every notice; it is the zero-cost default.
type NopRingSink struct{}

// RingNotice implements RingSink.
func (NopRingSink) RingNotice(RingNotice) {}
