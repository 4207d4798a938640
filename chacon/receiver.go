package chacon

import "github.com/sparques/ookrx"

// BufferSource is the small slice of the ring Receiver needs: draining a
// completed buffer and reading the liveness beacon. Device satisfies it
// on embedded targets; on the host, ookrx.Ring and the tests' scripted
// fake satisfy it without pulling in the tinygo-only hardware layer.
type BufferSource interface {
	DrainOne(now ookrx.Micros, cb func(*ookrx.PacketBuffer)) bool
	HasBeenAlive() bool
}

// Receiver is the main-loop-facing façade: drain the ring, decode each
// buffer, de-duplicate against the train tracker, and surface at most one
// fresh payload per call.
type Receiver struct {
	Source BufferSource
	Sink   EventSink

	// Dump, if set, receives the rendered gap widths of every buffer
	// decoded with conviction — the host-side counterpart of the original
	// firmware's Serial-attached dump(). Left nil by NewReceiver; callers
	// that want it wire it up explicitly, since formatting every buffer
	// costs cycles the embedded hot path shouldn't always pay for.
	Dump func(string)

	train TrainTracker
}

// NewReceiver wires source and sink together. A nil sink is replaced with
// NopSink.
func NewReceiver(source BufferSource, sink EventSink) *Receiver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Receiver{Source: source, Sink: sink}
}

// Setup initialises the train tracker. Call once before the first Receive.
func (r *Receiver) Setup(now ookrx.Micros) {
	r.train.Setup(now)
}

// Receive drains and decodes buffers from the ring until one yields a fresh
// payload, which it returns at once; any buffers behind it stay queued for
// the next call. ok is false if the ring emptied without anything new
// surviving decoding and de-duplication.
func (r *Receiver) Receive(now ookrx.Micros) (payload Payload, ok bool) {
	for {
		var (
			result     Payload
			decoded    bool
			receivedAt ookrx.Micros
		)
		delivered := r.Source.DrainOne(now, func(buf *ookrx.PacketBuffer) {
			receivedAt = buf.LastEdge
			withConviction := !r.train.IsSettlingDown(receivedAt)
			result, decoded = Decode(buf, withConviction, r.Sink)
			if withConviction && r.Dump != nil {
				r.Dump(DumpBuffer(buf, receivedAt, now))
			}
		})
		if !delivered {
			break
		}
		if decoded && r.train.Handle(result, receivedAt) {
			return result, true
		}
	}
	r.train.CatchUp(now)
	return 0, false
}

// HasBeenAlive forwards to the ring's liveness flag.
func (r *Receiver) HasBeenAlive() bool {
	return r.Source.HasBeenAlive()
}
