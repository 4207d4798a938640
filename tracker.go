package ookrx

// flag bits packed into gapTracker.flags.
const (
	flagFirstEdgeSeen = 1 << 0
	flagAlive         = 1 << 1
)

// gapTracker is the lock-free single-producer/single-consumer ring of
// Buffers PacketBuffers shared between an interrupt handler (producer,
// HandleRise) and the main loop (consumer, DrainOne/HasBeenAlive). incoming,
// outgoing and flags are volatile.Register8 rather than plain uint8: they
// are read and written across the ISR/mainline boundary and must not be
// cached in a register or reordered by the compiler.
//
// Discipline: the contents of buffers[incoming] are written only from
// HandleRise; outgoing is written only from DrainOne. incoming and flags
// are written from HandleRise, with one exception: DrainOne's finality
// path advances incoming and clears the first-edge flag itself, inside its
// critical section. Both sides may read both indices freely. HandleRise
// runs in the interrupt handler, which the main loop cannot preempt, so it
// takes no criticalSection; DrainOne's decision window and HasBeenAlive's
// read-and-clear are guarded by criticalSection.
type gapTracker struct {
	buffers  [Buffers]PacketBuffer
	incoming regByte
	outgoing regByte
	flags    regByte
}

func nextBuffer(b uint8) uint8 {
	b++
	if b >= Buffers {
		return 0
	}
	return b
}

// setup resets the ring to its power-on state: a single active incoming
// buffer, no pending output, liveness and first-edge flags cleared.
func (t *gapTracker) setup() {
	t.incoming.Set(0)
	t.outgoing.Set(0)
	t.flags.Set(0)
	t.buffers[0] = PacketBuffer{}
}

// HandleRise is the producer entry point, called from the rising-edge
// interrupt handler on every edge. It is wait-free and O(1).
func (t *gapTracker) HandleRise(now Micros) RingNotice {
	flags := t.flags.Get()
	idx := t.incoming.Get()
	buf := &t.buffers[idx]

	if flags&flagFirstEdgeSeen == 0 {
		buf.ResetStart(now)
		t.flags.Set(flags | flagFirstEdgeSeen | flagAlive)
		return NoticeNone
	}

	notice := NoticeNone
	gap := DurationFromTo(buf.LastEdge, now)
	if width, ok := NewGapWidth(gap); ok {
		buf.Append(width)
	} else {
		// Delimiter: this edge closes out buf rather than extending it.
		if buf.Size() >= MinViableGaps {
			next := nextBuffer(idx)
			t.incoming.Set(next)
			if next == t.outgoing.Get() {
				notice = NoticeRanOutOfBuffers
			}
			idx = next
			buf = &t.buffers[idx]
		}
		buf.gapsSeen = 0
	}
	buf.LastEdge = now
	t.flags.Set(t.flags.Get() | flagFirstEdgeSeen | flagAlive)
	return notice
}

// DrainOne is the consumer entry point. If a finished buffer is ready —
// either because the producer has already rotated past it, or because the
// head buffer is complete and has gone quiet for PacketFinalTimeout — cb is
// invoked with it and the buffer is released back to the producer. cb runs
// with interrupts enabled; it must not call HandleRise.
func (t *gapTracker) DrainOne(now Micros, cb func(*PacketBuffer)) bool {
	var idx uint8
	ready := false

	criticalSection(func() {
		out := t.outgoing.Get()
		in := t.incoming.Get()
		if out != in {
			idx = out
			ready = true
			return
		}
		buf := &t.buffers[in]
		if buf.Size() == RequiredGaps && DurationFromTo(buf.LastEdge, now) >= PacketFinalTimeout {
			next := nextBuffer(in)
			t.incoming.Set(next)
			t.flags.Set(t.flags.Get() &^ flagFirstEdgeSeen)
			idx = in
			ready = true
		}
	})

	if !ready {
		return false
	}
	cb(&t.buffers[idx])
	t.outgoing.Set(nextBuffer(idx))
	return true
}

// HasBeenAlive reports and clears the liveness flag set by every successful
// HandleRise call.
func (t *gapTracker) HasBeenAlive() bool {
	var alive bool
	criticalSection(func() {
		alive = t.flags.Get()&flagAlive != 0
		t.flags.Set(t.flags.Get() &^ flagAlive)
	})
	return alive
}
