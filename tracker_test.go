package ookrx

import "testing"

const testGapDur Micros = 1000

// feedPacket appends RequiredGaps samples followed by a delimiter, starting
// from now (which must already be the timestamp of the buffer's opening
// edge — either the tracker's very first edge, fed separately, or the
// delimiter edge that closed the previous packet). It returns the
// delimiter's notice and the timestamp of the delimiter edge.
func feedPacket(tr *gapTracker, now Micros) (RingNotice, Micros) {
	for i := 0; i < RequiredGaps; i++ {
		now += testGapDur
		tr.HandleRise(now)
	}
	now += PacketGapTimeout
	notice := tr.HandleRise(now)
	return notice, now
}

func TestGapTrackerDeliversCompleteBufferOnDelimiter(t *testing.T) {
	var tr gapTracker
	tr.setup()

	start := Micros(0)
	tr.HandleRise(start)
	notice, delimAt := feedPacket(&tr, start)
	if notice != NoticeNone {
		t.Fatalf("unexpected notice %v", notice)
	}
	wantLastEdge := delimAt - PacketGapTimeout

	var got PacketBuffer
	delivered := tr.DrainOne(delimAt, func(b *PacketBuffer) { got = *b })
	if !delivered {
		t.Fatal("expected a buffer to be delivered")
	}
	if got.Size() != RequiredGaps {
		t.Fatalf("Size() = %d, want %d", got.Size(), RequiredGaps)
	}
	if got.LastEdge != wantLastEdge {
		t.Fatalf("LastEdge = %d, want %d", got.LastEdge, wantLastEdge)
	}
	if tr.DrainOne(delimAt, func(*PacketBuffer) {}) {
		t.Fatal("expected nothing further to drain")
	}
}

func TestGapTrackerDeliversViaFinalityTimeoutWithoutDelimiter(t *testing.T) {
	var tr gapTracker
	tr.setup()

	now := Micros(0)
	tr.HandleRise(now)
	for i := 0; i < RequiredGaps; i++ {
		now += testGapDur
		tr.HandleRise(now)
	}
	lastEdge := now

	if tr.DrainOne(lastEdge+PacketFinalTimeout-1, func(*PacketBuffer) {}) {
		t.Fatal("delivered before PacketFinalTimeout elapsed")
	}

	var delivered bool
	ok := tr.DrainOne(lastEdge+PacketFinalTimeout, func(b *PacketBuffer) {
		delivered = true
		if b.Size() != RequiredGaps {
			t.Fatalf("Size() = %d, want %d", b.Size(), RequiredGaps)
		}
	})
	if !ok || !delivered {
		t.Fatal("expected delivery once PacketFinalTimeout elapsed")
	}

	// The next edge must start a fresh buffer (first_edge_seen was cleared
	// by the finality transition), not extend the delivered one.
	tr.HandleRise(lastEdge + PacketFinalTimeout + 100)
	if tr.buffers[tr.incoming.Get()].Size() != 0 {
		t.Fatalf("expected a fresh buffer after finality rollover, got size %d", tr.buffers[tr.incoming.Get()].Size())
	}
}

func TestGapTrackerNoiseBelowMinViableGapsDoesNotRotate(t *testing.T) {
	var tr gapTracker
	tr.setup()

	now := Micros(0)
	tr.HandleRise(now)
	for i := 0; i < int(MinViableGaps)-5; i++ {
		now += testGapDur
		tr.HandleRise(now)
	}
	beforeIncoming := tr.incoming.Get()
	now += PacketGapTimeout
	tr.HandleRise(now)
	if tr.incoming.Get() != beforeIncoming {
		t.Fatalf("incoming rotated on a sub-MinViableGaps run: %d -> %d", beforeIncoming, tr.incoming.Get())
	}
	if tr.buffers[tr.incoming.Get()].Size() != 0 {
		t.Fatalf("buffer not reset after noise delimiter: size %d", tr.buffers[tr.incoming.Get()].Size())
	}
}

func TestGapTrackerOverflowNoticeAndRecovery(t *testing.T) {
	var tr gapTracker
	tr.setup()

	now := Micros(0)
	tr.HandleRise(now)

	var lastNotice RingNotice
	for i := 0; i < Buffers; i++ {
		var notice RingNotice
		notice, now = feedPacket(&tr, now)
		lastNotice = notice
	}
	if lastNotice != NoticeRanOutOfBuffers {
		t.Fatalf("expected RanOutOfBuffers on the %dth packet's delimiter, got %v", Buffers, lastNotice)
	}

	// The delimiter that raised RanOutOfBuffers moved incoming onto
	// outgoing's slot and reset that buffer, so the oldest unread packet is
	// gone and, with incoming == outgoing, the ring reads as empty: nothing
	// is deliverable, not even through the finality-timeout fallback.
	if tr.DrainOne(now+PacketFinalTimeout, func(*PacketBuffer) {}) {
		t.Fatal("expected nothing deliverable right after RanOutOfBuffers")
	}

	// Recovery: the next complete packet is queued and delivered normally.
	notice, next := feedPacket(&tr, now)
	if notice != NoticeNone {
		t.Fatalf("unexpected notice %v on the packet after the overflow", notice)
	}
	delivered := tr.DrainOne(next, func(b *PacketBuffer) {
		if b.Size() != RequiredGaps {
			t.Fatalf("Size() = %d, want %d", b.Size(), RequiredGaps)
		}
		if want := next - PacketGapTimeout; b.LastEdge != want {
			t.Fatalf("LastEdge = %d, want %d", b.LastEdge, want)
		}
	})
	if !delivered {
		t.Fatal("expected the packet after the overflow to be delivered")
	}
}

func TestGapTrackerHasBeenAliveConsumesFlag(t *testing.T) {
	var tr gapTracker
	tr.setup()

	if tr.HasBeenAlive() {
		t.Fatal("alive before any edge")
	}
	tr.HandleRise(0)
	if !tr.HasBeenAlive() {
		t.Fatal("expected alive after an edge")
	}
	if tr.HasBeenAlive() {
		t.Fatal("HasBeenAlive did not clear the flag")
	}
}

func TestNextBufferWraps(t *testing.T) {
	if got := nextBuffer(Buffers - 1); got != 0 {
		t.Fatalf("nextBuffer(Buffers-1) = %d, want 0", got)
	}
	if got := nextBuffer(0); got != 1 {
		t.Fatalf("nextBuffer(0) = %d, want 1", got)
	}
}
