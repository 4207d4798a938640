package chacon

import "github.com/sparques/ookrx"

// TrainTimeout exceeds any intra-train gap (a button press sends roughly
// five repeats over ~50 ms) but is short relative to how fast a human can
// press the same button twice.
const TrainTimeout ookrx.Micros = 328000

// TrainTracker de-duplicates the repeat train a single button press
// produces and tells the demodulator when it should keep quiet about
// notices from packets garbled by the application's own response to an
// earlier repeat in the same train.
type TrainTracker struct {
	lastPayload Payload
	hasPayload  bool
	lastEvent   ookrx.Micros
	hasEvent    bool
}

// Setup resets the tracker as of now.
func (t *TrainTracker) Setup(now ookrx.Micros) {
	t.hasPayload = false
	t.lastEvent = now
	t.hasEvent = true
}

// IsSettlingDown reports whether we are still within TrainTimeout of the
// last surfaced event (or of Setup, until a payload surfaces), i.e. a
// repeat of the same press is still plausible.
func (t *TrainTracker) IsSettlingDown(now ookrx.Micros) bool {
	return t.hasEvent && ookrx.DurationFromTo(t.lastEvent, now) < TrainTimeout
}

// Handle reports whether payload is fresh. A payload identical to the last
// one surfaced, seen while still settling down, is a repeat and is
// suppressed; lastPayload/lastEvent are left untouched so the settling
// window stays anchored to the last surfaced event rather than sliding
// forward with every repeat. Anything else is fresh and becomes the new
// last-surfaced event.
func (t *TrainTracker) Handle(payload Payload, now ookrx.Micros) bool {
	if t.hasPayload && t.IsSettlingDown(now) && t.lastPayload == payload {
		return false
	}
	t.lastPayload = payload
	t.hasPayload = true
	t.lastEvent = now
	t.hasEvent = true
	return true
}

// CatchUp forgets a stale lastEvent once it has aged past the point where
// duration_from_to could no longer tell a genuine elapsed TrainTimeout
// apart from one that only looks that way because the clock wrapped.
func (t *TrainTracker) CatchUp(now ookrx.Micros) {
	if t.hasEvent && ookrx.DurationFromTo(t.lastEvent, now) >= 1<<31 {
		t.hasEvent = false
	}
}
