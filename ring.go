package ookrx

// Ring is the exported, platform-independent handle onto a gapTracker. It
// is what Device drives with real pin interrupts, and what host tooling
// (replaying a captured trace, or a test) drives directly with synthetic
// timestamps — the producer/consumer algorithm itself never depends on
// where "now" or "a rising edge" actually come from.
type Ring struct {
	tracker gapTracker
}

// Setup resets the ring to its power-on state.
func (r *Ring) Setup() {
	r.tracker.setup()
}

// HandleRise is the producer entry point; see gapTracker.HandleRise.
func (r *Ring) HandleRise(now Micros) RingNotice {
	return r.tracker.HandleRise(now)
}

// DrainOne is the consumer entry point; see gapTracker.DrainOne.
func (r *Ring) DrainOne(now Micros, cb func(*PacketBuffer)) bool {
	return r.tracker.DrainOne(now, cb)
}

// HasBeenAlive reports and clears the liveness flag.
func (r *Ring) HasBeenAlive() bool {
	return r.tracker.HasBeenAlive()
}
