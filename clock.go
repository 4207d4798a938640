package ookrx

// Micros is a free-running microsecond counter reading. It wraps every
// 1<<32 microseconds (~71.6 minutes); callers that need a true elapsed
// duration rather than a modular one should keep intervals well under
// 1<<31 microseconds, per DurationFromTo's contract.
type Micros uint32

// DurationFromTo returns later-early in modular 32-bit arithmetic. The
// result is the correct elapsed duration whenever the true elapsed time is
// strictly less than 1<<32 microseconds; it cannot by itself distinguish
// "early is in the past" from "early is in the future by more than 1<<31
// microseconds" — callers that care inspect the high bit of the result.
func DurationFromTo(early, later Micros) Micros {
	return later - early
}

// Clock is the one hardware contract the core depends on: a free-running
// unsigned 32-bit microsecond counter. Implementations must never block.
type Clock interface {
	Now() Micros
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() Micros

// Now implements Clock.
func (f ClockFunc) Now() Micros { return f() }

// FakeClock is a settable Clock for tests and host tooling; it is exported
// rather than confined to a _test.go file.
type FakeClock struct {
	At Micros
}

// Now implements Clock.
func (c *FakeClock) Now() Micros { return c.At }

// Advance moves the clock forward by d microseconds, wrapping as real
// hardware counters do.
func (c *FakeClock) Advance(d Micros) { c.At += d }
