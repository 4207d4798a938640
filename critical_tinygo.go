//go:build tinygo || baremetal

// This file is built only for embedded targets, where interrupts are a
// real hardware concept to disable around a critical section.
package ookrx

import "runtime/interrupt"

// criticalSection disables interrupts for the duration of f and guarantees
// re-enabling them on every exit path, including a panic inside f. It is
// the mechanism behind the ring's short producer/consumer decision
// windows — a handful of comparisons — never around callbacks or the
// demodulator.
func criticalSection(f func()) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	f()
}
