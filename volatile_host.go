//go:build !tinygo && !baremetal

// This file is built only for host-based testing. There is no ISR to race
// against on host, so regByte is a plain byte; tests exercise the ring's
// sequencing logic, not its concurrency primitives.
package ookrx

type regByte struct {
	v uint8
}

func (r *regByte) Get() uint8  { return r.v }
func (r *regByte) Set(v uint8) { r.v = v }
