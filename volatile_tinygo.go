//go:build tinygo || baremetal

package ookrx

import "runtime/volatile"

// regByte wraps a volatile.Register8: the ring's incoming/outgoing/flags
// bytes are touched from both the rising-edge interrupt and the main loop,
// so the compiler must never cache a read or reorder a write across that
// boundary, the same concern tdunning-go-wspr's DMA/ISR code guards with
// volatile.Register32 fields.
type regByte struct {
	reg volatile.Register8
}

func (r *regByte) Get() uint8  { return r.reg.Get() }
func (r *regByte) Set(v uint8) { r.reg.Set(v) }
