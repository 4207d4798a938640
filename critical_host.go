//go:build !tinygo && !baremetal

// This file is built only for host-based testing, where there is no
// interrupt controller to disable; f simply runs. Host tests drive the
// producer and consumer from the same goroutine, so there is no actual
// concurrency to guard against here.
package ookrx

func criticalSection(f func()) {
	f()
}
