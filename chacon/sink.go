package chacon

import (
	"fmt"
	"strings"

	"github.com/sparques/ookrx"
)

// DumpBuffer renders a received buffer's raw gap widths and timing for
// diagnostic logging, the host-side equivalent of the original firmware's
// Serial-attached dump(). timeReceived is the buffer's closing edge;
// now is the time Receive observed it.
func DumpBuffer(buf *ookrx.PacketBuffer, timeReceived, now ookrx.Micros) string {
	var b strings.Builder
	b.WriteString("gap widths:")
	n := buf.Size()
	if n > ookrx.RequiredGaps {
		n = ookrx.RequiredGaps
	}
	for p := uint8(0); p < n; p++ {
		if p%16 == 0 {
			b.WriteString("\n  ")
		}
		fmt.Fprintf(&b, " %d", buf.At(p).Raw())
	}
	fmt.Fprintf(&b, "\n  %dµs last rise\n  %dµs started receiving\n", timeReceived, now)
	return b.String()
}
