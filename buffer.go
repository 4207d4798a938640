package ookrx

// PacketBuffer holds the gap pattern recorded between one packet delimiter
// and the next (or the finality timeout). gapsSeen saturates at 255 and may
// legitimately exceed RequiredGaps — that means "too many gaps", a protocol
// error the demodulator reports — but only the first RequiredGaps samples
// are ever stored; widths beyond that are counted, not kept.
type PacketBuffer struct {
	LastEdge Micros
	widths   [RequiredGaps]GapWidth
	gapsSeen uint8
}

// ResetStart clears the gap count and records the timestamp of the edge
// that opens this buffer.
func (b *PacketBuffer) ResetStart(now Micros) {
	b.gapsSeen = 0
	b.LastEdge = now
}

// Append records one more gap sample. The count always increases
// (saturating at 255); the sample itself is stored only while there is
// still room in widths.
func (b *PacketBuffer) Append(w GapWidth) {
	if b.gapsSeen < RequiredGaps {
		b.widths[b.gapsSeen] = w
	}
	if b.gapsSeen < 255 {
		b.gapsSeen++
	}
}

// Size returns the number of gaps seen since the buffer was opened,
// saturating at 255; it may be larger than RequiredGaps.
func (b *PacketBuffer) Size() uint8 { return b.gapsSeen }

// At returns the i'th recorded gap width. i must be less than min(Size(),
// RequiredGaps); callers that only ever look at complete buffers (Size() ==
// RequiredGaps) can index 0..RequiredGaps safely.
func (b *PacketBuffer) At(i uint8) GapWidth { return b.widths[i] }
