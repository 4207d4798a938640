package chacon

import "github.com/sparques/ookrx"

// Gap width thresholds, in the same >>5 µs units PacketBuffer stores.
// A narrow gap is one half-bit; a wide gap is the other half, whichever
// of the pair encodes the bit's value depends on how many narrow gaps
// immediately preceded it.
const (
	MinNarrowGapWidth = 12
	MaxNarrowGapWidth = 24
	MinWideGapWidth   = 40

	// Preamble width bounds, same units as every other gap. g[0] is the
	// long idle-to-first-edge gap that opens a frame, not a bit gap.
	MinPreamble = 60
	MaxPreamble = 120
)

// Decode attempts to turn buf into a 32-bit Chacon payload. withConviction
// suppresses notices when false: a buffer captured while the train tracker
// is still settling down is expected to look wrong (it's the tail end of
// the previous repeat bleeding into a new one) and logging it would just
// be noise. Decode never panics; every malformed buffer yields ok=false.
func Decode(buf *ookrx.PacketBuffer, withConviction bool, sink EventSink) (Payload, bool) {
	notice := func(tag NoticeTag, count uint8, detail string) {
		if withConviction {
			sink.Notice(tag, count, detail)
		}
	}

	n := buf.Size()
	switch {
	case n == ookrx.RequiredGaps:
		// exact count, proceed
	case n == ookrx.RequiredGaps-1:
		notice(NoticeMissing1Gap, n, "one gap short of a full frame")
		return 0, false
	case n == ookrx.RequiredGaps-2:
		notice(NoticeMissing2Gaps, n, "two gaps short of a full frame")
		return 0, false
	case n > ookrx.RequiredGaps:
		notice(NoticeExcessGaps, n, "more gaps than a frame holds")
		return 0, false
	default:
		notice(NoticeMissingNGaps, n, "frame too short to be salvaged")
		return 0, false
	}

	preamble := buf.At(0).Raw()
	if preamble < MinPreamble || preamble > MaxPreamble {
		notice(NoticeInvalidPreamble, preamble, "preamble width outside the expected range")
		return 0, false
	}

	var (
		bits          uint32
		bitcount      uint8
		adjacent      uint8
		spacingErrors uint8
		bitErrors     uint8
	)

	for p := uint8(1); p < n; p++ {
		w := buf.At(p).Raw()
		if w < MinWideGapWidth {
			adjacent++
			if w < MinNarrowGapWidth {
				spacingErrors++
			}
			if w > MaxNarrowGapWidth {
				spacingErrors++
			}
			continue
		}
		parity := uint8(bits & 1)
		bit := 1 + parity - adjacent
		if bit > 1 {
			bitErrors++
		}
		bits = bits<<1 | uint32(bit&1)
		bitcount++
		adjacent = 0
	}

	switch {
	case spacingErrors > 0:
		notice(NoticeWrongPeakSpacing, spacingErrors, "a gap fell outside both the narrow and wide bands")
		return 0, false
	case bitErrors > 0:
		notice(NoticeWrongAdjacentPeakCount, bitErrors, "a bit's adjacent-narrow count disagreed with its parity")
		return 0, false
	case bitcount != 32:
		notice(NoticeWrongBitCount, bitcount, "decoded bit count was not 32")
		return 0, false
	case adjacent != uint8(bits&1):
		notice(NoticeWrongParity, adjacent, "trailing adjacent-narrow count did not match the word's parity")
		return 0, false
	}

	return Payload(bits), true
}
