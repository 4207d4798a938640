package ookrx

// Timing constants for the gap-tracking ring. Values are authoritative for
// the Chacon/DIO-style OOK protocol this receiver targets; they live here
// rather than in the chacon subpackage because the ring itself needs them to
// size buffers and classify gaps.
const (
	// RequiredGaps is the number of gaps between rising edges that make up
	// one valid packet: one preamble gap plus 64 bit-carrying gaps.
	RequiredGaps = 65

	// MinViableGaps is the minimum gap count below which a delimiter does
	// not advance the ring to a fresh buffer; short runs are treated as
	// noise rather than a truncated packet.
	MinViableGaps = 60

	// Buffers is the size of the ring.
	Buffers = 4

	// TimeScaling is the shift applied to a gap duration in microseconds to
	// produce a GapWidth slot; granularity is 1<<TimeScaling microseconds.
	TimeScaling = 5

	// PacketGapTimeout is the minimum duration, in microseconds, at which a
	// gap between rising edges is treated as a packet delimiter instead of
	// a sample.
	PacketGapTimeout Micros = 8192

	// PacketFinalTimeout is the silence, in microseconds, after the 65th
	// gap of a buffer that lets the consumer declare it final without
	// having seen a delimiter.
	PacketFinalTimeout Micros = 2048
)
