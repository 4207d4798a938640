package ookrx

// GapWidth is the interval between two successive rising edges, scaled to
// one byte: floor(µs / (1<<TimeScaling)). Its domain of interest is 0-255
// slots (roughly 0-8160µs); any true interval at or above PacketGapTimeout
// is a packet delimiter and is never represented as a GapWidth.
type GapWidth uint8

// NewGapWidth scales a measured gap duration into a GapWidth. ok is false
// iff d is at or above PacketGapTimeout, meaning the caller is looking at a
// delimiter, not a sample.
func NewGapWidth(d Micros) (width GapWidth, ok bool) {
	if d >= PacketGapTimeout {
		return 0, false
	}
	return GapWidth(d >> TimeScaling), true
}

// Raw returns the underlying scaled byte.
func (w GapWidth) Raw() uint8 { return uint8(w) }
