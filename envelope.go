package ay3

// envelopeShape names one of the four segment primitives a PSG envelope
// program can be built from.
type envelopeShape int

const (
	slideDown envelopeShape = iota
	slideUp
	holdTop
	holdBottom
)

// envelopeTable holds all 16 PSG envelope shape programs. Each program is
// two segments; playback runs the first segment, then either repeats
// (oscillates) or transitions permanently into the second, depending on
// which primitive the second segment is.
var envelopeTable = [16][2]envelopeShape{
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideDown, slideDown},
	{slideDown, holdBottom},
	{slideDown, slideUp},
	{slideDown, holdTop},
	{slideUp, slideUp},
	{slideUp, holdTop},
	{slideUp, slideDown},
	{slideUp, holdBottom},
}

// EnvelopeGenerator produces the PSG's shared 5-bit envelope level,
// following one of the 16 shape programs in envelopeTable.
type EnvelopeGenerator struct {
	position uint16
	period   uint16
	shape    uint8
	segment  uint8
	value    uint8
}

func newEnvelopeGenerator() EnvelopeGenerator {
	return EnvelopeGenerator{period: 1}
}

// render advances the generator by one chip tick and returns its current
// 5-bit level.
func (e *EnvelopeGenerator) render() uint8 {
	e.position++

	if e.position >= e.period {
		e.position = 0

		switch envelopeTable[e.shape][e.segment] {
		case slideDown:
			if e.value == 0 {
				e.segment ^= 1
				e.resetSegment()
			} else {
				e.value--
			}
		case slideUp:
			if e.value >= 31 {
				e.segment ^= 1
				e.resetSegment()
			} else {
				e.value++
			}
		}
	}

	return e.value
}

// resetSegment sets the envelope's value based on the current segment's
// shape: 31 when the segment starts high (SlideDown, HoldTop), 0
// otherwise.
func (e *EnvelopeGenerator) resetSegment() {
	switch envelopeTable[e.shape][e.segment] {
	case slideDown, holdTop:
		e.value = 31
	default:
		e.value = 0
	}
}

// Period returns the envelope generator's period (1..=65535).
func (e *EnvelopeGenerator) Period() uint16 {
	return e.period
}

// SetPeriod sets the envelope generator's period, clamped to a minimum of
// 1.
func (e *EnvelopeGenerator) SetPeriod(period uint16) {
	if period < 1 {
		period = 1
	}
	e.period = period
}

// PeriodMSB returns the most significant byte of the envelope period.
func (e *EnvelopeGenerator) PeriodMSB() uint8 {
	return uint8(e.period >> 8)
}

// SetPeriodMSB sets the most significant byte of the envelope period,
// preserving the low byte. Setting this to zero while the low byte is also
// zero results in a period of 1; set the MSB first when writing both
// halves.
func (e *EnvelopeGenerator) SetPeriodMSB(period uint8) {
	p := (e.period & 0x00ff) | (uint16(period) << 8)
	if p < 1 {
		p = 1
	}
	e.period = p
}

// PeriodLSB returns the least significant byte of the envelope period.
func (e *EnvelopeGenerator) PeriodLSB() uint8 {
	return uint8(e.period & 0xff)
}

// SetPeriodLSB sets the least significant byte of the envelope period,
// preserving the high byte.
func (e *EnvelopeGenerator) SetPeriodLSB(period uint8) {
	p := (e.period & 0xff00) | uint16(period)
	if p < 1 {
		p = 1
	}
	e.period = p
}

// Shape returns the envelope generator's 4-bit shape selector (0..15).
func (e *EnvelopeGenerator) Shape() uint8 {
	return e.shape
}

// SetShape selects one of the 16 envelope shape programs, masked to 4
// bits, and resets the generator's position, segment, and value to start
// the new program from its beginning.
func (e *EnvelopeGenerator) SetShape(shape uint8) {
	e.shape = shape & 0x0f
	e.position = 0
	e.segment = 0
	e.resetSegment()
}
