package ay3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeGenerator_InitialState(t *testing.T) {
	e := newEnvelopeGenerator()
	assert.Equal(t, uint16(1), e.Period())
	assert.Equal(t, uint8(0), e.Shape())
}

func TestEnvelopeGenerator_SetPeriod_ClampsToOne(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(0)
	assert.Equal(t, uint16(1), e.Period())
}

func TestEnvelopeGenerator_SetPeriodMSBLSB_PreserveOtherHalf(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriodLSB(0xAB)
	e.SetPeriodMSB(0x01)
	assert.Equal(t, uint16(0x1AB), e.Period())
	assert.Equal(t, uint8(0x01), e.PeriodMSB())
	assert.Equal(t, uint8(0xAB), e.PeriodLSB())
}

func TestEnvelopeGenerator_SetShape_MasksTo4BitsAndResets(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(2)
	e.render()
	e.render()

	e.SetShape(0xFF)
	assert.Equal(t, uint8(0x0F), e.Shape())
	// Shape 0x0F starts with a SlideUp segment, so the value reseeds to 0.
	assert.Equal(t, uint8(0), e.value)
}

func TestEnvelopeGenerator_Shape0_SlideDownThenHoldBottom(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(1)
	e.SetShape(0)

	assert.Equal(t, uint8(31), e.value)

	var values []uint8
	for i := 0; i < 34; i++ {
		values = append(values, e.render())
	}

	for i := 0; i < 31; i++ {
		assert.Equal(t, uint8(30-i), values[i])
	}
	for i := 31; i < 34; i++ {
		assert.Equal(t, uint8(0), values[i])
	}
}

func TestEnvelopeGenerator_Shape8_SlideDownRepeats(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(1)
	e.SetShape(8)

	for i := 0; i < 31; i++ {
		e.render()
	}
	// After exactly one full ramp the sawtooth shape must restart at 31.
	assert.Equal(t, uint8(31), e.render())
}

func TestEnvelopeGenerator_Shape12_SlideUpRepeats(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(1)
	e.SetShape(12)

	assert.Equal(t, uint8(0), e.value)

	for i := 0; i < 31; i++ {
		e.render()
	}
	// One full ascending ramp; the shape restarts at 0.
	assert.Equal(t, uint8(0), e.render())
}

func TestEnvelopeGenerator_Shape11_SlideDownThenHoldTop(t *testing.T) {
	e := newEnvelopeGenerator()
	e.SetPeriod(1)
	e.SetShape(11)

	for i := 0; i < 31; i++ {
		e.render()
	}
	// Segment transitions into HoldTop, whose resetSegment sets value to
	// 31 and then holds there indefinitely.
	assert.Equal(t, uint8(31), e.render())
	assert.Equal(t, uint8(31), e.render())
}
