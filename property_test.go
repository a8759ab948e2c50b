package ay3

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_ClockAccumulatorStaysInUnitInterval sweeps construction
// parameters and render counts, checking that the fractional clock
// accumulator never leaves [0,1) — the precondition every downstream
// interpolation step assumes.
func TestProperty_ClockAccumulatorStaysInUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sampleRate := rapid.IntRange(8000, 96000).Draw(t, "sampleRate")
		clockRate := rapid.Float64Range(100000, float64(sampleRate)*63.0).Draw(t, "clockRate")
		ticks := rapid.IntRange(0, 2000).Draw(t, "ticks")

		psg, err := New(clockRate, sampleRate)
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}

		for i := 0; i < ticks; i++ {
			psg.Render()

			if psg.x < 0 || psg.x >= 1.0 {
				t.Fatalf("clock accumulator left [0,1): x=%v", psg.x)
			}
		}
	})
}

// TestProperty_DecimatorIndexStaysInRange checks the decimator index cycles
// within its expected modulus for any sequence of render calls.
func TestProperty_DecimatorIndexStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ticks := rapid.IntRange(0, 500).Draw(t, "ticks")

		psg, err := New(1789772.5, 44100)
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}

		const modulus = firSize/decimateFactor - 1
		for i := 0; i < ticks; i++ {
			psg.Render()
			if psg.decimatorIndex < 0 || psg.decimatorIndex >= modulus {
				t.Fatalf("decimatorIndex out of range: %v", psg.decimatorIndex)
			}
		}
	})
}

// TestProperty_ConstructionRejectionBoundary checks the clock-rate
// rejection predicate matches step=clockRate/(sampleRate*64) >= 1.0 exactly
// across a spread of sample rates and clock rates.
func TestProperty_ConstructionRejectionBoundary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sampleRate := rapid.IntRange(4000, 192000).Draw(t, "sampleRate")
		clockRate := rapid.Float64Range(1, float64(sampleRate)*200.0).Draw(t, "clockRate")

		step := clockRate / (float64(sampleRate) * 8.0 * decimateFactor)

		_, err := New(clockRate, sampleRate)
		if step >= 1.0 {
			if err == nil {
				t.Fatalf("expected ErrClockRateTooHigh for step=%v", step)
			}
		} else {
			if err != nil {
				t.Fatalf("unexpected error for step=%v: %v", step, err)
			}
		}
	})
}

// TestProperty_PeriodAccessorsClampAndMask checks that every period/
// amplitude setter across Channel, NoiseGenerator, and EnvelopeGenerator
// honors its documented mask and minimum-clamp, for any raw input.
func TestProperty_PeriodAccessorsClampAndMask(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw16 := uint16(rapid.IntRange(0, 0xFFFF).Draw(t, "raw16"))
		raw8 := uint8(rapid.IntRange(0, 0xFF).Draw(t, "raw8"))

		ch := newChannel()
		ch.SetPeriod(raw16)
		if ch.Period() < 1 || ch.Period() > 0x0FFF {
			t.Fatalf("channel period out of range: %v", ch.Period())
		}

		ch.SetAmplitude(raw8)
		if ch.Amplitude() > 0x0F {
			t.Fatalf("channel amplitude out of range: %v", ch.Amplitude())
		}

		n := newNoiseGenerator()
		n.SetPeriod(raw8)
		if n.Period() < 1 || n.Period() > 0x1F {
			t.Fatalf("noise period out of range: %v", n.Period())
		}

		e := newEnvelopeGenerator()
		e.SetPeriod(raw16)
		if e.Period() < 1 {
			t.Fatalf("envelope period out of range: %v", e.Period())
		}

		e.SetShape(raw8)
		if e.Shape() > 0x0F {
			t.Fatalf("envelope shape out of range: %v", e.Shape())
		}
	})
}

// TestProperty_RenderNeverProducesNaNOrInf exercises a wide spread of
// register configurations and checks the output pipeline always produces
// finite samples.
func TestProperty_RenderNeverProducesNaNOrInf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		psg, err := New(1789772.5, 44100)
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}

		for reg := uint8(0); reg < 14; reg++ {
			value := uint8(rapid.IntRange(0, 0xFF).Draw(t, "regval"))
			psg.SetRegister(reg, value)
		}
		psg.SetRegister(13, uint8(rapid.IntRange(0, 15).Draw(t, "shape")))

		for i := 0; i < 200; i++ {
			left, right := psg.Render()
			if math.IsNaN(left) || math.IsNaN(right) || math.IsInf(left, 0) || math.IsInf(right, 0) {
				t.Fatalf("non-finite output: left=%v right=%v", left, right)
			}
		}
	})
}
