// Package ay3 emulates the General Instrument AY-3-8910 Programmable Sound
// Generator and its popular clone, the Yamaha YM2149. These three-voice
// square-wave/noise/envelope chips powered many 1980s home computers,
// including the MSX family, the Sinclair ZX Spectrum, and the Atari ST.
//
// Typical clock rates for common machines:
//
//	Amstrad CPC:  1 MHz
//	Atari ST:     2 MHz
//	MSX:          1.7897725 MHz
//	Oric-1:       1 MHz
//	ZX Spectrum:  1.7734 MHz
//
// Construct a PSG with a clock rate and a sample rate, write some
// registers, then render:
//
//	psg, err := ay3.New(1789772.5, 44100)
//	if err != nil {
//		// clock rate too high for this sample rate
//	}
//
//	ch := psg.Channel(0)
//	ch.SetPeriod(254)
//	ch.SetAmplitude(15)
//	ch.SetToneDisabled(false)
//
//	for i := 0; i < 44100; i++ {
//		left, right := psg.Render()
//		// write left/right to an audio device or file
//	}
package ay3

// PSG emulates a complete AY-3-8910/YM2149 chip: three tone channels, one
// shared noise generator, one shared envelope generator, and the analog
// render pipeline (interpolation, anti-alias filtering, decimation, and DC
// blocking) that turns chip ticks into a band-limited stereo PCM stream at
// the requested output sample rate.
type PSG struct {
	channels          [3]Channel
	noiseGenerator    NoiseGenerator
	envelopeGenerator EnvelopeGenerator

	dacTable *[32]float64

	// x is the fractional clock accumulator; step is how much it
	// advances per 8x-oversampled position.
	x    float64
	step float64

	leftInterpolator  interpolator
	rightInterpolator interpolator

	leftDecimator  decimator
	rightDecimator decimator
	decimatorIndex int

	dcBlocker dcBlocker
}

// New initializes a PSG for the given chip clock rate (Hz) and output
// sample rate (Hz, typically 44100 or 48000).
//
// There is an upper bound on the clock rate supported for a given sample
// rate: clockRate must be strictly less than sampleRate*64. Exceeding this
// returns ErrClockRateTooHigh. For a 44100 Hz sample rate, the highest
// supported clock rate is 2.8224 MHz — comfortably above every common PSG
// clock rate listed in the package doc.
//
// The PSG defaults to emulating a Yamaha YM2149; call SetChipType to
// switch to the original AY-3-8910.
func New(clockRate float64, sampleRate int) (*PSG, error) {
	step := clockRate / (float64(sampleRate) * 8.0 * decimateFactor)

	if step >= 1.0 {
		return nil, ErrClockRateTooHigh
	}

	return &PSG{
		channels:          [3]Channel{newChannel(), newChannel(), newChannel()},
		noiseGenerator:    newNoiseGenerator(),
		envelopeGenerator: newEnvelopeGenerator(),
		dacTable:          YM.dacTable(),
		step:              step,
	}, nil
}

// SetChipType switches which digital-to-analog amplitude table the PSG
// uses. The table serves both fixed amplitudes and the envelope, so this
// changes the output levels of every channel; the YM2149's table also
// gives the envelope a higher resolution (32 levels versus 16 on the
// AY-3-8910). No other state is affected.
func (p *PSG) SetChipType(chipType ChipType) {
	p.dacTable = chipType.dacTable()
}

// Render produces the next output frame as a stereo pair. Each call
// advances the internal 8x-oversampled pipeline by exactly 8 intermediate
// positions, ticking the chip itself zero or more times as dictated by the
// fractional clock accumulator, so that over time the ratio of chip ticks
// to oversampled positions converges to clockRate/(sampleRate*64).
//
// Render is total: it never fails and never allocates.
func (p *PSG) Render() (left, right float64) {
	start := firSize - p.decimatorIndex*decimateFactor

	// modulo firSize/decimateFactor - 1 == 23
	p.decimatorIndex = (p.decimatorIndex + 1) % (firSize/decimateFactor - 1)

	// Fill the decimator buffers in descending order so that the
	// offset=0 slot holds the most recently produced oversample and the
	// FIR sees a coherent window. (Whether ascending order would produce
	// an identical result given the filter's symmetry is an open
	// question upstream; this implementation keeps descending order to
	// match the reference output exactly.)
	for offset := decimateFactor - 1; offset >= 0; offset-- {
		p.x += p.step

		if p.x >= 1.0 {
			p.x -= 1.0

			l, r := p.renderTick()
			p.leftInterpolator.feed(l)
			p.rightInterpolator.feed(r)
		}

		p.leftDecimator.buffer[start+offset] = p.leftInterpolator.interpolate(p.x)
		p.rightDecimator.buffer[start+offset] = p.rightInterpolator.interpolate(p.x)
	}

	return p.dcBlocker.render(
		p.leftDecimator.render(start),
		p.rightDecimator.render(start),
	)
}

// Channel returns the channel at the given index (0, 1, or 2).
func (p *PSG) Channel(index int) *Channel {
	return &p.channels[index]
}

// NoiseGenerator returns the PSG's shared noise generator.
func (p *PSG) NoiseGenerator() *NoiseGenerator {
	return &p.noiseGenerator
}

// EnvelopeGenerator returns the PSG's shared envelope generator.
func (p *PSG) EnvelopeGenerator() *EnvelopeGenerator {
	return &p.envelopeGenerator
}

// SetMixer applies the PSG's mixer register (register 7) to the three
// channels' tone/noise disable flags.
//
// Bit layout: bits 0-2 are tone-disable for channels 0-2 (1 disables),
// bits 3-5 are noise-disable for channels 0-2 (1 disables). Bits 6 and 7
// are the chip's GPIO in/out toggles and are ignored by this
// implementation.
func (p *PSG) SetMixer(mixer uint8) {
	p.channels[0].SetToneDisabled(mixer&0x01 != 0)
	p.channels[1].SetToneDisabled(mixer&0x02 != 0)
	p.channels[2].SetToneDisabled(mixer&0x04 != 0)
	p.channels[0].SetNoiseDisabled(mixer&0x08 != 0)
	p.channels[1].SetNoiseDisabled(mixer&0x10 != 0)
	p.channels[2].SetNoiseDisabled(mixer&0x20 != 0)
}

// SetRegister writes value to the given PSG register number, following the
// standard AY-3-8910/YM2149 register map:
//
//	 0,1  ch0 period LSB, MSB      8      ch0 amplitude+envelope-enable
//	 2,3  ch1 period LSB, MSB      9      ch1 amplitude+envelope-enable
//	 4,5  ch2 period LSB, MSB     10      ch2 amplitude+envelope-enable
//	 6    noise period            11,12   envelope period LSB, MSB
//	 7    mixer                   13      envelope shape
//	14,15 GPIO ports (ignored)
//
// Registers above 15 are silently ignored, matching real hardware's
// address decoding.
func (p *PSG) SetRegister(register uint8, value uint8) {
	switch register {
	case 0:
		p.channels[0].SetPeriodLSB(value)
	case 1:
		p.channels[0].SetPeriodMSB(value)
	case 2:
		p.channels[1].SetPeriodLSB(value)
	case 3:
		p.channels[1].SetPeriodMSB(value)
	case 4:
		p.channels[2].SetPeriodLSB(value)
	case 5:
		p.channels[2].SetPeriodMSB(value)
	case 6:
		p.noiseGenerator.SetPeriod(value)
	case 7:
		p.SetMixer(value)
	case 8:
		p.channels[0].SetAmplitudeAndEnvelopeEnabled(value)
	case 9:
		p.channels[1].SetAmplitudeAndEnvelopeEnabled(value)
	case 10:
		p.channels[2].SetAmplitudeAndEnvelopeEnabled(value)
	case 11:
		p.envelopeGenerator.SetPeriodLSB(value)
	case 12:
		p.envelopeGenerator.SetPeriodMSB(value)
	case 13:
		p.envelopeGenerator.SetShape(value)
	case 14, 15:
		// GPIO port data stores; ignored by this implementation.
	}
}
