// Package pitch provides companion math helpers for converting between
// frequencies, MIDI pitch numbers, and AY-3-8910/YM2149 tone or envelope
// periods. These are convenience functions for callers building music
// production or emulation software on top of package ay3 — they are not
// part of the PSG chip's own render pipeline.
package pitch

import "math"

// MIDIToFrequency converts a MIDI pitch number into its corresponding
// frequency in Hz. The pitch number need not be an integer.
func MIDIToFrequency(pitch float64) float64 {
	return math.Pow(2.0, (pitch-69.0)/12.0) * 440.0
}

// FrequencyToMIDI converts a frequency in Hz to its corresponding MIDI
// pitch number. The result is not guaranteed to be an integer.
func FrequencyToMIDI(frequency float64) float64 {
	return math.Log2(frequency/440.0)*12.0 + 69.0
}

// MIDIToTonePeriod converts a MIDI pitch number into a tone period value
// suitable for Channel.SetPeriod, for the given chip clock rate.
func MIDIToTonePeriod(pitch, clockRate float64) uint16 {
	return FrequencyToTonePeriod(MIDIToFrequency(pitch), clockRate)
}

// MIDIToEnvelopePeriod converts a MIDI pitch number into an envelope
// period value suitable for EnvelopeGenerator.SetPeriod, for the given
// chip clock rate.
func MIDIToEnvelopePeriod(pitch, clockRate float64) uint16 {
	return FrequencyToEnvelopePeriod(MIDIToFrequency(pitch), clockRate)
}

// TonePeriodToMIDI converts a tone period value into its corresponding
// MIDI pitch number for the given chip clock rate. The result is not
// guaranteed to be an integer.
func TonePeriodToMIDI(period uint16, clockRate float64) float64 {
	return FrequencyToMIDI(TonePeriodToFrequency(period, clockRate))
}

// EnvelopePeriodToMIDI converts an envelope period value into its
// corresponding MIDI pitch number for the given chip clock rate. The
// result is not guaranteed to be an integer.
func EnvelopePeriodToMIDI(period uint16, clockRate float64) float64 {
	return FrequencyToMIDI(EnvelopePeriodToFrequency(period, clockRate))
}

// FrequencyToTonePeriod converts a frequency in Hz into its corresponding
// tone period for the given chip clock rate. The tone generator's period
// unit is the clock period multiplied by 16 (the PSG's internal frequency
// divider).
func FrequencyToTonePeriod(frequency, clockRate float64) uint16 {
	return uint16(math.Round(clockRate / (16.0 * frequency)))
}

// FrequencyToEnvelopePeriod converts a frequency in Hz into its
// corresponding envelope period for the given chip clock rate. The
// envelope generator's period unit is the clock period multiplied by 256.
func FrequencyToEnvelopePeriod(frequency, clockRate float64) uint16 {
	return uint16(math.Round(clockRate / (256.0 * frequency)))
}

// TonePeriodToFrequency converts a tone period value into its
// corresponding frequency in Hz for the given chip clock rate.
func TonePeriodToFrequency(period uint16, clockRate float64) float64 {
	return clockRate / (float64(period) * 16.0)
}

// EnvelopePeriodToFrequency converts an envelope period value into its
// corresponding frequency in Hz for the given chip clock rate.
func EnvelopePeriodToFrequency(period uint16, clockRate float64) float64 {
	return clockRate / (float64(period) * 256.0)
}
