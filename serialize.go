package ay3

import (
	"encoding/binary"
	"errors"
	"math"
)

const serializeVersion = 1

// serializeSize is the fixed number of bytes Serialize writes and
// Deserialize expects: 1 version byte, three channels, the noise and
// envelope generators, the clock accumulator, both interpolators' 4-point
// histories and cached coefficients, both decimator FIR ring buffers, the
// shared decimator index, and the DC blocker's ring buffers and running
// sums.
const serializeSize = 1 + // version
	3*channelSerializeSize +
	noiseSerializeSize +
	envelopeSerializeSize +
	8 + // clock accumulator x
	2*interpolatorSerializeSize +
	2*(firSize*2*8) + // decimator ring buffers
	4 + // decimatorIndex
	dcBlockerSerializeSize

const channelSerializeSize = 2 + 2 + 1 + 1 + 1 + 1 + 1 + 8 + 8 // period, position, value, toneOff, noiseOff, envelopeOn, amplitude, panLeft, panRight
const noiseSerializeSize = 1 + 1 + 4                           // period, counter, value
const envelopeSerializeSize = 2 + 2 + 1 + 1 + 1                // position, period, shape, segment, value
const interpolatorSerializeSize = 4*8 + 3*8                    // y[4], c0/c1/c2
const dcBlockerSerializeSize = 8 + 8 + dcFilterSize*8 + dcFilterSize*8 + 4

// SerializeSize returns the number of bytes needed to hold a serialized
// snapshot of the PSG's state. The value is constant for the lifetime of a
// PSG and can be used to pre-allocate a reusable buffer.
func (p *PSG) SerializeSize() int {
	return serializeSize
}

// Serialize writes a complete snapshot of the PSG's mutable render state
// into buf in a compact little-endian binary format, suitable for save
// states, rewind buffers, or netplay synchronization. Returns an error if
// len(buf) < SerializeSize().
//
// The chip clock rate, sample rate, and chip type are not included — the
// caller restores those via New and SetChipType before calling
// Deserialize.
func (p *PSG) Serialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("ay3: serialize buffer too small")
	}

	off := 0
	buf[off] = serializeVersion
	off++

	for i := range p.channels {
		off = serializeChannel(&p.channels[i], buf, off)
	}
	off = serializeNoise(&p.noiseGenerator, buf, off)
	off = serializeEnvelope(&p.envelopeGenerator, buf, off)

	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(p.x))
	off += 8

	off = serializeInterpolator(&p.leftInterpolator, buf, off)
	off = serializeInterpolator(&p.rightInterpolator, buf, off)

	off = serializeDecimator(&p.leftDecimator, buf, off)
	off = serializeDecimator(&p.rightDecimator, buf, off)

	binary.LittleEndian.PutUint32(buf[off:], uint32(int32(p.decimatorIndex)))
	off += 4

	serializeDCBlocker(&p.dcBlocker, buf, off)

	return nil
}

// Deserialize restores the PSG's mutable render state from buf, which must
// have been produced by Serialize from a PSG constructed with the same
// clock rate and sample rate. Returns an error if the buffer is too small
// or was produced by an incompatible version.
func (p *PSG) Deserialize(buf []byte) error {
	if len(buf) < serializeSize {
		return errors.New("ay3: deserialize buffer too small")
	}
	if buf[0] != serializeVersion {
		return errors.New("ay3: unsupported serialize version")
	}

	off := 1

	for i := range p.channels {
		off = deserializeChannel(&p.channels[i], buf, off)
	}
	off = deserializeNoise(&p.noiseGenerator, buf, off)
	off = deserializeEnvelope(&p.envelopeGenerator, buf, off)

	p.x = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8

	off = deserializeInterpolator(&p.leftInterpolator, buf, off)
	off = deserializeInterpolator(&p.rightInterpolator, buf, off)

	off = deserializeDecimator(&p.leftDecimator, buf, off)
	off = deserializeDecimator(&p.rightDecimator, buf, off)

	p.decimatorIndex = int(int32(binary.LittleEndian.Uint32(buf[off:])))
	off += 4

	deserializeDCBlocker(&p.dcBlocker, buf, off)

	return nil
}

func serializeChannel(c *Channel, buf []byte, off int) int {
	binary.LittleEndian.PutUint16(buf[off:], c.period)
	off += 2
	binary.LittleEndian.PutUint16(buf[off:], c.position)
	off += 2
	buf[off] = c.value
	off++
	buf[off] = boolByte(c.toneOff)
	off++
	buf[off] = boolByte(c.noiseOff)
	off++
	buf[off] = boolByte(c.envelopeOn)
	off++
	buf[off] = c.amplitude
	off++
	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(c.panLeft))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(c.panRight))
	off += 8
	return off
}

func deserializeChannel(c *Channel, buf []byte, off int) int {
	c.period = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	c.position = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	c.value = buf[off]
	off++
	c.toneOff = buf[off] != 0
	off++
	c.noiseOff = buf[off] != 0
	off++
	c.envelopeOn = buf[off] != 0
	off++
	c.amplitude = buf[off]
	off++
	c.panLeft = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	c.panRight = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	return off
}

func serializeNoise(n *NoiseGenerator, buf []byte, off int) int {
	buf[off] = n.period
	off++
	buf[off] = n.counter
	off++
	binary.LittleEndian.PutUint32(buf[off:], n.value)
	off += 4
	return off
}

func deserializeNoise(n *NoiseGenerator, buf []byte, off int) int {
	n.period = buf[off]
	off++
	n.counter = buf[off]
	off++
	n.value = binary.LittleEndian.Uint32(buf[off:])
	off += 4
	return off
}

func serializeEnvelope(e *EnvelopeGenerator, buf []byte, off int) int {
	binary.LittleEndian.PutUint16(buf[off:], e.position)
	off += 2
	binary.LittleEndian.PutUint16(buf[off:], e.period)
	off += 2
	buf[off] = e.shape
	off++
	buf[off] = e.segment
	off++
	buf[off] = e.value
	off++
	return off
}

func deserializeEnvelope(e *EnvelopeGenerator, buf []byte, off int) int {
	e.position = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	e.period = binary.LittleEndian.Uint16(buf[off:])
	off += 2
	e.shape = buf[off]
	off++
	e.segment = buf[off]
	off++
	e.value = buf[off]
	off++
	return off
}

func serializeInterpolator(p *interpolator, buf []byte, off int) int {
	for _, v := range p.y {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	for _, v := range [3]float64{p.c0, p.c1, p.c2} {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	return off
}

func deserializeInterpolator(p *interpolator, buf []byte, off int) int {
	for i := range p.y {
		p.y[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
		off += 8
	}
	p.c0 = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	p.c1 = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	p.c2 = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	return off
}

func serializeDecimator(d *decimator, buf []byte, off int) int {
	for _, v := range d.buffer {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	return off
}

func deserializeDecimator(d *decimator, buf []byte, off int) int {
	for i := range d.buffer {
		d.buffer[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
		off += 8
	}
	return off
}

func serializeDCBlocker(f *dcBlocker, buf []byte, off int) int {
	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f.leftSum))
	off += 8
	binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f.rightSum))
	off += 8
	for _, v := range f.leftDelay {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	for _, v := range f.rightDelay {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
		off += 8
	}
	binary.LittleEndian.PutUint32(buf[off:], uint32(int32(f.index)))
	off += 4
	return off
}

func deserializeDCBlocker(f *dcBlocker, buf []byte, off int) int {
	f.leftSum = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	f.rightSum = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
	off += 8
	for i := range f.leftDelay {
		f.leftDelay[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
		off += 8
	}
	for i := range f.rightDelay {
		f.rightDelay[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
		off += 8
	}
	f.index = int(int32(binary.LittleEndian.Uint32(buf[off:])))
	off += 4
	return off
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
