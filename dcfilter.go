package ay3

// dcFilterSize is the length of the DC blocker's moving-average window.
// Must be a power of two so the ring index can advance with a bitmask
// instead of a modulo.
const dcFilterSize = 1024

// dcBlocker removes residual DC offset from a stereo signal using a
// moving-average high-pass filter: the running mean of the last
// dcFilterSize samples is subtracted from the current sample.
type dcBlocker struct {
	leftSum, rightSum     float64
	leftDelay, rightDelay [dcFilterSize]float64
	index                 int
}

// render filters one stereo input frame and returns the DC-corrected
// frame.
func (f *dcBlocker) render(left, right float64) (outLeft, outRight float64) {
	f.leftSum += -f.leftDelay[f.index] + left
	f.rightSum += -f.rightDelay[f.index] + right

	f.leftDelay[f.index] = left
	f.rightDelay[f.index] = right

	f.index = (f.index + 1) & (dcFilterSize - 1)

	return left - f.leftSum*(1.0/dcFilterSize), right - f.rightSum*(1.0/dcFilterSize)
}
