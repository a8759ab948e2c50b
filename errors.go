package ay3

import "errors"

// ErrClockRateTooHigh is returned by New when the requested clock rate is
// too high to represent for the given sample rate: the PSG's internal
// 8x-oversampled clock-ratio accumulator would advance by one or more
// whole steps per oversampled position, which the render pipeline cannot
// represent. The construction predicate is exactly
// clockRate/(sampleRate*64) >= 1.0.
var ErrClockRateTooHigh = errors.New("ay3: clock rate too high for sample rate")
