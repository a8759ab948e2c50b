package ay3

// interpolator is a 2nd-order (4-point) parabolic interpolator with cached
// coefficients, letting the same four-sample history be re-evaluated at
// many fractional positions cheaply — the common case of several
// oversampled positions falling between two chip ticks.
//
// See http://yehar.com/blog/wp-content/uploads/2009/08/deip.pdf for the
// derivation.
type interpolator struct {
	y  [4]float64
	c0 float64
	c1 float64
	c2 float64
}

// feed shifts a new sample into the interpolator's four-point history and
// recomputes the cached coefficients.
func (p *interpolator) feed(input float64) {
	p.y[0] = p.y[1]
	p.y[1] = p.y[2]
	p.y[2] = p.y[3]
	p.y[3] = input

	y1 := p.y[2] - p.y[0]

	p.c0 = 0.5*p.y[1] + 0.25*(p.y[0]+p.y[2])
	p.c1 = 0.5 * y1
	p.c2 = 0.25 * (p.y[3] - p.y[1] - y1)
}

// interpolate evaluates the cached parabola at fractional position x
// (expected in [0,1)).
func (p *interpolator) interpolate(x float64) float64 {
	return (p.c2*x+p.c1)*x + p.c0
}
