// SPDX-License-Identifier: GPL-3.0-only

package stepping

import (
	"fmt"
	"math"
)

// maxBisectIterations caps the bisection loop. Well-formed parameters
// converge within a few dozen iterations; the cap guards against
// pathological curves (a or b near zero) looping forever.
const maxBisectIterations = 64

// Blend maps the current brightness onto a weighted combination of two
// perceptual curves,
//
//	h(x) = ratio*x^a + (1-ratio)*(1-(1-x)^(1/b))
//
// and advances the position by Step percent. h has a closed-form
// evaluation but no closed-form inverse, so the current position is
// located by bisection between the component curves' own inverses.
// Recommended parameters are ratio=0.75, a=1.8, b=2.2.
type Blend struct {
	Step  int
	Ratio float64
	A     float64
	B     float64
}

// NewBlend validates the curve parameters. The component exponents must
// be positive so their reciprocals exist, and the ratio must stay within
// [0, 1] to keep h a convex combination of the two curves.
func NewBlend(step int, ratio, a, b float64) (Blend, error) {
	if a <= 0 || b <= 0 {
		return Blend{}, fmt.Errorf("%w: blend exponents must be > 0, got a=%v b=%v", ErrInvalidParameter, a, b)
	}
	if ratio < 0 || ratio > 1 {
		return Blend{}, fmt.Errorf("%w: blend ratio must be in [0,1], got %v", ErrInvalidParameter, ratio)
	}
	return Blend{Step: step, Ratio: ratio, A: a, B: b}, nil
}

// Calculate locates the current position on the combined curve, advances
// it by Step percent, and evaluates the curve at the new position.
func (s Blend) Calculate(current, max int) (float64, error) {
	// The saturated ends have known answers, and evaluating (1-x)^(1/b)
	// at x=1 with b < 1 is ill-conditioned.
	if current >= max && s.Step > 0 {
		return float64(max), nil
	}
	if current <= 0 && s.Step < 0 {
		return 0, nil
	}

	f := func(x float64) float64 { return math.Pow(x, s.A) }
	g := func(x float64) float64 { return 1 - math.Pow(1-x, 1/s.B) }
	h := func(x float64) float64 { return s.Ratio*f(x) + (1-s.Ratio)*g(x) }

	p := float64(current) / float64(max)
	fInv := math.Pow(p, 1/s.A)
	gInv := 1 - math.Pow(1-p, s.B)

	// h is a convex combination of two monotonic curves, so the root of
	// h(x) = p lies between the components' individual inverses.
	lo := math.Min(fInv, gInv)
	hi := math.Max(fInv, gInv)
	x := s.Ratio*fInv + (1-s.Ratio)*gInv

	// Tolerance of one device unit on the normalized curve, so behavior
	// is stable whether max is 255 or in the thousands.
	tol := 1 / float64(max)
	converged := false
	for i := 0; i < maxBisectIterations; i++ {
		diff := h(x) - p
		if math.Abs(diff) <= tol {
			converged = true
			break
		}
		if diff > 0 {
			hi = x
		} else {
			lo = x
		}
		x = lo + (hi-lo)/2
	}
	if !converged {
		return 0, fmt.Errorf("%w: ratio=%v a=%v b=%v after %d iterations",
			ErrDiverged, s.Ratio, s.A, s.B, maxBisectIterations)
	}

	x = clampUnit(x + float64(s.Step)/100)
	return float64(max) * h(x), nil
}
