// SPDX-License-Identifier: GPL-3.0-only

// Package stepping implements the brightness stepping models. Each model
// is a pure function of (current, max, step) that returns a new raw
// brightness value, unclamped and unrounded; callers bound the result
// with brightness.Clamp before writing it to a device.
package stepping

import (
	"errors"
	"math"
)

// Strategy computes a new raw brightness value from a device's current
// and maximum brightness. Exactly one strategy is active per invocation.
type Strategy interface {
	Calculate(current, max int) (float64, error)
}

// ErrInvalidParameter is returned when a curve parameter is outside its
// valid domain, e.g. a parabolic exponent of zero.
var ErrInvalidParameter = errors.New("invalid curve parameter")

// ErrDiverged is returned when the bisection search for the current curve
// position fails to converge within its iteration cap. It indicates
// malformed curve parameters rather than a transient condition.
var ErrDiverged = errors.New("curve position search did not converge")

// clampUnit bounds a normalized curve position to [0, 1].
func clampUnit(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
