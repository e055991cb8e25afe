package stepping

import (
	"fmt"
	"math"
)

// DefaultExponent is the parabolic curve used when no stepping mode is
// configured.
const DefaultExponent = 2.0

// Parabolic maps the current brightness onto the power-law curve
// x^exponent, advances the position by Step percent, and maps back. The
// default exponent of 2 approximates perceived brightness on typical
// panels.
type Parabolic struct {
	Step     int
	Exponent float64
}

// NewParabolic validates the curve exponent. An exponent of zero has no
// reciprocal and is rejected here, at configuration time.
func NewParabolic(step int, exponent float64) (Parabolic, error) {
	if exponent <= 0 {
		return Parabolic{}, fmt.Errorf("%w: parabolic exponent must be > 0, got %v", ErrInvalidParameter, exponent)
	}
	return Parabolic{Step: step, Exponent: exponent}, nil
}

// Calculate advances the normalized curve position by Step percent and
// scales the result back to raw device units.
func (s Parabolic) Calculate(current, max int) (float64, error) {
	pos := math.Pow(float64(current)/float64(max), 1/s.Exponent)
	pos = clampUnit(pos + float64(s.Step)/100)
	return float64(max) * math.Pow(pos, s.Exponent), nil
}
