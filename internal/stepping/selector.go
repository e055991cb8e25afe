// SPDX-License-Identifier: GPL-3.0-only

package stepping

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAmbiguousMode is returned when more than one stepping mode is
// requested at once.
var ErrAmbiguousMode = errors.New("multiple stepping modes requested")

// BlendSpec holds the user-supplied blend curve parameters.
type BlendSpec struct {
	Ratio float64
	A     float64
	B     float64
}

// Selection is the user's stepping configuration, gathered from flags and
// the config file. At most one mode may be requested; when none is, the
// parabolic curve x^2 is used.
type Selection struct {
	Step      int
	Set       bool
	Linear    bool
	Geometric bool
	Parabolic *float64
	Blend     *BlendSpec
}

// ModeCount returns how many stepping modes the selection requests.
func (sel Selection) ModeCount() int {
	n := 0
	for _, requested := range []bool{
		sel.Set,
		sel.Linear,
		sel.Geometric,
		sel.Parabolic != nil,
		sel.Blend != nil,
	} {
		if requested {
			n++
		}
	}
	return n
}

// Strategy resolves the selection into exactly one fully-parameterized
// strategy, validating curve parameters along the way.
func (sel Selection) Strategy() (Strategy, error) {
	if sel.ModeCount() > 1 {
		return nil, ErrAmbiguousMode
	}
	switch {
	case sel.Set:
		return Absolute{Value: sel.Step}, nil
	case sel.Linear:
		return Linear{Step: sel.Step}, nil
	case sel.Geometric:
		return Geometric{Step: sel.Step}, nil
	case sel.Blend != nil:
		b, err := NewBlend(sel.Step, sel.Blend.Ratio, sel.Blend.A, sel.Blend.B)
		if err != nil {
			return nil, err
		}
		return b, nil
	case sel.Parabolic != nil:
		p, err := NewParabolic(sel.Step, *sel.Parabolic)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		p, err := NewParabolic(sel.Step, DefaultExponent)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// ParseBlendSpec parses a blend parameter triple of the form
// "(RATIO,A,B)", e.g. "(0.75,1.8,2.2)". The parentheses are optional.
func ParseBlendSpec(s string) (BlendSpec, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return BlendSpec{}, fmt.Errorf("%w: blend expects (RATIO,A,B), got %q", ErrInvalidParameter, s)
	}

	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BlendSpec{}, fmt.Errorf("%w: blend expects (RATIO,A,B), got %q", ErrInvalidParameter, s)
		}
		values[i] = v
	}
	return BlendSpec{Ratio: values[0], A: values[1], B: values[2]}, nil
}
