package brightness_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/licht-go/licht/internal/brightness"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		min      int
		max      int
		expected int
	}{
		{name: "value within range is rounded", raw: 65.14, min: 0, max: 100, expected: 65},
		{name: "half rounds up", raw: 65.5, min: 0, max: 100, expected: 66},
		{name: "just below half rounds down", raw: 65.49, min: 0, max: 100, expected: 65},
		{name: "value far above max is clamped to max", raw: 1255, min: 0, max: 255, expected: 255},
		{name: "negative value is clamped to the floor", raw: -50, min: 5, max: 255, expected: 5},
		{name: "value below floor is clamped to floor", raw: 3.2, min: 5, max: 255, expected: 5},
		{name: "exact max is preserved", raw: 255, min: 0, max: 255, expected: 255},
		{name: "exact min is preserved", raw: 0, min: 0, max: 255, expected: 0},
		{name: "rounding cannot exceed max", raw: 254.9, min: 0, max: 255, expected: 255},
		{name: "NaN falls to the floor", raw: math.NaN(), min: 5, max: 255, expected: 5},
		{name: "positive infinity is clamped to max", raw: math.Inf(1), min: 0, max: 255, expected: 255},
		{name: "negative infinity is clamped to min", raw: math.Inf(-1), min: 0, max: 255, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := brightness.Clamp(tt.raw, tt.min, tt.max)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 50.0, brightness.Percent(500, 1000), 1e-9)
	assert.InDelta(t, 100.0, brightness.Percent(255, 255), 1e-9)
	assert.InDelta(t, 0.0, brightness.Percent(0, 255), 1e-9)
	assert.Equal(t, 0.0, brightness.Percent(10, 0), "zero max must not divide by zero")
}
