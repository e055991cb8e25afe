// SPDX-License-Identifier: GPL-3.0-only

// Package brightness bounds raw stepping results into valid device
// values and provides display helpers.
package brightness

import "math"

// Clamp rounds raw to the nearest integer (half up) and bounds the
// result into [min, max]. min is the user-supplied floor, max the device
// hardware ceiling. NaN is treated as the floor.
func Clamp(raw float64, min, max int) int {
	if math.IsNaN(raw) || raw <= float64(min) {
		return min
	}
	if raw >= float64(max) {
		return max
	}
	return int(math.Floor(raw + 0.5))
}

// Percent expresses current relative to max as a percentage.
func Percent(current, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(current) / float64(max) * 100
}
