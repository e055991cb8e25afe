package stepping

// Absolute sets the brightness to a fixed raw value, ignoring the current
// and maximum readings entirely.
type Absolute struct {
	Value int
}

// Calculate returns the configured target value verbatim.
func (s Absolute) Calculate(_, _ int) (float64, error) {
	return float64(s.Value), nil
}
