package stepping

// Geometric changes the current brightness by a percentage of itself, so
// repeated steps compound multiplicatively.
type Geometric struct {
	Step int
}

// Calculate returns current scaled by (1 + step/100). A step of 0 is a
// no-op.
func (s Geometric) Calculate(current, _ int) (float64, error) {
	return float64(current) * (1 + float64(s.Step)/100), nil
}
