package stepping

// Linear adds the raw step value onto the current brightness. The step
// may be negative.
type Linear struct {
	Step int
}

// Calculate returns current + step.
func (s Linear) Calculate(current, _ int) (float64, error) {
	return float64(current) + float64(s.Step), nil
}
