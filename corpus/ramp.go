package corpus

// Ramp returns numLevels evenly spaced severities from min to max inclusive.
// numLevels of 1 degenerates to [min]. Non-positive numLevels yields nil.
func Ramp(numLevels int, min, max float64) []float64 {
	if numLevels <= 0 {
		return nil
	}
	if numLevels == 1 {
		return []float64{min}
	}

	step := (max - min) / float64(numLevels-1)
	levels := make([]float64, numLevels)
	for i := range levels {
		levels[i] = min + float64(i)*step
	}
	return levels
}
