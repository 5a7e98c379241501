package timeline

import "math"

func floorDiv(v, step float64) int {
	return int(math.Floor(v / step))
}

// DayDelta converts a horizontal pointer displacement into whole days.
// Halves round toward positive infinity, as pointer math in browsers does.
func DayDelta(dx, dayWidth float64) int {
	if dayWidth <= 0 {
		return 0
	}
	return int(math.Floor(dx/dayWidth + 0.5))
}
