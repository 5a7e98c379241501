package timeline

import "math"

const (
	MinZoom     = 50.0
	MaxZoom     = 200.0
	DefaultZoom = 100.0
	ZoomStep    = 10.0
	// wheelDivisor scales a wheel delta into zoom percent.
	wheelDivisor = 10.0
)

func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return DefaultZoom
	}
	return math.Min(MaxZoom, math.Max(MinZoom, zoom))
}

// WheelZoom applies a wheel event. Without the modifier key the wheel
// scrolls instead, so the zoom is returned unchanged.
func WheelZoom(current, deltaY float64, modifier bool) float64 {
	if !modifier {
		return ClampZoom(current)
	}
	return ClampZoom(current - deltaY/wheelDivisor)
}

// StepZoom moves the zoom by whole steps, positive to zoom in.
func StepZoom(current float64, steps int) float64 {
	return ClampZoom(current + float64(steps)*ZoomStep)
}
