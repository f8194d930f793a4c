package geometry

const (
	// MinOpacity is the most transparent a pinned window may become.
	MinOpacity = 0.1
	// MaxOpacity is fully opaque.
	MaxOpacity = 1.0
)

// ClampOpacity limits a to [MinOpacity, MaxOpacity].
func ClampOpacity(a float64) float64 {
	if a < MinOpacity {
		return MinOpacity
	}
	if a > MaxOpacity {
		return MaxOpacity
	}
	return a
}

// StepOpacity moves a by one step in the direction of dy. Positive dy makes
// the window more opaque, negative dy more transparent, zero leaves a as is.
func StepOpacity(a, dy, step float64) float64 {
	switch {
	case dy > 0:
		return ClampOpacity(a + step)
	case dy < 0:
		return ClampOpacity(a - step)
	default:
		return ClampOpacity(a)
	}
}
