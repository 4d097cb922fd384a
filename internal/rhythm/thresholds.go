package rhythm

// Thresholds holds the classification policy for pause, burst, and
// hesitation detection. All durations are in seconds. The algorithms take
// this structure explicitly so the policy can be swapped without touching
// them.
type Thresholds struct {
	// ShortPauseMin/ShortPauseMax bound the short pause window [min, max).
	ShortPauseMin float64
	ShortPauseMax float64

	// MediumPauseMin/MediumPauseMax bound the medium pause window [min, max).
	MediumPauseMin float64
	MediumPauseMax float64

	// LongPauseMin is the lower bound of the long pause window.
	LongPauseMin float64

	// HesitationMin is the minimum interval counted as a hesitation.
	HesitationMin float64

	// BurstIntervalMax is the interval below which a keystroke extends a
	// burst (exclusive).
	BurstIntervalMax float64

	// BurstMinLength is the minimum number of intervals for a burst segment
	// to be reported.
	BurstMinLength int
}

// DefaultThresholds returns the standard classification policy.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortPauseMin:    2.0,
		ShortPauseMax:    5.0,
		MediumPauseMin:   5.0,
		MediumPauseMax:   15.0,
		LongPauseMin:     15.0,
		HesitationMin:    3.0,
		BurstIntervalMax: 0.15,
		BurstMinLength:   5,
	}
}
