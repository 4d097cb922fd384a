package rhythm

// DetectBursts finds runs of unusually fast keystrokes in the interval
// sequence. An interval below th.BurstIntervalMax extends the current run;
// anything at or above it closes the run. Runs of at least th.BurstMinLength
// intervals are reported with their starting interval index and average
// speed in keystrokes per second. A run still open at the end of the
// sequence is reported too.
func DetectBursts(intervals []float64, th Thresholds) (count int, segments []BurstSegment, maxSpeed float64) {
	segments = make([]BurstSegment, 0)

	length := 0
	elapsed := 0.0
	start := 0

	flush := func() {
		if length >= th.BurstMinLength {
			speed := 0.0
			if elapsed > 0 {
				speed = float64(length) / elapsed
			}
			segments = append(segments, BurstSegment{Start: start, Length: length, AvgSpeed: roundTo(speed, 1)})
		}
		length = 0
		elapsed = 0
	}

	for i, v := range intervals {
		if v < th.BurstIntervalMax {
			if length == 0 {
				start = i
			}
			length++
			elapsed += v
		} else {
			flush()
		}
	}
	flush()

	for _, s := range segments {
		if s.AvgSpeed > maxSpeed {
			maxSpeed = s.AvgSpeed
		}
	}
	return len(segments), segments, maxSpeed
}
