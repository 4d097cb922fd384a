package rhythm

import "math"

// ExtractIntervals derives inter-keystroke timing deltas from the event log.
// Only events that produce text ({type, composition, composition_confirm})
// qualify; deletions and selections are excluded so correction activity does
// not distort rhythm timing. Negative deltas from a non-monotonic clock are
// clamped to zero so interval indexes stay aligned with event positions.
func ExtractIntervals(events []TypingEvent) []float64 {
	var filtered []TypingEvent
	for _, e := range events {
		switch e.Type {
		case EventTypeChar, EventComposition, EventCompositionDone:
			filtered = append(filtered, e)
		}
	}

	if len(filtered) < 2 {
		return nil
	}

	intervals := make([]float64, 0, len(filtered)-1)
	for i := 1; i < len(filtered); i++ {
		delta := filtered[i].Timestamp.Sub(filtered[i-1].Timestamp).Seconds()
		if delta < 0 {
			delta = 0
		}
		intervals = append(intervals, delta)
	}
	return intervals
}

// Consistency scores rhythm stability from the coefficient of variation of
// the intervals. Lower variability relative to the mean indicates steadier
// rhythm; the score saturates at both ends.
// Formula: clamp(1 - cv/2, 0, 1) with cv = stddev/mean (population variance).
func Consistency(intervals []float64) float64 {
	if len(intervals) < 2 {
		return 0
	}

	var sum float64
	for _, v := range intervals {
		sum += v
	}
	mean := sum / float64(len(intervals))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, v := range intervals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(intervals))

	cv := math.Sqrt(variance) / mean
	return clamp01(1 - cv/2)
}

// ClassifyPauses buckets intervals into short/medium/long pause counts and
// derives the pattern label. The most severe bucket present wins: any long
// pause makes the session contemplative regardless of shorter pauses.
func ClassifyPauses(intervals []float64, th Thresholds) PauseAnalysis {
	p := PauseAnalysis{Pattern: PauseContinuous}

	for _, v := range intervals {
		switch {
		case v >= th.LongPauseMin:
			p.LongPauses++
		case v >= th.MediumPauseMin && v < th.MediumPauseMax:
			p.MediumPauses++
		case v >= th.ShortPauseMin && v < th.ShortPauseMax:
			p.ShortPauses++
		}
	}

	switch {
	case p.LongPauses > 0:
		p.Pattern = PauseContemplative
	case p.MediumPauses > 0:
		p.Pattern = PauseThoughtful
	case p.ShortPauses > 0:
		p.Pattern = PauseChoppy
	}
	return p
}

// isDeletion reports whether the event removes text, including deletions
// inside an input-method composition.
func isDeletion(t EventType) bool {
	return t == EventBackspace || t == EventDelete || t == EventCompositionDel
}

// AnalyzeDeletions counts correction events and detects runs of consecutive
// deletions over the full, unfiltered event log. A run is closed by any
// non-{backspace, delete} event; runs of length >= 3 are reported. A run
// still open at the end of the log is not reported.
func AnalyzeDeletions(events []TypingEvent) (count int, ratio float64, patterns []DeletionPattern) {
	for _, e := range events {
		if isDeletion(e.Type) {
			count++
		}
	}
	if len(events) > 0 {
		ratio = float64(count) / float64(len(events))
	}

	patterns = make([]DeletionPattern, 0)
	consecutive := 0
	for _, e := range events {
		if e.Type == EventBackspace || e.Type == EventDelete {
			consecutive++
			continue
		}
		if consecutive >= 3 {
			patterns = append(patterns, DeletionPattern{Type: "consecutive", Length: consecutive})
		}
		consecutive = 0
	}
	return count, ratio, patterns
}

// CountModifications counts selection events. The detailed modification list
// is reserved and always empty.
func CountModifications(events []TypingEvent) int {
	n := 0
	for _, e := range events {
		if e.Type == EventSelection {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
