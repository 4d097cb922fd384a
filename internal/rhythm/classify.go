package rhythm

// CPM band boundaries. Exactly 120 or 60 CPM falls in the medium band.
const (
	fastCPM = 120.0
	slowCPM = 60.0
)

// consistencyHigh is the stability cutoff for "steady" classifications.
const consistencyHigh = 0.7

// ClassifyRhythm maps typing speed, rhythm consistency, and the pause
// pattern to an overall rhythm type. Empty sessions are classified as
// balanced by the assembler; this table never produces it.
func ClassifyRhythm(cpm, consistency float64, pattern PausePattern) RhythmType {
	switch {
	case cpm > fastCPM:
		if consistency > consistencyHigh {
			if pattern == PauseContinuous {
				return RhythmSteadyFast
			}
			return RhythmBurstFast
		}
		return RhythmErraticFast

	case cpm < slowCPM:
		if consistency > consistencyHigh {
			return RhythmSteadySlow
		}
		if pattern == PauseThoughtful || pattern == PauseContemplative {
			return RhythmHesitant
		}
		return RhythmLabored

	default:
		if consistency > consistencyHigh {
			return RhythmFluid
		}
		if pattern == PauseThoughtful {
			return RhythmMeasured
		}
		return RhythmUneven
	}
}
