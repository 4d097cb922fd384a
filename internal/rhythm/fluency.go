package rhythm

// Fluency component weights. Stability and correction behavior dominate;
// pause severity and hesitation frequency refine the score.
const (
	weightStability  = 0.30
	weightDeletion   = 0.30
	weightPause      = 0.20
	weightHesitation = 0.20
)

// ScoreFluency combines rhythm stability, deletion rate, pause severity, and
// hesitation frequency into one weighted 0-1 score and maps it to a level.
// Level band lower bounds are inclusive: exactly 0.8 is very_fluent.
func ScoreFluency(consistency, deletionRatio float64, pauses PauseAnalysis, hesitationCount int) (float64, FluencyLevel) {
	deletionScore := floorZero(1 - 2*deletionRatio)

	pausePenalty := float64(pauses.ShortPauses+2*pauses.MediumPauses+3*pauses.LongPauses) / 10
	pauseScore := floorZero(1 - pausePenalty)

	hesitationScore := floorZero(1 - float64(hesitationCount)/5)

	score := weightStability*consistency +
		weightDeletion*deletionScore +
		weightPause*pauseScore +
		weightHesitation*hesitationScore

	return score, LevelForScore(score)
}

// LevelForScore maps a fluency score to its categorical band. Lower bounds
// are inclusive: exactly 0.8 is very_fluent.
func LevelForScore(score float64) FluencyLevel {
	switch {
	case score >= 0.8:
		return FluencyVeryFluent
	case score >= 0.6:
		return FluencyFluent
	case score >= 0.4:
		return FluencyNormal
	default:
		return FluencyHesitant
	}
}

// floorZero floors a score component at zero.
func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
