package rhythm

// rhythmInterpretations maps each rhythm type to its cognitive reading.
// These labels are annotations for human readers; they have no effect on
// classification.
var rhythmInterpretations = map[RhythmType]string{
	RhythmSteadyFast:  "Confident expression, clear thinking, skilled typing",
	RhythmBurstFast:   "Inspiration surge, emotional arousal, creative flow",
	RhythmErraticFast: "Agitation, rushing, emotional turbulence",
	RhythmSteadySlow:  "Careful consideration, deliberate expression",
	RhythmHesitant:    "Uncertainty, exploration, searching for words",
	RhythmLabored:     "Difficulty, fatigue, cognitive strain",
	RhythmFluid:       "Flow state, natural expression, engaged focus",
	RhythmMeasured:    "Analytical thinking, careful word choice",
	RhythmUneven:      "Distraction, interruption, divided attention",
	RhythmBalanced:    "Neutral, baseline typing pattern",
}

var pauseInterpretations = map[PausePattern]string{
	PauseContinuous:    "Fluent thought flow, minimal cognitive interruption",
	PauseChoppy:        "Word-by-word consideration, careful expression",
	PauseThoughtful:    "Sentence-level planning, concept organization",
	PauseContemplative: "Deep reflection, complex decision-making",
	PauseMixed:         "State fluctuation, multitasking interference",
}

// Interpret returns the human-readable interpretation for a rhythm type.
func Interpret(rt RhythmType) string {
	if s, ok := rhythmInterpretations[rt]; ok {
		return s
	}
	return "Unclassified typing pattern"
}

// InterpretPause returns the human-readable interpretation for a pause
// pattern.
func InterpretPause(p PausePattern) string {
	if s, ok := pauseInterpretations[p]; ok {
		return s
	}
	return "Unclassified pause pattern"
}
