package rhythm

import (
	"math"
	"time"
	"unicode/utf8"
)

// Analyze computes the full behavioral profile for a completed session. It
// is a pure function of the event log, the session time range, and the final
// text; intermediate computations run at full precision and rounding is
// applied only here. An empty event log yields EmptyProfile regardless of
// finalText.
func Analyze(events []TypingEvent, start, end time.Time, finalText string, th Thresholds) *Profile {
	if len(events) == 0 {
		return EmptyProfile()
	}

	duration := end.Sub(start).Seconds()
	totalKeystrokes := len(events)
	actualChars := utf8.RuneCountInString(finalText)

	intervals := ExtractIntervals(events)

	avgInterval := 0.0
	if len(intervals) > 0 {
		var sum float64
		for _, v := range intervals {
			sum += v
		}
		avgInterval = sum / float64(len(intervals))
	}

	cpm := 0.0
	if duration > 0 {
		cpm = float64(actualChars) / duration * 60
	}

	consistency := Consistency(intervals)
	pauses := ClassifyPauses(intervals, th)
	deletionCount, deletionRatio, deletionPatterns := AnalyzeDeletions(events)
	modificationCount := CountModifications(events)
	burstCount, burstSegments, maxBurstSpeed := DetectBursts(intervals, th)
	hesitationCount, hesitationLocations, hesitations := MapHesitations(intervals, th)
	fluencyScore, fluencyLevel := ScoreFluency(consistency, deletionRatio, pauses, hesitationCount)
	rhythmType := ClassifyRhythm(cpm, consistency, pauses.Pattern)
	textRhythm := AnalyzeTextRhythm(finalText)

	keystrokeRatio := 0.0
	if actualChars > 0 {
		keystrokeRatio = float64(totalKeystrokes) / float64(actualChars)
	}

	trajectory := make([]TrajectoryPoint, 0, len(events))
	for _, e := range events {
		trajectory = append(trajectory, TrajectoryPoint{
			Type: e.Type,
			Char: e.Char,
			Time: float64(e.Timestamp.UnixNano()) / 1e9,
		})
	}

	return &Profile{
		Timestamp:       time.Now().Format(time.RFC3339),
		DurationSeconds: roundTo(duration, 2),
		CharsPerMinute:  roundTo(cpm, 1),
		PausePattern:    pauses,
		Consistency:     roundTo(consistency, 3),
		TextRhythm:      textRhythm,
		RhythmType:      rhythmType,

		TotalKeystrokes: totalKeystrokes,
		ActualChars:     actualChars,
		AvgInterval:     roundTo(avgInterval, 3),

		DeletionCount:    deletionCount,
		DeletionRatio:    roundTo(deletionRatio, 3),
		DeletionPatterns: deletionPatterns,

		ModificationCount: modificationCount,
		Modifications:     make([]Modification, 0),

		BurstCount:    burstCount,
		BurstSegments: burstSegments,
		MaxBurstSpeed: roundTo(maxBurstSpeed, 1),

		HesitationCount:     hesitationCount,
		HesitationLocations: hesitationLocations,
		Hesitations:         hesitations,

		FluencyScore: roundTo(fluencyScore, 3),
		FluencyLevel: fluencyLevel,

		TypingTrajectory: trajectory,
		KeystrokeRatio:   roundTo(keystrokeRatio, 2),
	}
}

// EmptyProfile returns the fixed default profile for a session with no
// recorded events. Every count is zero, every list is empty, and the
// categorical fields take their inert defaults.
func EmptyProfile() *Profile {
	return &Profile{
		Timestamp: time.Now().Format(time.RFC3339),
		PausePattern: PauseAnalysis{
			Pattern: PauseContinuous,
		},
		TextRhythm: TextRhythm{
			RhythmCategory: TextBalanced,
		},
		RhythmType:          RhythmBalanced,
		DeletionPatterns:    make([]DeletionPattern, 0),
		Modifications:       make([]Modification, 0),
		BurstSegments:       make([]BurstSegment, 0),
		HesitationLocations: make([]int, 0),
		Hesitations:         make([]Hesitation, 0),
		FluencyLevel:        FluencyNormal,
		TypingTrajectory:    make([]TrajectoryPoint, 0),
	}
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
