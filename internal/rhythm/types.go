// Package rhythm analyzes keystroke timing from a completed text-entry
// session and produces a fixed-shape behavioral profile describing typing
// rhythm, fluency, hesitation, and pause behavior.
package rhythm

import "time"

// EventType identifies the kind of keystroke event.
type EventType string

const (
	EventTypeChar        EventType = "type"
	EventBackspace       EventType = "backspace"
	EventDelete          EventType = "delete"
	EventSelection       EventType = "selection"
	EventComposition     EventType = "composition"
	EventCompositionDel  EventType = "composition_delete"
	EventCompositionDone EventType = "composition_confirm"
)

// TypingEvent is a single recorded keystroke. Events are immutable once
// appended to a session log. Unrecognized event types are stored as-is and
// simply fall outside the type-specific filters downstream.
type TypingEvent struct {
	Type      EventType
	Char      string
	Timestamp time.Time
}

// PausePattern classifies pause behavior over a session.
type PausePattern string

const (
	PauseContinuous    PausePattern = "continuous"
	PauseChoppy        PausePattern = "choppy"
	PauseThoughtful    PausePattern = "thoughtful"
	PauseContemplative PausePattern = "contemplative"
	// PauseMixed is declared in the label space but no classification rule
	// currently produces it.
	PauseMixed PausePattern = "mixed"
)

// RhythmType is the overall rhythm classification.
type RhythmType string

const (
	// Fast typing (>120 CPM)
	RhythmSteadyFast  RhythmType = "steady_fast"
	RhythmBurstFast   RhythmType = "burst_fast"
	RhythmErraticFast RhythmType = "erratic_fast"

	// Slow typing (<60 CPM)
	RhythmSteadySlow RhythmType = "steady_slow"
	RhythmHesitant   RhythmType = "hesitant"
	RhythmLabored    RhythmType = "labored"

	// Medium typing (60-120 CPM)
	RhythmFluid    RhythmType = "fluid"
	RhythmMeasured RhythmType = "measured"
	RhythmUneven   RhythmType = "uneven"

	// RhythmBalanced is the inert default for empty sessions.
	RhythmBalanced RhythmType = "balanced"
)

// FluencyLevel is the categorical fluency band.
type FluencyLevel string

const (
	FluencyVeryFluent FluencyLevel = "very_fluent" // score >= 0.8
	FluencyFluent     FluencyLevel = "fluent"      // score >= 0.6
	FluencyNormal     FluencyLevel = "normal"      // score >= 0.4
	FluencyHesitant   FluencyLevel = "hesitant"    // score < 0.4
)

// HesitationSeverity grades a single hesitation by its duration.
type HesitationSeverity string

const (
	HesitationMedium   HesitationSeverity = "medium"    // 3-5 seconds
	HesitationLong     HesitationSeverity = "long"      // 5-10 seconds
	HesitationVeryLong HesitationSeverity = "very_long" // >= 10 seconds
)

// TextRhythmCategory classifies the final text's sentence structure.
type TextRhythmCategory string

const (
	TextConcise    TextRhythmCategory = "concise"
	TextStaccato   TextRhythmCategory = "staccato"
	TextFlowing    TextRhythmCategory = "flowing"
	TextComplex    TextRhythmCategory = "complex"
	TextPunctuated TextRhythmCategory = "punctuated"
	TextBalanced   TextRhythmCategory = "balanced"
)

// PauseAnalysis holds pause bucket counts and the derived pattern.
type PauseAnalysis struct {
	ShortPauses  int          `json:"short_pauses" yaml:"short_pauses"`
	MediumPauses int          `json:"medium_pauses" yaml:"medium_pauses"`
	LongPauses   int          `json:"long_pauses" yaml:"long_pauses"`
	Pattern      PausePattern `json:"pattern" yaml:"pattern"`
}

// TextRhythm holds sentence and punctuation statistics for the final text.
type TextRhythm struct {
	SentenceCount     int                `json:"sentence_count" yaml:"sentence_count"`
	AvgSentenceLength float64            `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	PunctuationRate   float64            `json:"punctuation_rate" yaml:"punctuation_rate"`
	RhythmCategory    TextRhythmCategory `json:"rhythm_category" yaml:"rhythm_category"`
}

// DeletionPattern records a detected correction pattern.
type DeletionPattern struct {
	Type   string `json:"type" yaml:"type"`
	Length int    `json:"length" yaml:"length"`
}

// Modification is reserved; no rule currently produces modification records.
type Modification struct{}

// BurstSegment is a run of keystrokes with sub-threshold gaps.
type BurstSegment struct {
	Start    int     `json:"start" yaml:"start"`
	Length   int     `json:"length" yaml:"length"`
	AvgSpeed float64 `json:"avg_speed" yaml:"avg_speed"`
}

// Hesitation is a single anomalously long inter-keystroke pause.
type Hesitation struct {
	Location int                `json:"location" yaml:"location"`
	Duration float64            `json:"duration" yaml:"duration"`
	Severity HesitationSeverity `json:"severity" yaml:"severity"`
}

// TrajectoryPoint reproduces one recorded event in the output profile.
// Time is seconds since the Unix epoch.
type TrajectoryPoint struct {
	Type EventType `json:"type" yaml:"type"`
	Char string    `json:"char" yaml:"char"`
	Time float64   `json:"time" yaml:"time"`
}

// Profile is the complete 24-field analysis output. It is fully populated
// for every session; an empty session takes the defined default shape.
type Profile struct {
	// Baseline metrics
	Timestamp       string        `json:"timestamp" yaml:"timestamp"`
	DurationSeconds float64       `json:"duration_seconds" yaml:"duration_seconds"`
	CharsPerMinute  float64       `json:"chars_per_minute" yaml:"chars_per_minute"`
	PausePattern    PauseAnalysis `json:"pause_pattern" yaml:"pause_pattern"`
	Consistency     float64       `json:"consistency" yaml:"consistency"`
	TextRhythm      TextRhythm    `json:"text_rhythm" yaml:"text_rhythm"`
	RhythmType      RhythmType    `json:"rhythm_type" yaml:"rhythm_type"`

	// Basic statistics
	TotalKeystrokes int     `json:"total_keystrokes" yaml:"total_keystrokes"`
	ActualChars     int     `json:"actual_chars" yaml:"actual_chars"`
	AvgInterval     float64 `json:"avg_interval" yaml:"avg_interval"`

	// Deletion analysis
	DeletionCount    int               `json:"deletion_count" yaml:"deletion_count"`
	DeletionRatio    float64           `json:"deletion_ratio" yaml:"deletion_ratio"`
	DeletionPatterns []DeletionPattern `json:"deletion_patterns" yaml:"deletion_patterns"`

	// Modification analysis
	ModificationCount int            `json:"modification_count" yaml:"modification_count"`
	Modifications     []Modification `json:"modifications" yaml:"modifications"`

	// Burst detection
	BurstCount    int            `json:"burst_count" yaml:"burst_count"`
	BurstSegments []BurstSegment `json:"burst_segments" yaml:"burst_segments"`
	MaxBurstSpeed float64        `json:"max_burst_speed" yaml:"max_burst_speed"`

	// Hesitation mapping
	HesitationCount     int          `json:"hesitation_count" yaml:"hesitation_count"`
	HesitationLocations []int        `json:"hesitation_locations" yaml:"hesitation_locations"`
	Hesitations         []Hesitation `json:"hesitations" yaml:"hesitations"`

	// Fluency scoring
	FluencyScore float64      `json:"fluency_score" yaml:"fluency_score"`
	FluencyLevel FluencyLevel `json:"fluency_level" yaml:"fluency_level"`

	// Trajectory recording
	TypingTrajectory []TrajectoryPoint `json:"typing_trajectory" yaml:"typing_trajectory"`

	// KeystrokeRatio is total keystrokes over produced characters. Values
	// well above 1 signal multi-keystroke-per-character input methods.
	KeystrokeRatio float64 `json:"keystroke_ratio" yaml:"keystroke_ratio"`
}
