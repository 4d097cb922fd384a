package rhythm

import (
	"strings"
	"testing"
	"time"
)

func TestReport(t *testing.T) {
	events := eventsAt(
		[]EventType{
			EventTypeChar, EventTypeChar, EventTypeChar, EventTypeChar,
			EventBackspace, EventBackspace, EventBackspace,
			EventTypeChar, EventTypeChar,
		},
		[]float64{0, 0.1, 0.2, 0.3, 0.5, 0.6, 0.7, 4.0, 10.0},
	)
	p := Analyze(events, testBase, testBase.Add(10*time.Second), "Hi there.", DefaultThresholds())

	var sb strings.Builder
	Report(&sb, p)
	out := sb.String()

	for _, want := range []string{
		"TYPING RHYTHM ANALYSIS",
		"Rhythm Type:",
		"Pause Pattern:",
		"Fluency Score:",
		"consecutive run of 3",
		"Category:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, string(p.RhythmType)) {
		t.Errorf("report does not name the rhythm type %s", p.RhythmType)
	}
	if !strings.Contains(out, Interpret(p.RhythmType)) {
		t.Errorf("report does not interpret the rhythm type")
	}
}

func TestReportNilProfile(t *testing.T) {
	var sb strings.Builder
	Report(&sb, nil)
	if !strings.Contains(sb.String(), "No profile data") {
		t.Errorf("nil profile report = %q", sb.String())
	}
}

func TestMetricBar(t *testing.T) {
	tests := []struct {
		value    float64
		min, max float64
		width    int
		expected string
	}{
		{0.5, 0, 1, 4, "[##--]"},
		{0, 0, 1, 4, "[----]"},
		{1, 0, 1, 4, "[####]"},
		{2, 0, 1, 4, "[####]"},    // clamped high
		{-1, 0, 1, 4, "[----]"},   // clamped low
		{0.5, 1, 1, 4, "----"},    // degenerate range
		{0.5, 0, 1, 0, ""},        // zero width
	}

	for _, tt := range tests {
		if got := MetricBar(tt.value, tt.min, tt.max, tt.width); got != tt.expected {
			t.Errorf("MetricBar(%v, %v, %v, %d) = %q, want %q",
				tt.value, tt.min, tt.max, tt.width, got, tt.expected)
		}
	}
}
