package rhythm

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAnalyzeEmptyLog(t *testing.T) {
	p := Analyze(nil, testBase, testBase.Add(time.Minute), "ignored text", DefaultThresholds())
	if p.TotalKeystrokes != 0 || p.RhythmType != RhythmBalanced {
		t.Errorf("empty log did not produce the empty profile: %+v", p)
	}
}

func TestAnalyzeRounding(t *testing.T) {
	// Intervals of 0.3337s: avg_interval rounds to 3 places, duration to 2,
	// cpm to 1.
	events := typedAt(0, 0.3337, 0.6674, 1.0011)
	p := Analyze(events, testBase, testBase.Add(1001100*time.Microsecond), "abcd", DefaultThresholds())

	if p.AvgInterval != 0.334 {
		t.Errorf("avg interval = %v, want 0.334", p.AvgInterval)
	}
	if p.DurationSeconds != 1.0 {
		t.Errorf("duration = %v, want 1.0", p.DurationSeconds)
	}
	// 4 chars over 1.0011s = 239.7363 cpm -> 239.7
	if p.CharsPerMinute != 239.7 {
		t.Errorf("cpm = %v, want 239.7", p.CharsPerMinute)
	}
	if p.KeystrokeRatio != 1.0 {
		t.Errorf("keystroke ratio = %v, want 1.0", p.KeystrokeRatio)
	}
}

func TestAnalyzeZeroDuration(t *testing.T) {
	events := typedAt(0, 0.1)
	p := Analyze(events, testBase, testBase, "ab", DefaultThresholds())
	if p.CharsPerMinute != 0 {
		t.Errorf("cpm with zero duration = %v, want 0", p.CharsPerMinute)
	}
}

func TestAnalyzeZeroChars(t *testing.T) {
	events := typedAt(0, 1)
	p := Analyze(events, testBase, testBase.Add(time.Second), "", DefaultThresholds())
	if p.KeystrokeRatio != 0 {
		t.Errorf("keystroke ratio with no chars = %v, want 0", p.KeystrokeRatio)
	}
	if p.ActualChars != 0 {
		t.Errorf("actual chars = %d, want 0", p.ActualChars)
	}
}

func TestAnalyzeTrajectoryReproducesLog(t *testing.T) {
	events := eventsAt(
		[]EventType{EventTypeChar, EventBackspace, EventTypeChar},
		[]float64{0, 0.25, 0.5},
	)
	events[0].Char = "a"
	events[1].Char = ""
	events[2].Char = "b"

	p := Analyze(events, testBase, testBase.Add(time.Second), "b", DefaultThresholds())
	if len(p.TypingTrajectory) != 3 {
		t.Fatalf("trajectory length = %d, want 3", len(p.TypingTrajectory))
	}
	for i, e := range events {
		tp := p.TypingTrajectory[i]
		if tp.Type != e.Type || tp.Char != e.Char {
			t.Errorf("trajectory[%d] = %+v, want type=%s char=%q", i, tp, e.Type, e.Char)
		}
		wantTime := float64(e.Timestamp.UnixNano()) / 1e9
		if !approxEqual(tp.Time, wantTime, 1e-6) {
			t.Errorf("trajectory[%d].Time = %v, want %v", i, tp.Time, wantTime)
		}
	}
}

// The profile's JSON shape is a stable interface for downstream consumers:
// every field present, lists encoded as [] rather than null.
func TestProfileJSONShape(t *testing.T) {
	fields := []string{
		"timestamp", "duration_seconds", "chars_per_minute", "pause_pattern",
		"consistency", "text_rhythm", "rhythm_type",
		"total_keystrokes", "actual_chars", "avg_interval",
		"deletion_count", "deletion_ratio", "deletion_patterns",
		"modification_count", "modifications",
		"burst_count", "burst_segments", "max_burst_speed",
		"hesitation_count", "hesitation_locations", "hesitations",
		"fluency_score", "fluency_level", "typing_trajectory", "keystroke_ratio",
	}

	for _, p := range []*Profile{
		EmptyProfile(),
		Analyze(typedAt(0, 0.5, 1), testBase, testBase.Add(time.Second), "ab", DefaultThresholds()),
	} {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if len(m) != len(fields) {
			t.Errorf("profile has %d fields, want %d", len(m), len(fields))
		}
		for _, f := range fields {
			raw, ok := m[f]
			if !ok {
				t.Errorf("missing field %q", f)
				continue
			}
			if string(raw) == "null" {
				t.Errorf("field %q encoded as null", f)
			}
		}
	}
}

func TestProfileHesitationLocationsNotNull(t *testing.T) {
	// A session with qualifying events but no hesitations still encodes the
	// locations list as [].
	p := Analyze(typedAt(0, 0.5, 1), testBase, testBase.Add(time.Second), "ab", DefaultThresholds())
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["hesitation_locations"].([]any); !ok {
		t.Errorf("hesitation_locations is %T, want list", m["hesitation_locations"])
	}
}
