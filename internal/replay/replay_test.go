package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rhythmd/internal/rhythm"
)

func TestReadEvents(t *testing.T) {
	input := `{"type":"type","char":"h","time":1700000000.0}
{"type":"type","char":"i","time":1700000000.25}

{"type":"backspace","char":"","time":1700000001.5}
`
	events, err := ReadEvents(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	if events[0].Type != rhythm.EventTypeChar || events[0].Char != "h" {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[2].Type != rhythm.EventBackspace {
		t.Errorf("event 2 type = %q, want backspace", events[2].Type)
	}

	want := time.Unix(1700000000, 250000000)
	if !events[1].Timestamp.Equal(want) {
		t.Errorf("event 1 timestamp = %v, want %v", events[1].Timestamp, want)
	}
}

func TestReadEventsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad json", `{"type":"type","char":`},
		{"missing type", `{"char":"x","time":1.0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadEvents(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	base := time.Unix(1700000000, 0)
	events := []rhythm.TypingEvent{
		{Type: rhythm.EventTypeChar, Char: "a", Timestamp: base},
		{Type: rhythm.EventTypeChar, Char: "語", Timestamp: base.Add(300 * time.Millisecond)},
		{Type: rhythm.EventCompositionDone, Char: "語", Timestamp: base.Add(800 * time.Millisecond)},
		{Type: rhythm.EventDelete, Char: "", Timestamp: base.Add(4 * time.Second)},
	}

	var buf bytes.Buffer
	if err := WriteEvents(&buf, events); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}

	got, err := ReadEvents(&buf)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i].Type != events[i].Type || got[i].Char != events[i].Char {
			t.Errorf("event %d = %+v, want %+v", i, got[i], events[i])
		}
		delta := got[i].Timestamp.Sub(events[i].Timestamp)
		if delta < -time.Microsecond || delta > time.Microsecond {
			t.Errorf("event %d timestamp drift %v", i, delta)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	base := time.Unix(1700000000, 0)
	events := []rhythm.TypingEvent{
		{Type: rhythm.EventTypeChar, Char: "x", Timestamp: base},
		{Type: rhythm.EventTypeChar, Char: "y", Timestamp: base.Add(time.Second)},
	}

	if err := WriteFile(path, events); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) ok = true, want false")
	}

	base := time.Unix(1700000000, 0)
	events := []rhythm.TypingEvent{
		{Type: rhythm.EventTypeChar, Timestamp: base.Add(2 * time.Second)},
		{Type: rhythm.EventTypeChar, Timestamp: base},
		{Type: rhythm.EventTypeChar, Timestamp: base.Add(5 * time.Second)},
	}
	start, end, ok := Bounds(events)
	if !ok {
		t.Fatal("Bounds ok = false")
	}
	if !start.Equal(base) {
		t.Errorf("start = %v, want %v", start, base)
	}
	if !end.Equal(base.Add(5 * time.Second)) {
		t.Errorf("end = %v, want %v", end, base.Add(5*time.Second))
	}
}

func TestReplayFeedsAnalyzer(t *testing.T) {
	base := time.Unix(1700000000, 0)
	var events []rhythm.TypingEvent
	for i := 0; i < 10; i++ {
		events = append(events, rhythm.TypingEvent{
			Type:      rhythm.EventTypeChar,
			Char:      "a",
			Timestamp: base.Add(time.Duration(i) * 500 * time.Millisecond),
		})
	}

	var buf bytes.Buffer
	if err := WriteEvents(&buf, events); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	decoded, err := ReadEvents(&buf)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}

	start, end, ok := Bounds(decoded)
	if !ok {
		t.Fatal("Bounds ok = false")
	}

	p := rhythm.Analyze(decoded, start, end, "aaaaaaaaaa", rhythm.DefaultThresholds())
	if p.TotalKeystrokes != 10 {
		t.Errorf("total_keystrokes = %d, want 10", p.TotalKeystrokes)
	}
	if p.DurationSeconds != 4.5 {
		t.Errorf("duration_seconds = %v, want 4.5", p.DurationSeconds)
	}
}
