// Package replay reads and writes recorded typing trajectories as JSON
// Lines, one event per line, so sessions can be captured once and
// re-analyzed with different thresholds.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"rhythmd/internal/rhythm"
)

// maxLineBytes bounds a single trajectory line. Events are tiny; anything
// near this size is a corrupt file.
const maxLineBytes = 64 * 1024

// record is the wire form of a single event.
type record struct {
	Type string  `json:"type"`
	Char string  `json:"char"`
	Time float64 `json:"time"`
}

// ReadEvents decodes a JSONL trajectory from r. Blank lines are skipped.
func ReadEvents(r io.Reader) ([]rhythm.TypingEvent, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var events []rhythm.TypingEvent
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: decode event: %w", lineNo, err)
		}
		if rec.Type == "" {
			return nil, fmt.Errorf("line %d: missing event type", lineNo)
		}

		events = append(events, rhythm.TypingEvent{
			Type:      rhythm.EventType(rec.Type),
			Char:      rec.Char,
			Timestamp: timeFromEpoch(rec.Time),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}

	return events, nil
}

// ReadFile decodes a JSONL trajectory file.
func ReadFile(path string) ([]rhythm.TypingEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trajectory: %w", err)
	}
	defer f.Close()

	return ReadEvents(f)
}

// WriteEvents encodes events to w as JSONL.
func WriteEvents(w io.Writer, events []rhythm.TypingEvent) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for i, e := range events {
		rec := record{
			Type: string(e.Type),
			Char: e.Char,
			Time: epochSeconds(e.Timestamp),
		}
		if err := enc.Encode(&rec); err != nil {
			return fmt.Errorf("event %d: encode: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile encodes events to a JSONL trajectory file.
func WriteFile(path string, events []rhythm.TypingEvent) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create trajectory: %w", err)
	}

	if err := WriteEvents(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Bounds returns the first and last event timestamps. The boolean is false
// for an empty trajectory.
func Bounds(events []rhythm.TypingEvent) (start, end time.Time, ok bool) {
	if len(events) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start = events[0].Timestamp
	end = events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.Before(start) {
			start = e.Timestamp
		}
		if e.Timestamp.After(end) {
			end = e.Timestamp
		}
	}
	return start, end, true
}

func timeFromEpoch(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9)))
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
