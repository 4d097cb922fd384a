package rhythm

import "time"

// Detector accumulates keystroke events for one monitoring session at a
// time and analyzes them on completion. It is a session-scoped accumulator
// driven by a single caller; a multi-threaded embedding must serialize calls
// externally.
type Detector struct {
	thresholds Thresholds
	now        func() time.Time

	monitoring bool
	startTime  time.Time
	events     []TypingEvent
}

// Option configures a Detector.
type Option func(*Detector)

// WithThresholds overrides the default classification policy.
func WithThresholds(th Thresholds) Option {
	return func(d *Detector) { d.thresholds = th }
}

// WithClock overrides the time source. Used by tests and replay.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) { d.now = now }
}

// NewDetector creates a Detector with the default thresholds and clock. The
// detector starts idle; a Detector is reused across monitoring periods.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		thresholds: DefaultThresholds(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// StartMonitoring resets the event log and begins a fresh session. Any
// unfinished prior session is discarded.
func (d *Detector) StartMonitoring() {
	d.events = nil
	d.monitoring = true
	d.startTime = d.now()
}

// RecordKeystroke appends an event with the current time. Calls while idle
// are silently dropped. Unrecognized event types are stored as-is; they are
// excluded from type-specific filters downstream.
func (d *Detector) RecordKeystroke(char string, eventType EventType) {
	if !d.monitoring {
		return
	}
	d.events = append(d.events, TypingEvent{
		Type:      eventType,
		Char:      char,
		Timestamp: d.now(),
	})
}

// Monitoring reports whether a session is in progress.
func (d *Detector) Monitoring() bool {
	return d.monitoring
}

// EventCount returns the number of events recorded in the current session.
func (d *Detector) EventCount() int {
	return len(d.events)
}

// FinishMonitoring ends the session and returns the full analysis. A session
// with no events, or one that was never started, yields the empty profile.
func (d *Detector) FinishMonitoring(finalText string) *Profile {
	d.monitoring = false
	end := d.now()

	if len(d.events) == 0 || d.startTime.IsZero() {
		return EmptyProfile()
	}
	return Analyze(d.events, d.startTime, end, finalText, d.thresholds)
}
