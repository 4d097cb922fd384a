// keystroke-gen generates synthetic typing trajectories for exercising the
// rhythm analysis pipeline without manual typing. Output is JSON Lines, one
// event per line, in the format rhythmctl consumes.
//
// Usage:
//
//	go run tools/keystroke-gen.go -output session.jsonl -count 200
//	go run tools/keystroke-gen.go -output session.jsonl -profile burst-heavy
//	go run tools/keystroke-gen.go -output session.jsonl -profile ime
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
)

// Event is the wire form of a single trajectory event.
type Event struct {
	Type string  `json:"type"`
	Char string  `json:"char"`
	Time float64 `json:"time"`
}

// TypingProfile defines parameters for simulating different typing behaviors.
type TypingProfile struct {
	Name                string
	Description         string
	MedianIntervalMs    float64 // Median time between keystrokes
	IntervalStdDevMs    float64 // Standard deviation
	DeletionProbability float64 // Probability of starting a correction run
	DeletionRunMax      int     // Maximum backspaces in a correction run
	BurstProbability    float64 // Probability of starting a fast burst
	BurstIntervalMs     float64 // Interval during bursts
	PauseProbability    float64 // Probability of a thinking pause
	PauseMaxMs          float64 // Maximum pause duration
	IME                 bool    // Emit composition events instead of plain chars
}

var profiles = map[string]TypingProfile{
	"steady": {
		Name:                "Steady Typist",
		Description:         "Consistent pace with few corrections",
		MedianIntervalMs:    400,
		IntervalStdDevMs:    120,
		DeletionProbability: 0.02,
		DeletionRunMax:      2,
		BurstProbability:    0.05,
		BurstIntervalMs:     120,
		PauseProbability:    0.02,
		PauseMaxMs:          4000,
	},
	"burst-heavy": {
		Name:                "Burst Typist",
		Description:         "Fast bursts separated by short breaks",
		MedianIntervalMs:    600,
		IntervalStdDevMs:    400,
		DeletionProbability: 0.04,
		DeletionRunMax:      3,
		BurstProbability:    0.25,
		BurstIntervalMs:     90,
		PauseProbability:    0.05,
		PauseMaxMs:          6000,
	},
	"hesitant": {
		Name:                "Hesitant Writer",
		Description:         "Slow pace with long thinking pauses and many corrections",
		MedianIntervalMs:    1200,
		IntervalStdDevMs:    900,
		DeletionProbability: 0.1,
		DeletionRunMax:      5,
		BurstProbability:    0.02,
		BurstIntervalMs:     140,
		PauseProbability:    0.12,
		PauseMaxMs:          20000,
	},
	"thoughtful": {
		Name:                "Thoughtful Writer",
		Description:         "Deliberate writing with regular medium pauses",
		MedianIntervalMs:    800,
		IntervalStdDevMs:    500,
		DeletionProbability: 0.05,
		DeletionRunMax:      3,
		BurstProbability:    0.08,
		BurstIntervalMs:     130,
		PauseProbability:    0.08,
		PauseMaxMs:          12000,
	},
	"ime": {
		Name:                "IME User",
		Description:         "Composition-based input with multi-keystroke characters",
		MedianIntervalMs:    300,
		IntervalStdDevMs:    150,
		DeletionProbability: 0.03,
		DeletionRunMax:      2,
		BurstProbability:    0.1,
		BurstIntervalMs:     100,
		PauseProbability:    0.04,
		PauseMaxMs:          8000,
		IME:                 true,
	},
}

const sampleText = "the quick brown fox jumps over the lazy dog and keeps on running. "

const sampleCJK = "今日はとても良い天気ですね。"

func main() {
	var (
		outputPath   = flag.String("output", "session.jsonl", "Output file path")
		eventCount   = flag.Int("count", 200, "Approximate number of events to generate")
		profileName  = flag.String("profile", "steady", "Typing profile to use")
		startTime    = flag.Int64("start", 0, "Start timestamp (unix seconds); 0 = now")
		seed         = flag.Int64("seed", 0, "Random seed; 0 = use current time")
		listProfiles = flag.Bool("list", false, "List available profiles")
	)
	flag.Parse()

	if *listProfiles {
		fmt.Println("Available profiles:")
		for name, p := range profiles {
			fmt.Printf("  %-14s %s\n", name, p.Description)
		}
		os.Exit(0)
	}

	profile, ok := profiles[*profileName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown profile: %s\n", *profileName)
		fmt.Fprintf(os.Stderr, "Use -list to see available profiles\n")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	start := *startTime
	if start == 0 {
		start = time.Now().Unix()
	}

	fmt.Printf("Generating ~%d events with profile: %s\n", *eventCount, profile.Name)
	fmt.Printf("Random seed: %d\n", *seed)

	events, text := generateEvents(rng, profile, *eventCount, float64(start))

	f, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(&e); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing event: %v\n", err)
			os.Exit(1)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output: %v\n", err)
		os.Exit(1)
	}

	textPath := strings.TrimSuffix(*outputPath, ".jsonl") + ".txt"
	if err := os.WriteFile(textPath, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing text: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d events to %s\n", len(events), *outputPath)
	fmt.Printf("Final text written to %s\n", textPath)
	printStats(events)
}

// generateEvents simulates a typing session and returns the trajectory along
// with the text it would have produced.
func generateEvents(rng *rand.Rand, profile TypingProfile, count int, startSec float64) ([]Event, string) {
	events := make([]Event, 0, count)
	var text []rune

	source := []rune(sampleText)
	if profile.IME {
		source = []rune(sampleCJK)
	}

	now := startSec
	srcPos := 0
	inBurst := false
	burstRemaining := 0

	nextChar := func() rune {
		r := source[srcPos%len(source)]
		srcPos++
		return r
	}

	for len(events) < count {
		var intervalMs float64
		switch {
		case inBurst && burstRemaining > 0:
			intervalMs = profile.BurstIntervalMs * (0.5 + rng.Float64())
			burstRemaining--
			if burstRemaining == 0 {
				inBurst = false
			}
		case rng.Float64() < profile.PauseProbability:
			intervalMs = profile.MedianIntervalMs + rng.Float64()*profile.PauseMaxMs
		case rng.Float64() < profile.BurstProbability:
			inBurst = true
			burstRemaining = 5 + rng.Intn(10)
			intervalMs = profile.BurstIntervalMs * (0.5 + rng.Float64())
		default:
			intervalMs = logNormalSample(rng, profile.MedianIntervalMs, profile.IntervalStdDevMs)
		}
		now += intervalMs / 1000

		if rng.Float64() < profile.DeletionProbability && len(text) > 0 {
			// Correction run: delete a few characters, then retype one.
			run := 1 + rng.Intn(profile.DeletionRunMax)
			for j := 0; j < run && len(text) > 0; j++ {
				events = append(events, Event{Type: "backspace", Time: now})
				text = text[:len(text)-1]
				now += intervalMs / 1000 * (0.5 + rng.Float64()*0.5)
			}
			continue
		}

		r := nextChar()
		if profile.IME {
			// A composed character arrives as composition then confirm.
			events = append(events, Event{Type: "composition", Char: string(r), Time: now})
			now += 0.04 + rng.Float64()*0.1
			events = append(events, Event{Type: "composition_confirm", Char: string(r), Time: now})
		} else {
			events = append(events, Event{Type: "type", Char: string(r), Time: now})
		}
		text = append(text, r)
	}

	return events, string(text)
}

// logNormalSample generates a sample from a log-normal distribution.
func logNormalSample(rng *rand.Rand, median, stdDev float64) float64 {
	mu := math.Log(median)
	sigma := math.Log(1 + stdDev/median)
	if sigma < 0.1 {
		sigma = 0.1
	}

	// Box-Muller transform
	u1 := rng.Float64()
	u2 := rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	return math.Exp(mu + sigma*z)
}

func printStats(events []Event) {
	if len(events) < 2 {
		return
	}

	var intervals []float64
	for i := 1; i < len(events); i++ {
		intervals = append(intervals, events[i].Time-events[i-1].Time)
	}

	var sum, sumSq float64
	min, max := intervals[0], intervals[0]
	for _, v := range intervals {
		sum += v
		sumSq += v * v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(intervals))
	variance := sumSq/float64(len(intervals)) - mean*mean
	stdDev := math.Sqrt(variance)

	typeCounts := map[string]int{}
	for _, e := range events {
		typeCounts[e.Type]++
	}

	fmt.Println("\nStatistics:")
	fmt.Printf("  Total events:     %d\n", len(events))
	fmt.Printf("  Time span:        %.1f seconds\n", events[len(events)-1].Time-events[0].Time)
	fmt.Printf("  Interval mean:    %.3f seconds\n", mean)
	fmt.Printf("  Interval stddev:  %.3f seconds\n", stdDev)
	fmt.Printf("  Interval min:     %.3f seconds\n", min)
	fmt.Printf("  Interval max:     %.1f seconds\n", max)
	for _, t := range []string{"type", "composition", "composition_confirm", "backspace"} {
		if n := typeCounts[t]; n > 0 {
			fmt.Printf("  %-19s %d\n", t+":", n)
		}
	}
}
