package rhythm

import (
	"fmt"
	"io"
	"strings"
)

// Report writes a formatted rhythm analysis to w.
func Report(w io.Writer, p *Profile) {
	if p == nil {
		fmt.Fprintln(w, "No profile data available")
		return
	}

	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w, "                      TYPING RHYTHM ANALYSIS")
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Generated:       %s\n", p.Timestamp)
	fmt.Fprintf(w, "Duration:        %.2f sec\n", p.DurationSeconds)
	fmt.Fprintf(w, "Keystrokes:      %d\n", p.TotalKeystrokes)
	fmt.Fprintf(w, "Characters:      %d\n", p.ActualChars)
	if p.KeystrokeRatio > 0 {
		fmt.Fprintf(w, "Keystroke Ratio: %.2f%s\n", p.KeystrokeRatio, keystrokeRatioNote(p.KeystrokeRatio))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w, "RHYTHM")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rhythm Type:     %s\n", p.RhythmType)
	fmt.Fprintf(w, "  -> %s\n\n", Interpret(p.RhythmType))

	fmt.Fprintf(w, "Speed:           %.1f chars/min\n", p.CharsPerMinute)
	fmt.Fprintf(w, "Avg Interval:    %.3f sec\n\n", p.AvgInterval)

	fmt.Fprintf(w, "Consistency:     %.3f  %s\n\n",
		p.Consistency, MetricBar(p.Consistency, 0, 1, 20))

	fmt.Fprintf(w, "Pause Pattern:   %s (short %d / medium %d / long %d)\n",
		p.PausePattern.Pattern,
		p.PausePattern.ShortPauses, p.PausePattern.MediumPauses, p.PausePattern.LongPauses)
	fmt.Fprintf(w, "  -> %s\n\n", InterpretPause(p.PausePattern.Pattern))

	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w, "FLUENCY")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Fluency Score:   %.3f  %s\n", p.FluencyScore, MetricBar(p.FluencyScore, 0, 1, 20))
	fmt.Fprintf(w, "Fluency Level:   %s\n\n", p.FluencyLevel)

	fmt.Fprintf(w, "Deletions:       %d (ratio %.3f)\n", p.DeletionCount, p.DeletionRatio)
	for _, dp := range p.DeletionPatterns {
		fmt.Fprintf(w, "  - %s run of %d\n", dp.Type, dp.Length)
	}
	fmt.Fprintf(w, "Modifications:   %d\n\n", p.ModificationCount)

	if p.BurstCount > 0 {
		fmt.Fprintf(w, "Bursts:          %d (max %.1f keys/sec)\n", p.BurstCount, p.MaxBurstSpeed)
		for _, b := range p.BurstSegments {
			fmt.Fprintf(w, "  - start %d, length %d, %.1f keys/sec\n", b.Start, b.Length, b.AvgSpeed)
		}
		fmt.Fprintln(w)
	}

	if p.HesitationCount > 0 {
		fmt.Fprintf(w, "Hesitations:     %d\n", p.HesitationCount)
		for _, h := range p.Hesitations {
			fmt.Fprintf(w, "  - at interval %d: %.2f sec (%s)\n", h.Location, h.Duration, h.Severity)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w, "TEXT")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sentences:       %d\n", p.TextRhythm.SentenceCount)
	fmt.Fprintf(w, "Avg Length:      %.1f chars\n", p.TextRhythm.AvgSentenceLength)
	fmt.Fprintf(w, "Punctuation:     %.3f\n", p.TextRhythm.PunctuationRate)
	fmt.Fprintf(w, "Category:        %s\n", p.TextRhythm.RhythmCategory)
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("=", 72))
}

// keystrokeRatioNote annotates notable keystroke ratios. Ratios well above
// one indicate a multi-keystroke-per-character input method.
func keystrokeRatioNote(ratio float64) string {
	if ratio >= 2.0 {
		return "  (composed input, e.g. IME)"
	}
	return ""
}

// MetricBar produces an ASCII bar for metric visualization.
func MetricBar(value, min, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	if max <= min {
		return strings.Repeat("-", width)
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	filled := int(normalized * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
