package rhythm

import (
	"strings"
	"unicode/utf8"
)

// Sentence-terminal punctuation, ASCII and CJK fullwidth forms.
const sentenceTerminals = ".!?。！？"

// Punctuation counted toward the punctuation rate.
const punctuationSet = ".,!?;:，。！？；：～~"

// AnalyzeTextRhythm derives sentence and punctuation statistics from the
// final text, independent of timing. Character counts are rune counts. Text
// with no terminal punctuation is treated as one sentence.
func AnalyzeTextRhythm(text string) TextRhythm {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(sentenceTerminals, r)
	})

	sentences := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	chars := utf8.RuneCountInString(text)
	avgLen := float64(chars) / float64(sentences)

	punct := 0
	for _, r := range text {
		if strings.ContainsRune(punctuationSet, r) {
			punct++
		}
	}
	rate := 0.0
	if chars > 0 {
		rate = float64(punct) / float64(chars)
	}

	return TextRhythm{
		SentenceCount:     sentences,
		AvgSentenceLength: roundTo(avgLen, 1),
		PunctuationRate:   roundTo(rate, 3),
		RhythmCategory:    classifyTextRhythm(avgLen, rate),
	}
}

// classifyTextRhythm applies the category rules in fixed order; the first
// match wins.
func classifyTextRhythm(avgLen, rate float64) TextRhythmCategory {
	switch {
	case avgLen < 20 && rate < 0.05:
		return TextConcise
	case avgLen < 20:
		return TextStaccato
	case avgLen >= 50 && rate < 0.05:
		return TextFlowing
	case avgLen >= 50 && rate >= 0.08:
		return TextComplex
	case rate >= 0.08:
		return TextPunctuated
	default:
		return TextBalanced
	}
}
