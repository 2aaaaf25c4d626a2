package match

import "github.com/yaklabco/surgedit/pkg/diff"

// similarityThreshold is the minimum positional score a window must exceed
// to be offered as a suggestion.
const similarityThreshold = 0.7

// Similarity is the closest approximate match found for a pattern that had
// zero exact occurrences. It exists purely to make "not found" actionable:
// the Diff shows the caller exactly how the nearest window differs from
// what they searched for.
type Similarity struct {
	// WindowStart is the byte offset of the matched window in the buffer.
	WindowStart int

	// Score is the positional similarity in [0,1].
	Score float64

	// Diff is the character diff from the pattern to the window.
	Diff diff.CharDiff
}

// FindSimilar scans buffer for the first window whose positional similarity
// to pattern exceeds the threshold. Returns nil if no window qualifies.
//
// A window of len(pattern) slides across every offset up to
// len(buffer) - floor(len(pattern)/2), so windows near the end of the
// buffer may be shorter than the pattern. The score is the fraction of
// aligned positions that agree, divided by the longer of the two lengths.
// This is deliberately position-aligned rather than edit-distance-based:
// O(n*m) and deterministic, good enough for a human-readable hint. The scan
// stops at the first qualifying window, not the best one.
func FindSimilar(buffer, pattern string) *Similarity {
	if pattern == "" || buffer == "" {
		return nil
	}

	lastStart := len(buffer) - len(pattern)/2
	for start := 0; start <= lastStart; start++ {
		end := start + len(pattern)
		if end > len(buffer) {
			end = len(buffer)
		}
		window := buffer[start:end]

		score := positionalScore(window, pattern)
		if score >= similarityThreshold {
			return &Similarity{
				WindowStart: start,
				Score:       score,
				Diff:        diff.DiffChars(pattern, window),
			}
		}
	}

	return nil
}

// positionalScore is the fraction of character-aligned positions where the
// two strings agree, relative to the longer string.
func positionalScore(window, pattern string) float64 {
	shorter := len(window)
	longer := len(pattern)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if window[i] == pattern[i] {
			matches++
		}
	}
	return float64(matches) / float64(longer)
}
