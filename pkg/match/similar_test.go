package match_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/surgedit/pkg/match"
)

func TestFindSimilar(t *testing.T) {
	t.Parallel()

	t.Run("near miss on identifier casing", func(t *testing.T) {
		t.Parallel()

		buffer := "function oldName() {}"
		pattern := "function oldnam() {}"

		got := match.FindSimilar(buffer, pattern)
		if got == nil {
			t.Fatal("FindSimilar() = nil, want a suggestion")
		}

		if got.Score < 0.7 {
			t.Errorf("Score = %v, want >= 0.7", got.Score)
		}
		if got.WindowStart != 0 {
			t.Errorf("WindowStart = %d, want 0", got.WindowStart)
		}
		if !strings.Contains(got.Diff.CommonPrefix, "function old") {
			t.Errorf("Diff.CommonPrefix = %q, want the shared identifier head", got.Diff.CommonPrefix)
		}
	})

	t.Run("offset window is located", func(t *testing.T) {
		t.Parallel()

		buffer := "header\nconst value = 42;\nfooter"
		pattern := "const valXe = 42;"

		got := match.FindSimilar(buffer, pattern)
		if got == nil {
			t.Fatal("FindSimilar() = nil, want a suggestion")
		}
		if got.WindowStart != 7 {
			t.Errorf("WindowStart = %d, want 7", got.WindowStart)
		}
	})

	t.Run("first qualifying window wins over later better ones", func(t *testing.T) {
		t.Parallel()

		// Both "abcdeX...." windows qualify; the scan must stop at the first.
		buffer := "abcdeX__abcdef"
		pattern := "abcdef"

		got := match.FindSimilar(buffer, pattern)
		if got == nil {
			t.Fatal("FindSimilar() = nil, want a suggestion")
		}
		if got.WindowStart != 0 {
			t.Errorf("WindowStart = %d, want 0 (first above threshold)", got.WindowStart)
		}
	})

	t.Run("nothing similar yields nil", func(t *testing.T) {
		t.Parallel()

		got := match.FindSimilar("completely unrelated text", "zzzzzzzzzz")
		if got != nil {
			t.Errorf("FindSimilar() = %+v, want nil", got)
		}
	})

	t.Run("empty inputs yield nil", func(t *testing.T) {
		t.Parallel()

		if got := match.FindSimilar("", "pattern"); got != nil {
			t.Errorf("empty buffer: got %+v, want nil", got)
		}
		if got := match.FindSimilar("buffer", ""); got != nil {
			t.Errorf("empty pattern: got %+v, want nil", got)
		}
	})

	t.Run("truncated window near buffer end still scores", func(t *testing.T) {
		t.Parallel()

		// The scan extends past len(buffer)-len(pattern); the final windows
		// are shorter than the pattern and scored against the longer length.
		buffer := "xx_abcdefghij"
		pattern := "abcdefghijkl"

		got := match.FindSimilar(buffer, pattern)
		if got == nil {
			t.Fatal("FindSimilar() = nil, want a suggestion")
		}
		if got.WindowStart != 3 {
			t.Errorf("WindowStart = %d, want 3", got.WindowStart)
		}
	})
}
